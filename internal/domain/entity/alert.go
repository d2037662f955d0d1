package entity

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MaxMatchStrings is the largest number of name fragments an alert may carry.
const MaxMatchStrings = 5

// MaxSummaryLength bounds Alert.MatchingAssetsString.
const MaxSummaryLength = 200

// Alert is a saved user-defined filter over marketplace listings.
type Alert struct {
	ID                        uuid.UUID  `json:"id"`
	UserID                    uuid.UUID  `json:"user_id"`
	Name                      string     `json:"name"`
	MatchStrings              []string   `json:"match_strings"`                          // Case-insensitive name fragments, 1..5
	MatchAll                  bool       `json:"match_all"`                              // true: every fragment must match, false: any
	MaxPrice                  int        `json:"max_price"`                              // Inclusive upper bound on the listing price
	BottledYearMin            *int       `json:"bottled_year_min,omitempty"`             // Inclusive, optional
	BottledYearMax            *int       `json:"bottled_year_max,omitempty"`             // Inclusive, optional
	AgeMin                    *int       `json:"age_min,omitempty"`                      // Inclusive, optional
	AgeMax                    *int       `json:"age_max,omitempty"`                      // Inclusive, optional
	MatchingAssetsString      *string    `json:"matching_assets_string,omitempty"`       // Cached summary of the last recomputation
	MatchingAssetsLastUpdated *time.Time `json:"matching_assets_last_updated,omitempty"` // When the summary was computed
	CreatedAt                 time.Time  `json:"created_at"`
}

// OptionalInt is a nullable integer update: Set reports whether the field was supplied,
// Value nil clears the stored bound.
type OptionalInt struct {
	Set   bool
	Value *int
}

// UnmarshalJSON marks the field as supplied. A JSON null clears the bound.
func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil

		return nil
	}

	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v

	return nil
}

// AlertUpdate carries a partial alert update. Nil pointers and unset optionals are left untouched.
type AlertUpdate struct {
	Name           *string
	MatchStrings   []string
	MatchAll       *bool
	MaxPrice       *int
	BottledYearMin OptionalInt
	BottledYearMax OptionalInt
	AgeMin         OptionalInt
	AgeMax         OptionalInt
}

// Apply copies the supplied fields onto alert.
func (u *AlertUpdate) Apply(alert *Alert) {
	if u.Name != nil {
		alert.Name = *u.Name
	}
	if u.MatchStrings != nil {
		alert.MatchStrings = append([]string(nil), u.MatchStrings...)
	}
	if u.MatchAll != nil {
		alert.MatchAll = *u.MatchAll
	}
	if u.MaxPrice != nil {
		alert.MaxPrice = *u.MaxPrice
	}
	if u.BottledYearMin.Set {
		alert.BottledYearMin = u.BottledYearMin.Value
	}
	if u.BottledYearMax.Set {
		alert.BottledYearMax = u.BottledYearMax.Value
	}
	if u.AgeMin.Set {
		alert.AgeMin = u.AgeMin.Value
	}
	if u.AgeMax.Set {
		alert.AgeMax = u.AgeMax.Value
	}
}

// IsEmpty reports whether the update changes nothing.
func (u *AlertUpdate) IsEmpty() bool {
	return u.Name == nil && u.MatchStrings == nil && u.MatchAll == nil && u.MaxPrice == nil &&
		!u.BottledYearMin.Set && !u.BottledYearMax.Set && !u.AgeMin.Set && !u.AgeMax.Set
}
