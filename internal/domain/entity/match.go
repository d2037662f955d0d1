package entity

import (
	"time"

	"github.com/google/uuid"
)

// MatchedListing is an association row joined with its event and asset, as shown to the alert owner.
type MatchedListing struct {
	ActivityIdx  int64     `json:"activity_idx"`
	AssetIdx     int64     `json:"asset_idx"`
	AssetName    string    `json:"asset_name"`
	Price        float64   `json:"price"`
	ActivityDate time.Time `json:"activity_date"`
}

// ListingMatch is a notification record written when an incoming listing satisfies an alert.
type ListingMatch struct {
	MatchIdx      int64     `json:"match_idx"`
	AlertID       uuid.UUID `json:"alert_id"`
	ListingSource string    `json:"listing_source"`
	ActivityIdx   int64     `json:"activity_idx"`
	AssetIdx      int64     `json:"asset_idx"`
	CreatedAt     time.Time `json:"created_at"`
}

// MatchResult is the outcome of one alert recomputation.
type MatchResult struct {
	AlertID    uuid.UUID `json:"alert_id"`
	Found      bool      `json:"found"` // false when the alert no longer exists
	Matched    int       `json:"matched"`
	Summary    string    `json:"summary"`
	ComputedAt time.Time `json:"computed_at"`
}

// RefreshRunStatus is the lifecycle state of a refresh-all run.
type RefreshRunStatus string

const (
	RefreshRunRunning   RefreshRunStatus = "running"
	RefreshRunCompleted RefreshRunStatus = "completed"
)

// RefreshRun records the progress of a bulk recomputation across all alerts.
type RefreshRun struct {
	ID             uuid.UUID        `json:"id"`
	Status         RefreshRunStatus `json:"status"`
	StartedAt      time.Time        `json:"started_at"`
	FinishedAt     *time.Time       `json:"finished_at,omitempty"`
	Total          int              `json:"total"`
	Succeeded      int              `json:"succeeded"`
	FailedAlertIDs []uuid.UUID      `json:"failed_alert_ids"`
}
