package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActivityTypeNewListing is the activity type code the matcher considers.
const ActivityTypeNewListing = "NEW_LISTING"

// Asset is a catalog entry. Read-only for the matcher.
type Asset struct {
	AssetIdx    int64    `json:"asset_idx"`
	AssetID     string   `json:"asset_id"`
	Name        string   `json:"name"`
	Producer    *string  `json:"producer,omitempty"`
	BottledYear *int     `json:"bottled_year,omitempty"`
	Age         *int     `json:"age,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	IsListed    *bool    `json:"is_listed,omitempty"`
}

// AssetIDLength is the fixed width of the asset_id column.
const AssetIDLength = 44

// UnknownAssetName labels feed entries whose asset is missing from the catalog.
const UnknownAssetName = "Unknown"

// ActivityType is an entry of the activity type dimension, e.g. NEW_LISTING.
type ActivityType struct {
	ActivityTypeIdx  int64  `json:"activity_type_idx"`
	ActivityTypeCode string `json:"activity_type_code"`
	ActivityTypeName string `json:"activity_type_name"`
}

// ActivityEvent is a timestamped occurrence against an asset.
type ActivityEvent struct {
	ActivityIdx     int64     `json:"activity_idx"`
	ActivityTypeIdx int64     `json:"activity_type_idx"`
	AssetIdx        int64     `json:"asset_idx"`
	Price           *float64  `json:"price,omitempty"`
	ActivityDate    time.Time `json:"activity_date"`
}

// ActivityFeedItem is an activity event with its type and asset details.
type ActivityFeedItem struct {
	ActivityEvent

	ActivityTypeCode string  `json:"activity_type_code"`
	ActivityTypeName string  `json:"activity_type_name"`
	AssetID          string  `json:"asset_id"`
	AssetName        string  `json:"asset_name"`
	Producer         *string `json:"producer,omitempty"`
	IsListed         *bool   `json:"is_listed,omitempty"`
}

// ActivityFeedPage is one page of the activity feed together with the size of the whole feed.
type ActivityFeedPage struct {
	Items      []*ActivityFeedItem `json:"items"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalCount int64               `json:"total_count"`
	TotalPages int                 `json:"total_pages"`
}

// Listing is a new-listing event delivered to the listing worker, flattened with its asset attributes.
type Listing struct {
	ActivityIdx int64            `json:"activity_idx"`
	AssetIdx    int64            `json:"asset_idx"`
	AssetID     string           `json:"asset_id,omitempty"`
	Name        string           `json:"name"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	BottledYear *int             `json:"bottled_year,omitempty"`
	Age         *int             `json:"age,omitempty"`
}
