package model

import "time"

// Catalog tables live in a separate schema owned by the marketplace ingester and are only read here.
const (
	AssetsTable         = "assets"
	ActivityFeedTable   = "activity_feed"
	ActivityTypesTable  = "dim_activity_types"
	catalogSchemaSuffix = "."
)

// CatalogTable qualifies a catalog table with its schema. An empty schema leaves the name bare.
func CatalogTable(schema, table string) string {
	if schema == "" {
		return table
	}

	return schema + catalogSchemaSuffix + table
}

// MatchedListingRow is the scan target of the matched-listings query.
type MatchedListingRow struct {
	ActivityIdx  int64
	AssetIdx     int64
	AssetName    string
	Price        *float64
	ActivityDate time.Time
}

// ActivityDateRow is the scan target of the earliest-listing query.
type ActivityDateRow struct {
	ActivityDate time.Time
}

// ActivityTypeRow is a dim_activity_types row.
type ActivityTypeRow struct {
	ActivityTypeIdx  int64
	ActivityTypeCode *string
	ActivityTypeName *string
}

// ActivityFeedRow is the scan target of the activity feed query. Asset columns are null when the
// asset is missing from the catalog.
type ActivityFeedRow struct {
	ActivityIdx      int64
	ActivityTypeIdx  int64
	AssetIdx         int64
	Price            *float64
	ActivityDate     time.Time
	ActivityTypeCode *string
	ActivityTypeName *string
	AssetID          *string
	AssetName        *string
	Producer         *string
	IsListed         *bool
}

// AssetRow is an assets row.
type AssetRow struct {
	AssetIdx    int64
	AssetID     string
	Name        string
	Producer    *string
	BottledYear *int
	Age         *int
	Price       *float64
	IsListed    *bool
}
