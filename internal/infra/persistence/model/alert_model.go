package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AlertModel is the GORM-specific struct for the 'alerts' table.
// UUIDs are stored as varchar so they bind as plain text parameters in INSERT ... SELECT.
type AlertModel struct {
	ID                        uuid.UUID      `gorm:"type:varchar(36);primaryKey"`
	UserID                    uuid.UUID      `gorm:"type:varchar(36);not null;index"`
	Name                      string         `gorm:"type:text;not null"`
	MatchStrings              pq.StringArray `gorm:"type:text[];not null"`
	MatchAll                  bool           `gorm:"not null;default:false"`
	MaxPrice                  int            `gorm:"not null"`
	BottledYearMin            *int
	BottledYearMax            *int
	AgeMin                    *int
	AgeMax                    *int
	MatchingAssetsString      *string `gorm:"type:varchar(200)"`
	MatchingAssetsLastUpdated *time.Time
	CreatedAt                 time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}

// AlertAssetModel is the GORM-specific struct for the 'alert_assets' association table.
// (alert_id, activity_idx) is unique and alert_id cascades on alert deletion.
type AlertAssetModel struct {
	AlertID     uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:alert_assets_alert_id_activity_idx_unique,priority:1"`
	ActivityIdx int64     `gorm:"not null;uniqueIndex:alert_assets_alert_id_activity_idx_unique,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (AlertAssetModel) TableName() string {
	return "alert_assets"
}

// ListingMatchModel is the GORM-specific struct for the 'alert_matches' table read by the notification pipeline.
type ListingMatchModel struct {
	MatchIdx      int64     `gorm:"primaryKey;autoIncrement"`
	AlertID       uuid.UUID `gorm:"type:varchar(36);not null;index"`
	ListingSource string    `gorm:"type:varchar(50);not null"`
	ActivityIdx   int64     `gorm:"not null"`
	AssetIdx      int64     `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ListingMatchModel) TableName() string {
	return "alert_matches"
}
