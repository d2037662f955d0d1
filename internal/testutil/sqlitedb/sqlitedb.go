// Package sqlitedb opens in-memory SQLite databases laid out like the production schema, for
// repository and recomputation tests that need real SQL without a Postgres server.
package sqlitedb

import (
	"database/sql"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DriverName is the database/sql driver with the Postgres helper functions the matcher relies on.
const DriverName = "sqlite3_baxpro"

// Activity type rows seeded into every database.
const (
	ActivityTypeNewListing  int64 = 1
	ActivityTypeSale        int64 = 2
	ActivityTypePriceChange int64 = 3
)

var (
	registerOnce sync.Once

	patternMu    sync.Mutex
	patternCache = map[string]*regexp.Regexp{}
)

var schema = []string{
	`CREATE TABLE alerts (
		id VARCHAR(36) PRIMARY KEY,
		user_id VARCHAR(36) NOT NULL,
		name TEXT NOT NULL,
		match_strings TEXT NOT NULL,
		match_all BOOLEAN NOT NULL DEFAULT 0,
		max_price INTEGER NOT NULL,
		bottled_year_min INTEGER,
		bottled_year_max INTEGER,
		age_min INTEGER,
		age_max INTEGER,
		matching_assets_string VARCHAR(200),
		matching_assets_last_updated DATETIME,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE assets (
		asset_idx INTEGER PRIMARY KEY,
		asset_id CHAR(44) NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		producer TEXT,
		bottled_year INTEGER,
		age INTEGER,
		price REAL,
		is_listed BOOLEAN
	)`,
	`CREATE TABLE dim_activity_types (
		activity_type_idx INTEGER PRIMARY KEY,
		activity_type_code VARCHAR(50),
		activity_type_name VARCHAR(100)
	)`,
	`CREATE TABLE activity_feed (
		activity_idx INTEGER PRIMARY KEY,
		activity_type_idx INTEGER NOT NULL,
		asset_idx INTEGER NOT NULL,
		price REAL,
		activity_date DATETIME NOT NULL
	)`,
	`CREATE TABLE alert_assets (
		alert_id VARCHAR(36) NOT NULL,
		activity_idx INTEGER NOT NULL,
		CONSTRAINT alert_assets_alert_id_fkey FOREIGN KEY (alert_id) REFERENCES alerts(id) ON DELETE CASCADE,
		CONSTRAINT alert_assets_activity_idx_fkey FOREIGN KEY (activity_idx)
			REFERENCES activity_feed(activity_idx) ON DELETE CASCADE,
		CONSTRAINT alert_assets_alert_id_activity_idx_unique UNIQUE (alert_id, activity_idx)
	)`,
	`CREATE TABLE alert_matches (
		match_idx INTEGER PRIMARY KEY AUTOINCREMENT,
		alert_id VARCHAR(36) NOT NULL REFERENCES alerts(id) ON DELETE CASCADE,
		listing_source VARCHAR(50) NOT NULL,
		activity_idx INTEGER NOT NULL,
		asset_idx INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`INSERT INTO dim_activity_types (activity_type_idx, activity_type_code, activity_type_name) VALUES
		(1, 'NEW_LISTING', 'New listing'),
		(2, 'SALE', 'Sale'),
		(3, 'PRICE_CHANGE', 'Price change')`,
}

func register() {
	registerOnce.Do(func() {
		sql.Register(DriverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("regexp_replace", regexpReplace, true)
			},
		})
	})
}

// regexpReplace implements the four-argument Postgres REGEXP_REPLACE. Only the global flag is used by
// the matcher, so flags are accepted and replacement is always global.
func regexpReplace(s, pattern, replacement, _ string) (string, error) {
	patternMu.Lock()
	re, ok := patternCache[pattern]
	if !ok {
		var err error
		re, err = regexp.Compile(pattern)
		if err != nil {
			patternMu.Unlock()

			return "", err
		}
		patternCache[pattern] = re
	}
	patternMu.Unlock()

	return re.ReplaceAllString(s, replacement), nil
}

// Open returns a fresh schema in a private in-memory database. The pool holds a single
// connection so every statement sees the same database.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	register()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: DriverName, DSN: dsn}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "failed to open in-memory database")

	sqlDB, err := db.DB()
	require.NoError(t, err, "failed to get sql.DB")
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range schema {
		require.NoError(t, db.Exec(stmt).Error, "failed to create schema")
	}

	return db
}

// Asset is a catalog row to seed.
type Asset struct {
	Idx         int64
	AssetID     string
	Name        string
	Producer    *string
	BottledYear *int
	Age         *int
	IsListed    *bool
}

// AddAsset inserts a catalog asset. AssetID is space padded the way a CHAR(44) column stores it.
func AddAsset(t *testing.T, db *gorm.DB, a Asset) {
	t.Helper()

	err := db.Exec(`INSERT INTO assets (asset_idx, asset_id, name, producer, bottled_year, age, is_listed)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.Idx, fmt.Sprintf("%-44s", a.AssetID), a.Name, a.Producer, a.BottledYear, a.Age, a.IsListed).Error
	require.NoError(t, err, "failed to seed asset")
}

// Event is an activity_feed row to seed. A nil Price stores NULL.
type Event struct {
	Idx      int64
	AssetIdx int64
	TypeIdx  int64
	Price    *float64
	Date     time.Time
}

// AddEvent inserts an activity event. TypeIdx defaults to ActivityTypeNewListing.
func AddEvent(t *testing.T, db *gorm.DB, e Event) {
	t.Helper()

	if e.TypeIdx == 0 {
		e.TypeIdx = ActivityTypeNewListing
	}
	if e.Date.IsZero() {
		e.Date = time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	}

	err := db.Exec(`INSERT INTO activity_feed (activity_idx, activity_type_idx, asset_idx, price, activity_date) VALUES (?, ?, ?, ?, ?)`,
		e.Idx, e.TypeIdx, e.AssetIdx, e.Price, e.Date).Error
	require.NoError(t, err, "failed to seed activity event")
}

// Listing seeds an asset with a single priced new-listing event using the same index for both.
func Listing(t *testing.T, db *gorm.DB, idx int64, name string, price float64) {
	t.Helper()

	AddAsset(t, db, Asset{Idx: idx, Name: name})
	AddEvent(t, db, Event{Idx: idx, AssetIdx: idx, Price: &price})
}

// AlertAssetIDs returns the activity indexes associated with an alert, ascending.
func AlertAssetIDs(t *testing.T, db *gorm.DB, alertID uuid.UUID) []int64 {
	t.Helper()

	var ids []int64
	err := db.Raw(`SELECT activity_idx FROM alert_assets WHERE alert_id = ? ORDER BY activity_idx`, alertID).
		Scan(&ids).Error
	require.NoError(t, err)

	return ids
}
