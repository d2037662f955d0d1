//go:build integration

package containers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// CatalogSchema is the schema the catalog tables are created in, as in production.
const CatalogSchema = "baxus"

const postgresImage = "postgres:16-alpine"

var schema = []string{
	`CREATE SCHEMA IF NOT EXISTS baxus`,
	`CREATE TABLE alerts (
		id VARCHAR(36) PRIMARY KEY,
		user_id VARCHAR(36) NOT NULL,
		name TEXT NOT NULL,
		match_strings TEXT[] NOT NULL,
		match_all BOOLEAN NOT NULL DEFAULT false,
		max_price INTEGER NOT NULL,
		bottled_year_min INTEGER,
		bottled_year_max INTEGER,
		age_min INTEGER,
		age_max INTEGER,
		matching_assets_string VARCHAR(200),
		matching_assets_last_updated TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE baxus.assets (
		asset_idx SERIAL PRIMARY KEY,
		asset_id CHAR(44) NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		producer TEXT,
		bottled_year INTEGER,
		age INTEGER,
		price DOUBLE PRECISION,
		is_listed BOOLEAN
	)`,
	`CREATE TABLE baxus.dim_activity_types (
		activity_type_idx SERIAL PRIMARY KEY,
		activity_type_code VARCHAR(50),
		activity_type_name VARCHAR(100)
	)`,
	`CREATE TABLE baxus.activity_feed (
		activity_idx SERIAL PRIMARY KEY,
		activity_type_idx INTEGER NOT NULL,
		asset_idx INTEGER NOT NULL,
		price DOUBLE PRECISION,
		activity_date TIMESTAMP NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE alert_assets (
		alert_id VARCHAR(36) NOT NULL,
		activity_idx INTEGER NOT NULL,
		CONSTRAINT alert_assets_alert_id_fkey FOREIGN KEY (alert_id) REFERENCES alerts(id) ON DELETE CASCADE,
		CONSTRAINT alert_assets_activity_idx_fkey FOREIGN KEY (activity_idx)
			REFERENCES baxus.activity_feed(activity_idx) ON DELETE CASCADE,
		CONSTRAINT alert_assets_alert_id_activity_idx_unique UNIQUE (alert_id, activity_idx)
	)`,
	`CREATE TABLE alert_matches (
		match_idx SERIAL PRIMARY KEY,
		alert_id VARCHAR(36) NOT NULL REFERENCES alerts(id) ON DELETE CASCADE,
		listing_source VARCHAR(50) NOT NULL,
		activity_idx INTEGER NOT NULL,
		asset_idx INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT now()
	)`,
	`INSERT INTO baxus.dim_activity_types (activity_type_idx, activity_type_code, activity_type_name) VALUES
		(1, 'NEW_LISTING', 'New listing'),
		(2, 'SALE', 'Sale')`,
}

// StartPostgres runs a Postgres container with the alert and catalog schema and returns a GORM
// handle to it. The container is terminated when the test ends.
func StartPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, postgresImage,
		tcpostgres.WithDatabase("baxpro_test"),
		tcpostgres.WithUsername("baxpro"),
		tcpostgres.WithPassword("baxpro"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err, "failed to start Postgres container")
	t.Cleanup(func() {
		// Background context so cleanup succeeds even after the test context is done.
		_ = testcontainers.TerminateContainer(container)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "failed to open Postgres")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	for _, stmt := range schema {
		require.NoError(t, db.Exec(stmt).Error, "failed to create schema")
	}

	return db
}
