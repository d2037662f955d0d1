package postgres_test

import (
	"context"
	"testing"
	"time"

	"baxpro/internal/domain/entity"
	"baxpro/internal/domain/repository"
	"baxpro/internal/infra/persistence/postgres"
	"baxpro/internal/matching"
	"baxpro/internal/testutil/sqlitedb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func insertMatches(t *testing.T, repo repository.MatchRepository, alert *entity.Alert) int64 {
	t.Helper()

	n, err := repo.InsertMatchingAlertAssets(context.Background(), alert.ID,
		matching.BuildPredicate(matching.CriteriaFromAlert(alert)))
	require.NoError(t, err)

	return n
}

func TestMatchRepository_InsertMatchingAlertAssets_AnyMode(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := postgres.NewMatchRepository(db, "")

	sqlitedb.Listing(t, db, 1, "Pappy Van Winkle 15yr", 450)
	sqlitedb.Listing(t, db, 2, "Old Pappy's Blend", 600)
	sqlitedb.Listing(t, db, 3, "Eagle Rare", 100)

	alert := createAlert(t, db, newAlert(uuid.New(), "pappy", "Pappy"))

	assert.Equal(t, int64(1), insertMatches(t, repo, alert))
	assert.Equal(t, []int64{1}, sqlitedb.AlertAssetIDs(t, db, alert.ID))
}

func TestMatchRepository_InsertMatchingAlertAssets_AllMode(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := postgres.NewMatchRepository(db, "")

	sqlitedb.Listing(t, db, 1, "Eagle Rare 17 BTAC 2020", 800)
	sqlitedb.Listing(t, db, 2, "Eagle Rare 17", 800)

	alert := newAlert(uuid.New(), "btac", "BTAC", "Eagle Rare 17")
	alert.MatchAll = true
	alert.MaxPrice = 1000
	createAlert(t, db, alert)

	assert.Equal(t, int64(1), insertMatches(t, repo, alert))
	assert.Equal(t, []int64{1}, sqlitedb.AlertAssetIDs(t, db, alert.ID))
}

func TestMatchRepository_InsertMatchingAlertAssets_PunctuationAndCase(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := postgres.NewMatchRepository(db, "")

	sqlitedb.Listing(t, db, 1, "W.L. Weller's 12-Year", 90)
	sqlitedb.Listing(t, db, 2, "Weller Antique 107", 90)

	alert := createAlert(t, db, newAlert(uuid.New(), "weller", "wl wellers"))

	assert.Equal(t, int64(1), insertMatches(t, repo, alert))
	assert.Equal(t, []int64{1}, sqlitedb.AlertAssetIDs(t, db, alert.ID))
}

func TestMatchRepository_InsertMatchingAlertAssets_KeepsSpaceLeftByRemovedPunctuation(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := postgres.NewMatchRepository(db, "")

	sqlitedb.Listing(t, db, 1, "Weller 2012", 50)
	sqlitedb.Listing(t, db, 2, "W.L. Weller 12", 50)

	alert := createAlert(t, db, newAlert(uuid.New(), "weller twelve", "& 12"))

	assert.Equal(t, int64(1), insertMatches(t, repo, alert))
	assert.Equal(t, []int64{2}, sqlitedb.AlertAssetIDs(t, db, alert.ID))
}

func TestMatchRepository_InsertMatchingAlertAssets_PriceBoundary(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := postgres.NewMatchRepository(db, "")

	sqlitedb.Listing(t, db, 1, "Stagg Jr", 500)
	sqlitedb.Listing(t, db, 2, "Stagg Jr", 500.01)

	alert := createAlert(t, db, newAlert(uuid.New(), "stagg", "Stagg"))

	assert.Equal(t, int64(1), insertMatches(t, repo, alert))
	assert.Equal(t, []int64{1}, sqlitedb.AlertAssetIDs(t, db, alert.ID))
}

func TestMatchRepository_InsertMatchingAlertAssets_YearAndAgeRanges(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := postgres.NewMatchRepository(db, "")

	seed := func(idx int64, year, age *int) {
		sqlitedb.AddAsset(t, db, sqlitedb.Asset{Idx: idx, Name: "Van Winkle", BottledYear: year, Age: age})
		sqlitedb.AddEvent(t, db, sqlitedb.Event{Idx: idx, AssetIdx: idx, Price: floatPtr(100)})
	}
	seed(1, intPtr(2000), intPtr(10))
	seed(2, intPtr(2010), intPtr(12))
	seed(3, intPtr(2011), intPtr(15))
	seed(4, nil, nil)

	tests := []struct {
		name   string
		mutate func(a *entity.Alert)
		want   []int64
	}{
		{name: "no bounds", mutate: func(*entity.Alert) {}, want: []int64{1, 2, 3, 4}},
		{
			name:   "inclusive year range",
			mutate: func(a *entity.Alert) { a.BottledYearMin, a.BottledYearMax = intPtr(2000), intPtr(2010) },
			want:   []int64{1, 2},
		},
		{name: "year min only", mutate: func(a *entity.Alert) { a.BottledYearMin = intPtr(2010) }, want: []int64{2, 3}},
		{name: "age max only", mutate: func(a *entity.Alert) { a.AgeMax = intPtr(12) }, want: []int64{1, 2}},
		{
			name:   "year and age together",
			mutate: func(a *entity.Alert) { a.BottledYearMin, a.AgeMin, a.AgeMax = intPtr(2005), intPtr(12), intPtr(15) },
			want:   []int64{2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := newAlert(uuid.New(), tt.name, "van winkle")
			tt.mutate(alert)
			createAlert(t, db, alert)

			assert.Equal(t, int64(len(tt.want)), insertMatches(t, repo, alert))
			assert.Equal(t, tt.want, sqlitedb.AlertAssetIDs(t, db, alert.ID))
		})
	}
}

func TestMatchRepository_InsertMatchingAlertAssets_OnlyPricedNewListings(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := postgres.NewMatchRepository(db, "")

	sqlitedb.AddAsset(t, db, sqlitedb.Asset{Idx: 1, Name: "Blanton's Gold"})
	sqlitedb.AddEvent(t, db, sqlitedb.Event{Idx: 1, AssetIdx: 1, Price: floatPtr(120)})
	sqlitedb.AddEvent(t, db, sqlitedb.Event{Idx: 2, AssetIdx: 1, Price: nil})
	sqlitedb.AddEvent(t, db, sqlitedb.Event{Idx: 3, AssetIdx: 1, Price: floatPtr(130), TypeIdx: sqlitedb.ActivityTypeSale})
	sqlitedb.AddEvent(t, db, sqlitedb.Event{Idx: 4, AssetIdx: 1, Price: floatPtr(125)})

	alert := createAlert(t, db, newAlert(uuid.New(), "blantons", "Blantons"))

	assert.Equal(t, int64(2), insertMatches(t, repo, alert))
	assert.Equal(t, []int64{1, 4}, sqlitedb.AlertAssetIDs(t, db, alert.ID))
}

func TestMatchRepository_InsertMatchingAlertAssets_IgnoresExistingPairs(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := postgres.NewMatchRepository(db, "")

	sqlitedb.Listing(t, db, 1, "Pappy Van Winkle 15yr", 450)
	sqlitedb.Listing(t, db, 2, "Pappy Van Winkle 20yr", 480)

	alert := createAlert(t, db, newAlert(uuid.New(), "pappy", "Pappy"))
	require.NoError(t, repo.AddAlertAsset(context.Background(), alert.ID, 1))

	assert.Equal(t, int64(1), insertMatches(t, repo, alert))
	assert.Equal(t, []int64{1, 2}, sqlitedb.AlertAssetIDs(t, db, alert.ID))
}

func TestMatchRepository_AddAlertAsset(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := postgres.NewMatchRepository(db, "")
	ctx := context.Background()

	sqlitedb.Listing(t, db, 7, "Stagg", 200)
	alert := createAlert(t, db, newAlert(uuid.New(), "stagg", "Stagg"))

	require.NoError(t, repo.AddAlertAsset(ctx, alert.ID, 7))
	require.NoError(t, repo.AddAlertAsset(ctx, alert.ID, 7))
	assert.Equal(t, []int64{7}, sqlitedb.AlertAssetIDs(t, db, alert.ID))

	assert.ErrorIs(t, repo.AddAlertAsset(ctx, uuid.New(), 7), repository.ErrAlertNotFound)
}

func TestMatchRepository_AddAlertAsset_ActivityNotInFeedIsSkipped(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := postgres.NewMatchRepository(db, "")
	ctx := context.Background()

	alert := createAlert(t, db, newAlert(uuid.New(), "stagg", "Stagg"))

	err := repo.AddAlertAsset(ctx, alert.ID, 404)

	require.NoError(t, err)
	assert.Empty(t, sqlitedb.AlertAssetIDs(t, db, alert.ID))
}

func TestMatchRepository_DeleteAlertAssets(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := postgres.NewMatchRepository(db, "")
	ctx := context.Background()

	sqlitedb.Listing(t, db, 1, "Weller 12", 60)
	sqlitedb.Listing(t, db, 2, "Weller Full Proof", 70)
	alert := createAlert(t, db, newAlert(uuid.New(), "weller", "Weller"))
	other := createAlert(t, db, newAlert(uuid.New(), "weller too", "Weller"))
	insertMatches(t, repo, alert)
	insertMatches(t, repo, other)

	deleted, err := repo.DeleteAlertAssets(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.Empty(t, sqlitedb.AlertAssetIDs(t, db, alert.ID))
	assert.Equal(t, []int64{1, 2}, sqlitedb.AlertAssetIDs(t, db, other.ID))
}

func TestMatchRepository_FindMatchedListings(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := postgres.NewMatchRepository(db, "")
	ctx := context.Background()

	base := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"Stagg 23A", "Stagg 23B", "Stagg 24A"} {
		idx := int64(i + 1)
		sqlitedb.AddAsset(t, db, sqlitedb.Asset{Idx: idx, Name: name})
		sqlitedb.AddEvent(t, db, sqlitedb.Event{
			Idx: idx, AssetIdx: idx, Price: floatPtr(100 + float64(i)), Date: base.AddDate(0, 0, i),
		})
	}
	alert := createAlert(t, db, newAlert(uuid.New(), "stagg", "Stagg"))
	insertMatches(t, repo, alert)

	listings, err := repo.FindMatchedListings(ctx, alert.ID, 2, 0)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, int64(3), listings[0].ActivityIdx)
	assert.Equal(t, "Stagg 24A", listings[0].AssetName)
	assert.InDelta(t, 102.0, listings[0].Price, 0.001)
	assert.True(t, base.AddDate(0, 0, 2).Equal(listings[0].ActivityDate))
	assert.Equal(t, int64(2), listings[1].ActivityIdx)

	page, err := repo.FindMatchedListings(ctx, alert.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, int64(1), page[0].ActivityIdx)
}

func TestMatchRepository_EarliestListingDate(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := postgres.NewMatchRepository(db, "")
	ctx := context.Background()

	_, ok, err := repo.EarliestListingDate(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	oldest := time.Date(2025, time.June, 25, 0, 0, 0, 0, time.UTC)
	sqlitedb.AddAsset(t, db, sqlitedb.Asset{Idx: 1, Name: "Pappy"})
	sqlitedb.AddEvent(t, db, sqlitedb.Event{Idx: 1, AssetIdx: 1, Price: nil, Date: oldest.AddDate(0, -1, 0)})
	sqlitedb.AddEvent(t, db, sqlitedb.Event{Idx: 2, AssetIdx: 1, Price: floatPtr(10), TypeIdx: sqlitedb.ActivityTypeSale, Date: oldest.AddDate(0, -2, 0)})
	sqlitedb.AddEvent(t, db, sqlitedb.Event{Idx: 3, AssetIdx: 1, Price: floatPtr(10), Date: oldest.AddDate(0, 1, 0)})
	sqlitedb.AddEvent(t, db, sqlitedb.Event{Idx: 4, AssetIdx: 1, Price: floatPtr(10), Date: oldest})

	earliest, ok, err := repo.EarliestListingDate(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, oldest.Equal(earliest))
}
