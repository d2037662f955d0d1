package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"baxpro/internal/domain/entity"
	"baxpro/internal/domain/repository"
	"baxpro/internal/infra/persistence/postgres"
	"baxpro/internal/matching"
	mockRepo "baxpro/internal/mocks/repository"
	"baxpro/internal/testutil/sqlitedb"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

type matchServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	alertRepo *mockRepo.MockAlertRepository
	matchRepo *mockRepo.MockMatchRepository
	txMatch   *mockRepo.MockMatchRepository
}

func newMockedMatchService(t *testing.T) (*matchService, matchServiceMocks) {
	m := matchServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		alertRepo: mockRepo.NewMockAlertRepository(t),
		matchRepo: mockRepo.NewMockMatchRepository(t),
		txMatch:   mockRepo.NewMockMatchRepository(t),
	}
	runInTx(m.txManager, m.factory)
	m.factory.EXPECT().NewAlertRepository().Return(m.alertRepo).Maybe()
	m.factory.EXPECT().NewMatchRepository().Return(m.txMatch).Maybe()

	svc := NewMatchServiceWithClock(discardLogger(), testMatcherConfig(), m.txManager, m.matchRepo, fixedClock)

	return svc.(*matchService), m
}

func TestMatchService_Recompute(t *testing.T) {
	svc, m := newMockedMatchService(t)
	ctx := context.Background()
	alert := &entity.Alert{ID: uuid.New(), MatchStrings: []string{"pappy"}, MaxPrice: 500}

	m.alertRepo.EXPECT().LockAlertByID(ctx, alert.ID).Return(alert, nil)
	m.txMatch.EXPECT().DeleteAlertAssets(ctx, alert.ID).Return(4, nil)
	m.txMatch.EXPECT().
		InsertMatchingAlertAssets(ctx, alert.ID, mock.AnythingOfType("*matching.Predicate")).
		Return(3, nil)
	m.alertRepo.EXPECT().
		UpdateMatchSummary(ctx, alert.ID, "3 matches in the last 4 months", fixedNow).
		Return(nil)

	result, err := svc.RecomputeAlertMatches(ctx, alert.ID)
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, 3, result.Matched)
	assert.Equal(t, fixedNow, result.ComputedAt)
}

func TestMatchService_Recompute_MissingAlert(t *testing.T) {
	svc, m := newMockedMatchService(t)
	ctx := context.Background()
	alertID := uuid.New()

	m.alertRepo.EXPECT().LockAlertByID(ctx, alertID).Return(nil, repository.ErrAlertNotFound)

	result, err := svc.RecomputeAlertMatches(ctx, alertID)
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Zero(t, result.Matched)
	assert.Empty(t, result.Summary)
}

func TestMatchService_Recompute_NoUsableFragments(t *testing.T) {
	svc, m := newMockedMatchService(t)
	ctx := context.Background()
	alert := &entity.Alert{ID: uuid.New(), MatchStrings: []string{"!!!", "  "}, MaxPrice: 500}

	m.alertRepo.EXPECT().LockAlertByID(ctx, alert.ID).Return(alert, nil)
	m.txMatch.EXPECT().DeleteAlertAssets(ctx, alert.ID).Return(2, nil)
	m.alertRepo.EXPECT().UpdateMatchSummary(ctx, alert.ID, matching.NoMatches, fixedNow).Return(nil)

	result, err := svc.RecomputeAlertMatches(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Matched)
	assert.Equal(t, matching.NoMatches, result.Summary)
}

func TestMatchService_Recompute_StoreFailures(t *testing.T) {
	errDB := errors.New("connection reset")

	t.Run("insert", func(t *testing.T) {
		svc, m := newMockedMatchService(t)
		ctx := context.Background()
		alert := &entity.Alert{ID: uuid.New(), MatchStrings: []string{"pappy"}}

		m.alertRepo.EXPECT().LockAlertByID(ctx, alert.ID).Return(alert, nil)
		m.txMatch.EXPECT().DeleteAlertAssets(ctx, alert.ID).Return(0, nil)
		m.txMatch.EXPECT().InsertMatchingAlertAssets(ctx, alert.ID, mock.Anything).Return(0, errDB)

		_, err := svc.RecomputeAlertMatches(ctx, alert.ID)
		require.ErrorIs(t, err, errDB)
	})

	t.Run("summary", func(t *testing.T) {
		svc, m := newMockedMatchService(t)
		ctx := context.Background()
		alert := &entity.Alert{ID: uuid.New(), MatchStrings: []string{"pappy"}}

		m.alertRepo.EXPECT().LockAlertByID(ctx, alert.ID).Return(alert, nil)
		m.txMatch.EXPECT().DeleteAlertAssets(ctx, alert.ID).Return(0, nil)
		m.txMatch.EXPECT().InsertMatchingAlertAssets(ctx, alert.ID, mock.Anything).Return(1, nil)
		m.alertRepo.EXPECT().UpdateMatchSummary(ctx, alert.ID, mock.Anything, fixedNow).Return(errDB)

		_, err := svc.RecomputeAlertMatches(ctx, alert.ID)
		require.ErrorIs(t, err, errDB)
	})
}

func TestMatchService_EarliestEventDate(t *testing.T) {
	ctx := context.Background()
	dataEarliest := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("configured", func(t *testing.T) {
		matchRepo := mockRepo.NewMockMatchRepository(t)
		svc := &matchService{cfg: testMatcherConfig(), matchRepo: matchRepo, now: fixedClock}

		earliest, err := svc.earliestEventDate(ctx)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.June, 25, 0, 0, 0, 0, time.UTC), earliest)
	})

	t.Run("derived from data", func(t *testing.T) {
		matchRepo := mockRepo.NewMockMatchRepository(t)
		matchRepo.EXPECT().EarliestListingDate(ctx).Return(dataEarliest, true, nil)
		cfg := testMatcherConfig()
		cfg.EarliestEventDate = ""
		svc := &matchService{cfg: cfg, matchRepo: matchRepo, now: fixedClock}

		earliest, err := svc.earliestEventDate(ctx)
		require.NoError(t, err)
		assert.Equal(t, dataEarliest, earliest)
	})

	t.Run("no data", func(t *testing.T) {
		matchRepo := mockRepo.NewMockMatchRepository(t)
		matchRepo.EXPECT().EarliestListingDate(ctx).Return(time.Time{}, false, nil)
		cfg := testMatcherConfig()
		cfg.EarliestEventDate = ""
		svc := &matchService{cfg: cfg, matchRepo: matchRepo, now: fixedClock}

		earliest, err := svc.earliestEventDate(ctx)
		require.NoError(t, err)
		assert.Equal(t, fixedNow, earliest)
	})

	t.Run("malformed", func(t *testing.T) {
		cfg := testMatcherConfig()
		cfg.EarliestEventDate = "25/06/2025"
		svc := &matchService{cfg: cfg, now: fixedClock}

		_, err := svc.earliestEventDate(ctx)
		require.Error(t, err)
	})
}

// The remaining tests run the real repositories against an in-memory database.

func newSQLiteMatchService(t *testing.T, earliestEventDate string) (*matchService, repository.AlertRepository, *sqliteFixture) {
	t.Helper()

	db := sqlitedb.Open(t)
	cfg := testMatcherConfig()
	cfg.EarliestEventDate = earliestEventDate

	svc := NewMatchServiceWithClock(discardLogger(), cfg,
		postgres.NewTransactionManager(db, ""), postgres.NewMatchRepository(db, ""), fixedClock)

	return svc.(*matchService), postgres.NewAlertRepository(db), &sqliteFixture{t: t, db: db}
}

func TestMatchService_Recompute_EndToEnd(t *testing.T) {
	svc, alertRepo, seed := newSQLiteMatchService(t, "2025-06-25")
	ctx := context.Background()

	seed.listing(1, "Pappy Van Winkle's 15 Year", 450)
	seed.listing(2, "PAPPY VAN WINKLE 20yr", 500)
	seed.listing(3, "Pappy Van Winkle 23", 500.01)
	seed.listing(4, "Blanton's Gold", 120)

	alert := &entity.Alert{
		UserID:       uuid.New(),
		Name:         "Pappy",
		MatchStrings: []string{"van winkles", "pappy"},
		MatchAll:     false,
		MaxPrice:     500,
	}
	require.NoError(t, alertRepo.CreateAlert(ctx, alert))

	result, err := svc.RecomputeAlertMatches(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Matched)
	assert.Equal(t, "2 matches in the last 4 months", result.Summary)
	assert.Equal(t, []int64{1, 2}, seed.alertAssets(alert.ID))

	stored, err := alertRepo.FindAlertByID(ctx, alert.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.MatchingAssetsString)
	assert.Equal(t, "2 matches in the last 4 months", *stored.MatchingAssetsString)
	require.NotNil(t, stored.MatchingAssetsLastUpdated)
	assert.True(t, fixedNow.Equal(*stored.MatchingAssetsLastUpdated))

	// Narrowing the criteria drops stale associations.
	alert.MaxPrice = 460
	require.NoError(t, alertRepo.UpdateAlertCriteria(ctx, alert))

	result, err = svc.RecomputeAlertMatches(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, "1 match in the last 4 months", result.Summary)
	assert.Equal(t, []int64{1}, seed.alertAssets(alert.ID))

	// Recomputing unchanged criteria is idempotent.
	result, err = svc.RecomputeAlertMatches(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Matched)
	assert.Equal(t, []int64{1}, seed.alertAssets(alert.ID))
}

func TestMatchService_Recompute_EndToEnd_DerivedEarliest(t *testing.T) {
	svc, alertRepo, seed := newSQLiteMatchService(t, "")
	ctx := context.Background()

	// Listings default to 2025-07-01, so the window spans four 30-day months up to fixedNow.
	seed.listing(1, "Weller Special Reserve", 40)

	alert := &entity.Alert{UserID: uuid.New(), Name: "Weller", MatchStrings: []string{"weller"}, MaxPrice: 100}
	require.NoError(t, alertRepo.CreateAlert(ctx, alert))

	result, err := svc.RecomputeAlertMatches(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, "1 match in the last 4 months", result.Summary)
}

func TestMatchService_Recompute_EndToEnd_NoMatches(t *testing.T) {
	svc, alertRepo, seed := newSQLiteMatchService(t, "2025-06-25")
	ctx := context.Background()

	seed.listing(1, "Weller Special Reserve", 40)

	alert := &entity.Alert{UserID: uuid.New(), Name: "Stagg", MatchStrings: []string{"stagg"}, MaxPrice: 100}
	require.NoError(t, alertRepo.CreateAlert(ctx, alert))

	result, err := svc.RecomputeAlertMatches(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, matching.NoMatches, result.Summary)
	assert.Empty(t, seed.alertAssets(alert.ID))
}

func TestMatchService_Recompute_EndToEnd_FailedInsertKeepsPreviousMatches(t *testing.T) {
	svc, alertRepo, seed := newSQLiteMatchService(t, "2025-06-25")
	ctx := context.Background()

	seed.listing(1, "Pappy Van Winkle 15 Year", 450)
	seed.listing(2, "Pappy Van Winkle 20 Year", 480)

	alert := &entity.Alert{UserID: uuid.New(), Name: "Pappy", MatchStrings: []string{"pappy"}, MaxPrice: 500}
	require.NoError(t, alertRepo.CreateAlert(ctx, alert))

	_, err := svc.RecomputeAlertMatches(ctx, alert.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, seed.alertAssets(alert.ID))

	errDisk := errors.New("disk I/O error")
	require.NoError(t, seed.db.Callback().Raw().Before("gorm:raw").Register("test:fail_alert_assets_insert",
		func(tx *gorm.DB) {
			if strings.HasPrefix(tx.Statement.SQL.String(), "INSERT INTO alert_assets") {
				_ = tx.AddError(errDisk)
			}
		}))

	// The narrowed criteria would drop listing 2 if the recomputation committed.
	alert.MaxPrice = 460
	require.NoError(t, alertRepo.UpdateAlertCriteria(ctx, alert))

	_, err = svc.RecomputeAlertMatches(ctx, alert.ID)
	require.ErrorIs(t, err, errDisk)

	assert.Equal(t, []int64{1, 2}, seed.alertAssets(alert.ID), "delete must roll back with the failed insert")
	stored, err := alertRepo.FindAlertByID(ctx, alert.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.MatchingAssetsString)
	assert.Equal(t, "2 matches in the last 4 months", *stored.MatchingAssetsString)
}

type sqliteFixture struct {
	t  *testing.T
	db *gorm.DB
}

func (f *sqliteFixture) listing(idx int64, name string, price float64) {
	sqlitedb.Listing(f.t, f.db, idx, name, price)
}

func (f *sqliteFixture) alertAssets(alertID uuid.UUID) []int64 {
	return sqlitedb.AlertAssetIDs(f.t, f.db, alertID)
}
