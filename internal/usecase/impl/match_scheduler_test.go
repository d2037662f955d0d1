package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"baxpro/internal/domain/entity"
	domainerrors "baxpro/internal/domain/errors"
	"baxpro/internal/infra/metrics"
	mockRepo "baxpro/internal/mocks/repository"
	mockUsecase "baxpro/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
)

const waitFor = 2 * time.Second

func found(alertID uuid.UUID, matched int) *entity.MatchResult {
	return &entity.MatchResult{AlertID: alertID, Found: true, Matched: matched}
}

func newTestScheduler(t *testing.T, queueSize int) (*matchScheduler, *mockUsecase.MockMatchUsecase, *mockRepo.MockAlertRepository) {
	t.Helper()

	matcher := mockUsecase.NewMockMatchUsecase(t)
	alertRepo := mockRepo.NewMockAlertRepository(t)
	cfg := testMatcherConfig()
	cfg.QueueSize = queueSize

	s := newMatchScheduler(discardLogger(), cfg, matcher, alertRepo, nil)
	s.retryInterval = time.Millisecond
	t.Cleanup(s.cancel)

	return s, matcher, alertRepo
}

func TestMatchScheduler_ProcessesQueuedAlerts(t *testing.T) {
	defer goleak.VerifyNone(t)

	s, matcher, _ := newTestScheduler(t, 8)
	alertID := uuid.New()
	done := make(chan struct{})

	matcher.EXPECT().
		RecomputeAlertMatches(mock.Anything, alertID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.MatchResult, error) {
			close(done)

			return found(alertID, 2), nil
		}).
		Once()

	s.start()
	require.NoError(t, s.Enqueue(alertID))

	select {
	case <-done:
	case <-time.After(waitFor):
		t.Fatal("alert was not recomputed")
	}

	require.NoError(t, s.stop(context.Background()))
}

func TestMatchScheduler_CoalescesPendingAlert(t *testing.T) {
	s, _, _ := newTestScheduler(t, 8)
	alertID := uuid.New()

	require.NoError(t, s.Enqueue(alertID))
	require.NoError(t, s.Enqueue(alertID))
	require.NoError(t, s.Enqueue(uuid.New()))

	assert.Len(t, s.queue, 2)
}

func TestMatchScheduler_QueueFull(t *testing.T) {
	reg := prometheus.NewRegistry()
	s, _, _ := newTestScheduler(t, 1)
	s.metrics = metrics.New(reg)

	require.NoError(t, s.Enqueue(uuid.New()))

	err := s.Enqueue(uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrMatchQueueFull)
	assert.Len(t, s.queue, 1)

	count, err := testutil.GatherAndCount(reg, "baxpro_matcher_recompute_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMatchScheduler_RequeuesAfterDequeue(t *testing.T) {
	s, _, _ := newTestScheduler(t, 8)
	alertID := uuid.New()

	require.NoError(t, s.Enqueue(alertID))
	<-s.queue
	s.mu.Lock()
	delete(s.pending, alertID)
	s.mu.Unlock()

	require.NoError(t, s.Enqueue(alertID))
	assert.Len(t, s.queue, 1)
}

func TestMatchScheduler_RetriesStoreFailures(t *testing.T) {
	s, matcher, _ := newTestScheduler(t, 8)
	alertID := uuid.New()
	errDB := errors.New("deadlock detected")

	matcher.EXPECT().RecomputeAlertMatches(mock.Anything, alertID).Return(nil, errDB).Twice()
	matcher.EXPECT().RecomputeAlertMatches(mock.Anything, alertID).Return(found(alertID, 1), nil).Once()

	require.NoError(t, s.recompute(context.Background(), alertID))
}

func TestMatchScheduler_GivesUpAfterMaxRetries(t *testing.T) {
	s, matcher, _ := newTestScheduler(t, 8)
	alertID := uuid.New()
	errDB := errors.New("connection refused")

	// maxRetries 2 means three attempts in total.
	matcher.EXPECT().RecomputeAlertMatches(mock.Anything, alertID).Return(nil, errDB).Times(3)

	err := s.recompute(context.Background(), alertID)
	require.ErrorIs(t, err, errDB)
}

func TestMatchScheduler_MissingAlertIsNotAnError(t *testing.T) {
	s, matcher, _ := newTestScheduler(t, 8)
	alertID := uuid.New()

	matcher.EXPECT().
		RecomputeAlertMatches(mock.Anything, alertID).
		Return(&entity.MatchResult{AlertID: alertID}, nil).
		Once()

	require.NoError(t, s.recompute(context.Background(), alertID))
}

func TestMatchScheduler_RefreshAll_RecordsFailures(t *testing.T) {
	s, matcher, alertRepo := newTestScheduler(t, 8)
	ctx := context.Background()
	ok1, ok2, broken := uuid.New(), uuid.New(), uuid.New()

	alertRepo.EXPECT().ListAlertIDs(ctx).Return([]uuid.UUID{ok1, broken, ok2}, nil)
	matcher.EXPECT().RecomputeAlertMatches(mock.Anything, ok1).Return(found(ok1, 1), nil)
	matcher.EXPECT().RecomputeAlertMatches(mock.Anything, ok2).Return(found(ok2, 0), nil)
	matcher.EXPECT().RecomputeAlertMatches(mock.Anything, broken).Return(nil, errors.New("timeout"))

	run, err := s.RefreshAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.RefreshRunCompleted, run.Status)
	assert.Equal(t, 3, run.Total)
	assert.Equal(t, 2, run.Succeeded)
	assert.Equal(t, []uuid.UUID{broken}, run.FailedAlertIDs)
	require.NotNil(t, run.FinishedAt)

	stored, err := s.GetRefreshRun(run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.Succeeded, stored.Succeeded)
}

func TestMatchScheduler_RefreshAll_BoundedConcurrency(t *testing.T) {
	s, matcher, alertRepo := newTestScheduler(t, 8)
	s.refreshConcurrency = 2
	ctx := context.Background()

	ids := make([]uuid.UUID, 10)
	for i := range ids {
		ids[i] = uuid.New()
	}
	alertRepo.EXPECT().ListAlertIDs(ctx).Return(ids, nil)

	var inFlight, peak atomic.Int32
	matcher.EXPECT().
		RecomputeAlertMatches(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.MatchResult, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)

			return found(id, 0), nil
		})

	run, err := s.RefreshAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, run.Succeeded)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestMatchScheduler_RefreshAll_ListFailure(t *testing.T) {
	s, _, alertRepo := newTestScheduler(t, 8)
	ctx := context.Background()

	alertRepo.EXPECT().ListAlertIDs(ctx).Return(nil, errors.New("connection refused"))

	_, err := s.RefreshAll(ctx)
	require.Error(t, err)
}

func TestMatchScheduler_GetRefreshRun_Unknown(t *testing.T) {
	s, _, _ := newTestScheduler(t, 8)

	_, err := s.GetRefreshRun(uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrRefreshRunNotFound)
}

func TestMatchScheduler_Lifecycle_StartRefreshAll(t *testing.T) {
	defer goleak.VerifyNone(t)

	lc := fxtest.NewLifecycle(t)
	matcher := mockUsecase.NewMockMatchUsecase(t)
	alertRepo := mockRepo.NewMockAlertRepository(t)
	alertID := uuid.New()

	alertRepo.EXPECT().ListAlertIDs(mock.Anything).Return([]uuid.UUID{alertID}, nil)
	matcher.EXPECT().RecomputeAlertMatches(mock.Anything, alertID).Return(found(alertID, 3), nil)

	s := NewMatchScheduler(MatchSchedulerParams{
		Lc:        lc,
		Logger:    discardLogger(),
		Config:    newTestConfig(),
		Matcher:   matcher,
		AlertRepo: alertRepo,
	})
	lc.RequireStart()

	ctx, cancel := context.WithCancel(context.Background())
	run, err := s.StartRefreshAll(ctx)
	// The run belongs to the scheduler, not the request that started it.
	cancel()
	require.NoError(t, err)
	assert.Equal(t, entity.RefreshRunRunning, run.Status)
	assert.Equal(t, 1, run.Total)

	assert.Eventually(t, func() bool {
		current, err := s.GetRefreshRun(run.ID)

		return err == nil && current.Status == entity.RefreshRunCompleted && current.Succeeded == 1
	}, waitFor, 5*time.Millisecond)

	lc.RequireStop()

	require.Error(t, s.Enqueue(uuid.New()))
}

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	k := newKeyedMutex()
	key := uuid.New()

	var (
		wg      sync.WaitGroup
		holders atomic.Int32
		overlap atomic.Bool
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock := k.Lock(key)
			if holders.Add(1) > 1 {
				overlap.Store(true)
			}
			time.Sleep(time.Millisecond)
			holders.Add(-1)
			unlock()
		}()
	}
	wg.Wait()

	assert.False(t, overlap.Load())
	assert.Zero(t, k.size())
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	k := newKeyedMutex()

	unlockA := k.Lock(uuid.New())
	unlockB := k.Lock(uuid.New())
	assert.Equal(t, 2, k.size())

	unlockA()
	unlockB()
	assert.Zero(t, k.size())
}
