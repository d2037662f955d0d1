package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"baxpro/config"
	deliverycontext "baxpro/internal/delivery/context"
	"baxpro/internal/domain/entity"
	domainerrors "baxpro/internal/domain/errors"
	"baxpro/internal/domain/repository"
	"baxpro/internal/errors"
	"baxpro/internal/infra/metrics"
	"baxpro/internal/usecase"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const defaultRetryInterval = 200 * time.Millisecond

var errSchedulerStopped = errors.New("match scheduler is stopped")

type matchScheduler struct {
	logger    *slog.Logger
	matcher   usecase.MatchUsecase
	alertRepo repository.AlertRepository
	metrics   *metrics.Metrics

	workers            int
	maxRetries         int
	refreshConcurrency int
	retryInterval      time.Duration

	queue   chan uuid.UUID
	mu      sync.Mutex
	pending map[uuid.UUID]struct{}
	stopped bool

	locks *keyedMutex
	runs  *cache.Cache

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// MatchSchedulerParams holds dependencies for the background recomputation scheduler
type MatchSchedulerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Logger    *slog.Logger
	Config    *config.Config
	Matcher   usecase.MatchUsecase
	AlertRepo repository.AlertRepository
	Metrics   *metrics.Metrics
}

// NewMatchScheduler creates the scheduler and ties its workers to the application lifecycle
func NewMatchScheduler(params MatchSchedulerParams) usecase.MatchScheduler {
	s := newMatchScheduler(params.Logger, params.Config.Matcher, params.Matcher, params.AlertRepo, params.Metrics)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.start()

			return nil
		},
		OnStop: s.stop,
	})

	return s
}

func newMatchScheduler(
	logger *slog.Logger,
	cfg *config.MatcherConfig,
	matcher usecase.MatchUsecase,
	alertRepo repository.AlertRepository,
	m *metrics.Metrics,
) *matchScheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &matchScheduler{
		logger:             logger,
		matcher:            matcher,
		alertRepo:          alertRepo,
		metrics:            m,
		workers:            cfg.Workers,
		maxRetries:         cfg.MaxRetries,
		refreshConcurrency: cfg.RefreshConcurrency,
		retryInterval:      defaultRetryInterval,
		queue:              make(chan uuid.UUID, cfg.QueueSize),
		pending:            make(map[uuid.UUID]struct{}),
		locks:              newKeyedMutex(),
		// No janitor goroutine; expired runs are purged when a new run starts.
		runs:   cache.New(cfg.RunRetention, 0),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *matchScheduler) start() {
	s.logger.Info("Starting match scheduler",
		slog.Int("workers", s.workers),
		slog.Int("queueSize", cap(s.queue)),
		slog.Int("maxRetries", s.maxRetries),
	)

	for range s.workers {
		s.wg.Add(1)
		go s.work()
	}
}

func (s *matchScheduler) stop(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	dropped := len(s.queue)
	s.mu.Unlock()

	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Match scheduler stopped", slog.Int("droppedPending", dropped))

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "match scheduler did not stop in time")
	}
}

// Enqueue implements usecase.MatchScheduler
func (s *matchScheduler) Enqueue(alertID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return errSchedulerStopped
	}
	if _, ok := s.pending[alertID]; ok {
		return nil
	}

	select {
	case s.queue <- alertID:
		s.pending[alertID] = struct{}{}
		s.metrics.SetQueueDepth(len(s.queue))

		return nil
	default:
		s.metrics.CountRecompute(metrics.ResultRejected)

		return errors.WithStack(domainerrors.ErrMatchQueueFull)
	}
}

func (s *matchScheduler) work() {
	defer s.wg.Done()

	for {
		select {
		case <-s.ctx.Done():
			return
		case alertID := <-s.queue:
			// Cleared before the recomputation so an update arriving meanwhile queues another pass.
			s.mu.Lock()
			delete(s.pending, alertID)
			s.metrics.SetQueueDepth(len(s.queue))
			s.mu.Unlock()

			_ = s.recompute(s.ctx, alertID)
		}
	}
}

// recompute runs one recomputation under the alert's in-process lock, retrying store failures
// with exponential backoff.
func (s *matchScheduler) recompute(ctx context.Context, alertID uuid.UUID) error {
	unlock := s.locks.Lock(alertID)
	defer unlock()

	start := time.Now()
	logger := deliverycontext.AlertLogger(ctx, s.logger, alertID)

	var result *entity.MatchResult
	operation := func() error {
		r, err := s.matcher.RecomputeAlertMatches(ctx, alertID)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}

			return err
		}
		result = r

		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.retryInterval

	err := backoff.RetryNotify(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(max(0, s.maxRetries))), ctx),
		func(err error, wait time.Duration) {
			logger.Warn("Recomputation failed, retrying", slog.Any("error", err), slog.Duration("wait", wait))
		},
	)
	elapsed := time.Since(start)

	switch {
	case err != nil:
		s.metrics.ObserveRecompute(metrics.ResultError, elapsed, 0)
		logger.Error("Recomputation failed", slog.Any("error", err), slog.Duration("elapsed", elapsed))

		return err
	case !result.Found:
		s.metrics.ObserveRecompute(metrics.ResultNotFound, elapsed, 0)

		return nil
	default:
		s.metrics.ObserveRecompute(metrics.ResultSuccess, elapsed, result.Matched)
		logger.Info("Recomputed alert matches",
			slog.Int("matched", result.Matched),
			slog.Duration("elapsed", elapsed),
		)

		return nil
	}
}

// RefreshAll implements usecase.MatchScheduler
func (s *matchScheduler) RefreshAll(ctx context.Context) (*entity.RefreshRun, error) {
	run, alertIDs, err := s.newRun(ctx)
	if err != nil {
		return nil, err
	}

	s.executeRun(ctx, run, alertIDs)

	return run.snapshot(), nil
}

// StartRefreshAll implements usecase.MatchScheduler. The run outlives the caller's context
// and is cancelled only when the scheduler stops.
func (s *matchScheduler) StartRefreshAll(ctx context.Context) (*entity.RefreshRun, error) {
	run, alertIDs, err := s.newRun(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()

		return nil, errSchedulerStopped
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		s.executeRun(s.ctx, run, alertIDs)
	}()

	return run.snapshot(), nil
}

// GetRefreshRun implements usecase.MatchScheduler
func (s *matchScheduler) GetRefreshRun(runID uuid.UUID) (*entity.RefreshRun, error) {
	value, ok := s.runs.Get(runID.String())
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrRefreshRunNotFound)
	}

	return value.(*refreshRun).snapshot(), nil
}

func (s *matchScheduler) newRun(ctx context.Context) (*refreshRun, []uuid.UUID, error) {
	alertIDs, err := s.alertRepo.ListAlertIDs(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list alerts for refresh")
	}

	runID, err := uuid.NewV7()
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	run := &refreshRun{run: entity.RefreshRun{
		ID:             runID,
		Status:         entity.RefreshRunRunning,
		StartedAt:      time.Now(),
		Total:          len(alertIDs),
		FailedAlertIDs: []uuid.UUID{},
	}}

	s.runs.DeleteExpired()
	s.runs.SetDefault(runID.String(), run)

	s.logger.Info("Refresh-all run started",
		slog.String("runID", runID.String()),
		slog.Int("alerts", len(alertIDs)),
		slog.Int("concurrency", s.refreshConcurrency),
	)

	return run, alertIDs, nil
}

// executeRun recomputes every alert with at most refreshConcurrency in flight. A failing alert
// is recorded on the run and never stops the others.
func (s *matchScheduler) executeRun(ctx context.Context, run *refreshRun, alertIDs []uuid.UUID) {
	var g errgroup.Group
	g.SetLimit(max(1, s.refreshConcurrency))

	for _, alertID := range alertIDs {
		g.Go(func() error {
			run.record(alertID, s.recompute(ctx, alertID))

			return nil
		})
	}
	_ = g.Wait()

	run.finish(time.Now())
	// Restart the retention window from completion.
	s.runs.SetDefault(run.id().String(), run)

	snapshot := run.snapshot()
	s.logger.Info("Refresh-all run finished",
		slog.String("runID", snapshot.ID.String()),
		slog.Int("total", snapshot.Total),
		slog.Int("succeeded", snapshot.Succeeded),
		slog.Int("failed", len(snapshot.FailedAlertIDs)),
	)
}

// refreshRun guards a RefreshRun shared between the run's workers and readers.
type refreshRun struct {
	mu  sync.Mutex
	run entity.RefreshRun
}

func (r *refreshRun) id() uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.run.ID
}

func (r *refreshRun) record(alertID uuid.UUID, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		r.run.FailedAlertIDs = append(r.run.FailedAlertIDs, alertID)

		return
	}
	r.run.Succeeded++
}

func (r *refreshRun) finish(at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.run.Status = entity.RefreshRunCompleted
	r.run.FinishedAt = &at
}

func (r *refreshRun) snapshot() *entity.RefreshRun {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.run
	c.FailedAlertIDs = slices.Clone(r.run.FailedAlertIDs)
	if r.run.FinishedAt != nil {
		finishedAt := *r.run.FinishedAt
		c.FinishedAt = &finishedAt
	}

	return &c
}

// keyedMutex serializes work per alert id. Entries are dropped once nobody holds or waits on them.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[uuid.UUID]*keyedLock)}
}

// Lock blocks until key is free and returns the matching unlock function.
func (k *keyedMutex) Lock(key uuid.UUID) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyedLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	return len(k.locks)
}
