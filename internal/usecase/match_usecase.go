package usecase

import (
	"context"

	"baxpro/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchUsecase recomputes the match set of a single alert.
type MatchUsecase interface {
	// RecomputeAlertMatches atomically replaces the alert's matches and cached summary.
	// A missing alert yields a zero result with Found false and no error.
	RecomputeAlertMatches(ctx context.Context, alertID uuid.UUID) (*entity.MatchResult, error)
}

// MatchScheduler runs recomputations in the background with bounded queueing and concurrency.
type MatchScheduler interface {
	// Enqueue schedules a recomputation without blocking. An alert already waiting is not queued
	// twice. Returns ErrMatchQueueFull when the queue is at capacity.
	Enqueue(alertID uuid.UUID) error

	// RefreshAll recomputes every alert and waits for the run to finish.
	RefreshAll(ctx context.Context) (*entity.RefreshRun, error)

	// StartRefreshAll begins a refresh-all run in the background and returns its initial state.
	StartRefreshAll(ctx context.Context) (*entity.RefreshRun, error)

	// GetRefreshRun returns a snapshot of a run still held in the run store.
	GetRefreshRun(runID uuid.UUID) (*entity.RefreshRun, error)
}
