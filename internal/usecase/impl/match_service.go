package impl

import (
	"context"
	"log/slog"
	"time"

	"baxpro/config"
	deliverycontext "baxpro/internal/delivery/context"
	"baxpro/internal/domain/entity"
	"baxpro/internal/domain/repository"
	"baxpro/internal/errors"
	"baxpro/internal/matching"
	"baxpro/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type matchService struct {
	logger    *slog.Logger
	txManager repository.TransactionManager
	matchRepo repository.MatchRepository
	cfg       *config.MatcherConfig
	now       func() time.Time
}

// MatchServiceParams holds dependencies for the match recomputation use case
type MatchServiceParams struct {
	fx.In

	Logger    *slog.Logger
	Config    *config.Config
	TxManager repository.TransactionManager
	MatchRepo repository.MatchRepository
}

// NewMatchService creates the recomputation use case with the wall clock
func NewMatchService(params MatchServiceParams) usecase.MatchUsecase {
	return NewMatchServiceWithClock(params.Logger, params.Config.Matcher, params.TxManager, params.MatchRepo, time.Now)
}

// NewMatchServiceWithClock creates the recomputation use case with an explicit clock
func NewMatchServiceWithClock(
	logger *slog.Logger,
	cfg *config.MatcherConfig,
	txManager repository.TransactionManager,
	matchRepo repository.MatchRepository,
	now func() time.Time,
) usecase.MatchUsecase {
	return &matchService{
		logger:    logger,
		txManager: txManager,
		matchRepo: matchRepo,
		cfg:       cfg,
		now:       now,
	}
}

// RecomputeAlertMatches deletes the alert's associations and re-derives them with one
// INSERT ... SELECT, updating the summary in the same transaction. The alert row stays locked
// for the duration so concurrent recomputations of one alert queue up behind each other.
func (s *matchService) RecomputeAlertMatches(ctx context.Context, alertID uuid.UUID) (*entity.MatchResult, error) {
	// Resolved before the transaction so it never competes for the transaction's connection.
	earliest, err := s.earliestEventDate(ctx)
	if err != nil {
		return nil, err
	}

	result := &entity.MatchResult{AlertID: alertID}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		alertRepo := factory.NewAlertRepository()
		matchRepo := factory.NewMatchRepository()

		alert, err := alertRepo.LockAlertByID(ctx, alertID)
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock alert")
		}
		result.Found = true

		if _, err := matchRepo.DeleteAlertAssets(ctx, alertID); err != nil {
			return errors.Wrap(err, "failed to clear previous matches")
		}

		predicate := matching.BuildPredicate(matching.CriteriaFromAlert(alert))

		var inserted int64
		if !predicate.Empty() {
			inserted, err = matchRepo.InsertMatchingAlertAssets(ctx, alertID, predicate)
			if err != nil {
				return errors.Wrap(err, "failed to insert matches")
			}
		}

		computedAt := s.now()
		result.Matched = int(inserted)
		result.Summary = matching.Summary(result.Matched, earliest, computedAt)
		result.ComputedAt = computedAt

		if err := alertRepo.UpdateMatchSummary(ctx, alertID, result.Summary, computedAt); err != nil {
			return errors.Wrap(err, "failed to update match summary")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to recompute matches for alert %s", alertID)
	}

	logger := deliverycontext.AlertLogger(ctx, s.logger, alertID)
	if !result.Found {
		logger.DebugContext(ctx, "Skipped recomputation of missing alert")

		return result, nil
	}

	logger.DebugContext(ctx, "Recomputed alert matches",
		slog.Int("matched", result.Matched),
		slog.String("summary", result.Summary),
	)

	return result, nil
}

// earliestEventDate prefers the configured date and falls back to the oldest listing on record.
// With neither available the current time is used, which yields a one month window.
func (s *matchService) earliestEventDate(ctx context.Context) (time.Time, error) {
	configured, ok, err := s.cfg.EarliestEventTime()
	if err != nil {
		return time.Time{}, err
	}
	if ok {
		return configured, nil
	}

	earliest, ok, err := s.matchRepo.EarliestListingDate(ctx)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "failed to resolve earliest listing date")
	}
	if !ok {
		return s.now(), nil
	}

	return earliest, nil
}
