package impl

import (
	"context"
	"log/slog"
	"time"

	"baxpro/config"
	deliverycontext "baxpro/internal/delivery/context"
	"baxpro/internal/domain/constants"
	"baxpro/internal/domain/entity"
	"baxpro/internal/domain/repository"
	"baxpro/internal/domain/service"
	"baxpro/internal/errors"
	"baxpro/internal/infra/metrics"
	"baxpro/internal/matching"
	"baxpro/internal/usecase"

	"github.com/patrickmn/go-cache"
	"go.uber.org/fx"
)

const alertCacheKey = "alerts"

type listingService struct {
	logger        *slog.Logger
	alertRepo     repository.AlertRepository
	txManager     repository.TransactionManager
	publisher     service.EventPublisher
	metrics       *metrics.Metrics
	listingSource string
	alerts        *cache.Cache
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	Logger    *slog.Logger
	Config    *config.Config
	AlertRepo repository.AlertRepository
	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Metrics   *metrics.Metrics
}

// NewListingService creates the listing matcher used by the push worker
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	cfg := params.Config.ListingWorker

	return newListingService(params.Logger, params.AlertRepo, params.TxManager, params.Publisher, params.Metrics,
		cfg.ListingSource, cfg.AlertCacheTTL)
}

func newListingService(
	logger *slog.Logger,
	alertRepo repository.AlertRepository,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	m *metrics.Metrics,
	listingSource string,
	alertCacheTTL time.Duration,
) *listingService {
	return &listingService{
		logger:        logger,
		alertRepo:     alertRepo,
		txManager:     txManager,
		publisher:     publisher,
		metrics:       m,
		listingSource: listingSource,
		// Expired entries are replaced on read; no janitor needed.
		alerts: cache.New(alertCacheTTL, 0),
	}
}

type alertMatch struct {
	alert *entity.Alert
	match *entity.ListingMatch
}

// ProcessListing matches one listing against every alert. Matches are recorded in a single
// transaction and published only after it commits.
func (s *listingService) ProcessListing(ctx context.Context, listing *entity.Listing) (*usecase.ListingResult, error) {
	logger := deliverycontext.ListingLogger(ctx, s.logger, listing.ActivityIdx, listing.AssetIdx)

	alerts, err := s.loadAlerts(ctx)
	if err != nil {
		s.metrics.ObserveListing(metrics.ResultError, 0)

		return nil, usecase.NewRetryableError(err)
	}

	candidate := matching.CandidateFromListing(listing)
	var matched []alertMatch
	for _, alert := range alerts {
		if !matching.BuildPredicate(matching.CriteriaFromAlert(alert)).Matches(candidate) {
			continue
		}
		matched = append(matched, alertMatch{
			alert: alert,
			match: &entity.ListingMatch{
				AlertID:       alert.ID,
				ListingSource: s.listingSource,
				ActivityIdx:   listing.ActivityIdx,
				AssetIdx:      listing.AssetIdx,
			},
		})
	}

	result := &usecase.ListingResult{
		ActivityIdx:     listing.ActivityIdx,
		AlertsEvaluated: len(alerts),
		Matches:         make([]*entity.ListingMatch, 0, len(matched)),
	}

	if len(matched) > 0 {
		if err := s.recordMatches(ctx, matched); err != nil {
			s.metrics.ObserveListing(metrics.ResultError, 0)

			return nil, usecase.NewRetryableError(err)
		}
	}

	for _, m := range matched {
		result.Matches = append(result.Matches, m.match)

		if err := s.publisher.PublishListingAlert(ctx, s.buildEvent(ctx, listing, m)); err != nil {
			result.PublishFailures++
			logger.ErrorContext(ctx, "Failed to publish listing alert",
				slog.String(deliverycontext.AttrAlertID, m.alert.ID.String()),
				slog.Int64("matchIdx", m.match.MatchIdx),
				slog.Any("error", err),
			)
		}
	}

	s.metrics.ObserveListing(metrics.ResultSuccess, len(result.Matches))
	logger.InfoContext(ctx, "Processed listing",
		slog.Int("alertsEvaluated", result.AlertsEvaluated),
		slog.Int("matches", len(result.Matches)),
		slog.Int("publishFailures", result.PublishFailures),
	)

	return result, nil
}

func (s *listingService) recordMatches(ctx context.Context, matched []alertMatch) error {
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		listingMatchRepo := factory.NewListingMatchRepository()
		matchRepo := factory.NewMatchRepository()

		for _, m := range matched {
			if err := listingMatchRepo.CreateListingMatch(ctx, m.match); err != nil {
				return errors.Wrapf(err, "failed to record match for alert %s", m.alert.ID)
			}
			if err := matchRepo.AddAlertAsset(ctx, m.alert.ID, m.match.ActivityIdx); err != nil {
				return errors.Wrapf(err, "failed to associate listing with alert %s", m.alert.ID)
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			// An alert was deleted after the list was cached; the retry reloads it.
			s.alerts.Delete(alertCacheKey)
		}

		return err
	}

	return nil
}

func (s *listingService) loadAlerts(ctx context.Context) ([]*entity.Alert, error) {
	if cached, ok := s.alerts.Get(alertCacheKey); ok {
		return cached.([]*entity.Alert), nil
	}

	alerts, err := s.alertRepo.FindAllAlerts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load alerts")
	}
	s.alerts.SetDefault(alertCacheKey, alerts)

	return alerts, nil
}

func (s *listingService) buildEvent(ctx context.Context, listing *entity.Listing, m alertMatch) *service.ListingAlertEvent {
	event := &service.ListingAlertEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		MatchIdx:  m.match.MatchIdx,
		AlertID:   m.alert.ID.String(),
		AlertName: m.alert.Name,
		UserID:    m.alert.UserID.String(),
		AssetIdx:  listing.AssetIdx,
		AssetName: listing.Name,
	}
	if listing.Price != nil {
		event.AssetPrice = listing.Price.InexactFloat64()
	}
	if listing.AssetID != "" {
		event.AssetURL = constants.AssetURLPrefix + listing.AssetID
	}

	return event
}
