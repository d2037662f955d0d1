package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "baxpro/internal/delivery/context"
	"baxpro/internal/domain/entity"
	domainerrors "baxpro/internal/domain/errors"
	"baxpro/internal/domain/repository"
	"baxpro/internal/errors"
	"baxpro/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// MaxMatchStringLength bounds a single name fragment, in characters.
const MaxMatchStringLength = 100

type alertService struct {
	logger    *slog.Logger
	alertRepo repository.AlertRepository
	matchRepo repository.MatchRepository
	scheduler usecase.MatchScheduler
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	Logger    *slog.Logger
	AlertRepo repository.AlertRepository
	MatchRepo repository.MatchRepository
	Scheduler usecase.MatchScheduler
}

// NewAlertService creates a new alert service instance
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		logger:    params.Logger,
		alertRepo: params.AlertRepo,
		matchRepo: params.MatchRepo,
		scheduler: params.Scheduler,
	}
}

// ListAlerts returns the caller's alerts
func (s *alertService) ListAlerts(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error) {
	alerts, err := s.alertRepo.FindAlertsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find alerts by user")
	}

	return alerts, nil
}

// CreateAlert validates and stores a new alert, then schedules its first recomputation
func (s *alertService) CreateAlert(ctx context.Context, userID uuid.UUID, input *usecase.CreateAlertInput) (*entity.Alert, error) {
	alert := &entity.Alert{
		UserID:         userID,
		Name:           strings.TrimSpace(input.Name),
		MatchStrings:   trimAll(input.MatchStrings),
		MatchAll:       input.MatchAll,
		MaxPrice:       input.MaxPrice,
		BottledYearMin: input.BottledYearMin,
		BottledYearMax: input.BottledYearMax,
		AgeMin:         input.AgeMin,
		AgeMax:         input.AgeMax,
	}

	if err := validateAlert(alert); err != nil {
		return nil, err
	}

	if err := s.alertRepo.CreateAlert(ctx, alert); err != nil {
		return nil, domainerrors.ErrAlertCreationFailed.WrapMessage(err.Error())
	}

	s.scheduleRecompute(ctx, alert.ID)

	return alert, nil
}

// UpdateAlert applies a partial update to an alert owned by the caller
func (s *alertService) UpdateAlert(ctx context.Context, userID, alertID uuid.UUID, update *entity.AlertUpdate) (*entity.Alert, error) {
	alert, err := s.findOwnedAlert(ctx, userID, alertID)
	if err != nil {
		return nil, err
	}

	if update.IsEmpty() {
		return alert, nil
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
	}
	if update.MatchStrings != nil {
		update.MatchStrings = trimAll(update.MatchStrings)
	}
	update.Apply(alert)

	if err := validateAlert(alert); err != nil {
		return nil, err
	}

	if err := s.alertRepo.UpdateAlertCriteria(ctx, alert); err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAlertNotFound)
		}

		return nil, domainerrors.ErrAlertUpdateFailed.WrapMessage(err.Error())
	}

	s.scheduleRecompute(ctx, alert.ID)

	return alert, nil
}

// DeleteAlert removes an alert owned by the caller
func (s *alertService) DeleteAlert(ctx context.Context, userID, alertID uuid.UUID) error {
	if _, err := s.findOwnedAlert(ctx, userID, alertID); err != nil {
		return err
	}

	if err := s.alertRepo.DeleteAlert(ctx, alertID); err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return errors.WithStack(domainerrors.ErrAlertNotFound)
		}

		return errors.Wrap(err, "failed to delete alert")
	}

	return nil
}

// ListMatchedListings returns one page of the alert's current matches
func (s *alertService) ListMatchedListings(ctx context.Context, userID, alertID uuid.UUID, limit, offset int) ([]*entity.MatchedListing, error) {
	if _, err := s.findOwnedAlert(ctx, userID, alertID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = usecase.DefaultMatchedListingsLimit
	}
	limit = min(limit, usecase.MaxMatchedListingsLimit)
	offset = max(offset, 0)

	listings, err := s.matchRepo.FindMatchedListings(ctx, alertID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find matched listings")
	}

	return listings, nil
}

// findOwnedAlert hides alerts of other users behind the same not-found error as missing ones
func (s *alertService) findOwnedAlert(ctx context.Context, userID, alertID uuid.UUID) (*entity.Alert, error) {
	alert, err := s.alertRepo.FindAlertByID(ctx, alertID)
	if errors.Is(err, repository.ErrAlertNotFound) {
		return nil, errors.WithStack(domainerrors.ErrAlertNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find alert by id")
	}

	if alert.UserID != userID {
		return nil, errors.WithStack(domainerrors.ErrAlertNotFound)
	}

	return alert, nil
}

// scheduleRecompute queues a recomputation. A full queue leaves the previous summary in place
// until the next refresh, so it is logged rather than failing the request.
func (s *alertService) scheduleRecompute(ctx context.Context, alertID uuid.UUID) {
	if err := s.scheduler.Enqueue(alertID); err != nil {
		deliverycontext.AlertLogger(ctx, s.logger, alertID).
			WarnContext(ctx, "Failed to schedule match recomputation", slog.Any("error", err))
	}
}

func validateAlert(alert *entity.Alert) error {
	if alert.Name == "" {
		return invalidCriteria("name is required")
	}

	if len(alert.MatchStrings) == 0 || len(alert.MatchStrings) > entity.MaxMatchStrings {
		return invalidCriteria(fmt.Sprintf("between 1 and %d match strings are required", entity.MaxMatchStrings))
	}
	for i, s := range alert.MatchStrings {
		if s == "" {
			return invalidCriteria(fmt.Sprintf("match string %d is blank", i+1))
		}
		if utf8.RuneCountInString(s) > MaxMatchStringLength {
			return invalidCriteria(fmt.Sprintf("match string %d exceeds %d characters", i+1, MaxMatchStringLength))
		}
	}

	if alert.MaxPrice < 0 {
		return invalidCriteria("max price must not be negative")
	}
	if outOfOrder(alert.BottledYearMin, alert.BottledYearMax) {
		return invalidCriteria("bottled year minimum exceeds maximum")
	}
	if outOfOrder(alert.AgeMin, alert.AgeMax) {
		return invalidCriteria("age minimum exceeds maximum")
	}

	return nil
}

func invalidCriteria(details string) error {
	return errors.WithStack(domainerrors.ErrInvalidAlertCriteria.WithDetails(details))
}

func outOfOrder(minVal, maxVal *int) bool {
	return minVal != nil && maxVal != nil && *minVal > *maxVal
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}

	trimmed := make([]string, len(values))
	for i, v := range values {
		trimmed[i] = strings.TrimSpace(v)
	}

	return trimmed
}
