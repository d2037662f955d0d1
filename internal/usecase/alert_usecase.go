package usecase

import (
	"context"

	"baxpro/internal/domain/entity"

	"github.com/google/uuid"
)

// Matched listing paging bounds.
const (
	DefaultMatchedListingsLimit = 50
	MaxMatchedListingsLimit     = 200
)

// CreateAlertInput holds the criteria of a new alert.
type CreateAlertInput struct {
	Name           string
	MatchStrings   []string
	MatchAll       bool
	MaxPrice       int
	BottledYearMin *int
	BottledYearMax *int
	AgeMin         *int
	AgeMax         *int
}

// AlertUsecase defines the interface for alert management use cases.
// Every operation is scoped to the calling user; alerts owned by someone else are reported as not found.
type AlertUsecase interface {
	// ListAlerts returns the caller's alerts, newest first
	ListAlerts(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error)

	// CreateAlert stores a new alert and schedules its match recomputation
	CreateAlert(ctx context.Context, userID uuid.UUID, input *CreateAlertInput) (*entity.Alert, error)

	// UpdateAlert applies a partial update and schedules a recomputation when anything changed
	UpdateAlert(ctx context.Context, userID, alertID uuid.UUID, update *entity.AlertUpdate) (*entity.Alert, error)

	// DeleteAlert removes the alert together with its matches
	DeleteAlert(ctx context.Context, userID, alertID uuid.UUID) error

	// ListMatchedListings pages through the listings currently matched by an alert
	ListMatchedListings(ctx context.Context, userID, alertID uuid.UUID, limit, offset int) ([]*entity.MatchedListing, error)
}
