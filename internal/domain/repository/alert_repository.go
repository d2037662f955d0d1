// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"baxpro/internal/domain/entity"
	"baxpro/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for alert persistence.
var (
	// ErrAlertNotFound is returned when an alert is not found.
	ErrAlertNotFound = errors.New("alert not found")
)

// AlertRepository defines the interface for alert-related database operations.
type AlertRepository interface {
	// CreateAlert persists a new alert. ID and CreatedAt are filled in.
	CreateAlert(ctx context.Context, alert *entity.Alert) error

	// FindAlertByID retrieves an alert by its unique ID.
	FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error)

	// LockAlertByID retrieves an alert and holds a row lock on it until the surrounding transaction ends.
	LockAlertByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error)

	// FindAlertsByUser retrieves all alerts owned by a user, newest first.
	FindAlertsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error)

	// FindAllAlerts retrieves every alert in the system.
	FindAllAlerts(ctx context.Context) ([]*entity.Alert, error)

	// ListAlertIDs returns the IDs of every alert in the system.
	ListAlertIDs(ctx context.Context) ([]uuid.UUID, error)

	// UpdateAlertCriteria persists the user-editable fields of an alert.
	UpdateAlertCriteria(ctx context.Context, alert *entity.Alert) error

	// UpdateMatchSummary stores the cached summary and its computation time.
	UpdateMatchSummary(ctx context.Context, id uuid.UUID, summary string, computedAt time.Time) error

	// DeleteAlert removes an alert. Its match associations are removed by cascade.
	DeleteAlert(ctx context.Context, id uuid.UUID) error
}
