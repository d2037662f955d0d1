package repository

import (
	"context"
	"time"

	"baxpro/internal/domain/entity"
	"baxpro/internal/errors"
	"baxpro/internal/matching"

	"github.com/google/uuid"
)

// ErrActivityNotFound is returned when an activity event disappears from the feed while it is being associated.
var ErrActivityNotFound = errors.New("activity event not found")

// MatchRepository manages alert_assets associations and reads the listing catalog.
type MatchRepository interface {
	// DeleteAlertAssets removes every association of an alert and returns how many were removed.
	DeleteAlertAssets(ctx context.Context, alertID uuid.UUID) (int64, error)

	// InsertMatchingAlertAssets associates the alert with every new-listing event satisfying the
	// predicate, skipping pairs that already exist. Returns the number of rows inserted.
	InsertMatchingAlertAssets(ctx context.Context, alertID uuid.UUID, predicate *matching.Predicate) (int64, error)

	// AddAlertAsset associates one event with an alert. An existing pair is left as is, and an event
	// missing from the activity feed is skipped. Returns ErrAlertNotFound when the alert is gone.
	AddAlertAsset(ctx context.Context, alertID uuid.UUID, activityIdx int64) error

	// FindMatchedListings returns the associated events of an alert, newest first.
	FindMatchedListings(ctx context.Context, alertID uuid.UUID, limit, offset int) ([]*entity.MatchedListing, error)

	// EarliestListingDate returns the date of the oldest priced new-listing event. ok is false when there is none.
	EarliestListingDate(ctx context.Context) (earliest time.Time, ok bool, err error)
}

// ListingMatchRepository persists notification records for incoming listings.
type ListingMatchRepository interface {
	// CreateListingMatch inserts an alert_matches row. MatchIdx and CreatedAt are filled in.
	CreateListingMatch(ctx context.Context, match *entity.ListingMatch) error

	// FindListingMatchesByAlert returns the notification records of an alert, newest first.
	FindListingMatchesByAlert(ctx context.Context, alertID uuid.UUID) ([]*entity.ListingMatch, error)
}
