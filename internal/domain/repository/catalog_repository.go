package repository

import (
	"context"

	"baxpro/internal/domain/entity"
	"baxpro/internal/errors"
)

// ErrAssetNotFound is returned when no catalog asset has the requested identifier.
var ErrAssetNotFound = errors.New("asset not found")

// ActivityFeedFilter selects a window of the activity feed. An empty TypeCode selects every type.
type ActivityFeedFilter struct {
	TypeCode string
	Limit    int
	Offset   int
}

// CatalogRepository reads the marketplace catalog owned by the ingester.
type CatalogRepository interface {
	// FindActivityTypes returns every activity type ordered by name.
	FindActivityTypes(ctx context.Context) ([]*entity.ActivityType, error)

	// FindActivityFeed returns feed entries, newest first.
	FindActivityFeed(ctx context.Context, filter ActivityFeedFilter) ([]*entity.ActivityFeedItem, error)

	// CountActivityFeed counts the feed entries of a type, or of every type when typeCode is empty.
	CountActivityFeed(ctx context.Context, typeCode string) (int64, error)

	// FindAssetByAssetID retrieves an asset by its public identifier.
	FindAssetByAssetID(ctx context.Context, assetID string) (*entity.Asset, error)

	// FindAssetByIdx retrieves an asset by its catalog index.
	FindAssetByIdx(ctx context.Context, assetIdx int64) (*entity.Asset, error)
}
