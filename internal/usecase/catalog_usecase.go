package usecase

import (
	"context"

	"baxpro/internal/domain/entity"
)

// Activity feed paging bounds.
const (
	DefaultActivityFeedLimit = 50
	MaxActivityFeedLimit     = 200
)

// ActivityFeedQuery selects one page of the activity feed. Page is 1-based; an empty TypeCode
// returns every activity type.
type ActivityFeedQuery struct {
	TypeCode string
	Page     int
	Limit    int
}

// CatalogUsecase exposes the read-only catalog: activity types, the activity feed and assets.
type CatalogUsecase interface {
	// ListActivityTypes returns every activity type ordered by name
	ListActivityTypes(ctx context.Context) ([]*entity.ActivityType, error)

	// ListActivityFeed returns one page of the feed, newest first, with the total feed size
	ListActivityFeed(ctx context.Context, query *ActivityFeedQuery) (*entity.ActivityFeedPage, error)

	// GetAsset looks an asset up by its public identifier
	GetAsset(ctx context.Context, assetID string) (*entity.Asset, error)

	// GetAssetByIdx looks an asset up by its catalog index
	GetAssetByIdx(ctx context.Context, assetIdx int64) (*entity.Asset, error)
}
