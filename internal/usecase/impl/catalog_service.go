package impl

import (
	"context"
	"log/slog"

	"baxpro/internal/domain/entity"
	domainerrors "baxpro/internal/domain/errors"
	"baxpro/internal/domain/repository"
	"baxpro/internal/errors"
	"baxpro/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type catalogService struct {
	logger      *slog.Logger
	catalogRepo repository.CatalogRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Logger      *slog.Logger
	CatalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		logger:      params.Logger,
		catalogRepo: params.CatalogRepo,
	}
}

// ListActivityTypes returns every activity type
func (s *catalogService) ListActivityTypes(ctx context.Context) ([]*entity.ActivityType, error) {
	types, err := s.catalogRepo.FindActivityTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find activity types")
	}

	return types, nil
}

// ListActivityFeed loads a page of the feed and the total count concurrently
func (s *catalogService) ListActivityFeed(ctx context.Context, query *usecase.ActivityFeedQuery) (*entity.ActivityFeedPage, error) {
	page := max(query.Page, 1)
	limit := query.Limit
	if limit < 1 {
		limit = usecase.DefaultActivityFeedLimit
	}
	limit = min(limit, usecase.MaxActivityFeedLimit)

	var (
		items []*entity.ActivityFeedItem
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.catalogRepo.FindActivityFeed(gctx, repository.ActivityFeedFilter{
			TypeCode: query.TypeCode,
			Limit:    limit,
			Offset:   (page - 1) * limit,
		})

		return errors.Wrap(err, "failed to find activity feed")
	})
	g.Go(func() error {
		var err error
		total, err = s.catalogRepo.CountActivityFeed(gctx, query.TypeCode)

		return errors.Wrap(err, "failed to count activity feed")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &entity.ActivityFeedPage{
		Items:      items,
		Page:       page,
		Limit:      limit,
		TotalCount: total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// GetAsset looks an asset up by its public identifier
func (s *catalogService) GetAsset(ctx context.Context, assetID string) (*entity.Asset, error) {
	asset, err := s.catalogRepo.FindAssetByAssetID(ctx, assetID)

	return asset, assetError(err)
}

// GetAssetByIdx looks an asset up by its catalog index
func (s *catalogService) GetAssetByIdx(ctx context.Context, assetIdx int64) (*entity.Asset, error) {
	asset, err := s.catalogRepo.FindAssetByIdx(ctx, assetIdx)

	return asset, assetError(err)
}

func assetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrAssetNotFound):
		return errors.WithStack(domainerrors.ErrAssetNotFound)
	default:
		return errors.Wrap(err, "failed to find asset")
	}
}
