package postgres

import (
	"context"
	"fmt"
	"strings"

	"baxpro/config"
	"baxpro/internal/domain/entity"
	"baxpro/internal/domain/repository"
	"baxpro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db      *gorm.DB
	catalog catalogTables
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB, catalogSchema string) repository.CatalogRepository {
	return &catalogRepository{
		db:      db,
		catalog: newCatalogTables(catalogSchema),
	}
}

// NewCatalogRepositoryFromConfig reads the catalog schema from the matcher configuration.
func NewCatalogRepositoryFromConfig(db *gorm.DB, cfg *config.Config) repository.CatalogRepository {
	return NewCatalogRepository(db, catalogSchema(cfg))
}

// FindActivityTypes returns every activity type ordered by name.
func (repo *catalogRepository) FindActivityTypes(ctx context.Context) ([]*entity.ActivityType, error) {
	query := fmt.Sprintf(`SELECT activity_type_idx, activity_type_code, activity_type_name
FROM %s
ORDER BY activity_type_name, activity_type_idx`, repo.catalog.activityTypes)

	var rows []model.ActivityTypeRow
	if err := repo.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find activity types")
	}

	types := make([]*entity.ActivityType, 0, len(rows))
	for _, row := range rows {
		types = append(types, &entity.ActivityType{
			ActivityTypeIdx:  row.ActivityTypeIdx,
			ActivityTypeCode: deref(row.ActivityTypeCode),
			ActivityTypeName: deref(row.ActivityTypeName),
		})
	}

	return types, nil
}

// FindActivityFeed returns feed entries joined with their type and asset, newest first.
func (repo *catalogRepository) FindActivityFeed(ctx context.Context, filter repository.ActivityFeedFilter) ([]*entity.ActivityFeedItem, error) {
	where, args := typeCodeFilter(filter.TypeCode)

	query := fmt.Sprintf(`SELECT af.activity_idx, af.activity_type_idx, af.asset_idx, af.price, af.activity_date,
  dat.activity_type_code, dat.activity_type_name,
  a.asset_id, a.name AS asset_name, a.producer, a.is_listed
FROM %s af
JOIN %s dat ON dat.activity_type_idx = af.activity_type_idx
LEFT JOIN %s a ON a.asset_idx = af.asset_idx
%s
ORDER BY af.activity_date DESC, af.activity_idx DESC
LIMIT ? OFFSET ?`, repo.catalog.activityFeed, repo.catalog.activityTypes, repo.catalog.assets, where)

	args = append(args, filter.Limit, filter.Offset)

	var rows []model.ActivityFeedRow
	if err := repo.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find activity feed")
	}

	items := make([]*entity.ActivityFeedItem, 0, len(rows))
	for _, row := range rows {
		item := &entity.ActivityFeedItem{
			ActivityEvent: entity.ActivityEvent{
				ActivityIdx:     row.ActivityIdx,
				ActivityTypeIdx: row.ActivityTypeIdx,
				AssetIdx:        row.AssetIdx,
				Price:           row.Price,
				ActivityDate:    row.ActivityDate,
			},
			ActivityTypeCode: deref(row.ActivityTypeCode),
			ActivityTypeName: deref(row.ActivityTypeName),
			AssetID:          trimAssetID(deref(row.AssetID)),
			AssetName:        entity.UnknownAssetName,
			Producer:         row.Producer,
			IsListed:         row.IsListed,
		}
		if row.AssetName != nil {
			item.AssetName = *row.AssetName
		}
		items = append(items, item)
	}

	return items, nil
}

// CountActivityFeed counts the feed entries matching the type filter.
func (repo *catalogRepository) CountActivityFeed(ctx context.Context, typeCode string) (int64, error) {
	where, args := typeCodeFilter(typeCode)

	query := fmt.Sprintf(`SELECT COUNT(*)
FROM %s af
JOIN %s dat ON dat.activity_type_idx = af.activity_type_idx
%s`, repo.catalog.activityFeed, repo.catalog.activityTypes, where)

	var count int64
	if err := repo.db.WithContext(ctx).Raw(query, args...).Scan(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count activity feed")
	}

	return count, nil
}

// FindAssetByAssetID retrieves an asset by its public identifier. asset_id is a fixed-width
// column, so the identifier is padded before comparison.
func (repo *catalogRepository) FindAssetByAssetID(ctx context.Context, assetID string) (*entity.Asset, error) {
	return repo.findAsset(ctx, "asset_id = ?", padAssetID(assetID))
}

// FindAssetByIdx retrieves an asset by its catalog index.
func (repo *catalogRepository) FindAssetByIdx(ctx context.Context, assetIdx int64) (*entity.Asset, error) {
	return repo.findAsset(ctx, "asset_idx = ?", assetIdx)
}

func (repo *catalogRepository) findAsset(ctx context.Context, condition string, arg any) (*entity.Asset, error) {
	query := fmt.Sprintf(`SELECT asset_idx, asset_id, name, producer, bottled_year, age, price, is_listed
FROM %s
WHERE %s
LIMIT 1`, repo.catalog.assets, condition)

	var rows []model.AssetRow
	if err := repo.db.WithContext(ctx).Raw(query, arg).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find asset")
	}
	if len(rows) == 0 {
		return nil, repository.ErrAssetNotFound
	}

	row := rows[0]

	return &entity.Asset{
		AssetIdx:    row.AssetIdx,
		AssetID:     trimAssetID(row.AssetID),
		Name:        row.Name,
		Producer:    row.Producer,
		BottledYear: row.BottledYear,
		Age:         row.Age,
		Price:       row.Price,
		IsListed:    row.IsListed,
	}, nil
}

// typeCodeFilter binds the activity type code as a parameter. An empty code filters nothing.
func typeCodeFilter(typeCode string) (string, []any) {
	if typeCode == "" {
		return "", nil
	}

	return "WHERE dat.activity_type_code = ?", []any{typeCode}
}

func padAssetID(assetID string) string {
	if len(assetID) >= entity.AssetIDLength {
		return assetID
	}

	return assetID + strings.Repeat(" ", entity.AssetIDLength-len(assetID))
}

func trimAssetID(assetID string) string {
	return strings.TrimRight(assetID, " ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
