package postgres

import (
	"context"
	"fmt"
	"time"

	"baxpro/internal/domain/entity"
	domainerrors "baxpro/internal/domain/errors"
	"baxpro/internal/domain/repository"
	"baxpro/internal/infra/persistence/model"
	"baxpro/internal/matching"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// matchRepository implements the repository.MatchRepository interface.
type matchRepository struct {
	db      *gorm.DB
	catalog catalogTables
}

// catalogTables holds the schema-qualified catalog table names.
type catalogTables struct {
	assets        string
	activityFeed  string
	activityTypes string
}

func newCatalogTables(schema string) catalogTables {
	return catalogTables{
		assets:        model.CatalogTable(schema, model.AssetsTable),
		activityFeed:  model.CatalogTable(schema, model.ActivityFeedTable),
		activityTypes: model.CatalogTable(schema, model.ActivityTypesTable),
	}
}

// NewMatchRepository is the constructor for matchRepository. catalogSchema qualifies the
// assets, activity_feed and dim_activity_types tables.
func NewMatchRepository(db *gorm.DB, catalogSchema string) repository.MatchRepository {
	return &matchRepository{
		db:      db,
		catalog: newCatalogTables(catalogSchema),
	}
}

// DeleteAlertAssets removes every association of an alert.
func (repo *matchRepository) DeleteAlertAssets(ctx context.Context, alertID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("alert_id = ?", alertID).
		Delete(&model.AlertAssetModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete alert assets")
	}

	return result.RowsAffected, nil
}

// InsertMatchingAlertAssets runs a single INSERT ... SELECT so the match set is computed and
// stored by the database without round-tripping rows.
func (repo *matchRepository) InsertMatchingAlertAssets(ctx context.Context, alertID uuid.UUID, predicate *matching.Predicate) (int64, error) {
	where, predicateArgs := predicate.Where()

	query := fmt.Sprintf(`INSERT INTO alert_assets (alert_id, activity_idx)
SELECT ?, af.activity_idx
FROM %s a
JOIN %s af ON af.asset_idx = a.asset_idx
JOIN %s dat ON dat.activity_type_idx = af.activity_type_idx
  AND dat.activity_type_code = ?
WHERE %s
ON CONFLICT DO NOTHING`,
		repo.catalog.assets, repo.catalog.activityFeed, repo.catalog.activityTypes, where)

	args := make([]any, 0, len(predicateArgs)+2)
	args = append(args, alertID, entity.ActivityTypeNewListing)
	args = append(args, predicateArgs...)

	result := repo.db.WithContext(ctx).Exec(query, args...)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to insert matching alert assets")
	}

	return result.RowsAffected, nil
}

// AddAlertAsset associates one event with an alert, ignoring an existing pair. An event that is not
// in the activity feed yet is skipped; the next recomputation of the alert picks it up.
func (repo *matchRepository) AddAlertAsset(ctx context.Context, alertID uuid.UUID, activityIdx int64) error {
	query := fmt.Sprintf(`INSERT INTO alert_assets (alert_id, activity_idx)
SELECT ?, af.activity_idx
FROM %s af
WHERE af.activity_idx = ?
ON CONFLICT DO NOTHING`, repo.catalog.activityFeed)

	if err := repo.db.WithContext(ctx).Exec(query, alertID, activityIdx).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			if violatesConstraint(err, alertAssetsActivityFK) {
				return repository.ErrActivityNotFound
			}

			// alertAssetsAlertFK, or unnamed on SQLite: the SELECT only yields feed rows that exist.
			return repository.ErrAlertNotFound
		}

		return errors.Wrap(err, "failed to add alert asset")
	}

	return nil
}

// FindMatchedListings returns the associated events of an alert joined with their asset names.
func (repo *matchRepository) FindMatchedListings(ctx context.Context, alertID uuid.UUID, limit, offset int) ([]*entity.MatchedListing, error) {
	query := fmt.Sprintf(`SELECT af.activity_idx, af.asset_idx, a.name AS asset_name, af.price, af.activity_date
FROM alert_assets aa
JOIN %s af ON af.activity_idx = aa.activity_idx
JOIN %s a ON a.asset_idx = af.asset_idx
WHERE aa.alert_id = ?
ORDER BY af.activity_date DESC, af.activity_idx DESC
LIMIT ? OFFSET ?`, repo.catalog.activityFeed, repo.catalog.assets)

	var rows []model.MatchedListingRow
	if err := repo.db.WithContext(ctx).Raw(query, alertID, limit, offset).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find matched listings")
	}

	listings := make([]*entity.MatchedListing, 0, len(rows))
	for _, row := range rows {
		listing := &entity.MatchedListing{
			ActivityIdx:  row.ActivityIdx,
			AssetIdx:     row.AssetIdx,
			AssetName:    row.AssetName,
			ActivityDate: row.ActivityDate,
		}
		if row.Price != nil {
			listing.Price = *row.Price
		}
		listings = append(listings, listing)
	}

	return listings, nil
}

// EarliestListingDate returns the date of the oldest priced new-listing event.
func (repo *matchRepository) EarliestListingDate(ctx context.Context) (time.Time, bool, error) {
	query := fmt.Sprintf(`SELECT af.activity_date
FROM %s af
JOIN %s dat ON dat.activity_type_idx = af.activity_type_idx
  AND dat.activity_type_code = ?
WHERE af.price IS NOT NULL
ORDER BY af.activity_date ASC
LIMIT 1`, repo.catalog.activityFeed, repo.catalog.activityTypes)

	var rows []model.ActivityDateRow
	if err := repo.db.WithContext(ctx).Raw(query, entity.ActivityTypeNewListing).Scan(&rows).Error; err != nil {
		return time.Time{}, false, errors.Wrap(err, "failed to find earliest listing date")
	}
	if len(rows) == 0 {
		return time.Time{}, false, nil
	}

	return rows[0].ActivityDate, true, nil
}
