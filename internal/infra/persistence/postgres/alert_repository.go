// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"baxpro/internal/domain/entity"
	domainerrors "baxpro/internal/domain/errors"
	"baxpro/internal/domain/repository"
	"baxpro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateAlert persists a new alert.
func (repo *alertRepository) CreateAlert(ctx context.Context, alert *entity.Alert) error {
	if alert.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.WithStack(err)
		}
		alert.ID = id
	}

	alertM := fromAlertDomain(alert)

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAlertCreationFailed.WrapMessage("missing required alert information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	alert.CreatedAt = alertM.CreatedAt

	return nil
}

// FindAlertByID reads from the primary so a just-written alert is always visible.
func (repo *alertRepository) FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	var alertM model.AlertModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert by ID")
	}

	return toAlertDomain(&alertM), nil
}

// LockAlertByID selects the alert FOR UPDATE. Only meaningful inside a transaction.
func (repo *alertRepository) LockAlertByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	var alertM model.AlertModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to lock alert")
	}

	return toAlertDomain(&alertM), nil
}

// FindAlertsByUser retrieves all alerts owned by a user.
func (repo *alertRepository) FindAlertsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerts by user")
	}

	return toAlertDomains(alertModels), nil
}

// FindAllAlerts retrieves every alert.
func (repo *alertRepository) FindAllAlerts(ctx context.Context) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all alerts")
	}

	return toAlertDomains(alertModels), nil
}

// ListAlertIDs returns the IDs of every alert.
func (repo *alertRepository) ListAlertIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Order("created_at ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list alert IDs")
	}

	return ids, nil
}

// UpdateAlertCriteria persists the user-editable fields of an alert.
func (repo *alertRepository) UpdateAlertCriteria(ctx context.Context, alert *entity.Alert) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ?", alert.ID).
		Updates(map[string]any{
			"name":             alert.Name,
			"match_strings":    pq.StringArray(alert.MatchStrings),
			"match_all":        alert.MatchAll,
			"max_price":        alert.MaxPrice,
			"bottled_year_min": alert.BottledYearMin,
			"bottled_year_max": alert.BottledYearMax,
			"age_min":          alert.AgeMin,
			"age_max":          alert.AgeMax,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update alert")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// UpdateMatchSummary stores the cached summary and its computation time.
func (repo *alertRepository) UpdateMatchSummary(ctx context.Context, id uuid.UUID, summary string, computedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"matching_assets_string":       summary,
			"matching_assets_last_updated": computedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update match summary")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// DeleteAlert removes an alert by its ID.
func (repo *alertRepository) DeleteAlert(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AlertModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete alert")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

func toAlertDomains(alertModels []*model.AlertModel) []*entity.Alert {
	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts
}

// toAlertDomain converts a GORM AlertModel to a domain Alert entity.
func toAlertDomain(data *model.AlertModel) *entity.Alert {
	if data == nil {
		return nil
	}

	return &entity.Alert{
		ID:                        data.ID,
		UserID:                    data.UserID,
		Name:                      data.Name,
		MatchStrings:              []string(data.MatchStrings),
		MatchAll:                  data.MatchAll,
		MaxPrice:                  data.MaxPrice,
		BottledYearMin:            data.BottledYearMin,
		BottledYearMax:            data.BottledYearMax,
		AgeMin:                    data.AgeMin,
		AgeMax:                    data.AgeMax,
		MatchingAssetsString:      data.MatchingAssetsString,
		MatchingAssetsLastUpdated: data.MatchingAssetsLastUpdated,
		CreatedAt:                 data.CreatedAt,
	}
}

// fromAlertDomain converts a domain Alert entity to a GORM AlertModel.
func fromAlertDomain(data *entity.Alert) *model.AlertModel {
	if data == nil {
		return nil
	}

	return &model.AlertModel{
		ID:                        data.ID,
		UserID:                    data.UserID,
		Name:                      data.Name,
		MatchStrings:              pq.StringArray(data.MatchStrings),
		MatchAll:                  data.MatchAll,
		MaxPrice:                  data.MaxPrice,
		BottledYearMin:            data.BottledYearMin,
		BottledYearMax:            data.BottledYearMax,
		AgeMin:                    data.AgeMin,
		AgeMax:                    data.AgeMax,
		MatchingAssetsString:      data.MatchingAssetsString,
		MatchingAssetsLastUpdated: data.MatchingAssetsLastUpdated,
		CreatedAt:                 data.CreatedAt,
	}
}
