package postgres

import (
	"context"

	"baxpro/internal/domain/entity"
	domainerrors "baxpro/internal/domain/errors"
	"baxpro/internal/domain/repository"
	"baxpro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingMatchRepository implements the repository.ListingMatchRepository interface.
type listingMatchRepository struct {
	db *gorm.DB
}

// NewListingMatchRepository is the constructor for listingMatchRepository.
func NewListingMatchRepository(db *gorm.DB) repository.ListingMatchRepository {
	return &listingMatchRepository{
		db: db,
	}
}

// CreateListingMatch inserts an alert_matches row.
func (repo *listingMatchRepository) CreateListingMatch(ctx context.Context, match *entity.ListingMatch) error {
	matchM := &model.ListingMatchModel{
		AlertID:       match.AlertID,
		ListingSource: match.ListingSource,
		ActivityIdx:   match.ActivityIdx,
		AssetIdx:      match.AssetIdx,
	}

	if err := repo.db.WithContext(ctx).Create(matchM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAlertNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing match")
	}

	match.MatchIdx = matchM.MatchIdx
	match.CreatedAt = matchM.CreatedAt

	return nil
}

// FindListingMatchesByAlert returns the notification records of an alert.
func (repo *listingMatchRepository) FindListingMatchesByAlert(ctx context.Context, alertID uuid.UUID) ([]*entity.ListingMatch, error) {
	var matchModels []*model.ListingMatchModel

	if err := repo.db.WithContext(ctx).
		Where("alert_id = ?", alertID).
		Order("match_idx DESC").
		Find(&matchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listing matches")
	}

	matches := make([]*entity.ListingMatch, 0, len(matchModels))
	for _, m := range matchModels {
		matches = append(matches, &entity.ListingMatch{
			MatchIdx:      m.MatchIdx,
			AlertID:       m.AlertID,
			ListingSource: m.ListingSource,
			ActivityIdx:   m.ActivityIdx,
			AssetIdx:      m.AssetIdx,
			CreatedAt:     m.CreatedAt,
		})
	}

	return matches, nil
}
