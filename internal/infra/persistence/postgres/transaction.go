package postgres

import (
	"context"

	"baxpro/config"
	"baxpro/internal/domain/repository"
	"baxpro/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db            *gorm.DB
	catalogSchema string
}

// gormRepositoryFactory hands out repositories bound to a single transaction.
type gormRepositoryFactory struct {
	tx            *gorm.DB
	catalogSchema string
}

// NewAlertRepository creates an alert repository bound to the transaction.
func (f *gormRepositoryFactory) NewAlertRepository() repository.AlertRepository {
	return NewAlertRepository(f.tx)
}

// NewMatchRepository creates a match repository bound to the transaction.
func (f *gormRepositoryFactory) NewMatchRepository() repository.MatchRepository {
	return NewMatchRepository(f.tx, f.catalogSchema)
}

// NewListingMatchRepository creates a listing match repository bound to the transaction.
func (f *gormRepositoryFactory) NewListingMatchRepository() repository.ListingMatchRepository {
	return NewListingMatchRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB, catalogSchema string) repository.TransactionManager {
	return &gormTransactionManager{db: db, catalogSchema: catalogSchema}
}

// NewTransactionManagerFromConfig is the Fx provider for the transaction manager.
func NewTransactionManagerFromConfig(db *gorm.DB, cfg *config.Config) repository.TransactionManager {
	return NewTransactionManager(db, catalogSchema(cfg))
}

// NewMatchRepositoryFromConfig is the Fx provider for the non-transactional match repository.
func NewMatchRepositoryFromConfig(db *gorm.DB, cfg *config.Config) repository.MatchRepository {
	return NewMatchRepository(db, catalogSchema(cfg))
}

func catalogSchema(cfg *config.Config) string {
	if cfg == nil || cfg.Matcher == nil {
		return ""
	}

	return cfg.Matcher.CatalogSchema
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// A panic inside fn must not leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx, catalogSchema: tm.catalogSchema}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
