package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"baxpro/config"
	"baxpro/internal/domain/repository"
	mockRepo "baxpro/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMatcherConfig() *config.MatcherConfig {
	return &config.MatcherConfig{
		EarliestEventDate:  "2025-06-25",
		Workers:            2,
		QueueSize:          16,
		MaxRetries:         2,
		RefreshConcurrency: 4,
		RunRetention:       time.Hour,
	}
}

// runInTx makes the transaction manager mock hand factory to every Execute call.
func runInTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func newTestConfig() *config.Config {
	return &config.Config{
		Matcher: testMatcherConfig(),
		ListingWorker: &config.ListingWorkerConfig{
			AlertCacheTTL: time.Minute,
			ListingSource: config.DefaultListingSource,
		},
	}
}
