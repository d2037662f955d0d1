package usecase

import (
	"context"
	"fmt"

	"baxpro/internal/domain/entity"
	"baxpro/internal/errors"
)

// ListingResult summarizes the handling of one incoming listing.
type ListingResult struct {
	ActivityIdx     int64
	AlertsEvaluated int
	Matches         []*entity.ListingMatch
	PublishFailures int
}

// ListingUsecase matches incoming marketplace listings against every alert.
type ListingUsecase interface {
	// ProcessListing records a match for each alert the listing satisfies and publishes one
	// listing alert event per match. Store failures are returned as retryable errors.
	ProcessListing(ctx context.Context, listing *entity.Listing) (*ListingResult, error)
}

// retryableError marks a failure worth redelivering the message for.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryableError wraps err as retryable.
func NewRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError reports whether err or anything it wraps is retryable.
func IsRetryableError(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}
