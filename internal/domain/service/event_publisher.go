package service

import (
	"context"
)

// ListingAlertEvent is published for every alert a new listing satisfies and is consumed by the
// alert sender, which notifies the alert owner.
type ListingAlertEvent struct {
	RequestID  string  `json:"request_id,omitempty"` // For distributed tracing
	MatchIdx   int64   `json:"match_idx"`
	AlertID    string  `json:"alert_id"`
	AlertName  string  `json:"alert_name"`
	UserID     string  `json:"user_id"`
	AssetIdx   int64   `json:"asset_idx"`
	AssetName  string  `json:"asset_name"`
	AssetPrice float64 `json:"asset_price"`
	AssetURL   string  `json:"asset_url,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishListingAlert publishes one matched listing for the notification pipeline
	PublishListingAlert(ctx context.Context, event *ListingAlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
