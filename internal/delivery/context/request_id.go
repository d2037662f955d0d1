// Package context carries the request ID and a scoped logger through request and listing contexts.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing the scoped logger in context.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// Log attribute keys shared by the API, the listing worker and the match scheduler.
const (
	AttrRequestID   = "request_id"
	AttrAlertID     = "alert_id"
	AttrActivityIdx = "activity_idx"
	AttrAssetIdx    = "asset_idx"
)

// GetRequestID extracts the request ID from echo.Context, generating one when absent.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// WithRequestLogger stores the request ID together with a logger tagged with it.
func WithRequestLogger(ctx context.Context, logger *slog.Logger, requestID string) context.Context {
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, logger.With(slog.String(AttrRequestID, requestID)))
}

// ListingLogger narrows the context logger, or fallback, to one listing.
func ListingLogger(ctx context.Context, fallback *slog.Logger, activityIdx, assetIdx int64) *slog.Logger {
	return GetLoggerOrDefault(ctx, fallback).With(
		slog.Int64(AttrActivityIdx, activityIdx),
		slog.Int64(AttrAssetIdx, assetIdx),
	)
}

// AlertLogger narrows the context logger, or fallback, to one alert.
func AlertLogger(ctx context.Context, fallback *slog.Logger, alertID uuid.UUID) *slog.Logger {
	return GetLoggerOrDefault(ctx, fallback).With(slog.String(AttrAlertID, alertID.String()))
}

// GetLogger returns the scoped logger, or nil when none was stored.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the scoped logger, or fallback when none was stored.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
