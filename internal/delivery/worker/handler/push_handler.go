package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"baxpro/config"
	deliverycontext "baxpro/internal/delivery/context"
	"baxpro/internal/domain/constants"
	"baxpro/internal/domain/entity"
	domainerrors "baxpro/internal/domain/errors"
	"baxpro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// Message attributes set by the marketplace monitor.
const (
	attrEventType  = "event_type"
	attrExternalID = "external_id"
	attrRequestID  = "request_id"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// ListingPayload is the JSON carried in the message data.
type ListingPayload struct {
	AssetIdx    int64            `json:"asset_idx"`
	AssetID     string           `json:"asset_id"`
	Name        string           `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	BottledYear *int             `json:"bottled_year"`
	Age         *int             `json:"age"`
	RequestID   string           `json:"request_id,omitempty"`
}

// idTokenValidator checks a Google-signed OIDC token for the given audience.
type idTokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages announcing new marketplace listings
type PushHandler struct {
	verifyPushAuth bool
	validateToken  idTokenValidator
	logger         *slog.Logger
	listingUC      usecase.ListingUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	ListingUC usecase.ListingUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		listingUC:      params.ListingUC,
	}
}

// HandlePush acks with 200 once the listing is handled or deliberately skipped, 400 for messages that
// can never succeed and 503 when a redelivery might.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	attrs := pushMsg.Message.Attributes
	if eventType := attrs[attrEventType]; eventType != constants.EventTypeNewListing {
		h.logger.Info("[Worker] Skipping unsupported event",
			slog.String("event_type", eventType),
			slog.String("message_id", pushMsg.Message.MessageID),
		)

		return c.NoContent(http.StatusOK)
	}

	listing, payload, err := decodeListing(&pushMsg)
	if err != nil {
		h.logger.Error("[Worker] Malformed listing message",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, payload)
	ctx = deliverycontext.WithRequestLogger(ctx, h.logger, requestID)
	reqLogger := deliverycontext.GetLogger(ctx)

	reqLogger.Info("[Worker] Processing listing",
		slog.Int64(deliverycontext.AttrActivityIdx, listing.ActivityIdx),
		slog.Int64(deliverycontext.AttrAssetIdx, listing.AssetIdx),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	result, err := h.listingUC.ProcessListing(ctx, listing)
	if err != nil {
		retryable := usecase.IsRetryableError(err)
		reqLogger.Error("[Worker] Failed to process listing",
			slog.Int64(deliverycontext.AttrActivityIdx, listing.ActivityIdx),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Listing processed",
		slog.Int64(deliverycontext.AttrActivityIdx, listing.ActivityIdx),
		slog.Int("alerts_evaluated", result.AlertsEvaluated),
		slog.Int("matches", len(result.Matches)),
		slog.Int("publish_failures", result.PublishFailures),
	)

	return c.NoContent(http.StatusOK)
}

// decodeListing turns a push message into a listing. Every failure is an ErrInvalidListingPayload.
func decodeListing(pushMsg *PubSubMessage) (*entity.Listing, *ListingPayload, error) {
	invalid := func(format string, args ...any) error {
		return errors.WithStack(domainerrors.ErrInvalidListingPayload.WithDetails(fmt.Sprintf(format, args...)))
	}

	externalID := pushMsg.Message.Attributes[attrExternalID]
	activityIdx, err := strconv.ParseInt(strings.TrimSpace(externalID), 10, 64)
	if err != nil || activityIdx <= 0 {
		return nil, nil, invalid("%s attribute %q is not an activity index", attrExternalID, externalID)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, nil, invalid("data is not base64: %v", err)
	}

	var payload ListingPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, nil, invalid("data is not a listing: %v", err)
	}
	if payload.AssetIdx <= 0 {
		return nil, nil, invalid("asset_idx %d is not positive", payload.AssetIdx)
	}

	return &entity.Listing{
		ActivityIdx: activityIdx,
		AssetIdx:    payload.AssetIdx,
		AssetID:     payload.AssetID,
		Name:        payload.Name,
		Price:       payload.Price,
		BottledYear: payload.BottledYear,
		Age:         payload.Age,
	}, &payload, nil
}

// extractRequestID prefers the message attribute, then the payload, then the X-Request-ID middleware.
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, payload *ListingPayload) string {
	if requestID := pushMsg.Message.Attributes[attrRequestID]; requestID != "" {
		return requestID
	}
	if payload.RequestID != "" {
		return payload.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is this endpoint's URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
