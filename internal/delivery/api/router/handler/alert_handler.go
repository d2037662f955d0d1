package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"baxpro/internal/delivery/api/middleware"
	"baxpro/internal/delivery/api/response"
	"baxpro/internal/delivery/api/validator"
	"baxpro/internal/domain/entity"
	domainerrors "baxpro/internal/domain/errors"
	"baxpro/internal/errors"
	"baxpro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler serves the caller's alerts and their matches
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// CreateAlertRequest represents the request body for creating an alert
type CreateAlertRequest struct {
	Name           string   `json:"name" validate:"required,max=255"`
	MatchStrings   []string `json:"match_strings" validate:"min=1,max=5,dive,required,max=100"`
	MatchAll       bool     `json:"match_all"`
	MaxPrice       *int     `json:"max_price" validate:"required,gte=0"`
	BottledYearMin *int     `json:"bottled_year_min" validate:"omitempty,gte=0"`
	BottledYearMax *int     `json:"bottled_year_max" validate:"omitempty,gte=0"`
	AgeMin         *int     `json:"age_min" validate:"omitempty,gte=0"`
	AgeMax         *int     `json:"age_max" validate:"omitempty,gte=0"`
}

// UpdateAlertRequest represents a partial alert update. Absent fields are kept;
// an explicit null clears a year or age bound.
type UpdateAlertRequest struct {
	Name           *string            `json:"name" validate:"omitempty,max=255"`
	MatchStrings   []string           `json:"match_strings" validate:"omitempty,max=5,dive,required,max=100"`
	MatchAll       *bool              `json:"match_all"`
	MaxPrice       *int               `json:"max_price" validate:"omitempty,gte=0"`
	BottledYearMin entity.OptionalInt `json:"bottled_year_min"`
	BottledYearMax entity.OptionalInt `json:"bottled_year_max"`
	AgeMin         entity.OptionalInt `json:"age_min"`
	AgeMax         entity.OptionalInt `json:"age_max"`
}

// ListAlerts handles listing the caller's alerts
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid user ID in token")
	}

	alerts, err := h.alertUC.ListAlerts(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts)
}

// CreateAlert handles alert creation
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid user ID in token")
	}

	var req CreateAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid alert input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), validator.FieldErrors(err))
	}

	alert, err := h.alertUC.CreateAlert(c.Request().Context(), userID, &usecase.CreateAlertInput{
		Name:           req.Name,
		MatchStrings:   req.MatchStrings,
		MatchAll:       req.MatchAll,
		MaxPrice:       *req.MaxPrice,
		BottledYearMin: req.BottledYearMin,
		BottledYearMax: req.BottledYearMax,
		AgeMin:         req.AgeMin,
		AgeMax:         req.AgeMax,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, alert)
}

// UpdateAlert handles partial alert updates
func (h *AlertHandler) UpdateAlert(c echo.Context) error {
	userID, alertID, err := h.ownerAndAlert(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid alert input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), validator.FieldErrors(err))
	}
	if field, ok := negativeBound(&req); ok {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), map[string]string{field: "gte=0"})
	}

	alert, err := h.alertUC.UpdateAlert(c.Request().Context(), userID, alertID, &entity.AlertUpdate{
		Name:           req.Name,
		MatchStrings:   req.MatchStrings,
		MatchAll:       req.MatchAll,
		MaxPrice:       req.MaxPrice,
		BottledYearMin: req.BottledYearMin,
		BottledYearMax: req.BottledYearMax,
		AgeMin:         req.AgeMin,
		AgeMax:         req.AgeMax,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert)
}

// DeleteAlert handles alert deletion
func (h *AlertHandler) DeleteAlert(c echo.Context) error {
	userID, alertID, err := h.ownerAndAlert(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.alertUC.DeleteAlert(c.Request().Context(), userID, alertID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListMatches handles paging through an alert's matched listings
func (h *AlertHandler) ListMatches(c echo.Context) error {
	userID, alertID, err := h.ownerAndAlert(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	limit, err := queryInt(c, "limit", usecase.DefaultMatchedListingsLimit)
	if err != nil || limit < 1 {
		return response.BadRequest(c, "INVALID_LIMIT", "limit must be a positive integer")
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		return response.BadRequest(c, "INVALID_OFFSET", "offset must be a non-negative integer")
	}
	limit = min(limit, usecase.MaxMatchedListingsLimit)

	listings, err := h.alertUC.ListMatchedListings(c.Request().Context(), userID, alertID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.PagedData{
		Items: listings,
		Page:  &response.PageMeta{Limit: limit, Offset: offset, Count: len(listings)},
	})
}

// ownerAndAlert resolves the caller and the :id path parameter.
func (h *AlertHandler) ownerAndAlert(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid alert id"))
	}

	return userID, alertID, nil
}

func negativeBound(req *UpdateAlertRequest) (string, bool) {
	bounds := []struct {
		field string
		value entity.OptionalInt
	}{
		{"bottled_year_min", req.BottledYearMin},
		{"bottled_year_max", req.BottledYearMax},
		{"age_min", req.AgeMin},
		{"age_max", req.AgeMax},
	}
	for _, b := range bounds {
		if b.value.Value != nil && *b.value.Value < 0 {
			return b.field, true
		}
	}

	return "", false
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	return strconv.Atoi(raw)
}
