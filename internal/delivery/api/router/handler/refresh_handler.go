package handler

import (
	"log/slog"
	"net/http"

	"baxpro/internal/delivery/api/response"
	domainerrors "baxpro/internal/domain/errors"
	"baxpro/internal/errors"
	"baxpro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RefreshHandlerParams holds dependencies for RefreshHandler, injected by Fx.
type RefreshHandlerParams struct {
	fx.In

	Scheduler usecase.MatchScheduler
	Logger    *slog.Logger
}

// RefreshHandler serves the administrative refresh-all endpoints
type RefreshHandler struct {
	scheduler usecase.MatchScheduler
	logger    *slog.Logger
}

// NewRefreshHandler is the constructor for RefreshHandler
func NewRefreshHandler(params RefreshHandlerParams) *RefreshHandler {
	return &RefreshHandler{
		scheduler: params.Scheduler,
		logger:    params.Logger,
	}
}

// StartRefreshAll starts recomputing every alert in the background and answers 202 with the run
func (h *RefreshHandler) StartRefreshAll(c echo.Context) error {
	run, err := h.scheduler.StartRefreshAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, c.Path()+"/"+run.ID.String())

	return response.Success(c, http.StatusAccepted, run)
}

// GetRefreshRun reports the progress of a refresh-all run
func (h *RefreshHandler) GetRefreshRun(c echo.Context) error {
	runID, err := uuid.Parse(c.Param("runId"))
	if err != nil {
		return response.HandleAppError(c, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid run id")))
	}

	run, err := h.scheduler.GetRefreshRun(runID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, run)
}
