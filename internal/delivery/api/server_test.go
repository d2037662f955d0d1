package api

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"baxpro/config"
	"baxpro/internal/delivery/api/middleware"
	"baxpro/internal/delivery/api/router"
	"baxpro/internal/delivery/api/router/handler"
	"baxpro/internal/infra/metrics"
	servicemocks "baxpro/internal/mocks/service"
	usecasemocks "baxpro/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
)

func TestNewEcho_Middleware(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	reg := metrics.NewRegistry()
	metrics.New(reg)

	e := newEcho(cfg, logger, router.RouterParams{
		AlertHandler: handler.NewAlertHandler(handler.AlertHandlerParams{
			AlertUC: usecasemocks.NewMockAlertUsecase(t),
			Logger:  logger,
		}),
		RefreshHandler: handler.NewRefreshHandler(handler.RefreshHandlerParams{
			Scheduler: usecasemocks.NewMockMatchScheduler(t),
			Logger:    logger,
		}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
			CatalogUC: usecasemocks.NewMockCatalogUsecase(t),
			Logger:    logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			TokenService: servicemocks.NewMockTokenService(t),
		}),
		Registry: reg,
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "trace-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-1", rec.Header().Get("X-Request-Id"))
	assert.Contains(t, logs.String(), "trace-1")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}
