package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"baxpro/internal/delivery/api/middleware"
	"baxpro/internal/delivery/api/response"
	"baxpro/internal/delivery/api/validator"
	"baxpro/internal/domain/service"
	servicemocks "baxpro/internal/mocks/service"
	usecasemocks "baxpro/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

type handlerEnv struct {
	t         *testing.T
	e         *echo.Echo
	userID    uuid.UUID
	alertUC   *usecasemocks.MockAlertUsecase
	catalogUC *usecasemocks.MockCatalogUsecase
	scheduler *usecasemocks.MockMatchScheduler
}

func newHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env := &handlerEnv{
		t:         t,
		e:         echo.New(),
		userID:    uuid.New(),
		alertUC:   usecasemocks.NewMockAlertUsecase(t),
		catalogUC: usecasemocks.NewMockCatalogUsecase(t),
		scheduler: usecasemocks.NewMockMatchScheduler(t),
	}

	tokenSvc := servicemocks.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(testToken).
		Return(&service.Claims{UserID: env.userID, Roles: []string{"user"}}, nil).Maybe()
	auth := middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{TokenService: tokenSvc})

	env.e.Validator = validator.New()
	env.e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	alerts := NewAlertHandler(AlertHandlerParams{AlertUC: env.alertUC, Logger: logger})
	refresh := NewRefreshHandler(RefreshHandlerParams{Scheduler: env.scheduler, Logger: logger})

	g := env.e.Group("/api/alerts", auth.Authenticate)
	g.GET("", alerts.ListAlerts)
	g.POST("", alerts.CreateAlert)
	g.PATCH("/:id", alerts.UpdateAlert)
	g.DELETE("/:id", alerts.DeleteAlert)
	g.GET("/:id/matches", alerts.ListMatches)
	g.POST("/refresh-all-matches", refresh.StartRefreshAll)
	g.GET("/refresh-all-matches/:runId", refresh.GetRefreshRun)

	catalog := NewCatalogHandler(CatalogHandlerParams{CatalogUC: env.catalogUC, Logger: logger})
	env.e.GET("/api/activity", catalog.ListActivity, auth.Authenticate)
	env.e.GET("/api/activity-types", catalog.ListActivityTypes, auth.Authenticate)
	env.e.GET("/api/assets/idx/:assetIdx", catalog.GetAssetByIdx, auth.Authenticate)
	env.e.GET("/api/assets/:assetId", catalog.GetAsset, auth.Authenticate)

	return env
}

func (env *handlerEnv) do(method, target, body string) *httptest.ResponseRecorder {
	env.t.Helper()

	req := newRequest(method, target, body)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)

	return serve(env.e, req)
}

func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}
