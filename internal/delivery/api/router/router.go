// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"baxpro/internal/delivery/api/middleware"
	"baxpro/internal/delivery/api/router/handler"
	"baxpro/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AlertHandler   *handler.AlertHandler
	RefreshHandler *handler.RefreshHandler
	CatalogHandler *handler.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	alertHandler   *handler.AlertHandler
	refreshHandler *handler.RefreshHandler
	catalogHandler *handler.CatalogHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		alertHandler:   params.AlertHandler,
		refreshHandler: params.RefreshHandler,
		catalogHandler: params.CatalogHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))

	alertsGroup := e.Group("/api/alerts")
	alertsGroup.Use(r.authMiddleware.Authenticate)
	{
		alertsGroup.GET("", r.alertHandler.ListAlerts)
		alertsGroup.POST("", r.alertHandler.CreateAlert)
		alertsGroup.PATCH("/:id", r.alertHandler.UpdateAlert)
		alertsGroup.DELETE("/:id", r.alertHandler.DeleteAlert)
		alertsGroup.GET("/:id/matches", r.alertHandler.ListMatches)

		// Static segments take priority over /:id in echo.
		refreshGroup := alertsGroup.Group("/refresh-all-matches")
		refreshGroup.Use(r.authMiddleware.RequireRole(entity.RoleVIP))
		{
			refreshGroup.POST("", r.refreshHandler.StartRefreshAll)
			refreshGroup.GET("/:runId", r.refreshHandler.GetRefreshRun)
		}
	}

	e.GET("/api/activity", r.catalogHandler.ListActivity, r.authMiddleware.Authenticate)
	e.GET("/api/activity-types", r.catalogHandler.ListActivityTypes, r.authMiddleware.Authenticate)

	assetsGroup := e.Group("/api/assets")
	assetsGroup.Use(r.authMiddleware.Authenticate)
	{
		assetsGroup.GET("/idx/:assetIdx", r.catalogHandler.GetAssetByIdx)
		assetsGroup.GET("/:assetId", r.catalogHandler.GetAsset)
	}
}
