package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"baxpro/internal/delivery/api/response"
	"baxpro/internal/domain/entity"
	"baxpro/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// maxTypeCodeLength matches the width of dim_activity_types.activity_type_code.
const maxTypeCodeLength = 50

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the read-only catalog: the activity feed, activity types and assets
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListActivity handles paging through the activity feed, optionally filtered by ?type=
func (h *CatalogHandler) ListActivity(c echo.Context) error {
	page, err := queryInt(c, "page", 1)
	if err != nil || page < 1 {
		return response.BadRequest(c, "INVALID_PAGE", "page must be a positive integer")
	}
	limit, err := queryInt(c, "limit", usecase.DefaultActivityFeedLimit)
	if err != nil || limit < 1 {
		return response.BadRequest(c, "INVALID_LIMIT", "limit must be a positive integer")
	}

	typeCode := strings.TrimSpace(c.QueryParam("type"))
	if len(typeCode) > maxTypeCodeLength {
		return response.BadRequest(c, "INVALID_TYPE", "type must be at most 50 characters")
	}

	feed, err := h.catalogUC.ListActivityFeed(c.Request().Context(), &usecase.ActivityFeedQuery{
		TypeCode: typeCode,
		Page:     page,
		Limit:    min(limit, usecase.MaxActivityFeedLimit),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, feed)
}

// ListActivityTypes handles listing the activity type dimension
func (h *CatalogHandler) ListActivityTypes(c echo.Context) error {
	types, err := h.catalogUC.ListActivityTypes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, types)
}

// GetAsset handles looking an asset up by its public identifier
func (h *CatalogHandler) GetAsset(c echo.Context) error {
	assetID := strings.TrimSpace(c.Param("assetId"))
	if assetID == "" || len(assetID) > entity.AssetIDLength {
		return response.BadRequest(c, "INVALID_ASSET_ID", "assetId must be 1 to 44 characters")
	}

	asset, err := h.catalogUC.GetAsset(c.Request().Context(), assetID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, asset)
}

// GetAssetByIdx handles looking an asset up by its catalog index
func (h *CatalogHandler) GetAssetByIdx(c echo.Context) error {
	assetIdx, err := strconv.ParseInt(c.Param("assetIdx"), 10, 64)
	if err != nil || assetIdx < 1 {
		return response.BadRequest(c, "INVALID_ASSET_IDX", "assetIdx must be a positive integer")
	}

	asset, err := h.catalogUC.GetAssetByIdx(c.Request().Context(), assetIdx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, asset)
}
