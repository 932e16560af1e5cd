package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GoodsHandlerParams holds dependencies for GoodsHandler, injected by Fx.
type GoodsHandlerParams struct {
	fx.In

	GoodsUC usecase.GoodsUsecase
	Logger  *slog.Logger
}

// GoodsHandler holds dependencies for goods-related handlers
type GoodsHandler struct {
	goodsUC usecase.GoodsUsecase
	logger  *slog.Logger
}

// NewGoodsHandler is the constructor for GoodsHandler
func NewGoodsHandler(params GoodsHandlerParams) *GoodsHandler {
	return &GoodsHandler{
		goodsUC: params.GoodsUC,
		logger:  params.Logger,
	}
}

// ListGoods handles the goods listing. Anonymous callers only see approved,
// available items; admins see every status.
func (h *GoodsHandler) ListGoods(c echo.Context) error {
	query := &usecase.GoodsQuery{
		Page:       queryInt(c, "page", 0),
		Limit:      queryInt(c, "limit", 0),
		Status:     c.QueryParam("status"),
		Type:       c.QueryParam("type"),
		Category:   c.QueryParam("category"),
		Search:     c.QueryParam("search"),
		MinPrice:   queryFloat(c, "min_price"),
		MaxPrice:   queryFloat(c, "max_price"),
		VendorID:   queryUUID(c, "vendor_id"),
		Condition:  c.QueryParam("condition"),
		Brand:      c.QueryParam("brand"),
		SortBy:     c.QueryParam("sort_by"),
		SortOrder:  c.QueryParam("sort_order"),
		PublicOnly: !middleware.IsAdmin(c),
	}

	page, err := h.goodsUC.FindAll(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// MyGoods handles listing the caller's own goods in any status
func (h *GoodsHandler) MyGoods(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	query := &usecase.GoodsQuery{
		Page:      queryInt(c, "page", 0),
		Limit:     queryInt(c, "limit", 0),
		Status:    c.QueryParam("status"),
		Type:      c.QueryParam("type"),
		Category:  c.QueryParam("category"),
		Search:    c.QueryParam("search"),
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: c.QueryParam("sort_order"),
	}

	page, err := h.goodsUC.FindByOwner(c.Request().Context(), userID, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GoodsCategories handles the distinct category list
func (h *GoodsHandler) GoodsCategories(c echo.Context) error {
	categories, err := h.goodsUC.Categories(c.Request().Context(), !middleware.IsAdmin(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// GoodsStats handles the moderation count snapshot (admin only)
func (h *GoodsHandler) GoodsStats(c echo.Context) error {
	stats, err := h.goodsUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// GetGoods handles retrieving one item by ID. The fetch counts as a view
// for public reads.
func (h *GoodsHandler) GetGoods(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid goods ID")
	}

	publicOnly := !middleware.IsAdmin(c)
	goods, err := h.goodsUC.FindOne(c.Request().Context(), id, publicOnly, publicOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, goods)
}

// CreateGoods handles listing a new item under the caller's vendor profile
func (h *GoodsHandler) CreateGoods(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.CreateGoodsInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid goods input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	goods, err := h.goodsUC.Create(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, goods)
}

// UpdateGoods handles patching an item (creator or admin)
func (h *GoodsHandler) UpdateGoods(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid goods ID")
	}

	var req usecase.UpdateGoodsInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid goods input")
	}

	goods, err := h.goodsUC.Update(c.Request().Context(), id, userID, middleware.IsAdmin(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, goods)
}

// DeleteGoods handles removing an item (creator or admin)
func (h *GoodsHandler) DeleteGoods(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid goods ID")
	}

	if err := h.goodsUC.Remove(c.Request().Context(), id, userID, middleware.IsAdmin(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Goods deleted successfully"})
}
