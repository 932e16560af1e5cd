package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/constants"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	VendorUC usecase.VendorUsecase
	GoodsUC  usecase.GoodsUsecase
	Logger   *slog.Logger
}

// VendorHandler holds dependencies for vendor-related handlers
type VendorHandler struct {
	vendorUC usecase.VendorUsecase
	goodsUC  usecase.GoodsUsecase
	logger   *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{
		vendorUC: params.VendorUC,
		goodsUC:  params.GoodsUC,
		logger:   params.Logger,
	}
}

// ListVendors handles the vendor listing. Anonymous callers only see
// verified vendors; admins see every status.
func (h *VendorHandler) ListVendors(c echo.Context) error {
	query := &usecase.VendorQuery{
		Page:       queryInt(c, "page", 0),
		Limit:      queryInt(c, "limit", 0),
		Status:     c.QueryParam("status"),
		VendorType: c.QueryParam("vendor_type"),
		LocationID: queryUUID(c, "location_id"),
		State:      c.QueryParam("state"),
		Lga:        c.QueryParam("lga"),
		Area:       c.QueryParam("area"),
		Search:     c.QueryParam("search"),
		Category:   c.QueryParam("category"),
		IsOpen:     queryBool(c, "is_open"),
		Latitude:   queryFloat(c, "latitude"),
		Longitude:  queryFloat(c, "longitude"),
		PublicOnly: !middleware.IsAdmin(c),
	}
	if radius := queryFloat(c, "radius_km"); radius != nil {
		query.RadiusKm = *radius
	}

	page, err := h.vendorUC.FindAll(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// NearbyVendors handles the vendor proximity search
func (h *VendorHandler) NearbyVendors(c echo.Context) error {
	latitude := queryFloat(c, "latitude")
	longitude := queryFloat(c, "longitude")
	if latitude == nil || longitude == nil {
		return response.BadRequest(c, "MISSING_COORDINATES", "latitude and longitude are required")
	}

	radiusKm := constants.DefaultRadiusKm
	if radius := queryFloat(c, "radius_km"); radius != nil && *radius > 0 {
		radiusKm = *radius
	}

	vendors, err := h.vendorUC.FindNearby(c.Request().Context(), *longitude, *latitude, radiusKm)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendors)
}

// VendorCategories handles the distinct category list
func (h *VendorHandler) VendorCategories(c echo.Context) error {
	categories, err := h.vendorUC.Categories(c.Request().Context(), !middleware.IsAdmin(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// MyVendor handles retrieving the caller's own vendor profile
func (h *VendorHandler) MyVendor(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	vendor, err := h.vendorUC.FindByUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if vendor == nil {
		return response.NotFound(c, "VENDOR_NOT_FOUND", "You do not have a vendor profile yet")
	}

	return response.Success(c, http.StatusOK, vendor)
}

// GetVendor handles retrieving one vendor by ID
func (h *VendorHandler) GetVendor(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	vendor, err := h.vendorUC.FindOne(c.Request().Context(), id, !middleware.IsAdmin(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

// VendorGoods handles listing one vendor's goods
func (h *VendorHandler) VendorGoods(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	query := &usecase.GoodsQuery{
		Page:       queryInt(c, "page", 0),
		Limit:      queryInt(c, "limit", 0),
		SortBy:     c.QueryParam("sort_by"),
		SortOrder:  c.QueryParam("sort_order"),
		PublicOnly: !middleware.IsAdmin(c),
	}

	page, err := h.goodsUC.FindByVendor(c.Request().Context(), id, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// VendorQRCode handles rendering the vendor storefront QR as a PNG
func (h *VendorHandler) VendorQRCode(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	qrCode, err := h.vendorUC.QRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=vendor-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

// CreateVendor handles opening a vendor profile for the caller
func (h *VendorHandler) CreateVendor(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.CreateVendorInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	vendor, err := h.vendorUC.Create(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, vendor)
}

// UpdateVendor handles patching a vendor profile (owner or admin)
func (h *VendorHandler) UpdateVendor(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	var req usecase.UpdateVendorInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor input")
	}

	vendor, err := h.vendorUC.Update(c.Request().Context(), id, userID, middleware.IsAdmin(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

// DeleteVendor handles removing a vendor profile (owner or admin)
func (h *VendorHandler) DeleteVendor(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	if err := h.vendorUC.Remove(c.Request().Context(), id, userID, middleware.IsAdmin(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Vendor deleted successfully"})
}
