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

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	VendorUC   usecase.VendorUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	vendorUC   usecase.VendorUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		vendorUC:   params.VendorUC,
		logger:     params.Logger,
	}
}

// ListLocations handles the public location listing
func (h *LocationHandler) ListLocations(c echo.Context) error {
	query := &usecase.LocationQuery{
		Page:      queryInt(c, "page", 0),
		Limit:     queryInt(c, "limit", 0),
		Type:      c.QueryParam("type"),
		State:     c.QueryParam("state"),
		Lga:       c.QueryParam("lga"),
		Area:      c.QueryParam("area"),
		Search:    c.QueryParam("search"),
		Latitude:  queryFloat(c, "latitude"),
		Longitude: queryFloat(c, "longitude"),
	}
	if radius := queryFloat(c, "radius_km"); radius != nil {
		query.RadiusKm = *radius
	}

	page, err := h.locationUC.FindAll(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// ListStates handles the static state reference list
func (h *LocationHandler) ListStates(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.locationUC.States())
}

// StateStats handles the per-state location counts
func (h *LocationHandler) StateStats(c echo.Context) error {
	stats, err := h.locationUC.StateStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// NearbyLocations handles the proximity search
func (h *LocationHandler) NearbyLocations(c echo.Context) error {
	latitude := queryFloat(c, "latitude")
	longitude := queryFloat(c, "longitude")
	if latitude == nil || longitude == nil {
		return response.BadRequest(c, "MISSING_COORDINATES", "latitude and longitude are required")
	}

	radiusKm := constants.DefaultRadiusKm
	if radius := queryFloat(c, "radius_km"); radius != nil && *radius > 0 {
		radiusKm = *radius
	}

	locations, err := h.locationUC.FindNearby(c.Request().Context(), *longitude, *latitude, radiusKm)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations)
}

// LocationsByState handles listing the locations of one state
func (h *LocationHandler) LocationsByState(c echo.Context) error {
	state := c.Param("state")
	if state == "" {
		return response.BadRequest(c, "INVALID_STATE", "State is required")
	}

	locations, err := h.locationUC.FindByState(c.Request().Context(), state)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations)
}

// GetLocation handles retrieving one location by ID
func (h *LocationHandler) GetLocation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	location, err := h.locationUC.FindOne(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location)
}

// LocationVendors handles listing the vendors placed inside a location
func (h *LocationHandler) LocationVendors(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	vendors, err := h.vendorUC.FindByLocation(c.Request().Context(), id, !middleware.IsAdmin(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendors)
}

// CreateLocation handles registering a new location (admin only)
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	var req usecase.CreateLocationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	location, err := h.locationUC.Create(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, location)
}

// UpdateLocation handles patching a location (admin only)
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	var req usecase.UpdateLocationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	location, err := h.locationUC.Update(c.Request().Context(), id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location)
}

// DeleteLocation handles removing a location (admin only)
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	if err := h.locationUC.Remove(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Location deleted successfully"})
}
