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

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler holds dependencies for moderation handlers
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// ModerationReasonRequest represents the request body for reject, suspend,
// flag and drop verbs
type ModerationReasonRequest struct {
	Reason string `json:"reason,omitempty"`
}

// Dashboard handles the admin overview numbers
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.adminUC.DashboardStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// PendingVendors handles the verification queue listing
func (h *AdminHandler) PendingVendors(c echo.Context) error {
	page, err := h.adminUC.PendingVendors(c.Request().Context(), queryInt(c, "page", 0), queryInt(c, "limit", 0))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// PendingGoods handles the approval queue listing
func (h *AdminHandler) PendingGoods(c echo.Context) error {
	page, err := h.adminUC.PendingGoods(c.Request().Context(), queryInt(c, "page", 0), queryInt(c, "limit", 0))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// VerifyVendor handles moving a vendor to verified
func (h *AdminHandler) VerifyVendor(c echo.Context) error {
	id, adminID, ok := h.moderationIDs(c)
	if !ok {
		return nil
	}

	vendor, err := h.adminUC.VerifyVendor(c.Request().Context(), id, adminID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

// RejectVendor handles moving a vendor to rejected
func (h *AdminHandler) RejectVendor(c echo.Context) error {
	id, adminID, ok := h.moderationIDs(c)
	if !ok {
		return nil
	}

	var req ModerationReasonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid moderation input")
	}

	vendor, err := h.adminUC.RejectVendor(c.Request().Context(), id, adminID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

// SuspendVendor handles moving a vendor to suspended
func (h *AdminHandler) SuspendVendor(c echo.Context) error {
	id, adminID, ok := h.moderationIDs(c)
	if !ok {
		return nil
	}

	var req ModerationReasonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid moderation input")
	}

	vendor, err := h.adminUC.SuspendVendor(c.Request().Context(), id, adminID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

// ApproveGoods handles moving an item to approved
func (h *AdminHandler) ApproveGoods(c echo.Context) error {
	id, adminID, ok := h.moderationIDs(c)
	if !ok {
		return nil
	}

	goods, err := h.adminUC.ApproveGoods(c.Request().Context(), id, adminID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, goods)
}

// FlagGoods handles moving an item to flagged
func (h *AdminHandler) FlagGoods(c echo.Context) error {
	id, adminID, ok := h.moderationIDs(c)
	if !ok {
		return nil
	}

	var req ModerationReasonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid moderation input")
	}

	goods, err := h.adminUC.FlagGoods(c.Request().Context(), id, adminID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, goods)
}

// DropGoods handles moving an item to dropped
func (h *AdminHandler) DropGoods(c echo.Context) error {
	id, adminID, ok := h.moderationIDs(c)
	if !ok {
		return nil
	}

	var req ModerationReasonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid moderation input")
	}

	goods, err := h.adminUC.DropGoods(c.Request().Context(), id, adminID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, goods)
}

// ReconcileCounters handles rebuilding the denormalized counters
func (h *AdminHandler) ReconcileCounters(c echo.Context) error {
	if err := h.adminUC.ReconcileCounters(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Counters reconciled successfully"})
}

// moderationIDs extracts the target entity ID and the acting admin ID. It
// writes the error response itself and reports false when either is missing.
func (h *AdminHandler) moderationIDs(c echo.Context) (uuid.UUID, uuid.UUID, bool) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		_ = response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")

		return uuid.Nil, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = response.BadRequest(c, "INVALID_ID", "Invalid ID")

		return uuid.Nil, uuid.Nil, false
	}

	return id, adminID, true
}
