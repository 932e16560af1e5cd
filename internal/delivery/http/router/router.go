// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	LocationHandler *handler.LocationHandler
	VendorHandler   *handler.VendorHandler
	GoodsHandler    *handler.GoodsHandler
	AdminHandler    *handler.AdminHandler
	UploadHandler   *handler.UploadHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware
	requireAdmin := auth.RequireRole(entity.RoleAdmin.String())

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
	}

	// Account routes for the authenticated user
	userGroup := e.Group("/users")
	{
		userGroup.GET("/me", r.params.UserHandler.GetProfile, auth.Authenticate)
		userGroup.PATCH("/me", r.params.UserHandler.UpdateProfile, auth.Authenticate)
		userGroup.POST("/me/password", r.params.UserHandler.ChangePassword, auth.Authenticate)

		// Admin account management
		userGroup.GET("", r.params.UserHandler.ListUsers, auth.Authenticate, requireAdmin)
		userGroup.GET("/:id", r.params.UserHandler.GetUser, auth.Authenticate, requireAdmin)
		userGroup.PATCH("/:id/role", r.params.UserHandler.SetRole, auth.Authenticate, requireAdmin)
		userGroup.PATCH("/:id/active", r.params.UserHandler.SetActive, auth.Authenticate, requireAdmin)
		userGroup.DELETE("/:id", r.params.UserHandler.DeleteUser, auth.Authenticate, requireAdmin)
	}

	// Location registry routes
	locationGroup := e.Group("/locations")
	{
		locationGroup.GET("", r.params.LocationHandler.ListLocations)
		locationGroup.GET("/states", r.params.LocationHandler.ListStates)
		locationGroup.GET("/stats/states", r.params.LocationHandler.StateStats)
		locationGroup.GET("/nearby", r.params.LocationHandler.NearbyLocations)
		locationGroup.GET("/state/:state", r.params.LocationHandler.LocationsByState)
		locationGroup.GET("/:id", r.params.LocationHandler.GetLocation)
		locationGroup.GET("/:id/vendors", r.params.LocationHandler.LocationVendors, auth.OptionalAuthenticate)

		locationGroup.POST("", r.params.LocationHandler.CreateLocation, auth.Authenticate, requireAdmin)
		locationGroup.PATCH("/:id", r.params.LocationHandler.UpdateLocation, auth.Authenticate, requireAdmin)
		locationGroup.DELETE("/:id", r.params.LocationHandler.DeleteLocation, auth.Authenticate, requireAdmin)
	}

	// Vendor routes
	vendorGroup := e.Group("/vendors")
	{
		vendorGroup.GET("", r.params.VendorHandler.ListVendors, auth.OptionalAuthenticate)
		vendorGroup.GET("/nearby", r.params.VendorHandler.NearbyVendors)
		vendorGroup.GET("/categories", r.params.VendorHandler.VendorCategories, auth.OptionalAuthenticate)
		vendorGroup.GET("/me", r.params.VendorHandler.MyVendor, auth.Authenticate)
		vendorGroup.GET("/:id", r.params.VendorHandler.GetVendor, auth.OptionalAuthenticate)
		vendorGroup.GET("/:id/goods", r.params.VendorHandler.VendorGoods, auth.OptionalAuthenticate)
		vendorGroup.GET("/:id/qrcode", r.params.VendorHandler.VendorQRCode)

		vendorGroup.POST("", r.params.VendorHandler.CreateVendor, auth.Authenticate)
		vendorGroup.PATCH("/:id", r.params.VendorHandler.UpdateVendor, auth.Authenticate)
		vendorGroup.DELETE("/:id", r.params.VendorHandler.DeleteVendor, auth.Authenticate)
	}

	// Goods routes
	goodsGroup := e.Group("/goods")
	{
		goodsGroup.GET("", r.params.GoodsHandler.ListGoods, auth.OptionalAuthenticate)
		goodsGroup.GET("/categories", r.params.GoodsHandler.GoodsCategories, auth.OptionalAuthenticate)
		goodsGroup.GET("/stats", r.params.GoodsHandler.GoodsStats, auth.Authenticate, requireAdmin)
		goodsGroup.GET("/my-goods", r.params.GoodsHandler.MyGoods, auth.Authenticate, auth.RequireRole(entity.RoleVendor.String()))
		goodsGroup.GET("/:id", r.params.GoodsHandler.GetGoods, auth.OptionalAuthenticate)

		goodsGroup.POST("", r.params.GoodsHandler.CreateGoods, auth.Authenticate, auth.RequireRole(entity.RoleVendor.String()))
		goodsGroup.PATCH("/:id", r.params.GoodsHandler.UpdateGoods, auth.Authenticate)
		goodsGroup.DELETE("/:id", r.params.GoodsHandler.DeleteGoods, auth.Authenticate)
	}

	// Upload routes
	uploadGroup := e.Group("/uploads")
	uploadGroup.Use(auth.Authenticate)
	{
		uploadGroup.POST("/image", r.params.UploadHandler.UploadImage)
		uploadGroup.POST("/images", r.params.UploadHandler.UploadImages)
		uploadGroup.DELETE("/image", r.params.UploadHandler.DeleteImage)
	}

	// Moderation routes, admin only
	adminGroup := e.Group("/admin")
	adminGroup.Use(auth.Authenticate)
	adminGroup.Use(requireAdmin)
	{
		adminGroup.GET("/dashboard", r.params.AdminHandler.Dashboard)
		adminGroup.GET("/vendors/pending", r.params.AdminHandler.PendingVendors)
		adminGroup.GET("/goods/pending", r.params.AdminHandler.PendingGoods)

		adminGroup.POST("/vendors/:id/verify", r.params.AdminHandler.VerifyVendor)
		adminGroup.POST("/vendors/:id/reject", r.params.AdminHandler.RejectVendor)
		adminGroup.POST("/vendors/:id/suspend", r.params.AdminHandler.SuspendVendor)

		adminGroup.POST("/goods/:id/approve", r.params.AdminHandler.ApproveGoods)
		adminGroup.POST("/goods/:id/flag", r.params.AdminHandler.FlagGoods)
		adminGroup.POST("/goods/:id/drop", r.params.AdminHandler.DropGoods)

		adminGroup.POST("/reconcile-counters", r.params.AdminHandler.ReconcileCounters)
	}
}
