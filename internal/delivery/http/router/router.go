// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"laundrypro/internal/delivery/http/middleware"
	"laundrypro/internal/delivery/http/router/handler"
	"laundrypro/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	OrderHandler        *handler.OrderHandler
	CatalogHandler      *handler.CatalogHandler
	IssueHandler        *handler.IssueHandler
	ReportHandler       *handler.ReportHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	orderHandler        *handler.OrderHandler
	catalogHandler      *handler.CatalogHandler
	issueHandler        *handler.IssueHandler
	reportHandler       *handler.ReportHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		orderHandler:        params.OrderHandler,
		catalogHandler:      params.CatalogHandler,
		issueHandler:        params.IssueHandler,
		reportHandler:       params.ReportHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	api := e.Group("/api")

	authed := r.authMiddleware.Authenticate
	staffOnly := r.authMiddleware.RequireRole(entity.RoleStaff, entity.RoleAdmin)
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Auth and profile routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.GET("/me", r.userHandler.GetProfile, authed)
		authGroup.PATCH("/profile", r.userHandler.UpdateProfile, authed)
		authGroup.PATCH("/push-token", r.userHandler.UpdatePushToken, authed)
	}

	// Public catalog routes
	api.GET("/services", r.catalogHandler.ListServices)
	api.GET("/services/:id", r.catalogHandler.GetService)
	api.GET("/branches", r.catalogHandler.ListBranches)
	api.GET("/branches/nearby", r.catalogHandler.NearbyBranches)
	api.GET("/branches/:id", r.catalogHandler.GetBranch)

	// Public order tracking. The order number is the access capability.
	api.GET("/orders/track/:orderNumber", r.orderHandler.TrackOrder)
	api.GET("/orders/track/:orderNumber/qr", r.orderHandler.TrackingQR)

	// Order routes
	orderGroup := api.Group("/orders", authed)
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
		orderGroup.POST("/:id/review", r.orderHandler.SubmitReview)
		orderGroup.PATCH("/:id/status", r.orderHandler.UpdateStatus, staffOnly)
		orderGroup.PATCH("/:id/assign", r.orderHandler.AssignStaff, adminOnly)
	}

	// Issue reporting and notification feed
	api.POST("/issues", r.issueHandler.ReportIssue, authed)
	api.GET("/notifications", r.notificationHandler.ListNotifications, authed)
	api.PATCH("/notifications/read-all", r.notificationHandler.MarkAllRead, authed)
	api.PATCH("/notifications/:id/read", r.notificationHandler.MarkRead, authed)

	// Admin routes: issue workflow, catalog management and reporting
	adminGroup := api.Group("/admin", authed, staffOnly)
	{
		adminGroup.GET("/issues", r.issueHandler.ListIssues)
		adminGroup.GET("/issues/:id", r.issueHandler.GetIssue)
		adminGroup.PATCH("/issues/:id/resolve", r.issueHandler.ResolveIssue)

		adminGroup.GET("/branches", r.catalogHandler.ListBranches)
		adminGroup.POST("/branches", r.catalogHandler.CreateBranch, adminOnly)
		adminGroup.PATCH("/branches/:id", r.catalogHandler.UpdateBranch, adminOnly)

		adminGroup.GET("/dashboard", r.reportHandler.Dashboard)
		adminGroup.GET("/analytics/revenue", r.reportHandler.Revenue)
		adminGroup.GET("/staff/performance", r.reportHandler.StaffPerformance)
	}

	// Catalog management (admin)
	api.POST("/services", r.catalogHandler.CreateService, authed, adminOnly)
	api.PATCH("/services/:id", r.catalogHandler.UpdateService, authed, adminOnly)
	api.DELETE("/services/:id", r.catalogHandler.DeleteService, authed, adminOnly)
}
