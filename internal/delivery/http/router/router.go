// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fleetcheck/internal/delivery/http/middleware"
	"fleetcheck/internal/delivery/http/router/handler"
	"fleetcheck/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	AccountHandler    *handler.AccountHandler
	RiderHandler      *handler.RiderHandler
	InspectionHandler *handler.InspectionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	accountHandler    *handler.AccountHandler
	riderHandler      *handler.RiderHandler
	inspectionHandler *handler.InspectionHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		accountHandler:    params.AccountHandler,
		riderHandler:      params.RiderHandler,
		inspectionHandler: params.InspectionHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Credential workflows; completion endpoints are reachable from mail
	// links and therefore unauthenticated.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/verify/request", r.authHandler.RequestEmailVerification)
		authGroup.GET("/verify", r.authHandler.CompleteEmailVerification)
		authGroup.POST("/password-reset/request", r.authHandler.RequestPasswordReset)
		authGroup.POST("/password-reset/complete", r.authHandler.CompletePasswordReset)
	}

	// Anything below requires a valid session token.
	e.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)

	// Account administration is admin-only.
	accountGroup := e.Group("/accounts")
	accountGroup.Use(r.authMiddleware.Authenticate)
	accountGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		accountGroup.POST("", r.accountHandler.Register)
		accountGroup.GET("", r.accountHandler.List)
	}

	// Rider management is admin-only.
	riderGroup := e.Group("/riders")
	riderGroup.Use(r.authMiddleware.Authenticate)
	riderGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		riderGroup.POST("", r.riderHandler.Create)
		riderGroup.GET("", r.riderHandler.List)
		riderGroup.GET("/:id", r.riderHandler.Get)
		riderGroup.PUT("/:id", r.riderHandler.Update)
		riderGroup.DELETE("/:id", r.riderHandler.Delete)
	}

	// Inspections are open to every authenticated role; the ownership rule
	// for edits is enforced in the use case.
	inspectionGroup := e.Group("/inspections")
	inspectionGroup.Use(r.authMiddleware.Authenticate)
	{
		inspectionGroup.POST("", r.inspectionHandler.Create)
		inspectionGroup.GET("", r.inspectionHandler.List)
		inspectionGroup.GET("/:id", r.inspectionHandler.Get)
		inspectionGroup.PUT("/:id", r.inspectionHandler.Update)
		inspectionGroup.DELETE("/:id", r.inspectionHandler.Delete)
	}
}
