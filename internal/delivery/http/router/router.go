// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kunstcollectie/internal/delivery/http/middleware"
	"kunstcollectie/internal/delivery/http/router/handler"
	"kunstcollectie/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	ArtworkHandler     *handler.ArtworkHandler
	ArtworkTypeHandler *handler.ArtworkTypeHandler
	AuthMiddleware     *middleware.AuthMiddleware
	LoggerMiddleware   *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	artworkHandler     *handler.ArtworkHandler
	artworkTypeHandler *handler.ArtworkTypeHandler
	authMiddleware     *middleware.AuthMiddleware
	loggerMiddleware   *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		artworkHandler:     params.ArtworkHandler,
		artworkTypeHandler: params.ArtworkTypeHandler,
		authMiddleware:     params.AuthMiddleware,
		loggerMiddleware:   params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public identity routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/password-reset/request", r.userHandler.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", r.userHandler.ResetPassword)
	}

	// Routes that require authentication
	userGroup := api.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetProfile)
	}

	artworkGroup := api.Group("/artworks")
	artworkGroup.Use(r.authMiddleware.Authenticate)
	{
		artworkGroup.POST("", r.artworkHandler.CreateArtwork)
		artworkGroup.GET("", r.artworkHandler.ListArtworks)
		artworkGroup.GET("/:id", r.artworkHandler.GetArtwork)
		artworkGroup.PUT("/:id", r.artworkHandler.UpdateArtwork)
		artworkGroup.DELETE("/:id", r.artworkHandler.DeleteArtwork)
		artworkGroup.GET("/:id/qr", r.artworkHandler.GetArtworkQR)
	}

	typeGroup := api.Group("/artwork-types")
	typeGroup.Use(r.authMiddleware.Authenticate)
	{
		typeGroup.POST("", r.artworkTypeHandler.CreateArtworkType)
		typeGroup.GET("", r.artworkTypeHandler.ListArtworkTypes)
		typeGroup.PUT("/:id", r.artworkTypeHandler.UpdateArtworkType)
		typeGroup.DELETE("/:id", r.artworkTypeHandler.DeleteArtworkType)
	}

	// Routes that require authentication and the "admin" role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/users", r.userHandler.ListUsers)
		adminGroup.PUT("/users/:id/role", r.userHandler.UpdateUserRole)
	}
}
