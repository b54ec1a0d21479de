// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lifelog/internal/delivery/http/middleware"
	"lifelog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	LetterHandler  *handler.LetterHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	letterHandler  *handler.LetterHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		letterHandler:  params.LetterHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.POST("/heartbeat", r.userHandler.Heartbeat)
		userGroup.POST("/push-token", r.userHandler.RegisterPushToken)
		userGroup.DELETE("/push-token", r.userHandler.RemovePushToken)
	}

	// Letter routes that require authentication
	letterGroup := e.Group("/letters")
	letterGroup.Use(r.authMiddleware.Authenticate)
	{
		letterGroup.POST("", r.letterHandler.CreateLetter)
		letterGroup.GET("", r.letterHandler.ListLetters)
		letterGroup.GET("/:id", r.letterHandler.GetLetter)
	}
}
