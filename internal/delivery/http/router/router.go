// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"aula/internal/delivery/http/middleware"
	"aula/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CourseHandler  *handler.CourseHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	courseHandler  *handler.CourseHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		courseHandler:  params.CourseHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/registro", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Course catalog: reads are public, mutations require a valid token.
	courseGroup := api.Group("/cursos")
	{
		courseGroup.GET("", r.courseHandler.List)
		courseGroup.GET("/:id", r.courseHandler.GetByID)
		courseGroup.POST("", r.courseHandler.Create, r.authMiddleware.Authenticate)
		courseGroup.PUT("/:id", r.courseHandler.Update, r.authMiddleware.Authenticate)
		courseGroup.DELETE("/:id", r.courseHandler.Delete, r.authMiddleware.Authenticate)
	}
}
