// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"academy/internal/delivery/http/middleware"
	"academy/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CourseHandler   *handler.CourseHandler
	CheckoutHandler *handler.CheckoutHandler
	WebhookHandler  *handler.WebhookHandler
	ProgressHandler *handler.ProgressHandler
	EducatorHandler *handler.EducatorHandler
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
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public catalog
	api.GET("/courses", r.params.CourseHandler.ListCourses)
	api.GET("/courses/:id", r.params.CourseHandler.GetCourse)

	// Provider notifications authenticate via signature, not session token
	api.POST("/stripe/webhook", r.params.WebhookHandler.HandleStripeWebhook)

	// Student routes that require authentication
	userGroup := api.Group("/user")
	userGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.params.UserHandler.Me)
		userGroup.GET("/enrollments", r.params.UserHandler.Enrollments)
		userGroup.POST("/checkout", r.params.CheckoutHandler.Checkout)
		userGroup.POST("/progress", r.params.ProgressHandler.RecordCompletion)
		userGroup.GET("/progress/:courseId", r.params.ProgressHandler.GetProgress)
		userGroup.POST("/ratings", r.params.CourseHandler.RateCourse)
	}

	// Educator routes that require authentication and the educator role
	educatorGroup := api.Group("/educator")
	educatorGroup.Use(r.params.AuthMiddleware.Authenticate)
	educatorGroup.Use(r.params.AuthMiddleware.RequireEducator)
	{
		educatorGroup.POST("/courses", r.params.EducatorHandler.CreateCourse)
		educatorGroup.GET("/courses", r.params.EducatorHandler.MyCourses)
		educatorGroup.GET("/dashboard", r.params.EducatorHandler.Dashboard)
		educatorGroup.GET("/courses/:id/qr", r.params.EducatorHandler.CourseQR)
	}
}
