// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/chart-of-accounts/backend/internal/integration/entrypoint/controller"
	"github.com/chart-of-accounts/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	chartController   *controller.ChartController
	accountController *controller.AccountController
	writeRateLimiter  *middleware.RateLimiter
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	chartController *controller.ChartController,
	accountController *controller.AccountController,
	writeRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:  healthController,
		chartController:   chartController,
		accountController: accountController,
		writeRateLimiter:  writeRateLimiter,
		authMiddleware:    authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	if environment != "test" {
		r.engine.Use(gin.Logger())
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())
	if r.writeRateLimiter != nil {
		v1.Use(r.writeRateLimiter.Middleware())
	}

	charts := v1.Group("/charts")
	{
		charts.GET("", r.chartController.List)
		charts.POST("", r.chartController.Create)
		charts.GET("/:id", r.chartController.Get)
		charts.DELETE("/:id", r.chartController.Delete)
		charts.PATCH("/:id/state", r.chartController.ChangeState)

		accounts := charts.Group("/:id/accounts")
		{
			accounts.GET("", r.accountController.List)
			accounts.POST("", r.accountController.Create)
			accounts.GET("/:code", r.accountController.Get)
			accounts.PATCH("/:code", r.accountController.Update)
			accounts.DELETE("/:code", r.accountController.Delete)
			accounts.POST("/:code/clone", r.accountController.Clone)
		}
	}
}
