package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chart-of-accounts/backend/internal/integration/entrypoint/dto"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker func(ctx context.Context) error

// HealthController handles health check endpoints.
type HealthController struct {
	database HealthChecker
	cache    HealthChecker
}

// NewHealthController creates a new health controller instance. cache is nil
// when no cache is configured.
func NewHealthController(database, cache HealthChecker) *HealthController {
	return &HealthController{
		database: database,
		cache:    cache,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	response := dto.HealthResponse{
		Status:    "ok",
		Database:  probe(ctx, h.database),
		Cache:     "disabled",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if h.cache != nil {
		response.Cache = probe(ctx, h.cache)
	}

	status := http.StatusOK
	if response.Database != "connected" {
		response.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, response)
}

func probe(ctx context.Context, check HealthChecker) string {
	if check == nil || check(ctx) != nil {
		return "disconnected"
	}
	return "connected"
}
