// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chart-of-accounts/backend/internal/application/usecase/chart"
	"github.com/chart-of-accounts/backend/internal/integration/entrypoint/dto"
)

// ChartController handles chart endpoints.
type ChartController struct {
	listUseCase     *chart.ListChartsUseCase
	getUseCase      *chart.GetChartUseCase
	createUseCase   *chart.CreateChartUseCase
	deleteUseCase   *chart.DeleteChartUseCase
	activateUseCase *chart.ActivateChartUseCase
}

// NewChartController creates a new chart controller instance.
func NewChartController(
	listUseCase *chart.ListChartsUseCase,
	getUseCase *chart.GetChartUseCase,
	createUseCase *chart.CreateChartUseCase,
	deleteUseCase *chart.DeleteChartUseCase,
	activateUseCase *chart.ActivateChartUseCase,
) *ChartController {
	return &ChartController{
		listUseCase:     listUseCase,
		getUseCase:      getUseCase,
		createUseCase:   createUseCase,
		deleteUseCase:   deleteUseCase,
		activateUseCase: activateUseCase,
	}
}

// List handles GET /charts requests.
func (c *ChartController) List(ctx *gin.Context) {
	input := chart.ListChartsInput{}

	// Filter by owning entity if provided
	if entityIDStr := ctx.Query("entity_id"); entityIDStr != "" {
		entityID, err := uuid.Parse(entityIDStr)
		if err != nil {
			badRequest(ctx, "Invalid entity ID format", err)
			return
		}
		input.EntityID = &entityID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChartListResponse(output))
}

// Get handles GET /charts/:id requests.
func (c *ChartController) Get(ctx *gin.Context) {
	chartID, ok := chartIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), chart.GetChartInput{ChartID: chartID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChartResponse(output.Chart))
}

// Create handles POST /charts requests.
func (c *ChartController) Create(ctx *gin.Context) {
	var req dto.CreateChartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	input := chart.CreateChartInput{
		Type:    req.Type,
		Version: req.Version,
		Seed:    req.Seed,
	}
	if req.EntityID != nil {
		input.EntityID = *req.EntityID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToChartResponse(output.Chart))
}

// Delete handles DELETE /charts/:id requests.
func (c *ChartController) Delete(ctx *gin.Context) {
	chartID, ok := chartIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), chart.DeleteChartInput{ChartID: chartID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ChangeState handles PATCH /charts/:id/state requests.
func (c *ChartController) ChangeState(ctx *gin.Context) {
	chartID, ok := chartIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ChangeChartStateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	output, err := c.activateUseCase.Execute(ctx.Request.Context(), chart.ActivateChartInput{
		ChartID: chartID,
		Active:  *req.Active,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChartResponse(output.Chart))
}
