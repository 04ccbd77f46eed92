package dto

import (
	"github.com/google/uuid"

	"github.com/chart-of-accounts/backend/internal/application/usecase/chart"
)

// CreateChartRequest represents the request body for chart creation.
type CreateChartRequest struct {
	Type     string     `json:"type" binding:"required"`
	Version  string     `json:"version" binding:"required,max=10"`
	EntityID *uuid.UUID `json:"entity_id,omitempty"`
	Seed     bool       `json:"seed,omitempty"`
}

// ChangeChartStateRequest represents the request body for chart activation.
type ChangeChartStateRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// ChartResponse represents a single chart in API responses.
type ChartResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Version      string  `json:"version"`
	State        string  `json:"state"`
	EntityID     *string `json:"entity_id"`
	AccountCount int64   `json:"account_count"`
}

// ChartListResponse represents the response for listing charts.
type ChartListResponse struct {
	Charts []ChartResponse `json:"charts"`
	Total  int64           `json:"total"`
}

// ToChartResponse converts a chart use case output to a ChartResponse DTO.
func ToChartResponse(output *chart.ChartOutput) ChartResponse {
	response := ChartResponse{
		ID:           output.ID,
		Name:         output.Name,
		Type:         string(output.Type),
		Version:      output.Version,
		State:        string(output.State),
		AccountCount: output.AccountCount,
	}
	if output.EntityID != uuid.Nil {
		entityID := output.EntityID.String()
		response.EntityID = &entityID
	}
	return response
}

// ToChartListResponse converts a list of charts to ChartListResponse.
func ToChartListResponse(output *chart.ListChartsOutput) ChartListResponse {
	charts := make([]ChartResponse, len(output.Charts))
	for i, c := range output.Charts {
		charts[i] = ToChartResponse(c)
	}
	return ChartListResponse{
		Charts: charts,
		Total:  output.Total,
	}
}
