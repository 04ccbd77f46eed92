// Package chart contains chart-related use cases.
package chart

import (
	"context"

	"github.com/google/uuid"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
	"github.com/chart-of-accounts/backend/internal/domain/entity"
)

// ChartOutput represents a single chart in use case outputs.
type ChartOutput struct {
	ID           int64
	Name         string
	Type         entity.ChartType
	Version      string
	State        entity.ChartState
	EntityID     uuid.UUID
	AccountCount int64
}

func toChartOutput(ctx context.Context, chart adapter.Chart) (*ChartOutput, error) {
	size, err := chart.Size(ctx)
	if err != nil {
		return nil, err
	}
	return &ChartOutput{
		ID:           chart.ID(),
		Name:         chart.Name(),
		Type:         chart.Type(),
		Version:      chart.Version(),
		State:        chart.State(),
		EntityID:     chart.Entity(),
		AccountCount: size,
	}, nil
}
