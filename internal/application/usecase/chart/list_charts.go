package chart

import (
	"context"

	"github.com/google/uuid"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
)

// ListChartsInput represents the input for listing charts.
type ListChartsInput struct {
	EntityID *uuid.UUID // Optional filter by owning entity
}

// ListChartsOutput represents the output of listing charts.
type ListChartsOutput struct {
	Charts []*ChartOutput
	Total  int64
}

// ListChartsUseCase handles listing charts logic.
type ListChartsUseCase struct {
	charts adapter.Charts
}

// NewListChartsUseCase creates a new ListChartsUseCase instance.
func NewListChartsUseCase(charts adapter.Charts) *ListChartsUseCase {
	return &ListChartsUseCase{
		charts: charts,
	}
}

// Execute walks the registry in ID order.
func (uc *ListChartsUseCase) Execute(ctx context.Context, input ListChartsInput) (*ListChartsOutput, error) {
	output := &ListChartsOutput{Charts: []*ChartOutput{}}

	for chart, err := range uc.charts.Iterate(ctx) {
		if err != nil {
			return nil, err
		}
		if input.EntityID != nil && chart.Entity() != *input.EntityID {
			continue
		}
		item, err := toChartOutput(ctx, chart)
		if err != nil {
			return nil, err
		}
		output.Charts = append(output.Charts, item)
	}

	if input.EntityID != nil {
		output.Total = int64(len(output.Charts))
		return output, nil
	}

	total, err := uc.charts.Size(ctx)
	if err != nil {
		return nil, err
	}
	output.Total = total
	return output, nil
}
