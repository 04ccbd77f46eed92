package chart

import (
	"context"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
)

// GetChartInput represents the input for fetching a chart.
type GetChartInput struct {
	ChartID int64
}

// GetChartOutput represents the output of fetching a chart.
type GetChartOutput struct {
	Chart *ChartOutput
}

// GetChartUseCase handles chart lookup.
type GetChartUseCase struct {
	charts adapter.Charts
}

// NewGetChartUseCase creates a new GetChartUseCase instance.
func NewGetChartUseCase(charts adapter.Charts) *GetChartUseCase {
	return &GetChartUseCase{
		charts: charts,
	}
}

// Execute performs the chart lookup.
func (uc *GetChartUseCase) Execute(ctx context.Context, input GetChartInput) (*GetChartOutput, error) {
	chart, err := uc.charts.Get(ctx, input.ChartID)
	if err != nil {
		return nil, err
	}

	output, err := toChartOutput(ctx, chart)
	if err != nil {
		return nil, err
	}
	return &GetChartOutput{Chart: output}, nil
}
