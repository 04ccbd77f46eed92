package chart

import (
	"context"
	"log/slog"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
)

// ActivateChartInput represents the input for changing a chart state.
type ActivateChartInput struct {
	ChartID int64
	Active  bool
}

// ActivateChartOutput represents the output of changing a chart state.
type ActivateChartOutput struct {
	Chart *ChartOutput
}

// ActivateChartUseCase handles chart activation and deactivation.
type ActivateChartUseCase struct {
	charts adapter.Charts
}

// NewActivateChartUseCase creates a new ActivateChartUseCase instance.
func NewActivateChartUseCase(charts adapter.Charts) *ActivateChartUseCase {
	return &ActivateChartUseCase{
		charts: charts,
	}
}

// Execute sets the chart state. Setting the current state again is a no-op.
func (uc *ActivateChartUseCase) Execute(ctx context.Context, input ActivateChartInput) (*ActivateChartOutput, error) {
	chart, err := uc.charts.Get(ctx, input.ChartID)
	if err != nil {
		return nil, err
	}

	if err := chart.Activate(ctx, input.Active); err != nil {
		return nil, err
	}

	output, err := toChartOutput(ctx, chart)
	if err != nil {
		return nil, err
	}

	slog.Info("Chart state changed", "chart_id", output.ID, "state", output.State)
	return &ActivateChartOutput{Chart: output}, nil
}
