package chart

import (
	"context"
	"log/slog"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
)

// DeleteChartInput represents the input for chart deletion.
type DeleteChartInput struct {
	ChartID int64
}

// DeleteChartUseCase handles chart deletion logic.
type DeleteChartUseCase struct {
	charts adapter.Charts
}

// NewDeleteChartUseCase creates a new DeleteChartUseCase instance.
func NewDeleteChartUseCase(charts adapter.Charts) *DeleteChartUseCase {
	return &DeleteChartUseCase{
		charts: charts,
	}
}

// Execute removes the chart together with its accounts.
func (uc *DeleteChartUseCase) Execute(ctx context.Context, input DeleteChartInput) error {
	if err := uc.charts.Remove(ctx, input.ChartID); err != nil {
		return err
	}

	slog.Info("Chart deleted", "chart_id", input.ChartID)
	return nil
}
