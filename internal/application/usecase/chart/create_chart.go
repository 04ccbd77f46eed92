package chart

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
	"github.com/chart-of-accounts/backend/internal/domain/entity"
	domainerror "github.com/chart-of-accounts/backend/internal/domain/error"
)

// CreateChartInput represents the input for chart creation.
type CreateChartInput struct {
	Type     string
	Version  string
	EntityID uuid.UUID // Optional, uuid.Nil for an unowned chart
	Seed     bool      // Populate the chart with the default accounts of its type
}

// CreateChartOutput represents the output of chart creation.
type CreateChartOutput struct {
	Chart *ChartOutput
}

// CreateChartUseCase handles chart creation logic.
type CreateChartUseCase struct {
	charts adapter.Charts
}

// NewCreateChartUseCase creates a new CreateChartUseCase instance.
func NewCreateChartUseCase(charts adapter.Charts) *CreateChartUseCase {
	return &CreateChartUseCase{
		charts: charts,
	}
}

// Execute performs the chart creation.
func (uc *CreateChartUseCase) Execute(ctx context.Context, input CreateChartInput) (*CreateChartOutput, error) {
	chartType, ok := entity.ParseChartType(input.Type)
	if !ok {
		return nil, domainerror.NewChartError(
			domainerror.ErrCodeInvalidChartType,
			fmt.Sprintf("unknown chart type %q", input.Type),
			domainerror.ErrInvalidChartType,
		)
	}

	chart, err := uc.charts.Add(ctx, chartType, input.Version, input.EntityID)
	if err != nil {
		return nil, err
	}

	if input.Seed {
		if err := seed(ctx, chart); err != nil {
			if removeErr := uc.charts.Remove(ctx, chart.ID()); removeErr != nil {
				slog.Error("Failed to remove partially seeded chart", "chart_id", chart.ID(), "error", removeErr)
			}
			return nil, fmt.Errorf("failed to seed chart: %w", err)
		}
	}

	output, err := toChartOutput(ctx, chart)
	if err != nil {
		return nil, err
	}

	slog.Info("Chart created",
		"chart_id", output.ID,
		"type", output.Type,
		"version", output.Version,
		"accounts", output.AccountCount,
	)

	return &CreateChartOutput{Chart: output}, nil
}

func seed(ctx context.Context, chart adapter.Chart) error {
	for _, defaults := range entity.DefaultAccounts(chart.Type()) {
		_, err := chart.AddAccount(ctx, entity.Account{
			Code:                  defaults.Code,
			Name:                  defaults.Name,
			ReconciliationAllowed: defaults.ReconciliationAllowed,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
