package account

import (
	"context"
	"log/slog"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	ChartID int64
	Code    string
}

// DeleteAccountUseCase handles account deletion.
type DeleteAccountUseCase struct {
	charts adapter.Charts
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(charts adapter.Charts) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		charts: charts,
	}
}

// Execute removes the account from its chart.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	chart, err := uc.charts.Get(ctx, input.ChartID)
	if err != nil {
		return err
	}

	if err := chart.Remove(ctx, input.Code); err != nil {
		return err
	}

	slog.Info("Account deleted", "chart_id", input.ChartID, "code", input.Code)
	return nil
}
