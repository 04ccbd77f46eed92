package account

import (
	"context"
	"log/slog"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
)

// CloneAccountInput represents the input for cloning an account.
type CloneAccountInput struct {
	ChartID int64
	Code    string
	NewCode string
	Name    string
}

// CloneAccountOutput represents the output of cloning an account.
type CloneAccountOutput struct {
	Account *AccountOutput
}

// CloneAccountUseCase handles account cloning.
type CloneAccountUseCase struct {
	charts adapter.Charts
}

// NewCloneAccountUseCase creates a new CloneAccountUseCase instance.
func NewCloneAccountUseCase(charts adapter.Charts) *CloneAccountUseCase {
	return &CloneAccountUseCase{
		charts: charts,
	}
}

// Execute creates a copy of the account under a new code and name.
func (uc *CloneAccountUseCase) Execute(ctx context.Context, input CloneAccountInput) (*CloneAccountOutput, error) {
	source, err := find(ctx, uc.charts, input.ChartID, input.Code)
	if err != nil {
		return nil, err
	}

	clone, err := source.Clone(ctx, input.NewCode, input.Name)
	if err != nil {
		return nil, err
	}

	slog.Info("Account cloned", "chart_id", input.ChartID, "source", input.Code, "code", clone.Code())
	return &CloneAccountOutput{Account: toAccountOutput(input.ChartID, clone)}, nil
}
