package account

import (
	"context"
	"log/slog"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
)

// UpdateAccountInput represents the input for account updates.
// Nil fields are left unchanged.
type UpdateAccountInput struct {
	ChartID               int64
	Code                  string
	NewCode               *string
	Name                  *string
	Deprecated            *bool
	ReconciliationAllowed *bool
}

// UpdateAccountOutput represents the output of an account update.
type UpdateAccountOutput struct {
	Account *AccountOutput
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	charts adapter.Charts
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(charts adapter.Charts) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		charts: charts,
	}
}

// Execute applies the requested changes together; on failure none of them
// is persisted.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := find(ctx, uc.charts, input.ChartID, input.Code)
	if err != nil {
		return nil, err
	}

	err = account.Apply(ctx, adapter.AccountChanges{
		Code:                  input.NewCode,
		Name:                  input.Name,
		Deprecated:            input.Deprecated,
		ReconciliationAllowed: input.ReconciliationAllowed,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Account updated", "chart_id", input.ChartID, "code", input.Code, "new_code", account.Code())
	return &UpdateAccountOutput{Account: toAccountOutput(input.ChartID, account)}, nil
}
