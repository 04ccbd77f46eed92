package account

import (
	"context"
	"log/slog"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
	"github.com/chart-of-accounts/backend/internal/domain/entity"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	ChartID               int64
	Code                  string
	Name                  string
	ReconciliationAllowed bool // Optional, accounts are created non-reconcilable
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *AccountOutput
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	charts adapter.Charts
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(charts adapter.Charts) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		charts: charts,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	chart, err := uc.charts.Get(ctx, input.ChartID)
	if err != nil {
		return nil, err
	}

	account, err := chart.AddAccount(ctx, entity.Account{
		Code:                  input.Code,
		Name:                  input.Name,
		ReconciliationAllowed: input.ReconciliationAllowed,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Account created", "chart_id", input.ChartID, "code", account.Code())
	return &CreateAccountOutput{Account: toAccountOutput(input.ChartID, account)}, nil
}
