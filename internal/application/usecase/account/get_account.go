package account

import (
	"context"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
)

// GetAccountInput represents the input for fetching an account.
type GetAccountInput struct {
	ChartID int64
	Code    string
}

// GetAccountOutput represents the output of fetching an account.
type GetAccountOutput struct {
	Account *AccountOutput
}

// GetAccountUseCase handles account lookup.
type GetAccountUseCase struct {
	charts adapter.Charts
}

// NewGetAccountUseCase creates a new GetAccountUseCase instance.
func NewGetAccountUseCase(charts adapter.Charts) *GetAccountUseCase {
	return &GetAccountUseCase{
		charts: charts,
	}
}

// Execute performs the account lookup.
func (uc *GetAccountUseCase) Execute(ctx context.Context, input GetAccountInput) (*GetAccountOutput, error) {
	account, err := find(ctx, uc.charts, input.ChartID, input.Code)
	if err != nil {
		return nil, err
	}
	return &GetAccountOutput{Account: toAccountOutput(input.ChartID, account)}, nil
}

// find resolves an account through its chart.
func find(ctx context.Context, charts adapter.Charts, chartID int64, code string) (adapter.Account, error) {
	chart, err := charts.Get(ctx, chartID)
	if err != nil {
		return nil, err
	}
	return chart.Get(ctx, code)
}
