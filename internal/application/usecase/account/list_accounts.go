package account

import (
	"context"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
)

// ListAccountsInput represents the input for listing a page of accounts.
type ListAccountsInput struct {
	ChartID int64
	Start   int
	Limit   int
	Filter  string // Optional case-insensitive substring of code or name
}

// ListAccountsOutput represents a page of accounts.
type ListAccountsOutput struct {
	Accounts []*AccountOutput
	Total    int64 // Number of accounts matching the filter
	Start    int
	Limit    int
}

// ListAccountsUseCase handles account listing logic.
type ListAccountsUseCase struct {
	charts adapter.Charts
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(charts adapter.Charts) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		charts: charts,
	}
}

// Execute returns the requested page ordered by code.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	chart, err := uc.charts.Get(ctx, input.ChartID)
	if err != nil {
		return nil, err
	}

	accounts, err := chart.Iterate(ctx, input.Start, input.Limit, input.Filter)
	if err != nil {
		return nil, err
	}

	total, err := chart.Count(ctx, input.Filter)
	if err != nil {
		return nil, err
	}

	output := &ListAccountsOutput{
		Accounts: make([]*AccountOutput, len(accounts)),
		Total:    total,
		Start:    input.Start,
		Limit:    input.Limit,
	}
	for i, account := range accounts {
		output.Accounts[i] = toAccountOutput(chart.ID(), account)
	}
	return output, nil
}
