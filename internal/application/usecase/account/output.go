// Package account contains account-related use cases.
package account

import (
	"github.com/chart-of-accounts/backend/internal/application/adapter"
)

// AccountOutput represents a single account in use case outputs.
type AccountOutput struct {
	ChartID               int64
	Code                  string
	Name                  string
	ReconciliationAllowed bool
	Deprecated            bool
}

func toAccountOutput(chartID int64, account adapter.Account) *AccountOutput {
	return &AccountOutput{
		ChartID:               chartID,
		Code:                  account.Code(),
		Name:                  account.Name(),
		ReconciliationAllowed: account.IsReconciliationAllowed(),
		Deprecated:            account.IsDeprecated(),
	}
}
