package dto

import (
	"github.com/chart-of-accounts/backend/internal/application/usecase/account"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Code                  string `json:"code" binding:"required"`
	Name                  string `json:"name" binding:"required"`
	ReconciliationAllowed bool   `json:"reconciliation_allowed,omitempty"`
}

// UpdateAccountRequest represents the request body for account updates.
// Omitted fields are left unchanged.
type UpdateAccountRequest struct {
	Code                  *string `json:"code,omitempty"`
	Name                  *string `json:"name,omitempty"`
	Deprecated            *bool   `json:"deprecated,omitempty"`
	ReconciliationAllowed *bool   `json:"reconciliation_allowed,omitempty"`
}

// IsEmpty reports whether the request changes nothing.
func (r UpdateAccountRequest) IsEmpty() bool {
	return r.Code == nil && r.Name == nil && r.Deprecated == nil && r.ReconciliationAllowed == nil
}

// CloneAccountRequest represents the request body for cloning an account.
type CloneAccountRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ChartID               int64  `json:"chart_id"`
	Code                  string `json:"code"`
	Name                  string `json:"name"`
	ReconciliationAllowed bool   `json:"reconciliation_allowed"`
	Deprecated            bool   `json:"deprecated"`
}

// AccountListResponse represents a page of accounts.
type AccountListResponse struct {
	Accounts   []AccountResponse  `json:"accounts"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse describes the page returned and the size of the filtered set.
type PaginationResponse struct {
	Start int   `json:"start"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// ToAccountResponse converts an account use case output to an AccountResponse DTO.
func ToAccountResponse(output *account.AccountOutput) AccountResponse {
	return AccountResponse{
		ChartID:               output.ChartID,
		Code:                  output.Code,
		Name:                  output.Name,
		ReconciliationAllowed: output.ReconciliationAllowed,
		Deprecated:            output.Deprecated,
	}
}

// ToAccountListResponse converts a page of accounts to AccountListResponse.
func ToAccountListResponse(output *account.ListAccountsOutput) AccountListResponse {
	accounts := make([]AccountResponse, len(output.Accounts))
	for i, a := range output.Accounts {
		accounts[i] = ToAccountResponse(a)
	}
	return AccountListResponse{
		Accounts: accounts,
		Pagination: PaginationResponse{
			Start: output.Start,
			Limit: output.Limit,
			Total: output.Total,
		},
	}
}
