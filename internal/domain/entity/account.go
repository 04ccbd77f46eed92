package entity

import (
	"strings"
	"unicode/utf8"
)

const (
	// MaxAccountCodeLength is the maximum allowed length for account codes.
	MaxAccountCodeLength = 20
	// MaxAccountNameLength is the maximum allowed length for account names.
	MaxAccountNameLength = 100
)

// Account is a general-ledger account within a chart.
// It is identified by its code, unique within the owning chart.
type Account struct {
	ChartID               int64
	Code                  string
	Name                  string
	ReconciliationAllowed bool
	Deprecated            bool
}

// NewAccount creates an account with both flags off.
func NewAccount(chartID int64, code, name string) *Account {
	return &Account{
		ChartID: chartID,
		Code:    code,
		Name:    name,
	}
}

// IsValidAccountCode reports whether code can identify an account. Lengths
// count characters, as the varchar columns do.
func IsValidAccountCode(code string) bool {
	return code != "" &&
		utf8.RuneCountInString(code) <= MaxAccountCodeLength &&
		strings.TrimSpace(code) == code
}

// IsValidAccountName reports whether name can label an account.
func IsValidAccountName(name string) bool {
	return strings.TrimSpace(name) != "" && utf8.RuneCountInString(name) <= MaxAccountNameLength
}
