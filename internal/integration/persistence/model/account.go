package model

import (
	"time"

	"github.com/chart-of-accounts/backend/internal/domain/entity"
)

// AccountModel represents the accounting_account table in the database.
type AccountModel struct {
	ID                    int64     `gorm:"primaryKey;autoIncrement"`
	ChartID               int64     `gorm:"not null;uniqueIndex:idx_account_chart_code,priority:1"`
	Code                  string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_account_chart_code,priority:2"`
	Name                  string    `gorm:"type:varchar(100);not null"`
	ReconciliationAllowed bool      `gorm:"not null;default:false"`
	Deprecated            bool      `gorm:"not null;default:false"`
	CreatedAt             time.Time `gorm:"not null"`
	UpdatedAt             time.Time `gorm:"not null"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounting_account"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ChartID:               m.ChartID,
		Code:                  m.Code,
		Name:                  m.Name,
		ReconciliationAllowed: m.ReconciliationAllowed,
		Deprecated:            m.Deprecated,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ChartID:               account.ChartID,
		Code:                  account.Code,
		Name:                  account.Name,
		ReconciliationAllowed: account.ReconciliationAllowed,
		Deprecated:            account.Deprecated,
	}
}

// Models returns every model the chart of accounts schema is built from,
// parents first.
func Models() []any {
	return []any{&ChartModel{}, &AccountModel{}}
}
