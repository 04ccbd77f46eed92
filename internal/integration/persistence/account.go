package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
	"github.com/chart-of-accounts/backend/internal/domain/entity"
	domainerror "github.com/chart-of-accounts/backend/internal/domain/error"
	"github.com/chart-of-accounts/backend/internal/integration/persistence/model"
)

// account implements the adapter.Account interface over an account snapshot.
type account struct {
	db       *gorm.DB
	snapshot entity.Account
}

func (a *account) Code() string                  { return a.snapshot.Code }
func (a *account) Name() string                  { return a.snapshot.Name }
func (a *account) IsReconciliationAllowed() bool { return a.snapshot.ReconciliationAllowed }
func (a *account) IsDeprecated() bool            { return a.snapshot.Deprecated }

// Update changes the account code and name.
func (a *account) Update(ctx context.Context, code, name string) error {
	return a.apply(ctx, "updating account", adapter.AccountChanges{Code: &code, Name: &name})
}

// ChangeCode re-codes the account.
func (a *account) ChangeCode(ctx context.Context, code string) error {
	return a.apply(ctx, "changing account code", adapter.AccountChanges{Code: &code})
}

// Rename changes the account name.
func (a *account) Rename(ctx context.Context, name string) error {
	return a.apply(ctx, "renaming account", adapter.AccountChanges{Name: &name})
}

// Depreciate sets or clears the deprecated flag.
func (a *account) Depreciate(ctx context.Context, enable bool) error {
	return a.apply(ctx, "depreciating account", adapter.AccountChanges{Deprecated: &enable})
}

// AllowReconciliation sets or clears the reconciliation flag.
func (a *account) AllowReconciliation(ctx context.Context, enable bool) error {
	return a.apply(ctx, "allowing reconciliation", adapter.AccountChanges{ReconciliationAllowed: &enable})
}

// Apply writes all selected changes at once.
func (a *account) Apply(ctx context.Context, changes adapter.AccountChanges) error {
	return a.apply(ctx, "updating account", changes)
}

// Clone creates a new account of the same chart with this account's flags.
// The flags are read from the store, not from the snapshot.
func (a *account) Clone(ctx context.Context, code, name string) (adapter.Account, error) {
	if err := validateAccount(code, name); err != nil {
		return nil, err
	}

	var clone *entity.Account
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		source, err := a.load(tx)
		if err != nil {
			return err
		}
		clone = entity.NewAccount(a.snapshot.ChartID, code, name)
		clone.ReconciliationAllowed = source.ReconciliationAllowed
		clone.Deprecated = source.Deprecated
		return insertAccount(tx, clone)
	})
	if err != nil {
		return nil, translateAccountWrite("cloning account", a.snapshot.ChartID, code, err)
	}
	return &account{db: a.db, snapshot: *clone}, nil
}

// apply validates changes, then writes them in one transaction after
// checking that a new code is not used by another account of the chart.
// The snapshot is updated only once the transaction commits.
func (a *account) apply(ctx context.Context, op string, changes adapter.AccountChanges) error {
	if changes.Code != nil {
		if err := validateCode(*changes.Code); err != nil {
			return err
		}
	}
	if changes.Name != nil {
		if err := validateName(*changes.Name); err != nil {
			return err
		}
	}
	if changes.IsEmpty() {
		return nil
	}

	code := a.snapshot.Code
	columns := make(map[string]any, 5)
	if changes.Code != nil {
		code = *changes.Code
		columns["code"] = code
	}
	if changes.Name != nil {
		columns["name"] = *changes.Name
	}
	if changes.Deprecated != nil {
		columns["deprecated"] = *changes.Deprecated
	}
	if changes.ReconciliationAllowed != nil {
		columns["reconciliation_allowed"] = *changes.ReconciliationAllowed
	}

	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if code != a.snapshot.Code {
			exists, err := accountExists(tx, a.snapshot.ChartID, code)
			if err != nil {
				return err
			}
			if exists {
				return domainerror.NewAccountCodeExistsError(a.snapshot.ChartID, code)
			}
		}
		return a.update(tx, columns)
	})
	if err != nil {
		return translateAccountWrite(op, a.snapshot.ChartID, code, err)
	}

	a.snapshot.Code = code
	if changes.Name != nil {
		a.snapshot.Name = *changes.Name
	}
	if changes.Deprecated != nil {
		a.snapshot.Deprecated = *changes.Deprecated
	}
	if changes.ReconciliationAllowed != nil {
		a.snapshot.ReconciliationAllowed = *changes.ReconciliationAllowed
	}
	return nil
}

// update writes columns to the row addressed by the snapshot's current code.
func (a *account) update(db *gorm.DB, columns map[string]any) error {
	columns["updated_at"] = time.Now().UTC()
	result := db.Model(&model.AccountModel{}).
		Where("chart_id = ? AND code = ?", a.snapshot.ChartID, a.snapshot.Code).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewAccountNotFoundError(a.snapshot.ChartID, a.snapshot.Code)
	}
	return nil
}

func (a *account) load(tx *gorm.DB) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := tx.Where("chart_id = ? AND code = ?", a.snapshot.ChartID, a.snapshot.Code).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewAccountNotFoundError(a.snapshot.ChartID, a.snapshot.Code)
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}
