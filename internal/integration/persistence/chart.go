package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
	"github.com/chart-of-accounts/backend/internal/domain/entity"
	domainerror "github.com/chart-of-accounts/backend/internal/domain/error"
	"github.com/chart-of-accounts/backend/internal/integration/persistence/model"
)

// chart implements the adapter.Chart interface over a chart snapshot.
type chart struct {
	db       *gorm.DB
	cache    adapter.ChartCache
	snapshot *entity.Chart
}

func (c *chart) ID() int64                  { return c.snapshot.ID }
func (c *chart) Name() string               { return c.snapshot.Name() }
func (c *chart) Type() entity.ChartType     { return c.snapshot.Type }
func (c *chart) Policy() entity.ChartPolicy { return c.snapshot.Policy() }
func (c *chart) Version() string            { return c.snapshot.Version }
func (c *chart) State() entity.ChartState   { return c.snapshot.State }
func (c *chart) Entity() uuid.UUID          { return c.snapshot.EntityID }

// Iterate returns a page of the chart's accounts ordered by code.
func (c *chart) Iterate(ctx context.Context, start, limit int, filter string) ([]adapter.Account, error) {
	if start < 0 || limit < 0 {
		return nil, domainerror.NewChartError(
			domainerror.ErrCodeInvalidPagination,
			"start and limit must not be negative",
			domainerror.ErrInvalidPagination,
		)
	}
	if limit == 0 {
		return []adapter.Account{}, nil
	}

	var accountModels []model.AccountModel
	result := c.accounts(ctx, filter).
		Order("code ASC").
		Offset(start).
		Limit(limit).
		Find(&accountModels)
	if result.Error != nil {
		return nil, domainerror.NewStorageError("iterating accounts", c.ID(), result.Error)
	}

	accounts := make([]adapter.Account, len(accountModels))
	for i := range accountModels {
		accounts[i] = c.account(accountModels[i].ToEntity())
	}
	return accounts, nil
}

// Size returns the number of accounts in the chart.
func (c *chart) Size(ctx context.Context) (int64, error) {
	return c.Count(ctx, "")
}

// Count returns the number of accounts matching filter.
func (c *chart) Count(ctx context.Context, filter string) (int64, error) {
	var count int64
	if err := c.accounts(ctx, filter).Count(&count).Error; err != nil {
		return 0, domainerror.NewStorageError("counting accounts", c.ID(), err)
	}
	return count, nil
}

// Contains reports whether an account with code exists in the chart.
func (c *chart) Contains(ctx context.Context, code string) (bool, error) {
	exists, err := accountExists(c.db.WithContext(ctx), c.ID(), code)
	if err != nil {
		return false, domainerror.NewStorageError("checking account existence", c.ID(), err)
	}
	return exists, nil
}

// Get retrieves an account by code.
func (c *chart) Get(ctx context.Context, code string) (adapter.Account, error) {
	var accountModel model.AccountModel
	result := c.db.WithContext(ctx).
		Where("chart_id = ? AND code = ?", c.ID(), code).
		First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewAccountNotFoundError(c.ID(), code)
		}
		return nil, domainerror.NewStorageError("getting account", c.ID(), result.Error)
	}
	return c.account(accountModel.ToEntity()), nil
}

// Add creates an account with both flags off.
func (c *chart) Add(ctx context.Context, code, name string) (adapter.Account, error) {
	return c.AddAccount(ctx, *entity.NewAccount(c.ID(), code, name))
}

// AddAccount creates an account carrying the given flags.
func (c *chart) AddAccount(ctx context.Context, account entity.Account) (adapter.Account, error) {
	if err := validateAccount(account.Code, account.Name); err != nil {
		return nil, err
	}

	account.ChartID = c.ID()
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return insertAccount(tx, &account)
	})
	if err != nil {
		return nil, translateAccountWrite("adding account", c.ID(), account.Code, err)
	}
	return c.account(&account), nil
}

// Remove deletes an account.
func (c *chart) Remove(ctx context.Context, code string) error {
	result := c.db.WithContext(ctx).
		Where("chart_id = ? AND code = ?", c.ID(), code).
		Delete(&model.AccountModel{})
	if result.Error != nil {
		return domainerror.NewStorageError("removing account", c.ID(), result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.NewAccountNotFoundError(c.ID(), code)
	}
	return nil
}

// Activate sets the chart state.
func (c *chart) Activate(ctx context.Context, enable bool) error {
	state := entity.StateFor(enable)
	now := time.Now().UTC()
	result := c.db.WithContext(ctx).
		Model(&model.ChartModel{}).
		Where("id = ?", c.ID()).
		Updates(map[string]any{"state": string(state), "updated_at": now})
	if result.Error != nil {
		return domainerror.NewStorageError("activating chart", c.ID(), result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.NewChartNotFoundError(c.ID())
	}

	c.snapshot.State = state
	c.snapshot.UpdatedAt = now
	invalidate(ctx, c.cache, c.ID())
	return nil
}

// accounts scopes a query to the chart's accounts matching filter.
func (c *chart) accounts(ctx context.Context, filter string) *gorm.DB {
	query := c.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("chart_id = ?", c.ID())
	if filter != "" {
		pattern := likePattern(filter)
		query = query.Where(`(LOWER(code) LIKE LOWER(?) ESCAPE '\' OR LOWER(name) LIKE LOWER(?) ESCAPE '\')`, pattern, pattern)
	}
	return query
}

func (c *chart) account(snapshot *entity.Account) adapter.Account {
	return &account{db: c.db, snapshot: *snapshot}
}

// insertAccount creates account inside tx after checking that the chart
// exists and the code is free.
func insertAccount(tx *gorm.DB, account *entity.Account) error {
	var charts int64
	if err := tx.Model(&model.ChartModel{}).Where("id = ?", account.ChartID).Count(&charts).Error; err != nil {
		return err
	}
	if charts == 0 {
		return domainerror.NewChartNotFoundError(account.ChartID)
	}

	exists, err := accountExists(tx, account.ChartID, account.Code)
	if err != nil {
		return err
	}
	if exists {
		return domainerror.NewAccountCodeExistsError(account.ChartID, account.Code)
	}

	accountModel := model.AccountFromEntity(account)
	now := time.Now().UTC()
	accountModel.CreatedAt = now
	accountModel.UpdatedAt = now
	return tx.Create(accountModel).Error
}

func accountExists(db *gorm.DB, chartID int64, code string) (bool, error) {
	var count int64
	result := db.Model(&model.AccountModel{}).
		Where("chart_id = ? AND code = ?", chartID, code).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// translateAccountWrite maps a unique index violation on (chart_id, code) to
// a code conflict.
func translateAccountWrite(op string, chartID int64, code string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerror.NewAccountCodeExistsError(chartID, code)
	}
	return translate(op, chartID, err)
}

func validateAccount(code, name string) error {
	if err := validateCode(code); err != nil {
		return err
	}
	return validateName(name)
}

func validateCode(code string) error {
	if !entity.IsValidAccountCode(code) {
		return domainerror.NewChartError(
			domainerror.ErrCodeInvalidAccountCode,
			"account code must be 1 to 20 characters without surrounding spaces",
			domainerror.ErrInvalidAccountCode,
		)
	}
	return nil
}

func validateName(name string) error {
	if !entity.IsValidAccountName(name) {
		return domainerror.NewChartError(
			domainerror.ErrCodeInvalidAccountName,
			"account name must be between 1 and 100 characters",
			domainerror.ErrInvalidAccountName,
		)
	}
	return nil
}
