package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
	domainerror "github.com/chart-of-accounts/backend/internal/domain/error"
)

func chartWithAccounts(t *testing.T, accounts ...[2]string) adapter.Chart {
	t.Helper()
	charts, _ := newCharts(t)
	chart := addChart(t, charts)
	for _, a := range accounts {
		_, err := chart.Add(context.Background(), a[0], a[1])
		require.NoError(t, err)
	}
	return chart
}

func TestAccountChangeCode(t *testing.T) {
	ctx := context.Background()
	chart := chartWithAccounts(t, [2]string{"601", "Purchases"})

	account, err := chart.Get(ctx, "601")
	require.NoError(t, err)

	require.NoError(t, account.ChangeCode(ctx, "602"))
	assert.Equal(t, "602", account.Code())

	_, err = chart.Get(ctx, "601")
	assert.ErrorIs(t, err, domainerror.ErrAccountNotFound)

	recoded, err := chart.Get(ctx, "602")
	require.NoError(t, err)
	assert.Equal(t, "Purchases", recoded.Name())

	// same code is a no-op
	require.NoError(t, account.ChangeCode(ctx, "602"))
}

func TestAccountChangeCodeConflict(t *testing.T) {
	ctx := context.Background()
	chart := chartWithAccounts(t, [2]string{"601", "Purchases"}, [2]string{"602", "Other purchases"})

	account, err := chart.Get(ctx, "601")
	require.NoError(t, err)

	err = account.ChangeCode(ctx, "602")
	require.ErrorIs(t, err, domainerror.ErrAccountCodeExists)
	assert.Equal(t, "601", account.Code())

	unchanged, err := chart.Get(ctx, "601")
	require.NoError(t, err)
	assert.Equal(t, "Purchases", unchanged.Name())

	err = account.ChangeCode(ctx, " 603")
	assert.ErrorIs(t, err, domainerror.ErrInvalidAccountCode)
}

func TestAccountUpdate(t *testing.T) {
	ctx := context.Background()
	chart := chartWithAccounts(t, [2]string{"601", "Purchases"}, [2]string{"701", "Sales"})

	account, err := chart.Get(ctx, "601")
	require.NoError(t, err)

	require.NoError(t, account.Update(ctx, "6011", "Purchases of goods"))
	assert.Equal(t, "6011", account.Code())
	assert.Equal(t, "Purchases of goods", account.Name())

	reloaded, err := chart.Get(ctx, "6011")
	require.NoError(t, err)
	assert.Equal(t, "Purchases of goods", reloaded.Name())

	err = account.Update(ctx, "701", "Clash")
	require.ErrorIs(t, err, domainerror.ErrAccountCodeExists)

	sales, err := chart.Get(ctx, "701")
	require.NoError(t, err)
	assert.Equal(t, "Sales", sales.Name())

	err = account.Update(ctx, "6012", "")
	assert.ErrorIs(t, err, domainerror.ErrInvalidAccountName)
	assert.Equal(t, "6011", account.Code())
}

func TestAccountRename(t *testing.T) {
	ctx := context.Background()
	chart := chartWithAccounts(t, [2]string{"601", "Purchases"})

	account, err := chart.Get(ctx, "601")
	require.NoError(t, err)

	require.NoError(t, account.Rename(ctx, "Achats"))
	require.NoError(t, account.Rename(ctx, "Achats"))

	reloaded, err := chart.Get(ctx, "601")
	require.NoError(t, err)
	assert.Equal(t, "Achats", reloaded.Name())
	assert.Equal(t, "601", reloaded.Code())
}

func TestAccountFlags(t *testing.T) {
	ctx := context.Background()
	chart := chartWithAccounts(t, [2]string{"521", "Banques"})

	account, err := chart.Get(ctx, "521")
	require.NoError(t, err)

	require.NoError(t, account.AllowReconciliation(ctx, true))
	require.NoError(t, account.AllowReconciliation(ctx, true))
	require.NoError(t, account.Depreciate(ctx, true))
	assert.True(t, account.IsReconciliationAllowed())
	assert.True(t, account.IsDeprecated())

	reloaded, err := chart.Get(ctx, "521")
	require.NoError(t, err)
	assert.True(t, reloaded.IsReconciliationAllowed())
	assert.True(t, reloaded.IsDeprecated())

	require.NoError(t, account.Depreciate(ctx, false))
	reloaded, err = chart.Get(ctx, "521")
	require.NoError(t, err)
	assert.False(t, reloaded.IsDeprecated())
	assert.True(t, reloaded.IsReconciliationAllowed())
}

func TestAccountMutateRemoved(t *testing.T) {
	ctx := context.Background()
	chart := chartWithAccounts(t, [2]string{"601", "Purchases"})

	account, err := chart.Get(ctx, "601")
	require.NoError(t, err)
	require.NoError(t, chart.Remove(ctx, "601"))

	assert.ErrorIs(t, account.Rename(ctx, "Achats"), domainerror.ErrAccountNotFound)
	assert.ErrorIs(t, account.Depreciate(ctx, true), domainerror.ErrAccountNotFound)
	assert.ErrorIs(t, account.ChangeCode(ctx, "602"), domainerror.ErrAccountNotFound)
	assert.False(t, account.IsDeprecated())

	_, err = account.Clone(ctx, "603", "Copy")
	assert.ErrorIs(t, err, domainerror.ErrAccountNotFound)
}

func TestAccountClone(t *testing.T) {
	ctx := context.Background()
	chart := chartWithAccounts(t, [2]string{"521", "Banques"})

	source, err := chart.Get(ctx, "521")
	require.NoError(t, err)
	require.NoError(t, source.AllowReconciliation(ctx, true))

	clone, err := source.Clone(ctx, "5211", "Banques locales")
	require.NoError(t, err)
	assert.Equal(t, "5211", clone.Code())
	assert.Equal(t, "Banques locales", clone.Name())
	assert.True(t, clone.IsReconciliationAllowed())
	assert.False(t, clone.IsDeprecated())

	stored, err := chart.Get(ctx, "5211")
	require.NoError(t, err)
	assert.True(t, stored.IsReconciliationAllowed())

	original, err := chart.Get(ctx, "521")
	require.NoError(t, err)
	assert.Equal(t, "Banques", original.Name())

	size, err := chart.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), size)
}

func TestAccountCloneConflict(t *testing.T) {
	ctx := context.Background()
	chart := chartWithAccounts(t, [2]string{"601", "Purchases"}, [2]string{"602", "Other purchases"})

	source, err := chart.Get(ctx, "601")
	require.NoError(t, err)

	_, err = source.Clone(ctx, "602", "Copy")
	require.ErrorIs(t, err, domainerror.ErrAccountCodeExists)

	_, err = source.Clone(ctx, "601", "Copy")
	require.ErrorIs(t, err, domainerror.ErrAccountCodeExists)

	size, err := chart.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), size)
}

func TestAccountApply(t *testing.T) {
	ctx := context.Background()
	chart := chartWithAccounts(t, [2]string{"601", "Purchases"}, [2]string{"701", "Sales"})

	account, err := chart.Get(ctx, "601")
	require.NoError(t, err)

	code, name, enable := "602", "Achats", true
	require.NoError(t, account.Apply(ctx, adapter.AccountChanges{
		Code:                  &code,
		Name:                  &name,
		Deprecated:            &enable,
		ReconciliationAllowed: &enable,
	}))
	assert.Equal(t, "602", account.Code())
	assert.Equal(t, "Achats", account.Name())
	assert.True(t, account.IsDeprecated())
	assert.True(t, account.IsReconciliationAllowed())

	stored, err := chart.Get(ctx, "602")
	require.NoError(t, err)
	assert.Equal(t, "Achats", stored.Name())
	assert.True(t, stored.IsDeprecated())
	assert.True(t, stored.IsReconciliationAllowed())

	require.NoError(t, account.Apply(ctx, adapter.AccountChanges{}))

	// a conflicting code rejects the flags too
	clash, disable := "701", false
	err = account.Apply(ctx, adapter.AccountChanges{Code: &clash, Deprecated: &disable})
	require.ErrorIs(t, err, domainerror.ErrAccountCodeExists)
	assert.True(t, account.IsDeprecated())

	stored, err = chart.Get(ctx, "602")
	require.NoError(t, err)
	assert.True(t, stored.IsDeprecated())
}
