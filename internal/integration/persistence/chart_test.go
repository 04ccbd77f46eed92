package persistence_test

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
	"github.com/chart-of-accounts/backend/internal/domain/entity"
	domainerror "github.com/chart-of-accounts/backend/internal/domain/error"
)

func codes(accounts []adapter.Account) []string {
	result := make([]string, len(accounts))
	for i, a := range accounts {
		result[i] = a.Code()
	}
	return result
}

func TestChartAddAndGetAccount(t *testing.T) {
	ctx := context.Background()
	charts, _ := newCharts(t)
	chart := addChart(t, charts)

	created, err := chart.Add(ctx, "601", "Purchases")
	require.NoError(t, err)
	assert.Equal(t, "601", created.Code())

	contains, err := chart.Contains(ctx, "601")
	require.NoError(t, err)
	assert.True(t, contains)

	account, err := chart.Get(ctx, "601")
	require.NoError(t, err)
	assert.Equal(t, "601", account.Code())
	assert.Equal(t, "Purchases", account.Name())
	assert.False(t, account.IsReconciliationAllowed())
	assert.False(t, account.IsDeprecated())
}

func TestChartAddAccountWithFlags(t *testing.T) {
	ctx := context.Background()
	charts, _ := newCharts(t)
	chart := addChart(t, charts)

	created, err := chart.AddAccount(ctx, entity.Account{
		ChartID:               99,
		Code:                  "521",
		Name:                  "Banques",
		ReconciliationAllowed: true,
		Deprecated:            true,
	})
	require.NoError(t, err)
	assert.True(t, created.IsReconciliationAllowed())

	stored, err := chart.Get(ctx, "521")
	require.NoError(t, err)
	assert.True(t, stored.IsReconciliationAllowed())
	assert.True(t, stored.IsDeprecated())

	_, err = chart.AddAccount(ctx, entity.Account{Code: "521", Name: "Other"})
	assert.ErrorIs(t, err, domainerror.ErrAccountCodeExists)
}

func TestChartAddDuplicateCode(t *testing.T) {
	ctx := context.Background()
	charts, _ := newCharts(t)
	chart := addChart(t, charts)

	_, err := chart.Add(ctx, "601", "Purchases")
	require.NoError(t, err)

	_, err = chart.Add(ctx, "601", "Other")
	require.ErrorIs(t, err, domainerror.ErrAccountCodeExists)

	size, err := chart.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), size)

	account, err := chart.Get(ctx, "601")
	require.NoError(t, err)
	assert.Equal(t, "Purchases", account.Name())
}

func TestChartCodesAreScopedPerChart(t *testing.T) {
	ctx := context.Background()
	charts, _ := newCharts(t)
	first := addChart(t, charts)
	second := addChart(t, charts)

	_, err := first.Add(ctx, "601", "Purchases")
	require.NoError(t, err)
	_, err = second.Add(ctx, "601", "Achats")
	require.NoError(t, err)

	contains, err := second.Contains(ctx, "602")
	require.NoError(t, err)
	assert.False(t, contains)
}

func TestChartAddValidation(t *testing.T) {
	ctx := context.Background()
	charts, _ := newCharts(t)
	chart := addChart(t, charts)

	_, err := chart.Add(ctx, "", "Purchases")
	assert.ErrorIs(t, err, domainerror.ErrInvalidAccountCode)

	_, err = chart.Add(ctx, "601", " ")
	assert.ErrorIs(t, err, domainerror.ErrInvalidAccountName)
}

func TestChartAddToRemovedChart(t *testing.T) {
	ctx := context.Background()
	charts, _ := newCharts(t)
	chart := addChart(t, charts)
	require.NoError(t, charts.Remove(ctx, chart.ID()))

	_, err := chart.Add(ctx, "601", "Purchases")
	assert.ErrorIs(t, err, domainerror.ErrChartNotFound)
}

func TestChartGetNotFound(t *testing.T) {
	charts, _ := newCharts(t)
	chart := addChart(t, charts)

	_, err := chart.Get(context.Background(), "999")
	assert.ErrorIs(t, err, domainerror.ErrAccountNotFound)
}

func TestChartRemoveAccount(t *testing.T) {
	ctx := context.Background()
	charts, _ := newCharts(t)
	chart := addChart(t, charts)

	_, err := chart.Add(ctx, "601", "Purchases")
	require.NoError(t, err)
	_, err = chart.Add(ctx, "602", "Other purchases")
	require.NoError(t, err)

	require.NoError(t, chart.Remove(ctx, "601"))

	size, err := chart.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), size)

	err = chart.Remove(ctx, "601")
	assert.ErrorIs(t, err, domainerror.ErrAccountNotFound)
}

func TestChartIteratePartitionsAccounts(t *testing.T) {
	ctx := context.Background()
	charts, _ := newCharts(t)
	chart := addChart(t, charts)

	var expected []string
	for i := 0; i < 23; i++ {
		code := fmt.Sprintf("%d", 600+((i*7)%23))
		_, err := chart.Add(ctx, code, "Account "+code)
		require.NoError(t, err)
		expected = append(expected, code)
	}
	sort.Strings(expected)

	var seen []string
	for start := 0; ; start += 5 {
		page, err := chart.Iterate(ctx, start, 5, "")
		require.NoError(t, err)
		assert.LessOrEqual(t, len(page), 5)
		if len(page) == 0 {
			break
		}
		seen = append(seen, codes(page)...)
	}

	assert.Equal(t, expected, seen)

	size, err := chart.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(seen)), size)
}

func TestChartIterateBounds(t *testing.T) {
	ctx := context.Background()
	charts, _ := newCharts(t)
	chart := addChart(t, charts)
	for _, code := range []string{"601", "602", "603"} {
		_, err := chart.Add(ctx, code, "Purchases "+code)
		require.NoError(t, err)
	}

	page, err := chart.Iterate(ctx, 3, 10, "")
	require.NoError(t, err)
	assert.Empty(t, page)

	page, err = chart.Iterate(ctx, 0, 0, "")
	require.NoError(t, err)
	assert.Empty(t, page)

	page, err = chart.Iterate(ctx, 1, 10, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"602", "603"}, codes(page))

	_, err = chart.Iterate(ctx, -1, 10, "")
	assert.ErrorIs(t, err, domainerror.ErrInvalidPagination)
	_, err = chart.Iterate(ctx, 0, -1, "")
	assert.ErrorIs(t, err, domainerror.ErrInvalidPagination)
}

func TestChartIterateFilter(t *testing.T) {
	ctx := context.Background()
	charts, _ := newCharts(t)
	chart := addChart(t, charts)

	accounts := map[string]string{
		"401":  "Fournisseurs",
		"411":  "Clients",
		"521":  "Banques locales",
		"5211": "Banque 100%",
		"601":  "Achats de marchandises",
		"701":  "Ventes de marchandises",
		"441":  "État, impôts",
	}
	for code, name := range accounts {
		_, err := chart.Add(ctx, code, name)
		require.NoError(t, err)
	}

	tests := []struct {
		filter   string
		expected []string
	}{
		{"marchandises", []string{"601", "701"}},
		{"MARCHANDISES", []string{"601", "701"}},
		{"41", []string{"411", "441"}},
		{"état", []string{"441"}},
		{"ÉTAT", []string{"441"}},
		{"État", []string{"441"}},
		{"IMPÔTS", []string{"441"}},
		{"banque", []string{"521", "5211"}},
		{"%", []string{"5211"}},
		{"_", []string{}},
		{"nothing", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			page, err := chart.Iterate(ctx, 0, 100, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, codes(page))

			count, err := chart.Count(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.expected)), count)
		})
	}
}

func TestChartScenario(t *testing.T) {
	ctx := context.Background()
	charts, _ := newCharts(t)

	chart, err := charts.Add(ctx, entity.ChartTypeSYSCOHADA, "2018", uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), chart.ID())
	assert.Equal(t, entity.ChartStateActive, chart.State())

	purchases, err := chart.Add(ctx, "601", "Purchases")
	require.NoError(t, err)
	size, err := chart.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), size)

	_, err = chart.Add(ctx, "601", "Other")
	require.ErrorIs(t, err, domainerror.ErrAccountCodeExists)
	size, err = chart.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), size)

	require.NoError(t, purchases.ChangeCode(ctx, "602"))
	_, err = chart.Get(ctx, "601")
	assert.ErrorIs(t, err, domainerror.ErrAccountNotFound)
	recoded, err := chart.Get(ctx, "602")
	require.NoError(t, err)

	_, err = recoded.Clone(ctx, "603", "Purchases Copy")
	require.NoError(t, err)
	size, err = chart.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), size)
}
