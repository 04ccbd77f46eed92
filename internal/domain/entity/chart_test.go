package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChartName(t *testing.T) {
	chart := &Chart{Type: ChartTypeSYSCOHADA, Version: "2018"}

	assert.Equal(t, "Plan comptable SYSCOHADA révisé version 2018", chart.Name())
	assert.Equal(t, chart.Name(), ChartName(ChartTypeSYSCOHADA, "2018"))
	assert.Equal(t, ChartTypeSYSCOHADA, chart.Policy())
}

func TestParseChartType(t *testing.T) {
	tests := []struct {
		input    string
		expected ChartType
		ok       bool
	}{
		{"SYSCOHADA", ChartTypeSYSCOHADA, true},
		{" syscohada ", ChartTypeSYSCOHADA, true},
		{"pcg", ChartTypePCG, true},
		{"IFRS", ChartTypeIFRS, true},
		{"GAAP", ChartType("GAAP"), false},
		{"", ChartType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseChartType(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStateFor(t *testing.T) {
	assert.Equal(t, ChartStateActive, StateFor(true))
	assert.Equal(t, ChartStateInactive, StateFor(false))
	assert.True(t, (&Chart{State: ChartStateActive}).IsActive())
	assert.False(t, (&Chart{State: ChartStateInactive}).IsActive())
	assert.False(t, ChartState("ARCHIVED").IsValid())
}

func TestAccountValidation(t *testing.T) {
	assert.True(t, IsValidAccountCode("601"))
	assert.False(t, IsValidAccountCode(""))
	assert.False(t, IsValidAccountCode(" 601"))
	assert.False(t, IsValidAccountCode("123456789012345678901"))

	assert.True(t, IsValidAccountName("Purchases"))
	assert.False(t, IsValidAccountName("   "))

	// limits count characters, not bytes
	assert.True(t, IsValidAccountCode(strings.Repeat("é", MaxAccountCodeLength)))
	assert.False(t, IsValidAccountCode(strings.Repeat("é", MaxAccountCodeLength+1)))
	assert.True(t, IsValidAccountName(strings.Repeat("é", MaxAccountNameLength)))
	assert.False(t, IsValidAccountName(strings.Repeat("é", MaxAccountNameLength+1)))

	account := NewAccount(1, "601", "Purchases")
	assert.False(t, account.ReconciliationAllowed)
	assert.False(t, account.Deprecated)
}
