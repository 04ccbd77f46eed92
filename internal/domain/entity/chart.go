// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ChartType represents the accounting standard a chart follows.
type ChartType string

const (
	ChartTypeSYSCOHADA ChartType = "SYSCOHADA"
	ChartTypePCG       ChartType = "PCG"
	ChartTypeIFRS      ChartType = "IFRS"
)

// ChartPolicy is the classification governing a chart's accounts.
// It is the chart type: the accounting standard is the policy.
type ChartPolicy = ChartType

// ChartTypes lists every supported chart type in a stable order.
func ChartTypes() []ChartType {
	return []ChartType{ChartTypeSYSCOHADA, ChartTypePCG, ChartTypeIFRS}
}

// IsValid reports whether t is a supported chart type.
func (t ChartType) IsValid() bool {
	for _, known := range ChartTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// ParseChartType parses a chart type, ignoring case and surrounding spaces.
func ParseChartType(value string) (ChartType, bool) {
	t := ChartType(strings.ToUpper(strings.TrimSpace(value)))
	return t, t.IsValid()
}

// ChartState represents the lifecycle state of a chart.
type ChartState string

const (
	ChartStateActive   ChartState = "ACTIVE"
	ChartStateInactive ChartState = "INACTIVE"
)

// IsValid reports whether s is a known chart state.
func (s ChartState) IsValid() bool {
	return s == ChartStateActive || s == ChartStateInactive
}

// StateFor returns the state reached by activating (enable) or deactivating a chart.
func StateFor(enable bool) ChartState {
	if enable {
		return ChartStateActive
	}
	return ChartStateInactive
}

const (
	// MaxChartVersionLength is the maximum allowed length for chart versions.
	MaxChartVersionLength = 10
)

// Chart is a snapshot of a chart of accounts descriptor.
// Accounts are not held here; they belong to the chart aggregate in the store.
type Chart struct {
	ID        int64
	Type      ChartType
	Version   string
	State     ChartState
	EntityID  uuid.UUID // uuid.Nil when the chart has no owning entity
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Name returns the display name of the chart.
func (c *Chart) Name() string {
	return ChartName(c.Type, c.Version)
}

// Policy returns the chart policy.
func (c *Chart) Policy() ChartPolicy {
	return c.Type
}

// IsActive reports whether the chart is in the ACTIVE state.
func (c *Chart) IsActive() bool {
	return c.State == ChartStateActive
}

// ChartName computes a chart display name from its type and version.
func ChartName(chartType ChartType, version string) string {
	return fmt.Sprintf("Plan comptable %s révisé version %s", chartType, version)
}
