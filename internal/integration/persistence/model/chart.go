// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/chart-of-accounts/backend/internal/domain/entity"
)

// ChartModel represents the accounting_chart table in the database.
type ChartModel struct {
	ID        int64          `gorm:"primaryKey;autoIncrement"`
	Type      string         `gorm:"type:varchar(25);not null"`
	State     string         `gorm:"type:varchar(10);not null"`
	Version   string         `gorm:"type:varchar(10);not null"`
	EntityID  *uuid.UUID     `gorm:"type:uuid;index"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	Accounts  []AccountModel `gorm:"foreignKey:ChartID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the ChartModel.
func (ChartModel) TableName() string {
	return "accounting_chart"
}

// ToEntity converts a ChartModel to a domain Chart entity.
func (m *ChartModel) ToEntity() *entity.Chart {
	entityID := uuid.Nil
	if m.EntityID != nil {
		entityID = *m.EntityID
	}

	return &entity.Chart{
		ID:        m.ID,
		Type:      entity.ChartType(m.Type),
		Version:   m.Version,
		State:     entity.ChartState(m.State),
		EntityID:  entityID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ChartFromEntity creates a ChartModel from a domain Chart entity.
func ChartFromEntity(chart *entity.Chart) *ChartModel {
	var entityID *uuid.UUID
	if chart.EntityID != uuid.Nil {
		id := chart.EntityID
		entityID = &id
	}

	return &ChartModel{
		ID:        chart.ID,
		Type:      string(chart.Type),
		State:     string(chart.State),
		Version:   chart.Version,
		EntityID:  entityID,
		CreatedAt: chart.CreatedAt,
		UpdatedAt: chart.UpdatedAt,
	}
}
