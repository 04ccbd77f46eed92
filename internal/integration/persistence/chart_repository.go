// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"iter"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
	"github.com/chart-of-accounts/backend/internal/domain/entity"
	domainerror "github.com/chart-of-accounts/backend/internal/domain/error"
	"github.com/chart-of-accounts/backend/internal/integration/persistence/model"
)

// defaultBatchSize is the number of charts fetched per round trip while iterating.
const defaultBatchSize = 100

// likeEscaper escapes LIKE wildcards so filters match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// chartRepository implements the adapter.Charts interface.
type chartRepository struct {
	db        *gorm.DB
	cache     adapter.ChartCache
	batchSize int
}

// NewChartRepository creates a new chart registry backed by db. cache may be
// nil, in which case every lookup reads the database.
func NewChartRepository(db *gorm.DB, cache adapter.ChartCache) adapter.Charts {
	return &chartRepository{
		db:        db,
		cache:     cache,
		batchSize: defaultBatchSize,
	}
}

// Iterate yields all charts ordered by ID, fetching them in batches.
func (r *chartRepository) Iterate(ctx context.Context) iter.Seq2[adapter.Chart, error] {
	return func(yield func(adapter.Chart, error) bool) {
		var lastID int64
		for {
			var chartModels []model.ChartModel
			result := r.db.WithContext(ctx).
				Where("id > ?", lastID).
				Order("id ASC").
				Limit(r.batchSize).
				Find(&chartModels)
			if result.Error != nil {
				yield(nil, domainerror.NewStorageError("iterating charts", 0, result.Error))
				return
			}

			for i := range chartModels {
				if !yield(r.chart(chartModels[i].ToEntity()), nil) {
					return
				}
			}

			if len(chartModels) < r.batchSize {
				return
			}
			lastID = chartModels[len(chartModels)-1].ID
		}
	}
}

// Size returns the total number of charts.
func (r *chartRepository) Size(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ChartModel{}).Count(&count)
	if result.Error != nil {
		return 0, domainerror.NewStorageError("counting charts", 0, result.Error)
	}
	return count, nil
}

// Get retrieves a chart by its ID.
func (r *chartRepository) Get(ctx context.Context, id int64) (adapter.Chart, error) {
	if cached, ok := r.cached(ctx, id); ok {
		return r.chart(cached), nil
	}

	var chartModel model.ChartModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&chartModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewChartNotFoundError(id)
		}
		return nil, domainerror.NewStorageError("getting chart", id, result.Error)
	}

	chart := chartModel.ToEntity()
	if r.cache != nil {
		if err := r.cache.Set(ctx, chart); err != nil {
			slog.Warn("Failed to cache chart", "chart_id", id, "error", err)
		}
	}
	return r.chart(chart), nil
}

// Add creates a new ACTIVE chart.
func (r *chartRepository) Add(ctx context.Context, chartType entity.ChartType, version string, entityID uuid.UUID) (adapter.Chart, error) {
	if !chartType.IsValid() {
		return nil, domainerror.NewChartError(
			domainerror.ErrCodeInvalidChartType,
			"chart type must be one of SYSCOHADA, PCG, IFRS",
			domainerror.ErrInvalidChartType,
		)
	}
	if strings.TrimSpace(version) == "" || utf8.RuneCountInString(version) > entity.MaxChartVersionLength {
		return nil, domainerror.NewChartError(
			domainerror.ErrCodeInvalidChartVersion,
			"chart version must be between 1 and 10 characters",
			domainerror.ErrInvalidChartVersion,
		)
	}

	now := time.Now().UTC()
	chartModel := model.ChartFromEntity(&entity.Chart{
		Type:      chartType,
		Version:   version,
		State:     entity.ChartStateActive,
		EntityID:  entityID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	result := r.db.WithContext(ctx).Create(chartModel)
	if result.Error != nil {
		return nil, domainerror.NewStorageError("adding a new chart", 0, result.Error)
	}
	return r.chart(chartModel.ToEntity()), nil
}

// Remove deletes a chart and its accounts in one transaction.
func (r *chartRepository) Remove(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chart_id = ?", id).Delete(&model.AccountModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.ChartModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.NewChartNotFoundError(id)
		}
		return nil
	})
	if err != nil {
		return translate("removing chart", id, err)
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *chartRepository) chart(snapshot *entity.Chart) adapter.Chart {
	return &chart{
		db:       r.db,
		cache:    r.cache,
		snapshot: snapshot,
	}
}

func (r *chartRepository) cached(ctx context.Context, id int64) (*entity.Chart, bool) {
	if r.cache == nil {
		return nil, false
	}
	chart, ok, err := r.cache.Get(ctx, id)
	if err != nil {
		slog.Warn("Chart cache lookup failed", "chart_id", id, "error", err)
		return nil, false
	}
	return chart, ok
}

func (r *chartRepository) invalidate(ctx context.Context, id int64) {
	invalidate(ctx, r.cache, id)
}

func invalidate(ctx context.Context, cache adapter.ChartCache, id int64) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, id); err != nil {
		slog.Warn("Failed to invalidate cached chart", "chart_id", id, "error", err)
	}
}

// translate keeps domain errors as they are and wraps anything else as a
// storage failure.
func translate(op string, chartID int64, err error) error {
	var chartErr *domainerror.ChartError
	if errors.As(err, &chartErr) {
		return err
	}
	return domainerror.NewStorageError(op, chartID, err)
}

// likePattern builds a substring pattern for filter. Callers fold case in
// SQL on both sides of LIKE.
func likePattern(filter string) string {
	return "%" + likeEscaper.Replace(filter) + "%"
}
