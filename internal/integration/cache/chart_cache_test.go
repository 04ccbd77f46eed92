package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chart-of-accounts/backend/internal/domain/entity"
	"github.com/chart-of-accounts/backend/internal/integration/cache"
	"github.com/chart-of-accounts/backend/test/integration/mock"
)

func TestChartCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	redis := mock.NewRedis()
	t.Cleanup(redis.Close)
	charts := cache.NewChartCache(redis.Client, time.Minute)

	_, ok, err := charts.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	owner := uuid.New()
	chart := &entity.Chart{
		ID:       1,
		Type:     entity.ChartTypePCG,
		Version:  "2014",
		State:    entity.ChartStateActive,
		EntityID: owner,
	}
	require.NoError(t, charts.Set(ctx, chart))
	assert.True(t, redis.Server.Exists("chart:1"))

	cached, ok, err := charts.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entity.ChartTypePCG, cached.Type)
	assert.Equal(t, "2014", cached.Version)
	assert.Equal(t, owner, cached.EntityID)

	require.NoError(t, charts.Invalidate(ctx, 1))
	_, ok, err = charts.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChartCacheExpires(t *testing.T) {
	ctx := context.Background()
	redis := mock.NewRedis()
	t.Cleanup(redis.Close)
	charts := cache.NewChartCache(redis.Client, time.Minute)

	require.NoError(t, charts.Set(ctx, &entity.Chart{ID: 7, Type: entity.ChartTypeIFRS, Version: "2023"}))
	redis.Server.FastForward(2 * time.Minute)

	_, ok, err := charts.Get(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChartCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	redis := mock.NewRedis()
	t.Cleanup(redis.Close)
	charts := cache.NewChartCache(redis.Client, time.Minute)

	require.NoError(t, redis.Server.Set("chart:3", "not json"))
	_, ok, err := charts.Get(ctx, 3)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestChartCachePing(t *testing.T) {
	redis := mock.NewRedis()
	charts := cache.NewChartCache(redis.Client, time.Minute)
	require.NoError(t, charts.Ping(context.Background()))

	redis.Close()
	assert.Error(t, charts.Ping(context.Background()))
}
