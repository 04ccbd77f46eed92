// Package cache implements short-lived caches backed by Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
	"github.com/chart-of-accounts/backend/internal/domain/entity"
)

const chartKeyPrefix = "chart:"

// chartCache implements adapter.ChartCache over Redis.
type chartCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewChartCache creates a chart descriptor cache. Entries expire after ttl.
func NewChartCache(client *redis.Client, ttl time.Duration) adapter.ChartCache {
	return &chartCache{client: client, ttl: ttl}
}

// Get returns the cached chart, or false on a miss.
func (c *chartCache) Get(ctx context.Context, id int64) (*entity.Chart, bool, error) {
	payload, err := c.client.Get(ctx, chartKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading cached chart %d: %w", id, err)
	}

	var chart entity.Chart
	if err := json.Unmarshal(payload, &chart); err != nil {
		return nil, false, fmt.Errorf("decoding cached chart %d: %w", id, err)
	}
	return &chart, true, nil
}

func (c *chartCache) Set(ctx context.Context, chart *entity.Chart) error {
	payload, err := json.Marshal(chart)
	if err != nil {
		return fmt.Errorf("encoding chart %d: %w", chart.ID, err)
	}
	return c.client.Set(ctx, chartKey(chart.ID), payload, c.ttl).Err()
}

func (c *chartCache) Invalidate(ctx context.Context, id int64) error {
	return c.client.Del(ctx, chartKey(id)).Err()
}

func (c *chartCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func chartKey(id int64) string {
	return fmt.Sprintf("%s%d", chartKeyPrefix, id)
}
