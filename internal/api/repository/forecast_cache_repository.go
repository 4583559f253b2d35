package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang-market-predictor/pkg/common"

	"github.com/redis/go-redis/v9"
)

// ForecastCacheRepository caches generated forecasts in redis.
type ForecastCacheRepository interface {
	// Get decodes the cached value into dst and reports whether it was found.
	Get(ctx context.Context, predictionID uint, variant string, dst interface{}) (bool, error)
	Set(ctx context.Context, predictionID uint, variant string, value interface{}, ttl time.Duration) error
}

// NewForecastCacheRepository creates a new redis-backed forecast cache.
func NewForecastCacheRepository(client *redis.Client) ForecastCacheRepository {
	return &forecastCacheRepository{client: client}
}

type forecastCacheRepository struct {
	client *redis.Client
}

func (r *forecastCacheRepository) Get(ctx context.Context, predictionID uint, variant string, dst interface{}) (bool, error) {
	data, err := r.client.Get(ctx, fmt.Sprintf(common.RedisKeyForecast, predictionID, variant)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached forecast: %w", err)
	}
	return true, nil
}

func (r *forecastCacheRepository) Set(ctx context.Context, predictionID uint, variant string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal forecast: %w", err)
	}
	return r.client.Set(ctx, fmt.Sprintf(common.RedisKeyForecast, predictionID, variant), data, ttl).Err()
}
