package repository

import (
	"context"
	"fmt"
	"time"

	"golang-market-predictor/pkg/common"

	"github.com/redis/go-redis/v9"
)

// AlertRepository dedupes recommendation alerts across runs.
type AlertRepository interface {
	// MarkSent claims the alert for predictionID/action. It returns false when the
	// alert was already claimed within ttl.
	MarkSent(ctx context.Context, predictionID uint, action string, ttl time.Duration) (bool, error)
}

// NewAlertRepository creates a Redis-backed alert repository.
func NewAlertRepository(client *redis.Client) AlertRepository {
	return &alertRepository{client: client}
}

type alertRepository struct {
	client *redis.Client
}

func (r *alertRepository) MarkSent(ctx context.Context, predictionID uint, action string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf(common.RedisKeyRecommendationAlert, predictionID, action)
	ok, err := r.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim alert %s: %w", key, err)
	}
	return ok, nil
}
