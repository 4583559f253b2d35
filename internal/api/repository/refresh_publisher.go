package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang-market-predictor/pkg/common"

	"github.com/redis/go-redis/v9"
)

// ForecastRefreshRequest is the message published on the forecast refresh stream.
type ForecastRefreshRequest struct {
	PredictionID uint      `json:"prediction_id"`
	RequestedBy  uint      `json:"requested_by,omitempty"`
	RequestedAt  time.Time `json:"requested_at"`
}

// RefreshPublisher enqueues forecast refresh requests for the worker.
type RefreshPublisher interface {
	Publish(ctx context.Context, req ForecastRefreshRequest) (string, error)
}

// NewRefreshPublisher creates a publisher on the forecast refresh stream.
func NewRefreshPublisher(client *redis.Client, maxLen int64) RefreshPublisher {
	return &refreshPublisher{client: client, maxLen: maxLen}
}

type refreshPublisher struct {
	client *redis.Client
	maxLen int64
}

func (p *refreshPublisher) Publish(ctx context.Context, req ForecastRefreshRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal refresh request: %w", err)
	}
	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: common.RedisStreamForecastRefresh,
		Values: map[string]interface{}{"payload": payload},
		MaxLen: p.maxLen,
		Approx: p.maxLen > 0,
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to publish refresh request: %w", err)
	}
	return id, nil
}
