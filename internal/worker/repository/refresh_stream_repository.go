package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang-market-predictor/pkg/common"

	"github.com/redis/go-redis/v9"
)

// ForecastRefreshRequest is the message the API publishes on the forecast refresh stream.
type ForecastRefreshRequest struct {
	PredictionID uint      `json:"prediction_id"`
	RequestedBy  uint      `json:"requested_by,omitempty"`
	RequestedAt  time.Time `json:"requested_at"`
}

// RefreshMessage is one stream entry. Err is set when the payload could not be decoded.
type RefreshMessage struct {
	ID      string
	Request ForecastRefreshRequest
	Err     error
}

// RefreshStreamRepository reads forecast refresh requests from the consumer group.
type RefreshStreamRepository interface {
	Read(ctx context.Context, count int64, block time.Duration) ([]RefreshMessage, error)
	Ack(ctx context.Context, id string) error
}

// NewRefreshStreamRepository creates a repository on the forecast refresh stream.
func NewRefreshStreamRepository(client *redis.Client) RefreshStreamRepository {
	return &refreshStreamRepository{client: client}
}

type refreshStreamRepository struct {
	client *redis.Client
}

func (r *refreshStreamRepository) Read(ctx context.Context, count int64, block time.Duration) ([]RefreshMessage, error) {
	streams, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    common.RedisStreamGroup,
		Consumer: common.RedisStreamConsumer,
		Streams:  []string{common.RedisStreamForecastRefresh, ">"},
		Count:    count,
		Block:    block,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var messages []RefreshMessage
	for _, stream := range streams {
		for _, msg := range stream.Messages {
			messages = append(messages, decodeRefreshMessage(msg))
		}
	}
	return messages, nil
}

// Ack acknowledges the entry and removes it from the stream.
func (r *refreshStreamRepository) Ack(ctx context.Context, id string) error {
	pipe := r.client.TxPipeline()
	pipe.XAck(ctx, common.RedisStreamForecastRefresh, common.RedisStreamGroup, id)
	pipe.XDel(ctx, common.RedisStreamForecastRefresh, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to ack message %s: %w", id, err)
	}
	return nil
}

func decodeRefreshMessage(msg redis.XMessage) RefreshMessage {
	out := RefreshMessage{ID: msg.ID}
	raw, ok := msg.Values["payload"].(string)
	if !ok {
		out.Err = fmt.Errorf("field 'payload' not found or not a string")
		return out
	}
	if err := json.Unmarshal([]byte(raw), &out.Request); err != nil {
		out.Err = fmt.Errorf("failed to unmarshal refresh request: %w", err)
		return out
	}
	if out.Request.PredictionID == 0 {
		out.Err = fmt.Errorf("refresh request has no prediction id")
	}
	return out
}
