package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/pkg/common"

	"github.com/redis/go-redis/v9"
)

// SessionRepository stores login sessions in redis.
type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session, ttl time.Duration) error
	Find(ctx context.Context, token string) (*entity.Session, error)
	Delete(ctx context.Context, token string) error
}

// NewSessionRepository creates a new redis-backed session repository.
func NewSessionRepository(client *redis.Client) SessionRepository {
	return &sessionRepository{client: client}
}

type sessionRepository struct {
	client *redis.Client
}

func sessionKey(token string) string {
	return fmt.Sprintf(common.RedisKeySession, token)
}

func (r *sessionRepository) Save(ctx context.Context, session *entity.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return r.client.Set(ctx, sessionKey(session.Token), data, ttl).Err()
}

func (r *sessionRepository) Find(ctx context.Context, token string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		return nil, translateError(err)
	}
	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, sessionKey(token)).Err()
}
