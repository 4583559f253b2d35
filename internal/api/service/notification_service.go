package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang-market-predictor/internal/api/dto"
	"golang-market-predictor/internal/api/repository"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/utils"
)

const maxNotifications = 100

// NotificationService defines the interface for a user's notification inbox.
type NotificationService interface {
	List(ctx context.Context, userID uint) ([]dto.NotificationResponse, error)
	UnreadCount(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, userID, id uint) error
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
}

// NewNotificationService creates a new notification service.
func NewNotificationService(repo repository.NotificationRepository, log *logger.Logger) NotificationService {
	return &notificationService{repo: repo, logger: log, now: utils.TimeNowUTC}
}

type notificationService struct {
	repo   repository.NotificationRepository
	logger *logger.Logger
	now    func() time.Time
}

func (s *notificationService) List(ctx context.Context, userID uint) ([]dto.NotificationResponse, error) {
	notifications, err := s.repo.FindByUserID(ctx, userID, maxNotifications)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list notifications", logger.ErrorField(err), logger.Field("user_id", userID))
		return nil, err
	}

	now := s.now()
	items := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, dto.NotificationResponse{
			ID:           n.ID,
			Title:        n.Title,
			Message:      n.Message,
			Type:         n.Type,
			Read:         n.Read,
			Payload:      json.RawMessage(n.Payload),
			CreatedAt:    n.CreatedAt,
			RelativeTime: utils.RelativeTime(n.CreatedAt, now),
		})
	}
	return items, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, userID, id uint) error {
	if err := s.repo.MarkRead(ctx, userID, id); err != nil {
		return notFoundOr(err, fmt.Sprintf("notification %d", id))
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.logger.InfoContext(ctx, "Notifications marked as read", logger.Field("user_id", userID), logger.Field("count", n))
	return n, nil
}
