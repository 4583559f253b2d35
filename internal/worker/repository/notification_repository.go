package repository

import (
	"context"

	"golang-market-predictor/internal/entity"

	"gorm.io/gorm"
)

// NotificationRepository writes inbox notifications.
type NotificationRepository interface {
	CreateBatch(ctx context.Context, notifications []entity.Notification) error
}

// NewNotificationRepository creates a new GORM-based notification repository.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

type notificationRepository struct {
	db *gorm.DB
}

func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(notifications, 100).Error
}
