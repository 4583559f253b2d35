package repository

import (
	"context"

	"golang-market-predictor/internal/entity"

	"gorm.io/gorm"
)

// UserRepository defines the worker's user lookups.
type UserRepository interface {
	FindNotifiable(ctx context.Context) ([]entity.User, error)
}

// NewUserRepository creates a new GORM-based user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

type userRepository struct {
	db *gorm.DB
}

// FindNotifiable returns users that have notifications enabled.
func (r *userRepository) FindNotifiable(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Where("notifications_enabled = ?", true).Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
