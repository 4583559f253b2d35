package repository

import (
	"context"

	"golang-market-predictor/internal/entity"

	"gorm.io/gorm"
)

// JobExecutionRepository records worker job runs.
type JobExecutionRepository interface {
	Create(ctx context.Context, execution *entity.JobExecution) error
	Update(ctx context.Context, execution *entity.JobExecution) error
}

// NewJobExecutionRepository creates a new GORM-based job execution repository.
func NewJobExecutionRepository(db *gorm.DB) JobExecutionRepository {
	return &jobExecutionRepository{db: db}
}

type jobExecutionRepository struct {
	db *gorm.DB
}

func (r *jobExecutionRepository) Create(ctx context.Context, execution *entity.JobExecution) error {
	return r.db.WithContext(ctx).Create(execution).Error
}

func (r *jobExecutionRepository) Update(ctx context.Context, execution *entity.JobExecution) error {
	return r.db.WithContext(ctx).Save(execution).Error
}
