package repository

import (
	"context"

	"golang-market-predictor/internal/entity"

	"gorm.io/gorm"
)

// JobExecutionRepository defines the interface for reading worker job history.
type JobExecutionRepository interface {
	FindAll(ctx context.Context, jobName string, limit int) ([]entity.JobExecution, error)
	FindByID(ctx context.Context, id uint) (*entity.JobExecution, error)
}

// NewJobExecutionRepository creates a new GORM-based job execution repository.
func NewJobExecutionRepository(db *gorm.DB) JobExecutionRepository {
	return &jobExecutionRepository{db: db}
}

type jobExecutionRepository struct {
	db *gorm.DB
}

func (r *jobExecutionRepository) FindAll(ctx context.Context, jobName string, limit int) ([]entity.JobExecution, error) {
	var executions []entity.JobExecution
	q := r.db.WithContext(ctx).Order("started_at desc")
	if jobName != "" {
		q = q.Where("job_name = ?", jobName)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&executions).Error; err != nil {
		return nil, err
	}
	return executions, nil
}

func (r *jobExecutionRepository) FindByID(ctx context.Context, id uint) (*entity.JobExecution, error) {
	var execution entity.JobExecution
	if err := r.db.WithContext(ctx).First(&execution, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &execution, nil
}
