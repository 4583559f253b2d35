package service

import (
	"context"
	"time"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/internal/worker/repository"

	"github.com/stretchr/testify/mock"
)

type MockJobExecutionRepository struct{ mock.Mock }

func (m *MockJobExecutionRepository) Create(ctx context.Context, execution *entity.JobExecution) error {
	return m.Called(ctx, execution).Error(0)
}

func (m *MockJobExecutionRepository) Update(ctx context.Context, execution *entity.JobExecution) error {
	return m.Called(ctx, execution).Error(0)
}

type MockStrategy struct {
	mock.Mock
	jobType entity.JobType
}

func (m *MockStrategy) Execute(ctx context.Context, job *entity.Job) (string, error) {
	args := m.Called(ctx, job)
	return args.String(0), args.Error(1)
}

func (m *MockStrategy) GetType() entity.JobType { return m.jobType }

type MockExecutorService struct{ mock.Mock }

func (m *MockExecutorService) Run(ctx context.Context, job entity.Job, trigger string) (*entity.JobExecution, error) {
	args := m.Called(ctx, job, trigger)
	if v := args.Get(0); v != nil {
		return v.(*entity.JobExecution), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExecutorService) Skip(ctx context.Context, job entity.Job, trigger, reason string) (*entity.JobExecution, error) {
	args := m.Called(ctx, job, trigger, reason)
	if v := args.Get(0); v != nil {
		return v.(*entity.JobExecution), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExecutorService) Supports(jobType entity.JobType) bool {
	return m.Called(jobType).Bool(0)
}

type MockRefreshStream struct{ mock.Mock }

func (m *MockRefreshStream) Read(ctx context.Context, count int64, block time.Duration) ([]repository.RefreshMessage, error) {
	args := m.Called(ctx, count, block)
	if v := args.Get(0); v != nil {
		return v.([]repository.RefreshMessage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRefreshStream) Ack(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
