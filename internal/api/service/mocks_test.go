package service

import (
	"context"
	"time"

	"golang-market-predictor/internal/api/repository"
	"golang-market-predictor/internal/entity"

	"github.com/stretchr/testify/mock"
)

type MockPredictionRepository struct{ mock.Mock }

func (m *MockPredictionRepository) FindAll(ctx context.Context, assetType string) ([]entity.Prediction, error) {
	args := m.Called(ctx, assetType)
	if v := args.Get(0); v != nil {
		return v.([]entity.Prediction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPredictionRepository) FindByID(ctx context.Context, id uint) (*entity.Prediction, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Prediction), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockForecastCache struct{ mock.Mock }

func (m *MockForecastCache) Get(ctx context.Context, predictionID uint, variant string, dst interface{}) (bool, error) {
	args := m.Called(ctx, predictionID, variant, dst)
	return args.Bool(0), args.Error(1)
}

func (m *MockForecastCache) Set(ctx context.Context, predictionID uint, variant string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, predictionID, variant, value, ttl)
	return args.Error(0)
}

type MockRefreshPublisher struct{ mock.Mock }

func (m *MockRefreshPublisher) Publish(ctx context.Context, req repository.ForecastRefreshRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

type MockNewsRepository struct{ mock.Mock }

func (m *MockNewsRepository) FindAll(ctx context.Context, filter repository.NewsFilter) ([]entity.NewsArticle, int64, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]entity.NewsArticle), args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *MockNewsRepository) FindByID(ctx context.Context, id uint) (*entity.NewsArticle, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.NewsArticle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNewsRepository) FindCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPortfolioRepository struct{ mock.Mock }

func (m *MockPortfolioRepository) FindByUserID(ctx context.Context, userID uint) ([]entity.Portfolio, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]entity.Portfolio), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPortfolioRepository) FindByID(ctx context.Context, id uint) (*entity.Portfolio, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Portfolio), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPortfolioRepository) FindAsset(ctx context.Context, portfolioID, assetID uint) (*entity.PortfolioAsset, error) {
	args := m.Called(ctx, portfolioID, assetID)
	if v := args.Get(0); v != nil {
		return v.(*entity.PortfolioAsset), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPortfolioRepository) CreateAsset(ctx context.Context, asset *entity.PortfolioAsset) error {
	return m.Called(ctx, asset).Error(0)
}

func (m *MockPortfolioRepository) DeleteAsset(ctx context.Context, portfolioID, assetID uint) error {
	return m.Called(ctx, portfolioID, assetID).Error(0)
}

func (m *MockPortfolioRepository) FindSnapshots(ctx context.Context, portfolioID uint, since time.Time) ([]entity.PortfolioSnapshot, error) {
	args := m.Called(ctx, portfolioID, since)
	if v := args.Get(0); v != nil {
		return v.([]entity.PortfolioSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Save(ctx context.Context, session *entity.Session, ttl time.Duration) error {
	return m.Called(ctx, session, ttl).Error(0)
}

func (m *MockSessionRepository) Find(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if v := args.Get(0); v != nil {
		return v.(*entity.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) FindByUserID(ctx context.Context, userID uint, limit int) ([]entity.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if v := args.Get(0); v != nil {
		return v.([]entity.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, userID, id uint) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockJobExecutionRepository struct{ mock.Mock }

func (m *MockJobExecutionRepository) FindAll(ctx context.Context, jobName string, limit int) ([]entity.JobExecution, error) {
	args := m.Called(ctx, jobName, limit)
	if v := args.Get(0); v != nil {
		return v.([]entity.JobExecution), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJobExecutionRepository) FindByID(ctx context.Context, id uint) (*entity.JobExecution, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.JobExecution), args.Error(1)
	}
	return nil, args.Error(1)
}
