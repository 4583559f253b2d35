package http

import (
	"context"

	"golang-market-predictor/internal/api/dto"
	"golang-market-predictor/internal/entity"

	"github.com/stretchr/testify/mock"
)

type MockPredictionService struct{ mock.Mock }

func (m *MockPredictionService) List(ctx context.Context, q dto.PredictionListQuery) ([]dto.PredictionResponse, error) {
	args := m.Called(ctx, q)
	if v := args.Get(0); v != nil {
		return v.([]dto.PredictionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPredictionService) Get(ctx context.Context, id uint) (*dto.PredictionDetailResponse, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*dto.PredictionDetailResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPredictionService) Forecast(ctx context.Context, id uint, q dto.ForecastQuery) (*dto.ForecastResponse, error) {
	args := m.Called(ctx, id, q)
	if v := args.Get(0); v != nil {
		return v.(*dto.ForecastResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPredictionService) RequestRefresh(ctx context.Context, id uint, userID uint) (*dto.RefreshResponse, error) {
	args := m.Called(ctx, id, userID)
	if v := args.Get(0); v != nil {
		return v.(*dto.RefreshResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockNewsService struct{ mock.Mock }

func (m *MockNewsService) List(ctx context.Context, q dto.NewsListQuery) (*dto.NewsListResponse, error) {
	args := m.Called(ctx, q)
	if v := args.Get(0); v != nil {
		return v.(*dto.NewsListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNewsService) Get(ctx context.Context, id uint) (*dto.NewsResponse, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*dto.NewsResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNewsService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPortfolioService struct{ mock.Mock }

func (m *MockPortfolioService) List(ctx context.Context, userID uint) ([]dto.PortfolioListItem, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]dto.PortfolioListItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPortfolioService) Get(ctx context.Context, userID, portfolioID uint) (*dto.PortfolioResponse, error) {
	args := m.Called(ctx, userID, portfolioID)
	if v := args.Get(0); v != nil {
		return v.(*dto.PortfolioResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPortfolioService) Summary(ctx context.Context, userID, portfolioID uint) (*dto.PortfolioSummary, error) {
	args := m.Called(ctx, userID, portfolioID)
	if v := args.Get(0); v != nil {
		return v.(*dto.PortfolioSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPortfolioService) Analysis(ctx context.Context, userID, portfolioID uint) (*dto.PortfolioAnalysis, error) {
	args := m.Called(ctx, userID, portfolioID)
	if v := args.Get(0); v != nil {
		return v.(*dto.PortfolioAnalysis), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPortfolioService) GetAsset(ctx context.Context, userID, portfolioID, assetID uint) (*dto.AssetResponse, error) {
	args := m.Called(ctx, userID, portfolioID, assetID)
	if v := args.Get(0); v != nil {
		return v.(*dto.AssetResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPortfolioService) AddAsset(ctx context.Context, userID, portfolioID uint, req *dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	args := m.Called(ctx, userID, portfolioID, req)
	if v := args.Get(0); v != nil {
		return v.(*dto.AssetResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPortfolioService) RemoveAsset(ctx context.Context, userID, portfolioID, assetID uint) error {
	return m.Called(ctx, userID, portfolioID, assetID).Error(0)
}

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*dto.LoginResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if v := args.Get(0); v != nil {
		return v.(*entity.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*dto.UserResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) UpdateMe(ctx context.Context, userID uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID, req)
	if v := args.Get(0); v != nil {
		return v.(*dto.UserResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockNotificationService struct{ mock.Mock }

func (m *MockNotificationService) List(ctx context.Context, userID uint) ([]dto.NotificationResponse, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]dto.NotificationResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, userID, id uint) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockExecutionService struct{ mock.Mock }

func (m *MockExecutionService) List(ctx context.Context, q dto.ExecutionQuery) ([]dto.JobExecutionResponse, error) {
	args := m.Called(ctx, q)
	if v := args.Get(0); v != nil {
		return v.([]dto.JobExecutionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExecutionService) Get(ctx context.Context, id uint) (*dto.JobExecutionResponse, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*dto.JobExecutionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
