package strategy

import (
	"context"
	"time"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/internal/worker/dto"
	"golang-market-predictor/internal/worker/repository"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/mock"
)

type MockPredictionRepository struct{ mock.Mock }

func (m *MockPredictionRepository) FindAll(ctx context.Context) ([]entity.Prediction, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]entity.Prediction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPredictionRepository) FindByIDs(ctx context.Context, ids []uint) ([]entity.Prediction, error) {
	args := m.Called(ctx, ids)
	if v := args.Get(0); v != nil {
		return v.([]entity.Prediction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPredictionRepository) UpdateForecast(ctx context.Context, id uint, values []float64, dates []string) error {
	return m.Called(ctx, id, values, dates).Error(0)
}

func (m *MockPredictionRepository) UpdateQuote(ctx context.Context, p *entity.Prediction) error {
	return m.Called(ctx, p).Error(0)
}

type MockNewsRepository struct{ mock.Mock }

func (m *MockNewsRepository) FindExistingHashes(ctx context.Context, hashes []string) (map[string]bool, error) {
	args := m.Called(ctx, hashes)
	if v := args.Get(0); v != nil {
		return v.(map[string]bool), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNewsRepository) FindOrCreateSource(ctx context.Context, source *entity.NewsSource) error {
	return m.Called(ctx, source).Error(0)
}

func (m *MockNewsRepository) CreateIgnoreConflict(ctx context.Context, article *entity.NewsArticle) (bool, error) {
	args := m.Called(ctx, article)
	return args.Bool(0), args.Error(1)
}

type MockFeedRepository struct{ mock.Mock }

func (m *MockFeedRepository) Fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	args := m.Called(ctx, url)
	if v := args.Get(0); v != nil {
		return v.(*gofeed.Feed), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFeedRepository) ExtractArticle(ctx context.Context, link string) (*dto.FeedArticle, error) {
	args := m.Called(ctx, link)
	if v := args.Get(0); v != nil {
		return v.(*dto.FeedArticle), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockNewsAnalyzer struct{ mock.Mock }

func (m *MockNewsAnalyzer) Analyze(ctx context.Context, in dto.NewsAnalysisInput) (*dto.NewsAnalysis, error) {
	args := m.Called(ctx, in)
	if v := args.Get(0); v != nil {
		return v.(*dto.NewsAnalysis), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMarketDataRepository struct{ mock.Mock }

func (m *MockMarketDataRepository) GetQuote(ctx context.Context, symbol string) (*repository.Quote, error) {
	args := m.Called(ctx, symbol)
	if v := args.Get(0); v != nil {
		return v.(*repository.Quote), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPortfolioRepository struct{ mock.Mock }

func (m *MockPortfolioRepository) FindAll(ctx context.Context) ([]entity.Portfolio, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]entity.Portfolio), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPortfolioRepository) FindQuoteSymbols(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPortfolioRepository) UpdateAssetPrice(ctx context.Context, quoteSymbol string, price float64) (int64, error) {
	args := m.Called(ctx, quoteSymbol, price)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPortfolioRepository) UpsertSnapshot(ctx context.Context, snapshot *entity.PortfolioSnapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) FindNotifiable(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) CreateBatch(ctx context.Context, notifications []entity.Notification) error {
	return m.Called(ctx, notifications).Error(0)
}

type MockAlertRepository struct{ mock.Mock }

func (m *MockAlertRepository) MarkSent(ctx context.Context, predictionID uint, action string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, predictionID, action, ttl)
	return args.Bool(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
	enabled bool
}

func (m *MockNotifier) SendMessage(text string) error {
	return m.Called(text).Error(0)
}

func (m *MockNotifier) Enabled() bool { return m.enabled }
