package service

import (
	"context"
	"testing"
	"time"

	"golang-market-predictor/internal/api/dto"
	"golang-market-predictor/internal/api/repository"
	"golang-market-predictor/internal/entity"
	"golang-market-predictor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleAssets() []entity.PortfolioAsset {
	return []entity.PortfolioAsset{
		{
			ID: 1, PortfolioID: 10, AssetType: "stock", Symbol: "AAPL", Name: "Apple",
			Quantity: 10, PurchasePrice: 100, CurrentPrice: 120, PredictedPrice: 132,
			Confidence: 80, RiskScore: 6, Sector: "Technology", Region: "US",
		},
		{
			ID: 2, PortfolioID: 10, AssetType: "currency", Symbol: "EUR/USD", Name: "Euro",
			Quantity: 1000, PurchasePrice: 1, CurrentPrice: 0.8, PredictedPrice: 0.8,
			Confidence: 90, RiskScore: 2, Region: "EU",
		},
	}
}

func sampleSnapshots() []entity.PortfolioSnapshot {
	return []entity.PortfolioSnapshot{
		{PortfolioID: 10, Date: day(2024, 2, 1), TotalValue: 1500},
		{PortfolioID: 10, Date: day(2024, 3, 3), TotalValue: 1800},
		{PortfolioID: 10, Date: day(2024, 3, 9), TotalValue: 1900},
		{PortfolioID: 10, Date: day(2024, 3, 10), TotalValue: 1950},
	}
}

func TestValueAssets(t *testing.T) {
	v := valueAssets(sampleAssets())

	apple := v.assets[0]
	assert.Equal(t, 1200.0, apple.Value)
	assert.Equal(t, 1000.0, apple.Investment)
	assert.Equal(t, 200.0, apple.ProfitLoss)
	assert.Equal(t, 20.0, apple.ProfitLossPercentage)
	assert.Equal(t, 60.0, apple.Allocation)
	assert.Equal(t, 10.0, apple.ExpectedROI)
	assert.Equal(t, "up", apple.Trend)
	assert.Equal(t, "buy", apple.RecommendedAction)

	euro := v.assets[1]
	assert.Equal(t, 800.0, euro.Value)
	assert.Equal(t, -200.0, euro.ProfitLoss)
	assert.Equal(t, -20.0, euro.ProfitLossPercentage)
	assert.Equal(t, 40.0, euro.Allocation)
	assert.Equal(t, "hold", euro.RecommendedAction)
}

func TestValueAssets_ZeroPriceIsStable(t *testing.T) {
	v := valueAssets([]entity.PortfolioAsset{{ID: 1, Quantity: 1, PurchasePrice: 10, CurrentPrice: 0, PredictedPrice: 5, Confidence: 99}})
	assert.Equal(t, 0.0, v.assets[0].ExpectedROI)
	assert.Equal(t, "stable", v.assets[0].Trend)
	assert.Equal(t, "hold", v.assets[0].RecommendedAction)
	assert.Equal(t, 0.0, v.assets[0].Allocation)
}

func TestValuationSummary(t *testing.T) {
	s := valueAssets(sampleAssets()).summary(sampleSnapshots(), testNow, "USD")

	assert.Equal(t, 2000.0, s.TotalValue)
	assert.Equal(t, 2000.0, s.TotalInvestment)
	assert.Equal(t, 0.0, s.TotalProfitLoss)
	assert.Equal(t, 6.0, s.ExpectedROI)
	assert.Equal(t, 4.4, s.RiskScore)
	assert.Equal(t, "$2,000.00", s.FormattedTotalValue)

	assert.Equal(t, dto.ValueChange{Change: 100, Percentage: 5.26}, s.DailyChange)
	assert.Equal(t, dto.ValueChange{Change: 200, Percentage: 11.11}, s.WeeklyChange)
	assert.Equal(t, dto.ValueChange{Change: 500, Percentage: 33.33}, s.MonthlyChange)
}

func TestChangeSince_NoOldEnoughSnapshot(t *testing.T) {
	v := valueAssets(sampleAssets())
	snaps := []entity.PortfolioSnapshot{{Date: day(2024, 3, 10), TotalValue: 1000}}
	assert.Equal(t, dto.ValueChange{}, changeSince(snaps, v.total, testNow, 1))
}

func TestAllocationAndDiversification(t *testing.T) {
	v := valueAssets(sampleAssets())

	bySector := v.allocationBy(func(a dto.AssetResponse) string { return a.Sector })
	require.Len(t, bySector, 2)
	assert.Equal(t, dto.AllocationEntry{Name: "Technology", Value: 1200, Percentage: 60}, bySector[0])
	assert.Equal(t, dto.AllocationEntry{Name: "Other", Value: 800, Percentage: 40}, bySector[1])

	assert.Equal(t, 5.3, v.diversificationScore())
	assert.Equal(t, 1.0, valueAssets(sampleAssets()[:1]).diversificationScore())
	assert.Equal(t, 0.0, valueAssets(nil).diversificationScore())
}

func TestRiskMetrics(t *testing.T) {
	vol, sharpe, dd := riskMetrics([]float64{100, 110, 99, 108.9})
	assert.InDelta(t, 183.30, vol, 0.01)
	assert.InDelta(t, 4.58, sharpe, 0.01)
	assert.InDelta(t, 10.0, dd, 0.001)

	vol, sharpe, dd = riskMetrics([]float64{100, 100, 100})
	assert.Zero(t, vol)
	assert.Zero(t, sharpe)
	assert.Zero(t, dd)

	vol, sharpe, dd = riskMetrics(nil)
	assert.Zero(t, vol+sharpe+dd)
}

func TestRecommendationSummary(t *testing.T) {
	v := valueAssets(sampleAssets())
	recs := []dto.AssetRecommendation{recommendationFor(v.assets[0]), recommendationFor(v.assets[1])}

	assert.Equal(t, "Predicted to rise 10.00% with 80% confidence", recs[0].Reasoning)
	assert.Equal(t, "Predicted change of 0.00% is within the stable range", recs[1].Reasoning)
	assert.Equal(t, "1 to buy, 0 to sell and 1 to hold", recommendationSummary(recs))
}

type portfolioDeps struct {
	repo  *MockPortfolioRepository
	users *MockUserRepository
	svc   *portfolioService
}

func newPortfolioDeps() portfolioDeps {
	d := portfolioDeps{repo: new(MockPortfolioRepository), users: new(MockUserRepository)}
	d.svc = NewPortfolioService(d.repo, d.users, logger.NewNop()).(*portfolioService)
	d.svc.now = func() time.Time { return testNow }
	return d
}

func samplePortfolio() *entity.Portfolio {
	return &entity.Portfolio{ID: 10, UserID: 1, Name: "Main", Assets: sampleAssets()}
}

func TestPortfolioService_Summary(t *testing.T) {
	d := newPortfolioDeps()
	d.repo.On("FindByID", mock.Anything, uint(10)).Return(samplePortfolio(), nil)
	d.repo.On("FindSnapshots", mock.Anything, uint(10), day(2023, 3, 11)).Return(sampleSnapshots(), nil)
	d.users.On("FindByID", mock.Anything, uint(1)).Return(&entity.User{ID: 1, PreferredCurrency: "EUR"}, nil)

	s, err := d.svc.Summary(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "EUR", s.Currency)
	assert.Equal(t, "€2,000.00", s.FormattedTotalValue)
	assert.Equal(t, 2, s.AssetCount)
	d.repo.AssertExpectations(t)
}

func TestPortfolioService_OtherUsersPortfolioIsNotFound(t *testing.T) {
	d := newPortfolioDeps()
	d.repo.On("FindByID", mock.Anything, uint(10)).Return(samplePortfolio(), nil)

	_, err := d.svc.Get(context.Background(), 2, 10)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = d.svc.Analysis(context.Background(), 2, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPortfolioService_Analysis(t *testing.T) {
	d := newPortfolioDeps()
	d.repo.On("FindByID", mock.Anything, uint(10)).Return(samplePortfolio(), nil)
	d.repo.On("FindSnapshots", mock.Anything, uint(10), mock.Anything).Return(sampleSnapshots(), nil)
	d.users.On("FindByID", mock.Anything, uint(1)).Return(nil, repository.ErrNotFound)

	a, err := d.svc.Analysis(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, "USD", a.Summary.Currency)
	assert.Len(t, a.PerformanceHistory, 4)
	assert.Equal(t, "2024-02-01", a.PerformanceHistory[0].Date)
	assert.Equal(t, "stock", a.AllocationByType[0].Name)
	assert.Equal(t, "US", a.AllocationByRegion[0].Name)
	assert.Equal(t, 5.3, a.Risk.DiversificationScore)
	assert.Equal(t, 4.4, a.Risk.RiskScore)
	assert.Len(t, a.Recommendations, 2)
	assert.Equal(t, "1 to buy, 0 to sell and 1 to hold", a.RecommendationTitle)
}

func TestPortfolioService_GetAsset(t *testing.T) {
	d := newPortfolioDeps()
	d.repo.On("FindByID", mock.Anything, uint(10)).Return(samplePortfolio(), nil)

	asset, err := d.svc.GetAsset(context.Background(), 1, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, "EUR/USD", asset.Symbol)
	assert.Equal(t, -200.0, asset.ProfitLoss)

	_, err = d.svc.GetAsset(context.Background(), 1, 10, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPortfolioService_AddAsset_Validation(t *testing.T) {
	valid := func() dto.CreateAssetRequest {
		return dto.CreateAssetRequest{AssetType: "stock", Symbol: "msft", Name: "Microsoft", Quantity: 1, PurchasePrice: 300, RiskScore: 5}
	}
	tests := map[string]func(r *dto.CreateAssetRequest){
		"zero quantity":      func(r *dto.CreateAssetRequest) { r.Quantity = 0 },
		"negative price":     func(r *dto.CreateAssetRequest) { r.PurchasePrice = -1 },
		"risk below range":   func(r *dto.CreateAssetRequest) { r.RiskScore = 0 },
		"risk above range":   func(r *dto.CreateAssetRequest) { r.RiskScore = 11 },
		"unknown asset type": func(r *dto.CreateAssetRequest) { r.AssetType = "bond" },
		"missing symbol":     func(r *dto.CreateAssetRequest) { r.Symbol = " " },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			d := newPortfolioDeps()
			req := valid()
			mutate(&req)
			_, err := d.svc.AddAsset(context.Background(), 1, 10, &req)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			d.repo.AssertNotCalled(t, "CreateAsset", mock.Anything, mock.Anything)
		})
	}
}

func TestPortfolioService_AddAsset(t *testing.T) {
	d := newPortfolioDeps()
	d.repo.On("FindByID", mock.Anything, uint(10)).Return(samplePortfolio(), nil)
	d.repo.On("CreateAsset", mock.Anything, mock.AnythingOfType("*entity.PortfolioAsset")).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.PortfolioAsset).ID = 3 }).
		Return(nil)

	req := dto.CreateAssetRequest{AssetType: "Stock", Symbol: "msft", Name: "Microsoft", Quantity: 2, PurchasePrice: 500, RiskScore: 5}
	asset, err := d.svc.AddAsset(context.Background(), 1, 10, &req)
	require.NoError(t, err)

	assert.Equal(t, uint(3), asset.ID)
	assert.Equal(t, "MSFT", asset.Symbol)
	assert.Equal(t, "stock", asset.AssetType)
	assert.Equal(t, 500.0, asset.CurrentPrice)
	assert.Equal(t, 1000.0, asset.Value)
	assert.Equal(t, 33.33, asset.Allocation)
	assert.Equal(t, testNow, asset.PurchaseDate)
}

func TestPortfolioService_RemoveAsset(t *testing.T) {
	d := newPortfolioDeps()
	d.repo.On("FindByID", mock.Anything, uint(10)).Return(samplePortfolio(), nil)
	d.repo.On("DeleteAsset", mock.Anything, uint(10), uint(1)).Return(nil)
	d.repo.On("DeleteAsset", mock.Anything, uint(10), uint(5)).Return(repository.ErrNotFound)

	require.NoError(t, d.svc.RemoveAsset(context.Background(), 1, 10, 1))
	assert.ErrorIs(t, d.svc.RemoveAsset(context.Background(), 1, 10, 5), ErrNotFound)
}
