package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang-market-predictor/internal/api/dto"
	"golang-market-predictor/internal/api/repository"
	"golang-market-predictor/internal/entity"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/utils"
)

// snapshotLookback bounds the history used for changes and risk figures.
const snapshotLookback = 365

// PortfolioService defines the interface for portfolio views and edits.
// Every method is scoped to the owner; other users' portfolios are reported as not found.
type PortfolioService interface {
	List(ctx context.Context, userID uint) ([]dto.PortfolioListItem, error)
	Get(ctx context.Context, userID, portfolioID uint) (*dto.PortfolioResponse, error)
	Summary(ctx context.Context, userID, portfolioID uint) (*dto.PortfolioSummary, error)
	Analysis(ctx context.Context, userID, portfolioID uint) (*dto.PortfolioAnalysis, error)
	GetAsset(ctx context.Context, userID, portfolioID, assetID uint) (*dto.AssetResponse, error)
	AddAsset(ctx context.Context, userID, portfolioID uint, req *dto.CreateAssetRequest) (*dto.AssetResponse, error)
	RemoveAsset(ctx context.Context, userID, portfolioID, assetID uint) error
}

// NewPortfolioService creates a new portfolio service.
func NewPortfolioService(repo repository.PortfolioRepository, userRepo repository.UserRepository, log *logger.Logger) PortfolioService {
	return &portfolioService{repo: repo, userRepo: userRepo, logger: log, now: utils.TimeNowUTC}
}

type portfolioService struct {
	repo     repository.PortfolioRepository
	userRepo repository.UserRepository
	logger   *logger.Logger
	now      func() time.Time
}

func (s *portfolioService) owned(ctx context.Context, userID, portfolioID uint) (*entity.Portfolio, error) {
	p, err := s.repo.FindByID(ctx, portfolioID)
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("portfolio %d", portfolioID))
	}
	if p.UserID != userID {
		return nil, fmt.Errorf("portfolio %d: %w", portfolioID, ErrNotFound)
	}
	return p, nil
}

func (s *portfolioService) snapshots(ctx context.Context, portfolioID uint) ([]entity.PortfolioSnapshot, error) {
	since := utils.StartOfDay(s.now()).AddDate(0, 0, -snapshotLookback)
	return s.repo.FindSnapshots(ctx, portfolioID, since)
}

func (s *portfolioService) currency(ctx context.Context, userID uint) string {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user.PreferredCurrency == "" {
		return "USD"
	}
	return user.PreferredCurrency
}

func (s *portfolioService) List(ctx context.Context, userID uint) ([]dto.PortfolioListItem, error) {
	portfolios, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list portfolios", logger.ErrorField(err), logger.Field("user_id", userID))
		return nil, err
	}

	currency := s.currency(ctx, userID)
	now := s.now()
	items := make([]dto.PortfolioListItem, 0, len(portfolios))
	for _, p := range portfolios {
		snaps, err := s.snapshots(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, dto.PortfolioListItem{
			ID:        p.ID,
			Name:      p.Name,
			Summary:   valueAssets(p.Assets).summary(snaps, now, currency),
			UpdatedAt: p.UpdatedAt,
		})
	}
	return items, nil
}

func (s *portfolioService) Get(ctx context.Context, userID, portfolioID uint) (*dto.PortfolioResponse, error) {
	p, err := s.owned(ctx, userID, portfolioID)
	if err != nil {
		return nil, err
	}
	return &dto.PortfolioResponse{
		ID:        p.ID,
		Name:      p.Name,
		Assets:    valueAssets(p.Assets).assets,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}, nil
}

func (s *portfolioService) Summary(ctx context.Context, userID, portfolioID uint) (*dto.PortfolioSummary, error) {
	p, err := s.owned(ctx, userID, portfolioID)
	if err != nil {
		return nil, err
	}
	snaps, err := s.snapshots(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	summary := valueAssets(p.Assets).summary(snaps, s.now(), s.currency(ctx, userID))
	return &summary, nil
}

func (s *portfolioService) Analysis(ctx context.Context, userID, portfolioID uint) (*dto.PortfolioAnalysis, error) {
	p, err := s.owned(ctx, userID, portfolioID)
	if err != nil {
		return nil, err
	}
	snaps, err := s.snapshots(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	v := valueAssets(p.Assets)
	summary := v.summary(snaps, s.now(), s.currency(ctx, userID))

	history := make([]dto.PerformancePoint, len(snaps))
	values := make([]float64, len(snaps))
	for i, snap := range snaps {
		history[i] = dto.PerformancePoint{Date: snap.Date.Format(utils.ISODateLayout), Value: snap.TotalValue}
		values[i] = snap.TotalValue
	}
	volatility, sharpe, drawdown := riskMetrics(values)

	recs := make([]dto.AssetRecommendation, len(v.assets))
	for i, a := range v.assets {
		recs[i] = recommendationFor(a)
	}

	return &dto.PortfolioAnalysis{
		PortfolioID:        p.ID,
		Summary:            summary,
		Assets:             v.assets,
		AllocationByType:   v.allocationBy(func(a dto.AssetResponse) string { return a.AssetType }),
		AllocationBySector: v.allocationBy(func(a dto.AssetResponse) string { return a.Sector }),
		AllocationByRegion: v.allocationBy(func(a dto.AssetResponse) string { return a.Region }),
		PerformanceHistory: history,
		Risk: dto.RiskAnalysis{
			Volatility:           volatility,
			SharpeRatio:          sharpe,
			MaxDrawdown:          drawdown,
			DiversificationScore: v.diversificationScore(),
			RiskScore:            summary.RiskScore,
		},
		Recommendations:     recs,
		RecommendationTitle: recommendationSummary(recs),
	}, nil
}

func (s *portfolioService) GetAsset(ctx context.Context, userID, portfolioID, assetID uint) (*dto.AssetResponse, error) {
	p, err := s.owned(ctx, userID, portfolioID)
	if err != nil {
		return nil, err
	}
	v := valueAssets(p.Assets)
	for i := range v.assets {
		if v.assets[i].ID == assetID {
			return &v.assets[i], nil
		}
	}
	return nil, fmt.Errorf("asset %d: %w", assetID, ErrNotFound)
}

func validateAsset(req *dto.CreateAssetRequest) error {
	req.AssetType = strings.ToLower(strings.TrimSpace(req.AssetType))
	req.Symbol = strings.ToUpper(strings.TrimSpace(req.Symbol))
	req.Name = strings.TrimSpace(req.Name)

	switch {
	case !utils.ContainsString(assetTypes, req.AssetType):
		return invalidArgument("asset_type must be one of %s", strings.Join(assetTypes, ", "))
	case req.Symbol == "":
		return invalidArgument("symbol is required")
	case req.Name == "":
		return invalidArgument("name is required")
	case req.Quantity <= 0:
		return invalidArgument("quantity must be greater than zero")
	case req.PurchasePrice <= 0:
		return invalidArgument("purchase_price must be greater than zero")
	case req.CurrentPrice < 0 || req.PredictedPrice < 0:
		return invalidArgument("prices must not be negative")
	case req.RiskScore < 1 || req.RiskScore > 10:
		return invalidArgument("risk_score must be between 1 and 10")
	case req.Confidence < 0 || req.Confidence > 100:
		return invalidArgument("confidence must be between 0 and 100")
	}
	return nil
}

func (s *portfolioService) AddAsset(ctx context.Context, userID, portfolioID uint, req *dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if err := validateAsset(req); err != nil {
		return nil, err
	}
	p, err := s.owned(ctx, userID, portfolioID)
	if err != nil {
		return nil, err
	}

	asset := entity.PortfolioAsset{
		PortfolioID:    p.ID,
		AssetType:      req.AssetType,
		Symbol:         req.Symbol,
		QuoteSymbol:    req.QuoteSymbol,
		Name:           req.Name,
		Quantity:       req.Quantity,
		PurchasePrice:  req.PurchasePrice,
		CurrentPrice:   req.CurrentPrice,
		PredictedPrice: req.PredictedPrice,
		Confidence:     req.Confidence,
		RiskScore:      req.RiskScore,
		Sector:         req.Sector,
		Region:         req.Region,
		PurchaseDate:   req.PurchaseDate,
	}
	if asset.CurrentPrice == 0 {
		asset.CurrentPrice = asset.PurchasePrice
	}
	if asset.PurchaseDate.IsZero() {
		asset.PurchaseDate = s.now()
	}

	if err := s.repo.CreateAsset(ctx, &asset); err != nil {
		s.logger.ErrorContext(ctx, "Failed to create portfolio asset", logger.ErrorField(err), logger.Field("portfolio_id", p.ID))
		return nil, err
	}
	s.logger.InfoContext(ctx, "Portfolio asset created",
		logger.Field("portfolio_id", p.ID), logger.Field("asset_id", asset.ID), logger.StringField("symbol", asset.Symbol))

	v := valueAssets(append(p.Assets, asset))
	return &v.assets[len(v.assets)-1], nil
}

func (s *portfolioService) RemoveAsset(ctx context.Context, userID, portfolioID, assetID uint) error {
	p, err := s.owned(ctx, userID, portfolioID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteAsset(ctx, p.ID, assetID); err != nil {
		return notFoundOr(err, fmt.Sprintf("asset %d", assetID))
	}
	s.logger.InfoContext(ctx, "Portfolio asset removed", logger.Field("portfolio_id", p.ID), logger.Field("asset_id", assetID))
	return nil
}
