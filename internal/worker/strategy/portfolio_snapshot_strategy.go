package strategy

import (
	"context"
	"fmt"
	"time"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/internal/worker/repository"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/utils"

	"github.com/shopspring/decimal"
)

type snapshotResult struct {
	Status      string   `json:"status"`
	Date        string   `json:"date"`
	Snapshots   int      `json:"snapshots"`
	Failed      []string `json:"failed"`
	TotalValues []string `json:"total_values"`
}

// PortfolioSnapshotStrategy records the daily total value of every portfolio.
type PortfolioSnapshotStrategy struct {
	portfolioRepo repository.PortfolioRepository
	logger        *logger.Logger
	now           func() time.Time
}

// NewPortfolioSnapshotStrategy creates a new PortfolioSnapshotStrategy.
func NewPortfolioSnapshotStrategy(portfolioRepo repository.PortfolioRepository, log *logger.Logger) *PortfolioSnapshotStrategy {
	return &PortfolioSnapshotStrategy{
		portfolioRepo: portfolioRepo,
		logger:        log,
		now:           utils.TimeNowUTC,
	}
}

// GetType returns the job type this strategy handles.
func (s *PortfolioSnapshotStrategy) GetType() entity.JobType {
	return entity.JobTypePortfolioSnapshot
}

func (s *PortfolioSnapshotStrategy) Execute(ctx context.Context, job *entity.Job) (string, error) {
	portfolios, err := s.portfolioRepo.FindAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load portfolios: %w", err)
	}

	day := utils.StartOfDay(s.now())
	result := snapshotResult{
		Date:        day.Format(utils.ISODateLayout),
		Failed:      []string{},
		TotalValues: []string{},
	}

	for _, p := range portfolios {
		if !utils.ShouldContinue(ctx) {
			return "", ctx.Err()
		}
		total := portfolioTotal(p.Assets)
		value, _ := total.Float64()
		snapshot := &entity.PortfolioSnapshot{
			PortfolioID: p.ID,
			Date:        day,
			TotalValue:  value,
		}
		if err := s.portfolioRepo.UpsertSnapshot(ctx, snapshot); err != nil {
			s.logger.Error("Failed to write portfolio snapshot", logger.ErrorField(err), logger.IntField("portfolio_id", int(p.ID)))
			result.Failed = append(result.Failed, fmt.Sprintf("portfolio %d: %v", p.ID, err))
			continue
		}
		result.Snapshots++
		result.TotalValues = append(result.TotalValues, fmt.Sprintf("%d=%s", p.ID, total.StringFixed(2)))
	}

	switch {
	case len(result.Failed) > 0:
		result.Status = statusFailed
	case result.Snapshots == 0:
		result.Status = statusSkipped
	default:
		result.Status = statusSuccess
	}

	output, err := marshalOutput(result)
	if err != nil {
		return "", err
	}
	if len(result.Failed) > 0 {
		return output, fmt.Errorf("%d portfolio snapshots failed", len(result.Failed))
	}
	return output, nil
}

// portfolioTotal sums quantity times current price, rounded to cents.
func portfolioTotal(assets []entity.PortfolioAsset) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(decimal.NewFromFloat(a.Quantity).Mul(decimal.NewFromFloat(a.CurrentPrice)))
	}
	return total.Round(2)
}
