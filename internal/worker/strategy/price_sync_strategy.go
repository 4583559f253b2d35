package strategy

import (
	"context"
	"fmt"
	"time"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/internal/worker/repository"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/utils"
)

const defaultMaxHistory = 90

// PriceSyncPayload configures a price_sync run.
type PriceSyncPayload struct {
	// MaxHistory caps the stored daily history per prediction.
	MaxHistory int `json:"max_history"`
	// SkipPortfolios leaves portfolio asset prices untouched.
	SkipPortfolios bool `json:"skip_portfolios"`
}

type priceSyncResult struct {
	Status             string   `json:"status"`
	PredictionsUpdated int      `json:"predictions_updated"`
	PredictionsSkipped int      `json:"predictions_skipped"`
	PortfolioSymbols   int      `json:"portfolio_symbols"`
	AssetsUpdated      int64    `json:"assets_updated"`
	FailedSymbols      []string `json:"failed_symbols"`
}

// PriceSyncStrategy pulls the latest quotes into predictions and portfolio assets.
type PriceSyncStrategy struct {
	marketDataRepo repository.MarketDataRepository
	predictionRepo repository.PredictionRepository
	portfolioRepo  repository.PortfolioRepository
	logger         *logger.Logger
	now            func() time.Time
}

// NewPriceSyncStrategy creates a new PriceSyncStrategy.
func NewPriceSyncStrategy(
	marketDataRepo repository.MarketDataRepository,
	predictionRepo repository.PredictionRepository,
	portfolioRepo repository.PortfolioRepository,
	log *logger.Logger,
) *PriceSyncStrategy {
	return &PriceSyncStrategy{
		marketDataRepo: marketDataRepo,
		predictionRepo: predictionRepo,
		portfolioRepo:  portfolioRepo,
		logger:         log,
		now:            utils.TimeNowUTC,
	}
}

// GetType returns the job type this strategy handles.
func (s *PriceSyncStrategy) GetType() entity.JobType {
	return entity.JobTypePriceSync
}

func (s *PriceSyncStrategy) Execute(ctx context.Context, job *entity.Job) (string, error) {
	var payload PriceSyncPayload
	if err := decodePayload(job, &payload); err != nil {
		return "", err
	}
	if payload.MaxHistory <= 0 {
		payload.MaxHistory = defaultMaxHistory
	}

	predictions, err := s.predictionRepo.FindAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load predictions: %w", err)
	}

	result := priceSyncResult{FailedSymbols: []string{}}
	quotes := make(map[string]*repository.Quote)
	failed := make(map[string]bool)
	attempted := 0

	lookup := func(symbol string) *repository.Quote {
		if q, ok := quotes[symbol]; ok {
			return q
		}
		if failed[symbol] {
			return nil
		}
		attempted++
		q, err := s.marketDataRepo.GetQuote(ctx, symbol)
		if err != nil {
			s.logger.Warn("Failed to fetch quote", logger.ErrorField(err), logger.StringField("symbol", symbol))
			failed[symbol] = true
			result.FailedSymbols = append(result.FailedSymbols, symbol)
			return nil
		}
		quotes[symbol] = q
		return q
	}

	for i := range predictions {
		if !utils.ShouldContinue(ctx) {
			return "", ctx.Err()
		}
		p := &predictions[i]
		if p.QuoteSymbol == "" {
			result.PredictionsSkipped++
			continue
		}
		q := lookup(p.QuoteSymbol)
		if q == nil {
			continue
		}
		applyQuote(p, q, s.now(), payload.MaxHistory)
		if err := s.predictionRepo.UpdateQuote(ctx, p); err != nil {
			s.logger.Error("Failed to update prediction quote", logger.ErrorField(err), logger.IntField("prediction_id", int(p.ID)))
			continue
		}
		result.PredictionsUpdated++
	}

	if !payload.SkipPortfolios {
		symbols, err := s.portfolioRepo.FindQuoteSymbols(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to load portfolio symbols: %w", err)
		}
		result.PortfolioSymbols = len(symbols)
		for _, symbol := range symbols {
			if !utils.ShouldContinue(ctx) {
				return "", ctx.Err()
			}
			q := lookup(symbol)
			if q == nil {
				continue
			}
			n, err := s.portfolioRepo.UpdateAssetPrice(ctx, symbol, q.Price)
			if err != nil {
				s.logger.Error("Failed to update asset price", logger.ErrorField(err), logger.StringField("symbol", symbol))
				continue
			}
			result.AssetsUpdated += n
		}
	}

	switch {
	case attempted == 0:
		result.Status = statusSkipped
	case len(result.FailedSymbols) > 0:
		result.Status = statusFailed
	default:
		result.Status = statusSuccess
	}

	s.logger.Info("Price sync finished",
		logger.IntField("predictions_updated", result.PredictionsUpdated),
		logger.IntField("assets_updated", int(result.AssetsUpdated)),
		logger.IntField("failed_symbols", len(result.FailedSymbols)))

	output, err := marshalOutput(result)
	if err != nil {
		return "", err
	}
	if attempted > 0 && len(result.FailedSymbols) == attempted {
		return output, fmt.Errorf("all %d quotes failed", attempted)
	}
	return output, nil
}

// applyQuote sets the current value and records the quote as the day's close, replacing
// an existing point for the same day and keeping at most maxHistory points.
func applyQuote(p *entity.Prediction, q *repository.Quote, now time.Time, maxHistory int) {
	day := utils.StartOfDay(q.Time).Format(utils.ISODateLayout)

	values := append([]float64(nil), p.HistoricalData...)
	dates := append([]string(nil), p.HistoricalDates...)
	if n := len(dates); n > 0 && n == len(values) && dates[n-1] == day {
		values[n-1] = q.Price
	} else {
		values = append(values, q.Price)
		dates = append(dates, day)
	}

	if extra := len(values) - maxHistory; extra > 0 {
		values = values[extra:]
	}
	if extra := len(dates) - maxHistory; extra > 0 {
		dates = dates[extra:]
	}

	p.CurrentValue = q.Price
	p.HistoricalData = values
	p.HistoricalDates = dates
	p.LastUpdated = now
}
