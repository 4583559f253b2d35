package repository

import (
	"context"
	"fmt"
	"time"

	"golang-market-predictor/pkg/logger"

	"github.com/piquette/finance-go/quote"
	"golang.org/x/time/rate"
)

// Quote is the latest market price for a symbol.
type Quote struct {
	Symbol   string
	Price    float64
	Currency string
	Time     time.Time
}

// MarketDataRepository fetches quotes from the market data provider.
type MarketDataRepository interface {
	GetQuote(ctx context.Context, symbol string) (*Quote, error)
}

// NewMarketDataRepository creates a Yahoo Finance backed repository limited to
// maxRequestPerMinute calls.
func NewMarketDataRepository(maxRequestPerMinute int, log *logger.Logger) MarketDataRepository {
	if maxRequestPerMinute <= 0 {
		maxRequestPerMinute = 60
	}
	secondsPerRequest := time.Minute / time.Duration(maxRequestPerMinute)
	return &marketDataRepository{
		logger:         log,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

type marketDataRepository struct {
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

func (r *marketDataRepository) GetQuote(ctx context.Context, symbol string) (*Quote, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	q, err := quote.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	if q == nil {
		return nil, fmt.Errorf("no quote for %s: %w", symbol, ErrNotFound)
	}
	if q.RegularMarketPrice <= 0 {
		return nil, fmt.Errorf("quote for %s has no price", symbol)
	}

	quotedAt := time.Now().UTC()
	if q.RegularMarketTime > 0 {
		quotedAt = time.Unix(int64(q.RegularMarketTime), 0).UTC()
	}

	r.logger.Debug("Fetched quote",
		logger.StringField("symbol", symbol),
		logger.Float64Field("price", q.RegularMarketPrice))

	return &Quote{
		Symbol:   symbol,
		Price:    q.RegularMarketPrice,
		Currency: q.CurrencyID,
		Time:     quotedAt,
	}, nil
}
