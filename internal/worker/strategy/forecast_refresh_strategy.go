package strategy

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/internal/worker/repository"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/prediction"
	"golang-market-predictor/pkg/utils"

	"golang.org/x/sync/errgroup"
)

const defaultForecastConcurrency = 4

// ForecastRefreshPayload configures a forecast_refresh run.
type ForecastRefreshPayload struct {
	// PredictionIDs limits the run to these predictions. Empty means all.
	PredictionIDs []uint   `json:"prediction_ids"`
	Volatility    *float64 `json:"volatility"`
	// Seed makes the run reproducible. Each prediction draws from Seed+ID.
	Seed          *uint64 `json:"seed"`
	MaxConcurrent int     `json:"max_concurrent"`
}

type forecastRefreshResult struct {
	Status    string   `json:"status"`
	Refreshed int      `json:"refreshed"`
	Skipped   []string `json:"skipped"`
	Failed    []string `json:"failed"`
}

// ForecastRefreshStrategy regenerates the forward forecast of predictions.
type ForecastRefreshStrategy struct {
	predictionRepo repository.PredictionRepository
	logger         *logger.Logger
}

// NewForecastRefreshStrategy creates a new ForecastRefreshStrategy.
func NewForecastRefreshStrategy(predictionRepo repository.PredictionRepository, log *logger.Logger) *ForecastRefreshStrategy {
	return &ForecastRefreshStrategy{
		predictionRepo: predictionRepo,
		logger:         log,
	}
}

// GetType returns the job type this strategy handles.
func (s *ForecastRefreshStrategy) GetType() entity.JobType {
	return entity.JobTypeForecastRefresh
}

func (s *ForecastRefreshStrategy) Execute(ctx context.Context, job *entity.Job) (string, error) {
	var payload ForecastRefreshPayload
	if err := decodePayload(job, &payload); err != nil {
		return "", err
	}
	if payload.Volatility != nil && *payload.Volatility < 0 {
		return "", prediction.ErrInvalidVolatility
	}

	var (
		predictions []entity.Prediction
		err         error
	)
	if len(payload.PredictionIDs) > 0 {
		predictions, err = s.predictionRepo.FindByIDs(ctx, payload.PredictionIDs)
	} else {
		predictions, err = s.predictionRepo.FindAll(ctx)
	}
	if err != nil {
		return "", fmt.Errorf("failed to load predictions: %w", err)
	}

	result := forecastRefreshResult{Skipped: []string{}, Failed: []string{}}
	for _, id := range missingIDs(payload.PredictionIDs, predictions) {
		result.Failed = append(result.Failed, fmt.Sprintf("prediction %d: not found", id))
	}

	limit := payload.MaxConcurrent
	if limit <= 0 {
		limit = defaultForecastConcurrency
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range predictions {
		p := predictions[i]
		g.Go(func() error {
			if !utils.ShouldContinue(gctx) {
				return gctx.Err()
			}
			err := s.refreshOne(gctx, p, payload)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				result.Refreshed++
			case errors.Is(err, prediction.ErrZeroCurrentValue), errors.Is(err, prediction.ErrEmptySeries):
				result.Skipped = append(result.Skipped, fmt.Sprintf("%s (%s): %v", p.Symbol, p.TimeFrame, err))
			default:
				s.logger.Error("Failed to refresh forecast", logger.ErrorField(err), logger.IntField("prediction_id", int(p.ID)))
				result.Failed = append(result.Failed, fmt.Sprintf("%s (%s): %v", p.Symbol, p.TimeFrame, err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	switch {
	case len(result.Failed) > 0:
		result.Status = statusFailed
	case result.Refreshed == 0:
		result.Status = statusSkipped
	default:
		result.Status = statusSuccess
	}

	s.logger.Info("Forecast refresh finished",
		logger.IntField("refreshed", result.Refreshed),
		logger.IntField("skipped", len(result.Skipped)),
		logger.IntField("failed", len(result.Failed)))

	output, err := marshalOutput(result)
	if err != nil {
		return "", err
	}
	if len(result.Failed) > 0 {
		return output, fmt.Errorf("%d forecast refreshes failed", len(result.Failed))
	}
	return output, nil
}

func (s *ForecastRefreshStrategy) refreshOne(ctx context.Context, p entity.Prediction, payload ForecastRefreshPayload) error {
	trend, err := prediction.GetTrendDirection(p.CurrentValue, p.PredictedValue)
	if err != nil {
		return err
	}

	opts := []prediction.ForecastOption{}
	if payload.Volatility != nil {
		opts = append(opts, prediction.WithVolatility(*payload.Volatility))
	}
	if payload.Seed != nil {
		opts = append(opts, prediction.WithRandom(prediction.NewSeededRandom(*payload.Seed+uint64(p.ID))))
	}

	values, err := prediction.GenerateForecastData(p.HistoricalData, trend, opts...)
	if err != nil {
		return err
	}

	dates := prediction.ForecastDates(lastObservation(p), len(values))
	isoDates := make([]string, len(dates))
	for i, d := range dates {
		isoDates[i] = d.Format(utils.ISODateLayout)
	}

	return s.predictionRepo.UpdateForecast(ctx, p.ID, values, isoDates)
}

// lastObservation is the date of the newest historical point, falling back to the last update.
func lastObservation(p entity.Prediction) time.Time {
	if n := len(p.HistoricalDates); n > 0 {
		if t, err := time.Parse(utils.ISODateLayout, p.HistoricalDates[n-1]); err == nil {
			return t
		}
	}
	return utils.StartOfDay(p.LastUpdated)
}

func missingIDs(requested []uint, found []entity.Prediction) []uint {
	if len(requested) == 0 {
		return nil
	}
	have := make(map[uint]bool, len(found))
	for _, p := range found {
		have[p.ID] = true
	}
	var missing []uint
	for _, id := range requested {
		if !have[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
