package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang-market-predictor/internal/api/config"
	"golang-market-predictor/internal/api/dto"
	"golang-market-predictor/internal/api/repository"
	"golang-market-predictor/internal/entity"
	"golang-market-predictor/pkg/common"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/prediction"
	"golang-market-predictor/pkg/utils"

	"github.com/patrickmn/go-cache"
)

const (
	SortByConfidence = "confidence"
	SortByROI        = "roi"
	SortByTimeFrame  = "timeframe"
)

// timeFrameDays orders time frames by their actual length.
var timeFrameDays = map[string]int{
	"1d": 1,
	"1w": 7,
	"1m": 30,
	"3m": 90,
	"6m": 180,
	"1y": 365,
}

var assetTypes = []string{
	common.AssetTypeCurrency,
	common.AssetTypeCommodity,
	common.AssetTypeStock,
	common.AssetTypeCrypto,
}

// PredictionService defines the interface for serving predictions.
type PredictionService interface {
	List(ctx context.Context, q dto.PredictionListQuery) ([]dto.PredictionResponse, error)
	Get(ctx context.Context, id uint) (*dto.PredictionDetailResponse, error)
	Forecast(ctx context.Context, id uint, q dto.ForecastQuery) (*dto.ForecastResponse, error)
	RequestRefresh(ctx context.Context, id uint, userID uint) (*dto.RefreshResponse, error)
}

// NewPredictionService creates a new prediction service.
func NewPredictionService(
	repo repository.PredictionRepository,
	forecastCache repository.ForecastCacheRepository,
	publisher repository.RefreshPublisher,
	cfg config.Prediction,
	log *logger.Logger,
) PredictionService {
	return &predictionService{
		repo:          repo,
		forecastCache: forecastCache,
		publisher:     publisher,
		listCache:     cache.New(cfg.ListCacheTTL, 2*cfg.ListCacheTTL),
		cfg:           cfg,
		logger:        log,
	}
}

type predictionService struct {
	repo          repository.PredictionRepository
	forecastCache repository.ForecastCacheRepository
	publisher     repository.RefreshPublisher
	listCache     *cache.Cache
	cfg           config.Prediction
	logger        *logger.Logger
}

// List returns predictions filtered by asset type and ordered by the requested key.
// Records whose metrics cannot be derived are skipped.
func (s *predictionService) List(ctx context.Context, q dto.PredictionListQuery) ([]dto.PredictionResponse, error) {
	assetType := strings.ToLower(strings.TrimSpace(q.Type))
	if assetType == "all" {
		assetType = ""
	}
	if assetType != "" && !utils.ContainsString(assetTypes, assetType) {
		return nil, invalidArgument("unknown asset type %q", q.Type)
	}
	sortKey := strings.ToLower(strings.TrimSpace(q.Sort))
	switch sortKey {
	case "", SortByConfidence, SortByROI, SortByTimeFrame:
	default:
		return nil, invalidArgument("unknown sort %q", q.Sort)
	}

	cacheKey := assetType + "|" + sortKey
	if cached, ok := s.listCache.Get(cacheKey); ok {
		return cached.([]dto.PredictionResponse), nil
	}

	records, err := s.repo.FindAll(ctx, assetType)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list predictions", logger.ErrorField(err))
		return nil, err
	}

	items := make([]dto.PredictionResponse, 0, len(records))
	for _, p := range records {
		item, err := toPredictionResponse(p)
		if err != nil {
			s.logger.WarnContext(ctx, "Skipping prediction with invalid values",
				logger.Field("prediction_id", p.ID), logger.ErrorField(err))
			continue
		}
		items = append(items, item)
	}

	sortPredictions(items, sortKey)
	s.listCache.SetDefault(cacheKey, items)
	return items, nil
}

func sortPredictions(items []dto.PredictionResponse, key string) {
	switch key {
	case SortByConfidence:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Confidence > items[j].Confidence })
	case SortByROI:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Metrics.ExpectedROI > items[j].Metrics.ExpectedROI })
	case SortByTimeFrame:
		sort.SliceStable(items, func(i, j int) bool { return timeFrameRank(items[i].TimeFrame) < timeFrameRank(items[j].TimeFrame) })
	}
}

func timeFrameRank(tf string) int {
	if days, ok := timeFrameDays[strings.ToLower(tf)]; ok {
		return days
	}
	return int(^uint(0) >> 1)
}

func (s *predictionService) Get(ctx context.Context, id uint) (*dto.PredictionDetailResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("prediction %d", id))
	}

	item, err := toPredictionResponse(*p)
	if err != nil {
		return nil, err
	}

	return &dto.PredictionDetailResponse{
		PredictionResponse: item,
		HistoricalData:     nonNilFloats(p.HistoricalData),
		HistoricalDates:    nonNilStrings(p.HistoricalDates),
		ForecastData:       nonNilFloats(p.ForecastData),
		ForecastDates:      nonNilStrings(p.ForecastDates),
		Chart:              buildChart(p.HistoricalData, p.HistoricalDates, p.ForecastData, p.ForecastDates),
	}, nil
}

// Forecast generates a forecast from the prediction's history. Results are cached per volatility and seed.
func (s *predictionService) Forecast(ctx context.Context, id uint, q dto.ForecastQuery) (*dto.ForecastResponse, error) {
	volatility := s.cfg.DefaultVolatility
	if q.Volatility != nil {
		volatility = *q.Volatility
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("prediction %d", id))
	}

	trend, err := prediction.GetTrendDirection(p.CurrentValue, p.PredictedValue)
	if err != nil {
		return nil, err
	}

	variant := fmt.Sprintf("%g:auto", volatility)
	if q.Seed != nil {
		variant = fmt.Sprintf("%g:%d", volatility, *q.Seed)
	}

	var cached dto.ForecastResponse
	found, err := s.forecastCache.Get(ctx, id, variant, &cached)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to read forecast cache", logger.ErrorField(err))
	}
	if found {
		cached.Cached = true
		return &cached, nil
	}

	opts := []prediction.ForecastOption{prediction.WithVolatility(volatility)}
	if q.Seed != nil {
		opts = append(opts, prediction.WithRandom(prediction.NewSeededRandom(*q.Seed)))
	}
	values, err := prediction.GenerateForecastData(p.HistoricalData, trend, opts...)
	if err != nil {
		return nil, err
	}

	resp := &dto.ForecastResponse{
		PredictionID: p.ID,
		Trend:        string(trend),
		Volatility:   volatility,
		Seed:         q.Seed,
		Values:       values,
		Dates:        formatISODates(prediction.ForecastDates(lastObservation(*p), len(values))),
	}

	if err := s.forecastCache.Set(ctx, id, variant, resp, s.cfg.ForecastCacheTTL); err != nil {
		s.logger.WarnContext(ctx, "Failed to cache forecast", logger.ErrorField(err))
	}
	return resp, nil
}

// RequestRefresh queues a forecast refresh for the worker.
func (s *predictionService) RequestRefresh(ctx context.Context, id uint, userID uint) (*dto.RefreshResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("prediction %d", id))
	}

	msgID, err := s.publisher.Publish(ctx, repository.ForecastRefreshRequest{
		PredictionID: id,
		RequestedBy:  userID,
		RequestedAt:  utils.TimeNowUTC(),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to queue forecast refresh", logger.ErrorField(err), logger.Field("prediction_id", id))
		return nil, err
	}

	s.logger.InfoContext(ctx, "Forecast refresh queued", logger.Field("prediction_id", id), logger.StringField("message_id", msgID))
	return &dto.RefreshResponse{PredictionID: id, MessageID: msgID, Status: "queued"}, nil
}

func toPredictionResponse(p entity.Prediction) (dto.PredictionResponse, error) {
	metrics, err := prediction.Evaluate(prediction.Record{
		CurrentValue:   p.CurrentValue,
		PredictedValue: p.PredictedValue,
		Confidence:     p.Confidence,
	})
	if err != nil {
		return dto.PredictionResponse{}, err
	}

	return dto.PredictionResponse{
		ID:                 p.ID,
		AssetType:          p.AssetType,
		Symbol:             p.Symbol,
		Name:               p.Name,
		Category:           p.Category,
		Exchange:           p.Exchange,
		Unit:               p.Unit,
		FromCurrency:       p.FromCurrency,
		ToCurrency:         p.ToCurrency,
		LogoURL:            p.LogoURL,
		CurrentValue:       p.CurrentValue,
		PredictedValue:     p.PredictedValue,
		Confidence:         p.Confidence,
		TimeFrame:          p.TimeFrame,
		FormattedCurrent:   utils.FormatCurrency(p.CurrentValue, p.Currency()),
		FormattedPredicted: utils.FormatCurrency(p.PredictedValue, p.Currency()),
		Metrics:            metrics,
		LastUpdated:        p.LastUpdated,
	}, nil
}

func buildChart(hist []float64, histDates []string, forecast []float64, forecastDates []string) dto.ChartSeries {
	chart := dto.ChartSeries{
		Labels:       make([]string, 0, len(hist)+len(forecast)),
		Values:       make([]float64, 0, len(hist)+len(forecast)),
		DividerIndex: len(hist),
	}
	appendPoints := func(values []float64, dates []string) {
		for i, v := range values {
			label := ""
			if i < len(dates) {
				label = chartLabel(dates[i])
			}
			chart.Labels = append(chart.Labels, label)
			chart.Values = append(chart.Values, v)
		}
	}
	appendPoints(hist, histDates)
	appendPoints(forecast, forecastDates)
	return chart
}

func chartLabel(isoDate string) string {
	t, err := time.Parse(utils.ISODateLayout, isoDate)
	if err != nil {
		return isoDate
	}
	return utils.FormatChartDate(t)
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

func formatISODates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(utils.ISODateLayout)
	}
	return out
}

func nonNilFloats(v []float64) []float64 {
	if v == nil {
		return []float64{}
	}
	return v
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
