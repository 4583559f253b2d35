package strategy

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/prediction"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func forecastJob(payload string) *entity.Job {
	return &entity.Job{Name: "refresh", Type: entity.JobTypeForecastRefresh, Payload: json.RawMessage(payload)}
}

func trackedPrediction(id uint, current, predicted float64) entity.Prediction {
	return entity.Prediction{
		ID:              id,
		Symbol:          "BTC",
		TimeFrame:       "1w",
		CurrentValue:    current,
		PredictedValue:  predicted,
		Confidence:      80,
		HistoricalData:  pq.Float64Array{100, 101, 102},
		HistoricalDates: pq.StringArray{"2024-03-08", "2024-03-09", "2024-03-10"},
	}
}

func TestForecastRefresh_SeededRunIsReproducible(t *testing.T) {
	repo := new(MockPredictionRepository)
	p := trackedPrediction(1, 102, 110)
	repo.On("FindByIDs", mock.Anything, []uint{1}).Return([]entity.Prediction{p}, nil)

	var written [][]float64
	repo.On("UpdateForecast", mock.Anything, uint(1), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			written = append(written, args.Get(2).([]float64))
			dates := args.Get(3).([]string)
			assert.Equal(t, "2024-03-11", dates[0])
			assert.Equal(t, "2024-03-17", dates[6])
		}).Return(nil).Twice()

	s := NewForecastRefreshStrategy(repo, logger.NewNop())
	job := forecastJob(`{"prediction_ids":[1],"seed":42,"volatility":0.03}`)

	out, err := s.Execute(context.Background(), job)
	require.NoError(t, err)
	assert.Contains(t, out, `"refreshed":1`)
	assert.Contains(t, out, `"status":"success"`)

	_, err = s.Execute(context.Background(), job)
	require.NoError(t, err)

	require.Len(t, written, 2)
	assert.Len(t, written[0], prediction.ForecastLength)
	assert.Equal(t, written[0], written[1])

	want, err := prediction.GenerateForecastData(p.HistoricalData, prediction.TrendUp,
		prediction.WithVolatility(0.03), prediction.WithRandom(prediction.NewSeededRandom(43)))
	require.NoError(t, err)
	assert.Equal(t, want, written[0])
	repo.AssertExpectations(t)
}

func TestForecastRefresh_SkipsZeroCurrentValueAndEmptySeries(t *testing.T) {
	repo := new(MockPredictionRepository)
	zero := trackedPrediction(1, 0, 10)
	empty := trackedPrediction(2, 100, 100)
	empty.HistoricalData = nil
	ok := trackedPrediction(3, 100, 90)
	repo.On("FindAll", mock.Anything).Return([]entity.Prediction{zero, empty, ok}, nil)
	repo.On("UpdateForecast", mock.Anything, uint(3), mock.Anything, mock.Anything).Return(nil).Once()

	s := NewForecastRefreshStrategy(repo, logger.NewNop())
	out, err := s.Execute(context.Background(), forecastJob(`{}`))
	require.NoError(t, err)

	var result forecastRefreshResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 1, result.Refreshed)
	assert.Len(t, result.Skipped, 2)
	assert.Empty(t, result.Failed)
	repo.AssertExpectations(t)
}

func TestForecastRefresh_ReportsMissingAndFailed(t *testing.T) {
	repo := new(MockPredictionRepository)
	repo.On("FindByIDs", mock.Anything, []uint{1, 9}).Return([]entity.Prediction{trackedPrediction(1, 100, 100)}, nil)
	repo.On("UpdateForecast", mock.Anything, uint(1), mock.Anything, mock.Anything).Return(errors.New("db down"))

	s := NewForecastRefreshStrategy(repo, logger.NewNop())
	out, err := s.Execute(context.Background(), forecastJob(`{"prediction_ids":[1,9]}`))
	require.Error(t, err)

	var result forecastRefreshResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, statusFailed, result.Status)
	assert.Len(t, result.Failed, 2)
}

func TestForecastRefresh_RejectsNegativeVolatility(t *testing.T) {
	s := NewForecastRefreshStrategy(new(MockPredictionRepository), logger.NewNop())
	_, err := s.Execute(context.Background(), forecastJob(`{"volatility":-0.1}`))
	assert.ErrorIs(t, err, prediction.ErrInvalidVolatility)
}

func TestLastObservation(t *testing.T) {
	p := entity.Prediction{LastUpdated: time.Date(2024, 3, 10, 15, 4, 0, 0, time.UTC)}
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), lastObservation(p))

	p.HistoricalDates = pq.StringArray{"2024-02-01"}
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), lastObservation(p))
}
