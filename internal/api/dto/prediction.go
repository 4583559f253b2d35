package dto

import (
	"time"

	"golang-market-predictor/pkg/prediction"
)

// PredictionListQuery holds the filters of the prediction list.
type PredictionListQuery struct {
	Type string `query:"type"`
	Sort string `query:"sort"`
}

// PredictionResponse is a prediction together with its derived metrics.
type PredictionResponse struct {
	ID                 uint               `json:"id"`
	AssetType          string             `json:"asset_type"`
	Symbol             string             `json:"symbol"`
	Name               string             `json:"name"`
	Category           string             `json:"category,omitempty"`
	Exchange           string             `json:"exchange,omitempty"`
	Unit               string             `json:"unit,omitempty"`
	FromCurrency       string             `json:"from_currency,omitempty"`
	ToCurrency         string             `json:"to_currency,omitempty"`
	LogoURL            string             `json:"logo_url,omitempty"`
	CurrentValue       float64            `json:"current_value"`
	PredictedValue     float64            `json:"predicted_value"`
	Confidence         float64            `json:"confidence"`
	TimeFrame          string             `json:"time_frame"`
	FormattedCurrent   string             `json:"formatted_current"`
	FormattedPredicted string             `json:"formatted_predicted"`
	Metrics            prediction.Metrics `json:"metrics"`
	LastUpdated        time.Time          `json:"last_updated"`
}

// ChartSeries joins historical and forecast points into one plottable line.
// Points before DividerIndex are historical.
type ChartSeries struct {
	Labels       []string  `json:"labels"`
	Values       []float64 `json:"values"`
	DividerIndex int       `json:"divider_index"`
}

// PredictionDetailResponse is the full view of a single prediction.
type PredictionDetailResponse struct {
	PredictionResponse
	HistoricalData  []float64   `json:"historical_data"`
	HistoricalDates []string    `json:"historical_dates"`
	ForecastData    []float64   `json:"forecast_data"`
	ForecastDates   []string    `json:"forecast_dates"`
	Chart           ChartSeries `json:"chart"`
}

// ForecastQuery holds the parameters of an on-demand forecast.
type ForecastQuery struct {
	Volatility *float64
	Seed       *uint64
}

// ForecastResponse is a freshly generated forecast for a prediction.
type ForecastResponse struct {
	PredictionID uint      `json:"prediction_id"`
	Trend        string    `json:"trend"`
	Volatility   float64   `json:"volatility"`
	Seed         *uint64   `json:"seed,omitempty"`
	Values       []float64 `json:"values"`
	Dates        []string  `json:"dates"`
	Cached       bool      `json:"cached"`
}

// RefreshResponse acknowledges a queued forecast refresh.
type RefreshResponse struct {
	PredictionID uint   `json:"prediction_id"`
	MessageID    string `json:"message_id"`
	Status       string `json:"status"`
}
