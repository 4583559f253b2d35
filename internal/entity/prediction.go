package entity

import (
	"time"

	"github.com/lib/pq"
)

// Prediction is a forecast for one tradable asset over a time frame.
type Prediction struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	AssetType       string          `gorm:"not null;index" json:"asset_type"`
	Symbol          string          `gorm:"not null;uniqueIndex:idx_predictions_symbol_time_frame" json:"symbol"`
	Name            string          `gorm:"not null" json:"name"`
	Category        string          `json:"category,omitempty"`
	Exchange        string          `json:"exchange,omitempty"`
	Unit            string          `json:"unit,omitempty"`
	FromCurrency    string          `json:"from_currency,omitempty"`
	ToCurrency      string          `json:"to_currency,omitempty"`
	LogoURL         string          `json:"logo_url,omitempty"`
	QuoteSymbol     string          `json:"quote_symbol,omitempty"`
	CurrentValue    float64         `gorm:"not null" json:"current_value"`
	PredictedValue  float64         `gorm:"not null" json:"predicted_value"`
	Confidence      float64         `gorm:"not null" json:"confidence"`
	TimeFrame       string          `gorm:"not null;uniqueIndex:idx_predictions_symbol_time_frame" json:"time_frame"`
	HistoricalData  pq.Float64Array `gorm:"type:double precision[]" json:"historical_data"`
	HistoricalDates pq.StringArray  `gorm:"type:text[]" json:"historical_dates"`
	ForecastData    pq.Float64Array `gorm:"type:double precision[]" json:"forecast_data"`
	ForecastDates   pq.StringArray  `gorm:"type:text[]" json:"forecast_dates"`
	LastUpdated     time.Time       `gorm:"not null" json:"last_updated"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Prediction) TableName() string {
	return "predictions"
}

// Currency returns the quote currency used to display the prediction's values.
func (p Prediction) Currency() string {
	if p.ToCurrency != "" {
		return p.ToCurrency
	}
	return "USD"
}
