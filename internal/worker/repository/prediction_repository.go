package repository

import (
	"context"
	"time"

	"golang-market-predictor/internal/entity"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PredictionRepository defines the worker's prediction data operations.
type PredictionRepository interface {
	FindAll(ctx context.Context) ([]entity.Prediction, error)
	FindByIDs(ctx context.Context, ids []uint) ([]entity.Prediction, error)
	UpdateForecast(ctx context.Context, id uint, values []float64, dates []string) error
	UpdateQuote(ctx context.Context, p *entity.Prediction) error
}

// NewPredictionRepository creates a new GORM-based prediction repository.
func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

type predictionRepository struct {
	db *gorm.DB
}

func (r *predictionRepository) FindAll(ctx context.Context) ([]entity.Prediction, error) {
	var predictions []entity.Prediction
	if err := r.db.WithContext(ctx).Order("id asc").Find(&predictions).Error; err != nil {
		return nil, err
	}
	return predictions, nil
}

func (r *predictionRepository) FindByIDs(ctx context.Context, ids []uint) ([]entity.Prediction, error) {
	var predictions []entity.Prediction
	if len(ids) == 0 {
		return predictions, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id asc").Find(&predictions).Error; err != nil {
		return nil, err
	}
	return predictions, nil
}

func (r *predictionRepository) UpdateForecast(ctx context.Context, id uint, values []float64, dates []string) error {
	res := r.db.WithContext(ctx).Model(&entity.Prediction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"forecast_data":  pq.Float64Array(values),
			"forecast_dates": pq.StringArray(dates),
			"last_updated":   time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateQuote persists the current value and the historical series of p.
func (r *predictionRepository) UpdateQuote(ctx context.Context, p *entity.Prediction) error {
	return r.db.WithContext(ctx).Model(&entity.Prediction{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"current_value":    p.CurrentValue,
			"historical_data":  p.HistoricalData,
			"historical_dates": p.HistoricalDates,
			"last_updated":     p.LastUpdated,
		}).Error
}
