package repository

import (
	"context"

	"golang-market-predictor/internal/entity"

	"gorm.io/gorm"
)

// PredictionRepository defines the interface for reading predictions.
type PredictionRepository interface {
	FindAll(ctx context.Context, assetType string) ([]entity.Prediction, error)
	FindByID(ctx context.Context, id uint) (*entity.Prediction, error)
}

// NewPredictionRepository creates a new GORM-based prediction repository.
func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

type predictionRepository struct {
	db *gorm.DB
}

// FindAll returns predictions of the given asset type, or all of them when assetType is empty.
func (r *predictionRepository) FindAll(ctx context.Context, assetType string) ([]entity.Prediction, error) {
	var predictions []entity.Prediction
	q := r.db.WithContext(ctx).Order("id asc")
	if assetType != "" {
		q = q.Where("asset_type = ?", assetType)
	}
	if err := q.Find(&predictions).Error; err != nil {
		return nil, err
	}
	return predictions, nil
}

func (r *predictionRepository) FindByID(ctx context.Context, id uint) (*entity.Prediction, error) {
	var p entity.Prediction
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}
