package repository

import (
	"context"
	"time"

	"golang-market-predictor/internal/entity"

	"gorm.io/gorm"
)

// PortfolioRepository defines the interface for portfolio data operations.
type PortfolioRepository interface {
	FindByUserID(ctx context.Context, userID uint) ([]entity.Portfolio, error)
	FindByID(ctx context.Context, id uint) (*entity.Portfolio, error)
	FindAsset(ctx context.Context, portfolioID, assetID uint) (*entity.PortfolioAsset, error)
	CreateAsset(ctx context.Context, asset *entity.PortfolioAsset) error
	DeleteAsset(ctx context.Context, portfolioID, assetID uint) error
	FindSnapshots(ctx context.Context, portfolioID uint, since time.Time) ([]entity.PortfolioSnapshot, error)
}

// NewPortfolioRepository creates a new GORM-based portfolio repository.
func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

type portfolioRepository struct {
	db *gorm.DB
}

func (r *portfolioRepository) FindByUserID(ctx context.Context, userID uint) ([]entity.Portfolio, error) {
	var portfolios []entity.Portfolio
	err := r.db.WithContext(ctx).
		Preload("Assets", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&portfolios).Error
	if err != nil {
		return nil, err
	}
	return portfolios, nil
}

func (r *portfolioRepository) FindByID(ctx context.Context, id uint) (*entity.Portfolio, error) {
	var portfolio entity.Portfolio
	err := r.db.WithContext(ctx).
		Preload("Assets", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		First(&portfolio, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &portfolio, nil
}

func (r *portfolioRepository) FindAsset(ctx context.Context, portfolioID, assetID uint) (*entity.PortfolioAsset, error) {
	var asset entity.PortfolioAsset
	err := r.db.WithContext(ctx).
		Where("portfolio_id = ?", portfolioID).
		First(&asset, assetID).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &asset, nil
}

func (r *portfolioRepository) CreateAsset(ctx context.Context, asset *entity.PortfolioAsset) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(asset).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Portfolio{}).
			Where("id = ?", asset.PortfolioID).
			Update("updated_at", time.Now()).Error
	})
}

// DeleteAsset removes an asset and returns ErrNotFound when it does not belong to the portfolio.
func (r *portfolioRepository) DeleteAsset(ctx context.Context, portfolioID, assetID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND portfolio_id = ?", assetID, portfolioID).
		Delete(&entity.PortfolioAsset{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindSnapshots returns the snapshots taken on or after since, oldest first.
func (r *portfolioRepository) FindSnapshots(ctx context.Context, portfolioID uint, since time.Time) ([]entity.PortfolioSnapshot, error) {
	var snapshots []entity.PortfolioSnapshot
	err := r.db.WithContext(ctx).
		Where("portfolio_id = ? AND date >= ?", portfolioID, since).
		Order("date asc").
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}
