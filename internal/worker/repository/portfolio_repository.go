package repository

import (
	"context"

	"golang-market-predictor/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PortfolioRepository defines the worker's portfolio data operations.
type PortfolioRepository interface {
	FindAll(ctx context.Context) ([]entity.Portfolio, error)
	FindQuoteSymbols(ctx context.Context) ([]string, error)
	UpdateAssetPrice(ctx context.Context, quoteSymbol string, price float64) (int64, error)
	UpsertSnapshot(ctx context.Context, snapshot *entity.PortfolioSnapshot) error
}

// NewPortfolioRepository creates a new GORM-based portfolio repository.
func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

type portfolioRepository struct {
	db *gorm.DB
}

func (r *portfolioRepository) FindAll(ctx context.Context) ([]entity.Portfolio, error) {
	var portfolios []entity.Portfolio
	err := r.db.WithContext(ctx).
		Preload("Assets").
		Order("id asc").
		Find(&portfolios).Error
	if err != nil {
		return nil, err
	}
	return portfolios, nil
}

// FindQuoteSymbols returns the distinct quote symbols held across all portfolios.
func (r *portfolioRepository) FindQuoteSymbols(ctx context.Context) ([]string, error) {
	var symbols []string
	err := r.db.WithContext(ctx).Model(&entity.PortfolioAsset{}).
		Where("quote_symbol <> ''").
		Distinct().
		Order("quote_symbol").
		Pluck("quote_symbol", &symbols).Error
	if err != nil {
		return nil, err
	}
	return symbols, nil
}

func (r *portfolioRepository) UpdateAssetPrice(ctx context.Context, quoteSymbol string, price float64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entity.PortfolioAsset{}).
		Where("quote_symbol = ?", quoteSymbol).
		Update("current_price", price)
	return res.RowsAffected, res.Error
}

// UpsertSnapshot writes the snapshot, replacing the total of an existing one for the same day.
func (r *portfolioRepository) UpsertSnapshot(ctx context.Context, snapshot *entity.PortfolioSnapshot) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "portfolio_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_value"}),
		}).
		Create(snapshot).Error
}
