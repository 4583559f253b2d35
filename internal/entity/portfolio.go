package entity

import "time"

// Portfolio groups the assets a user holds.
type Portfolio struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"`
	Name      string           `gorm:"not null" json:"name"`
	Assets    []PortfolioAsset `gorm:"foreignKey:PortfolioID" json:"assets,omitempty"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}

type PortfolioAsset struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	PortfolioID    uint      `gorm:"not null;index" json:"portfolio_id"`
	AssetType      string    `gorm:"not null" json:"asset_type"`
	Symbol         string    `gorm:"not null" json:"symbol"`
	QuoteSymbol    string    `json:"quote_symbol,omitempty"`
	Name           string    `gorm:"not null" json:"name"`
	Quantity       float64   `gorm:"not null" json:"quantity"`
	PurchasePrice  float64   `gorm:"not null" json:"purchase_price"`
	CurrentPrice   float64   `gorm:"not null" json:"current_price"`
	PredictedPrice float64   `json:"predicted_price"`
	Confidence     float64   `json:"confidence"`
	RiskScore      int       `gorm:"not null" json:"risk_score"`
	Sector         string    `json:"sector,omitempty"`
	Region         string    `json:"region,omitempty"`
	PurchaseDate   time.Time `gorm:"not null" json:"purchase_date"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PortfolioAsset) TableName() string {
	return "portfolio_assets"
}

// PortfolioSnapshot is the total value of a portfolio at the end of a day.
type PortfolioSnapshot struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PortfolioID uint      `gorm:"not null;uniqueIndex:idx_portfolio_snapshots_day" json:"portfolio_id"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:idx_portfolio_snapshots_day" json:"date"`
	TotalValue  float64   `gorm:"not null" json:"total_value"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PortfolioSnapshot) TableName() string {
	return "portfolio_snapshots"
}
