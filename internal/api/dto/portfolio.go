package dto

import "time"

// AssetResponse is a portfolio asset with its derived valuation.
type AssetResponse struct {
	ID                   uint      `json:"id"`
	AssetType            string    `json:"asset_type"`
	Symbol               string    `json:"symbol"`
	Name                 string    `json:"name"`
	Quantity             float64   `json:"quantity"`
	PurchasePrice        float64   `json:"purchase_price"`
	CurrentPrice         float64   `json:"current_price"`
	PredictedPrice       float64   `json:"predicted_price"`
	Confidence           float64   `json:"confidence"`
	RiskScore            int       `json:"risk_score"`
	Sector               string    `json:"sector,omitempty"`
	Region               string    `json:"region,omitempty"`
	PurchaseDate         time.Time `json:"purchase_date"`
	Value                float64   `json:"value"`
	Investment           float64   `json:"investment"`
	ProfitLoss           float64   `json:"profit_loss"`
	ProfitLossPercentage float64   `json:"profit_loss_percentage"`
	Allocation           float64   `json:"allocation"`
	ExpectedROI          float64   `json:"expected_roi"`
	Trend                string    `json:"trend"`
	RecommendedAction    string    `json:"recommended_action"`
}

// ValueChange is the change of the portfolio value over a period.
type ValueChange struct {
	Change     float64 `json:"change"`
	Percentage float64 `json:"percentage"`
}

// PortfolioSummary holds the totals of a portfolio.
type PortfolioSummary struct {
	TotalValue           float64     `json:"total_value"`
	TotalInvestment      float64     `json:"total_investment"`
	TotalProfitLoss      float64     `json:"total_profit_loss"`
	ProfitLossPercentage float64     `json:"profit_loss_percentage"`
	DailyChange          ValueChange `json:"daily_change"`
	WeeklyChange         ValueChange `json:"weekly_change"`
	MonthlyChange        ValueChange `json:"monthly_change"`
	ExpectedROI          float64     `json:"expected_roi"`
	RiskScore            float64     `json:"risk_score"`
	AssetCount           int         `json:"asset_count"`
	Currency             string      `json:"currency"`
	FormattedTotalValue  string      `json:"formatted_total_value"`
}

type PortfolioListItem struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	Summary   PortfolioSummary `json:"summary"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type PortfolioResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Assets    []AssetResponse `json:"assets"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AllocationEntry is one slice of an allocation breakdown.
type AllocationEntry struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

type PerformancePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// RiskAnalysis describes how risky the portfolio has been.
type RiskAnalysis struct {
	Volatility           float64 `json:"volatility"`
	SharpeRatio          float64 `json:"sharpe_ratio"`
	MaxDrawdown          float64 `json:"max_drawdown"`
	DiversificationScore float64 `json:"diversification_score"`
	RiskScore            float64 `json:"risk_score"`
}

type AssetRecommendation struct {
	AssetID   uint    `json:"asset_id"`
	Symbol    string  `json:"symbol"`
	Action    string  `json:"action"`
	Reasoning string  `json:"reasoning"`
	ROI       float64 `json:"expected_roi"`
}

// PortfolioAnalysis is the full analytic view of a portfolio.
type PortfolioAnalysis struct {
	PortfolioID         uint                  `json:"portfolio_id"`
	Summary             PortfolioSummary      `json:"summary"`
	Assets              []AssetResponse       `json:"assets"`
	AllocationByType    []AllocationEntry     `json:"allocation_by_type"`
	AllocationBySector  []AllocationEntry     `json:"allocation_by_sector"`
	AllocationByRegion  []AllocationEntry     `json:"allocation_by_region"`
	PerformanceHistory  []PerformancePoint    `json:"performance_history"`
	Risk                RiskAnalysis          `json:"risk"`
	Recommendations     []AssetRecommendation `json:"recommendations"`
	RecommendationTitle string                `json:"recommendation_summary"`
}

// CreateAssetRequest adds an asset to a portfolio.
type CreateAssetRequest struct {
	AssetType      string    `json:"asset_type"`
	Symbol         string    `json:"symbol"`
	QuoteSymbol    string    `json:"quote_symbol"`
	Name           string    `json:"name"`
	Quantity       float64   `json:"quantity"`
	PurchasePrice  float64   `json:"purchase_price"`
	CurrentPrice   float64   `json:"current_price"`
	PredictedPrice float64   `json:"predicted_price"`
	Confidence     float64   `json:"confidence"`
	RiskScore      int       `json:"risk_score"`
	Sector         string    `json:"sector"`
	Region         string    `json:"region"`
	PurchaseDate   time.Time `json:"purchase_date"`
}
