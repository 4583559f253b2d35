package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"golang-market-predictor/internal/api/dto"
	"golang-market-predictor/internal/entity"
	"golang-market-predictor/pkg/prediction"
	"golang-market-predictor/pkg/utils"

	"github.com/shopspring/decimal"
)

const tradingDaysPerYear = 252

var hundred = decimal.NewFromInt(100)

// valuation is the decimal state of a portfolio while its figures are derived.
type valuation struct {
	assets     []dto.AssetResponse
	values     []decimal.Decimal
	total      decimal.Decimal
	investment decimal.Decimal
}

func roundFloat(d decimal.Decimal, places int32) float64 {
	return d.Round(places).InexactFloat64()
}

func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// valueAssets derives value, profit and recommendation figures for every asset.
func valueAssets(assets []entity.PortfolioAsset) valuation {
	v := valuation{
		assets: make([]dto.AssetResponse, len(assets)),
		values: make([]decimal.Decimal, len(assets)),
	}

	for i, a := range assets {
		qty := decimal.NewFromFloat(a.Quantity)
		value := qty.Mul(decimal.NewFromFloat(a.CurrentPrice))
		investment := qty.Mul(decimal.NewFromFloat(a.PurchasePrice))
		v.values[i] = value
		v.total = v.total.Add(value)
		v.investment = v.investment.Add(investment)

		profit := value.Sub(investment)
		v.assets[i] = dto.AssetResponse{
			ID:                   a.ID,
			AssetType:            a.AssetType,
			Symbol:               a.Symbol,
			Name:                 a.Name,
			Quantity:             a.Quantity,
			PurchasePrice:        a.PurchasePrice,
			CurrentPrice:         a.CurrentPrice,
			PredictedPrice:       a.PredictedPrice,
			Confidence:           a.Confidence,
			RiskScore:            a.RiskScore,
			Sector:               a.Sector,
			Region:               a.Region,
			PurchaseDate:         a.PurchaseDate,
			Value:                roundFloat(value, 2),
			Investment:           roundFloat(investment, 2),
			ProfitLoss:           roundFloat(profit, 2),
			ProfitLossPercentage: roundFloat(percentOf(profit, investment), 2),
		}

		trend := prediction.TrendStable
		if a.CurrentPrice != 0 {
			roi, _ := prediction.CalculateROI(a.CurrentPrice, a.PredictedPrice)
			trend, _ = prediction.GetTrendDirection(a.CurrentPrice, a.PredictedPrice)
			v.assets[i].ExpectedROI = math.Round(roi*100) / 100
		}
		v.assets[i].Trend = string(trend)
		v.assets[i].RecommendedAction = string(prediction.GetRecommendedAction(trend, a.Confidence))
	}

	for i := range v.assets {
		v.assets[i].Allocation = roundFloat(percentOf(v.values[i], v.total), 2)
	}
	return v
}

// weighted averages metric by asset value.
func (v valuation) weighted(metric func(dto.AssetResponse) float64) float64 {
	if v.total.IsZero() {
		return 0
	}
	sum := decimal.Zero
	for i, a := range v.assets {
		sum = sum.Add(v.values[i].Mul(decimal.NewFromFloat(metric(a))))
	}
	return roundFloat(sum.Div(v.total), 2)
}

func (v valuation) summary(snapshots []entity.PortfolioSnapshot, now time.Time, currency string) dto.PortfolioSummary {
	profit := v.total.Sub(v.investment)
	return dto.PortfolioSummary{
		TotalValue:           roundFloat(v.total, 2),
		TotalInvestment:      roundFloat(v.investment, 2),
		TotalProfitLoss:      roundFloat(profit, 2),
		ProfitLossPercentage: roundFloat(percentOf(profit, v.investment), 2),
		DailyChange:          changeSince(snapshots, v.total, now, 1),
		WeeklyChange:         changeSince(snapshots, v.total, now, 7),
		MonthlyChange:        changeSince(snapshots, v.total, now, 30),
		ExpectedROI:          v.weighted(func(a dto.AssetResponse) float64 { return a.ExpectedROI }),
		RiskScore:            v.weighted(func(a dto.AssetResponse) float64 { return float64(a.RiskScore) }),
		AssetCount:           len(v.assets),
		Currency:             currency,
		FormattedTotalValue:  utils.FormatCurrency(roundFloat(v.total, 2), currency),
	}
}

// changeSince compares current with the newest snapshot taken at least days ago.
// snapshots must be sorted by date ascending.
func changeSince(snapshots []entity.PortfolioSnapshot, current decimal.Decimal, now time.Time, days int) dto.ValueChange {
	cutoff := utils.StartOfDay(now).AddDate(0, 0, -days)

	var base *entity.PortfolioSnapshot
	for i := range snapshots {
		if snapshots[i].Date.After(cutoff) {
			break
		}
		base = &snapshots[i]
	}
	if base == nil || base.TotalValue == 0 {
		return dto.ValueChange{}
	}

	prev := decimal.NewFromFloat(base.TotalValue)
	change := current.Sub(prev)
	return dto.ValueChange{
		Change:     roundFloat(change, 2),
		Percentage: roundFloat(percentOf(change, prev), 2),
	}
}

// allocationBy groups asset values by key, largest first.
func (v valuation) allocationBy(key func(dto.AssetResponse) string) []dto.AllocationEntry {
	groups := make(map[string]decimal.Decimal)
	for i, a := range v.assets {
		name := key(a)
		if name == "" {
			name = "Other"
		}
		groups[name] = groups[name].Add(v.values[i])
	}

	entries := make([]dto.AllocationEntry, 0, len(groups))
	for name, value := range groups {
		entries = append(entries, dto.AllocationEntry{
			Name:       name,
			Value:      roundFloat(value, 2),
			Percentage: roundFloat(percentOf(value, v.total), 2),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// diversificationScore maps the Herfindahl index of asset weights onto 1..10.
// A single holding scores 1; n equal holdings score 1+9*(1-1/n). Empty portfolios score 0.
func (v valuation) diversificationScore() float64 {
	if len(v.assets) == 0 || v.total.IsZero() {
		return 0
	}
	hhi := decimal.Zero
	for _, value := range v.values {
		w := value.Div(v.total)
		hhi = hhi.Add(w.Mul(w))
	}
	score := decimal.NewFromInt(1).Add(decimal.NewFromInt(9).Mul(decimal.NewFromInt(1).Sub(hhi)))
	return roundFloat(score, 1)
}

// dailyReturns skips steps that start from zero.
func dailyReturns(values []float64) []float64 {
	returns := make([]float64, 0, len(values))
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			continue
		}
		returns = append(returns, values[i]/values[i-1]-1)
	}
	return returns
}

func meanStdDev(xs []float64) (mean, std float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	if len(xs) < 2 {
		return mean, 0
	}
	var ss float64
	for _, x := range xs {
		ss += (x - mean) * (x - mean)
	}
	return mean, math.Sqrt(ss / float64(len(xs)-1))
}

// riskMetrics returns annualised volatility in percent, the Sharpe ratio at a zero
// risk-free rate and the maximum drawdown in percent.
func riskMetrics(values []float64) (volatility, sharpe, maxDrawdown float64) {
	mean, std := meanStdDev(dailyReturns(values))
	annual := math.Sqrt(tradingDaysPerYear)
	volatility = round2(std * annual * 100)
	if std > 0 {
		sharpe = round2(mean / std * annual)
	}

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			if dd := (peak - v) / peak * 100; dd > maxDrawdown {
				maxDrawdown = dd
			}
		}
	}
	return volatility, sharpe, round2(maxDrawdown)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func recommendationFor(a dto.AssetResponse) dto.AssetRecommendation {
	var reasoning string
	switch prediction.Action(a.RecommendedAction) {
	case prediction.ActionBuy:
		reasoning = fmt.Sprintf("Predicted to rise %.2f%% with %.0f%% confidence", a.ExpectedROI, a.Confidence)
	case prediction.ActionSell:
		reasoning = fmt.Sprintf("Predicted to fall %.2f%% with %.0f%% confidence", -a.ExpectedROI, a.Confidence)
	default:
		if a.Confidence < 75 {
			reasoning = fmt.Sprintf("Confidence of %.0f%% is too low to act on", a.Confidence)
		} else {
			reasoning = fmt.Sprintf("Predicted change of %.2f%% is within the stable range", a.ExpectedROI)
		}
	}
	return dto.AssetRecommendation{
		AssetID:   a.ID,
		Symbol:    a.Symbol,
		Action:    a.RecommendedAction,
		Reasoning: reasoning,
		ROI:       a.ExpectedROI,
	}
}

func recommendationSummary(recs []dto.AssetRecommendation) string {
	counts := map[string]int{}
	for _, r := range recs {
		counts[r.Action]++
	}
	if len(recs) == 0 {
		return "No assets to review"
	}
	return fmt.Sprintf("%d to buy, %d to sell and %d to hold",
		counts[string(prediction.ActionBuy)], counts[string(prediction.ActionSell)], counts[string(prediction.ActionHold)])
}
