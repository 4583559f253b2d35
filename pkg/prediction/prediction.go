// Package prediction computes the metrics shown next to every market prediction:
// return on investment, confidence bucket, trend, recommended action and a
// synthetic forward forecast. All functions are pure and safe for concurrent use.
package prediction

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrZeroCurrentValue is returned when a percentage change is requested against a zero base.
	ErrZeroCurrentValue = errors.New("prediction: current value must not be zero")
	// ErrEmptySeries is returned when a forecast is requested from an empty observation series.
	ErrEmptySeries = errors.New("prediction: observation series is empty")
	// ErrInvalidVolatility is returned for a negative, infinite or NaN volatility.
	ErrInvalidVolatility = errors.New("prediction: volatility must be a finite non-negative number")
	// ErrForecastOverflow is returned when a forecast step leaves the float64 range.
	ErrForecastOverflow = errors.New("prediction: forecast value overflowed")
	// ErrUnknownTrend is returned by ParseTrend for values outside up/down/stable.
	ErrUnknownTrend = errors.New("prediction: unknown trend")
	// ErrUnknownAction is returned by ParseAction for values outside buy/sell/hold.
	ErrUnknownAction = errors.New("prediction: unknown action")
)

// Trend is the coarse direction of an expected move.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// ParseTrend converts a case-insensitive string into a Trend.
func ParseTrend(s string) (Trend, error) {
	switch Trend(strings.ToLower(strings.TrimSpace(s))) {
	case TrendUp:
		return TrendUp, nil
	case TrendDown:
		return TrendDown, nil
	case TrendStable:
		return TrendStable, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTrend, s)
}

// ConfidenceLevel is the qualitative bucket of a 0-100 confidence score.
type ConfidenceLevel string

const (
	ConfidenceLow      ConfidenceLevel = "low"
	ConfidenceMedium   ConfidenceLevel = "medium"
	ConfidenceHigh     ConfidenceLevel = "high"
	ConfidenceVeryHigh ConfidenceLevel = "very_high"
)

// rank orders the buckets from 0 (low) to 3 (very_high).
func (l ConfidenceLevel) rank() int {
	switch l {
	case ConfidenceVeryHigh:
		return 3
	case ConfidenceHigh:
		return 2
	case ConfidenceMedium:
		return 1
	default:
		return 0
	}
}

// Action is the recommendation derived from a trend and its confidence.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
	ActionHold Action = "hold"
)

// ParseAction converts a case-insensitive string into an Action.
func ParseAction(s string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case ActionBuy:
		return ActionBuy, nil
	case ActionSell:
		return ActionSell, nil
	case ActionHold:
		return ActionHold, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}
