package prediction

import (
	"math"
	"math/rand/v2"
	"time"
)

const (
	// ForecastLength is the number of forward values GenerateForecastData produces.
	ForecastLength = 7
	// DefaultVolatility is the per-step half-width used when no volatility is given.
	DefaultVolatility = 0.02
)

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// NewSeededRandom returns a deterministic source for reproducible forecasts.
func NewSeededRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type forecastOptions struct {
	volatility float64
	random     RandomSource
}

// ForecastOption customises GenerateForecastData.
type ForecastOption func(*forecastOptions)

// WithVolatility overrides DefaultVolatility.
func WithVolatility(volatility float64) ForecastOption {
	return func(o *forecastOptions) {
		o.volatility = volatility
	}
}

// WithRandom injects the random source. A nil source keeps the default.
func WithRandom(src RandomSource) ForecastOption {
	return func(o *forecastOptions) {
		if src != nil {
			o.random = src
		}
	}
}

// GenerateForecastData produces ForecastLength synthetic values following trend,
// seeded from the last element of series. Every step draws
// r = 1 + (u*2-1)*volatility and applies it as:
//
//	up:     v * (1 + volatility*r)
//	down:   v * (1 - volatility*r)
//	stable: v * r
//
// Each value is rounded to two decimals before it seeds the next step, so rounding
// error compounds across the horizon. Trends other than up and down are treated as stable.
func GenerateForecastData(series []float64, trend Trend, opts ...ForecastOption) ([]float64, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}

	o := forecastOptions{
		volatility: DefaultVolatility,
		random:     globalSource{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.volatility) || math.IsInf(o.volatility, 0) || o.volatility < 0 {
		return nil, ErrInvalidVolatility
	}

	current := series[len(series)-1]
	forecast := make([]float64, 0, ForecastLength)
	for i := 0; i < ForecastLength; i++ {
		r := 1 + (o.random.Float64()*2-1)*o.volatility

		switch trend {
		case TrendUp:
			current = current * (1 + o.volatility*r)
		case TrendDown:
			current = current * (1 - o.volatility*r)
		default:
			current = current * r
		}

		current = roundTo2(current)
		if math.IsInf(current, 0) || math.IsNaN(current) {
			return nil, ErrForecastOverflow
		}
		forecast = append(forecast, current)
	}

	return forecast, nil
}

// ForecastDates returns n consecutive daily timestamps following last.
func ForecastDates(last time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = last.AddDate(0, 0, i+1)
	}
	return dates
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
