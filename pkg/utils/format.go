package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"TRY": "₺",
}

// FormatCurrency renders value with two decimals and thousands separators,
// prefixed with the currency symbol, or the ISO code when no symbol is known.
func FormatCurrency(value float64, currency string) string {
	currency = strings.ToUpper(currency)
	if currency == "" {
		currency = "USD"
	}
	prefix, ok := currencySymbols[currency]
	if !ok {
		prefix = currency + " "
	}

	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	return sign + prefix + humanize.FormatFloat("#,###.##", value)
}

// FormatPercentage renders a percentage value (12.5 means 12.5%) with two decimals.
func FormatPercentage(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64) + "%"
}

// FormatSignedPercentage is FormatPercentage with an explicit "+" for gains.
func FormatSignedPercentage(value float64) string {
	if value > 0 {
		return "+" + FormatPercentage(value)
	}
	return FormatPercentage(value)
}

// FormatNumber inserts thousands separators.
func FormatNumber(value float64) string {
	return humanize.Commaf(value)
}

var compactUnits = []struct {
	threshold float64
	suffix    string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// FormatCompactNumber abbreviates large numbers to two significant digits, e.g. 1.2K or 34M.
// A value that rounds up to 1000 of a unit moves to the next unit (999999 is 1M).
func FormatCompactNumber(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	for i, unit := range compactUnits {
		if value < unit.threshold {
			continue
		}
		s, rounded := compactScaled(value / unit.threshold)
		if rounded >= 1000 && i > 0 {
			s, _ = compactScaled(value / compactUnits[i-1].threshold)
			return sign + s + compactUnits[i-1].suffix
		}
		return sign + s + unit.suffix
	}

	if math.Round(value) >= 1000 {
		smallest := compactUnits[len(compactUnits)-1]
		s, _ := compactScaled(value / smallest.threshold)
		return sign + s + smallest.suffix
	}
	return sign + strconv.FormatFloat(math.Round(value), 'f', 0, 64)
}

// compactScaled renders scaled with one decimal below 10 and none above.
// It also returns the rendered value so callers can detect a carry.
func compactScaled(scaled float64) (string, float64) {
	decimals := 0
	if scaled < 10 {
		decimals = 1
	}
	s := strconv.FormatFloat(scaled, 'f', decimals, 64)
	rounded, _ := strconv.ParseFloat(s, 64)
	return strings.TrimSuffix(s, ".0"), rounded
}
