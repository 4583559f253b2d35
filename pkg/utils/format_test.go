package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		value    float64
		currency string
		want     string
	}{
		{1234.56, "USD", "$1,234.56"},
		{1234.5, "usd", "$1,234.50"},
		{0, "", "$0.00"},
		{-42.1, "EUR", "-€42.10"},
		{1000000, "CHF", "CHF 1,000,000.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.value, tt.currency))
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "3.50%", FormatPercentage(3.5))
	assert.Equal(t, "-1.25%", FormatPercentage(-1.25))
	assert.Equal(t, "+3.78%", FormatSignedPercentage(3.78))
	assert.Equal(t, "0.00%", FormatSignedPercentage(0))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
	assert.Equal(t, "999", FormatNumber(999))
}

func TestFormatCompactNumber(t *testing.T) {
	tests := map[float64]string{
		999:      "999",
		1234:     "1.2K",
		12345:    "12K",
		1500000:  "1.5M",
		2e9:      "2B",
		3.4e12:   "3.4T",
		-4500:    "-4.5K",
		999999:   "1M",
		999500:   "1M",
		999400:   "999K",
		999.6:    "1K",
		9.9996e8: "1B",
		-999999:  "-1M",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatCompactNumber(in), "input %v", in)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"seconds", now.Add(-30 * time.Second), "Just now"},
		{"future", now.Add(time.Hour), "Just now"},
		{"one minute", now.Add(-time.Minute), "1 minute ago"},
		{"minutes", now.Add(-45 * time.Minute), "45 minutes ago"},
		{"one hour", now.Add(-90 * time.Minute), "1 hour ago"},
		{"hours", now.Add(-5 * time.Hour), "5 hours ago"},
		{"one day", now.Add(-30 * time.Hour), "1 day ago"},
		{"days", now.AddDate(0, 0, -3), "3 days ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(tt.at, now))
		})
	}
}

func TestDateFormats(t *testing.T) {
	d := time.Date(2024, 1, 5, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "Jan 5, 2024", FormatDate(d))
	assert.Equal(t, "01/05", FormatChartDate(d))
	assert.Equal(t, "Jan 5, 2024 3:04 PM", FormatDateTime(d))
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), StartOfDay(d))
}

func TestText(t *testing.T) {
	assert.Equal(t, "ab", CleanToValidUTF8("a\x00b"))
	assert.Equal(t, "a b c", CollapseWhitespace("  a \n b\tc "))
	assert.Equal(t, "hel…", Truncate("hello", 3))
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.True(t, ContainsString([]string{"Reuters.com"}, "reuters.com"))
	assert.False(t, ContainsString(nil, "x"))
}
