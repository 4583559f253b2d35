package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout      = "Jan 2, 2006"
	DateTimeLayout  = "Jan 2, 2006 3:04 PM"
	ChartDateLayout = "01/02"
	ISODateLayout   = "2006-01-02"
)

// TimeNowUTC returns the current time in UTC.
func TimeNowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

func FormatChartDate(t time.Time) string {
	return t.Format(ChartDateLayout)
}

// FormatDayName returns the short weekday, e.g. "Mon".
func FormatDayName(t time.Time) string {
	return t.Format("Mon")
}

// RelativeTime describes how long before now t happened, e.g. "3 hours ago".
// Anything under a minute, or in the future, is "Just now".
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	minutes := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))

	switch {
	case days > 0:
		return plural(days, "day")
	case hours > 0:
		return plural(hours, "hour")
	case minutes > 0:
		return plural(minutes, "minute")
	default:
		return "Just now"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
