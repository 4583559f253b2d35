package telegram

import (
	"fmt"
	"strings"

	"golang-market-predictor/pkg/utils"
)

// maxMessageLen stays under Telegram's 4096 character limit.
const maxMessageLen = 4090

// RecommendationAlert is a buy or sell call raised for one prediction.
type RecommendationAlert struct {
	Symbol         string
	Name           string
	AssetType      string
	Action         string
	Trend          string
	Confidence     float64
	CurrentValue   float64
	PredictedValue float64
	ExpectedROI    float64
	TimeFrame      string
	Currency       string
}

// FormatRecommendationAlert renders one alert as Markdown.
func FormatRecommendationAlert(a RecommendationAlert) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s *%s %s* (%s)\n", actionIcon(a.Action), strings.ToUpper(a.Action), escapeMarkdown(a.Symbol), a.AssetType))
	if a.Name != "" {
		b.WriteString(fmt.Sprintf("🏷 %s\n", escapeMarkdown(a.Name)))
	}
	b.WriteString(fmt.Sprintf("💰 *Current:* %s\n", utils.FormatCurrency(a.CurrentValue, a.Currency)))
	b.WriteString(fmt.Sprintf("🎯 *Predicted (%s):* %s\n", a.TimeFrame, utils.FormatCurrency(a.PredictedValue, a.Currency)))
	b.WriteString(fmt.Sprintf("%s *Expected ROI:* %s\n", trendIcon(a.Trend), utils.FormatSignedPercentage(a.ExpectedROI)))
	b.WriteString(fmt.Sprintf("📊 *Confidence:* %.0f%%\n", a.Confidence))

	return b.String()
}

// FormatRecommendationAlerts joins alerts into as few messages as fit the length limit.
func FormatRecommendationAlerts(alerts []RecommendationAlert) []string {
	if len(alerts) == 0 {
		return nil
	}

	var messages []string
	var current strings.Builder
	part := 1

	startNewPart := func() {
		current.Reset()
		if part == 1 {
			current.WriteString("🔔 *Prediction Alerts*\n\n")
		} else {
			current.WriteString(fmt.Sprintf("🔔 *Prediction Alerts (part %d)*\n\n", part))
		}
	}
	startNewPart()

	for _, a := range alerts {
		entry := FormatRecommendationAlert(a) + "\n"
		if current.Len()+len(entry) > maxMessageLen {
			messages = append(messages, current.String())
			part++
			startNewPart()
		}
		current.WriteString(entry)
	}

	return append(messages, current.String())
}

func actionIcon(action string) string {
	switch strings.ToLower(action) {
	case "buy":
		return "🟢"
	case "sell":
		return "🔴"
	default:
		return "🟡"
	}
}

func trendIcon(trend string) string {
	switch strings.ToLower(trend) {
	case "up":
		return "📈"
	case "down":
		return "📉"
	default:
		return "➖"
	}
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
