package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAlert() RecommendationAlert {
	return RecommendationAlert{
		Symbol:         "USD_TRY",
		Name:           "US Dollar / Turkish Lira",
		AssetType:      "currency",
		Action:         "buy",
		Trend:          "up",
		Confidence:     82,
		CurrentValue:   32.15,
		PredictedValue: 33.4,
		ExpectedROI:    3.89,
		TimeFrame:      "1m",
		Currency:       "TRY",
	}
}

func TestFormatRecommendationAlert(t *testing.T) {
	msg := FormatRecommendationAlert(sampleAlert())

	assert.Contains(t, msg, "🟢 *BUY USD\\_TRY* (currency)")
	assert.Contains(t, msg, "₺32.15")
	assert.Contains(t, msg, "₺33.40")
	assert.Contains(t, msg, "+3.89%")
	assert.Contains(t, msg, "82%")
}

func TestFormatRecommendationAlerts_SplitsLongBatches(t *testing.T) {
	alerts := make([]RecommendationAlert, 60)
	for i := range alerts {
		alerts[i] = sampleAlert()
	}

	messages := FormatRecommendationAlerts(alerts)
	require.Greater(t, len(messages), 1)
	for _, m := range messages {
		assert.LessOrEqual(t, len(m), maxMessageLen)
	}
	assert.True(t, strings.HasPrefix(messages[1], "🔔 *Prediction Alerts (part 2)*"))
}

func TestFormatRecommendationAlerts_Empty(t *testing.T) {
	assert.Nil(t, FormatRecommendationAlerts(nil))
}

func TestNewClient_EmptyTokenDisabled(t *testing.T) {
	n, err := NewClient("", 0)
	require.NoError(t, err)
	assert.False(t, n.Enabled())
	assert.NoError(t, n.SendMessage("ignored"))
}
