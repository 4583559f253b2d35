package repository

import (
	"testing"
	"time"

	"golang-market-predictor/internal/worker/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNewsAnalysis(t *testing.T) {
	text := "```json\n" + `{
  "summary": "Gold rallies on rate cut bets.",
  "category": "Commodities",
  "sentiment": "Positive",
  "impact_level": "HIGH",
  "topics": ["Gold", " rates ", "gold", ""],
  "related_assets": ["xau", "XAU", "usd"]
}` + "\n```"

	got, err := parseNewsAnalysis(text)
	require.NoError(t, err)
	assert.Equal(t, "Gold rallies on rate cut bets.", got.Summary)
	assert.Equal(t, "positive", got.Sentiment)
	assert.Equal(t, "high", got.ImpactLevel)
	assert.Equal(t, []string{"gold", "rates"}, got.Topics)
	assert.Equal(t, []string{"XAU", "USD"}, got.RelatedAssets)
}

func TestParseNewsAnalysis_UnknownEnumsFallBack(t *testing.T) {
	got, err := parseNewsAnalysis(`{"summary":"x","sentiment":"bullish","impact_level":"huge"}`)
	require.NoError(t, err)
	assert.Equal(t, "neutral", got.Sentiment)
	assert.Equal(t, "low", got.ImpactLevel)
	assert.Empty(t, got.Topics)
}

func TestParseNewsAnalysis_Invalid(t *testing.T) {
	_, err := parseNewsAnalysis("")
	assert.Error(t, err)

	_, err = parseNewsAnalysis("not json")
	assert.Error(t, err)
}

func TestBuildAnalyzeNewsPrompt(t *testing.T) {
	prompt := BuildAnalyzeNewsPrompt(dto.NewsAnalysisInput{
		Title:       "Fed holds rates",
		Source:      "Reuters",
		PublishedAt: time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC),
		Content:     "The Federal Reserve left rates unchanged.",
	})
	assert.Contains(t, prompt, "Title: Fed holds rates")
	assert.Contains(t, prompt, "Source: Reuters")
	assert.Contains(t, prompt, "Published: Mar 10, 2024 2:30 PM")
	assert.Contains(t, prompt, "The Federal Reserve left rates unchanged.")
}
