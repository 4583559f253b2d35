package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang-market-predictor/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workerYAML = `
app:
  name: market-predictor-worker
worker:
  stream_timeout: 1m
jobs:
  - name: refresh-forecasts
    type: forecast_refresh
    cron: "*/15 * * * *"
    timeout: 2m
    payload:
      volatility: 0.03
      max_concurrent: 4
  - name: ingest-news
    type: news_ingest
    cron: "@hourly"
    payload:
      feeds:
        - url: https://example.com/rss
          source: Example
`

func TestLoad_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(workerYAML), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.Worker.StreamTimeout)
	assert.Equal(t, 30*time.Second, cfg.Worker.ShutdownTimeout)
	assert.Equal(t, 60, cfg.MarketData.MaxRequestPerMinute)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	require.Len(t, cfg.Jobs, 2)
	assert.Equal(t, 2*time.Minute, cfg.Jobs[0].Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Jobs[1].Timeout)
}

func TestJobDefinitions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(workerYAML), 0o600))
	cfg, err := Load(path)
	require.NoError(t, err)

	jobs, err := cfg.JobDefinitions()
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, entity.JobTypeForecastRefresh, jobs[0].Type)
	var payload struct {
		Volatility    float64 `json:"volatility"`
		MaxConcurrent int     `json:"max_concurrent"`
	}
	require.NoError(t, json.Unmarshal(jobs[0].Payload, &payload))
	assert.Equal(t, 0.03, payload.Volatility)
	assert.Equal(t, 4, payload.MaxConcurrent)

	var news struct {
		Feeds []struct {
			URL    string `json:"url"`
			Source string `json:"source"`
		} `json:"feeds"`
	}
	require.NoError(t, json.Unmarshal(jobs[1].Payload, &news))
	require.Len(t, news.Feeds, 1)
	assert.Equal(t, "https://example.com/rss", news.Feeds[0].URL)
	assert.Equal(t, "Example", news.Feeds[0].Source)
}

func TestJobDefinitions_RejectsDuplicateNames(t *testing.T) {
	cfg := &Config{Jobs: []Job{
		{Name: "a", Type: "price_sync"},
		{Name: "a", Type: "news_ingest"},
	}}
	_, err := cfg.JobDefinitions()
	assert.ErrorContains(t, err, "duplicate job name")
}

func TestJobDefinitions_EmptyPayloadIsObject(t *testing.T) {
	cfg := &Config{Jobs: []Job{{Name: "snap", Type: "portfolio_snapshot"}}}
	jobs, err := cfg.JobDefinitions()
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(jobs[0].Payload))
}
