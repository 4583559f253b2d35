package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "app:\n  name: market-predictor-api\n"))
	require.NoError(t, err)

	assert.Equal(t, 0.02, cfg.Prediction.DefaultVolatility)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 10*time.Minute, cfg.Prediction.ForecastCacheTTL)
	assert.Equal(t, 30*time.Second, cfg.Prediction.ListCacheTTL)
	assert.Equal(t, 8080, cfg.API.Port)
}

func TestLoad_ZeroVolatilityIsKept(t *testing.T) {
	cfg, err := Load(writeConfig(t, "prediction:\n  default_volatility: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Prediction.DefaultVolatility)
}

func TestLoad_ExplicitVolatility(t *testing.T) {
	cfg, err := Load(writeConfig(t, "prediction:\n  default_volatility: 0.05\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.05, cfg.Prediction.DefaultVolatility)
}

func TestLoad_RejectsNegativeVolatility(t *testing.T) {
	_, err := Load(writeConfig(t, "prediction:\n  default_volatility: -0.1\n"))
	assert.ErrorContains(t, err, "default_volatility")
}
