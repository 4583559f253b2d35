package config

import (
	"fmt"
	"math"
	"time"

	"golang-market-predictor/pkg/config"
)

// Session holds login session settings.
type Session struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Prediction holds prediction serving settings.
type Prediction struct {
	DefaultVolatility float64       `mapstructure:"default_volatility"`
	ForecastCacheTTL  time.Duration `mapstructure:"forecast_cache_ttl"`
	ListCacheTTL      time.Duration `mapstructure:"list_cache_ttl"`
}

// Config holds the full configuration for the API service.
type Config struct {
	App        config.App      `mapstructure:"app"`
	Logger     config.Logger   `mapstructure:"logger"`
	Database   config.Database `mapstructure:"database"`
	Redis      config.Redis    `mapstructure:"redis"`
	API        config.API      `mapstructure:"api"`
	Session    Session         `mapstructure:"session"`
	Prediction Prediction      `mapstructure:"prediction"`
}

// Load loads the API configuration from the given path and fills in defaults.
// A default_volatility of 0 is kept; only an absent key falls back to 0.02.
func Load(path string) (*Config, error) {
	cfg := Config{Prediction: Prediction{DefaultVolatility: 0.02}}
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	if math.IsNaN(cfg.Prediction.DefaultVolatility) || math.IsInf(cfg.Prediction.DefaultVolatility, 0) ||
		cfg.Prediction.DefaultVolatility < 0 {
		return nil, fmt.Errorf("prediction.default_volatility must be a finite non-negative number, got %v",
			cfg.Prediction.DefaultVolatility)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Session.TTL <= 0 {
		c.Session.TTL = 24 * time.Hour
	}
	if c.Prediction.ForecastCacheTTL <= 0 {
		c.Prediction.ForecastCacheTTL = 10 * time.Minute
	}
	if c.Prediction.ListCacheTTL <= 0 {
		c.Prediction.ListCacheTTL = 30 * time.Second
	}
	if c.API.Port == 0 {
		c.API.Port = 8080
	}
}
