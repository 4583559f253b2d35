package config

import (
	"encoding/json"
	"fmt"
	"time"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/pkg/config"
)

// Worker holds worker-loop settings.
type Worker struct {
	StreamTimeout   time.Duration `mapstructure:"stream_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// RunOnStartup lists job names executed once when the worker boots.
	RunOnStartup []string `mapstructure:"run_on_startup"`
}

// Job is one scheduled job as declared in YAML.
type Job struct {
	Name    string                 `mapstructure:"name"`
	Type    string                 `mapstructure:"type"`
	Cron    string                 `mapstructure:"cron"`
	Timeout time.Duration          `mapstructure:"timeout"`
	Payload map[string]interface{} `mapstructure:"payload"`
}

// Gemini holds the configuration for the Gemini API. An empty key disables news analysis.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// MarketData holds the configuration for the quote provider.
type MarketData struct {
	MaxRequestPerMinute int `mapstructure:"max_request_per_minute"`
}

// Config holds the full configuration for the worker service.
type Config struct {
	App        config.App      `mapstructure:"app"`
	Logger     config.Logger   `mapstructure:"logger"`
	Database   config.Database `mapstructure:"database"`
	Redis      config.Redis    `mapstructure:"redis"`
	Worker     Worker          `mapstructure:"worker"`
	Jobs       []Job           `mapstructure:"jobs"`
	Gemini     Gemini          `mapstructure:"gemini"`
	MarketData MarketData      `mapstructure:"market_data"`
	Telegram   config.Telegram `mapstructure:"telegram"`
}

// Load loads the worker configuration from the given path and fills in defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Worker.StreamTimeout <= 0 {
		c.Worker.StreamTimeout = 2 * time.Minute
	}
	if c.Worker.ShutdownTimeout <= 0 {
		c.Worker.ShutdownTimeout = 30 * time.Second
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.0-flash"
	}
	if c.Gemini.MaxRequestPerMinute <= 0 {
		c.Gemini.MaxRequestPerMinute = 10
	}
	if c.MarketData.MaxRequestPerMinute <= 0 {
		c.MarketData.MaxRequestPerMinute = 60
	}
	for i := range c.Jobs {
		if c.Jobs[i].Timeout <= 0 {
			c.Jobs[i].Timeout = 5 * time.Minute
		}
	}
}

// JobDefinitions converts the configured jobs into entity jobs.
func (c *Config) JobDefinitions() ([]entity.Job, error) {
	jobs := make([]entity.Job, 0, len(c.Jobs))
	seen := make(map[string]bool, len(c.Jobs))
	for _, j := range c.Jobs {
		if j.Name == "" {
			return nil, fmt.Errorf("job of type %q has no name", j.Type)
		}
		if seen[j.Name] {
			return nil, fmt.Errorf("duplicate job name %q", j.Name)
		}
		seen[j.Name] = true

		payload := json.RawMessage("{}")
		if len(j.Payload) > 0 {
			raw, err := json.Marshal(j.Payload)
			if err != nil {
				return nil, fmt.Errorf("job %q: invalid payload: %w", j.Name, err)
			}
			payload = raw
		}
		jobs = append(jobs, entity.Job{
			Name:    j.Name,
			Type:    entity.JobType(j.Type),
			Cron:    j.Cron,
			Timeout: j.Timeout,
			Payload: payload,
		})
	}
	return jobs, nil
}
