package entity

import (
	"encoding/json"
	"time"
)

type JobType string

const (
	JobTypeForecastRefresh     JobType = "forecast_refresh"
	JobTypeNewsIngest          JobType = "news_ingest"
	JobTypePriceSync           JobType = "price_sync"
	JobTypePortfolioSnapshot   JobType = "portfolio_snapshot"
	JobTypeRecommendationAlert JobType = "recommendation_alert"
)

// Job triggers recorded on job executions.
const (
	TriggerSchedule = "schedule"
	TriggerStream   = "stream"
	TriggerStartup  = "startup"
)

// Job is a worker job definition. Jobs are declared in the worker config, not stored.
type Job struct {
	Name    string
	Type    JobType
	Cron    string
	Timeout time.Duration
	Payload json.RawMessage
}
