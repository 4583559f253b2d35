package dto

import (
	"encoding/json"
	"time"
)

// ExecutionQuery holds the filters of the job execution history.
type ExecutionQuery struct {
	Job   string `query:"job"`
	Limit int    `query:"limit"`
}

// JobExecutionResponse is the DTO for API responses containing execution history details.
type JobExecutionResponse struct {
	ID          uint            `json:"id"`
	JobName     string          `json:"job_name"`
	JobType     string          `json:"job_type"`
	Trigger     string          `json:"trigger"`
	Status      string          `json:"status"`
	Payload     json.RawMessage `json:"payload,omitempty" swaggertype:"object"`
	Output      string          `json:"output,omitempty"`
	Error       string          `json:"error,omitempty"`
	StartedAt   time.Time       `json:"started_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	Duration    int64           `json:"duration_ms"`
}
