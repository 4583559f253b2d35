package entity

import (
	"time"

	"gorm.io/datatypes"
)

type JobStatus string

const (
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusSkipped   JobStatus = "skipped"
)

// JobExecution records one run of a worker job.
type JobExecution struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	JobName     string         `gorm:"not null;index" json:"job_name"`
	JobType     string         `gorm:"not null" json:"job_type"`
	Trigger     string         `gorm:"not null" json:"trigger"`
	Status      JobStatus      `gorm:"type:varchar(20);not null" json:"status"`
	Payload     datatypes.JSON `json:"payload,omitempty"`
	Output      string         `json:"output,omitempty"`
	Error       string         `json:"error,omitempty"`
	StartedAt   time.Time      `gorm:"not null;index" json:"started_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	DurationMs  int64          `json:"duration_ms"`
}

func (JobExecution) TableName() string {
	return "job_executions"
}
