package dto

import (
	"encoding/json"
	"time"
)

type NotificationResponse struct {
	ID           uint            `json:"id"`
	Title        string          `json:"title"`
	Message      string          `json:"message"`
	Type         string          `json:"type"`
	Read         bool            `json:"read"`
	Payload      json.RawMessage `json:"payload,omitempty" swaggertype:"object"`
	CreatedAt    time.Time       `json:"created_at"`
	RelativeTime string          `json:"relative_time"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}
