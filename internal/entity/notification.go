package entity

import (
	"time"

	"gorm.io/datatypes"
)

const (
	NotificationTypePrediction = "prediction"
	NotificationTypeAlert      = "alert"
	NotificationTypeNews       = "news"
	NotificationTypeSystem     = "system"
)

// Notification is a message shown in a user's inbox.
// Payload holds the deep link target, e.g. {"screen":"prediction","params":{"id":1}}.
type Notification struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Title     string         `gorm:"not null" json:"title"`
	Message   string         `gorm:"not null" json:"message"`
	Type      string         `gorm:"not null" json:"type"`
	Read      bool           `gorm:"not null;default:false" json:"read"`
	Payload   datatypes.JSON `json:"payload,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

// NotificationPayload is the structured form of Notification.Payload.
type NotificationPayload struct {
	Screen string         `json:"screen"`
	Params map[string]any `json:"params,omitempty"`
}
