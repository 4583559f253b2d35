package entity

import "time"

// User is an account holder together with their display preferences.
type User struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Email                string    `gorm:"unique;not null" json:"email"`
	Name                 string    `gorm:"not null" json:"name"`
	AvatarURL            string    `json:"avatar_url,omitempty"`
	PreferredCurrency    string    `gorm:"not null;default:USD" json:"preferred_currency"`
	RiskTolerance        string    `gorm:"not null;default:medium" json:"risk_tolerance"`
	NotificationsEnabled bool      `gorm:"not null;default:true" json:"notifications_enabled"`
	Theme                string    `gorm:"not null;default:system" json:"theme"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Session is an authenticated login. It lives in redis, not Postgres.
type Session struct {
	Token     string    `json:"token"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
