package dto

import "time"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UserResponse is the account of the current session.
type UserResponse struct {
	ID                   uint      `json:"id"`
	Email                string    `json:"email"`
	Name                 string    `json:"name"`
	AvatarURL            string    `json:"avatar_url,omitempty"`
	PreferredCurrency    string    `json:"preferred_currency"`
	RiskTolerance        string    `json:"risk_tolerance"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	Theme                string    `json:"theme"`
	CreatedAt            time.Time `json:"created_at"`
}

// UpdateUserRequest is a partial update; nil fields are left unchanged.
type UpdateUserRequest struct {
	Name                 *string `json:"name"`
	PreferredCurrency    *string `json:"preferred_currency"`
	RiskTolerance        *string `json:"risk_tolerance"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	Theme                *string `json:"theme"`
}
