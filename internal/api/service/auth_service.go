package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang-market-predictor/internal/api/dto"
	"golang-market-predictor/internal/api/repository"
	"golang-market-predictor/internal/entity"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/utils"

	"github.com/google/uuid"
)

var (
	riskTolerances = []string{"low", "medium", "high"}
	themes         = []string{"light", "dark", "system"}
)

// AuthService manages login sessions and the current user's profile.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
	Me(ctx context.Context, userID uint) (*dto.UserResponse, error)
	UpdateMe(ctx context.Context, userID uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
}

// NewAuthService creates a new auth service.
func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, ttl time.Duration, log *logger.Logger) AuthService {
	return &authService{users: users, sessions: sessions, ttl: ttl, logger: log, now: utils.TimeNowUTC}
}

type authService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	ttl      time.Duration
	logger   *logger.Logger
	now      func() time.Time
}

// Login opens a session for a known email. Passwords are only checked for presence.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, invalidArgument("email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	session := &entity.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, session, s.ttl); err != nil {
		s.logger.ErrorContext(ctx, "Failed to save session", logger.ErrorField(err), logger.Field("user_id", user.ID))
		return nil, err
	}

	s.logger.InfoContext(ctx, "User logged in", logger.Field("user_id", user.ID))
	return &dto.LoginResponse{Token: session.Token, ExpiresAt: session.ExpiresAt, User: toUserResponse(user)}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Authenticate resolves a bearer token into its session.
func (s *authService) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, fmt.Errorf("missing token: %w", ErrUnauthorized)
	}
	session, err := s.sessions.Find(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("unknown session: %w", ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}
	if session.Expired(s.now()) {
		_ = s.sessions.Delete(ctx, token)
		return nil, fmt.Errorf("session expired: %w", ErrUnauthorized)
	}
	return session, nil
}

func (s *authService) Me(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("user %d", userID))
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *authService) UpdateMe(ctx context.Context, userID uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("user %d", userID))
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, invalidArgument("name must not be empty")
		}
		user.Name = name
	}
	if req.PreferredCurrency != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.PreferredCurrency))
		if !isCurrencyCode(code) {
			return nil, invalidArgument("preferred_currency must be a 3-letter ISO code")
		}
		user.PreferredCurrency = code
	}
	if req.RiskTolerance != nil {
		risk := strings.ToLower(*req.RiskTolerance)
		if !utils.ContainsString(riskTolerances, risk) {
			return nil, invalidArgument("risk_tolerance must be one of %s", strings.Join(riskTolerances, ", "))
		}
		user.RiskTolerance = risk
	}
	if req.Theme != nil {
		theme := strings.ToLower(*req.Theme)
		if !utils.ContainsString(themes, theme) {
			return nil, invalidArgument("theme must be one of %s", strings.Join(themes, ", "))
		}
		user.Theme = theme
	}
	if req.NotificationsEnabled != nil {
		user.NotificationsEnabled = *req.NotificationsEnabled
	}

	user.UpdatedAt = s.now()
	if err := s.users.Update(ctx, user); err != nil {
		s.logger.ErrorContext(ctx, "Failed to update user", logger.ErrorField(err), logger.Field("user_id", userID))
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                   u.ID,
		Email:                u.Email,
		Name:                 u.Name,
		AvatarURL:            u.AvatarURL,
		PreferredCurrency:    u.PreferredCurrency,
		RiskTolerance:        u.RiskTolerance,
		NotificationsEnabled: u.NotificationsEnabled,
		Theme:                u.Theme,
		CreatedAt:            u.CreatedAt,
	}
}
