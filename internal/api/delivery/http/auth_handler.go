package http

import (
	"net/http"

	"golang-market-predictor/internal/api/dto"
	"golang-market-predictor/internal/api/service"
	"golang-market-predictor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles login, logout and the current user's profile.
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// RegisterRoutes registers the auth and profile routes on the API root group.
// Everything except login is guarded by requireSession.
func (h *AuthHandler) RegisterRoutes(g *echo.Group, requireSession echo.MiddlewareFunc) {
	g.POST("/auth/login", h.Login)
	g.POST("/auth/logout", h.Logout, requireSession)
	g.GET("/me", h.GetMe, requireSession)
	g.PATCH("/me", h.UpdateMe, requireSession)
}

// Login godoc
// @Summary Log in
// @Description Open a session for a known user
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials  body  dto.LoginRequest  true  "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	resp, err := h.authService.Login(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Log out
// @Tags auth
// @Security BearerAuth
// @Success 204 {object} nil
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session := currentSession(c)
	if session == nil {
		return unauthorized(c)
	}
	if err := h.authService.Logout(c.Request().Context(), session.Token); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetMe godoc
// @Summary Get the current user
// @Tags auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /me [get]
func (h *AuthHandler) GetMe(c echo.Context) error {
	session := currentSession(c)
	if session == nil {
		return unauthorized(c)
	}
	resp, err := h.authService.Me(c.Request().Context(), session.UserID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateMe godoc
// @Summary Update the current user
// @Description Partially update name and preferences
// @Tags auth
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   user  body  dto.UpdateUserRequest  true  "Fields to change"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /me [patch]
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	session := currentSession(c)
	if session == nil {
		return unauthorized(c)
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	resp, err := h.authService.UpdateMe(c.Request().Context(), session.UserID, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}
