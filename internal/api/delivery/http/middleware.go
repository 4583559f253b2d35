package http

import (
	"net/http"
	"strings"
	"time"

	"golang-market-predictor/internal/api/dto"
	"golang-market-predictor/internal/api/service"
	"golang-market-predictor/internal/entity"
	"golang-market-predictor/pkg/logger"

	"github.com/labstack/echo/v4"
)

const sessionContextKey = "session"

// RequestLogger logs every request and carries the request id into the request context.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
				c.SetRequest(req.WithContext(logger.WithContext(req.Context(), id)))
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			log.InfoContext(c.Request().Context(), "HTTP request",
				logger.StringField("method", req.Method),
				logger.StringField("path", req.URL.Path),
				logger.IntField("status", c.Response().Status),
				logger.Field("latency", time.Since(start)))
			return nil
		}
	}
}

// SessionAuth resolves the bearer token into a session and rejects requests without one.
func SessionAuth(auth service.AuthService, log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request())
			session, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return respondError(c, log, err)
			}
			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// currentSession returns the session stored by SessionAuth.
func currentSession(c echo.Context) *entity.Session {
	s, _ := c.Get(sessionContextKey).(*entity.Session)
	return s
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
}
