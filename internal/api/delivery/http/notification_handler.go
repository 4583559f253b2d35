package http

import (
	"net/http"

	"golang-market-predictor/internal/api/dto"
	"golang-market-predictor/internal/api/service"
	"golang-market-predictor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// NotificationHandler handles HTTP requests for the session user's notifications.
type NotificationHandler struct {
	notificationService service.NotificationService
	logger              *logger.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService service.NotificationService, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService, logger: logger}
}

// RegisterRoutes registers the notification routes. The group must be guarded by SessionAuth.
func (h *NotificationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListNotifications)
	g.GET("/unread-count", h.UnreadCount)
	g.POST("/read-all", h.MarkAllRead)
	g.POST("/:id/read", h.MarkRead)
}

// ListNotifications godoc
// @Summary List notifications
// @Tags notifications
// @Produce  json
// @Security BearerAuth
// @Success 200 {array} dto.NotificationResponse
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	session := currentSession(c)
	if session == nil {
		return unauthorized(c)
	}
	items, err := h.notificationService.List(c.Request().Context(), session.UserID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, items)
}

// UnreadCount godoc
// @Summary Count unread notifications
// @Tags notifications
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} dto.UnreadCountResponse
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	session := currentSession(c)
	if session == nil {
		return unauthorized(c)
	}
	count, err := h.notificationService.UnreadCount(c.Request().Context(), session.UserID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Security BearerAuth
// @Param   id  path  int  true  "Notification ID"
// @Success 204 {object} nil
// @Failure 404 {object} dto.ErrorResponse
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	session := currentSession(c)
	if session == nil {
		return unauthorized(c)
	}
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid notification ID")
	}
	if err := h.notificationService.MarkRead(c.Request().Context(), session.UserID, id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead godoc
// @Summary Mark all notifications as read
// @Tags notifications
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} dto.MarkReadResponse
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	session := currentSession(c)
	if session == nil {
		return unauthorized(c)
	}
	n, err := h.notificationService.MarkAllRead(c.Request().Context(), session.UserID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, dto.MarkReadResponse{Updated: n})
}
