package http

import (
	"golang-market-predictor/internal/api/service"
	"golang-market-predictor/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Predictions   service.PredictionService
	News          service.NewsService
	Portfolios    service.PortfolioService
	Auth          service.AuthService
	Notifications service.NotificationService
	Executions    service.ExecutionService
}

// NewRouter builds the echo instance with middleware and every /api/v1 route.
func NewRouter(svc Services, log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(log))

	requireSession := SessionAuth(svc.Auth, log)
	apiV1 := e.Group("/api/v1")

	NewPredictionHandler(svc.Predictions, log).RegisterRoutes(apiV1.Group("/predictions"))
	NewNewsHandler(svc.News, log).RegisterRoutes(apiV1.Group("/news"))
	NewExecutionHandler(svc.Executions, log).RegisterRoutes(apiV1.Group("/executions"))
	NewAuthHandler(svc.Auth, log).RegisterRoutes(apiV1, requireSession)
	NewPortfolioHandler(svc.Portfolios, log).RegisterRoutes(apiV1.Group("/portfolios", requireSession))
	NewNotificationHandler(svc.Notifications, log).RegisterRoutes(apiV1.Group("/notifications", requireSession))

	return e
}
