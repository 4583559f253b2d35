package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-market-predictor/internal/api/config"
	delivery "golang-market-predictor/internal/api/delivery/http"
	_ "golang-market-predictor/internal/api/docs"
	"golang-market-predictor/internal/api/repository"
	"golang-market-predictor/internal/api/service"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/postgres"
	"golang-market-predictor/pkg/redis"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the API service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting API Service", logger.Field("name", cfg.App.Name), logger.StringField("env", cfg.App.Env))

	db, err := postgres.NewDB(postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	redisClient, err := redis.NewClient(redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	// Repositories
	predictionRepo := repository.NewPredictionRepository(db.DB)
	newsRepo := repository.NewNewsRepository(db.DB)
	portfolioRepo := repository.NewPortfolioRepository(db.DB)
	userRepo := repository.NewUserRepository(db.DB)
	notificationRepo := repository.NewNotificationRepository(db.DB)
	executionRepo := repository.NewJobExecutionRepository(db.DB)
	sessionRepo := repository.NewSessionRepository(redisClient.Client)
	forecastCache := repository.NewForecastCacheRepository(redisClient.Client)
	publisher := repository.NewRefreshPublisher(redisClient.Client, cfg.Redis.StreamMaxLen)

	services := delivery.Services{
		Predictions:   service.NewPredictionService(predictionRepo, forecastCache, publisher, cfg.Prediction, appLogger),
		News:          service.NewNewsService(newsRepo, appLogger),
		Portfolios:    service.NewPortfolioService(portfolioRepo, userRepo, appLogger),
		Auth:          service.NewAuthService(userRepo, sessionRepo, cfg.Session.TTL, appLogger),
		Notifications: service.NewNotificationService(notificationRepo, appLogger),
		Executions:    service.NewExecutionService(executionRepo, appLogger),
	}

	e := delivery.NewRouter(services, appLogger)
	e.GET("/swagger/*", swagger.WrapHandler)
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Market Predictor API
// @version 1.0
// @description Predictions, news, portfolios and notifications for the market predictor.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{Use: "api-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing api-service CLI: %s\n", err)
		os.Exit(1)
	}
}
