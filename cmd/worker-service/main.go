package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/internal/worker/config"
	"golang-market-predictor/internal/worker/delivery/consumer"
	"golang-market-predictor/internal/worker/repository"
	"golang-market-predictor/internal/worker/service"
	"golang-market-predictor/internal/worker/strategy"
	"golang-market-predictor/pkg/common"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/postgres"
	"golang-market-predictor/pkg/redis"
	"golang-market-predictor/pkg/telegram"

	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the worker service",
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

	appLogger.Info("Starting Worker Service", logger.Field("name", cfg.App.Name), logger.StringField("env", cfg.App.Env))

	jobs, err := cfg.JobDefinitions()
	if err != nil {
		appLogger.Fatal("Invalid job configuration", logger.ErrorField(err))
	}

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

	if err := redisClient.EnsureGroup(ctx, common.RedisStreamForecastRefresh, common.RedisStreamGroup); err != nil {
		appLogger.Fatal("Failed to create consumer group", logger.ErrorField(err))
	}

	// Repositories
	predictionRepo := repository.NewPredictionRepository(db.DB)
	newsRepo := repository.NewNewsRepository(db.DB)
	portfolioRepo := repository.NewPortfolioRepository(db.DB)
	userRepo := repository.NewUserRepository(db.DB)
	notificationRepo := repository.NewNotificationRepository(db.DB)
	historyRepo := repository.NewJobExecutionRepository(db.DB)
	alertRepo := repository.NewAlertRepository(redisClient.Client)
	refreshStream := repository.NewRefreshStreamRepository(redisClient.Client)
	marketDataRepo := repository.NewMarketDataRepository(cfg.MarketData.MaxRequestPerMinute, appLogger)
	feedRepo := repository.NewFeedRepository(nil, appLogger)

	var analyzerRepo repository.NewsAnalyzerRepository
	if cfg.Gemini.APIKey != "" {
		genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI client", logger.ErrorField(err))
		}
		analyzerRepo = repository.NewGeminiNewsAnalyzer(genAiClient, cfg.Gemini.Model, cfg.Gemini.MaxRequestPerMinute, appLogger)
	} else {
		appLogger.Warn("Gemini API key not set, news analysis disabled")
	}

	telegramNotifier, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
	}

	strategies := []strategy.JobExecutionStrategy{
		strategy.NewForecastRefreshStrategy(predictionRepo, appLogger),
		strategy.NewNewsIngestStrategy(feedRepo, newsRepo, analyzerRepo, appLogger),
		strategy.NewPriceSyncStrategy(marketDataRepo, predictionRepo, portfolioRepo, appLogger),
		strategy.NewPortfolioSnapshotStrategy(portfolioRepo, appLogger),
		strategy.NewRecommendationAlertStrategy(predictionRepo, userRepo, notificationRepo, alertRepo, telegramNotifier, appLogger),
	}

	executorSvc := service.NewExecutorService(historyRepo, appLogger, strategies)
	schedulerSvc := service.NewSchedulerService(executorSvc, jobs, appLogger)
	refreshSvc := service.NewRefreshService(refreshStream, executorSvc, refreshTimeout(jobs), appLogger)

	if err := schedulerSvc.Start(ctx); err != nil {
		appLogger.Fatal("Failed to start scheduler", logger.ErrorField(err))
	}

	redisConsumer := consumer.NewRedisConsumer(cfg, refreshSvc, appLogger)
	redisConsumer.Start(ctx)

	for _, name := range cfg.Worker.RunOnStartup {
		go func() {
			if _, err := schedulerSvc.RunNow(ctx, name, entity.TriggerStartup); err != nil {
				appLogger.Error("Startup job failed", logger.ErrorField(err), logger.StringField("job", name))
			}
		}()
	}

	appLogger.Info("Worker service started. Waiting for jobs...")
	<-ctx.Done()

	appLogger.Info("Shutting down worker service...")
	redisConsumer.Stop()

	select {
	case <-schedulerSvc.Stop().Done():
	case <-time.After(cfg.Worker.ShutdownTimeout):
		appLogger.Warn("Timed out waiting for running jobs")
	}
	appLogger.Info("Worker service stopped.")
}

// refreshTimeout uses the timeout of the configured forecast_refresh job, if any.
func refreshTimeout(jobs []entity.Job) time.Duration {
	for _, j := range jobs {
		if j.Type == entity.JobTypeForecastRefresh && j.Timeout > 0 {
			return j.Timeout
		}
	}
	return 2 * time.Minute
}

func main() {
	rootCmd := &cobra.Command{Use: "worker-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-worker.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing worker-service CLI: %s\n", err)
		os.Exit(1)
	}
}
