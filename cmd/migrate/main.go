package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"golang-market-predictor/internal/seed"
	"golang-market-predictor/pkg/config"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

var (
	configPath     string
	migrationsPath string
	fixturesPath   string
)

type migrateConfig struct {
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
}

func loadConfig() (*migrateConfig, postgres.Config) {
	var cfg migrateConfig
	if err := config.Load(configPath, &cfg); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return &cfg, postgres.Config{
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
	}
}

func runMigrations(direction string) {
	_, dbCfg := loadConfig()

	m, err := migrate.New("file://"+migrationsPath, dbCfg.URL())
	if err != nil {
		log.Fatalf("Failed to create migration instance: %v", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Printf("Migration source error on close: %v\n", srcErr)
		}
		if dbErr != nil {
			log.Printf("Migration database error on close: %v\n", dbErr)
		}
	}()

	var migrationErr error
	switch direction {
	case "up":
		migrationErr = m.Up()
	case "down":
		migrationErr = m.Steps(-1)
	}

	if errors.Is(migrationErr, migrate.ErrNoChange) {
		fmt.Println("No migrations to apply.")
		return
	}
	if migrationErr != nil {
		log.Fatalf("Migration failed: %v", migrationErr)
	}

	version, dirty, err := m.Version()
	if err == nil {
		fmt.Printf("Migrated %s successfully. version=%d dirty=%t\n", direction, version, dirty)
	} else {
		fmt.Printf("Migrated %s successfully.\n", direction)
	}
}

func runSeed() {
	cfg, dbCfg := loadConfig()

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	fixtures, err := seed.Load(fixturesPath)
	if err != nil {
		appLogger.Fatal("Failed to load fixtures", logger.ErrorField(err), logger.StringField("path", fixturesPath))
	}

	db, err := postgres.NewDB(dbCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	if _, err := seed.Apply(context.Background(), db.DB, fixtures, appLogger); err != nil {
		appLogger.Fatal("Failed to apply seed", logger.ErrorField(err))
	}
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all available database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		runMigrations("up")
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert the last database migration",
	Run: func(cmd *cobra.Command, args []string) {
		runMigrations("down")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo datasets from the fixtures file",
	Run: func(cmd *cobra.Command, args []string) {
		runSeed()
	},
}

func main() {
	rootCmd := &cobra.Command{Use: "migrate"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-worker.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&migrationsPath, "path", "migrations", "Directory holding the SQL migrations")
	seedCmd.Flags().StringVarP(&fixturesPath, "fixtures", "f", "fixtures/seed.yaml", "Path to the fixtures file")

	rootCmd.AddCommand(upCmd, downCmd, seedCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing migrate CLI: %s\n", err)
		os.Exit(1)
	}
}
