package main

import (
	"context"
	"log"
	"time"

	"hotel-booking/cmd"
	"hotel-booking/internal/data/memory"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/wire"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/mailer"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("storage", config.App.StorageDriver),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	// Storage
	var repos *repository.Repository
	switch config.App.StorageDriver {
	case utils.StorageDriverMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")
		repos = memory.NewRepository()

	case utils.StorageDriverPostgres:
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err = database.Migrate(migrateCtx, db)
		cancel()
		if err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}

		logger.Info("Database connected successfully")
		repos = repository.NewRepository(db, logger)

	default:
		logger.Fatal("Unknown storage driver", zap.String("driver", config.App.StorageDriver))
	}

	// Redis backs the rate limiter when configured
	rdb, err := database.InitRedis(config.Redis.URL)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	if rdb != nil {
		defer rdb.Close()
		logger.Info("Redis connected successfully")
	} else {
		logger.Info("REDIS_URL not set, rate limits are kept in memory")
	}

	// Notifications
	var notifier usecase.Notifier
	if m, err := mailer.New(config.Email, logger); err != nil {
		logger.Error("Failed to init mailer, notifications disabled", zap.Error(err))
	} else {
		notifier = m
	}

	// Bootstrap admin
	if config.Admin.Email != "" && config.Admin.Password != "" {
		auth := usecase.NewAuthService(repos.User, config, logger)
		if err := auth.EnsureAdmin(ctx, config.Admin.Email, config.Admin.Password); err != nil {
			logger.Fatal("Failed to bootstrap admin", zap.Error(err))
		}
		logger.Info("Admin account ready", zap.String("email", config.Admin.Email))
	}

	// Wire all dependencies
	app, err := wire.Wiring(wire.Dependencies{
		Repo:     repos,
		Config:   config,
		Logger:   logger,
		Redis:    rdb,
		Notifier: notifier,
		Oracle:   usecase.RandomSettlement{SuccessRate: config.Payment.SuccessRate},
	})
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}

	if err := cmd.APIServer(app.Router, config.App.Port, logger, app.Drain); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
