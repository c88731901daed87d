package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/garyjia/timebank/internal/application/service"
	"github.com/garyjia/timebank/internal/config"
	"github.com/garyjia/timebank/internal/infrastructure/persistence/repository"
	"github.com/garyjia/timebank/internal/infrastructure/persistence/sqlite"
	"github.com/garyjia/timebank/internal/infrastructure/seed"
	httpserver "github.com/garyjia/timebank/internal/interfaces/http"
	"github.com/garyjia/timebank/internal/metrics"
	"github.com/garyjia/timebank/pkg/database"
	"github.com/garyjia/timebank/pkg/utils"
)

func main() {
	// Local .env overrides are optional
	_ = gotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting automation credit platform",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	sqlDB, err := database.Open(database.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer sqlDB.Close()

	migrator := database.NewMigrator(sqlDB, logger)
	if err := migrator.Run(); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	db := sqlite.NewDB(sqlDB, logger)

	// Repositories
	userRepo := repository.NewUserRepository(db, logger)
	automationRepo := repository.NewAutomationRepository(db, logger)
	rewardRepo := repository.NewRewardRepository(db, logger)
	redemptionRepo := repository.NewRedemptionRepository(db, logger)
	transactionRepo := repository.NewTransactionRepository(db, logger)
	notificationRepo := repository.NewNotificationRepository(db, logger)
	activityRepo := repository.NewActivityRepository(db, logger)
	badgeRepo := repository.NewBadgeRepository(db, logger)
	challengeRepo := repository.NewChallengeRepository(db, logger)

	if cfg.Seed.Enabled {
		seeder := seed.New(userRepo, automationRepo, rewardRepo, challengeRepo, db, logger)
		if err := seeder.Run(context.Background()); err != nil {
			logger.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	// Services
	kvLogger := utils.NewKVLogger(logger)
	userService := service.NewUserService(
		userRepo, automationRepo, redemptionRepo, transactionRepo,
		notificationRepo, activityRepo, badgeRepo, kvLogger)
	automationService := service.NewAutomationService(
		userRepo, automationRepo, transactionRepo, notificationRepo,
		activityRepo, db, kvLogger)
	rewardService := service.NewRewardService(rewardRepo, kvLogger)
	redemptionService := service.NewRedemptionService(
		userRepo, rewardRepo, redemptionRepo, transactionRepo,
		notificationRepo, activityRepo, db, kvLogger)
	notificationService := service.NewNotificationService(notificationRepo, kvLogger)
	analyticsService := service.NewAnalyticsService(
		userRepo, automationRepo, rewardRepo, redemptionRepo,
		transactionRepo, challengeRepo, kvLogger)
	reportService := service.NewReportService(analyticsService, kvLogger)

	// HTTP server
	server := httpserver.NewServer(
		httpserver.ServerConfig{
			Host:         cfg.Server.Host,
			Port:         cfg.Server.Port,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		httpserver.Services{
			Users:         userService,
			Automations:   automationService,
			Rewards:       rewardService,
			Redemptions:   redemptionService,
			Notifications: notificationService,
			Analytics:     analyticsService,
			Reports:       reportService,
		},
		metrics.New(),
		kvLogger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}
