package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/n8nops/roi-dashboard/internal/config"
	httpapi "github.com/n8nops/roi-dashboard/internal/interfaces/http"
	"github.com/n8nops/roi-dashboard/internal/report"
	"github.com/n8nops/roi-dashboard/internal/repository"
	"github.com/n8nops/roi-dashboard/internal/service"
	"github.com/n8nops/roi-dashboard/pkg/database"
	"github.com/n8nops/roi-dashboard/pkg/utils"
)

func main() {
	// Optional .env overrides, loaded before viper reads the environment.
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

	logger.Info("Starting workflow ROI dashboard",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	db, err := database.New(database.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	migrator := database.NewMigrator(db, logger)
	if err := migrator.Run(cfg.Database.MigrationsDir); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Repositories
	clientRepo := repository.NewClientRepository(db, logger)
	workflowRepo := repository.NewWorkflowRepository(db, logger)
	executionRepo := repository.NewExecutionRepository(db, logger)
	roiConfigRepo := repository.NewROIConfigRepository(db, logger)
	toolCostRepo := repository.NewToolCostRepository(db, logger)

	// Services
	dashboardService := service.NewDashboardService(clientRepo, workflowRepo, executionRepo, logger, nil)
	roiService := service.NewROIService(workflowRepo, executionRepo, roiConfigRepo, toolCostRepo, logger, nil)
	adminService := service.NewAdminService(roiConfigRepo, toolCostRepo, logger)
	exporter := report.NewExporter(logger)

	server := httpapi.NewServer(
		httpapi.ServerConfig{
			Host:         cfg.Server.Host,
			Port:         cfg.Server.Port,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		dashboardService,
		roiService,
		adminService,
		exporter,
		httpapi.NewZapLogger(logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}
