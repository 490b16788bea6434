package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finpulse/internal/config"
	"finpulse/internal/database"
	"finpulse/internal/handlers"
	"finpulse/internal/middleware"
	"finpulse/internal/repositories"
	"finpulse/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	transactionRepo := repositories.NewTransactionRepository(db)
	budgetRepo := repositories.NewBudgetProfileRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	analyticsService := services.NewAnalyticsService(transactionRepo, metrics)
	forecastService := services.NewForecastService(analyticsService, budgetRepo, metrics)
	healthScoreService := services.NewHealthScoreService()
	reportService := services.NewReportService(transactionRepo, budgetRepo, analyticsService, healthScoreService)
	demoDataService := services.NewDemoDataService(transactionRepo, budgetRepo)

	// Handlers
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	forecastHandler := handlers.NewForecastHandler(forecastService)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo, analyticsService, metrics)
	profileHandler := handlers.NewProfileHandler(budgetRepo)
	reportHandler := handlers.NewReportHandler(reportService, metrics)
	devHandler := handlers.NewDevHandler(demoDataService, cfg.Server.Environment)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RateLimiterWithConfig(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", middleware.UserContext())

	api.GET("/analytics/statistics/:category", analyticsHandler.GetCategoryStatistics)
	api.POST("/analytics/anomaly-check", analyticsHandler.CheckAnomaly)
	api.GET("/analytics/trends", analyticsHandler.GetTrends)
	api.POST("/analytics/confidence-interval", analyticsHandler.GetConfidenceInterval)

	api.POST("/forecast/simulation", forecastHandler.RunSimulation)

	api.GET("/reports/monthly", reportHandler.GetMonthlySummary)
	api.GET("/reports/health-score", reportHandler.GetHealthScore)

	api.POST("/transactions", transactionHandler.Create)
	api.GET("/transactions", transactionHandler.List)
	api.DELETE("/transactions/:id", transactionHandler.Delete)

	api.GET("/profile", profileHandler.GetProfile)
	api.PUT("/profile", profileHandler.UpsertProfile)
	api.POST("/profile/fixed-expenses", profileHandler.AddFixedExpense)
	api.DELETE("/profile/fixed-expenses/:id", profileHandler.DeleteFixedExpense)

	if !cfg.IsProduction() {
		api.POST("/dev/demo-data", devHandler.SeedDemoData)
	}

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Graceful shutdown handling
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		slog.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	address := cfg.Server.Host + ":" + cfg.Server.Port
	slog.Info("Starting finpulse server", "address", address, "environment", cfg.Server.Environment)
	if err := e.Start(address); err != nil && err != http.ErrServerClosed {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped gracefully")
}
