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
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title FinPulse Analytics API
// @version 1.0
// @description Financial analytics aggregation engine: monthly metrics, category breakdowns, historical series, net worth projection, and health scoring.
// @BasePath /api/v1
func main() {
	// .env is optional; real deployments configure via the environment
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	services.DefaultHistoryWindow = cfg.Analytics.DefaultWindowMonths
	services.MaxHistoryWindow = cfg.Analytics.MaxWindowMonths

	transactionRepo := repositories.NewTransactionRepository(db)
	assetRepo := repositories.NewAssetRepository(db)
	targetRepo := repositories.NewTargetRepository(db)

	recorder := services.NewPrometheusMetrics()
	analyticsService := services.NewAnalyticsService(transactionRepo)
	categoryService := services.NewCategoryService(transactionRepo)
	historyService := services.NewHistoryService(transactionRepo, analyticsService, recorder)
	netWorthService := services.NewNetWorthService(assetRepo, targetRepo, historyService)
	healthService := services.NewHealthService(analyticsService)

	analyticsHandler := handlers.NewAnalyticsHandler(
		analyticsService,
		categoryService,
		historyService,
		netWorthService,
		healthService,
		recorder,
	)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	analytics := api.Group("/users/:userId/analytics")
	analytics.Use(requestTimeout(cfg.Analytics.SeriesTimeout))
	analytics.GET("/monthly", analyticsHandler.GetMonthlyMetrics)
	analytics.GET("/categories", analyticsHandler.GetCategoryBreakdown)
	analytics.GET("/trends", analyticsHandler.GetCategoryTrends)
	analytics.GET("/series", analyticsHandler.GetMonthlySeries)
	analytics.GET("/comparison", analyticsHandler.GetComparison)
	analytics.GET("/net-worth", analyticsHandler.GetNetWorthSeries)
	analytics.GET("/health-score", analyticsHandler.GetHealthScore)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(transactionRepo, assetRepo, targetRepo)
		api.POST("/dev/users/:userId/seed", devHandler.SeedDemoData)
		slog.Warn("development seed endpoint enabled")
	}

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := ":" + cfg.Server.Port
		slog.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
}

// requestTimeout bounds each analytics request; a series build that overruns
// is cancelled and returns whatever months completed.
func requestTimeout(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// setupLogger routes slog through JSON in production so log collectors can
// parse structured fields, and keeps human-readable text everywhere else.
func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}
