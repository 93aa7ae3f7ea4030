package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/AloysioLvy/ReportTracker/backend/internal/config"
	"github.com/AloysioLvy/ReportTracker/backend/internal/controllers"
	"github.com/AloysioLvy/ReportTracker/backend/internal/database"
	"github.com/AloysioLvy/ReportTracker/backend/internal/metrics"
	"github.com/AloysioLvy/ReportTracker/backend/internal/services"
	"github.com/AloysioLvy/ReportTracker/backend/internal/validation"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Logger
	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// 3. Connect to the database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}

	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Fatal("migration failed", zap.Error(err))
		}
	}

	// 4. Services
	reportSvc := services.NewReportService(db)
	actionSvc := services.NewFollowUpActionService(db)
	dashboardSvc := services.NewDashboardService(db)

	// 5. Controllers
	healthCtrl := controllers.NewHealthController()
	rpcCtrl := controllers.NewRPCController(logger,
		healthCtrl,
		controllers.NewReportController(reportSvc),
		controllers.NewFollowUpActionController(actionSvc),
		controllers.NewDashboardController(dashboardSvc),
	)

	// 6. Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				logger.Error("request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	}))

	// 7. Routes
	api := e.Group("/api/v1")
	rpcCtrl.Register(api)
	healthCtrl.Register(e)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// 8. Run the server until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", zap.String("port", cfg.ServerPort), zap.Strings("methods", rpcCtrl.Methods()))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
