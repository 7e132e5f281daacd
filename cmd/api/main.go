package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskboard-aggregator/config"
	_ "taskboard-aggregator/docs" // Swagger docs
	"taskboard-aggregator/internal/httpserver"
	"taskboard-aggregator/internal/taskboard/repository/rest"
	"taskboard-aggregator/internal/taskboard/usecase"
	"taskboard-aggregator/pkg/gcalendar"
	"taskboard-aggregator/pkg/log"
)

// @title       Taskboard Aggregator API
// @description Team and department taskboard aggregation over a task-management REST backend, with filtered views and Google Calendar export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Taskboard Aggregator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.BaseURL)

	// 3. Backend repositories
	backendClient := rest.NewClient(rest.Config{
		BaseURL:        cfg.Backend.BaseURL,
		RequestTimeout: cfg.Backend.RequestTimeout,
		RatePerSecond:  cfg.Backend.RatePerSecond,
		RateBurst:      cfg.Backend.RateBurst,
	})
	repo := rest.New(backendClient, logger)

	// 4. Google Calendar client (optional)
	var calendarClient usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Taskboard UseCase
	taskboardUC, err := usecase.New(logger, repo, repo, calendarClient, usecase.Config{
		FanOutWidth:   cfg.Aggregate.FanOutWidth,
		Timezone:      cfg.Aggregate.Timezone,
		CalendarID:    cfg.GoogleCalendar.CalendarID,
		ViewCacheSize: cfg.View.CacheSize,
		ViewCacheTTL:  cfg.View.CacheTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize taskboard use case: ", err)
		return
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		TaskboardUC: taskboardUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
