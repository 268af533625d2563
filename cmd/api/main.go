// ABOUTME: Main entry point for the PakGov Intel server
// ABOUTME: Wires together all components and starts the HTTP server

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

	"pakgov-intel/api"
	"pakgov-intel/api/handlers"
	"pakgov-intel/api/middleware"
	"pakgov-intel/core/interfaces"
	"pakgov-intel/core/report"
	"pakgov-intel/core/view"
	"pakgov-intel/infrastructure/cache/memory"
	"pakgov-intel/infrastructure/cache/redis"
	stdhttp "pakgov-intel/infrastructure/http/standard"
	logruslogger "pakgov-intel/infrastructure/logger/logrus"
	"pakgov-intel/pkg/config"
	"pakgov-intel/pkg/featureflags"
	"pakgov-intel/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger, err := logruslogger.New(logruslogger.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	logger.Info("Starting PakGov Intel", map[string]interface{}{
		"port":       cfg.Server.Port,
		"view_store": cfg.View.Store,
		"model":      cfg.Gemini.Model,
	})

	if !cfg.HasAPIKey() {
		logger.Warn("API key is not set; report requests will fail until API_KEY or GEMINI_API_KEY is configured", nil)
	}

	// Create view store backend
	var cache interfaces.Cache
	switch cfg.View.Store {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.View.Redis)
		if err != nil {
			logger.Error("Failed to create Redis view store, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			defer redisCache.Close()
			cache = redisCache
			logger.Info("Using Redis view store", map[string]interface{}{
				"address": cfg.View.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory view store", nil)
	}

	// The model call is bounded only by the request context
	httpClient := stdhttp.NewStandardHTTPClient(0, stdhttp.WithTransport(&middleware.LoggingRoundTripper{
		Transport: http.DefaultTransport,
		Logger:    logger,
	}))

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	flags := featureflags.NewEnvManager("FEATURE_")
	logger.Info("Feature flags", map[string]interface{}{
		"flags": flags.GetAllFlags(),
	})

	// Create services
	reportService := report.NewReportService(report.Config{
		APIKey:         cfg.Gemini.APIKey,
		Model:          cfg.Gemini.Model,
		BaseURL:        cfg.Gemini.BaseURL,
		ThinkingBudget: cfg.Gemini.ThinkingBudget,
	}, deps)
	viewService := view.NewViewService(deps, cfg.View.TTL)

	// Create API with middleware
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.RateLimit.Requests,
		RateWindow: cfg.RateLimit.Window,
		Flags:      flags,
	})

	handlers.NewReportHandler(reportService).RegisterRoutes(humaAPI)
	handlers.NewRenderHandler(flags).RegisterRoutes(humaAPI)
	handlers.NewPresetHandler().RegisterRoutes(humaAPI)

	dashboard, err := web.NewDashboard(reportService, viewService, flags, logger)
	if err != nil {
		logger.Error("Failed to load dashboard templates", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	dashboard.RegisterRoutes(router)

	// Write timeout leaves room for a slow grounded model call
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

func init() {
	fmt.Println(`
    ____        __   ______              ____      __       __
   / __ \____ _/ /__/ ____/___ _   __   /  _/___  / /____  / /
  / /_/ / __ '/ //_/ / __/ __ \ | / /   / // __ \/ __/ _ \/ /
 / ____/ /_/ / ,< / /_/ / /_/ / |/ /  _/ // / / / /_/  __/ /
/_/    \__,_/_/|_|\____/\____/|___/  /___/_/ /_/\__/\___/_/
	`)
}
