// ABOUTME: Main entry point for the Marginalia API server
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

	"marginalia-api/api"
	"marginalia-api/api/handlers"
	"marginalia-api/core/annotations"
	"marginalia-api/core/articles"
	"marginalia-api/core/export"
	"marginalia-api/core/interfaces"
	"marginalia-api/core/preferences"
	"marginalia-api/core/render"
	"marginalia-api/core/search"
	"marginalia-api/core/services"
	"marginalia-api/core/workers"
	"marginalia-api/infrastructure/cache/memory"
	"marginalia-api/infrastructure/cache/redis"
	stdhttp "marginalia-api/infrastructure/http/standard"
	stdlogger "marginalia-api/infrastructure/logger/standard"
	"marginalia-api/infrastructure/storage/sqlite"
	"marginalia-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := stdlogger.NewStandardLogger()
	logger.Info("Starting Marginalia API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"cache_type":   cfg.Cache.Type,
		"storage_path": cfg.Storage.Path,
	})

	// Create storage
	store, err := sqlite.NewStore(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create services
	searchService := search.NewSearchService(deps, store)
	accentColorService := services.NewAccentColorService(deps)
	articleService := articles.NewService(deps, store, accentColorService)

	// Background pool that precomputes accent colors for article images
	colorWorker := workers.NewColorWorker(accentColorService, workers.DefaultWorkerConfig())
	if err := colorWorker.Start(); err != nil {
		log.Fatalf("Failed to start color worker: %v", err)
	}
	defer colorWorker.Stop()
	articleService.SetColorWarmer(colorWorker)
	annotationService := annotations.NewService(store, logger)
	renderService := render.NewService(logger)
	exportService := export.NewService(store, renderService, logger)
	preferenceService := preferences.NewService(store, logger)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	searchHandler := handlers.NewSearchHandler(searchService)
	searchHandler.RegisterRoutes(humaAPI)

	articleHandler := handlers.NewArticleHandler(articleService)
	articleHandler.RegisterRoutes(humaAPI)

	annotationHandler := handlers.NewAnnotationHandler(annotationService)
	annotationHandler.RegisterRoutes(humaAPI)

	renderHandler := handlers.NewRenderHandler(articleService, annotationService, renderService, preferenceService, exportService)
	renderHandler.RegisterRoutes(humaAPI)

	preferenceHandler := handlers.NewPreferenceHandler(preferenceService)
	preferenceHandler.RegisterRoutes(humaAPI)

	validateHandler := handlers.NewValidateHandler(httpClient)
	validateHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
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

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

func init() {
	// Print banner
	fmt.Println(`
    __  ___                 _             ___
   /  |/  /___ ________ _(_)___  ____ _/ (_)___ _
  / /|_/ / __ '/ ___/ __ '/ / __ \/ __ '/ / / __ '/
 / /  / / /_/ / /  / /_/ / / / / / /_/ / / / /_/ /
/_/  /_/\__,_/_/   \__, /_/_/ /_/\__,_/_/_/\__,_/
                  /____/
	`)
}
