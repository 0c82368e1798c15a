package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ard/config"
	"ard/cron"
	"ard/database"
	adsRepo "ard/database/repository/ads"
	"ard/handlers"
	"ard/middleware"
	"ard/routes"
	"ard/services/ads"
	"ard/services/carousel"
	"ard/services/search"
	"ard/services/storage"
	"ard/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Repository: Mongo in normal operation, in-memory when running without
	// a database in development.
	var adRepo adsRepo.AdRepository
	if config.AppConfig.DatabaseURL == "" && !config.IsProduction() {
		logger.Warn("main: DATABASE_URL not set, using in-memory ad store")
		adRepo = adsRepo.NewMemoryAdRepo()
	} else {
		database.InitDB()
		adRepo = adsRepo.NewMongoAdRepo()
	}

	utils.InitCache()
	utils.InitSearchCache()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSearchCacheClient()},
		database.MongoClient,
	)

	var storageService storage.StorageService
	if cloudinarySvc, err := storage.NewCloudinaryStorageService(); err != nil {
		logger.Warn("main: image storage disabled", zap.Error(err))
	} else {
		storageService = cloudinarySvc
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	adService := &ads.DefaultAdService{Repo: adRepo}

	var provider search.Provider
	if config.AppConfig.GeminiAPIKey != "" {
		gp, err := search.NewGeminiProvider(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Warn("main: AI search disabled", zap.Error(err))
		} else {
			provider = gp
		}
	} else {
		logger.Warn("main: GEMINI_API_KEY not set, AI search disabled")
	}

	var transcriber search.Transcriber
	if config.AppConfig.SpeechCredsFile != "" {
		tr, err := search.NewGoogleTranscriber(config.AppConfig.SpeechCredsFile)
		if err != nil {
			logger.Warn("main: voice search disabled", zap.Error(err))
		} else {
			transcriber = tr
		}
	}

	orchestrator := &search.Orchestrator{
		Provider:    provider,
		Transcriber: transcriber,
		Cache:       utils.GetSearchCacheClient(),
		Timeout:     config.SearchTimeout(),
		CacheTTL:    config.SearchCacheTTL(),
	}

	sessionManager := carousel.NewManager(carousel.Config{
		MinPeriod: time.Duration(config.AppConfig.RotateMinSecs) * time.Second,
		MaxPeriod: time.Duration(config.AppConfig.RotateMaxSecs) * time.Second,
	}, 30*time.Minute)
	defer sessionManager.Close()

	// Background purge of expired ads.
	cron.InitPurgeWorker(adRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Feed:     handlers.NewFeedHandler(adService, sessionManager),
		Ads:      handlers.NewAdHandler(adService),
		Search:   handlers.NewSearchHandler(adService, orchestrator),
		Admin:    handlers.NewAdminHandler(adService),
		Insights: handlers.NewInsightsHandler(adService),
		Storage:  handlers.NewStorageHandler(storageService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
