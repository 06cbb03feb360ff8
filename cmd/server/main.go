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

	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/alphavantage"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/api"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/apperrors"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/cache"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/catalog"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/config"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/database"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/model"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/ratelimit"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/repository"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/scheduler"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/service"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/synthetic"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	snapshotRepo := repository.NewSnapshotRepository(db)
	settingsRepo, err := repository.NewSettingsRepository(db, cfg.MarketData.FernetSecret)
	if err != nil {
		log.Fatalf("Failed to create settings repository: %v", err)
	}

	// Upstream client: the environment variable wins, then a stored
	// credential. With neither the service runs on cached and synthetic data.
	client := alphavantage.NewFinanceClient(cfg.MarketData.APIKey)
	if cfg.MarketData.APIKey == "" {
		stored, err := settingsRepo.LoadCredential(repository.SettingAPIKey)
		switch {
		case err == nil:
			client.SetAPIKey(stored)
		case errors.Is(err, apperrors.ErrSettingNotFound),
			errors.Is(err, apperrors.ErrEncryptionUnavailable):
			log.Println("No market data API key configured; serving cached and synthetic data only")
		default:
			log.Printf("Failed to load stored API key: %v", err)
		}
	}

	governor := ratelimit.NewGovernor(cfg.MarketData.CallsPerMinute, cfg.MarketData.CallsPerDay)
	quotes := cache.NewStore[model.Quote](cfg.MarketData.QuoteTTL)
	series := cache.NewStore[[]model.SeriesPoint](cfg.MarketData.DailyTTL)

	// Create services
	stockService := service.NewStockService(
		client,
		governor,
		catalog.Default(),
		synthetic.NewGenerator(),
		snapshotRepo,
		quotes,
		series,
		cfg.MarketData.IntradayTTL,
		cfg.MarketData.DailyTTL,
		nil,
	)
	systemService := service.NewSystemService(db, client, governor, stockService, settingsRepo)

	// Background watchlist refresh
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.New(ctx, stockService)
	if err := sched.Register(cfg.MarketData.RefreshCron); err != nil {
		log.Fatalf("Failed to register scheduler tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Warm the cache in the background so startup is not gated on upstream
	go sched.RunNow()

	// Create router
	router := api.NewRouter(systemService, stockService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
