package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/api/handlers"
	custommiddleware "github.com/samimoudarres/SimVest-Market-Data-Backend/internal/api/middleware"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/config"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, stockService *service.StockService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/market-data-status", systemHandler.MarketDataStatus)
			r.Put("/market-data-key", systemHandler.UpdateMarketDataKey)
		})

		r.Route("/stocks", func(r chi.Router) {
			stockHandler := handlers.NewStockHandler(stockService)
			r.Get("/", stockHandler.GetBatch)
			r.Get("/search", stockHandler.Search)
			r.Post("/init", stockHandler.Init)
			r.Get("/{symbol}", stockHandler.GetStock)
			r.Get("/{symbol}/chart", stockHandler.GetChart)
		})
	})

	return r
}
