package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/api/request"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/api/response"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/apperrors"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/service"
)

// StockHandler handles stock data HTTP requests. Data endpoints always
// succeed: the service degrades to cached or synthetic payloads, so only
// malformed requests produce error envelopes.
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{
		stockService: stockService,
	}
}

// GetStock returns the current quote for one symbol.
//
// Endpoint: GET /api/stocks/{symbol}
// Response: 200 OK with a quote envelope; unknown symbols get synthetic data
func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	quote := h.stockService.GetStockData(r.Context(), symbol)
	response.RespondData(w, quote)
}

// GetChart returns the OHLC series for one symbol and timeframe.
//
// Endpoint: GET /api/stocks/{symbol}/chart?timeframe=1D
// Response: 200 OK with a series envelope
// Error: 400 Bad Request for an unsupported timeframe token
func (h *StockHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	timeframe, err := request.ParseTimeframe(r.URL.Query().Get("timeframe"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "unsupported timeframe")
		return
	}

	symbol := chi.URLParam(r, "symbol")
	series := h.stockService.GetChartData(r.Context(), symbol, timeframe)
	response.RespondData(w, series)
}

// GetBatch returns quotes for a comma-separated symbols parameter, in the
// order given.
//
// Endpoint: GET /api/stocks?symbols=AAPL,NVDA,TSLA
// Error: 400 Bad Request when no usable symbols are supplied
func (h *StockHandler) GetBatch(w http.ResponseWriter, r *http.Request) {
	symbols := request.ParseSymbolList(r.URL.Query().Get("symbols"))
	if len(symbols) == 0 {
		response.RespondError(w, http.StatusBadRequest, "symbols parameter is required")
		return
	}

	quotes := h.stockService.GetMultipleStocks(r.Context(), symbols)
	response.RespondData(w, quotes)
}

// Search returns ranked symbol matches for a partial query.
//
// Endpoint: GET /api/stocks/search?q=app
// Error: 400 Bad Request when q is missing or under two characters
func (h *StockHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.stockService.SearchStocks(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, apperrors.ErrQueryTooShort) {
			response.RespondError(w, http.StatusBadRequest, "query must be at least 2 characters")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "search failed")
		return
	}
	response.RespondData(w, results)
}

// Init triggers a watchlist cache warm-up.
//
// Endpoint: POST /api/stocks/init
// Response: 200 OK once the watchlist has been processed
func (h *StockHandler) Init(w http.ResponseWriter, r *http.Request) {
	h.stockService.WarmCache(r.Context())
	response.RespondMessage(w, http.StatusOK, "stock cache initialized")
}
