package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/api/handlers"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/model"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/testutil"
)

// envelope mirrors the wire shape so tests can assert on the success flag
// before decoding data.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("Failed to decode envelope: %v", err)
	}
	return env
}

func TestStockHandler_GetStock(t *testing.T) {
	mock := testutil.NewMockMarketClient()
	svc := testutil.NewTestStockService(t, mock, testutil.StockServiceOptions{})
	handler := handlers.NewStockHandler(svc)

	t.Run("returns a quote envelope", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams("GET", "/api/stocks/AAPL", map[string]string{"symbol": "AAPL"})
		w := httptest.NewRecorder()

		handler.GetStock(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		if !env.Success {
			t.Fatalf("Expected success envelope, got error %q", env.Error)
		}

		var quote model.Quote
		if err := json.Unmarshal(env.Data, &quote); err != nil {
			t.Fatalf("Failed to decode quote: %v", err)
		}
		if quote.Symbol != "AAPL" {
			t.Errorf("Expected AAPL, got %s", quote.Symbol)
		}
		if quote.Price <= 0 {
			t.Errorf("Expected positive price, got %f", quote.Price)
		}
	})

	t.Run("garbage symbol still succeeds with synthetic data", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams("GET", "/api/stocks/n%20o", map[string]string{"symbol": "n o"})
		w := httptest.NewRecorder()

		handler.GetStock(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		if !env.Success {
			t.Fatalf("Expected success envelope, got error %q", env.Error)
		}
		var quote model.Quote
		if err := json.Unmarshal(env.Data, &quote); err != nil {
			t.Fatalf("Failed to decode quote: %v", err)
		}
		if quote.Source != model.SourceSynthetic {
			t.Errorf("Expected synthetic source, got %s", quote.Source)
		}
	})
}

func TestStockHandler_GetChart(t *testing.T) {
	mock := testutil.NewMockMarketClient()
	svc := testutil.NewTestStockService(t, mock, testutil.StockServiceOptions{})
	handler := handlers.NewStockHandler(svc)

	t.Run("returns a series for a valid timeframe", func(t *testing.T) {
		req := testutil.NewRequestWithQueryAndURLParams("GET", "/api/stocks/AAPL/chart",
			map[string]string{"symbol": "AAPL"},
			map[string]string{"timeframe": "1M"},
		)
		w := httptest.NewRecorder()

		handler.GetChart(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		var series []model.SeriesPoint
		if err := json.Unmarshal(env.Data, &series); err != nil {
			t.Fatalf("Failed to decode series: %v", err)
		}
		if len(series) == 0 {
			t.Error("Expected non-empty series")
		}
	})

	t.Run("defaults to the intraday timeframe", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams("GET", "/api/stocks/AAPL/chart", map[string]string{"symbol": "AAPL"})
		w := httptest.NewRecorder()

		handler.GetChart(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
	})

	t.Run("rejects an unsupported timeframe", func(t *testing.T) {
		req := testutil.NewRequestWithQueryAndURLParams("GET", "/api/stocks/AAPL/chart",
			map[string]string{"symbol": "AAPL"},
			map[string]string{"timeframe": "2H"},
		)
		w := httptest.NewRecorder()

		handler.GetChart(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		if env.Success || env.Error == "" {
			t.Errorf("Expected failure envelope with error, got %+v", env)
		}
	})
}

func TestStockHandler_GetBatch(t *testing.T) {
	mock := testutil.NewMockMarketClient()
	svc := testutil.NewTestStockService(t, mock, testutil.StockServiceOptions{})
	handler := handlers.NewStockHandler(svc)

	t.Run("returns quotes in request order", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams("GET", "/api/stocks",
			map[string]string{"symbols": "AAPL,NVDA,TSLA"})
		w := httptest.NewRecorder()

		handler.GetBatch(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		var quotes []model.Quote
		if err := json.Unmarshal(env.Data, &quotes); err != nil {
			t.Fatalf("Failed to decode quotes: %v", err)
		}
		want := []string{"AAPL", "NVDA", "TSLA"}
		if len(quotes) != len(want) {
			t.Fatalf("Expected %d quotes, got %d", len(want), len(quotes))
		}
		for i, sym := range want {
			if quotes[i].Symbol != sym {
				t.Errorf("Position %d: expected %s, got %s", i, sym, quotes[i].Symbol)
			}
		}
	})

	t.Run("missing symbols parameter", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/stocks", nil)
		w := httptest.NewRecorder()

		handler.GetBatch(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", w.Code)
		}
	})
}

func TestStockHandler_Search(t *testing.T) {
	mock := testutil.NewMockMarketClient()
	svc := testutil.NewTestStockService(t, mock, testutil.StockServiceOptions{})
	handler := handlers.NewStockHandler(svc)

	t.Run("returns ranked matches", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams("GET", "/api/stocks/search",
			map[string]string{"q": "AAPL"})
		w := httptest.NewRecorder()

		handler.Search(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		var results []model.SearchResult
		if err := json.Unmarshal(env.Data, &results); err != nil {
			t.Fatalf("Failed to decode results: %v", err)
		}
		if len(results) == 0 || results[0].Symbol != "AAPL" {
			t.Errorf("Expected AAPL first, got %+v", results)
		}
	})

	t.Run("short query", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams("GET", "/api/stocks/search",
			map[string]string{"q": "a"})
		w := httptest.NewRecorder()

		handler.Search(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		if env.Success {
			t.Error("Expected failure envelope")
		}
	})

	t.Run("missing query parameter", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/stocks/search", nil)
		w := httptest.NewRecorder()

		handler.Search(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", w.Code)
		}
	})
}

func TestStockHandler_Init(t *testing.T) {
	mock := testutil.NewMockMarketClient()
	svc := testutil.NewTestStockService(t, mock, testutil.StockServiceOptions{
		Watchlist: []string{"AAPL", "MSFT"},
	})
	handler := handlers.NewStockHandler(svc)

	req := httptest.NewRequest("POST", "/api/stocks/init", nil)
	w := httptest.NewRecorder()

	handler.Init(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if !env.Success || env.Message == "" {
		t.Errorf("Expected success message, got %+v", env)
	}
	if mock.QuoteCalls() != 2 {
		t.Errorf("Expected 2 upstream calls for warm-up, got %d", mock.QuoteCalls())
	}
}
