package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/alphavantage"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/model"
)

// MockMarketClient is a mock implementation of alphavantage.Client for
// testing. It returns predefined data instead of making API calls and counts
// invocations per method, safely under concurrency, so tests can assert how
// many upstream calls an operation cost.
type MockMarketClient struct {
	mu sync.Mutex

	// MockQuote is returned from FetchQuote when MockError is nil.
	MockQuote model.Quote
	// MockSeries is returned from FetchSeries when MockError is nil.
	MockSeries []model.SeriesPoint
	// MockSearch is returned from SearchSymbols when MockError is nil.
	MockSearch []model.SearchResult
	// MockError, when set, is returned from every fetch method.
	MockError error
	// Delay is slept inside each fetch, letting coalescing tests hold a
	// request in flight while more callers arrive.
	Delay time.Duration
	// Unconfigured makes Configured() report false.
	Unconfigured bool

	quoteCalls  int
	seriesCalls int
	searchCalls int
}

var _ alphavantage.Client = (*MockMarketClient)(nil)

// NewMockMarketClient creates a mock returning a plausible AAPL quote and a
// small valid daily series.
func NewMockMarketClient() *MockMarketClient {
	return &MockMarketClient{
		MockQuote:  CreateMockQuote("AAPL", 228.87),
		MockSeries: CreateMockSeries(5, 228.87),
	}
}

// FetchQuote returns the configured quote or error, stamped with the
// requested symbol so batch tests can tell results apart.
func (m *MockMarketClient) FetchQuote(_ context.Context, symbol string) (model.Quote, error) {
	m.mu.Lock()
	m.quoteCalls++
	delay, err, quote := m.Delay, m.MockError, m.MockQuote
	m.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return model.Quote{}, err
	}
	quote.Symbol = symbol
	quote.LastUpdated = time.Now().UTC()
	return quote, nil
}

// FetchSeries returns the configured series or error.
func (m *MockMarketClient) FetchSeries(_ context.Context, _ string, _ model.Timeframe) ([]model.SeriesPoint, error) {
	m.mu.Lock()
	m.seriesCalls++
	delay, err, series := m.Delay, m.MockError, m.MockSeries
	m.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return nil, err
	}
	return series, nil
}

// SearchSymbols returns the configured search results or error.
func (m *MockMarketClient) SearchSymbols(_ context.Context, _ string) ([]model.SearchResult, error) {
	m.mu.Lock()
	m.searchCalls++
	err, results := m.MockError, m.MockSearch
	m.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return results, nil
}

// Configured reports the mock as configured unless Unconfigured is set.
func (m *MockMarketClient) Configured() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.Unconfigured
}

// SetAPIKey flips the mock to configured when given a non-empty key.
func (m *MockMarketClient) SetAPIKey(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Unconfigured = key == ""
}

// QuoteCalls returns how many times FetchQuote was invoked.
func (m *MockMarketClient) QuoteCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.quoteCalls
}

// SeriesCalls returns how many times FetchSeries was invoked.
func (m *MockMarketClient) SeriesCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seriesCalls
}

// SearchCalls returns how many times SearchSymbols was invoked.
func (m *MockMarketClient) SearchCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.searchCalls
}

// WithError configures the mock to return the specified error.
func (m *MockMarketClient) WithError(err error) *MockMarketClient {
	m.MockError = err
	return m
}

// WithDelay configures the mock to sleep inside each fetch.
func (m *MockMarketClient) WithDelay(d time.Duration) *MockMarketClient {
	m.Delay = d
	return m
}

// WithEmptySeries configures the mock to return a series with no bars.
func (m *MockMarketClient) WithEmptySeries() *MockMarketClient {
	m.MockSeries = []model.SeriesPoint{}
	return m
}

// CreateMockQuote builds a live-sourced quote around the given price with a
// consistent 52-week band.
func CreateMockQuote(symbol string, price float64) model.Quote {
	return model.Quote{
		Symbol:        symbol,
		Price:         price,
		Change:        1.24,
		ChangePercent: 0.54,
		Volume:        38441100,
		MarketCap:     price * 1.5e10,
		PERatio:       34.8,
		Week52High:    price * 1.15,
		Week52Low:     price * 0.75,
		Sector:        "Technology",
		Description:   "Test issuer",
		LastUpdated:   time.Now().UTC(),
		Source:        model.SourceLive,
	}
}

// CreateMockSeries builds `bars` valid daily bars ending yesterday, walking
// gently upward from basePrice.
func CreateMockSeries(bars int, basePrice float64) []model.SeriesPoint {
	now := time.Now().UTC()
	yesterday := time.Date(now.Year(), now.Month(), now.Day()-1, 0, 0, 0, 0, time.UTC)

	points := make([]model.SeriesPoint, 0, bars)
	for i := 0; i < bars; i++ {
		open := basePrice + float64(i)*0.5
		closePrice := open + 0.25
		points = append(points, model.SeriesPoint{
			Timestamp: yesterday.AddDate(0, 0, -bars+i+1),
			Open:      open,
			High:      open + 1.0,
			Low:       open - 0.5,
			Close:     closePrice,
			Volume:    int64(1000000 + i*10000),
		})
	}
	return points
}
