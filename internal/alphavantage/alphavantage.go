// Package alphavantage talks to the Alpha Vantage market data API: quote
// snapshots, OHLC time series, and symbol search. It normalizes responses
// into the internal model shapes and maps the vendor's quirks (stringly-typed
// numbers, in-band rate-limit notes, empty objects for unknown symbols) onto
// the error taxonomy the stock service recovers from.
package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/apperrors"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/model"
)

// DefaultBaseURL is the production Alpha Vantage endpoint.
const DefaultBaseURL = "https://www.alphavantage.co"

// DefaultTimeout bounds every upstream request.
const DefaultTimeout = 8 * time.Second

// Client is the interface the stock service depends on. The HTTP
// implementation lives here; tests substitute a mock from testutil.
type Client interface {
	// FetchQuote retrieves a current quote plus best-effort fundamentals.
	FetchQuote(ctx context.Context, symbol string) (model.Quote, error)

	// FetchSeries retrieves OHLC bars for the timeframe, sorted ascending by
	// timestamp with malformed bars dropped. An empty slice with a nil error
	// means the vendor legitimately has no data for the symbol/timeframe.
	FetchSeries(ctx context.Context, symbol string, timeframe model.Timeframe) ([]model.SeriesPoint, error)

	// SearchSymbols retrieves upstream symbol matches for a partial query.
	SearchSymbols(ctx context.Context, query string) ([]model.SearchResult, error)

	// Configured reports whether an API key is available. Unconfigured
	// clients fail fast so the service can degrade without burning a call.
	Configured() bool

	// SetAPIKey installs or replaces the API key at runtime.
	SetAPIKey(key string)
}

// FinanceClient is the HTTP implementation of Client.
type FinanceClient struct {
	httpClient *http.Client
	baseURL    string

	mu     sync.RWMutex
	apiKey string
}

// ClientOption configures a FinanceClient.
type ClientOption func(*FinanceClient)

// WithBaseURL points the client at a different endpoint (tests use an
// httptest server).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *FinanceClient) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *FinanceClient) { c.httpClient.Timeout = d }
}

// NewFinanceClient creates a client. An empty apiKey is valid: the client
// stays unconfigured and every fetch fails fast with ErrUpstreamUnavailable,
// leaving the service in cached/synthetic-only mode.
func NewFinanceClient(apiKey string, opts ...ClientOption) *FinanceClient {
	c := &FinanceClient{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		apiKey:     strings.TrimSpace(apiKey),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether an API key is installed.
func (c *FinanceClient) Configured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey != ""
}

// SetAPIKey installs or replaces the API key at runtime.
func (c *FinanceClient) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = strings.TrimSpace(key)
}

func (c *FinanceClient) key() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

// FetchQuote retrieves GLOBAL_QUOTE for the symbol and enriches it with
// OVERVIEW fundamentals. The overview call is best-effort: ETFs and crypto
// return an empty overview, and a failed overview never fails the quote.
func (c *FinanceClient) FetchQuote(ctx context.Context, symbol string) (model.Quote, error) {
	var gq globalQuoteResponse
	if err := c.query(ctx, url.Values{
		"function": {"GLOBAL_QUOTE"},
		"symbol":   {symbol},
	}, &gq); err != nil {
		return model.Quote{}, err
	}
	if gq.rateLimited() {
		return model.Quote{}, fmt.Errorf("%w: %s", apperrors.ErrRateLimited, firstNonEmpty(gq.Note, gq.Information))
	}
	if gq.GlobalQuote.Symbol == "" {
		return model.Quote{}, fmt.Errorf("%w: %s", apperrors.ErrSymbolNotFound, symbol)
	}

	price, err := parseFloat(gq.GlobalQuote.Price)
	if err != nil || price <= 0 {
		return model.Quote{}, fmt.Errorf("%w: bad price %q", apperrors.ErrMalformedPayload, gq.GlobalQuote.Price)
	}

	quote := model.Quote{
		Symbol:        strings.ToUpper(gq.GlobalQuote.Symbol),
		Price:         price,
		Change:        parseFloatOrZero(gq.GlobalQuote.Change),
		ChangePercent: parsePercent(gq.GlobalQuote.ChangePercent),
		Volume:        parseIntOrZero(gq.GlobalQuote.Volume),
		LastUpdated:   time.Now().UTC(),
		Source:        model.SourceLive,
	}

	var ov overviewResponse
	if err := c.query(ctx, url.Values{
		"function": {"OVERVIEW"},
		"symbol":   {symbol},
	}, &ov); err == nil && !ov.rateLimited() && ov.Symbol != "" {
		quote.MarketCap = parseFloatOrZero(ov.MarketCap)
		quote.PERatio = parseFloatOrZero(ov.PERatio)
		quote.Week52High = parseFloatOrZero(ov.FiftyTwoHigh)
		quote.Week52Low = parseFloatOrZero(ov.FiftyTwoLow)
		quote.Sector = ov.Sector
		quote.Description = ov.Description
	}

	return quote, nil
}

// FetchSeries retrieves OHLC bars for the timeframe. Intraday timeframes use
// TIME_SERIES_INTRADAY at the timeframe's bar interval; everything else uses
// TIME_SERIES_DAILY, requesting the full history when the window needs more
// than the compact 100 points.
func (c *FinanceClient) FetchSeries(ctx context.Context, symbol string, timeframe model.Timeframe) ([]model.SeriesPoint, error) {
	params := url.Values{"symbol": {symbol}}
	var seriesKey string

	if timeframe.Intraday() {
		interval := fmt.Sprintf("%dmin", int(timeframe.BarInterval().Minutes()))
		params.Set("function", "TIME_SERIES_INTRADAY")
		params.Set("interval", interval)
		params.Set("outputsize", "compact")
		seriesKey = fmt.Sprintf("Time Series (%s)", interval)
	} else {
		params.Set("function", "TIME_SERIES_DAILY")
		if timeframe.BarCount(time.Now()) > 100 {
			params.Set("outputsize", "full")
		} else {
			params.Set("outputsize", "compact")
		}
		seriesKey = "Time Series (Daily)"
	}

	var raw map[string]json.RawMessage
	if err := c.query(ctx, params, &raw); err != nil {
		return nil, err
	}

	var msgs apiMessages
	for k, v := range raw {
		switch k {
		case "Note":
			_ = json.Unmarshal(v, &msgs.Note)
		case "Information":
			_ = json.Unmarshal(v, &msgs.Information)
		case "Error Message":
			_ = json.Unmarshal(v, &msgs.ErrorMessage)
		}
	}
	if msgs.rateLimited() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRateLimited, firstNonEmpty(msgs.Note, msgs.Information))
	}
	if msgs.ErrorMessage != "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrSymbolNotFound, msgs.ErrorMessage)
	}

	rawBars, ok := raw[seriesKey]
	if !ok {
		// No series block and no error message: the vendor has no data.
		return []model.SeriesPoint{}, nil
	}

	var bars map[string]seriesBar
	if err := json.Unmarshal(rawBars, &bars); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedPayload, err)
	}

	points := parseBars(bars, timeframe.Intraday())
	return trimToWindow(points, timeframe), nil
}

// SearchSymbols retrieves SYMBOL_SEARCH matches, mapping the vendor's
// instrument types onto the internal asset classes.
func (c *FinanceClient) SearchSymbols(ctx context.Context, query string) ([]model.SearchResult, error) {
	var sr searchResponse
	if err := c.query(ctx, url.Values{
		"function": {"SYMBOL_SEARCH"},
		"keywords": {query},
	}, &sr); err != nil {
		return nil, err
	}
	if sr.rateLimited() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRateLimited, firstNonEmpty(sr.Note, sr.Information))
	}

	results := make([]model.SearchResult, 0, len(sr.BestMatches))
	for _, m := range sr.BestMatches {
		if m.Symbol == "" {
			continue
		}
		results = append(results, model.SearchResult{
			Symbol:     strings.ToUpper(m.Symbol),
			Name:       m.Name,
			AssetClass: assetClassFor(m.Type),
			MatchScore: parseFloatOrZero(m.MatchScore),
		})
	}
	return results, nil
}

// query executes one GET against the API and decodes the JSON body into out.
func (c *FinanceClient) query(ctx context.Context, params url.Values, out any) error {
	key := c.key()
	if key == "" {
		return fmt.Errorf("%w: no API key configured", apperrors.ErrUpstreamUnavailable)
	}
	params.Set("apikey", key)

	reqURL := c.baseURL + "/query?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return fmt.Errorf("%w: %v", apperrors.ErrUpstreamTimeout, err)
		}
		return fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMalformedPayload, err)
	}
	return nil
}

// parseBars converts the vendor's date-keyed bar map into sorted points,
// dropping bars with non-numeric fields or high < low.
func parseBars(bars map[string]seriesBar, intraday bool) []model.SeriesPoint {
	layout := "2006-01-02"
	if intraday {
		layout = "2006-01-02 15:04:05"
	}

	points := make([]model.SeriesPoint, 0, len(bars))
	for ts, bar := range bars {
		when, err := time.Parse(layout, ts)
		if err != nil {
			continue
		}
		open, errO := parseFloat(bar.Open)
		high, errH := parseFloat(bar.High)
		low, errL := parseFloat(bar.Low)
		closePrice, errC := parseFloat(bar.Close)
		if errO != nil || errH != nil || errL != nil || errC != nil {
			continue
		}
		p := model.SeriesPoint{
			Timestamp: when.UTC(),
			Open:      open,
			High:      high,
			Low:       low,
			Close:     closePrice,
			Volume:    parseIntOrZero(bar.Volume),
		}
		if !p.Valid() {
			continue
		}
		points = append(points, p)
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})
	return points
}

// trimToWindow drops bars older than the timeframe's window start.
func trimToWindow(points []model.SeriesPoint, timeframe model.Timeframe) []model.SeriesPoint {
	start := timeframe.WindowStart(time.Now().UTC())
	for i, p := range points {
		if !p.Timestamp.Before(start) {
			return points[i:]
		}
	}
	return []model.SeriesPoint{}
}

func assetClassFor(avType string) model.AssetClass {
	switch strings.ToLower(avType) {
	case "etf":
		return model.AssetETF
	case "crypto", "cryptocurrency", "digital currency":
		return model.AssetCrypto
	default:
		return model.AssetEquity
	}
}

func isTimeout(err error) bool {
	var nerr interface{ Timeout() bool }
	return errors.As(err, &nerr) && nerr.Timeout()
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseFloatOrZero(s string) float64 {
	v, err := parseFloat(s)
	if err != nil {
		return 0
	}
	return v
}

func parseIntOrZero(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// parsePercent parses the vendor's "1.0792%" change-percent format.
func parsePercent(s string) float64 {
	return parseFloatOrZero(strings.TrimSuffix(strings.TrimSpace(s), "%"))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
