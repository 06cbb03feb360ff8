package service

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/alphavantage"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/apperrors"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/cache"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/catalog"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/model"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/ratelimit"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/repository"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/synthetic"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/validation"
)

// quoteFetchCost is the rate budget of one quote refresh: GLOBAL_QUOTE plus
// the OVERVIEW fundamentals call.
const quoteFetchCost = 2

// batchConcurrency bounds the fan-out of GetMultipleStocks.
const batchConcurrency = 5

// DefaultWatchlist is the fixed set of popular symbols warmed at startup and
// refreshed by the background scheduler.
var DefaultWatchlist = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA",
	"TSLA", "META", "SPY", "QQQ", "BTC",
}

// StockService is the orchestration core of the market data layer. Every
// data operation resolves through the same ladder: fresh cache, then a
// governor-approved live fetch, then stale cache, then persisted snapshot,
// then synthetic generation. Stale real data always beats synthetic data,
// and no data operation ever returns an error: a full upstream outage
// degrades to synthetic payloads, not failures.
type StockService struct {
	client    alphavantage.Client
	governor  *ratelimit.Governor
	catalog   *catalog.Catalog
	generator *synthetic.Generator
	snapshots *repository.SnapshotRepository

	quotes *cache.Store[model.Quote]
	series *cache.Store[[]model.SeriesPoint]

	// flight coalesces concurrent refreshes per (kind, symbol) key so a burst
	// of identical requests costs one upstream call.
	flight singleflight.Group

	intradayTTL time.Duration
	dailyTTL    time.Duration
	watchlist   []string
}

// NewStockService creates a StockService with the provided dependencies.
// snapshots may be nil, disabling the persistent fallback tier.
func NewStockService(
	client alphavantage.Client,
	governor *ratelimit.Governor,
	cat *catalog.Catalog,
	generator *synthetic.Generator,
	snapshots *repository.SnapshotRepository,
	quotes *cache.Store[model.Quote],
	series *cache.Store[[]model.SeriesPoint],
	intradayTTL, dailyTTL time.Duration,
	watchlist []string,
) *StockService {
	if len(watchlist) == 0 {
		watchlist = DefaultWatchlist
	}
	return &StockService{
		client:      client,
		governor:    governor,
		catalog:     cat,
		generator:   generator,
		snapshots:   snapshots,
		quotes:      quotes,
		series:      series,
		intradayTTL: intradayTTL,
		dailyTTL:    dailyTTL,
		watchlist:   watchlist,
	}
}

// GetStockData returns a quote for the symbol. It never fails: invalid or
// unknown symbols and upstream outages all degrade to a synthetic quote
// seeded from the catalog. The returned Source field tells callers what
// they got.
func (s *StockService) GetStockData(ctx context.Context, symbol string) model.Quote {
	sym, err := validation.NormalizeSymbol(symbol)
	if err != nil {
		// Unusable ticker: no cache key to work with, synthesize directly.
		return s.generator.Quote(s.catalog.LookupOrPlaceholder(symbol))
	}

	if q, fresh, ok := s.quotes.Get(sym); ok && fresh {
		return markCached(q)
	}

	v, _, _ := s.flight.Do("quote:"+sym, func() (interface{}, error) {
		return s.refreshQuote(ctx, sym), nil
	})
	return v.(model.Quote)
}

// refreshQuote walks the fallback ladder below the fresh-cache tier.
// Always returns a usable quote.
func (s *StockService) refreshQuote(ctx context.Context, sym string) model.Quote {
	if s.client.Configured() && s.governor.TryAcquireN(quoteFetchCost) {
		quote, err := s.client.FetchQuote(ctx, sym)
		if err == nil {
			quote = s.fillFromCatalog(quote)
			s.quotes.Put(sym, quote)
			s.persistQuote(quote)
			return quote
		}
		log.Printf("quote fetch failed symbol=%s: %v", sym, err)
	}

	// Stale cache beats everything below it: it is real data.
	if q, _, ok := s.quotes.Get(sym); ok {
		return markStale(q)
	}

	if s.snapshots != nil {
		q, err := s.snapshots.LatestQuote(sym)
		if err == nil {
			return q
		}
		if !errors.Is(err, apperrors.ErrSnapshotNotFound) {
			log.Printf("snapshot lookup failed symbol=%s: %v", sym, err)
		}
	}

	entry := s.catalog.LookupOrPlaceholder(sym)
	// Align the quote with an already-generated intraday chart when one is
	// cached, so the symbol's card and chart agree.
	var q model.Quote
	if pts, _, ok := s.series.Get(seriesKey(sym, model.Timeframe1D)); ok && len(pts) > 0 {
		q = s.generator.QuoteFromSeries(entry, pts)
	} else {
		q = s.generator.Quote(entry)
	}
	// Cache the synthetic quote too: a burst of requests for a dead symbol
	// should not regenerate (and re-randomize) it on every call.
	s.quotes.Put(sym, q)
	return q
}

// GetChartData returns an OHLC series for the symbol and timeframe, walking
// the same fallback ladder as GetStockData, keyed per (symbol, timeframe).
// An upstream response with no bars is treated like an unknown symbol and
// replaced with a synthetic series so charts always render.
func (s *StockService) GetChartData(ctx context.Context, symbol string, timeframe model.Timeframe) []model.SeriesPoint {
	sym, err := validation.NormalizeSymbol(symbol)
	if err != nil {
		return s.generator.Series(s.catalog.LookupOrPlaceholder(symbol), timeframe, 0)
	}

	key := seriesKey(sym, timeframe)
	if pts, fresh, ok := s.series.Get(key); ok && fresh && len(pts) > 0 {
		return pts
	}

	v, _, _ := s.flight.Do(key, func() (interface{}, error) {
		return s.refreshSeries(ctx, sym, timeframe), nil
	})
	return v.([]model.SeriesPoint)
}

func (s *StockService) refreshSeries(ctx context.Context, sym string, timeframe model.Timeframe) []model.SeriesPoint {
	key := seriesKey(sym, timeframe)
	ttl := s.seriesTTL(timeframe)

	if s.client.Configured() && s.governor.TryAcquire() {
		pts, err := s.client.FetchSeries(ctx, sym, timeframe)
		if err == nil && len(pts) > 0 {
			s.series.PutTTL(key, pts, ttl)
			return pts
		}
		if err != nil {
			log.Printf("series fetch failed symbol=%s timeframe=%s: %v", sym, timeframe, err)
		} else {
			log.Printf("series empty upstream symbol=%s timeframe=%s", sym, timeframe)
		}
	}

	if pts, _, ok := s.series.Get(key); ok && len(pts) > 0 {
		return pts
	}

	// Seed the synthetic walk from the cached quote when there is one, so a
	// symbol's chart and card agree on the current price region.
	base := 0.0
	if q, _, ok := s.quotes.Get(sym); ok {
		base = q.Price
	}
	pts := s.generator.Series(s.catalog.LookupOrPlaceholder(sym), timeframe, base)
	s.series.PutTTL(key, pts, ttl)
	return pts
}

// GetMultipleStocks fans out GetStockData across the symbols concurrently
// and returns quotes in the same order as the input. One symbol's fallback
// never affects another's result.
func (s *StockService) GetMultipleStocks(ctx context.Context, symbols []string) []model.Quote {
	results := make([]model.Quote, len(symbols))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, symbol := range symbols {
		g.Go(func() error {
			results[i] = s.GetStockData(ctx, symbol)
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	return results
}

// WarmCache eagerly loads quotes for the watchlist, typically at startup and
// from the background scheduler. Individual symbol failures are absorbed by
// the fallback ladder, so warming never fails; it returns how many symbols
// now resolve to live or previously cached real data.
func (s *StockService) WarmCache(ctx context.Context) int {
	quotes := s.GetMultipleStocks(ctx, s.watchlist)

	real := 0
	for _, q := range quotes {
		if q.Source != model.SourceSynthetic {
			real++
		}
	}
	log.Printf("cache warmed: %d/%d watchlist symbols with real data", real, len(quotes))
	return real
}

// Watchlist returns the symbols warmed at startup.
func (s *StockService) Watchlist() []string {
	out := make([]string, len(s.watchlist))
	copy(out, s.watchlist)
	return out
}

// CacheSizes returns the number of cached quote and series entries.
func (s *StockService) CacheSizes() (quotes, series int) {
	return s.quotes.Len(), s.series.Len()
}

// persistQuote writes a live quote through to the snapshot store.
// Best-effort: persistence failures are logged, never surfaced.
func (s *StockService) persistQuote(q model.Quote) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.SaveQuote(q); err != nil {
		log.Printf("snapshot save failed symbol=%s: %v", q.Symbol, err)
	}
}

// fillFromCatalog backfills display fields the vendor left empty and repairs
// a 52-week band that does not bracket the live price.
func (s *StockService) fillFromCatalog(q model.Quote) model.Quote {
	entry, ok := s.catalog.Lookup(q.Symbol)
	if ok {
		if q.Sector == "" {
			q.Sector = entry.Sector
		}
		if q.Description == "" {
			q.Description = entry.Name
		}
	}
	if q.Week52High > 0 && q.Price > q.Week52High {
		q.Week52High = q.Price
	}
	if q.Week52Low > 0 && q.Price < q.Week52Low {
		q.Week52Low = q.Price
	}
	return q
}

func (s *StockService) seriesTTL(timeframe model.Timeframe) time.Duration {
	if timeframe.Intraday() {
		return s.intradayTTL
	}
	return s.dailyTTL
}

func seriesKey(sym string, timeframe model.Timeframe) string {
	return "series:" + string(timeframe) + ":" + sym
}

// markCached relabels a fresh cache hit, preserving the synthetic marker so
// callers can still tell generated data from real data.
func markCached(q model.Quote) model.Quote {
	if q.Source == model.SourceLive {
		q.Source = model.SourceCached
	}
	return q
}

// markStale relabels an expired cache entry served as a fallback.
func markStale(q model.Quote) model.Quote {
	if q.Source != model.SourceSynthetic {
		q.Source = model.SourceStale
	}
	return q
}
