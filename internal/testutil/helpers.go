package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/alphavantage"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/cache"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/catalog"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/model"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/ratelimit"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/repository"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/service"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/synthetic"
)

// StockServiceOptions collects the knobs tests most often need to vary.
// Zero values mean: permissive governor, in-memory-only (no snapshot store),
// one-minute quote TTL.
type StockServiceOptions struct {
	Governor  *ratelimit.Governor
	Snapshots *repository.SnapshotRepository
	QuoteTTL  time.Duration
	Clock     func() time.Time
	Watchlist []string
}

// NewTestStockService builds a StockService around the given upstream client
// with isolated caches.
func NewTestStockService(t *testing.T, client alphavantage.Client, opts StockServiceOptions) *service.StockService {
	t.Helper()

	if opts.Governor == nil {
		opts.Governor = ratelimit.NewGovernor(0, 0)
	}
	if opts.QuoteTTL == 0 {
		opts.QuoteTTL = time.Minute
	}

	var quotes *cache.Store[model.Quote]
	var series *cache.Store[[]model.SeriesPoint]
	if opts.Clock != nil {
		quotes = cache.NewStore[model.Quote](opts.QuoteTTL, cache.WithClock[model.Quote](opts.Clock))
		series = cache.NewStore[[]model.SeriesPoint](time.Hour, cache.WithClock[[]model.SeriesPoint](opts.Clock))
	} else {
		quotes = cache.NewStore[model.Quote](opts.QuoteTTL)
		series = cache.NewStore[[]model.SeriesPoint](time.Hour)
	}

	return service.NewStockService(
		client,
		opts.Governor,
		catalog.Default(),
		synthetic.NewGenerator(),
		opts.Snapshots,
		quotes,
		series,
		5*time.Minute,
		time.Hour,
		opts.Watchlist,
	)
}

// NewTestSystemService builds a SystemService over the same dependencies as
// NewTestStockService. db may be nil.
func NewTestSystemService(t *testing.T, db *sql.DB, client alphavantage.Client, stocks *service.StockService) *service.SystemService {
	t.Helper()

	var settings *repository.SettingsRepository
	if db != nil {
		var err error
		settings, err = repository.NewSettingsRepository(db, "")
		if err != nil {
			t.Fatalf("Failed to create settings repository: %v", err)
		}
	}
	return service.NewSystemService(db, client, ratelimit.NewGovernor(0, 0), stocks, settings)
}
