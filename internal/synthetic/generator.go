// Package synthetic generates plausible placeholder market data. It is the
// fallback of last resort when live data is unavailable, rate limited, or the
// symbol is unknown upstream, so it never fails: every call returns a payload
// that satisfies the same shape invariants as real data.
package synthetic

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/catalog"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/model"
)

// maxStepPercent bounds the per-bar move of the random walk so charts look
// continuous rather than jagged.
const maxStepPercent = 0.02

// Generator produces random-walk quotes and series seeded from catalog
// metadata. Not deterministic, but every payload is internally consistent.
// Safe for concurrent use; the batch fan-out hits it from many goroutines.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the generator's time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithSeed fixes the random source, for reproducible tests.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.rng = rand.New(rand.NewSource(seed)) }
}

// NewGenerator creates a generator with a time-seeded random source.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Quote builds a synthetic quote around the catalog entry's seed price. The
// daily change is derived from the generated previous close so change and
// changePercent always agree in sign and magnitude, and the 52-week band
// always brackets the price.
func (g *Generator) Quote(entry catalog.Entry) model.Quote {
	base := entry.BasePrice
	if base <= 0 {
		base = 100
	}

	// Drift the seed so repeated fallbacks for the same symbol vary.
	price := round2(base * (1 + g.randRange(-0.03, 0.03)))
	changePct := g.randRange(-2.5, 2.5)
	prevClose := price / (1 + changePct/100)
	change := round2(price - prevClose)

	high52 := round2(price * (1 + g.randRange(0.05, 0.40)))
	low52 := round2(price * (1 - g.randRange(0.05, 0.40)))
	if low52 <= 0 {
		low52 = round2(price * 0.5)
	}

	volume := int64(g.randRange(1e6, 8e7))
	sharesOut := g.randRange(5e8, 5e9)

	return model.Quote{
		Symbol:        entry.Symbol,
		Price:         price,
		Change:        change,
		ChangePercent: round2(changePct),
		Volume:        volume,
		MarketCap:     math.Round(price * sharesOut),
		PERatio:       round2(g.randRange(10, 45)),
		Week52High:    high52,
		Week52Low:     low52,
		Sector:        entry.Sector,
		Description:   entry.Name,
		LastUpdated:   g.now(),
		Source:        model.SourceSynthetic,
	}
}

// Series builds a synthetic OHLCV series for the timeframe as a bounded
// random walk from basePrice (falling back to the entry's seed). Bars are
// spaced by the timeframe's interval, strictly increasing, ending at the
// current time, and each bar satisfies low <= open,close <= high.
func (g *Generator) Series(entry catalog.Entry, timeframe model.Timeframe, basePrice float64) []model.SeriesPoint {
	if basePrice <= 0 {
		basePrice = entry.BasePrice
	}
	if basePrice <= 0 {
		basePrice = 100
	}

	now := g.now()
	count := timeframe.BarCount(now)
	interval := timeframe.BarInterval()

	points := make([]model.SeriesPoint, 0, count)
	prevClose := basePrice * (1 + g.randRange(-maxStepPercent, maxStepPercent)*float64(count)/4)
	if prevClose <= 0 {
		prevClose = basePrice
	}

	for i := 0; i < count; i++ {
		ts := now.Add(-time.Duration(count-i) * interval)

		open := prevClose
		closePrice := open * (1 + g.randRange(-maxStepPercent, maxStepPercent))
		if closePrice <= 0 {
			closePrice = open
		}

		high := math.Max(open, closePrice) * (1 + g.randRange(0, maxStepPercent/2))
		low := math.Min(open, closePrice) * (1 - g.randRange(0, maxStepPercent/2))

		points = append(points, model.SeriesPoint{
			Timestamp: ts,
			Open:      round2(open),
			High:      round2(high),
			Low:       round2(low),
			Close:     round2(closePrice),
			Volume:    int64(g.randRange(5e5, 2e7)),
		})
		prevClose = closePrice
	}

	return clampBars(points)
}

// QuoteFromSeries builds a synthetic quote whose price and daily change agree
// with the first and last bars of the given series, so a symbol's card and
// chart tell the same story.
func (g *Generator) QuoteFromSeries(entry catalog.Entry, series []model.SeriesPoint) model.Quote {
	q := g.Quote(entry)
	if len(series) == 0 {
		return q
	}

	first := series[0]
	last := series[len(series)-1]
	q.Price = last.Close
	q.Change = round2(last.Close - first.Open)
	if first.Open != 0 {
		q.ChangePercent = round2((last.Close - first.Open) / first.Open * 100)
	}
	if q.Week52High < q.Price {
		q.Week52High = round2(q.Price * 1.1)
	}
	if q.Week52Low > q.Price {
		q.Week52Low = round2(q.Price * 0.9)
	}
	return q
}

// clampBars repairs any rounding drift so the OHLC invariants hold exactly.
func clampBars(points []model.SeriesPoint) []model.SeriesPoint {
	for i := range points {
		p := &points[i]
		p.High = math.Max(p.High, math.Max(p.Open, p.Close))
		p.Low = math.Min(p.Low, math.Min(p.Open, p.Close))
	}
	return points
}

func (g *Generator) randRange(min, max float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return min + g.rng.Float64()*(max-min)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
