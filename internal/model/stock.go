package model

import "time"

// DataSource marks where a quote or series payload came from. The market data
// layer never fails a lookup; it degrades through these sources in order, and
// callers can inspect the marker to tell live data from a fallback.
type DataSource string

const (
	// SourceLive means the payload was fetched from the upstream API during this request.
	SourceLive DataSource = "live"

	// SourceCached means the payload was served from a fresh cache entry.
	SourceCached DataSource = "cached"

	// SourceStale means the payload is real upstream data whose TTL has expired,
	// served because a live refresh was unavailable.
	SourceStale DataSource = "stale"

	// SourceSynthetic means the payload was generated locally as a last resort.
	SourceSynthetic DataSource = "synthetic"
)

// Live reports whether the payload reflects an upstream fetch made during this request.
func (s DataSource) Live() bool {
	return s == SourceLive
}

// Quote is a point-in-time price and fundamentals snapshot for one symbol.
// Zero values for MarketCap and PERatio mean unknown / not applicable.
type Quote struct {
	Symbol        string     `json:"symbol"`
	Price         float64    `json:"price"`
	Change        float64    `json:"change"`
	ChangePercent float64    `json:"changePercent"`
	Volume        int64      `json:"volume"`
	MarketCap     float64    `json:"marketCap"`
	PERatio       float64    `json:"peRatio"`
	Week52High    float64    `json:"week52High"`
	Week52Low     float64    `json:"week52Low"`
	Sector        string     `json:"sector"`
	Description   string     `json:"description"`
	LastUpdated   time.Time  `json:"lastUpdated"`
	Source        DataSource `json:"source"`
}

// SeriesPoint is a single OHLCV bar in a price time series.
// Invariant: Low <= Open <= High and Low <= Close <= High.
type SeriesPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`
}

// Valid reports whether the bar satisfies the OHLC invariants.
func (p SeriesPoint) Valid() bool {
	if p.High < p.Low {
		return false
	}
	if p.Open < p.Low || p.Open > p.High {
		return false
	}
	if p.Close < p.Low || p.Close > p.High {
		return false
	}
	return true
}

// AssetClass categorizes a tradable instrument.
type AssetClass string

const (
	AssetEquity AssetClass = "equity"
	AssetCrypto AssetClass = "crypto"
	AssetETF    AssetClass = "etf"
)

// SearchResult is one ranked match for a symbol search query.
// Results are ephemeral: computed per query, never persisted.
type SearchResult struct {
	Symbol     string     `json:"symbol"`
	Name       string     `json:"name"`
	AssetClass AssetClass `json:"assetClass"`
	MatchScore float64    `json:"matchScore"`
}
