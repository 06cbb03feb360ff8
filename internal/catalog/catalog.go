// Package catalog holds the static symbol reference table: display metadata
// for the popular tickers the app surfaces, used both to seed synthetic data
// and to answer local symbol search without an upstream call.
package catalog

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/model"
)

// Entry is one immutable reference record for a tradable symbol.
// BasePrice is a plausibility seed for the synthetic generator, not a live price.
type Entry struct {
	Symbol     string           `json:"symbol"`
	Name       string           `json:"name"`
	AssetClass model.AssetClass `json:"assetClass"`
	Sector     string           `json:"sector"`
	LogoColor  string           `json:"logoColor"`
	LogoText   string           `json:"logoText"`
	BasePrice  float64          `json:"-"`
}

// Catalog is the loaded reference table. Built once at startup, never mutated.
type Catalog struct {
	entries []Entry
	bySym   map[string]Entry
}

// New builds a catalog from the given entries. Symbols are upper-cased;
// the last entry wins on duplicate symbols.
func New(entries []Entry) *Catalog {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		bySym:   make(map[string]Entry, len(entries)),
	}
	for _, e := range entries {
		e.Symbol = strings.ToUpper(e.Symbol)
		if _, dup := c.bySym[e.Symbol]; !dup {
			c.entries = append(c.entries, e)
		}
		c.bySym[e.Symbol] = e
	}
	return c
}

// Default returns the built-in catalog of popular symbols.
func Default() *Catalog {
	return New(defaultEntries)
}

// Lookup returns the entry for a symbol, if present.
func (c *Catalog) Lookup(symbol string) (Entry, bool) {
	e, ok := c.bySym[strings.ToUpper(symbol)]
	return e, ok
}

// LookupOrPlaceholder returns the entry for a symbol, or a generic placeholder
// record for symbols outside the catalog so callers always have seed metadata.
func (c *Catalog) LookupOrPlaceholder(symbol string) Entry {
	if e, ok := c.Lookup(symbol); ok {
		return e
	}
	return Entry{
		Symbol:     strings.ToUpper(symbol),
		Name:       strings.ToUpper(symbol) + " Inc.",
		AssetClass: model.AssetEquity,
		Sector:     "Unknown",
		LogoColor:  "#64748B",
		LogoText:   firstRune(symbol),
		BasePrice:  100,
	}
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Symbols returns every catalog symbol in table order.
func (c *Catalog) Symbols() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Symbol
	}
	return out
}

// Match scores used by Search. Exact symbol matches outrank symbol prefixes,
// which outrank name prefixes, which outrank substring hits.
const (
	scoreExactSymbol  = 1.0
	scoreSymbolPrefix = 0.8
	scoreNamePrefix   = 0.6
	scoreSubstring    = 0.4
)

// Search scores catalog entries against a partial query and returns matches
// ordered best-first. Ties break alphabetically by symbol so results are
// stable across calls. The query is matched case-insensitively against both
// symbol and name; non-matching entries are omitted.
func (c *Catalog) Search(query string) []model.SearchResult {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []model.SearchResult
	for _, e := range c.entries {
		score := scoreEntry(e, q)
		if score == 0 {
			continue
		}
		results = append(results, model.SearchResult{
			Symbol:     e.Symbol,
			Name:       e.Name,
			AssetClass: e.AssetClass,
			MatchScore: score,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].MatchScore != results[j].MatchScore {
			return results[i].MatchScore > results[j].MatchScore
		}
		return results[i].Symbol < results[j].Symbol
	})
	return results
}

func scoreEntry(e Entry, q string) float64 {
	name := strings.ToUpper(e.Name)
	switch {
	case e.Symbol == q:
		return scoreExactSymbol
	case strings.HasPrefix(e.Symbol, q):
		return scoreSymbolPrefix
	case strings.HasPrefix(name, q):
		return scoreNamePrefix
	case strings.Contains(e.Symbol, q) || strings.Contains(name, q):
		return scoreSubstring
	default:
		return 0
	}
}

func firstRune(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, r := range s {
		if r == utf8.RuneError {
			break
		}
		return string(r)
	}
	return "?"
}
