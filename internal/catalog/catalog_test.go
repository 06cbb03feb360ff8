package catalog

import (
	"testing"
	"unicode/utf8"

	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/model"
)

func TestCatalog_Lookup(t *testing.T) {
	c := Default()

	t.Run("finds known symbol case-insensitively", func(t *testing.T) {
		for _, sym := range []string{"AAPL", "aapl", "Aapl"} {
			e, ok := c.Lookup(sym)
			if !ok {
				t.Fatalf("Expected to find %s", sym)
			}
			if e.Symbol != "AAPL" {
				t.Errorf("Expected symbol AAPL, got %s", e.Symbol)
			}
			if e.BasePrice <= 0 {
				t.Errorf("Expected positive base price, got %f", e.BasePrice)
			}
		}
	})

	t.Run("misses unknown symbol", func(t *testing.T) {
		if _, ok := c.Lookup("NOPE"); ok {
			t.Error("Expected miss for unknown symbol")
		}
	})

	t.Run("placeholder logo glyph handles multibyte input", func(t *testing.T) {
		// Unnormalizable symbols reach the placeholder path raw, so the
		// logo glyph must be cut at a rune boundary, not a byte.
		e := c.LookupOrPlaceholder("ölandia")
		if e.LogoText != "Ö" {
			t.Errorf("Expected logo text Ö, got %q", e.LogoText)
		}
		if !utf8.ValidString(e.LogoText) {
			t.Errorf("Logo text is not valid UTF-8: %q", e.LogoText)
		}
	})

	t.Run("placeholder carries usable seed metadata", func(t *testing.T) {
		e := c.LookupOrPlaceholder("zyzz")
		if e.Symbol != "ZYZZ" {
			t.Errorf("Expected upper-cased symbol ZYZZ, got %s", e.Symbol)
		}
		if e.Name == "" || e.BasePrice <= 0 || e.LogoText == "" {
			t.Errorf("Placeholder missing seed fields: %+v", e)
		}
	})
}

func TestCatalog_Default(t *testing.T) {
	c := Default()

	if c.Len() < 20 {
		t.Errorf("Expected a few dozen entries, got %d", c.Len())
	}

	t.Run("every entry is complete", func(t *testing.T) {
		for _, sym := range c.Symbols() {
			e, ok := c.Lookup(sym)
			if !ok {
				t.Fatalf("Symbols() listed %s but Lookup missed it", sym)
			}
			if e.Name == "" || e.Sector == "" || e.LogoColor == "" {
				t.Errorf("%s: incomplete entry %+v", sym, e)
			}
			if e.BasePrice <= 0 {
				t.Errorf("%s: non-positive base price %f", sym, e.BasePrice)
			}
			if e.AssetClass != model.AssetEquity && e.AssetClass != model.AssetETF && e.AssetClass != model.AssetCrypto {
				t.Errorf("%s: unknown asset class %q", sym, e.AssetClass)
			}
		}
	})

	t.Run("covers the major asset classes", func(t *testing.T) {
		classes := map[model.AssetClass]bool{}
		for _, sym := range c.Symbols() {
			e, _ := c.Lookup(sym)
			classes[e.AssetClass] = true
		}
		for _, want := range []model.AssetClass{model.AssetEquity, model.AssetETF, model.AssetCrypto} {
			if !classes[want] {
				t.Errorf("Expected catalog to include asset class %s", want)
			}
		}
	})
}

func TestCatalog_Search(t *testing.T) {
	c := Default()

	t.Run("exact symbol match scores highest", func(t *testing.T) {
		results := c.Search("AAPL")
		if len(results) == 0 {
			t.Fatal("Expected matches")
		}
		if results[0].Symbol != "AAPL" || results[0].MatchScore != scoreExactSymbol {
			t.Errorf("Expected AAPL at score %f first, got %s at %f",
				scoreExactSymbol, results[0].Symbol, results[0].MatchScore)
		}
	})

	t.Run("symbol prefix outranks name match", func(t *testing.T) {
		results := c.Search("MS")
		var msft float64
		for _, r := range results {
			if r.Symbol == "MSFT" {
				msft = r.MatchScore
			}
		}
		if msft != scoreSymbolPrefix {
			t.Errorf("Expected MSFT at prefix score %f, got %f", scoreSymbolPrefix, msft)
		}
	})

	t.Run("matches by company name", func(t *testing.T) {
		results := c.Search("tesla")
		found := false
		for _, r := range results {
			if r.Symbol == "TSLA" {
				found = true
				if r.MatchScore != scoreNamePrefix {
					t.Errorf("Expected name-prefix score %f, got %f", scoreNamePrefix, r.MatchScore)
				}
			}
		}
		if !found {
			t.Error("Expected TSLA among matches for 'tesla'")
		}
	})

	t.Run("results sorted best first with alphabetical ties", func(t *testing.T) {
		results := c.Search("A")
		for i := 1; i < len(results); i++ {
			prev, cur := results[i-1], results[i]
			if cur.MatchScore > prev.MatchScore {
				t.Fatalf("Result %d (%s %f) outscores result %d (%s %f)",
					i, cur.Symbol, cur.MatchScore, i-1, prev.Symbol, prev.MatchScore)
			}
			if cur.MatchScore == prev.MatchScore && cur.Symbol < prev.Symbol {
				t.Fatalf("Tie between %s and %s not broken alphabetically", prev.Symbol, cur.Symbol)
			}
		}
	})

	t.Run("no matches for gibberish", func(t *testing.T) {
		if results := c.Search("XQZV9"); len(results) != 0 {
			t.Errorf("Expected no matches, got %d", len(results))
		}
	})

	t.Run("blank query returns nothing", func(t *testing.T) {
		if results := c.Search("   "); results != nil {
			t.Errorf("Expected nil, got %v", results)
		}
	})
}

func TestNew_DeduplicatesSymbols(t *testing.T) {
	c := New([]Entry{
		{Symbol: "dup", Name: "First", BasePrice: 10},
		{Symbol: "DUP", Name: "Second", BasePrice: 20},
	})
	if c.Len() != 1 {
		t.Fatalf("Expected 1 entry after dedupe, got %d", c.Len())
	}
	e, _ := c.Lookup("DUP")
	if e.Name != "Second" {
		t.Errorf("Expected last duplicate to win, got %s", e.Name)
	}
}
