package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Server.Port != "5002" {
			t.Errorf("Expected default port 5002, got %s", cfg.Server.Port)
		}
		if cfg.Server.Addr != "localhost:5002" {
			t.Errorf("Expected combined addr localhost:5002, got %s", cfg.Server.Addr)
		}
		if cfg.MarketData.CallsPerMinute != 5 || cfg.MarketData.CallsPerDay != 25 {
			t.Errorf("Expected free-tier rate defaults 5/25, got %d/%d",
				cfg.MarketData.CallsPerMinute, cfg.MarketData.CallsPerDay)
		}
		if cfg.MarketData.QuoteTTL != time.Minute {
			t.Errorf("Expected 1m quote TTL, got %s", cfg.MarketData.QuoteTTL)
		}
		if cfg.MarketData.RefreshCron == "" {
			t.Error("Expected watchlist refresh enabled by default")
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "8080")
		t.Setenv("MARKET_DATA_CALLS_PER_MINUTE", "75")
		t.Setenv("QUOTE_TTL", "90s")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Server.Port != "8080" {
			t.Errorf("Expected port 8080, got %s", cfg.Server.Port)
		}
		if cfg.MarketData.CallsPerMinute != 75 {
			t.Errorf("Expected 75 calls per minute, got %d", cfg.MarketData.CallsPerMinute)
		}
		if cfg.MarketData.QuoteTTL != 90*time.Second {
			t.Errorf("Expected 90s quote TTL, got %s", cfg.MarketData.QuoteTTL)
		}
	})

	t.Run("malformed numeric values fall back to defaults", func(t *testing.T) {
		t.Setenv("MARKET_DATA_CALLS_PER_DAY", "lots")
		t.Setenv("QUOTE_TTL", "soon")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.MarketData.CallsPerDay != 25 {
			t.Errorf("Expected default 25 calls per day, got %d", cfg.MarketData.CallsPerDay)
		}
		if cfg.MarketData.QuoteTTL != time.Minute {
			t.Errorf("Expected default 1m quote TTL, got %s", cfg.MarketData.QuoteTTL)
		}
	})
}
