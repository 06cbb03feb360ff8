package service

import (
	"database/sql"
	"strings"

	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/alphavantage"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/apperrors"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/database"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/ratelimit"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/repository"
)

// SystemService handles health checks and market data plumbing status.
type SystemService struct {
	db       *sql.DB
	client   alphavantage.Client
	governor *ratelimit.Governor
	stocks   *StockService
	settings *repository.SettingsRepository
}

// NewSystemService creates a new SystemService. db and settings may be nil
// when the service runs without a snapshot store.
func NewSystemService(
	db *sql.DB,
	client alphavantage.Client,
	governor *ratelimit.Governor,
	stocks *StockService,
	settings *repository.SettingsRepository,
) *SystemService {
	return &SystemService{
		db:       db,
		client:   client,
		governor: governor,
		stocks:   stocks,
		settings: settings,
	}
}

// CheckHealth verifies database connectivity. A nil db is healthy: the
// snapshot store is an optional tier.
func (s *SystemService) CheckHealth() error {
	if s.db == nil {
		return nil
	}
	return database.HealthCheck(s.db)
}

// MarketDataStatus describes the upstream data plumbing without ever leaking
// the credential value.
type MarketDataStatus struct {
	UpstreamConfigured bool            `json:"upstreamConfigured"`
	RateBudget         ratelimit.Usage `json:"rateBudget"`
	CachedQuotes       int             `json:"cachedQuotes"`
	CachedSeries       int             `json:"cachedSeries"`
	Watchlist          []string        `json:"watchlist"`
}

// MarketDataStatus reports whether upstream credentials are configured and
// how much of the rate budget and cache is in use.
func (s *SystemService) MarketDataStatus() MarketDataStatus {
	quotes, series := s.stocks.CacheSizes()
	return MarketDataStatus{
		UpstreamConfigured: s.client.Configured(),
		RateBudget:         s.governor.Snapshot(),
		CachedQuotes:       quotes,
		CachedSeries:       series,
		Watchlist:          s.stocks.Watchlist(),
	}
}

// UpdateAPIKey stores a new upstream credential (encrypted at rest) and
// installs it on the live client so it takes effect without a restart.
func (s *SystemService) UpdateAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return apperrors.ErrEmptyCredential
	}

	if s.settings != nil && s.settings.CanStoreCredentials() {
		if err := s.settings.SaveCredential(repository.SettingAPIKey, key); err != nil {
			return err
		}
	}
	s.client.SetAPIKey(key)
	return nil
}
