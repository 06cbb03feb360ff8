package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	CORS       CORSConfig
	MarketData MarketDataConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// MarketDataConfig holds upstream vendor and cache tuning.
// APIKey may be empty: the service then runs in cached/synthetic-only mode.
// Rate ceilings default to the Alpha Vantage free tier but are plan-dependent,
// so both are overridable.
type MarketDataConfig struct {
	APIKey         string
	CallsPerMinute int
	CallsPerDay    int
	QuoteTTL       time.Duration
	IntradayTTL    time.Duration
	DailyTTL       time.Duration
	RefreshCron    string // empty disables the background watchlist refresh
	FernetSecret   string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5002"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/market_data.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		MarketData: MarketDataConfig{
			APIKey:         getEnv("ALPHA_VANTAGE_API_KEY", ""),
			CallsPerMinute: getEnvInt("MARKET_DATA_CALLS_PER_MINUTE", 5),
			CallsPerDay:    getEnvInt("MARKET_DATA_CALLS_PER_DAY", 25),
			QuoteTTL:       getEnvDuration("QUOTE_TTL", time.Minute),
			IntradayTTL:    getEnvDuration("INTRADAY_SERIES_TTL", 5*time.Minute),
			DailyTTL:       getEnvDuration("DAILY_SERIES_TTL", time.Hour),
			RefreshCron:    getEnv("WATCHLIST_REFRESH_CRON", "@every 30m"),
			FernetSecret:   getEnv("FERNET_SECRET", ""),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvDuration gets a duration environment variable ("90s", "5m") or
// returns a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
