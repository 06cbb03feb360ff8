package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the embedded goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Latest live quote per symbol
		CREATE TABLE IF NOT EXISTS quote_snapshot (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(12) NOT NULL UNIQUE,
			price REAL NOT NULL,
			change REAL NOT NULL DEFAULT 0,
			change_percent REAL NOT NULL DEFAULT 0,
			volume INTEGER NOT NULL DEFAULT 0,
			market_cap REAL NOT NULL DEFAULT 0,
			pe_ratio REAL NOT NULL DEFAULT 0,
			week52_high REAL NOT NULL DEFAULT 0,
			week52_low REAL NOT NULL DEFAULT 0,
			sector TEXT,
			description TEXT,
			fetched_at TIMESTAMP NOT NULL
		);

		-- Append-only close history
		CREATE TABLE IF NOT EXISTS daily_close (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(12) NOT NULL,
			date DATE NOT NULL,
			close REAL NOT NULL,
			volume INTEGER NOT NULL DEFAULT 0,
			UNIQUE (symbol, date)
		);
		CREATE INDEX IF NOT EXISTS idx_daily_close_symbol_date ON daily_close (symbol, date);

		-- Key/value settings, credential values fernet-encrypted
		CREATE TABLE IF NOT EXISTS app_setting (
			key VARCHAR(64) NOT NULL PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
	`
	_, err := db.Exec(schema)
	return err
}
