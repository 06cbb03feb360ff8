package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/apperrors"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/model"
)

// SnapshotRepository provides data access for the quote_snapshot and
// daily_close tables. Snapshots hold the last live quote seen per symbol so
// real (if stale) prices survive a restart; daily closes accumulate a price
// history for portfolio valuation.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// SaveQuote upserts the latest live quote for a symbol and records its close
// for the trading day. Only ever called with live upstream data; synthetic
// quotes are never persisted.
func (r *SnapshotRepository) SaveQuote(q model.Quote) error {
	_, err := r.db.Exec(`
		INSERT INTO quote_snapshot (
			id, symbol, price, change, change_percent, volume,
			market_cap, pe_ratio, week52_high, week52_low,
			sector, description, fetched_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(symbol) DO UPDATE SET
			price = excluded.price,
			change = excluded.change,
			change_percent = excluded.change_percent,
			volume = excluded.volume,
			market_cap = excluded.market_cap,
			pe_ratio = excluded.pe_ratio,
			week52_high = excluded.week52_high,
			week52_low = excluded.week52_low,
			sector = excluded.sector,
			description = excluded.description,
			fetched_at = excluded.fetched_at
	`,
		uuid.New().String(), q.Symbol, q.Price, q.Change, q.ChangePercent, q.Volume,
		q.MarketCap, q.PERatio, q.Week52High, q.Week52Low,
		q.Sector, q.Description, q.LastUpdated.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save quote snapshot: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO daily_close (id, symbol, date, close, volume)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(symbol, date) DO UPDATE SET
			close = excluded.close,
			volume = excluded.volume
	`,
		uuid.New().String(), q.Symbol, q.LastUpdated.UTC().Format("2006-01-02"), q.Price, q.Volume,
	)
	if err != nil {
		return fmt.Errorf("failed to save daily close: %w", err)
	}
	return nil
}

// LatestQuote returns the persisted snapshot for a symbol, marked stale.
// Returns ErrSnapshotNotFound when the symbol has never been persisted.
func (r *SnapshotRepository) LatestQuote(symbol string) (model.Quote, error) {
	var q model.Quote
	var sector, description sql.NullString
	var fetchedAt time.Time

	err := r.db.QueryRow(`
		SELECT symbol, price, change, change_percent, volume,
		       market_cap, pe_ratio, week52_high, week52_low,
		       sector, description, fetched_at
		FROM quote_snapshot
		WHERE symbol = ?
	`, symbol).Scan(
		&q.Symbol, &q.Price, &q.Change, &q.ChangePercent, &q.Volume,
		&q.MarketCap, &q.PERatio, &q.Week52High, &q.Week52Low,
		&sector, &description, &fetchedAt,
	)
	if err == sql.ErrNoRows {
		return model.Quote{}, apperrors.ErrSnapshotNotFound
	}
	if err != nil {
		return model.Quote{}, fmt.Errorf("failed to load quote snapshot: %w", err)
	}

	q.Sector = sector.String
	q.Description = description.String
	q.LastUpdated = fetchedAt.UTC()
	q.Source = model.SourceStale
	return q, nil
}

// CloseHistory returns up to limit daily closes for a symbol, oldest first.
func (r *SnapshotRepository) CloseHistory(symbol string, limit int) ([]model.SeriesPoint, error) {
	rows, err := r.db.Query(`
		SELECT date, close, volume
		FROM daily_close
		WHERE symbol = ?
		ORDER BY date DESC
		LIMIT ?
	`, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load close history: %w", err)
	}
	defer rows.Close()

	var points []model.SeriesPoint
	for rows.Next() {
		// The DATE decltype makes the driver hand the column back as
		// time.Time, so scan it directly rather than parsing text.
		var date time.Time
		var p model.SeriesPoint
		if err := rows.Scan(&date, &p.Close, &p.Volume); err != nil {
			return nil, fmt.Errorf("failed to scan close history row: %w", err)
		}
		p.Timestamp = date.UTC()
		p.Open = p.Close
		p.High = p.Close
		p.Low = p.Close
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read close history: %w", err)
	}

	// Reverse into ascending order
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points, nil
}

// Count returns how many symbols have persisted snapshots.
func (r *SnapshotRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM quote_snapshot`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count snapshots: %w", err)
	}
	return n, nil
}
