package archive

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"MetalWatch/internal/model"
)

// SQLiteArchive keeps a local copy of every fetched price series and quote.
type SQLiteArchive struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteArchive opens (or creates) the SQLite database and runs migrations.
func NewSQLiteArchive(dbPath string) (*SQLiteArchive, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so ad-hoc reads don't block the collector's writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	a := &SQLiteArchive{db: db}
	if err := a.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite archive opened: %s", dbPath)
	return a, nil
}

func (a *SQLiteArchive) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS price_history (
			symbol TEXT NOT NULL,
			date   INTEGER NOT NULL,
			close  REAL,
			volume REAL,
			PRIMARY KEY (symbol, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_history_symbol ON price_history(symbol)`,

		`CREATE TABLE IF NOT EXISTS quote_history (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol    TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			current   REAL,
			prev      REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quote_symbol_ts ON quote_history(symbol, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := a.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordSeries upserts a fetched daily series. Re-fetching the same window
// is idempotent because (symbol, date) is the primary key.
func (a *SQLiteArchive) RecordSeries(symbol string, points []model.PricePoint) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	tx, err := a.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO price_history (symbol, date, close, volume) VALUES (?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.Exec(symbol, p.Date.Unix(), p.Close, p.Volume); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert %s@%s: %w", symbol, p.Date.Format("2006-01-02"), err)
		}
	}
	return tx.Commit()
}

// RecordQuote appends a fetched quote observation.
func (a *SQLiteArchive) RecordQuote(symbol string, quote model.LatestQuote) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, err := a.db.Exec(`INSERT INTO quote_history (symbol, timestamp, current, prev) VALUES (?,?,?,?)`,
		symbol, time.Now().Unix(), quote.Current, quote.Prev,
	)
	return err
}

func (a *SQLiteArchive) Close() error {
	log.Println("[INFO] closing sqlite archive")
	return a.db.Close()
}
