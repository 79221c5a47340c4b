// Package store persists fetched price histories in a local SQLite database,
// so correlation runs can work fully offline once the watchlist has been
// fetched at least once.
package store

import (
	"database/sql"
	"fmt"

	"github.com/nroux/assetcorr"
	"github.com/nroux/assetcorr/date"
	"github.com/nroux/assetcorr/yahoo"

	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed quote archive.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the archive database and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tickers (
			ticker     TEXT PRIMARY KEY,
			currency   TEXT NOT NULL,
			fetched_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS quotes (
			ticker TEXT NOT NULL,
			day    TEXT NOT NULL,
			close  REAL NOT NULL,
			PRIMARY KEY (ticker, day)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_ticker ON quotes(ticker)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveHistory upserts a fetched history into the archive.
func (s *Store) SaveHistory(h *yahoo.History) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO tickers(ticker, currency, fetched_at) VALUES(?, ?, ?)
		ON CONFLICT(ticker) DO UPDATE SET currency=excluded.currency, fetched_at=excluded.fetched_at`,
		h.Ticker, h.Currency, h.Fetched.String())
	if err != nil {
		return fmt.Errorf("save ticker %s: %w", h.Ticker, err)
	}

	insert, err := tx.Prepare(`INSERT INTO quotes(ticker, day, close) VALUES(?, ?, ?)
		ON CONFLICT(ticker, day) DO UPDATE SET close=excluded.close`)
	if err != nil {
		return err
	}
	defer insert.Close()
	for _, q := range h.Quotes {
		if _, err := insert.Exec(h.Ticker, q.Day.String(), q.Close); err != nil {
			return fmt.Errorf("save quote %s %s: %w", h.Ticker, q.Day, err)
		}
	}
	return tx.Commit()
}

// LoadHistory reads the archived history of a ticker. A ticker never saved
// yields sql.ErrNoRows.
func (s *Store) LoadHistory(ticker string) (*yahoo.History, error) {
	h := &yahoo.History{Ticker: ticker}
	var fetched string
	err := s.db.QueryRow(`SELECT currency, fetched_at FROM tickers WHERE ticker = ?`, ticker).
		Scan(&h.Currency, &fetched)
	if err != nil {
		return nil, fmt.Errorf("load ticker %s: %w", ticker, err)
	}
	if h.Fetched, err = date.Parse(fetched); err != nil {
		return nil, fmt.Errorf("load ticker %s: %w", ticker, err)
	}

	rows, err := s.db.Query(`SELECT day, close FROM quotes WHERE ticker = ? ORDER BY day`, ticker)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var day string
		var q assetcorr.Quote
		if err := rows.Scan(&day, &q.Close); err != nil {
			return nil, err
		}
		if q.Day, err = date.Parse(day); err != nil {
			return nil, fmt.Errorf("load quote %s: %w", ticker, err)
		}
		h.Quotes = append(h.Quotes, q)
	}
	return h, rows.Err()
}

// Tickers lists the archived tickers.
func (s *Store) Tickers() ([]string, error) {
	rows, err := s.db.Query(`SELECT ticker FROM tickers ORDER BY ticker`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var tickers []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		tickers = append(tickers, t)
	}
	return tickers, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }
