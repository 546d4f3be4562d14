// Package ledger is the single source of truth for the LSN balance.
// Balance deltas from every engine are applied here atomically, and every
// discrete grant is journaled. The journal lives in an in-memory SQLite
// database: it powers the history view for the current UI session and dies
// with the process — there is deliberately no durable persistence.
package ledger

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lumen-network/lumen/internal/domain"
)

// Ledger applies balance deltas and journals grants.
type Ledger struct {
	mu      sync.Mutex
	db      *sql.DB
	balance float64
}

// migrations returns the journal schema. Each string is a single SQL
// statement (SQLite executes one at a time).
func migrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS ledger_entries (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			ts          TEXT NOT NULL,
			type        TEXT NOT NULL,
			source      TEXT NOT NULL,
			amount      REAL NOT NULL,
			balance     REAL NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ledger_source ON ledger_entries(source)`,
	}
}

// Open creates the in-memory journal and returns a zero-balance ledger.
func Open() (*Ledger, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open ledger db: %w", err)
	}
	// The in-memory database vanishes if its sole connection is recycled.
	db.SetMaxOpenConns(1)

	for _, stmt := range migrations() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate ledger: %w", err)
		}
	}
	return &Ledger{db: db}, nil
}

// Close releases the journal database.
func (l *Ledger) Close() error { return l.db.Close() }

// Balance returns the current LSN balance.
func (l *Ledger) Balance() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// Credit applies a positive delta and journals it in one step.
func (l *Ledger) Credit(txType domain.TransactionType, source string, amount float64, description string) (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.balance += amount
	_, err := l.db.Exec(`
		INSERT INTO ledger_entries (ts, type, source, amount, balance, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`, time.Now().UTC().Format(time.RFC3339Nano), string(txType), source, amount, l.balance, description)
	if err != nil {
		return l.balance, fmt.Errorf("journal entry: %w", err)
	}
	return l.balance, nil
}

// Accrue applies a per-tick mining fraction without a journal row. Tick
// fractions arrive once per second; the session runner journals the running
// total as one EARN entry when the session stops or finishes.
func (l *Ledger) Accrue(amount float64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance += amount
	return l.balance
}

// Settle journals an amount that has already been applied through Accrue.
// The balance is unchanged; the row records where the accrued LSN came from.
func (l *Ledger) Settle(txType domain.TransactionType, source string, amount float64, description string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := l.db.Exec(`
		INSERT INTO ledger_entries (ts, type, source, amount, balance, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`, time.Now().UTC().Format(time.RFC3339Nano), string(txType), source, amount, l.balance, description)
	if err != nil {
		return fmt.Errorf("journal settlement: %w", err)
	}
	return nil
}

// History returns the most recent journal entries, newest first.
func (l *Ledger) History(limit int) ([]domain.LedgerEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.db.Query(`
		SELECT id, ts, type, source, amount, balance, description
		FROM ledger_entries ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		var ts, txType string
		if err := rows.Scan(&e.ID, &ts, &txType, &e.Source, &e.Amount, &e.Balance, &e.Description); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Type = domain.TransactionType(txType)
		e.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		out = append(out, e)
	}
	return out, rows.Err()
}
