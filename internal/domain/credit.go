package domain

import "time"

// ─── Credit Types ───────────────────────────────────────────────────────────
// These live in domain because they represent core business rules.
// The ledger package implements the journal; these are its row types.

// TransactionType represents the business reason for a credit operation.
type TransactionType string

const (
	TxEarn  TransactionType = "EARN"  // continuous mining accrual
	TxBonus TransactionType = "BONUS" // daily/weekly bonus, milestone, social task
)

// LedgerEntry is a single row in the LSN credit journal.
type LedgerEntry struct {
	ID          int64           `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	Type        TransactionType `json:"type"`
	Source      string          `json:"source"` // "mining", "daily_bonus", "milestone:<id>", ...
	Amount      float64         `json:"amount"`
	Balance     float64         `json:"balance"` // balance after applying Amount
	Description string          `json:"description,omitempty"`
}
