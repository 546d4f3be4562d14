package ledger

import (
	"testing"

	"github.com/lumen-network/lumen/internal/domain"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open()
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLedger_Credit(t *testing.T) {
	l := openTestLedger(t)

	bal, err := l.Credit(domain.TxBonus, "daily_bonus", 12, "daily bonus")
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if bal != 12 {
		t.Errorf("balance = %v, want 12", bal)
	}

	bal, err = l.Credit(domain.TxBonus, "weekly_bonus", 105, "weekly bonus")
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if bal != 117 {
		t.Errorf("balance = %v, want 117", bal)
	}
	if l.Balance() != 117 {
		t.Errorf("Balance() = %v, want 117", l.Balance())
	}
}

func TestLedger_AccrueSkipsJournal(t *testing.T) {
	l := openTestLedger(t)

	for i := 0; i < 10; i++ {
		l.Accrue(0.00105)
	}
	if bal := l.Balance(); bal < 0.0104 || bal > 0.0106 {
		t.Errorf("balance = %v, want ~0.0105", bal)
	}

	entries, err := l.History(10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("accruals must not journal, got %d entries", len(entries))
	}
}

func TestLedger_HistoryNewestFirst(t *testing.T) {
	l := openTestLedger(t)

	l.Credit(domain.TxBonus, "daily_bonus", 10, "")
	l.Credit(domain.TxEarn, "mining", 3.78, "session total")
	l.Credit(domain.TxBonus, "milestone:m-3", 30, "")

	entries, err := l.History(2)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].Source != "milestone:m-3" {
		t.Errorf("newest entry source = %s, want milestone:m-3", entries[0].Source)
	}
	if entries[1].Type != domain.TxEarn {
		t.Errorf("second entry type = %s, want EARN", entries[1].Type)
	}
	if diff := entries[0].Balance - 43.78; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("running balance = %v, want 43.78", entries[0].Balance)
	}
}
