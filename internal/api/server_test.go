package api

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lumen-network/lumen/internal/adgate"
	"github.com/lumen-network/lumen/internal/clock"
	"github.com/lumen-network/lumen/internal/config"
	"github.com/lumen-network/lumen/internal/domain"
	"github.com/lumen-network/lumen/internal/ledger"
	"github.com/lumen-network/lumen/internal/session"
)

func setupServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	led, err := ledger.Open()
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	t.Cleanup(func() { led.Close() })

	clk := &clock.Fixed{T: time.Date(2025, time.June, 15, 8, 0, 0, 0, time.UTC)}
	feed := NewDecisionFeed()
	sess := session.New(config.DefaultConfig(), clk, led, adgate.Nop{}, feed, rand.New(rand.NewSource(5)))

	srv := NewServer(sess, led, feed)
	return srv, srv.Handler()
}

func TestAPI_State(t *testing.T) {
	_, h := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var snap session.Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Balance != 0 {
		t.Errorf("fresh balance = %v, want 0", snap.Balance)
	}
	if snap.Mining.Active {
		t.Error("fresh session must not be mining")
	}
	if !snap.DailyBonusAvailable {
		t.Error("fresh session should offer the daily bonus")
	}
	if len(snap.Milestones) == 0 || len(snap.Tasks) == 0 {
		t.Error("snapshot should carry milestones and tasks")
	}
}

func TestAPI_PowerThenBoost(t *testing.T) {
	_, h := setupServer(t)

	// Boost before mining: rejected with the reason payload, HTTP 409.
	req := httptest.NewRequest(http.MethodPost, "/api/boost", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	var resp struct {
		Rejected  bool              `json:"rejected"`
		Rejection *domain.Rejection `json:"rejection"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Rejected || resp.Rejection.Code != domain.RejectMiningInactive {
		t.Fatalf("rejection = %+v, want MiningInactive", resp.Rejection)
	}

	// Start mining, then boost succeeds.
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/mining/power", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("power press: expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/boost", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("boost: expected 200, got %d", w.Code)
	}

	var ok struct {
		State session.Snapshot `json:"state"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &ok); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !ok.State.Boost.Active {
		t.Error("boost should be active after accepted press")
	}
}

func TestAPI_DailyBonusClaim(t *testing.T) {
	_, h := setupServer(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/bonus/daily/claim", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("claim: expected 200, got %d", w.Code)
	}

	// Second claim the same day comes back as a 409 rejection.
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/bonus/daily/claim", nil))
	if w.Code != http.StatusConflict {
		t.Fatalf("re-claim: expected 409, got %d", w.Code)
	}
}

func TestAPI_UnknownMilestoneIs404(t *testing.T) {
	_, h := setupServer(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/milestones/m-999/claim", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAPI_LedgerHistory(t *testing.T) {
	_, h := setupServer(t)

	// Claim the daily bonus so the journal has one entry.
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/bonus/daily/claim", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("claim: %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ledger/history?limit=10", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("history: expected 200, got %d", w.Code)
	}

	var resp struct {
		Entries []domain.LedgerEntry `json:"entries"`
		Balance float64              `json:"balance"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(resp.Entries))
	}
	if resp.Entries[0].Source != "daily_bonus" {
		t.Errorf("source = %s, want daily_bonus", resp.Entries[0].Source)
	}
	if resp.Balance < 10 || resp.Balance > 15 {
		t.Errorf("balance = %v, want in [10, 15]", resp.Balance)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ledger/history?limit=bogus", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad limit: expected 400, got %d", w.Code)
	}
}

func TestAPI_Health(t *testing.T) {
	_, h := setupServer(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestDecisionFeed_PublishAndDrop(t *testing.T) {
	feed := NewDecisionFeed()

	ch, unsub := feed.Subscribe()
	defer unsub()
	if feed.ClientCount() != 1 {
		t.Fatalf("clients = %d, want 1", feed.ClientCount())
	}

	feed.Publish(domain.BalanceDelta(1.5, "mining", time.Now()))

	select {
	case data := <-ch:
		var d domain.Decision
		if err := json.Unmarshal(data, &d); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if d.Kind != domain.DecisionBalanceDelta || d.Amount != 1.5 {
			t.Errorf("decision = %+v", d)
		}
	default:
		t.Fatal("expected a broadcast decision")
	}

	// A slow client's full buffer never blocks the publisher.
	for i := 0; i < 100; i++ {
		feed.Publish(domain.ShowInfo("x", "y", time.Now()))
	}
}
