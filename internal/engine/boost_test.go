package engine

import (
	"testing"
	"time"

	"github.com/lumen-network/lumen/internal/clock"
	"github.com/lumen-network/lumen/internal/domain"
)

func testBoost() Boost {
	return Boost{
		DurationSeconds: 1800,
		Cooldown:        30 * time.Minute,
		DailyLimit:      5,
	}
}

func TestBoost_CanActivate_Precedence(t *testing.T) {
	b := testBoost()
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-5 * time.Minute)

	tests := []struct {
		name         string
		session      domain.BoostSession
		miningActive bool
		wantVerdict  Verdict
		wantCode     domain.RejectionCode // empty = no rejection
	}{
		{
			name:         "mining inactive rejected first",
			session:      domain.BoostSession{Active: true, UsesToday: 9},
			miningActive: false,
			wantCode:     domain.RejectMiningInactive,
		},
		{
			name:         "already active shows status, beats limit and cooldown",
			session:      domain.BoostSession{Active: true, UsesToday: 9, LastActivatedAt: &recent},
			miningActive: true,
			wantVerdict:  ShowStatus,
		},
		{
			name:         "daily limit beats cooldown",
			session:      domain.BoostSession{UsesToday: 5, LastActivatedAt: &recent},
			miningActive: true,
			wantCode:     domain.RejectDailyLimit,
		},
		{
			name:         "cooling down",
			session:      domain.BoostSession{UsesToday: 2, LastActivatedAt: &recent},
			miningActive: true,
			wantCode:     domain.RejectOnCooldown,
		},
		{
			name:         "eligible",
			session:      domain.BoostSession{UsesToday: 2},
			miningActive: true,
			wantVerdict:  Eligible,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, rej := b.CanActivate(tt.session, tt.miningActive, now)
			if tt.wantCode != "" {
				if rej == nil {
					t.Fatalf("expected rejection %s, got none", tt.wantCode)
				}
				if rej.Code != tt.wantCode {
					t.Errorf("code = %s, want %s", rej.Code, tt.wantCode)
				}
				return
			}
			if rej != nil {
				t.Fatalf("unexpected rejection: %v", rej)
			}
			if verdict != tt.wantVerdict {
				t.Errorf("verdict = %v, want %v", verdict, tt.wantVerdict)
			}
		})
	}
}

func TestBoost_CooldownRemainingMinutesCeiling(t *testing.T) {
	b := testBoost()
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	// 29m30s elapsed — 30s left on the cooldown rounds up to 1 minute.
	last := now.Add(-29*time.Minute - 30*time.Second)
	_, rej := b.CanActivate(domain.BoostSession{LastActivatedAt: &last}, true, now)
	if rej == nil || rej.Code != domain.RejectOnCooldown {
		t.Fatalf("expected cooldown rejection, got %v", rej)
	}
	if rej.RemainingMinutes != 1 {
		t.Errorf("remaining minutes = %d, want 1", rej.RemainingMinutes)
	}

	// 10m elapsed — 20 minutes left.
	last = now.Add(-10 * time.Minute)
	_, rej = b.CanActivate(domain.BoostSession{LastActivatedAt: &last}, true, now)
	if rej == nil || rej.RemainingMinutes != 20 {
		t.Errorf("remaining minutes = %v, want 20", rej)
	}
}

func TestBoost_ActivateTwiceWithinCooldown(t *testing.T) {
	b := testBoost()
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	s := b.Activate(domain.BoostSession{}, now)
	if !s.Active || s.RemainingSeconds != 1800 || s.UsesToday != 1 {
		t.Fatalf("activate = %+v", s)
	}

	// Boost runs out, second press lands inside the cooldown window.
	s.Active = false
	_, rej := b.CanActivate(s, true, now.Add(10*time.Minute))
	if rej == nil || rej.Code != domain.RejectOnCooldown {
		t.Fatalf("expected OnCooldown, got %v", rej)
	}

	// After the cooldown elapses and with uses left, activation succeeds.
	verdict, rej := b.CanActivate(s, true, now.Add(31*time.Minute))
	if rej != nil || verdict != Eligible {
		t.Fatalf("expected eligible after cooldown, got %v, %v", verdict, rej)
	}
}

func TestBoost_SixthActivationRejected(t *testing.T) {
	b := testBoost()
	now := time.Date(2025, time.June, 15, 8, 0, 0, 0, time.UTC)

	var s domain.BoostSession
	for i := 0; i < 5; i++ {
		verdict, rej := b.CanActivate(s, true, now)
		if rej != nil || verdict != Eligible {
			t.Fatalf("activation %d: %v, %v", i+1, verdict, rej)
		}
		s = b.Activate(s, now)
		s.Active = false
		now = now.Add(31 * time.Minute) // clear of the cooldown each time
	}

	// Sixth attempt: limit wins even though the cooldown has long passed.
	_, rej := b.CanActivate(s, true, now.Add(24*time.Hour))
	if rej == nil || rej.Code != domain.RejectDailyLimit {
		t.Fatalf("expected DailyLimitReached, got %v", rej)
	}
}

func TestBoost_UsesNeverResetByDefault(t *testing.T) {
	b := testBoost()
	now := time.Date(2025, time.June, 15, 8, 0, 0, 0, time.UTC)
	last := now.Add(-48 * time.Hour)

	s := domain.BoostSession{UsesToday: 5, LastActivatedAt: &last}
	_, rej := b.CanActivate(s, true, now)
	if rej == nil || rej.Code != domain.RejectDailyLimit {
		t.Fatalf("expected limit to persist across days, got %v", rej)
	}
}

func TestBoost_ResetUsesDailyPolicy(t *testing.T) {
	cal := clock.NewCalendar(clock.DefaultOffsetMinutes)
	b := testBoost()
	b.ResetUsesDaily = true
	b.DateOf = cal.DateOf

	now := time.Date(2025, time.June, 15, 8, 0, 0, 0, time.UTC)
	last := now.Add(-48 * time.Hour)

	s := domain.BoostSession{UsesToday: 5, LastActivatedAt: &last}
	verdict, rej := b.CanActivate(s, true, now)
	if rej != nil || verdict != Eligible {
		t.Fatalf("expected eligibility after day rollover, got %v, %v", verdict, rej)
	}

	s = b.Activate(s, now)
	if s.UsesToday != 1 {
		t.Errorf("UsesToday = %d, want 1 after rollover reset", s.UsesToday)
	}
}

func TestBoost_Tick(t *testing.T) {
	b := testBoost()

	next, finished := b.Tick(10)
	if next != 9 || finished {
		t.Errorf("Tick(10) = %d, %v", next, finished)
	}

	next, finished = b.Tick(1)
	if next != 0 || finished {
		t.Errorf("Tick(1) = %d, %v, want 0 and not finished", next, finished)
	}

	next, finished = b.Tick(0)
	if next != 0 || !finished {
		t.Errorf("Tick(0) = %d, %v, want clamp to 0 and finished", next, finished)
	}
}
