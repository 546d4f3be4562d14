package engine

import (
	"time"

	"github.com/lumen-network/lumen/internal/domain"
)

// ─── Boost Engine ───────────────────────────────────────────────────────────

// Boost gates the time-limited rate multiplier session.
type Boost struct {
	DurationSeconds int           // default 1800 (30 min)
	Cooldown        time.Duration // default 30 min
	DailyLimit      int           // default 5

	// ResetUsesDaily clears UsesToday when the last activation falls on an
	// earlier calendar day. The shipped behavior never resets the counter
	// (once the limit is hit, boosting is gone until restart); this flag
	// exposes the day-boundary reset as an opt-in policy.
	ResetUsesDaily bool
	// DateOf maps an instant to its calendar day. Required only when
	// ResetUsesDaily is on.
	DateOf func(time.Time) domain.CalendarDate
}

// Verdict is the non-error outcome of a boost activation check.
type Verdict int

const (
	// Eligible means activation may proceed (through the ad gate).
	Eligible Verdict = iota
	// ShowStatus means the boost is already running; re-pressing is allowed
	// and just surfaces the current countdown.
	ShowStatus
)

// CanActivate checks boost activation preconditions in their fixed
// precedence order: mining inactive, already active, daily limit, cooldown.
// A nil rejection with the Eligible verdict means activation may proceed.
func (b Boost) CanActivate(s domain.BoostSession, miningActive bool, now time.Time) (Verdict, *domain.Rejection) {
	if !miningActive {
		return Eligible, domain.RejectMining()
	}
	if s.Active {
		return ShowStatus, nil
	}
	uses := s.UsesToday
	if b.ResetUsesDaily && b.DateOf != nil && s.LastActivatedAt != nil &&
		!b.DateOf(*s.LastActivatedAt).Equal(b.DateOf(now)) {
		uses = 0
	}
	if uses >= b.DailyLimit {
		return Eligible, domain.RejectLimit(b.DailyLimit)
	}
	if s.LastActivatedAt != nil {
		if elapsed := now.Sub(*s.LastActivatedAt); elapsed < b.Cooldown {
			left := b.Cooldown - elapsed
			mins := int((left + time.Minute - 1) / time.Minute) // ceiling for display
			return Eligible, domain.RejectCooldown(mins)
		}
	}
	return Eligible, nil
}

// Activate starts a boost session. Callers must have passed CanActivate.
func (b Boost) Activate(s domain.BoostSession, now time.Time) domain.BoostSession {
	if b.ResetUsesDaily && b.DateOf != nil && s.LastActivatedAt != nil &&
		!b.DateOf(*s.LastActivatedAt).Equal(b.DateOf(now)) {
		s.UsesToday = 0
	}
	at := now
	s.Active = true
	s.RemainingSeconds = b.DurationSeconds
	s.UsesToday++
	s.LastActivatedAt = &at
	return s
}

// Tick decrements the boost countdown by one second. When it would drop
// below zero it clamps to zero and signals finished; the caller then sets
// Active = false.
func (b Boost) Tick(remaining int) (next int, finished bool) {
	next = remaining - 1
	if next < 0 {
		return 0, true
	}
	return next, false
}
