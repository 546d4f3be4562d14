// Package engine implements the reward/cooldown state machines: mining
// sessions, boosts, streaks, bonus eligibility, referral milestones, and
// social tasks. Engines are pure functions over state snapshots plus the
// clock — they hold no state of their own and never touch the ledger
// directly; the session runner applies their decisions.
package engine

import "github.com/lumen-network/lumen/internal/domain"

// ─── Mining Session Engine ──────────────────────────────────────────────────

// PowerPress is the outcome of pressing the power button. Exactly one of
// the two fields is set: an active session stops immediately with no
// confirmation or cooldown; an inactive one requests a start, which the
// caller routes through the ad gate before activating.
type PowerPress struct {
	Stop           bool
	StartRequested bool
}

// PressPower resolves the power button against the current active flag.
func PressPower(active bool) PowerPress {
	if active {
		return PowerPress{Stop: true}
	}
	return PowerPress{StartRequested: true}
}

// Mining drives the per-second mining countdown.
type Mining struct {
	// FullDayReset replaces the shipped 23:59:59 post-finish wrap with a
	// clean 24:00:00 reset. Off by default for behavioral parity.
	FullDayReset bool
}

// MiningTick is the result of one countdown second.
type MiningTick struct {
	Next        domain.Countdown
	RewardDelta float64 // per-second fraction of the hourly rate
	Finished    bool    // caller must set Active = false
}

// Tick decrements the countdown by one second with borrow arithmetic and
// accrues one per-second fraction of the effective hourly rate. A countdown
// already at 00:00:00 is the finished case: the next value wraps rather
// than staying at zero.
func (m Mining) Tick(remaining domain.Countdown, effectiveRate float64) MiningTick {
	if remaining.IsZero() {
		next := domain.WrapDay
		if m.FullDayReset {
			next = domain.FullDay
		}
		return MiningTick{
			Next:        next,
			RewardDelta: domain.PerSecond(effectiveRate),
			Finished:    true,
		}
	}
	return MiningTick{
		Next:        remaining.Decrement(),
		RewardDelta: domain.PerSecond(effectiveRate),
	}
}
