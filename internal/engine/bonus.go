package engine

import (
	"math/rand"

	"github.com/lumen-network/lumen/internal/domain"
)

// ─── Bonus Eligibility Engine ───────────────────────────────────────────────

// Bonus issues the calendar-day gated daily bonus and the streak-gated
// weekly bonus. Rewards are drawn uniformly at claim time from inclusive
// integer ranges; the random source is injected so tests stay deterministic.
type Bonus struct {
	DailyMin, DailyMax   int // default [10, 15] LSN
	WeeklyMin, WeeklyMax int // default [100, 130] LSN
	WeeklyStreakTarget   int // default 7 consecutive days

	Rand *rand.Rand
}

// DailyAvailable reports daily bonus eligibility: exactly once per
// calendar day.
func (b Bonus) DailyAvailable(lastClaimed domain.CalendarDate, today domain.CalendarDate) bool {
	return lastClaimed.IsZero() || !lastClaimed.Equal(today)
}

// ClaimDaily draws the daily reward. The caller persists today as the new
// lastClaimed date and applies the reward through the ledger.
func (b Bonus) ClaimDaily(lastClaimed domain.CalendarDate, today domain.CalendarDate) (int, *domain.Rejection) {
	if !b.DailyAvailable(lastClaimed, today) {
		return 0, domain.RejectEligibility("Daily bonus already claimed today", 0, 1)
	}
	return b.draw(b.DailyMin, b.DailyMax), nil
}

// WeeklyAvailable reports weekly bonus eligibility.
func (b Bonus) WeeklyAvailable(streakDays int) bool {
	return streakDays >= b.WeeklyStreakTarget
}

// ClaimWeekly draws the weekly reward. On success the caller resets the
// streak to 0 — a full reset, unlike the miss-a-day reset to 1. Claiming
// never touches the daily bonus date.
func (b Bonus) ClaimWeekly(streakDays int) (int, *domain.Rejection) {
	if !b.WeeklyAvailable(streakDays) {
		return 0, domain.RejectEligibility("Keep your streak going", streakDays, b.WeeklyStreakTarget)
	}
	return b.draw(b.WeeklyMin, b.WeeklyMax), nil
}

// draw returns a uniform integer in [min, max] inclusive.
func (b Bonus) draw(min, max int) int {
	if max <= min {
		return min
	}
	return min + b.Rand.Intn(max-min+1)
}
