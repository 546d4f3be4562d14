package engine

import "github.com/lumen-network/lumen/internal/domain"

// ─── Streak Engine ──────────────────────────────────────────────────────────

// RecordParticipation folds one day's mining activation into the streak.
// Idempotent within a day. A whole-day gap of exactly 1 extends the streak;
// any other gap (including no prior date) resets it to 1, never 0 — missing
// a day means today still counts as day one.
func RecordParticipation(prev domain.StreakRecord, today domain.CalendarDate) domain.StreakRecord {
	if !prev.LastParticipation.IsZero() && prev.LastParticipation.Equal(today) {
		return prev
	}
	next := domain.StreakRecord{LastParticipation: today}
	if !prev.LastParticipation.IsZero() && domain.DaysBetween(prev.LastParticipation, today) == 1 {
		next.ConsecutiveDays = prev.ConsecutiveDays + 1
	} else {
		next.ConsecutiveDays = 1
	}
	return next
}
