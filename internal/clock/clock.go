// Package clock abstracts wall time so the engines can be tested against a
// fixed instant. Calendar days are computed in the economy's fixed offset
// timezone (IST, UTC+5:30) irrespective of the device locale.
package clock

import (
	"time"

	"github.com/lumen-network/lumen/internal/domain"
)

// DefaultOffsetMinutes is the fixed IST offset (+5:30) used for all daily
// gating in the economy.
const DefaultOffsetMinutes = 330

// Clock supplies the current timestamp.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

// Now returns the current time using the system clock.
func (System) Now() time.Time { return time.Now() }

// Fixed is a clock pinned to a settable instant, for deterministic tests.
type Fixed struct {
	T time.Time
}

// Now returns the pinned instant.
func (f *Fixed) Now() time.Time { return f.T }

// Advance moves the pinned instant forward.
func (f *Fixed) Advance(d time.Duration) { f.T = f.T.Add(d) }

// ─── Calendar ───────────────────────────────────────────────────────────────

// Calendar derives day-granularity dates by adding a fixed timezone offset
// to a timestamp and truncating to day boundaries.
type Calendar struct {
	offset time.Duration
}

// NewCalendar creates a calendar for the given offset in minutes east of UTC.
func NewCalendar(offsetMinutes int) Calendar {
	return Calendar{offset: time.Duration(offsetMinutes) * time.Minute}
}

// DateOf returns the calendar date the instant falls on in the fixed offset.
func (c Calendar) DateOf(t time.Time) domain.CalendarDate {
	shifted := t.UTC().Add(c.offset)
	return domain.NewCalendarDate(shifted.Year(), shifted.Month(), shifted.Day())
}
