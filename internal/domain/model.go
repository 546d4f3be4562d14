// Package domain contains pure business types with ZERO infrastructure imports.
// This is the innermost ring of clean architecture — it depends on nothing.
package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// ─── Calendar Dates ─────────────────────────────────────────────────────────

// CalendarDate is a day-granularity date in the economy's fixed timezone.
// All "daily" gating (bonus eligibility, streaks) compares CalendarDate
// values, never raw timestamps, so eligibility flips at local midnight in
// the fixed offset regardless of device locale.
type CalendarDate struct {
	midnight time.Time // 00:00:00 UTC of the local day
}

// NewCalendarDate builds a CalendarDate for the given year/month/day.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{midnight: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Equal reports whether two dates fall on the same calendar day.
func (d CalendarDate) Equal(o CalendarDate) bool {
	return d.midnight.Equal(o.midnight)
}

// IsZero reports whether the date is unset.
func (d CalendarDate) IsZero() bool { return d.midnight.IsZero() }

// DaysBetween returns the whole-day gap between two dates, rounding on the
// absolute millisecond delta.
func DaysBetween(a, b CalendarDate) int {
	delta := b.midnight.Sub(a.midnight)
	return int(math.Round(math.Abs(delta.Hours() / 24)))
}

// AddDays returns the date shifted by n days.
func (d CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDate{midnight: d.midnight.AddDate(0, 0, n)}
}

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	if d.IsZero() {
		return "never"
	}
	return d.midnight.Format(time.DateOnly)
}

// MarshalJSON encodes the date as a YYYY-MM-DD string, or null when unset.
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.midnight.Format(time.DateOnly))
}

// UnmarshalJSON decodes a YYYY-MM-DD string or null.
func (d *CalendarDate) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		*d = CalendarDate{}
		return nil
	}
	t, err := time.Parse(time.DateOnly, *s)
	if err != nil {
		return fmt.Errorf("parse calendar date %q: %w", *s, err)
	}
	*d = NewCalendarDate(t.Year(), t.Month(), t.Day())
	return nil
}

// ─── Countdown ──────────────────────────────────────────────────────────────

// Countdown is an HH:MM:SS mining countdown with one-second resolution.
// Maximum meaningful value is a full day (24:00:00).
type Countdown struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// FullDay is the countdown value a fresh mining session starts from.
var FullDay = Countdown{Hours: 24}

// WrapDay is the post-finish reset value: one second short of a full day,
// an artifact of the string-decrement algorithm this economy shipped with.
var WrapDay = Countdown{Hours: 23, Minutes: 59, Seconds: 59}

// ParseCountdown parses an "HH:MM:SS" string. Malformed input is a
// programmer error, not something surfaced to the user.
func ParseCountdown(s string) (Countdown, error) {
	var c Countdown
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &c.Hours, &c.Minutes, &c.Seconds); err != nil {
		return Countdown{}, fmt.Errorf("parse countdown %q: %w", s, err)
	}
	return c, nil
}

// String formats the countdown as HH:MM:SS.
func (c Countdown) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}

// TotalSeconds returns the countdown as a flat second count.
func (c Countdown) TotalSeconds() int {
	return c.Hours*3600 + c.Minutes*60 + c.Seconds
}

// IsZero reports whether the countdown reads 00:00:00.
func (c Countdown) IsZero() bool {
	return c.Hours == 0 && c.Minutes == 0 && c.Seconds == 0
}

// Decrement subtracts one second using digit-wise borrow arithmetic:
// seconds borrow from minutes, minutes from hours. Calling it at 00:00:00
// is a programmer error; the engine treats that case as "finished" first.
func (c Countdown) Decrement() Countdown {
	c.Seconds--
	if c.Seconds < 0 {
		c.Seconds = 59
		c.Minutes--
	}
	if c.Minutes < 0 {
		c.Minutes = 59
		c.Hours--
	}
	return c
}

// ─── Session State ──────────────────────────────────────────────────────────

// MiningSession is the user-toggled earning state. Created implicitly at
// first activation, toggled thereafter, never destroyed.
type MiningSession struct {
	Active    bool      `json:"active"`
	Remaining Countdown `json:"remaining"`
}

// BoostSession is a temporary additive rate multiplier session, capped per
// day and cooldown-gated.
type BoostSession struct {
	Active           bool       `json:"active"`
	RemainingSeconds int        `json:"remaining_seconds"`
	UsesToday        int        `json:"uses_today"`
	LastActivatedAt  *time.Time `json:"last_activated_at,omitempty"`
}

// StreakRecord tracks consecutive calendar days with at least one mining
// activation. LastParticipation is zero until the first activation.
type StreakRecord struct {
	ConsecutiveDays   int          `json:"consecutive_days"`
	LastParticipation CalendarDate `json:"last_participation"`
}

// ─── Referrals & Milestones ─────────────────────────────────────────────────

// MilestoneStatus is the lifecycle state of a referral milestone.
type MilestoneStatus string

const (
	MilestonePending   MilestoneStatus = "PENDING"
	MilestoneCompleted MilestoneStatus = "COMPLETED"
)

// ReferralMilestone transitions Pending→Completed exactly once, when the
// valid referral count reaches Target. The reward is drawn at claim time.
type ReferralMilestone struct {
	ID        string          `json:"id"`
	Target    int             `json:"target"`
	MinReward int             `json:"min_reward"`
	MaxReward int             `json:"max_reward"`
	Status    MilestoneStatus `json:"status"`
}

// Referral is a referred user as reported by the upstream referral feed.
type Referral struct {
	Code            string `json:"code"`
	Active          bool   `json:"active"`
	ConsecutiveDays int    `json:"consecutive_days"`
}

// ─── Social Tasks ───────────────────────────────────────────────────────────

// TaskStatus is the lifecycle state of a social task.
type TaskStatus string

const (
	TaskPending   TaskStatus = "PENDING"
	TaskVerifying TaskStatus = "VERIFYING"
	TaskCompleted TaskStatus = "COMPLETED"
)

// SocialTask moves strictly Pending→Verifying→Completed, one user action
// per edge. The fixed reward is granted exactly once on the final edge.
type SocialTask struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Reward int        `json:"reward"`
	Status TaskStatus `json:"status"`
}
