package engine

import (
	"testing"
	"time"

	"github.com/lumen-network/lumen/internal/domain"
)

func TestRecordParticipation(t *testing.T) {
	d := domain.NewCalendarDate(2025, time.June, 15)

	tests := []struct {
		name       string
		prev       domain.StreakRecord
		today      domain.CalendarDate
		wantStreak int
		wantLast   domain.CalendarDate
	}{
		{
			name:       "first participation starts at 1",
			prev:       domain.StreakRecord{},
			today:      d,
			wantStreak: 1,
			wantLast:   d,
		},
		{
			name:       "same day is a no-op",
			prev:       domain.StreakRecord{ConsecutiveDays: 4, LastParticipation: d},
			today:      d,
			wantStreak: 4,
			wantLast:   d,
		},
		{
			name:       "next day increments",
			prev:       domain.StreakRecord{ConsecutiveDays: 4, LastParticipation: d},
			today:      d.AddDays(1),
			wantStreak: 5,
			wantLast:   d.AddDays(1),
		},
		{
			name:       "two-day gap resets to 1 regardless of prior streak",
			prev:       domain.StreakRecord{ConsecutiveDays: 6, LastParticipation: d},
			today:      d.AddDays(2),
			wantStreak: 1,
			wantLast:   d.AddDays(2),
		},
		{
			name:       "long gap resets to 1",
			prev:       domain.StreakRecord{ConsecutiveDays: 30, LastParticipation: d},
			today:      d.AddDays(90),
			wantStreak: 1,
			wantLast:   d.AddDays(90),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecordParticipation(tt.prev, tt.today)
			if got.ConsecutiveDays != tt.wantStreak {
				t.Errorf("streak = %d, want %d", got.ConsecutiveDays, tt.wantStreak)
			}
			if !got.LastParticipation.Equal(tt.wantLast) {
				t.Errorf("last = %s, want %s", got.LastParticipation, tt.wantLast)
			}
		})
	}
}

func TestRecordParticipation_SevenDayRun(t *testing.T) {
	d := domain.NewCalendarDate(2025, time.June, 1)
	rec := domain.StreakRecord{}
	for i := 0; i < 7; i++ {
		rec = RecordParticipation(rec, d.AddDays(i))
	}
	if rec.ConsecutiveDays != 7 {
		t.Errorf("streak after 7 consecutive days = %d, want 7", rec.ConsecutiveDays)
	}
}
