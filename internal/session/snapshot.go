package session

import (
	"github.com/lumen-network/lumen/internal/domain"
	"github.com/lumen-network/lumen/internal/engine"
)

// MilestoneView is a referral milestone plus its display progress,
// clamped at the target.
type MilestoneView struct {
	domain.ReferralMilestone
	Progress int `json:"progress"`
}

// Snapshot is the read-only state view the UI renders after every
// mutation.
type Snapshot struct {
	Balance              float64              `json:"balance"`
	ReferralCode         string               `json:"referral_code"`
	Mining               domain.MiningSession `json:"mining"`
	EffectiveRate        float64              `json:"effective_rate"` // LSN per hour
	Boost                domain.BoostSession  `json:"boost"`
	Streak               domain.StreakRecord  `json:"streak"`
	DailyBonusAvailable  bool                 `json:"daily_bonus_available"`
	WeeklyBonusAvailable bool                 `json:"weekly_bonus_available"`
	ActiveReferrals      int                  `json:"active_referrals"`
	ValidReferrals       int                  `json:"valid_referrals"`
	Milestones           []MilestoneView      `json:"milestones"`
	Tasks                []domain.SocialTask  `json:"tasks"`
}

// Snapshot captures the current state under the lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.cal.DateOf(s.clk.Now())
	valid := engine.ValidReferralCount(s.referrals)

	snap := Snapshot{
		Balance:              s.led.Balance(),
		ReferralCode:         s.referralCode,
		Mining:               s.miningState,
		EffectiveRate:        s.effectiveRateLocked(),
		Boost:                s.boostState,
		Streak:               s.streak,
		DailyBonusAvailable:  s.bonus.DailyAvailable(s.lastDailyClaim, today),
		WeeklyBonusAvailable: s.bonus.WeeklyAvailable(s.streak.ConsecutiveDays),
		ActiveReferrals:      engine.ActiveReferralCount(s.referrals),
		ValidReferrals:       valid,
		Tasks:                append([]domain.SocialTask(nil), s.tasks...),
	}
	for _, m := range s.milestoneList {
		snap.Milestones = append(snap.Milestones, MilestoneView{
			ReferralMilestone: m,
			Progress:          engine.MilestoneProgress(valid, m.Target),
		})
	}
	return snap
}
