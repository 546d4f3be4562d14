package engine

import (
	"math/rand"

	"github.com/lumen-network/lumen/internal/domain"
)

// ─── Referral Milestone Engine ──────────────────────────────────────────────

// ValidReferralDays is the minimum consecutive-day activity for a referral
// to count toward milestone progress.
const ValidReferralDays = 3

// ValidReferralCount counts referrals that are active for at least
// ValidReferralDays consecutive days.
func ValidReferralCount(refs []domain.Referral) int {
	n := 0
	for _, r := range refs {
		if r.Active && r.ConsecutiveDays >= ValidReferralDays {
			n++
		}
	}
	return n
}

// ActiveReferralCount counts currently active referrals. This is the count
// that feeds the rate calculator's referral boost.
func ActiveReferralCount(refs []domain.Referral) int {
	n := 0
	for _, r := range refs {
		if r.Active {
			n++
		}
	}
	return n
}

// MilestoneProgress is the display progress toward a milestone target.
func MilestoneProgress(validCount, target int) int {
	if validCount > target {
		return target
	}
	return validCount
}

// Milestones claims referral milestones. The reward is drawn uniformly from
// the milestone's range at claim time, once — never pre-computed, never
// re-drawn.
type Milestones struct {
	Rand *rand.Rand
}

// Claim attempts to complete a milestone. Eligible iff the valid referral
// count has reached the target and the milestone is still pending.
func (m Milestones) Claim(ms domain.ReferralMilestone, validCount int) (domain.ReferralMilestone, int, *domain.Rejection) {
	if ms.Status == domain.MilestoneCompleted {
		return ms, 0, domain.RejectDone("Milestone")
	}
	if validCount < ms.Target {
		return ms, 0, domain.RejectEligibility("Invite more friends", MilestoneProgress(validCount, ms.Target), ms.Target)
	}
	reward := ms.MinReward
	if ms.MaxReward > ms.MinReward {
		reward += m.Rand.Intn(ms.MaxReward - ms.MinReward + 1)
	}
	ms.Status = domain.MilestoneCompleted
	return ms, reward, nil
}
