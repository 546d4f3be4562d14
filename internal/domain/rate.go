package domain

// ─── Rate Calculator ────────────────────────────────────────────────────────

// ReferralBoostPctPerUser is the referral rate bonus: each active referral
// adds 10% of the base rate. There is no cap on referral count.
const ReferralBoostPctPerUser = 10

// EffectiveRate combines the base hourly rate, the referral boost, and the
// boost multiplier into the effective LSN/hr accrual rate. The boost is
// additive, not multiplicative: while active it contributes one full extra
// base-rate unit (a 2x-style doubling of the base component).
func EffectiveRate(base float64, activeReferralCount int, boostActive bool) float64 {
	referralBoostPct := float64(activeReferralCount * ReferralBoostPctPerUser)
	referralBoostAmount := base * referralBoostPct / 100
	rate := base + referralBoostAmount
	if boostActive {
		rate += base
	}
	return rate
}

// PerSecond converts an hourly rate into the per-tick accrual fraction.
// Balance accrues continuously, one fraction per second, not in lump sums.
func PerSecond(hourlyRate float64) float64 {
	return hourlyRate / 3600
}
