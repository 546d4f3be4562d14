package domain

import (
	"errors"
	"fmt"
)

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	ErrUnknownMilestone = errors.New("referral milestone not found")
	ErrUnknownTask      = errors.New("social task not found")
)

// ─── Rejections ─────────────────────────────────────────────────────────────
// Every user action either succeeds, is a no-op, or is rejected with a
// descriptive reason intended for direct display. Nothing here is fatal:
// the user recovers by waiting or satisfying the precondition.

// RejectionCode classifies why an action was refused.
type RejectionCode string

const (
	RejectMiningInactive RejectionCode = "MINING_INACTIVE"
	RejectAlreadyActive  RejectionCode = "ALREADY_ACTIVE"
	RejectDailyLimit     RejectionCode = "DAILY_LIMIT_REACHED"
	RejectOnCooldown     RejectionCode = "ON_COOLDOWN"
	RejectNotYetEligible RejectionCode = "NOT_YET_ELIGIBLE"
)

// Rejection is a recoverable refusal of a user action. It implements error
// so engine operations can return it on their error path, but it is not a
// structured failure — Message is meant for the screen.
type Rejection struct {
	Code             RejectionCode `json:"code"`
	Message          string        `json:"message"`
	RemainingMinutes int           `json:"remaining_minutes,omitempty"` // OnCooldown only
	Progress         int           `json:"progress,omitempty"`          // NotYetEligible only
	Target           int           `json:"target,omitempty"`            // NotYetEligible only
}

// Error returns the display message.
func (r *Rejection) Error() string { return r.Message }

// RejectMining builds a MiningInactive rejection.
func RejectMining() *Rejection {
	return &Rejection{
		Code:    RejectMiningInactive,
		Message: "Start a mining session first.",
	}
}

// RejectLimit builds a DailyLimitReached rejection.
func RejectLimit(limit int) *Rejection {
	return &Rejection{
		Code:    RejectDailyLimit,
		Message: fmt.Sprintf("Daily boost limit of %d reached.", limit),
	}
}

// RejectCooldown builds an OnCooldown rejection carrying the ceiling-rounded
// minutes left for display.
func RejectCooldown(remainingMinutes int) *Rejection {
	return &Rejection{
		Code:             RejectOnCooldown,
		Message:          fmt.Sprintf("Boost is cooling down. Try again in %d min.", remainingMinutes),
		RemainingMinutes: remainingMinutes,
	}
}

// RejectEligibility builds a NotYetEligible rejection with progress info.
func RejectEligibility(what string, progress, target int) *Rejection {
	return &Rejection{
		Code:     RejectNotYetEligible,
		Message:  fmt.Sprintf("%s: %d/%d.", what, progress, target),
		Progress: progress,
		Target:   target,
	}
}

// RejectDone builds an AlreadyActive rejection for repeat claims on things
// that complete exactly once.
func RejectDone(what string) *Rejection {
	return &Rejection{
		Code:    RejectAlreadyActive,
		Message: fmt.Sprintf("%s already completed.", what),
	}
}
