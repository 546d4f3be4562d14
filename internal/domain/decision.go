package domain

import "time"

// ─── Decisions ──────────────────────────────────────────────────────────────
// Engines never render UI. Every mutation is described by a Decision the
// UI collaborator turns into a balance update, alert, or toast. Kind is an
// explicit discriminator so handlers can switch exhaustively.

// DecisionKind discriminates the Decision union.
type DecisionKind string

const (
	// DecisionBalanceDelta reports LSN credited to the balance.
	DecisionBalanceDelta DecisionKind = "balance_delta"
	// DecisionShowInfo asks the UI to surface a titled alert.
	DecisionShowInfo DecisionKind = "show_info_alert"
	// DecisionBoostStatus surfaces the running boost countdown after a
	// re-press while the boost is already active. Not an error.
	DecisionBoostStatus DecisionKind = "boost_status"
	// DecisionSessionFinished marks the mining countdown reaching zero.
	DecisionSessionFinished DecisionKind = "session_finished"
)

// Decision is one declarative instruction for the UI collaborator.
type Decision struct {
	Kind             DecisionKind `json:"kind"`
	Title            string       `json:"title,omitempty"`
	Message          string       `json:"message,omitempty"`
	Amount           float64      `json:"amount,omitempty"`
	Source           string       `json:"source,omitempty"`
	RemainingSeconds int          `json:"remaining_seconds,omitempty"`
	At               time.Time    `json:"at"`
}

// BalanceDelta builds a balance-credit decision.
func BalanceDelta(amount float64, source string, at time.Time) Decision {
	return Decision{Kind: DecisionBalanceDelta, Amount: amount, Source: source, At: at}
}

// ShowInfo builds an informational alert decision.
func ShowInfo(title, message string, at time.Time) Decision {
	return Decision{Kind: DecisionShowInfo, Title: title, Message: message, At: at}
}

// BoostStatus builds a boost countdown status decision.
func BoostStatus(remainingSeconds int, at time.Time) Decision {
	return Decision{Kind: DecisionBoostStatus, RemainingSeconds: remainingSeconds, At: at}
}

// SessionFinished builds a countdown-complete decision.
func SessionFinished(at time.Time) Decision {
	return Decision{Kind: DecisionSessionFinished, Title: "Mining complete", At: at}
}
