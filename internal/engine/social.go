package engine

import "github.com/lumen-network/lumen/internal/domain"

// ─── Social Task Engine ─────────────────────────────────────────────────────

// AdvanceSocialTask moves a task one step along its strictly linear
// lifecycle. Each edge is a separate user action; the fixed reward is paid
// exactly once, on the Verifying→Completed edge.
func AdvanceSocialTask(t domain.SocialTask) (domain.SocialTask, int, *domain.Rejection) {
	switch t.Status {
	case domain.TaskPending:
		t.Status = domain.TaskVerifying
		return t, 0, nil
	case domain.TaskVerifying:
		t.Status = domain.TaskCompleted
		return t, t.Reward, nil
	default:
		return t, 0, domain.RejectDone("Task")
	}
}
