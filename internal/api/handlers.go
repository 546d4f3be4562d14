package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// HandleState returns the read-only state snapshot the UI renders from.
// GET /api/state
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

// handlePower toggles the mining session.
// POST /api/mining/power
func (s *Server) handlePower(w http.ResponseWriter, r *http.Request) {
	s.writeIntentResult(w, s.session.PressPower(r.Context()))
}

// handleBoost requests a boost activation.
// POST /api/boost
func (s *Server) handleBoost(w http.ResponseWriter, r *http.Request) {
	s.writeIntentResult(w, s.session.PressBoost(r.Context()))
}

// handleDailyBonus claims the daily bonus.
// POST /api/bonus/daily/claim
func (s *Server) handleDailyBonus(w http.ResponseWriter, r *http.Request) {
	s.writeIntentResult(w, s.session.ClaimDailyBonus(r.Context()))
}

// handleWeeklyBonus claims the streak-gated weekly bonus.
// POST /api/bonus/weekly/claim
func (s *Server) handleWeeklyBonus(w http.ResponseWriter, r *http.Request) {
	s.writeIntentResult(w, s.session.ClaimWeeklyBonus(r.Context()))
}

// handleMilestoneClaim claims a referral milestone.
// POST /api/milestones/{id}/claim
func (s *Server) handleMilestoneClaim(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.writeIntentResult(w, s.session.ClaimMilestone(r.Context(), id))
}

// handleSocialAdvance advances a social task one lifecycle step.
// POST /api/social/{id}/advance
func (s *Server) handleSocialAdvance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.writeIntentResult(w, s.session.AdvanceSocialTask(id))
}

// handleLedgerHistory returns recent journal entries, newest first.
// GET /api/ledger/history?limit=N
func (s *Server) handleLedgerHistory(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := s.ledger.History(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
		"balance": s.ledger.Balance(),
	})
}
