// Package api provides the HTTP surface the mobile UI consumes: a state
// snapshot, one endpoint per user intent, the ledger history, and a live
// decision feed. The core never renders UI — these endpoints carry state
// and decisions; the client draws them.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lumen-network/lumen/internal/domain"
	"github.com/lumen-network/lumen/internal/ledger"
	"github.com/lumen-network/lumen/internal/session"
)

// Version is the daemon version reported by /api/version.
const Version = "0.1.0"

// Server is the lumen HTTP API server.
type Server struct {
	session        *session.Session
	ledger         *ledger.Ledger
	feed           *DecisionFeed
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(s *session.Session, l *ledger.Ledger, feed *DecisionFeed) *Server {
	return &Server{session: s, ledger: l, feed: feed}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Minute))
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "lumen is running"})
		})
		r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"version": Version})
		})

		r.Get("/state", s.handleState)
		r.Post("/mining/power", s.handlePower)
		r.Post("/boost", s.handleBoost)
		r.Post("/bonus/daily/claim", s.handleDailyBonus)
		r.Post("/bonus/weekly/claim", s.handleWeeklyBonus)
		r.Post("/milestones/{id}/claim", s.handleMilestoneClaim)
		r.Post("/social/{id}/advance", s.handleSocialAdvance)
		r.Get("/ledger/history", s.handleLedgerHistory)

		if s.feed != nil {
			r.Get("/decisions/live", s.feed.HandleSSE)
		}
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// writeIntentResult maps an intent outcome onto the wire. Rejections are
// not server errors: they come back 409 with the full rejection payload so
// the client can show the reason string directly.
func (s *Server) writeIntentResult(w http.ResponseWriter, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"rejected": false,
			"state":    s.session.Snapshot(),
		})
		return
	}

	var rej *domain.Rejection
	if errors.As(err, &rej) {
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"rejected":  true,
			"rejection": rej,
			"state":     s.session.Snapshot(),
		})
		return
	}
	if errors.Is(err, domain.ErrUnknownMilestone) || errors.Is(err, domain.ErrUnknownTask) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

// corsMiddleware adds CORS headers for the local UI shell.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
