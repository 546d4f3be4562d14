package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/lumen-network/lumen/internal/domain"
)

// ─── Live Decision Feed ─────────────────────────────────────────────────────
// Every Decision the session emits is broadcast to connected UI clients.
// Delivered via Server-Sent Events for simplicity and HTTP/2 compatibility.

// DecisionFeed manages SSE subscribers for the live decision stream.
type DecisionFeed struct {
	mu      sync.Mutex
	clients map[chan []byte]struct{}
}

// NewDecisionFeed creates a new decision broadcast feed.
func NewDecisionFeed() *DecisionFeed {
	return &DecisionFeed{
		clients: make(map[chan []byte]struct{}),
	}
}

// Publish broadcasts a decision to all connected clients. Implements
// session.Publisher.
func (f *DecisionFeed) Publish(d domain.Decision) {
	data, err := json.Marshal(d)
	if err != nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.clients {
		select {
		case ch <- data:
		default:
			// Client too slow — drop message
		}
	}
}

// Subscribe registers a new client. Returns the channel and an unsubscribe func.
func (f *DecisionFeed) Subscribe() (chan []byte, func()) {
	ch := make(chan []byte, 32)
	f.mu.Lock()
	f.clients[ch] = struct{}{}
	f.mu.Unlock()
	return ch, func() {
		f.mu.Lock()
		delete(f.clients, ch)
		f.mu.Unlock()
		close(ch)
	}
}

// ClientCount returns the number of connected clients.
func (f *DecisionFeed) ClientCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients)
}

// HandleSSE serves the live decision feed.
// GET /api/decisions/live
func (f *DecisionFeed) HandleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	flusher.Flush()

	ch, unsub := f.Subscribe()
	defer unsub()

	for {
		select {
		case <-r.Context().Done():
			return
		case data := <-ch:
			w.Write([]byte("data: "))
			w.Write(data)
			w.Write([]byte("\n\n"))
			flusher.Flush()
		}
	}
}
