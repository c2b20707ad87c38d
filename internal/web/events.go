package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/theirongolddev/wallet/internal/model"
)

// Event types published to /api/events and /api/stream.
const (
	EventSubmitted = "submitted"
	EventReset     = "reset"
)

// Event is emitted whenever the saved state changes.
type Event struct {
	ID        int64          `json:"id"`
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Summary   *model.Summary `json:"summary,omitempty"`
	Persisted bool           `json:"persisted"`
}

func (s *Server) publish(ev Event) {
	s.eventsMu.Lock()
	s.nextEventID++
	ev.ID = s.nextEventID
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.eventsMu.Unlock()
}

func (s *Server) recentEvents() []Event {
	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	return events
}

func (s *Server) addSubscriber(ch chan Event) int {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Server) removeSubscriber(id int) {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()
	delete(s.subs, id)
}

func (s *Server) handleEvents(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.recentEvents())
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Comment line so clients see the stream open immediately.
	_, _ = fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}
