package http

import (
	"net/http"
	"sync"
)

const ReloadPath = "/__reload"

// Reloader fans out reload notifications to every connected browser over
// server-sent events.
type Reloader struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func NewReloader() *Reloader {
	return &Reloader{
		subs: map[chan struct{}]struct{}{},
	}
}

func (h *Reloader) subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Reloader) unsubscribe(ch chan struct{}) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
	close(ch)
}

// Subscribers reports how many streams are connected.
func (h *Reloader) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Notify never blocks; a subscriber that already has a pending reload
// is skipped.
func (h *Reloader) Notify() {
	h.mu.Lock()
	for ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	h.mu.Unlock()
}

func (h *Reloader) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := h.subscribe()
	defer h.unsubscribe(ch)

	_, _ = w.Write([]byte("event: ready\ndata: 1\n\n"))
	flusher.Flush()

	for {
		select {
		case <-req.Context().Done():
			return
		case <-ch:
			_, _ = w.Write([]byte("event: reload\ndata: 1\n\n"))
			flusher.Flush()
		}
	}
}
