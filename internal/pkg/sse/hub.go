package sse

import (
	"sort"
	"sync"
)

// Event represents an SSE event to be sent to the streams of one session
type Event struct {
	Key   string
	Event string
	Data  interface{}
}

// Hub fans events out to the open streams of each session key
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a stream for key and returns the event channel and
// cleanup function. The channel is closed by cleanup or by Close(key),
// whichever happens first.
func (h *Hub) Subscribe(key string) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.subscribers[key] == nil {
		h.subscribers[key] = make(map[chan Event]struct{})
	}
	h.subscribers[key][ch] = struct{}{}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subscribers[key][ch]; !ok {
				return
			}
			delete(h.subscribers[key], ch)
			close(ch)
			if len(h.subscribers[key]) == 0 {
				delete(h.subscribers, key)
			}
		})
	}

	return ch, cleanup
}

// Publish sends an event to all streams of key. Full streams skip the event.
func (h *Hub) Publish(key string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	event.Key = key
	for ch := range h.subscribers[key] {
		select {
		case ch <- event:
		default:
		}
	}
}

// Close ends every stream of key, e.g. on logout.
func (h *Hub) Close(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subscribers[key] {
		close(ch)
	}
	delete(h.subscribers, key)
}

// Keys returns the session keys with at least one open stream, sorted.
func (h *Hub) Keys() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	keys := make([]string, 0, len(h.subscribers))
	for k := range h.subscribers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SubscriberCount returns the number of open streams of key
func (h *Hub) SubscriberCount(key string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[key])
}

// TotalSubscribers returns the number of open streams across all sessions
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}
