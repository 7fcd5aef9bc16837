package notify

import "sync"

// Event is a session-scoped notification as carried on the wire.
type Event struct {
	SessionID string `json:"session_id"`
	Kind      Kind   `json:"kind"`
	OrderID   uint   `json:"order_id,omitempty"`
	Status    string `json:"status,omitempty"`
}

// Hub fans session events out to SSE subscribers and keeps each session's
// notification slot current.
type Hub struct {
	mu    sync.RWMutex
	slots map[string]*Slot
	subs  map[string]map[string]chan Event
}

func NewHub() *Hub {
	return &Hub{
		slots: make(map[string]*Slot),
		subs:  make(map[string]map[string]chan Event),
	}
}

// Slot returns the session's notification slot, creating it on first use.
func (h *Hub) Slot(sessionID string) *Slot {
	h.mu.Lock()
	defer h.mu.Unlock()
	slot, ok := h.slots[sessionID]
	if !ok {
		slot = NewSlot()
		h.slots[sessionID] = slot
	}
	return slot
}

// Dispatch shows the event on the session's slot and delivers it to every
// subscriber. A subscriber with a full buffer misses the event rather than
// blocking the dispatcher.
func (h *Hub) Dispatch(evt Event) {
	h.Slot(evt.SessionID).Show(evt.Kind)

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs[evt.SessionID] {
		select {
		case ch <- evt:
		default:
		}
	}
}

func (h *Hub) Subscribe(sessionID, subscriberID string) <-chan Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[sessionID] == nil {
		h.subs[sessionID] = make(map[string]chan Event)
	}
	ch := make(chan Event, 16)
	h.subs[sessionID][subscriberID] = ch
	return ch
}

func (h *Hub) Unsubscribe(sessionID, subscriberID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.subs[sessionID][subscriberID]; ok {
		delete(h.subs[sessionID], subscriberID)
		close(ch)
	}
	if len(h.subs[sessionID]) == 0 {
		delete(h.subs, sessionID)
	}
}
