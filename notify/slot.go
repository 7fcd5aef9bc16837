package notify

import "sync"

// Kind identifies what a dine-in notification is about.
type Kind string

const (
	KindOrder  Kind = "order"
	KindWaiter Kind = "waiter"
	KindBill   Kind = "bill"
	KindReset  Kind = "reset"
)

// Slot holds exactly one notification at a time. Show overwrites whatever
// was current; Hide keeps the last kind so the UI can still label the
// dismissed toast. Initial state is {order, hidden}.
type Slot struct {
	mu    sync.Mutex
	kind  Kind
	shown bool
}

func NewSlot() *Slot {
	return &Slot{kind: KindOrder}
}

func (s *Slot) Show(kind Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kind = kind
	s.shown = true
}

func (s *Slot) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shown = false
}

// State returns the current kind and visibility.
func (s *Slot) State() (Kind, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kind, s.shown
}
