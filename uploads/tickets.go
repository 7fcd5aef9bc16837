package uploads

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// TicketStore issues one-time upload locations. A ticket is minted by the
// first phase of an upload and consumed by the second; redeeming it again or
// after expiry fails.
type TicketStore struct {
	mu      sync.Mutex
	tickets map[string]time.Time
	ttl     time.Duration
}

func NewTicketStore(ttl time.Duration) *TicketStore {
	return &TicketStore{
		tickets: make(map[string]time.Time),
		ttl:     ttl,
	}
}

func (s *TicketStore) Issue() string {
	ticket := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets[ticket] = time.Now().Add(s.ttl)
	return ticket
}

// Redeem consumes the ticket. It returns false for an unknown, already used,
// or expired ticket.
func (s *TicketStore) Redeem(ticket string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline, ok := s.tickets[ticket]
	if !ok {
		return false
	}
	delete(s.tickets, ticket)
	return time.Now().Before(deadline)
}
