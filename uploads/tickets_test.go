package uploads

import (
	"testing"
	"time"
)

func TestTicketIssueAndRedeem(t *testing.T) {
	store := NewTicketStore(time.Minute)

	ticket := store.Issue()
	if ticket == "" {
		t.Fatal("Issue() returned empty ticket")
	}

	if !store.Redeem(ticket) {
		t.Error("Redeem() = false for a fresh ticket")
	}
	if store.Redeem(ticket) {
		t.Error("Redeem() = true for an already-used ticket; tickets are one-time")
	}
}

func TestTicketUnknown(t *testing.T) {
	store := NewTicketStore(time.Minute)

	if store.Redeem("not-a-ticket") {
		t.Error("Redeem() = true for unknown ticket")
	}
}

func TestTicketExpiry(t *testing.T) {
	store := NewTicketStore(-time.Second)

	ticket := store.Issue()
	if store.Redeem(ticket) {
		t.Error("Redeem() = true for expired ticket")
	}
}

func TestTicketsAreDistinct(t *testing.T) {
	store := NewTicketStore(time.Minute)

	a := store.Issue()
	b := store.Issue()
	if a == b {
		t.Error("Issue() returned the same ticket twice")
	}
	if !store.Redeem(a) || !store.Redeem(b) {
		t.Error("both distinct tickets should redeem once")
	}
}
