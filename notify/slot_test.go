package notify

import "testing"

func TestSlotInitialState(t *testing.T) {
	slot := NewSlot()

	kind, shown := slot.State()
	if kind != KindOrder {
		t.Errorf("initial kind = %q, want %q", kind, KindOrder)
	}
	if shown {
		t.Error("initial shown = true, want false")
	}
}

func TestSlotShowHide(t *testing.T) {
	slot := NewSlot()

	slot.Show(KindWaiter)
	kind, shown := slot.State()
	if kind != KindWaiter || !shown {
		t.Errorf("after Show(waiter): kind = %q shown = %v, want waiter/true", kind, shown)
	}

	slot.Hide()
	kind, shown = slot.State()
	if kind != KindWaiter {
		t.Errorf("Hide() changed kind to %q, want %q preserved", kind, KindWaiter)
	}
	if shown {
		t.Error("after Hide(): shown = true, want false")
	}
}

func TestSlotShowOverwrites(t *testing.T) {
	slot := NewSlot()

	slot.Show(KindOrder)
	slot.Show(KindBill)

	kind, shown := slot.State()
	if kind != KindBill {
		t.Errorf("second Show() kind = %q, want %q", kind, KindBill)
	}
	if !shown {
		t.Error("after second Show(): shown = false, want true")
	}
}

func TestHubDispatchUpdatesSlot(t *testing.T) {
	hub := NewHub()

	hub.Dispatch(Event{SessionID: "sess-1", Kind: KindWaiter})

	kind, shown := hub.Slot("sess-1").State()
	if kind != KindWaiter || !shown {
		t.Errorf("slot after Dispatch: kind = %q shown = %v, want waiter/true", kind, shown)
	}

	// Other sessions stay untouched.
	kind, shown = hub.Slot("sess-2").State()
	if kind != KindOrder || shown {
		t.Errorf("untouched slot: kind = %q shown = %v, want order/false", kind, shown)
	}
}

func TestHubSubscribeReceivesEvents(t *testing.T) {
	hub := NewHub()

	ch := hub.Subscribe("sess-1", "sub-1")
	defer hub.Unsubscribe("sess-1", "sub-1")

	want := Event{SessionID: "sess-1", Kind: KindOrder, OrderID: 7, Status: "confirmed"}
	hub.Dispatch(want)

	select {
	case got := <-ch:
		if got != want {
			t.Errorf("received %+v, want %+v", got, want)
		}
	default:
		t.Fatal("no event delivered to subscriber")
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()

	ch := hub.Subscribe("sess-1", "sub-1")
	hub.Unsubscribe("sess-1", "sub-1")

	if _, open := <-ch; open {
		t.Error("channel still open after Unsubscribe()")
	}

	// Dispatch after unsubscribe must not panic.
	hub.Dispatch(Event{SessionID: "sess-1", Kind: KindBill})
}
