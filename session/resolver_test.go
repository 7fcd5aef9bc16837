package session

import (
	"sync"
	"testing"
)

func TestResolverStableForSamePair(t *testing.T) {
	store := NewIdentityStore(NewMemoryKV())
	resolver := NewResolver(store, nil)

	first := resolver.Resolve("r1", "t1")
	if !first.Created {
		t.Error("first Resolve() Created = false, want true")
	}
	if first.SessionID == "" {
		t.Fatal("first Resolve() returned empty session id")
	}

	for i := 0; i < 5; i++ {
		again := resolver.Resolve("r1", "t1")
		if again.Created {
			t.Error("repeat Resolve() Created = true, want false")
		}
		if again.SessionID != first.SessionID {
			t.Errorf("repeat Resolve() = %q, want %q", again.SessionID, first.SessionID)
		}
	}
}

func TestResolverRegeneratesOnPairChange(t *testing.T) {
	tests := []struct {
		name         string
		restaurantID string
		tableID      string
	}{
		{name: "tableChanged", restaurantID: "r1", tableID: "t2"},
		{name: "restaurantChanged", restaurantID: "r2", tableID: "t1"},
		{name: "bothChanged", restaurantID: "r2", tableID: "t2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemoryKV()
			store := NewIdentityStore(kv)
			resolver := NewResolver(store, nil)

			first := resolver.Resolve("r1", "t1")
			second := resolver.Resolve(tt.restaurantID, tt.tableID)

			if !second.Created {
				t.Error("Resolve() after pair change Created = false, want true")
			}
			if second.SessionID == first.SessionID {
				t.Error("Resolve() reused session id across a different pair")
			}

			// All three storage keys must be overwritten.
			if v, _ := kv.Get(KeySessionID); v != second.SessionID {
				t.Errorf("stored %s = %q, want %q", KeySessionID, v, second.SessionID)
			}
			if v, _ := kv.Get(KeyRestaurantID); v != tt.restaurantID {
				t.Errorf("stored %s = %q, want %q", KeyRestaurantID, v, tt.restaurantID)
			}
			if v, _ := kv.Get(KeyTableID); v != tt.tableID {
				t.Errorf("stored %s = %q, want %q", KeyTableID, v, tt.tableID)
			}
		})
	}
}

func TestResolverInvokesCreate(t *testing.T) {
	var created []Identity
	create := func(sessionID, restaurantID, tableID string) error {
		created = append(created, Identity{SessionID: sessionID, RestaurantID: restaurantID, TableID: tableID})
		return nil
	}

	store := NewIdentityStore(NewMemoryKV())
	resolver := NewResolver(store, create)

	first := resolver.Resolve("r1", "t1")
	resolver.Resolve("r1", "t1")
	second := resolver.Resolve("r1", "t2")

	if len(created) != 2 {
		t.Fatalf("create invoked %d times, want 2", len(created))
	}
	if created[0].SessionID != first.SessionID || created[0].TableID != "t1" {
		t.Errorf("first create = %+v, want session %q table t1", created[0], first.SessionID)
	}
	if created[1].SessionID != second.SessionID || created[1].TableID != "t2" {
		t.Errorf("second create = %+v, want session %q table t2", created[1], second.SessionID)
	}
}

func TestResolverResetForcesFreshSession(t *testing.T) {
	kv := NewMemoryKV()
	store := NewIdentityStore(kv)
	resolver := NewResolver(store, nil)

	first := resolver.Resolve("r1", "t1")
	resolver.Reset()

	if _, ok := kv.Get(KeySessionID); ok {
		t.Errorf("%s still stored after Reset()", KeySessionID)
	}

	second := resolver.Resolve("r1", "t1")
	if !second.Created {
		t.Error("Resolve() after Reset() Created = false, want true")
	}
	if second.SessionID == first.SessionID {
		t.Error("Resolve() after Reset() reused the old session id")
	}
}

func TestResolverConcurrentTabsConverge(t *testing.T) {
	store := NewIdentityStore(NewMemoryKV())

	const tabs = 8
	ids := make([]string, tabs)
	var wg sync.WaitGroup
	for i := 0; i < tabs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resolver := NewResolver(store, nil)
			ids[i] = resolver.Resolve("r1", "t1").SessionID
		}(i)
	}
	wg.Wait()

	for i := 1; i < tabs; i++ {
		if ids[i] != ids[0] {
			t.Fatalf("tab %d got session %q, tab 0 got %q; tabs must converge", i, ids[i], ids[0])
		}
	}
}
