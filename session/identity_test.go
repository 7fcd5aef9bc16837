package session

import "testing"

func TestIdentityStoreLoad(t *testing.T) {
	kv := NewMemoryKV()
	store := NewIdentityStore(kv)

	if _, ok := store.Load(); ok {
		t.Error("Load() ok = true for empty store")
	}

	kv.Set(KeySessionID, "sess-1")
	if _, ok := store.Load(); ok {
		t.Error("Load() ok = true with partial triple")
	}

	kv.Set(KeyRestaurantID, "r1")
	kv.Set(KeyTableID, "t1")
	id, ok := store.Load()
	if !ok {
		t.Fatal("Load() ok = false with full triple")
	}
	want := Identity{SessionID: "sess-1", RestaurantID: "r1", TableID: "t1"}
	if id != want {
		t.Errorf("Load() = %+v, want %+v", id, want)
	}
}

func TestIdentityStoreCompareAndSwap(t *testing.T) {
	a := Identity{SessionID: "a", RestaurantID: "r1", TableID: "t1"}
	b := Identity{SessionID: "b", RestaurantID: "r1", TableID: "t2"}
	c := Identity{SessionID: "c", RestaurantID: "r2", TableID: "t1"}

	tests := []struct {
		name        string
		seed        *Identity
		old         Identity
		next        Identity
		wantSwapped bool
		wantCurrent Identity
	}{
		{
			name:        "emptyStoreExpectEmpty",
			old:         Identity{},
			next:        a,
			wantSwapped: true,
			wantCurrent: a,
		},
		{
			name:        "emptyStoreExpectValue",
			old:         a,
			next:        b,
			wantSwapped: false,
			wantCurrent: Identity{},
		},
		{
			name:        "matchingOld",
			seed:        &a,
			old:         a,
			next:        b,
			wantSwapped: true,
			wantCurrent: b,
		},
		{
			name:        "staleOld",
			seed:        &b,
			old:         a,
			next:        c,
			wantSwapped: false,
			wantCurrent: b,
		},
		{
			name:        "expectEmptyButOccupied",
			seed:        &a,
			old:         Identity{},
			next:        b,
			wantSwapped: false,
			wantCurrent: a,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewIdentityStore(NewMemoryKV())
			if tt.seed != nil {
				if _, ok := store.CompareAndSwap(Identity{}, *tt.seed); !ok {
					t.Fatal("failed to seed store")
				}
			}

			current, swapped := store.CompareAndSwap(tt.old, tt.next)
			if swapped != tt.wantSwapped {
				t.Errorf("CompareAndSwap() swapped = %v, want %v", swapped, tt.wantSwapped)
			}
			if current != tt.wantCurrent {
				t.Errorf("CompareAndSwap() current = %+v, want %+v", current, tt.wantCurrent)
			}
		})
	}
}

func TestIdentityStoreReset(t *testing.T) {
	kv := NewMemoryKV()
	store := NewIdentityStore(kv)

	kv.Set(KeySessionID, "sess-1")
	kv.Set(KeyRestaurantID, "r1")
	kv.Set(KeyTableID, "t1")
	kv.Set(keyLegacySession, "legacy")

	store.Reset()

	for _, key := range []string{KeySessionID, KeyRestaurantID, KeyTableID, keyLegacySession} {
		if _, ok := kv.Get(key); ok {
			t.Errorf("key %q still present after Reset()", key)
		}
	}
}
