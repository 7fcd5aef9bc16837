package session

import "sync"

// Storage keys devices already carry. They must stay byte-identical or
// existing devices lose their session identity.
const (
	KeySessionID    = "restaurant_session_id"
	KeyRestaurantID = "restaurant_id"
	KeyTableID      = "table_id"

	// keyLegacySession is only ever removed, never written; deleting it is
	// how a forced session reset is signalled.
	keyLegacySession = "dine_in_session"
)

// Identity is the (session, restaurant, table) triple a device carries.
type Identity struct {
	SessionID    string
	RestaurantID string
	TableID      string
}

func (id Identity) empty() bool {
	return id.SessionID == "" && id.RestaurantID == "" && id.TableID == ""
}

// IdentityStore guards the triple with compare-and-swap semantics, closing
// the lost-update race two tabs hit when they regenerate the session at the
// same time.
type IdentityStore struct {
	mu sync.Mutex
	kv KV
}

func NewIdentityStore(kv KV) *IdentityStore {
	return &IdentityStore{kv: kv}
}

// Load returns the stored triple. ok is false when any of the three keys is
// absent, which callers treat the same as a pair mismatch.
func (s *IdentityStore) Load() (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *IdentityStore) load() (Identity, bool) {
	sid, ok1 := s.kv.Get(KeySessionID)
	rid, ok2 := s.kv.Get(KeyRestaurantID)
	tid, ok3 := s.kv.Get(KeyTableID)
	id := Identity{SessionID: sid, RestaurantID: rid, TableID: tid}
	return id, ok1 && ok2 && ok3
}

// CompareAndSwap installs next only when the stored triple still equals old.
// It returns the triple that is current after the attempt and whether the
// swap happened. Pass a zero Identity as old to expect an empty store.
func (s *IdentityStore) CompareAndSwap(old, next Identity) (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.load()
	if ok != !old.empty() || (ok && cur != old) {
		if !ok {
			return Identity{}, false
		}
		return cur, false
	}

	s.kv.Set(KeySessionID, next.SessionID)
	s.kv.Set(KeyRestaurantID, next.RestaurantID)
	s.kv.Set(KeyTableID, next.TableID)
	return next, true
}

// Reset wipes the triple and removes the legacy session marker, forcing the
// next resolve to mint a fresh session.
func (s *IdentityStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.kv.Delete(KeySessionID)
	s.kv.Delete(KeyRestaurantID)
	s.kv.Delete(KeyTableID)
	s.kv.Delete(keyLegacySession)
}
