package session

import (
	"log"

	"github.com/google/uuid"
)

// CreateFunc issues the server-side session creation mutation. It must be
// idempotent per session id; the resolver never retries it.
type CreateFunc func(sessionID, restaurantID, tableID string) error

// Resolver produces a stable session id for a (restaurant, table) pair on one
// device. The stored id is reused while the pair matches; any mismatch or
// missing key mints a fresh id and overwrites all three storage keys.
type Resolver struct {
	store  *IdentityStore
	create CreateFunc
}

func NewResolver(store *IdentityStore, create CreateFunc) *Resolver {
	return &Resolver{store: store, create: create}
}

// Resolution reports the id in effect and whether this call minted it.
type Resolution struct {
	SessionID string `json:"session_id"`
	Created   bool   `json:"created"`
}

// Resolve returns the session id for the pair. When two callers race on the
// same store, the compare-and-swap loses for one of them and it adopts the
// winner's id instead of clobbering it.
func (r *Resolver) Resolve(restaurantID, tableID string) Resolution {
	for {
		cur, ok := r.store.Load()
		if ok && cur.RestaurantID == restaurantID && cur.TableID == tableID {
			return Resolution{SessionID: cur.SessionID}
		}

		if !ok {
			cur = Identity{}
		}
		fresh := Identity{
			SessionID:    uuid.NewString(),
			RestaurantID: restaurantID,
			TableID:      tableID,
		}

		now, swapped := r.store.CompareAndSwap(cur, fresh)
		if swapped {
			if r.create != nil {
				// Fire-and-forget: the creation mutation is idempotent
				// server-side, so a lost write is repaired by the next call.
				if err := r.create(fresh.SessionID, restaurantID, tableID); err != nil {
					log.Printf("session create for %s failed: %v", fresh.SessionID, err)
				}
			}
			return Resolution{SessionID: fresh.SessionID, Created: true}
		}

		if now.RestaurantID == restaurantID && now.TableID == tableID {
			return Resolution{SessionID: now.SessionID}
		}
	}
}

// Reset clears the device's session identity entirely.
func (r *Resolver) Reset() {
	r.store.Reset()
}
