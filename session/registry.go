package session

import "sync"

// DeviceRegistry holds per-device client state on the server. Each device id
// maps to one KV store and one identity
// store; the identity store must be shared by every request for the device or
// its compare-and-swap guarantees nothing.
type DeviceRegistry struct {
	mu      sync.Mutex
	devices map[string]*device
}

type device struct {
	kv       *MemoryKV
	identity *IdentityStore
}

func NewDeviceRegistry() *DeviceRegistry {
	return &DeviceRegistry{devices: make(map[string]*device)}
}

// Device returns the device's stores, creating them on first sight.
func (r *DeviceRegistry) Device(deviceID string) (KV, *IdentityStore) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.devices[deviceID]
	if !ok {
		kv := NewMemoryKV()
		d = &device{kv: kv, identity: NewIdentityStore(kv)}
		r.devices[deviceID] = d
	}
	return d.kv, d.identity
}
