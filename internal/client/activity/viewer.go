package activity

import "sync"

// DefaultViewerCap bounds the viewer buffer.
const DefaultViewerCap = 50

// Viewer subscribes to a bus and keeps the most recent entries, newest
// first. When the buffer is full the oldest entry is dropped.
type Viewer struct {
	bus *Bus
	sub *Subscription

	mu      sync.RWMutex
	cap     int
	entries []Entry
}

// NewViewer attaches a viewer to the bus. cap <= 0 means DefaultViewerCap.
func NewViewer(bus *Bus, capacity int) *Viewer {
	if capacity <= 0 {
		capacity = DefaultViewerCap
	}
	v := &Viewer{bus: bus, cap: capacity}
	v.sub = bus.Subscribe(v.append)
	return v
}

func (v *Viewer) append(e Entry) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.entries = append([]Entry{e}, v.entries...)
	if len(v.entries) > v.cap {
		v.entries = v.entries[:v.cap]
	}
}

// Entries returns a copy, newest first.
func (v *Viewer) Entries() []Entry {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Clear empties the buffer.
func (v *Viewer) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.entries = nil
}

// Close detaches the viewer from the bus.
func (v *Viewer) Close() {
	v.bus.Unsubscribe(v.sub)
}
