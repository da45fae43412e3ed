// Package activity is the in-process activity log: an injected publish/
// subscribe bus plus a bounded viewer buffer for display.
package activity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/homeboard/internal/client/kvstore"
	"github.com/dmitrijs2005/homeboard/internal/common"
)

// Severity classifies an activity entry.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Entry is one published activity event.
type Entry struct {
	Time     time.Time
	Message  string
	Severity Severity
}

// Handler receives published entries.
type Handler func(Entry)

// Subscription identifies one registered handler; pass it to Unsubscribe.
type Subscription struct {
	id string
}

// Bus fans published entries out to subscribers. It is an injected
// instance, never package state, so independent components (and tests)
// get isolated logs. Safe for concurrent use.
type Bus struct {
	store kvstore.Store
	now   func() time.Time

	mu       sync.RWMutex
	enabled  bool
	handlers map[string]Handler
}

// NewBus builds a bus whose enabled flag is restored from the store; a
// missing key means enabled.
func NewBus(ctx context.Context, store kvstore.Store) (*Bus, error) {
	b := &Bus{
		store:    store,
		now:      time.Now,
		enabled:  true,
		handlers: make(map[string]Handler),
	}
	v, err := store.Get(ctx, common.KeyActivityLogEnabled)
	if err != nil {
		return nil, err
	}
	if v != nil {
		b.enabled = string(v) != "0"
	}
	return b, nil
}

// Subscribe registers a handler and returns its subscription handle.
func (b *Bus) Subscribe(h Handler) *Subscription {
	id := uuid.NewString()
	b.mu.Lock()
	b.handlers[id] = h
	b.mu.Unlock()
	return &Subscription{id: id}
}

// Unsubscribe removes a handler; unknown or already-removed handles are
// ignored.
func (b *Bus) Unsubscribe(s *Subscription) {
	if s == nil {
		return
	}
	b.mu.Lock()
	delete(b.handlers, s.id)
	b.mu.Unlock()
}

// Enabled reports whether publishing is active.
func (b *Bus) Enabled() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.enabled
}

// SetEnabled flips the flag and persists it.
func (b *Bus) SetEnabled(ctx context.Context, enabled bool) error {
	b.mu.Lock()
	b.enabled = enabled
	b.mu.Unlock()
	v := []byte("1")
	if !enabled {
		v = []byte("0")
	}
	return b.store.Set(ctx, common.KeyActivityLogEnabled, v)
}

// Publish delivers an entry to every subscriber. Disabled buses drop
// entries silently. Handlers run synchronously on the caller's
// goroutine.
func (b *Bus) Publish(message string, severity Severity) {
	b.mu.RLock()
	if !b.enabled {
		b.mu.RUnlock()
		return
	}
	entry := Entry{Time: b.now(), Message: message, Severity: severity}
	handlers := make([]Handler, 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(entry)
	}
}
