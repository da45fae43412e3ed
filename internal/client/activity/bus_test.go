package activity

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/homeboard/internal/client/kvstore"
	"github.com/dmitrijs2005/homeboard/internal/common"
)

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	bus, err := NewBus(context.Background(), kvstore.NewMemoryStore())
	require.NoError(t, err)
	return bus
}

func TestBus_PublishReachesSubscribers(t *testing.T) {
	bus := newTestBus(t)

	var got []Entry
	bus.Subscribe(func(e Entry) { got = append(got, e) })

	bus.Publish("platform added", SeveritySuccess)
	require.Len(t, got, 1)
	assert.Equal(t, "platform added", got[0].Message)
	assert.Equal(t, SeveritySuccess, got[0].Severity)
	assert.False(t, got[0].Time.IsZero())
}

func TestBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := newTestBus(t)

	count := 0
	sub := bus.Subscribe(func(Entry) { count++ })
	bus.Publish("one", SeverityInfo)
	bus.Unsubscribe(sub)
	bus.Publish("two", SeverityInfo)

	assert.Equal(t, 1, count)

	// double unsubscribe and nil handle are no-ops
	bus.Unsubscribe(sub)
	bus.Unsubscribe(nil)
}

func TestBus_IndependentInstances(t *testing.T) {
	a := newTestBus(t)
	b := newTestBus(t)

	count := 0
	a.Subscribe(func(Entry) { count++ })
	b.Publish("elsewhere", SeverityInfo)

	assert.Zero(t, count)
}

func TestBus_DisabledDropsEntries(t *testing.T) {
	ctx := context.Background()
	bus := newTestBus(t)

	count := 0
	bus.Subscribe(func(Entry) { count++ })

	require.NoError(t, bus.SetEnabled(ctx, false))
	bus.Publish("dropped", SeverityWarning)
	assert.Zero(t, count)

	require.NoError(t, bus.SetEnabled(ctx, true))
	bus.Publish("delivered", SeverityWarning)
	assert.Equal(t, 1, count)
}

func TestBus_EnabledFlagPersists(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	bus, err := NewBus(ctx, store)
	require.NoError(t, err)
	assert.True(t, bus.Enabled(), "missing key defaults to enabled")

	require.NoError(t, bus.SetEnabled(ctx, false))

	v, err := store.Get(ctx, common.KeyActivityLogEnabled)
	require.NoError(t, err)
	assert.Equal(t, []byte("0"), v)

	reopened, err := NewBus(ctx, store)
	require.NoError(t, err)
	assert.False(t, reopened.Enabled())
}

func TestViewer_NewestFirstCapped(t *testing.T) {
	bus := newTestBus(t)
	v := NewViewer(bus, 3)
	defer v.Close()

	for i := 1; i <= 5; i++ {
		bus.Publish(fmt.Sprintf("event %d", i), SeverityInfo)
	}

	entries := v.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "event 5", entries[0].Message)
	assert.Equal(t, "event 4", entries[1].Message)
	assert.Equal(t, "event 3", entries[2].Message)
}

func TestViewer_CloseDetaches(t *testing.T) {
	bus := newTestBus(t)
	v := NewViewer(bus, 0)

	bus.Publish("before", SeverityInfo)
	v.Close()
	bus.Publish("after", SeverityInfo)

	entries := v.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "before", entries[0].Message)
}

func TestViewer_Clear(t *testing.T) {
	bus := newTestBus(t)
	v := NewViewer(bus, 0)
	defer v.Close()

	bus.Publish("one", SeverityInfo)
	v.Clear()
	assert.Empty(t, v.Entries())
}
