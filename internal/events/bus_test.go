package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishSubscribe(t *testing.T) {
	bus := NewBus(nil)
	defer bus.Close()

	ch := bus.Subscribe(EventTracksChanged, 10)

	e := &TracksChanged{BaseEvent: NewBaseEvent(EventTracksChanged, EntitySession, 1), Labels: []string{"Auto"}}
	err := bus.Publish(context.Background(), e)
	require.NoError(t, err)

	select {
	case received := <-ch:
		assert.Equal(t, EventTracksChanged, received.EventType())
		tc, ok := received.(*TracksChanged)
		require.True(t, ok)
		assert.Equal(t, []string{"Auto"}, tc.Labels)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestBus_SubscribeOnlyMatchingType(t *testing.T) {
	bus := NewBus(nil)
	defer bus.Close()

	ch := bus.Subscribe(EventPlayerFailed, 10)

	err := bus.Publish(context.Background(), &TracksChanged{BaseEvent: NewBaseEvent(EventTracksChanged, EntitySession, 1)})
	require.NoError(t, err)

	select {
	case e := <-ch:
		t.Fatalf("unexpected event %s", e.EventType())
	default:
	}
}

func TestBus_SubscribeAll(t *testing.T) {
	bus := NewBus(nil)
	defer bus.Close()

	ch := bus.SubscribeAll(10)

	e1 := &PlayerFailed{BaseEvent: NewBaseEvent(EventPlayerFailed, EntitySession, 1), Message: "boom"}
	e2 := &CatalogFetched{BaseEvent: NewBaseEvent(EventCatalogFetched, EntityCatalog, 1), Title: "X"}

	require.NoError(t, bus.Publish(context.Background(), e1))
	require.NoError(t, bus.Publish(context.Background(), e2))

	received := make([]Event, 0, 2)
	timeout := time.After(time.Second)
	for i := 0; i < 2; i++ {
		select {
		case e := <-ch:
			received = append(received, e)
		case <-timeout:
			t.Fatalf("timeout waiting for event %d", i+1)
		}
	}

	assert.Len(t, received, 2)
	assert.Equal(t, EventPlayerFailed, received[0].EventType())
	assert.Equal(t, EventCatalogFetched, received[1].EventType())
}

func TestBus_FullSubscriberDropsEvent(t *testing.T) {
	bus := NewBus(nil)
	defer bus.Close()

	ch := bus.Subscribe(EventPlayerFailed, 1)

	for i := 0; i < 3; i++ {
		e := &PlayerFailed{BaseEvent: NewBaseEvent(EventPlayerFailed, EntitySession, int64(i))}
		require.NoError(t, bus.Publish(context.Background(), e))
	}

	assert.Len(t, ch, 1)
	first := <-ch
	assert.Equal(t, int64(0), first.EntityID())
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(nil)
	defer bus.Close()

	ch := bus.Subscribe(EventPlayerFailed, 10)
	bus.Unsubscribe(ch)

	e := &PlayerFailed{BaseEvent: NewBaseEvent(EventPlayerFailed, EntitySession, 1)}
	require.NoError(t, bus.Publish(context.Background(), e))

	_, ok := <-ch
	assert.False(t, ok, "channel should be closed")
}

func TestBus_CloseClosesSubscribers(t *testing.T) {
	bus := NewBus(nil)

	typed := bus.Subscribe(EventTracksChanged, 1)
	all := bus.SubscribeAll(1)

	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close(), "second close is a no-op")

	_, ok := <-typed
	assert.False(t, ok)
	_, ok = <-all
	assert.False(t, ok)

	// Publishing after close is silently ignored
	err := bus.Publish(context.Background(), &PlayerFailed{BaseEvent: NewBaseEvent(EventPlayerFailed, EntitySession, 1)})
	assert.NoError(t, err)

	late := bus.Subscribe(EventTracksChanged, 1)
	_, ok = <-late
	assert.False(t, ok, "subscribing to a closed bus returns a closed channel")
}

func TestBus_PublishCanceledContext(t *testing.T) {
	bus := NewBus(nil)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := bus.Publish(ctx, &PlayerFailed{BaseEvent: NewBaseEvent(EventPlayerFailed, EntitySession, 1)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewBus(nil)
	defer bus.Close()

	ch := bus.SubscribeAll(100)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			e := &TracksChanged{BaseEvent: NewBaseEvent(EventTracksChanged, EntitySession, int64(n))}
			_ = bus.Publish(context.Background(), e)
		}(i)
	}

	wg.Wait()

	count := 0
	timeout := time.After(time.Second)
loop:
	for {
		select {
		case <-ch:
			count++
			if count == 10 {
				break loop
			}
		case <-timeout:
			break loop
		}
	}

	assert.Equal(t, 10, count)
}
