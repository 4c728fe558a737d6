package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	mu     sync.Mutex
	events []DomainEvent
}

func (c *collector) handle(e DomainEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *collector) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func TestBus_DeliversToSubscribersInOrder(t *testing.T) {
	b := New(zerolog.Nop())
	defer b.Close()

	c := &collector{}
	b.Subscribe(EventSweepStarted, c.handle)

	b.Publish(SweepStartedEvent{From: 0, To: 10})
	b.Publish(SweepStartedEvent{From: 10, To: 0})
	b.Publish(DragStartedEvent{Offset: 3})

	require.Eventually(t, func() bool { return c.len() == 2 }, time.Second, 5*time.Millisecond)
	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Equal(t, 10.0, c.events[0].(SweepStartedEvent).To)
	assert.Equal(t, 0.0, c.events[1].(SweepStartedEvent).To)
}

func TestBus_Unsubscribe(t *testing.T) {
	b := New(zerolog.Nop())
	defer b.Close()

	first := &collector{}
	second := &collector{}
	unsubscribe := b.Subscribe(EventDriveResumed, first.handle)
	b.Subscribe(EventDriveResumed, second.handle)

	unsubscribe()
	b.Publish(DriveResumedEvent{Offset: 1})

	require.Eventually(t, func() bool { return second.len() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, first.len())
}

func TestBus_HandlerPanicDoesNotStopDispatch(t *testing.T) {
	b := New(zerolog.Nop())
	defer b.Close()

	c := &collector{}
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, c.handle)

	b.Publish(ErrorEvent{Message: "one"})
	b.Publish(ErrorEvent{Message: "two"})

	require.Eventually(t, func() bool { return c.len() == 2 }, time.Second, 5*time.Millisecond)
}

func TestBus_PublishAfterCloseIsDropped(t *testing.T) {
	b := New(zerolog.Nop())
	c := &collector{}
	b.Subscribe(EventItemsLoaded, c.handle)

	b.Close()
	b.Close()
	b.Publish(ItemsLoadedEvent{Count: 3})

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, c.len())
}

func TestAllEventTypes(t *testing.T) {
	seen := map[EventType]bool{}
	for _, et := range AllEventTypes {
		assert.False(t, seen[et], "duplicate %s", et)
		seen[et] = true
	}
	assert.Len(t, AllEventTypes, 12)
}
