package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/labsim/parameter"
)

func TestEventQueue_FIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(SimEvent{Type: EventCollision, Frame: uint64(i)})
	}
	require.Equal(t, 5, q.Len())

	got := q.Consume()
	require.Len(t, got, 5)
	for i, ev := range got {
		assert.Equal(t, uint64(i), ev.Frame)
	}
	assert.Nil(t, q.Consume())
	assert.Equal(t, 0, q.Len())
}

func TestEventQueue_OverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(SimEvent{Frame: uint64(i)})
	}

	got := q.Consume()
	require.Len(t, got, parameter.EventQueueSize)
	assert.Equal(t, uint64(10), got[0].Frame)
	assert.Equal(t, uint64(total-1), got[len(got)-1].Frame)
}

func TestEventQueue_NilPushIsNoop(t *testing.T) {
	var q *EventQueue
	assert.NotPanics(t, func() { q.Push(SimEvent{Type: EventBoundaryBounce}) })
}

func TestEventQueue_ConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(SimEvent{Type: EventCollision})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, q.Consume(), 400)
}

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "collision", EventCollision.String())
	assert.Equal(t, "circuit_solved", EventCircuitSolved.String())
	assert.Equal(t, "floor", WallFloor.String())
}
