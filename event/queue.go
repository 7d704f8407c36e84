package event

import (
	"sync/atomic"

	"github.com/lixenwraith/labsim/parameter"
)

// EventQueue buffers simulation events between strategies and the engine loop
// Any goroutine may Push; only the engine loop may Consume. When the ring is full the
// oldest unread events are dropped so a stalled consumer never blocks a strategy
type EventQueue struct {
	events [parameter.EventQueueSize]SimEvent
	ready  [parameter.EventQueueSize]atomic.Bool
	head   atomic.Uint64 // next sequence to read
	tail   atomic.Uint64 // next sequence to write
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

func slot(seq uint64) uint64 {
	return seq & parameter.EventBufferMask
}

// Push appends an event; a nil queue drops it
func (eq *EventQueue) Push(ev SimEvent) {
	if eq == nil {
		return
	}

	seq := eq.reserve()
	i := slot(seq)
	eq.events[i] = ev
	eq.ready[i].Store(true)

	eq.dropOverflow(seq + 1)
}

// reserve claims the next write sequence
func (eq *EventQueue) reserve() uint64 {
	for {
		seq := eq.tail.Load()
		if eq.tail.CompareAndSwap(seq, seq+1) {
			return seq
		}
	}
}

// dropOverflow moves head forward when the writer at end has lapped the reader
func (eq *EventQueue) dropOverflow(end uint64) {
	head := eq.head.Load()
	if end-head > parameter.EventQueueSize {
		eq.head.CompareAndSwap(head, end-parameter.EventQueueSize)
	}
}

// Consume drains ready events in push order
// Stops at the first slot whose writer has not finished; the rest stay queued
func (eq *EventQueue) Consume() []SimEvent {
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if tail == head {
			return nil
		}

		from, n := head, tail-head
		if n > parameter.EventQueueSize {
			from, n = tail-parameter.EventQueueSize, parameter.EventQueueSize
		}

		out := make([]SimEvent, 0, n)
		for seq := from; seq < from+n; seq++ {
			i := slot(seq)
			if !eq.ready[i].Load() {
				break
			}
			out = append(out, eq.events[i])
			eq.ready[i].Store(false)
		}

		// CAS against the observed head, not from
		if eq.head.CompareAndSwap(head, from+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len is the pending count, capped at capacity; racy by nature
func (eq *EventQueue) Len() int {
	head, tail := eq.head.Load(), eq.tail.Load()
	if tail <= head {
		return 0
	}
	if n := tail - head; n < parameter.EventQueueSize {
		return int(n)
	}
	return parameter.EventQueueSize
}

// Reset drops everything pending; engine loop only
func (eq *EventQueue) Reset() {
	eq.Consume()
}
