package events

import (
	"sync/atomic"

	"github.com/lixenwraith/mini-fps/constants"
)

type queuedEvent struct {
	event GameEvent
	next  *queuedEvent // Older neighbour
}

// EventQueue is a lock-free MPSC queue of scene events
// Producers (input poller, frame ticker) CAS onto a linked stack; the single
// consumer (game loop) detaches the whole stack and reverses it into FIFO
// order. At most EventQueueSize of the newest events survive one Consume
type EventQueue struct {
	top     atomic.Pointer[queuedEvent]
	pending atomic.Int64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push enqueues one event, safe for concurrent producers
func (eq *EventQueue) Push(event GameEvent) {
	n := &queuedEvent{event: event}
	for {
		old := eq.top.Load()
		n.next = old
		if eq.top.CompareAndSwap(old, n) {
			eq.pending.Add(1)
			return
		}
	}
}

// Consume detaches every pending event and returns them oldest first
// Must only be called from the consumer goroutine
func (eq *EventQueue) Consume() []GameEvent {
	top := eq.top.Swap(nil)
	if top == nil {
		return nil
	}

	n := 0
	for e := top; e != nil; e = e.next {
		n++
	}
	eq.pending.Add(-int64(n))

	// Stack is newest first, fill from the back and drop what does not fit
	keep := min(n, constants.EventQueueSize)
	out := make([]GameEvent, keep)
	i := keep - 1
	for e := top; i >= 0; e = e.next {
		out[i] = e.event
		i--
	}
	return out
}

// Len returns the approximate number of events the next Consume yields
func (eq *EventQueue) Len() int {
	n := eq.pending.Load()
	return int(min(max(n, 0), constants.EventQueueSize))
}
