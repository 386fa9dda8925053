package events

// Handler consumes routed events within a context T
type Handler[T any] interface {
	HandleEvent(ctx T, event GameEvent)

	// EventTypes lists the types the handler is registered for
	EventTypes() []EventType
}

// Router drains an EventQueue and hands each event to its handlers
// Handlers of one type run in registration order. The router is owned by
// the queue's consumer goroutine and is not safe for concurrent use
type Router[T any] struct {
	queue *EventQueue
	table [eventTypeCount][]Handler[T]
}

func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{queue: queue}
}

// Register binds a handler to each of its declared types
// Types outside the known range are skipped
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		if t.valid() {
			r.table[t] = append(r.table[t], handler)
		}
	}
}

// Dispatch routes a single event, reports whether any handler received it
func (r *Router[T]) Dispatch(ctx T, ev GameEvent) bool {
	if !ev.Type.valid() || len(r.table[ev.Type]) == 0 {
		return false
	}
	for _, h := range r.table[ev.Type] {
		h.HandleEvent(ctx, ev)
	}
	return true
}

// DispatchAll drains the queue in FIFO order and returns the number consumed
// Events without a handler still count as consumed
func (r *Router[T]) DispatchAll(ctx T) int {
	pending := r.queue.Consume()
	for _, ev := range pending {
		r.Dispatch(ctx, ev)
	}
	return len(pending)
}

// HandlerCount returns the number of handlers bound to t
func (r *Router[T]) HandlerCount(t EventType) int {
	if !t.valid() {
		return 0
	}
	return len(r.table[t])
}
