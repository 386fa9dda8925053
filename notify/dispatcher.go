package notify

import "sync"

//go:generate go tool mockgen -destination=./mocks/listener_mock.go -package=mocks . Listener

// Listener receives completion notifications
// OnCompletion is called synchronously and must not block
type Listener interface {
	OnCompletion(c Completion)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(c Completion)

func (f ListenerFunc) OnCompletion(c Completion) {
	f(c)
}

// Dispatcher is the observer list of notification scopes
type Dispatcher struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewDispatcher creates a dispatcher with the given listeners registered in order
func NewDispatcher(listeners ...Listener) *Dispatcher {
	d := &Dispatcher{}
	for _, l := range listeners {
		d.Register(l)
	}
	return d
}

// Register adds a listener, nil is ignored
func (d *Dispatcher) Register(l Listener) {
	if l == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, l)
}

// Unregister removes the first registration of a listener
func (d *Dispatcher) Unregister(l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, existing := range d.listeners {
		if existing == l {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered listeners
func (d *Dispatcher) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners)
}

// Deliver sends the same notification to every listener in registration order
func (d *Dispatcher) Deliver(c Completion) {
	d.mu.RLock()
	listeners := make([]Listener, len(d.listeners))
	copy(listeners, d.listeners)
	d.mu.RUnlock()

	for _, l := range listeners {
		l.OnCompletion(c)
	}
}
