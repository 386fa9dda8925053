package events

import "testing"

type recordingHandler struct {
	types []EventType
	seen  []EventType
}

func (h *recordingHandler) HandleEvent(ctx *[]string, event GameEvent) {
	h.seen = append(h.seen, event.Type)
	*ctx = append(*ctx, event.Type.String())
}

func (h *recordingHandler) EventTypes() []EventType {
	return h.types
}

func TestRouterDispatchAll(t *testing.T) {
	eq := NewEventQueue()
	r := NewRouter[*[]string](eq)

	input := &recordingHandler{types: []EventType{EventShootInput, EventReloadInput}}
	frames := &recordingHandler{types: []EventType{EventFrame}}
	r.Register(input)
	r.Register(frames)

	if r.HandlerCount(EventShootInput) != 1 || r.HandlerCount(EventTargetPicked) != 0 {
		t.Fatalf("Unexpected handler registration")
	}

	eq.Push(GameEvent{Type: EventShootInput})
	eq.Push(GameEvent{Type: EventFrame, Payload: &FramePayload{Delta: 0.016}})
	eq.Push(GameEvent{Type: EventReloadInput})
	eq.Push(GameEvent{Type: EventTargetPicked}) // No handler

	var log []string
	if n := r.DispatchAll(&log); n != 4 {
		t.Errorf("Expected 4 events consumed, got %d", n)
	}

	if len(input.seen) != 2 || input.seen[0] != EventShootInput || input.seen[1] != EventReloadInput {
		t.Errorf("Input handler saw %v", input.seen)
	}
	if len(frames.seen) != 1 {
		t.Errorf("Frame handler saw %v", frames.seen)
	}

	want := []string{"ShootInput", "Frame", "ReloadInput"}
	if len(log) != len(want) {
		t.Fatalf("Expected dispatch log %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Dispatch %d: expected %s, got %s", i, want[i], log[i])
		}
	}
}

func TestRouterDispatch(t *testing.T) {
	r := NewRouter[*[]string](NewEventQueue())
	h := &recordingHandler{types: []EventType{EventStart, EventType(0), EventType(999)}}
	r.Register(h)

	tests := []struct {
		name  string
		event EventType
		want  bool
	}{
		{"bound", EventStart, true},
		{"unbound", EventEnd, false},
		{"zero type", EventType(0), false},
		{"out of range", EventType(999), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log []string
			if got := r.Dispatch(&log, GameEvent{Type: tt.event}); got != tt.want {
				t.Errorf("Dispatch(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}

	if len(h.seen) != 1 {
		t.Errorf("Expected one delivery, got %v", h.seen)
	}
	if r.HandlerCount(EventType(999)) != 0 {
		t.Error("Out of range type must have no handlers")
	}
}

func TestEventRegistry(t *testing.T) {
	for _, name := range []string{"Frame", "Start", "ShootInput", "ReloadInput", "TargetPicked", "PointerCaptureChanged", "End"} {
		et, ok := GetEventType(name)
		if !ok {
			t.Errorf("Event %q not registered", name)
			continue
		}
		if GetEventName(et) != name {
			t.Errorf("Round trip for %q gave %q", name, GetEventName(et))
		}
	}
	if GetEventName(EventType(999)) != "Unknown" {
		t.Error("Expected Unknown for unregistered type")
	}
}
