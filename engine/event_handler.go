package engine

import (
	"github.com/lixenwraith/mini-fps/events"
)

// SessionHandler routes queued scene events to the session's inbound feed
type SessionHandler struct{}

// EventTypes implements events.Handler
func (SessionHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventFrame,
		events.EventStart,
		events.EventShootInput,
		events.EventReloadInput,
		events.EventTargetPicked,
		events.EventPointerCaptureChanged,
		events.EventEnd,
	}
}

// HandleEvent implements events.Handler
// Events with a missing payload are dropped
func (SessionHandler) HandleEvent(s *Session, ev events.GameEvent) {
	switch ev.Type {
	case events.EventFrame:
		if p, ok := ev.Payload.(*events.FramePayload); ok {
			s.OnFrame(p.Elapsed, p.Delta)
		}
	case events.EventStart:
		s.Start()
	case events.EventShootInput:
		s.OnShootInput()
	case events.EventReloadInput:
		s.OnReloadInput()
	case events.EventTargetPicked:
		if p, ok := ev.Payload.(*events.TargetPickedPayload); ok {
			s.OnTargetPicked(p.TargetID)
		}
	case events.EventPointerCaptureChanged:
		if p, ok := ev.Payload.(*events.PointerCapturePayload); ok {
			s.OnPointerCaptureChanged(p.Active)
		}
	case events.EventEnd:
		s.End()
	}
}
