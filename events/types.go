package events

import (
	"time"
)

// EventType represents the type of inbound scene event
type EventType int

const (
	// EventFrame is the per-frame tick from the scene driver
	// Trigger: frame ticker | Payload: *FramePayload
	EventFrame EventType = iota + 1

	// EventStart dismisses the start screen and begins the session
	// Trigger: first click on the start screen | Payload: nil
	EventStart

	// EventShootInput is a fire request
	// Trigger: mouse click while pointer capture is active | Payload: nil
	// Ignored by the session unless capture is active
	EventShootInput

	// EventReloadInput restores ammo to the magazine size
	// Trigger: reload key | Payload: nil
	EventReloadInput

	// EventTargetPicked reports that the fire ray picked a target
	// Trigger: ray pick on shoot click | Payload: *TargetPickedPayload
	EventTargetPicked

	// EventPointerCaptureChanged reports capture acquisition or release
	// Trigger: capture click, Escape, focus loss | Payload: *PointerCapturePayload
	EventPointerCaptureChanged

	// EventEnd ends the session and discards its state
	// Trigger: quit | Payload: nil
	EventEnd

	eventTypeCount
)

func (et EventType) valid() bool {
	return et > 0 && et < eventTypeCount
}

// GameEvent is a single queued scene event
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
