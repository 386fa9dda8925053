package events

// FramePayload carries the driver clock for one rendered frame
type FramePayload struct {
	Elapsed float64 // Seconds since the scene started
	Delta   float64 // Seconds since the previous frame
}

// TargetPickedPayload identifies the picked target
type TargetPickedPayload struct {
	TargetID int
}

// PointerCapturePayload is the new capture state
type PointerCapturePayload struct {
	Active bool
}
