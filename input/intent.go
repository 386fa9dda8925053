package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit    // Ctrl+Q, Ctrl+C
	IntentEscape  // ESC key, releases pointer capture
	IntentResize  // Terminal resize event
	IntentFocus   // Terminal focus change, Active carries the new state
	IntentConfirm // Enter, dismisses the start screen

	// Weapon
	IntentShoot  // Space, left click while captured
	IntentReload // r

	// Movement relative to heading
	IntentMoveForward  // w
	IntentMoveBackward // s
	IntentStrafeLeft   // a
	IntentStrafeRight  // d

	// Heading
	IntentTurnLeft  // Left arrow
	IntentTurnRight // Right arrow

	// Mouse
	IntentClick // Left button press edge at X, Y
	IntentLook  // Drag with left button held, DX is the column delta
)

var intentNames = [...]string{
	IntentNone:         "None",
	IntentQuit:         "Quit",
	IntentEscape:       "Escape",
	IntentResize:       "Resize",
	IntentFocus:        "Focus",
	IntentConfirm:      "Confirm",
	IntentShoot:        "Shoot",
	IntentReload:       "Reload",
	IntentMoveForward:  "MoveForward",
	IntentMoveBackward: "MoveBackward",
	IntentStrafeLeft:   "StrafeLeft",
	IntentStrafeRight:  "StrafeRight",
	IntentTurnLeft:     "TurnLeft",
	IntentTurnRight:    "TurnRight",
	IntentClick:        "Click",
	IntentLook:         "Look",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "Unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type   IntentType
	X, Y   int  // Mouse cell for IntentClick
	DX     int  // Column delta for IntentLook
	Active bool // Focus state for IntentFocus
}
