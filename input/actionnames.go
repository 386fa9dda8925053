package input

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve configured action strings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":          IntentQuit,
	"escape":        IntentEscape,
	"confirm":       IntentConfirm,
	"shoot":         IntentShoot,
	"reload":        IntentReload,
	"move_forward":  IntentMoveForward,
	"move_backward": IntentMoveBackward,
	"strafe_left":   IntentStrafeLeft,
	"strafe_right":  IntentStrafeRight,
	"turn_left":     IntentTurnLeft,
	"turn_right":    IntentTurnRight,
}

// keyNames maps configurable special key names to tcell keys
var keyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"escape":    tcell.KeyEscape,
	"esc":       tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-q":    tcell.KeyCtrlQ,
	"ctrl-r":    tcell.KeyCtrlR,
}

// ActionIntent resolves a canonical action name to its intent
func ActionIntent(name string) (IntentType, bool) {
	intent, ok := actionRegistry[name]
	return intent, ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// KeyByName resolves a configurable special key name
func KeyByName(name string) (tcell.Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}
