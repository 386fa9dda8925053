package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into semantic intents
// Tracks the left button across mouse events to report press edges and drags
type Machine struct {
	keyTable *KeyTable

	leftHeld bool
	lastX    int
}

// NewMachine creates a machine with the given bindings, nil uses the defaults
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{keyTable: kt}
}

// KeyTable returns the active bindings
func (m *Machine) KeyTable() *KeyTable {
	return m.keyTable
}

// Reset clears pending mouse state
func (m *Machine) Reset() {
	m.leftHeld = false
	m.lastX = 0
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no bound action
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventFocus:
		return &Intent{Type: IntentFocus, Active: ev.Focused}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	t := m.keyTable.Lookup(ev)
	if t == IntentNone {
		return nil
	}
	return &Intent{Type: t}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !m.leftHeld:
		m.leftHeld = true
		m.lastX = x
		return &Intent{Type: IntentClick, X: x, Y: y}
	case pressed && m.leftHeld:
		dx := x - m.lastX
		m.lastX = x
		if dx == 0 {
			return nil
		}
		return &Intent{Type: IntentLook, DX: dx}
	default:
		m.leftHeld = false
		return nil
	}
}
