package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Escape)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentEscape,
			tcell.KeyEnter:  IntentConfirm,
			tcell.KeyUp:     IntentMoveForward,
			tcell.KeyDown:   IntentMoveBackward,
			tcell.KeyLeft:   IntentTurnLeft,
			tcell.KeyRight:  IntentTurnRight,
		},
		Runes: map[rune]IntentType{
			' ': IntentShoot,
			'r': IntentReload,
			'R': IntentReload,
			'w': IntentMoveForward,
			'W': IntentMoveForward,
			's': IntentMoveBackward,
			'S': IntentMoveBackward,
			'a': IntentStrafeLeft,
			'A': IntentStrafeLeft,
			'd': IntentStrafeRight,
			'D': IntentStrafeRight,
			'q': IntentTurnLeft,
			'e': IntentTurnRight,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event to its bound intent, IntentNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() != tcell.KeyRune {
		return kt.SpecialKeys[ev.Key()]
	}
	// Some terminals report Ctrl+letter as a rune with the Ctrl modifier
	if r := ev.Rune(); ev.Modifiers()&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z' {
		return kt.SpecialKeys[tcell.KeyCtrlA+tcell.Key(r-'a')]
	}
	return kt.Runes[ev.Rune()]
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries bound to IntentNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]IntentType) {
	for k, v := range override {
		if v == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
