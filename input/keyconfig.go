package input

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keymapFile is the standalone keymap document layout
type keymapFile struct {
	Runes   map[string]string `toml:"runes"`
	Special map[string]string `toml:"special"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keymapFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	return ParseKeyBindings(f.Runes, f.Special)
}

// ParseKeyBindings resolves rune and special key bindings to a sparse override KeyTable
// Returns error on unknown action names or invalid key names
func ParseKeyBindings(runes, special map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType, len(special)),
		Runes:       make(map[rune]IntentType, len(runes)),
	}

	for keyStr, action := range runes {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
		}
		intent, err := resolveAction(action)
		if err != nil {
			return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
		}
		kt.Runes[r] = intent
	}

	for keyStr, action := range special {
		k, ok := KeyByName(strings.ToLower(keyStr))
		if !ok {
			return nil, fmt.Errorf("[special] unknown key name: %q", keyStr)
		}
		intent, err := resolveAction(action)
		if err != nil {
			return nil, fmt.Errorf("[special] key %q: %w", keyStr, err)
		}
		kt.SpecialKeys[k] = intent
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to an intent
func resolveAction(name string) (IntentType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	intent, ok := ActionIntent(name)
	if !ok {
		return IntentNone, fmt.Errorf("unknown action: %q", name)
	}
	return intent, nil
}
