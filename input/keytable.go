package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	Keys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
			tcell.KeyEscape: ActionBack,
			tcell.KeyCtrlS:  ActionToggleMute,
			tcell.KeyLeft:   ActionAimLeft,
			tcell.KeyRight:  ActionAimRight,
			tcell.KeyUp:     ActionToggleAmmo,
			tcell.KeyDown:   ActionToggleAmmo,
			tcell.KeyEnter:  ActionReplay,
		},
		Runes: map[rune]Action{
			' ': ActionFire,
			'h': ActionAimLeft,
			'a': ActionAimLeft,
			'l': ActionAimRight,
			'd': ActionAimRight,
			'k': ActionToggleAmmo,
			'j': ActionToggleAmmo,
			'r': ActionReplay,
			'm': ActionToggleMute,
			'q': ActionBack,
		},
	}
}

// Lookup resolves a key event, ActionNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// specialKeyNames covers the non-printable keys a config file may name
var specialKeyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
	"ctrl+s": tcell.KeyCtrlS,
}

// Rune aliases for keys that are awkward as bare YAML strings
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Bind attaches a key, given by name or as a single character, to an action
func (kt *KeyTable) Bind(key string, a Action) error {
	lower := strings.ToLower(key)
	if k, ok := specialKeyNames[lower]; ok {
		kt.Keys[k] = a
		return nil
	}
	if r, ok := runeAliases[lower]; ok {
		kt.Runes[r] = a
		return nil
	}
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		kt.Runes[r] = a
		return nil
	}
	return fmt.Errorf("unknown key %q", key)
}

// ApplyBindings overrides kt from an action-name to key-list map
// Binding a key to "none" removes it
func (kt *KeyTable) ApplyBindings(bindings map[string][]string) error {
	for name, keys := range bindings {
		a, err := ParseAction(name)
		if err != nil {
			return fmt.Errorf("keymap: %w", err)
		}
		for _, key := range keys {
			if err := kt.Bind(key, a); err != nil {
				return fmt.Errorf("keymap %s: %w", name, err)
			}
		}
	}
	kt.prune()
	return nil
}

func (kt *KeyTable) prune() {
	for k, a := range kt.Keys {
		if a == ActionNone {
			delete(kt.Keys, k)
		}
	}
	for r, a := range kt.Runes {
		if a == ActionNone {
			delete(kt.Runes, r)
		}
	}
}
