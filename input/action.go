// Package input maps terminal key events to game actions and samples them once per tick
package input

import "fmt"

// Action is a semantic key binding target
type Action uint8

const (
	ActionNone Action = iota

	// System
	ActionQuit
	ActionBack
	ActionToggleMute

	// Arcade
	ActionFire
	ActionAimLeft
	ActionAimRight
	ActionToggleAmmo
	ActionReplay

	actionCount
)

// actionNames maps canonical names used by the keys section of the config file
var actionNames = map[Action]string{
	ActionNone:       "none",
	ActionQuit:       "quit",
	ActionBack:       "back",
	ActionToggleMute: "toggle_mute",
	ActionFire:       "fire",
	ActionAimLeft:    "aim_left",
	ActionAimRight:   "aim_right",
	ActionToggleAmmo: "toggle_ammo",
	ActionReplay:     "replay",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", a)
}

// ParseAction resolves a canonical action name
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}
