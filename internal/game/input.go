package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/lamplight/internal/world"
)

// Action is what a key press asks the game to do.
type Action int

const (
	// ActionNone - the key is not bound
	ActionNone Action = iota
	// ActionMove - move the player in the accompanying direction
	ActionMove
	// ActionToggleAmbient - switch ambient lighting on or off
	ActionToggleAmbient
	// ActionQuit - leave the game
	ActionQuit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMove:
		return "move"
	case ActionToggleAmbient:
		return "toggle_ambient"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

var runeDirections = map[rune]world.Direction{
	'h': world.DirLeft,
	'j': world.DirDown,
	'k': world.DirUp,
	'l': world.DirRight,
	'y': world.DirUpLeft,
	'u': world.DirUpRight,
	'b': world.DirDownLeft,
	'n': world.DirDownRight,
}

var keyDirections = map[tcell.Key]world.Direction{
	tcell.KeyLeft:  world.DirLeft,
	tcell.KeyDown:  world.DirDown,
	tcell.KeyUp:    world.DirUp,
	tcell.KeyRight: world.DirRight,
}

// MapKey translates a key event. The direction is only meaningful for ActionMove.
func MapKey(ev *tcell.EventKey) (Action, world.Direction) {
	return mapKey(ev.Key(), ev.Rune())
}

func mapKey(key tcell.Key, r rune) (Action, world.Direction) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyRune:
		if dir, ok := runeDirections[r]; ok {
			return ActionMove, dir
		}
		switch r {
		case 'q', 'Q':
			return ActionQuit, 0
		case 'a':
			return ActionToggleAmbient, 0
		}
		return ActionNone, 0
	}

	if dir, ok := keyDirections[key]; ok {
		return ActionMove, dir
	}
	return ActionNone, 0
}
