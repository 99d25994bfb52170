package world

import (
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/lamplight/internal/entity"
	"github.com/samdwyer/lamplight/internal/geom"
)

// Direction is one of the eight compass moves.
type Direction int

const (
	DirLeft Direction = iota
	DirDown
	DirUp
	DirRight
	DirUpLeft
	DirUpRight
	DirDownLeft
	DirDownRight
)

// Delta returns the unit step for a direction. Y grows downward.
func (d Direction) Delta() geom.Point {
	switch d {
	case DirLeft:
		return geom.Pt(-1, 0)
	case DirDown:
		return geom.Pt(0, 1)
	case DirUp:
		return geom.Pt(0, -1)
	case DirRight:
		return geom.Pt(1, 0)
	case DirUpLeft:
		return geom.Pt(-1, -1)
	case DirUpRight:
		return geom.Pt(1, -1)
	case DirDownLeft:
		return geom.Pt(-1, 1)
	case DirDownRight:
		return geom.Pt(1, 1)
	default:
		return geom.Pt(0, 0)
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirUpLeft:
		return "up_left"
	case DirUpRight:
		return "up_right"
	case DirDownLeft:
		return "down_left"
	case DirDownRight:
		return "down_right"
	default:
		return "unknown"
	}
}

// Outcome is the result of a player control.
type Outcome int

const (
	// OutcomeMoved - the player moved
	OutcomeMoved Outcome = iota
	// OutcomeBlocked - an obstacle was in the way
	OutcomeBlocked
	// OutcomeLampWrecked - the obstacle was a lamp, which is now unlit
	OutcomeLampWrecked
	// OutcomeIgnored - the move would leave the map, or there is no player
	OutcomeIgnored
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeLampWrecked:
		return "lamp_wrecked"
	case OutcomeIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Message returns the text shown to the player, or "" if there is none.
func (o Outcome) Message() string {
	switch o {
	case OutcomeBlocked:
		return "Ouch!"
	case OutcomeLampWrecked:
		return "Ouch! You wreck the lamp! It gets dark."
	default:
		return ""
	}
}

// MoveEntity moves e to (x, y). It returns false and changes nothing if the
// destination is off the map or holds an obstacle.
func (w *World) MoveEntity(e *entity.Entity, x, y int) bool {
	dest := w.Tile(x, y)
	if dest == nil || !dest.IsPassable() {
		return false
	}
	if src := w.Tile(e.X, e.Y); src != nil {
		src.remove(e)
	}
	dest.add(e)
	return true
}

// HandleControl moves the player one step in dir. Bumping into a lamp
// wrecks it, turning its light off for good.
func (w *World) HandleControl(dir Direction) Outcome {
	if w.player == nil {
		return OutcomeIgnored
	}

	dest := w.player.Position().Add(dir.Delta())
	if !w.InBounds(dest.X, dest.Y) {
		return OutcomeIgnored
	}

	if w.MoveEntity(w.player, dest.X, dest.Y) {
		return OutcomeMoved
	}

	lamp := w.Tile(dest.X, dest.Y).Find(entity.KindLamp)
	if lamp == nil || lamp.Light == nil {
		return OutcomeBlocked
	}

	lamp.Light.SetLit(false)
	w.log.WithFields(logrus.Fields{
		"x": dest.X,
		"y": dest.Y,
	}).Info("Lamp wrecked.")
	return OutcomeLampWrecked
}
