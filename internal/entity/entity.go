// Package entity provides the features that occupy map tiles: the player,
// trees and lamps, and the lights they carry.
package entity

import (
	"fmt"

	"github.com/samdwyer/lamplight/internal/gamedata"
	"github.com/samdwyer/lamplight/internal/geom"
)

// Kind identifies an entity variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindTree
	KindLamp
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindTree:
		return "Tree"
	case KindLamp:
		return "Lamp"
	default:
		return "Unknown"
	}
}

// ID returns the kind identifier for data lookup.
func (k Kind) ID() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindTree:
		return "tree"
	case KindLamp:
		return "lamp"
	default:
		return "unknown"
	}
}

// Symbol returns the default display symbol for a kind.
func (k Kind) Symbol() rune {
	switch k {
	case KindPlayer:
		return '@'
	case KindTree:
		return '#'
	case KindLamp:
		return '¤'
	default:
		return '?'
	}
}

// Layers returns the fixed layer contribution of a kind.
func (k Kind) Layers() Layer {
	switch k {
	case KindTree, KindLamp:
		return LayerObstacle
	default:
		return LayerNone
	}
}

// KindFromID maps a data identifier back to a kind.
func KindFromID(id string) (Kind, error) {
	for _, k := range []Kind{KindPlayer, KindTree, KindLamp} {
		if k.ID() == id {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown entity kind %q", id)
}

// Entity is an occupant of a tile.
type Entity struct {
	Kind   Kind   // Variant
	X, Y   int    // Position of the owning tile
	Symbol rune   // Display symbol (defaults to kind symbol)
	Light  *Light // Carried light, nil if none
}

// New creates an entity of the given kind with its default symbol and light:
// players carry a lit radius-1 light, lamps a lit radius-7 light.
func New(kind Kind) *Entity {
	e := &Entity{
		Kind:   kind,
		Symbol: kind.Symbol(),
	}
	switch kind {
	case KindPlayer:
		NewLight(e, 1, true)
	case KindLamp:
		NewLight(e, 7, true)
	}
	return e
}

// NewPlayer creates a player.
func NewPlayer() *Entity { return New(KindPlayer) }

// NewTree creates a tree.
func NewTree() *Entity { return New(KindTree) }

// NewLamp creates a lamp.
func NewLamp() *Entity { return New(KindLamp) }

// NewFromDef creates an entity from a data-driven definition.
func NewFromDef(def *gamedata.FeatureDef) (*Entity, error) {
	kind, err := KindFromID(def.ID)
	if err != nil {
		return nil, err
	}
	e := &Entity{
		Kind:   kind,
		Symbol: def.GlyphRune(),
	}
	if def.HasLight() {
		NewLight(e, def.LightRadius, def.Lit)
	}
	return e, nil
}

// Layers returns the entity's layer contribution.
func (e *Entity) Layers() Layer {
	return e.Kind.Layers()
}

// Is reports whether the entity is of the given kind.
func (e *Entity) Is(kind Kind) bool {
	return e.Kind == kind
}

// SetPosition updates the entity's position.
func (e *Entity) SetPosition(x, y int) {
	e.X = x
	e.Y = y
}

// Position returns the current coordinates.
func (e *Entity) Position() geom.Point {
	return geom.Pt(e.X, e.Y)
}

// String returns the kind and position, e.g. "Lamp(4,7)".
func (e *Entity) String() string {
	return e.Kind.String() + e.Position().String()
}
