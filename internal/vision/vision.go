// Package vision computes which tiles are lit and which are in sight.
//
// Every mask is indexed by (row, col), i.e. (y, x), and sized to the map.
// Masks are built fresh for each render and never cached between turns.
package vision

import (
	"github.com/samdwyer/lamplight/internal/entity"
	"github.com/samdwyer/lamplight/internal/geom"
	"github.com/samdwyer/lamplight/internal/mask"
)

// Map is the view of a world that the vision computations need.
type Map interface {
	Width() int
	Height() int
	// Ambient reports whether the whole map is lit regardless of lights.
	Ambient() bool
	// Lights returns every registered light, lit or not.
	Lights() []*entity.Light
	// Opaque reports whether the tile at p blocks sight.
	Opaque(p geom.Point) bool
}

// Kind names a mask passed to an Observer.
type Kind string

const (
	KindLight   Kind = "light"
	KindLOS     Kind = "los"
	KindVisible Kind = "visible"
)

// Observer receives each mask as it is computed. Observers must not modify the mask.
type Observer func(kind Kind, m *mask.BitMask)

// Visible returns the tiles that are both lit and in sight of from.
func Visible(m Map, from geom.Point, observe Observer) (*mask.BitMask, error) {
	light := LightMask(m)
	notify(observe, KindLight, light)

	los := LOSMask(m, from)
	notify(observe, KindLOS, los)

	visible, err := light.And(los)
	if err != nil {
		return nil, err
	}
	notify(observe, KindVisible, visible)
	return visible, nil
}

func notify(observe Observer, kind Kind, m *mask.BitMask) {
	if observe != nil {
		observe(kind, m)
	}
}
