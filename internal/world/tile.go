// Package world provides the tile grid, its occupants and movement rules.
package world

import "github.com/samdwyer/lamplight/internal/entity"

// FloorSymbol is the default glyph for a tile with no features.
const FloorSymbol = '.'

// Tile is a single map cell holding a stack of features. The last feature
// added is on top and is the one drawn.
type Tile struct {
	X, Y     int
	features []*entity.Entity
}

// Features returns the tile's features from bottom to top.
func (t *Tile) Features() []*entity.Entity {
	return t.features
}

// IsEmpty returns true if nothing occupies the tile.
func (t *Tile) IsEmpty() bool {
	return len(t.features) == 0
}

// Top returns the topmost feature, or nil.
func (t *Tile) Top() *entity.Entity {
	if len(t.features) == 0 {
		return nil
	}
	return t.features[len(t.features)-1]
}

// Find returns the first feature of the given kind, or nil.
func (t *Tile) Find(kind entity.Kind) *entity.Entity {
	for _, e := range t.features {
		if e.Is(kind) {
			return e
		}
	}
	return nil
}

// Has returns true if a feature of the given kind occupies the tile.
func (t *Tile) Has(kind entity.Kind) bool {
	return t.Find(kind) != nil
}

// Layers returns the union of the features' layers.
func (t *Tile) Layers() entity.Layer {
	var l entity.Layer
	for _, e := range t.features {
		l |= e.Layers()
	}
	return l
}

// IsPassable returns true if the tile can be walked onto.
func (t *Tile) IsPassable() bool {
	return !t.Layers().Has(entity.LayerObstacle)
}

// Symbol returns the top feature's symbol, or floor when empty.
func (t *Tile) Symbol(floor rune) rune {
	if top := t.Top(); top != nil {
		return top.Symbol
	}
	return floor
}

// add stacks e on top and moves it to this tile's coordinates.
func (t *Tile) add(e *entity.Entity) {
	e.SetPosition(t.X, t.Y)
	t.features = append(t.features, e)
}

// remove takes e off the tile, reporting whether it was there.
func (t *Tile) remove(e *entity.Entity) bool {
	for i, f := range t.features {
		if f == e {
			t.features = append(t.features[:i], t.features[i+1:]...)
			return true
		}
	}
	return false
}
