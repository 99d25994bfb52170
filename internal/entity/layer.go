package entity

import "strings"

// Layer is a set of traversal and occlusion flags. A tile's layers are the
// union of its entities' layers.
type Layer uint8

const (
	LayerNone  Layer = 0
	LayerFloor    Layer = 1 << (iota - 1)
	LayerObstacle
	LayerWater
	LayerAerial
)

// Has reports whether every flag in other is set in l.
func (l Layer) Has(other Layer) bool {
	return l&other == other
}

// String returns the set flags joined with "|", or "none".
func (l Layer) String() string {
	if l == LayerNone {
		return "none"
	}
	var names []string
	for _, f := range []struct {
		flag Layer
		name string
	}{
		{LayerFloor, "floor"},
		{LayerObstacle, "obstacle"},
		{LayerWater, "water"},
		{LayerAerial, "aerial"},
	} {
		if l&f.flag != 0 {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, "|")
}
