package vision

import (
	"github.com/samdwyer/lamplight/internal/geom"
	"github.com/samdwyer/lamplight/internal/mask"
)

// LOSMask returns the tiles in sight of from.
//
// One ray is walked to every tile not already resolved by an earlier ray.
// Tiles along the ray are visible up to and including the first opaque
// tile; everything past it on that ray is hidden. A cell keeps the first
// value any ray gives it.
func LOSMask(m Map, from geom.Point) *mask.BitMask {
	w, h := m.Width(), m.Height()
	los := mask.Empty(w, h)
	if from.X >= 0 && from.X < w && from.Y >= 0 && from.Y < h {
		los.Set(from.Y, from.X, true)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if los.Resolved(y, x) {
				continue
			}
			castRay(m, los, from, geom.Pt(x, y))
		}
	}
	return los
}

func castRay(m Map, los *mask.BitMask, from, to geom.Point) {
	route := geom.TilesOnRoute(from, to)
	for i, p := range route {
		if !los.Resolved(p.Y, p.X) {
			los.Set(p.Y, p.X, true)
		}
		if m.Opaque(p) {
			for _, hidden := range route[i+1:] {
				if !los.Resolved(hidden.Y, hidden.X) {
					los.Set(hidden.Y, hidden.X, false)
				}
			}
			return
		}
	}
}
