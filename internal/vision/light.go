package vision

import (
	"github.com/samdwyer/lamplight/internal/entity"
	"github.com/samdwyer/lamplight/internal/geom"
	"github.com/samdwyer/lamplight/internal/mask"
)

// LightMask returns the tiles illuminated on m. Under ambient lighting every
// tile is lit; otherwise a tile is lit if it lies within the radius of at
// least one lit light. Occlusion is not considered here.
func LightMask(m Map) *mask.BitMask {
	if m.Ambient() {
		return mask.New(m.Width(), m.Height(), true)
	}

	lit := mask.New(m.Width(), m.Height(), false)
	for _, l := range m.Lights() {
		if !l.Lit() {
			continue
		}
		// Sizes always match, so Or cannot fail.
		lit, _ = lit.Or(Disc(m.Width(), m.Height(), l))
	}
	return lit
}

// Disc returns the filled disc lit by l: every tile whose squared distance
// to the light is at most its radius squared. An unlit light lights nothing.
func Disc(width, height int, l *entity.Light) *mask.BitMask {
	disc := mask.New(width, height, false)
	if !l.Lit() {
		return disc
	}

	center := l.Position()
	r := l.Radius()
	limit := r * r
	for y := max(0, center.Y-r); y <= min(height-1, center.Y+r); y++ {
		for x := max(0, center.X-r); x <= min(width-1, center.X+r); x++ {
			if geom.DistanceSquared(center, geom.Pt(x, y)) <= limit {
				disc.Set(y, x, true)
			}
		}
	}
	return disc
}
