package entity

import "github.com/samdwyer/lamplight/internal/geom"

// Light is a light source carried by exactly one entity.
type Light struct {
	owner  *Entity
	radius int
	lit    bool
}

// NewLight attaches a light to owner and returns it.
func NewLight(owner *Entity, radius int, lit bool) *Light {
	l := &Light{owner: owner, radius: radius, lit: lit}
	owner.Light = l
	return l
}

// Owner returns the entity carrying the light.
func (l *Light) Owner() *Entity { return l.owner }

// Position returns the owner's current position.
func (l *Light) Position() geom.Point { return l.owner.Position() }

// Radius returns the light's range in tiles.
func (l *Light) Radius() int { return l.radius }

// Lit reports whether the light is on.
func (l *Light) Lit() bool { return l.lit }

// SetLit turns the light on or off.
func (l *Light) SetLit(lit bool) { l.lit = lit }
