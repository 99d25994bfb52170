// Package geom provides integer grid geometry: points, distances and the
// line walker used for line-of-sight rays.
package geom

import (
	"fmt"
	"math"
)

// Point is an integer grid coordinate. Y grows downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the Euclidean length of p treated as a vector.
func (p Point) Length() float64 {
	return math.Sqrt(float64(p.X*p.X + p.Y*p.Y))
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Sqrt(float64(DistanceSquared(a, b)))
}

// DistanceSquared returns the squared Euclidean distance between a and b.
// Radius checks use this so they stay in exact integer arithmetic.
func DistanceSquared(a, b Point) int {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// Cross returns the scalar cross product of two vectors.
func Cross(v1, v2 Point) int {
	return v1.X*v2.Y - v2.X*v1.Y
}

// DistanceFromLine returns the perpendicular distance of p from the infinite
// line through d1 and d2. If d1 == d2 it is the distance from d1.
func DistanceFromLine(d1, d2, p Point) float64 {
	if d1 == d2 {
		return Distance(d1, p)
	}
	return math.Abs(float64(Cross(d2.Sub(d1), d1.Sub(p)))) / d2.Sub(d1).Length()
}

// Chebyshev returns the king-move distance between a and b.
func Chebyshev(a, b Point) int {
	return max(abs(b.X-a.X), abs(b.Y-a.Y))
}

// Manhattan returns the taxicab distance between a and b.
func Manhattan(a, b Point) int {
	return abs(b.X-a.X) + abs(b.Y-a.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
