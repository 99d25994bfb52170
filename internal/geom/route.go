package geom

import "math"

// quadrantSteps maps floor(atan2(dy, dx) / (π/2)) to the two unit steps a
// route in that quadrant may take.
var quadrantSteps = map[int][2]Point{
	0:  {{1, 0}, {0, 1}},
	1:  {{-1, 0}, {0, 1}},
	-2: {{-1, 0}, {0, -1}},
	-1: {{1, 0}, {0, -1}},
}

// TilesOnRoute returns the grid cells on the way from p1 to p2, excluding p1
// and including p2.
//
// Axis-aligned routes are straight runs. Otherwise the walk greedily takes
// whichever of the two quadrant steps lands closer to the ideal line; when
// both land equally close it takes both at once, a diagonal step.
func TilesOnRoute(p1, p2 Point) []Point {
	var route []Point
	if p1.X == p2.X || p1.Y == p2.Y {
		route = straightRun(p1, p2)
	} else {
		route = walk(p1, p2)
	}

	// p1 is excluded by construction; enforce it anyway.
	out := route[:0]
	for _, p := range route {
		if p != p1 {
			out = append(out, p)
		}
	}
	return out
}

func straightRun(p1, p2 Point) []Point {
	step := Point{X: sign(p2.X - p1.X), Y: sign(p2.Y - p1.Y)}
	route := make([]Point, 0, Chebyshev(p1, p2))
	for cur := p1; cur != p2; {
		cur = cur.Add(step)
		route = append(route, cur)
	}
	return route
}

func walk(p1, p2 Point) []Point {
	d := p2.Sub(p1)
	quadrant := int(math.Floor(math.Atan2(float64(d.Y), float64(d.X)) / (math.Pi / 2)))
	steps := quadrantSteps[quadrant]

	route := make([]Point, 0, Manhattan(p1, p2))
	cur := p1
	for cur != p2 {
		a := cur.Add(steps[0])
		b := cur.Add(steps[1])
		// Both scores share a denominator and have integer numerators, so
		// equal deviations compare equal exactly.
		da := DistanceFromLine(p1, p2, a)
		db := DistanceFromLine(p1, p2, b)
		switch {
		case da < db:
			cur = a
		case db < da:
			cur = b
		default:
			cur = cur.Add(steps[0]).Add(steps[1])
		}
		route = append(route, cur)
	}
	return route
}
