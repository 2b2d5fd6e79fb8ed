package shape

import (
	"cmp"
	"math"
	"slices"
)

// convexHull returns the closed convex hull of a closed loop.
//
// Loops of at most four points (a triangle or less) are returned verbatim.
// Larger loops go through a Graham scan around the lowest (then leftmost)
// vertex. When every distinct input vertex ends up on the hull, the hull is
// rotated to start at the loop's first vertex so that a convex loop given
// in counter-clockwise order compares equal to its hull.
func convexHull(loop []Point) []Point {
	if len(loop) <= 4 {
		return slices.Clone(loop)
	}

	pivot := loop[0]
	for _, v := range loop {
		if v.Y < pivot.Y || (v.Y == pivot.Y && v.X < pivot.X) {
			pivot = v
		}
	}

	type polar struct {
		p     Point
		angle float64
		dist2 float64
	}
	sorted := make([]polar, len(loop))
	for i, v := range loop {
		d := v.Sub(pivot)
		sorted[i] = polar{p: v, angle: math.Atan2(d.Y, d.X), dist2: d.Dot(d)}
	}
	slices.SortStableFunc(sorted, func(a, b polar) int {
		if c := cmp.Compare(a.angle, b.angle); c != 0 {
			return c
		}
		return cmp.Compare(a.dist2, b.dist2)
	})

	hull := make([]Point, 0, len(loop)+1)
	for _, s := range sorted {
		v := s.p
		if len(hull) >= 3 {
			for len(hull) >= 2 && Left(hull[len(hull)-2], hull[len(hull)-1], v) < 0 {
				hull = hull[:len(hull)-1]
			}
		}
		if len(hull) == 0 || hull[len(hull)-1] != v {
			hull = append(hull, v)
		}
	}

	if len(hull)+1 == len(loop) {
		if start := slices.Index(hull, loop[0]); start > 0 {
			rotated := make([]Point, 0, len(loop))
			rotated = append(rotated, hull[start:]...)
			hull = append(rotated, hull[:start]...)
		}
	}

	return append(hull, hull[0])
}

// hullNormals returns one unit normal per edge of a closed hull, flipped so
// that X is non-negative and deduplicated by exact value. Edges of zero
// length have no direction and contribute no normal.
func hullNormals(hull []Point) []Point {
	norms := make([]Point, 0, len(hull))
	for i := 0; i < len(hull)-1; i++ {
		v1, v2 := hull[i], hull[i+1]
		n := Point{X: v2.Y - v1.Y, Y: v1.X - v2.X}
		if n.X < 0 {
			n = Point{X: -n.X, Y: -n.Y}
		}
		mag := math.Sqrt(n.X*n.X + n.Y*n.Y)
		if mag == 0 {
			continue
		}
		n.X /= mag
		n.Y /= mag
		if !slices.Contains(norms, n) {
			norms = append(norms, n)
		}
	}
	return norms
}
