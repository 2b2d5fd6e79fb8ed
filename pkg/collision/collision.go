// Package collision answers whether two shapes overlap.
//
// Intersects dispatches on the kinds of its two arguments through a fixed
// 3×3 table. Six tests are implemented; the three remaining cells swap their
// arguments into the mirror test, so Intersects(a, b) == Intersects(b, a)
// for every pair. Every test is a pure, bounded function of its inputs and
// never blocks. The worst case is O(n·m) for two concave polygons.
package collision

import "github.com/zeusync/geogeo/pkg/shape"

type pairTest func(a, b shape.Shape) bool

var dispatch = [shape.NumKinds][shape.NumKinds]pairTest{
	shape.KindBox: {
		shape.KindBox:     func(a, b shape.Shape) bool { return BoxBox(a.(*shape.Box), b.(*shape.Box)) },
		shape.KindCircle:  func(a, b shape.Shape) bool { return BoxCircle(a.(*shape.Box), b.(*shape.Circle)) },
		shape.KindPolygon: func(a, b shape.Shape) bool { return BoxPolygon(a.(*shape.Box), b.(*shape.Polygon)) },
	},
	shape.KindCircle: {
		shape.KindBox:     func(a, b shape.Shape) bool { return BoxCircle(b.(*shape.Box), a.(*shape.Circle)) },
		shape.KindCircle:  func(a, b shape.Shape) bool { return CircleCircle(a.(*shape.Circle), b.(*shape.Circle)) },
		shape.KindPolygon: func(a, b shape.Shape) bool { return CirclePolygon(a.(*shape.Circle), b.(*shape.Polygon)) },
	},
	shape.KindPolygon: {
		shape.KindBox:     func(a, b shape.Shape) bool { return BoxPolygon(b.(*shape.Box), a.(*shape.Polygon)) },
		shape.KindCircle:  func(a, b shape.Shape) bool { return CirclePolygon(b.(*shape.Circle), a.(*shape.Polygon)) },
		shape.KindPolygon: func(a, b shape.Shape) bool { return PolygonPolygon(a.(*shape.Polygon), b.(*shape.Polygon)) },
	},
}

// Intersects reports whether a and b overlap. Touching boundaries count as
// an overlap for boxes and circles.
func Intersects(a, b shape.Shape) bool {
	return dispatch[a.Kind()][b.Kind()](a, b)
}

// BoxBox is the plain bounding box overlap test.
func BoxBox(a, b *shape.Box) bool {
	return a.BoundingBox().Overlaps(b.BoundingBox())
}

// BoxCircle clamps the circle's center onto the box and compares the
// squared distance to the clamped point against the squared radius.
func BoxCircle(a *shape.Box, b *shape.Circle) bool {
	ab := a.BoundingBox()
	if !ab.Overlaps(b.BoundingBox()) {
		return false
	}
	dx := b.X() - clamp(b.X(), ab.Left, ab.Right)
	dy := b.Y() - clamp(b.Y(), ab.Bottom, ab.Top)
	return dx*dx+dy*dy <= b.R2()
}

// CircleCircle skips the bounding box pre-test; the distance check alone is
// already as cheap.
func CircleCircle(a, b *shape.Circle) bool {
	dx := a.X() - b.X()
	dy := a.Y() - b.Y()
	rr := a.R() + b.R()
	return dx*dx+dy*dy <= rr*rr
}

// CirclePolygon accepts when the circle's center is inside the polygon or
// when any edge of the vertex loop comes within the radius of the center.
func CirclePolygon(a *shape.Circle, b *shape.Polygon) bool {
	if !a.BoundingBox().Overlaps(b.BoundingBox()) {
		return false
	}
	if b.PointInside(a.X(), a.Y()) {
		return true
	}

	c := a.Center()
	r2 := a.R2()
	for i := 0; i < b.NumVertices()-1; i++ {
		p1, p2 := b.Vertex(i), b.Vertex(i+1)
		ac := c.Sub(p1)
		if ac.Dot(ac) <= r2 {
			return true
		}
		ab := p2.Sub(p1)
		len2 := ab.Dot(ab)
		if len2 == 0 {
			continue
		}
		t := clamp(ac.Dot(ab)/len2, 0, 1)
		dx := ab.X*t + p1.X - c.X
		dy := ab.Y*t + p1.Y - c.Y
		if dx*dx+dy*dy <= r2 {
			return true
		}
	}
	return false
}

// PolygonPolygon runs the separating axis test on both hulls, then, for
// non-convex inputs, a first-vertex containment check and finally an
// exhaustive edge crossing search.
func PolygonPolygon(a, b *shape.Polygon) bool {
	return polygonPolygon(a, b, true)
}

// polygonPolygon with useHulls unset skips the hull phases and decides on
// containment and edge crossings alone.
func polygonPolygon(a, b *shape.Polygon, useHulls bool) bool {
	if !a.BoundingBox().Overlaps(b.BoundingBox()) {
		return false
	}
	if useHulls {
		if !hullsOverlap(a, b) {
			return false
		}
		if a.IsConvex() && b.IsConvex() {
			return true
		}
	}
	if containsFirstVertex(a, b) {
		return true
	}
	return edgesCross(a, b)
}

func containsFirstVertex(a, b *shape.Polygon) bool {
	bv, av := b.Vertex(0), a.Vertex(0)
	return a.PointInside(bv.X, bv.Y) || b.PointInside(av.X, av.Y)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
