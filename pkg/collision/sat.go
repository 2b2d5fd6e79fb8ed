package collision

import (
	"math"

	"github.com/zeusync/geogeo/pkg/shape"
)

// hullsOverlap runs the separating axis test using the hull normals of both
// polygons as candidate axes. Concave polygons can only intersect when
// their hulls do.
func hullsOverlap(a, b *shape.Polygon) bool {
	return noSeparatingAxis(a, a, b) && noSeparatingAxis(b, a, b)
}

// noSeparatingAxis projects both hulls onto every hull normal of axes.
func noSeparatingAxis(axes, a, b *shape.Polygon) bool {
	for i := 0; i < axes.NumHullNormals(); i++ {
		axis := axes.HullNormal(i)
		aMin, aMax := projectHull(axis, a)
		bMin, bMax := projectHull(axis, b)
		if aMin > bMax || bMin > aMax {
			return false
		}
	}
	return true
}

func projectHull(axis shape.Point, p *shape.Polygon) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := 0; i < p.NumHullVertices(); i++ {
		d := axis.Dot(p.HullVertex(i))
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}
