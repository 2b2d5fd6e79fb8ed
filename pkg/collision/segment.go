package collision

import "github.com/zeusync/geogeo/pkg/shape"

// ccw reports whether a, b, c make a strictly counter-clockwise turn.
func ccw(a, b, c shape.Point) bool {
	return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
}

// segmentsCross reports whether segment a1-a2 crosses segment b1-b2, that
// is, each segment's endpoints lie on opposite sides of the other.
func segmentsCross(a1, a2, b1, b2 shape.Point) bool {
	return ccw(a1, b1, b2) != ccw(a2, b1, b2) && ccw(a1, a2, b1) != ccw(a1, a2, b2)
}

// edgesCross tests every edge of a's vertex loop against every edge of b's.
func edgesCross(a, b *shape.Polygon) bool {
	for i := 0; i < a.NumVertices()-1; i++ {
		a1, a2 := a.Vertex(i), a.Vertex(i+1)
		for j := 0; j < b.NumVertices()-1; j++ {
			if segmentsCross(a1, a2, b.Vertex(j), b.Vertex(j+1)) {
				return true
			}
		}
	}
	return false
}
