package collision

import (
	"math"
	"slices"

	"github.com/zeusync/geogeo/pkg/generic"
	"github.com/zeusync/geogeo/pkg/shape"
)

// Outcode bits, one per half-plane outside the box.
const (
	outLeft  uint8 = 1 << iota // x < left
	outRight                   // x > right
	outBelow                   // y < bottom
	outAbove                   // y > top

	spanX = outLeft | outRight
	spanY = outBelow | outAbove
)

// verticalEpsilon is the |dx| below which an edge is treated as vertical.
const verticalEpsilon = 1e-7

func outcode(v shape.Point, box shape.Bounds) uint8 {
	var code uint8
	if v.X < box.Left {
		code |= outLeft
	} else if v.X > box.Right {
		code |= outRight
	}
	if v.Y < box.Bottom {
		code |= outBelow
	} else if v.Y > box.Top {
		code |= outAbove
	}
	return code
}

type codedEdge struct {
	p1, p2       shape.Point
	code1, code2 uint8
}

type clipScratch struct {
	codes []uint8
	edges []codedEdge
}

var clipScratchPool = generic.NewResettingPool(
	func() *clipScratch { return &clipScratch{} },
	func(s *clipScratch) {
		s.codes = s.codes[:0]
		s.edges = s.edges[:0]
	},
)

// BoxPolygon is line clipping against a rectangle applied to every edge of
// the polygon: the shapes overlap when the box's top-left corner is inside
// the polygon, a vertex is inside the box, or some edge passes through the
// box.
func BoxPolygon(a *shape.Box, b *shape.Polygon) bool {
	box := a.BoundingBox()
	if !box.Overlaps(b.BoundingBox()) {
		return false
	}
	if b.PointInside(box.Left, box.Top) {
		return true
	}

	scratch := clipScratchPool.Get()
	defer clipScratchPool.Put(scratch)

	n := b.NumVertices()
	scratch.codes = slices.Grow(scratch.codes, n)
	for i := 0; i < n; i++ {
		code := outcode(b.Vertex(i), box)
		if code == 0 {
			return true
		}
		scratch.codes = append(scratch.codes, code)
	}

	// Edges whose endpoints are outside the same side can never reach the box.
	codes := scratch.codes
	for i := 0; i < n-1; i++ {
		if codes[i]&codes[i+1] == 0 {
			scratch.edges = append(scratch.edges, codedEdge{p1: b.Vertex(i), p2: b.Vertex(i + 1), code1: codes[i], code2: codes[i+1]})
		}
	}
	edges := scratch.edges

	for _, e := range edges {
		if span := e.code1 | e.code2; span == spanX || span == spanY {
			return true
		}
	}

	for _, e := range edges {
		xMin, xMax := math.Min(e.p1.X, e.p2.X), math.Max(e.p1.X, e.p2.X)
		xMin, xMax = math.Max(xMin, box.Left), math.Min(xMax, box.Right)
		// Kept edges never share a left or right bit, so this only fires
		// for a box with Left > Right.
		if xMin > xMax {
			return false
		}

		yMin, yMax := e.p1.Y, e.p2.Y
		if dx := e.p2.X - e.p1.X; math.Abs(dx) > verticalEpsilon {
			slope := (e.p2.Y - e.p1.Y) / dx
			intercept := e.p1.Y - slope*e.p1.X
			yMin = slope*xMin + intercept
			yMax = slope*xMax + intercept
		}
		if yMin > yMax {
			yMin, yMax = yMax, yMin
		}
		yMin, yMax = math.Max(yMin, box.Bottom), math.Min(yMax, box.Top)
		if yMin <= yMax {
			return true
		}
	}
	return false
}
