package collision

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/geogeo/pkg/shape"
)

const propertyIterations = 2000

type generator struct {
	rng *rand.Rand
}

func newGenerator(seed uint64) *generator {
	return &generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *generator) between(lo, hi float64) float64 { return lo + g.rng.Float64()*(hi-lo) }

func (g *generator) box() *shape.Box {
	return shape.BoxFromRect(g.between(-20, 20), g.between(-20, 20), g.between(0.5, 15), g.between(0.5, 15))
}

func (g *generator) circle() *shape.Circle {
	return shape.NewCircle(g.between(-20, 20), g.between(-20, 20), g.between(0.5, 10))
}

// convex returns a counter-clockwise polygon with vertices on a circle,
// built around the origin, rotated and then moved into place.
func (g *generator) convex() *shape.Polygon {
	n := 3 + g.rng.IntN(6)
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = (float64(i) + g.between(0.1, 0.9)) * 2 * math.Pi / float64(n)
	}
	radius := g.between(1, 10)
	pts := make([]shape.Point, n)
	for i, a := range angles {
		pts[i] = shape.Pt(radius*math.Cos(a), radius*math.Sin(a))
	}
	return g.place(shape.NewPolygon(pts, shape.WithCenter(shape.Pt(0, 0))))
}

// star returns a concave polygon alternating between an outer and an inner
// radius.
func (g *generator) star() *shape.Polygon {
	n := 4 + g.rng.IntN(5)
	outer := g.between(3, 10)
	inner := outer * g.between(0.2, 0.6)
	pts := make([]shape.Point, 0, 2*n)
	for i := 0; i < 2*n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i) * math.Pi / float64(n)
		pts = append(pts, shape.Pt(r*math.Cos(a), r*math.Sin(a)))
	}
	return g.place(shape.NewPolygon(pts, shape.WithCenter(shape.Pt(0, 0))))
}

func (g *generator) place(p *shape.Polygon) *shape.Polygon {
	p.SetRotation(g.between(-math.Pi, math.Pi))
	p.Shift(g.between(-15, 15), g.between(-15, 15))
	return p
}

func (g *generator) anyShape() shape.Shape {
	switch g.rng.IntN(4) {
	case 0:
		return g.box()
	case 1:
		return g.circle()
	case 2:
		return g.convex()
	default:
		return g.star()
	}
}

func TestIntersectsIsSymmetric(t *testing.T) {
	g := newGenerator(1)
	for i := 0; i < propertyIterations; i++ {
		a, b := g.anyShape(), g.anyShape()
		require.Equal(t, Intersects(a, b), Intersects(b, a), "iteration %d: %s vs %s", i, a.Kind(), b.Kind())
	}
}

func TestIntersectsImpliesBoundsOverlap(t *testing.T) {
	g := newGenerator(2)
	hits := 0
	for i := 0; i < propertyIterations; i++ {
		a, b := g.anyShape(), g.anyShape()
		if Intersects(a, b) {
			hits++
			require.True(t, a.BoundingBox().Overlaps(b.BoundingBox()), "iteration %d", i)
		}
	}
	require.Positive(t, hits)
}

func TestConvexSATMatchesBruteForce(t *testing.T) {
	g := newGenerator(3)
	hits := 0
	for i := 0; i < propertyIterations; i++ {
		a, b := g.convex(), g.convex()
		require.True(t, a.IsConvex())
		require.True(t, b.IsConvex())

		want := polygonPolygon(a, b, false)
		require.Equal(t, want, PolygonPolygon(a, b), "iteration %d", i)
		if want {
			hits++
		}
	}
	require.Positive(t, hits)
}

func TestConcaveHullPhaseDoesNotChangeAnswer(t *testing.T) {
	g := newGenerator(4)
	hits := 0
	for i := 0; i < propertyIterations; i++ {
		a, b := g.star(), g.star()
		require.False(t, a.IsConvex())

		want := polygonPolygon(a, b, false)
		require.Equal(t, want, PolygonPolygon(a, b), "iteration %d", i)
		if want {
			hits++
		}
	}
	require.Positive(t, hits)
}
