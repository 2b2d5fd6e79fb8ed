package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/geogeo/pkg/shape"
)

func poly(pts ...shape.Point) *shape.Polygon { return shape.NewPolygon(pts) }

func pt(x, y float64) shape.Point { return shape.Pt(x, y) }

func requireIntersects(t *testing.T, want bool, a, b shape.Shape, msgAndArgs ...any) {
	t.Helper()
	require.Equal(t, want, Intersects(a, b), msgAndArgs...)
	require.Equal(t, want, Intersects(b, a), msgAndArgs...)
}

func TestCircleCircle(t *testing.T) {
	origin := shape.NewCircle(0, 0, 5)
	cases := []struct {
		name string
		x    float64
		want bool
	}{
		{name: "overlapping", x: 8, want: true},
		{name: "touching", x: 10, want: true},
		{name: "apart", x: 11, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireIntersects(t, tc.want, origin, shape.NewCircle(tc.x, 0, 5))
		})
	}
}

func TestBoxBox(t *testing.T) {
	a := shape.NewBox(0, 10, 0, 10)
	requireIntersects(t, true, a, shape.NewBox(10, 20, 0, 10), "shared edge")
	requireIntersects(t, true, a, shape.NewBox(2, 3, 2, 3), "contained")
	requireIntersects(t, false, a, shape.NewBox(10.5, 20, 0, 10))
	requireIntersects(t, false, a, shape.BoxFromRect(0, 11, 10, 10))
}

func TestBoxCircle(t *testing.T) {
	box := shape.NewBox(0, 10, 0, 10)
	requireIntersects(t, true, box, shape.NewCircle(5, 5, 1), "center inside")
	requireIntersects(t, true, box, shape.NewCircle(12, 5, 2), "touching the right edge")
	requireIntersects(t, false, box, shape.NewCircle(12, 12, 2), "bounds overlap near the corner only")
	requireIntersects(t, true, box, shape.NewCircle(12, 12, 3))
	requireIntersects(t, false, box, shape.NewCircle(20, 20, 3))
}

func TestBoxPolygon(t *testing.T) {
	tri := poly(pt(0, 0), pt(10, 0), pt(0, 10))

	cases := []struct {
		name string
		box  *shape.Box
		want bool
	}{
		{name: "box inside polygon", box: shape.NewBox(1, 2, 1, 2), want: true},
		{name: "vertex inside box", box: shape.NewBox(-1, 1, -1, 1), want: true},
		{name: "hypotenuse crosses box", box: shape.NewBox(4, 7, 4, 7), want: true},
		{name: "bounds overlap but no contact", box: shape.NewBox(6, 9, 6, 9), want: false},
		{name: "disjoint bounds", box: shape.NewBox(11, 12, 0, 1), want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireIntersects(t, tc.want, tc.box, tri)
		})
	}

	t.Run("edge spans the box horizontally", func(t *testing.T) {
		bar := poly(pt(-5, 4), pt(15, 4), pt(15, 4.5), pt(-5, 4.5))
		requireIntersects(t, true, shape.NewBox(0, 10, 0, 10), bar)
	})

	t.Run("edge spans the box vertically", func(t *testing.T) {
		bar := poly(pt(4, -5), pt(4.5, -5), pt(4.5, 15), pt(4, 15))
		requireIntersects(t, true, shape.NewBox(0, 10, 0, 10), bar)
	})

	// The remaining polygons keep only diagonal edges (below->right,
	// right->above), so the answer comes from clipping.
	t.Run("diagonal edge clipped through the corner", func(t *testing.T) {
		tri := poly(pt(4, -5), pt(15, 6), pt(15, -5))
		requireIntersects(t, true, shape.NewBox(0, 10, 0, 10), tri)
	})

	t.Run("diagonal edge misses the corner", func(t *testing.T) {
		tri := poly(pt(8, -5), pt(15, 2), pt(15, -5))
		requireIntersects(t, false, shape.NewBox(0, 10, 0, 10), tri)
	})

	t.Run("missing edge before a crossing edge", func(t *testing.T) {
		notch := poly(pt(8, -5), pt(15, 2), pt(15, 5), pt(4, 15), pt(20, 15), pt(20, -5))
		requireIntersects(t, true, shape.NewBox(0, 10, 0, 10), notch)
	})
}

func TestBoxPolygonKeptEdgesReachTheBoxColumn(t *testing.T) {
	box := shape.NewBox(0, 10, 0, 10).BoundingBox()
	g := newGenerator(7)
	for i := 0; i < 2000; i++ {
		p := g.star()
		for j := 0; j+1 < p.NumVertices(); j++ {
			v1, v2 := p.Vertex(j), p.Vertex(j+1)
			if outcode(v1, box)&outcode(v2, box) != 0 {
				continue
			}
			require.LessOrEqual(t, min(v1.X, v2.X), box.Right)
			require.GreaterOrEqual(t, max(v1.X, v2.X), box.Left)
		}
	}
}

func TestCirclePolygon(t *testing.T) {
	tri := poly(pt(0, 0), pt(10, 0), pt(0, 10))

	requireIntersects(t, true, shape.NewCircle(2, 2, 0.5), tri, "center inside")
	requireIntersects(t, true, shape.NewCircle(-3, -3, 5), tri, "vertex within radius")
	requireIntersects(t, true, shape.NewCircle(8, 8, 4.5), tri, "edge within radius")
	requireIntersects(t, false, shape.NewCircle(8, 8, 2), tri, "bounds overlap but no contact")
	requireIntersects(t, false, shape.NewCircle(30, 30, 2), tri)
}

func TestPolygonPolygonConvex(t *testing.T) {
	a := poly(pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4))
	require.True(t, a.IsConvex())

	requireIntersects(t, true, a, poly(pt(3, 3), pt(7, 3), pt(7, 7), pt(3, 7)))
	requireIntersects(t, true, a, poly(pt(1, 1), pt(2, 1), pt(1, 2)), "contained triangle")
	requireIntersects(t, false, a, poly(pt(3, 5), pt(7, 5), pt(7, 9), pt(3, 9)))

	// Diagonal triangle whose bounds overlap the square but which is
	// separated along its hypotenuse normal.
	requireIntersects(t, false, a, poly(pt(5, 3.5), pt(3.5, 5), pt(5, 5)))
}

// concaveBars returns a horizontal and a vertical bar, each with a notch,
// that cross without any vertex of one lying inside the other.
func concaveBars() (*shape.Polygon, *shape.Polygon) {
	horizontal := poly(pt(0, 4), pt(10, 4), pt(10, 6), pt(3, 6), pt(2, 5.5), pt(1, 6), pt(0, 6))
	vertical := poly(pt(4, 0), pt(6, 0), pt(6, 1), pt(5.5, 2), pt(6, 3), pt(6, 10), pt(4, 10))
	return horizontal, vertical
}

func TestPolygonPolygonEdgeCrossingOnly(t *testing.T) {
	a, b := concaveBars()
	require.False(t, a.IsConvex())
	require.False(t, b.IsConvex())

	require.True(t, hullsOverlap(a, b))
	require.False(t, containsFirstVertex(a, b))
	require.True(t, edgesCross(a, b))

	requireIntersects(t, true, a, b)
	require.True(t, polygonPolygon(a, b, false), "same answer without the hull phases")
}

func TestPolygonPolygonConcave(t *testing.T) {
	outer := poly(pt(0, 0), pt(10, 0), pt(10, 2), pt(2, 2), pt(2, 10), pt(0, 10))

	t.Run("hulls overlap without contact", func(t *testing.T) {
		inner := poly(pt(3, 3), pt(11, 3), pt(11, 11), pt(3, 11))
		require.True(t, hullsOverlap(outer, inner))
		requireIntersects(t, false, outer, inner)
		require.False(t, polygonPolygon(outer, inner, false))
	})

	u := poly(pt(0, 0), pt(6, 0), pt(6, 6), pt(4, 6), pt(4, 2), pt(2, 2), pt(2, 6), pt(0, 6))

	t.Run("contained in the base", func(t *testing.T) {
		requireIntersects(t, true, u, poly(pt(2.5, 0.5), pt(3.5, 0.5), pt(3, 1.5)))
	})

	t.Run("inside the notch", func(t *testing.T) {
		requireIntersects(t, false, u, poly(pt(3, 3), pt(3.5, 3), pt(3.2, 4)))
	})
}

func TestPolygonPolygonAfterTransform(t *testing.T) {
	// Rotating about the origin keeps the hull normals true directions.
	a := poly(pt(-2, -0.5), pt(2, -0.5), pt(2, 0.5), pt(-2, 0.5))
	b := poly(pt(-2, -0.5), pt(2, -0.5), pt(2, 0.5), pt(-2, 0.5))
	b.SetRotation(1.2)
	b.Shift(0, 2.2)

	requireIntersects(t, true, a, b)

	b.Shift(0, 10)
	requireIntersects(t, false, a, b)
}

func TestIntersectsDispatchCoversAllKinds(t *testing.T) {
	shapes := []shape.Shape{
		shape.NewBox(0, 2, 0, 2),
		shape.NewCircle(1, 1, 1),
		poly(pt(0, 0), pt(2, 0), pt(1, 2)),
	}
	for _, a := range shapes {
		for _, b := range shapes {
			require.True(t, Intersects(a, b), "%s vs %s", a.Kind(), b.Kind())
		}
	}
}

func BenchmarkIntersects(b *testing.B) {
	box := shape.NewBox(0, 10, 0, 10)
	circle := shape.NewCircle(9, 9, 3)
	convex := poly(pt(5, 5), pt(12, 6), pt(11, 12), pt(6, 11))
	star := poly(pt(5, 0), pt(6.5, 3.5), pt(10, 4), pt(7, 6.5), pt(8, 10), pt(5, 8), pt(2, 10), pt(3, 6.5), pt(0, 4), pt(3.5, 3.5))
	star2 := poly(pt(5, 0), pt(6.5, 3.5), pt(10, 4), pt(7, 6.5), pt(8, 10), pt(5, 8), pt(2, 10), pt(3, 6.5), pt(0, 4), pt(3.5, 3.5))
	star2.Shift(6, 1)

	pairs := []struct {
		name string
		a, b shape.Shape
	}{
		{"box-box", box, shape.NewBox(5, 15, 5, 15)},
		{"box-circle", box, circle},
		{"circle-circle", circle, shape.NewCircle(12, 12, 2)},
		{"box-polygon", box, star2},
		{"circle-polygon", circle, star},
		{"convex-convex", convex, poly(pt(0, 0), pt(6, 0), pt(6, 6), pt(0, 6))},
		{"concave-concave", star, star2},
	}
	for _, p := range pairs {
		b.Run(p.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Intersects(p.a, p.b)
			}
		})
	}
}
