package shape

import "slices"

var _ Shape = (*Polygon)(nil)

// Polygon is a closed vertex loop together with its convex hull and the
// outward unit normals of the hull's edges. The loop may be concave or
// self-intersecting; containment uses the non-zero winding rule.
type Polygon struct {
	verts     []Point
	hullVerts []Point
	hullNorms []Point
	convex    bool
	center    Point
	theta     float64
	bounds    Bounds
}

// PolygonOption configures a polygon at construction time.
type PolygonOption func(*polygonConfig)

type polygonConfig struct {
	center    Point
	hasCenter bool
	theta     float64
}

// WithCenter sets the rotation center. By default the center of the
// bounding box is used.
func WithCenter(center Point) PolygonOption {
	return func(c *polygonConfig) {
		c.center = center
		c.hasCenter = true
	}
}

// WithTheta records the polygon's initial absolute angle in radians. The
// vertices are taken as given; only later SetRotation calls are relative to
// this angle.
func WithTheta(theta float64) PolygonOption {
	return func(c *polygonConfig) { c.theta = theta }
}

// NewPolygon builds a polygon from an ordered vertex loop. The loop may be
// open or closed; an open loop is closed by repeating its first vertex.
// Fewer than three distinct vertices yield a degenerate but usable polygon.
//
// NewPolygon panics if verts is empty.
func NewPolygon(verts []Point, opts ...PolygonOption) *Polygon {
	if len(verts) == 0 {
		panic("shape: NewPolygon called with no vertices")
	}

	var cfg polygonConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	loop := make([]Point, len(verts), len(verts)+1)
	copy(loop, verts)
	if loop[0] != loop[len(loop)-1] {
		loop = append(loop, loop[0])
	}

	p := &Polygon{verts: loop, theta: cfg.theta}
	p.hullVerts = convexHull(loop)
	p.hullNorms = hullNormals(p.hullVerts)
	p.convex = slices.Equal(p.verts, p.hullVerts)
	p.bounds = boundsOf(loop)
	if cfg.hasCenter {
		p.center = cfg.center
	} else {
		p.center = p.bounds.Center()
	}

	return p
}

func (p *Polygon) Kind() Kind { return KindPolygon }

func (p *Polygon) BoundingBox() Bounds { return p.bounds }

// IsConvex reports whether the vertex loop equals its own hull. It is fixed
// at construction and does not change under transforms.
func (p *Polygon) IsConvex() bool { return p.convex }

// Theta returns the current absolute rotation in radians.
func (p *Polygon) Theta() float64 { return p.theta }

// Center returns the rotation center.
func (p *Polygon) Center() Point { return p.center }

// Vertices returns a copy of the closed vertex loop.
func (p *Polygon) Vertices() []Point { return slices.Clone(p.verts) }

// HullVertices returns a copy of the closed convex hull loop.
func (p *Polygon) HullVertices() []Point { return slices.Clone(p.hullVerts) }

// HullNormals returns a copy of the deduplicated hull edge normals.
func (p *Polygon) HullNormals() []Point { return slices.Clone(p.hullNorms) }

// NumVertices returns the length of the closed loop, including the repeated
// first vertex.
func (p *Polygon) NumVertices() int { return len(p.verts) }

// Vertex returns the i-th vertex of the closed loop.
func (p *Polygon) Vertex(i int) Point { return p.verts[i] }

func (p *Polygon) NumHullVertices() int { return len(p.hullVerts) }

func (p *Polygon) HullVertex(i int) Point { return p.hullVerts[i] }

func (p *Polygon) NumHullNormals() int { return len(p.hullNorms) }

func (p *Polygon) HullNormal(i int) Point { return p.hullNorms[i] }

// PointInside reports whether (x, y) has a non-zero winding number with
// respect to the vertex loop. Points on or outside the bounding box edge are
// rejected without walking the loop.
func (p *Polygon) PointInside(x, y float64) bool {
	b := p.bounds
	if !(b.Left < x && x < b.Right && b.Bottom < y && y < b.Top) {
		return false
	}
	return p.windingNumber(Point{X: x, Y: y}) != 0
}

func (p *Polygon) windingNumber(q Point) int {
	wn := 0
	for i := 0; i < len(p.verts)-1; i++ {
		a, b := p.verts[i], p.verts[i+1]
		if a.Y <= q.Y {
			if b.Y > q.Y && Left(a, b, q) > 0 {
				wn++
			}
		} else if b.Y <= q.Y && Left(a, b, q) < 0 {
			wn--
		}
	}
	return wn
}

func (p *Polygon) sealed() {}
