// Package shape defines the 2D shapes understood by the collision engine:
// axis-aligned boxes, circles and (possibly concave or self-intersecting)
// polygons. Every shape carries an axis-aligned bounding box that is kept in
// sync under translation and rotation.
//
// Shapes are mutable values owned by a single holder. Callers that share a
// shape between goroutines must serialize Shift, SetCenter and SetRotation
// themselves; concurrent reads are safe while no mutation is in flight.
//
// Non-finite coordinates (NaN, ±Inf) are not guarded against and produce
// undefined results.
package shape

import "fmt"

// Kind identifies which shape variant a Shape is.
type Kind uint8

const (
	KindBox Kind = iota
	KindCircle
	KindPolygon

	// NumKinds is the number of shape variants.
	NumKinds = 3
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindCircle:
		return "circle"
	case KindPolygon:
		return "polygon"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Shape is the closed set of shapes {*Box, *Circle, *Polygon}.
type Shape interface {
	// Kind returns the variant tag used for intersection dispatch.
	Kind() Kind
	// BoundingBox returns the current axis-aligned bounding box.
	BoundingBox() Bounds
	// PointInside reports whether (x, y) lies inside the shape.
	PointInside(x, y float64) bool
	// Shift translates the shape by (dx, dy).
	Shift(dx, dy float64)

	sealed()
}

// Point is a 2D position or direction.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Left returns the cross product (b-a) × (c-a). It is positive when c lies
// to the left of the directed line a→b, negative when it lies to the right
// and zero when the three points are collinear.
func Left(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}
