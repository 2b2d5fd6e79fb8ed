package shape

var _ Shape = (*Circle)(nil)

// Circle is a disc with center (x, y) and radius r. A radius of zero or less
// is accepted; such a circle behaves as a point for intersection purposes.
type Circle struct {
	x, y   float64
	r, r2  float64
	bounds Bounds
}

// NewCircle creates a circle centered at (x, y) with radius r.
func NewCircle(x, y, r float64) *Circle {
	return &Circle{
		x:      x,
		y:      y,
		r:      r,
		r2:     r * r,
		bounds: Bounds{Left: x - r, Right: x + r, Bottom: y - r, Top: y + r},
	}
}

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) BoundingBox() Bounds { return c.bounds }

func (c *Circle) X() float64 { return c.x }

func (c *Circle) Y() float64 { return c.y }

// R returns the radius.
func (c *Circle) R() float64 { return c.r }

// R2 returns the squared radius.
func (c *Circle) R2() float64 { return c.r2 }

func (c *Circle) Center() Point { return Point{X: c.x, Y: c.y} }

// PointInside compares squared distances, so no square root is taken.
func (c *Circle) PointInside(x, y float64) bool {
	dx, dy := c.x-x, c.y-y
	return dx*dx+dy*dy <= c.r2
}

// Shift moves the center and the bounding box together.
func (c *Circle) Shift(dx, dy float64) {
	c.bounds.shift(dx, dy)
	c.x += dx
	c.y += dy
}

// SetCenter moves the circle so that its center is (x, y).
func (c *Circle) SetCenter(x, y float64) {
	c.Shift(x-c.x, y-c.y)
}

func (c *Circle) sealed() {}
