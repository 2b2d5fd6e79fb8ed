package shape

// Bounds is an axis-aligned bounding box. Left <= Right and Bottom <= Top
// hold for every bounds produced by this package.
type Bounds struct {
	Left   float64 `json:"left" yaml:"left"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Top    float64 `json:"top" yaml:"top"`
}

// Width returns the vertical extent, Top - Bottom.
//
// The naming is inverted with respect to the usual convention and callers
// rely on it: Width is vertical, Height is horizontal.
func (b Bounds) Width() float64 { return b.Top - b.Bottom }

// Height returns the horizontal extent, Right - Left.
func (b Bounds) Height() float64 { return b.Right - b.Left }

// Center returns the midpoint of the box.
func (b Bounds) Center() Point {
	return Point{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2}
}

// Overlaps reports whether b and o share at least one point. Touching edges
// count as overlap.
func (b Bounds) Overlaps(o Bounds) bool {
	return b.Left <= o.Right && o.Left <= b.Right && b.Bottom <= o.Top && o.Bottom <= b.Top
}

func (b *Bounds) shift(dx, dy float64) {
	b.Left += dx
	b.Right += dx
	b.Bottom += dy
	b.Top += dy
}

// boundsOf returns the tight bounds of pts. pts must not be empty.
func boundsOf(pts []Point) Bounds {
	b := Bounds{Left: pts[0].X, Right: pts[0].X, Bottom: pts[0].Y, Top: pts[0].Y}
	for _, p := range pts[1:] {
		b.extend(p)
	}
	return b
}

func (b *Bounds) extend(p Point) {
	if p.X < b.Left {
		b.Left = p.X
	}
	if p.X > b.Right {
		b.Right = p.X
	}
	if p.Y < b.Bottom {
		b.Bottom = p.Y
	}
	if p.Y > b.Top {
		b.Top = p.Y
	}
}
