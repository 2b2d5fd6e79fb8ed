package shape

var _ Shape = (*Box)(nil)

// Box is an axis-aligned rectangle. Its bounding box is the box itself.
type Box struct {
	bounds Bounds
}

// NewBox creates a box from its four edges.
func NewBox(left, right, bottom, top float64) *Box {
	return &Box{bounds: Bounds{Left: left, Right: right, Bottom: bottom, Top: top}}
}

// BoxFromRect creates a box from its bottom-left corner and its size.
func BoxFromRect(x, y, w, h float64) *Box {
	return NewBox(x, x+w, y, y+h)
}

func (b *Box) Kind() Kind { return KindBox }

func (b *Box) BoundingBox() Bounds { return b.bounds }

// PointInside uses closed intervals on both axes.
func (b *Box) PointInside(x, y float64) bool {
	return b.bounds.Left <= x && x <= b.bounds.Right && b.bounds.Bottom <= y && y <= b.bounds.Top
}

func (b *Box) Shift(dx, dy float64) { b.bounds.shift(dx, dy) }

func (b *Box) sealed() {}
