package shape

import "math"

// SetRotation rotates the polygon about its center to the absolute angle
// theta (radians). Only the difference from the current angle is applied,
// so successive calls compose. The bounding box is rebuilt from the rotated
// vertices in the same pass.
//
// Hull normals go through the same center-relative formula as positions.
// With a center at the origin this is a pure rotation of the normals.
func (p *Polygon) SetRotation(theta float64) {
	dTheta := theta - p.theta
	if dTheta == 0 {
		return
	}

	s, c := math.Sincos(dTheta)
	cx, cy := p.center.X, p.center.Y
	rotate := func(v Point) Point {
		dx, dy := v.X-cx, v.Y-cy
		return Point{X: cx + dx*c - dy*s, Y: cy + dx*s + dy*c}
	}

	for i, v := range p.verts {
		v = rotate(v)
		p.verts[i] = v
		if i == 0 {
			p.bounds = Bounds{Left: v.X, Right: v.X, Bottom: v.Y, Top: v.Y}
		} else {
			p.bounds.extend(v)
		}
	}
	for i, v := range p.hullVerts {
		p.hullVerts[i] = rotate(v)
	}
	for i, n := range p.hullNorms {
		p.hullNorms[i] = rotate(n)
	}

	p.theta = theta
}

// Shift translates the bounding box, the center, the vertices and the hull.
// Hull normals are directions and stay as they are.
func (p *Polygon) Shift(dx, dy float64) {
	p.bounds.shift(dx, dy)
	p.center.X += dx
	p.center.Y += dy
	for i := range p.verts {
		p.verts[i].X += dx
		p.verts[i].Y += dy
	}
	for i := range p.hullVerts {
		p.hullVerts[i].X += dx
		p.hullVerts[i].Y += dy
	}
}

// SetCenter moves the polygon so that its rotation center is (x, y).
func (p *Polygon) SetCenter(x, y float64) {
	p.Shift(x-p.center.X, y-p.center.Y)
}
