package scene

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/geogeo/pkg/shape"
)

// Fingerprint digests the kind and geometry of every shape in order.
// Names are left out, so scenes that differ only in naming (including the
// random names of unnamed shapes) share a fingerprint.
func (s *Scene) Fingerprint() uint64 {
	h := xxhash.New()
	buf := make([]byte, 0, 256)
	for _, e := range s.entries {
		buf = append(buf[:0], byte(e.Shape.Kind()))
		buf = appendGeometry(buf, e.Shape)
		_, _ = h.Write(buf)
	}
	return h.Sum64()
}

func appendGeometry(buf []byte, shp shape.Shape) []byte {
	b := shp.BoundingBox()
	buf = appendFloats(buf, b.Left, b.Right, b.Bottom, b.Top)

	switch v := shp.(type) {
	case *shape.Circle:
		buf = appendFloats(buf, v.X(), v.Y(), v.R())
	case *shape.Polygon:
		c := v.Center()
		buf = appendFloats(buf, c.X, c.Y, v.Theta())
		buf = appendPoints(buf, v.Vertices())
		buf = appendPoints(buf, v.HullVertices())
		buf = appendPoints(buf, v.HullNormals())
	}
	return buf
}

func appendPoints(buf []byte, pts []shape.Point) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(pts)))
	for _, p := range pts {
		buf = appendFloats(buf, p.X, p.Y)
	}
	return buf
}

func appendFloats(buf []byte, vals ...float64) []byte {
	for _, v := range vals {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	return buf
}
