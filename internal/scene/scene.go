// Package scene loads named shapes from a description file and evaluates
// which of them overlap.
package scene

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/zeusync/geogeo/internal/core/observability/log"
	"github.com/zeusync/geogeo/pkg/shape"
)

// Entry is a named shape of a scene.
type Entry struct {
	Name  string
	Shape shape.Shape
}

// Pair holds the indexes of two entries to test against each other.
type Pair struct {
	A, B int
}

// Scene is an ordered set of shapes plus the pairs to test. Shapes are only
// read once the scene is built, so a scene may be evaluated concurrently.
type Scene struct {
	entries []Entry
	index   map[string]int
	pairs   []Pair
	logger  log.Log
}

// Build constructs every shape of cfg, applies its transform and resolves
// the pair list. Shapes without a name get a random UUID. When cfg lists no
// pairs, every unordered pair is tested.
func Build(cfg *Config, logger log.Log) (*Scene, error) {
	s := &Scene{
		entries: make([]Entry, 0, len(cfg.Shapes)),
		index:   make(map[string]int, len(cfg.Shapes)),
		logger:  logger,
	}

	for i, sc := range cfg.Shapes {
		name := sc.Name
		if name == "" {
			name = uuid.NewString()
		}
		if _, exists := s.index[name]; exists {
			return nil, fmt.Errorf("shape %d: %w: %s", i, ErrDuplicateName, name)
		}

		shp, err := buildShape(sc)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", name, err)
		}
		if sc.Transform != nil {
			if err = applyTransform(shp, sc.Transform); err != nil {
				return nil, fmt.Errorf("shape %q: %w", name, err)
			}
		}

		s.index[name] = len(s.entries)
		s.entries = append(s.entries, Entry{Name: name, Shape: shp})
	}

	if len(cfg.Pairs) == 0 {
		for a := 0; a < len(s.entries); a++ {
			for b := a + 1; b < len(s.entries); b++ {
				s.pairs = append(s.pairs, Pair{A: a, B: b})
			}
		}
	} else {
		s.pairs = make([]Pair, 0, len(cfg.Pairs))
		for i, names := range cfg.Pairs {
			if len(names) != 2 {
				return nil, fmt.Errorf("pair %d: %w", i, ErrInvalidPair)
			}
			a, ok := s.index[names[0]]
			if !ok {
				return nil, fmt.Errorf("pair %d: %w: %s", i, ErrUnknownShape, names[0])
			}
			b, ok := s.index[names[1]]
			if !ok {
				return nil, fmt.Errorf("pair %d: %w: %s", i, ErrUnknownShape, names[1])
			}
			s.pairs = append(s.pairs, Pair{A: a, B: b})
		}
	}

	logger.Debug("scene built",
		log.Int("shapes", len(s.entries)),
		log.Int("pairs", len(s.pairs)),
	)

	return s, nil
}

// Len returns the number of shapes.
func (s *Scene) Len() int { return len(s.entries) }

// Entries returns the shapes in declaration order. The shapes themselves are
// shared with the scene.
func (s *Scene) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Lookup returns the shape registered under name.
func (s *Scene) Lookup(name string) (shape.Shape, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.entries[i].Shape, true
}

// Pairs returns the pairs Evaluate will test.
func (s *Scene) Pairs() []Pair {
	out := make([]Pair, len(s.pairs))
	copy(out, s.pairs)
	return out
}

func buildShape(sc ShapeConfig) (shape.Shape, error) {
	switch strings.ToLower(sc.Kind) {
	case "box":
		switch {
		case sc.Box != nil:
			return shape.NewBox(sc.Box.Left, sc.Box.Right, sc.Box.Bottom, sc.Box.Top), nil
		case sc.Rect != nil:
			return shape.BoxFromRect(sc.Rect.X, sc.Rect.Y, sc.Rect.W, sc.Rect.H), nil
		default:
			return nil, fmt.Errorf("box: %w", ErrMissingGeometry)
		}
	case "circle":
		if sc.Circle == nil {
			return nil, fmt.Errorf("circle: %w", ErrMissingGeometry)
		}
		return shape.NewCircle(sc.Circle.X, sc.Circle.Y, sc.Circle.R), nil
	case "polygon":
		if sc.Polygon == nil {
			return nil, fmt.Errorf("polygon: %w", ErrMissingGeometry)
		}
		return buildPolygon(sc.Polygon)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, sc.Kind)
	}
}

func buildPolygon(pc *PolygonConfig) (*shape.Polygon, error) {
	if len(pc.Vertices) == 0 {
		return nil, ErrEmptyPolygon
	}
	verts := make([]shape.Point, len(pc.Vertices))
	for i, v := range pc.Vertices {
		p, err := toPoint(v)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		verts[i] = p
	}

	opts := []shape.PolygonOption{shape.WithTheta(pc.Theta)}
	if pc.Center != nil {
		c, err := toPoint(pc.Center)
		if err != nil {
			return nil, fmt.Errorf("center: %w", err)
		}
		opts = append(opts, shape.WithCenter(c))
	}
	return shape.NewPolygon(verts, opts...), nil
}

func applyTransform(shp shape.Shape, tc *TransformConfig) error {
	if tc.Shift != nil {
		d, err := toPoint(tc.Shift)
		if err != nil {
			return fmt.Errorf("shift: %w", err)
		}
		shp.Shift(d.X, d.Y)
	}

	if tc.Center != nil {
		c, err := toPoint(tc.Center)
		if err != nil {
			return fmt.Errorf("center: %w", err)
		}
		centered, ok := shp.(interface{ SetCenter(x, y float64) })
		if !ok {
			return fmt.Errorf("center on %s: %w", shp.Kind(), ErrInvalidTransform)
		}
		centered.SetCenter(c.X, c.Y)
	}

	if tc.Rotation != nil {
		p, ok := shp.(*shape.Polygon)
		if !ok {
			return fmt.Errorf("rotation on %s: %w", shp.Kind(), ErrInvalidTransform)
		}
		p.SetRotation(*tc.Rotation)
	}

	return nil
}

func toPoint(v []float64) (shape.Point, error) {
	if len(v) != 2 {
		return shape.Point{}, ErrInvalidVertex
	}
	return shape.Pt(v[0], v[1]), nil
}
