package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes a set of named shapes and, optionally, which pairs of
// them to test. It decodes from JSON or YAML.
type Config struct {
	Shapes []ShapeConfig `json:"shapes" yaml:"shapes"`
	Pairs  [][]string    `json:"pairs,omitempty" yaml:"pairs,omitempty"`
}

// ShapeConfig describes one shape. Exactly the geometry block matching Kind
// is read; box shapes accept either Box or Rect.
type ShapeConfig struct {
	Name      string           `json:"name,omitempty" yaml:"name,omitempty"`
	Kind      string           `json:"kind" yaml:"kind"`
	Box       *BoxConfig       `json:"box,omitempty" yaml:"box,omitempty"`
	Rect      *RectConfig      `json:"rect,omitempty" yaml:"rect,omitempty"`
	Circle    *CircleConfig    `json:"circle,omitempty" yaml:"circle,omitempty"`
	Polygon   *PolygonConfig   `json:"polygon,omitempty" yaml:"polygon,omitempty"`
	Transform *TransformConfig `json:"transform,omitempty" yaml:"transform,omitempty"`
}

type BoxConfig struct {
	Left   float64 `json:"left" yaml:"left"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Top    float64 `json:"top" yaml:"top"`
}

// RectConfig is a box given by its bottom-left corner and size.
type RectConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

type CircleConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	R float64 `json:"r" yaml:"r"`
}

type PolygonConfig struct {
	Vertices [][]float64 `json:"vertices" yaml:"vertices"`
	Center   []float64   `json:"center,omitempty" yaml:"center,omitempty"`
	Theta    float64     `json:"theta,omitempty" yaml:"theta,omitempty"`
}

// TransformConfig is applied after construction in the order shift, center,
// rotation. Center and rotation only apply to shapes that support them.
type TransformConfig struct {
	Shift    []float64 `json:"shift,omitempty" yaml:"shift,omitempty"`
	Center   []float64 `json:"center,omitempty" yaml:"center,omitempty"`
	Rotation *float64  `json:"rotation,omitempty" yaml:"rotation,omitempty"`
}

// LoadJSON loads config from JSON reader.
func LoadJSON(r io.Reader) (*Config, error) {
	var c Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadYAML loads config from YAML reader.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile picks the decoder from the file extension.
func LoadFile(path string) (*Config, error) {
	var load func(io.Reader) (*Config, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		load = LoadJSON
	case ".yaml", ".yml":
		load = LoadYAML
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := load(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}
