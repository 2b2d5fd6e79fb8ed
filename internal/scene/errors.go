package scene

import "errors"

// Scene description errors
var (
	ErrUnknownKind       = errors.New("unknown shape kind")
	ErrMissingGeometry   = errors.New("shape geometry missing")
	ErrEmptyPolygon      = errors.New("polygon has no vertices")
	ErrInvalidVertex     = errors.New("vertex must have exactly two coordinates")
	ErrDuplicateName     = errors.New("duplicate shape name")
	ErrUnknownShape      = errors.New("unknown shape name")
	ErrInvalidPair       = errors.New("pair must name exactly two shapes")
	ErrUnsupportedFormat = errors.New("unsupported scene file format")
	ErrInvalidTransform  = errors.New("transform not supported by shape kind")
)
