package main

import (
	"github.com/spf13/cobra"

	"github.com/zeusync/geogeo/internal/core/observability/log"
	"github.com/zeusync/geogeo/internal/scene"
	"github.com/zeusync/geogeo/pkg/shape"
)

type shapeInfo struct {
	Name        string        `json:"name" yaml:"name"`
	Kind        string        `json:"kind" yaml:"kind"`
	Bounds      shape.Bounds  `json:"bounds" yaml:"bounds"`
	Center      *shape.Point  `json:"center,omitempty" yaml:"center,omitempty"`
	Radius      *float64      `json:"radius,omitempty" yaml:"radius,omitempty"`
	Theta       *float64      `json:"theta,omitempty" yaml:"theta,omitempty"`
	Convex      *bool         `json:"convex,omitempty" yaml:"convex,omitempty"`
	Vertices    []shape.Point `json:"vertices,omitempty" yaml:"vertices,omitempty"`
	HullVerts   []shape.Point `json:"hull_vertices,omitempty" yaml:"hull_vertices,omitempty"`
	HullNormals []shape.Point `json:"hull_normals,omitempty" yaml:"hull_normals,omitempty"`
}

func describe(e scene.Entry) shapeInfo {
	info := shapeInfo{
		Name:   e.Name,
		Kind:   e.Shape.Kind().String(),
		Bounds: e.Shape.BoundingBox(),
	}
	switch v := e.Shape.(type) {
	case *shape.Circle:
		c, r := v.Center(), v.R()
		info.Center, info.Radius = &c, &r
	case *shape.Polygon:
		c, theta, convex := v.Center(), v.Theta(), v.IsConvex()
		info.Center, info.Theta, info.Convex = &c, &theta, &convex
		info.Vertices = v.Vertices()
		info.HullVerts = v.HullVertices()
		info.HullNormals = v.HullNormals()
	}
	return info
}

func newInspectCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <scene.yaml|scene.json>",
		Short: "Print bounds, hulls and normals of every shape in a scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := scene.LoadFile(args[0])
			if err != nil {
				return err
			}
			s, err := scene.Build(cfg, log.Provide())
			if err != nil {
				return err
			}
			entries := s.Entries()
			out := make([]shapeInfo, len(entries))
			for i, e := range entries {
				out[i] = describe(e)
			}
			return root.encode(cmd.OutOrStdout(), out)
		},
	}
}
