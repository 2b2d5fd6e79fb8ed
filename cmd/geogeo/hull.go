package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeusync/geogeo/pkg/shape"
)

type hullInfo struct {
	Convex      bool          `json:"convex" yaml:"convex"`
	Bounds      shape.Bounds  `json:"bounds" yaml:"bounds"`
	HullVerts   []shape.Point `json:"hull_vertices" yaml:"hull_vertices"`
	HullNormals []shape.Point `json:"hull_normals" yaml:"hull_normals"`
}

func newHullCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "hull x,y [x,y...]",
		Short:   "Print the convex hull of a vertex loop",
		Example: "  geogeo hull 0,0 4,0 4,4 0,4 2,2",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pts := make([]shape.Point, len(args))
			for i, arg := range args {
				p, err := parsePoint(arg)
				if err != nil {
					return err
				}
				pts[i] = p
			}
			p := shape.NewPolygon(pts)
			return root.encode(cmd.OutOrStdout(), hullInfo{
				Convex:      p.IsConvex(),
				Bounds:      p.BoundingBox(),
				HullVerts:   p.HullVertices(),
				HullNormals: p.HullNormals(),
			})
		},
	}
}

func parsePoint(s string) (shape.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return shape.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return shape.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return shape.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return shape.Pt(x, y), nil
}
