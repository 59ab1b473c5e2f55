package model

import (
	"github.com/Clinery1/laser-cam/pkg/dxf"
	"github.com/Clinery1/laser-cam/pkg/geometry"
)

// Model is a named, immutable shape loaded from a drawing. Transforms
// are stored externally, one per placement.
type Model struct {
	name  string
	shape *Shape
	// points is the total loop point count, a rough size measure for
	// listings.
	points int
	// skipped counts non-line drawing entities that were ignored
	// during loading.
	skipped int
}

// New builds a model from stitched polylines.
func New(name string, lines []Polyline) *Model {
	shape := BuildShape(lines)
	return &Model{
		name:   name,
		shape:  shape,
		points: shape.PointCount(),
	}
}

// Load reads a DXF file, stitches its segments, and builds the model.
// The model name is the file stem.
func Load(path string) (*Model, error) {
	drawing, err := dxf.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m := New(drawing.Name, Stitch(drawing.Segments))
	m.skipped = drawing.Skipped
	return m, nil
}

func (m *Model) Name() string  { return m.name }
func (m *Model) Shape() *Shape { return m.shape }

// PointCount returns the total number of loop points in the model.
func (m *Model) PointCount() int { return m.points }

// SkippedEntities returns how many non-line entities the drawing
// contained. Nonzero means the source had content this system ignores.
func (m *Model) SkippedEntities() int { return m.skipped }

// Bounds returns the model's bounding box in model space.
func (m *Model) Bounds() geometry.Rect { return m.shape.Bounds() }

// Center returns the center of the model based on extents.
// NOTE: this IS NOT center-of-mass.
func (m *Model) Center() geometry.Point {
	return m.shape.Bounds().Center()
}

// ContainsPoint reports whether a model-space point is inside the
// model's shape. Any placement transform must be inverted by the
// caller before calling this.
func (m *Model) ContainsPoint(p geometry.Point) bool {
	return m.shape.ContainsPoint(p)
}
