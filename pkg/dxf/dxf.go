// Package dxf reads line entities out of DXF drawings and projects
// them into a consistent 2D coordinate system.
package dxf

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rpaloschi/dxf-go/document"
	"github.com/rpaloschi/dxf-go/entities"
	"golang.org/x/xerrors"

	"github.com/Clinery1/laser-cam/pkg/geometry"
)

// ErrModelNotInPlane means the drawing's first line entity has an
// extrusion direction that is not the unit X, Y, or Z axis. We only
// accept drawings lying in the XY, XZ, or YZ planes.
var ErrModelNotInPlane = xerrors.New("dxf: the model is not in one of the XY, XZ, or YZ planes")

// Vec3 is a raw 3D coordinate from the drawing.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// LineRecord is one line entity as handed over by the drawing loader:
// two endpoints plus the entity's extrusion direction.
type LineRecord struct {
	P1        Vec3
	P2        Vec3
	Extrusion Vec3
}

// upAxis selects which two source coordinates become the 2D x/y.
type upAxis int

const (
	zUp upAxis = iota
	xUp
	yUp
)

// Projection fixes the drawing's "up" axis from the first line record
// it sees and projects every subsequent record with the same mapping.
type Projection struct {
	axis  upAxis
	fixed bool
}

// Project converts a line record to a 2D segment. The first call
// detects the up axis from the record's extrusion direction; it fails
// with ErrModelNotInPlane if the direction is not an exact unit axis.
func (pr *Projection) Project(rec LineRecord) (geometry.Segment, error) {
	if !pr.fixed {
		switch {
		case rec.Extrusion.X == 1.0:
			pr.axis = xUp
		case rec.Extrusion.Y == 1.0:
			pr.axis = yUp
		case rec.Extrusion.Z == 1.0:
			pr.axis = zUp
		default:
			return geometry.Segment{}, ErrModelNotInPlane
		}
		pr.fixed = true
	}

	return geometry.Segment{
		A: pr.project(rec.P1),
		B: pr.project(rec.P2),
	}, nil
}

func (pr *Projection) project(v Vec3) geometry.Point {
	switch pr.axis {
	case xUp:
		return geometry.Point{X: v.Y, Y: v.Z}
	case yUp:
		return geometry.Point{X: v.X, Y: v.Z}
	default:
		return geometry.Point{X: v.X, Y: v.Y}
	}
}

// Drawing is the ingested 2D form of a DXF file: the projected line
// segments in file order, plus a count of skipped non-line entities.
type Drawing struct {
	Name     string
	Segments []geometry.Segment
	// Skipped counts entities that were not lines. Surfaced once after
	// the scan; never aborts loading.
	Skipped int
}

// ReadFile loads a drawing from disk. The drawing name is the file
// stem.
func ReadFile(path string) (*Drawing, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, xerrors.Errorf("open drawing: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Read(file, name)
}

// Read parses a DXF document and projects its line entities.
func Read(r io.Reader, name string) (*Drawing, error) {
	doc, err := document.DxfDocumentFromStream(r)
	if err != nil {
		return nil, xerrors.Errorf("parse drawing %q: %w", name, err)
	}

	d := &Drawing{Name: name}
	var proj Projection

	for _, entity := range doc.Entities.Entities {
		line, ok := entity.(*entities.Line)
		if !ok {
			d.Skipped++
			continue
		}

		seg, err := proj.Project(LineRecord{
			P1:        Vec3{X: line.Start.X, Y: line.Start.Y, Z: line.Start.Z},
			P2:        Vec3{X: line.End.X, Y: line.End.Y, Z: line.End.Z},
			Extrusion: Vec3{X: line.ExtrusionDirection.X, Y: line.ExtrusionDirection.Y, Z: line.ExtrusionDirection.Z},
		})
		if err != nil {
			return nil, xerrors.Errorf("drawing %q: %w", name, err)
		}
		d.Segments = append(d.Segments, seg)
	}

	return d, nil
}
