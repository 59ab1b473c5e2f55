// Package model turns raw drawing segments into immutable models:
// stitched polylines, classified polygon regions, and the registry
// that shares them between sheet placements.
package model

import (
	"github.com/Clinery1/laser-cam/pkg/geometry"
)

// Polyline is an ordered chain of points. A closed polyline never
// repeats its start point at the end; the closing edge is implied.
type Polyline struct {
	Points []geometry.Point
	Closed bool
}

// lineBuilder accumulates segment endpoints into one growing chain.
type lineBuilder struct {
	points []geometry.Point
}

// tryAdd appends a segment if its start exactly equals the chain's
// last point. It reports false when the segment does not connect,
// which signals the caller to finish this chain and start a new one.
func (lb *lineBuilder) tryAdd(seg geometry.Segment) bool {
	if len(lb.points) == 0 {
		lb.points = append(lb.points, seg.A, seg.B)
		return true
	}
	if lb.points[len(lb.points)-1] == seg.A {
		lb.points = append(lb.points, seg.B)
		return true
	}
	return false
}

// finish classifies the chain as open or closed. A chain whose first
// and last points are exactly equal is closed, and the duplicate last
// point is dropped.
func (lb *lineBuilder) finish() Polyline {
	pts := lb.points
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		return Polyline{Points: pts[:len(pts)-1], Closed: true}
	}
	return Polyline{Points: pts}
}

// Stitch groups consecutive connecting segments into polylines.
// Endpoint matching is exact floating-point equality: drawings are
// assumed pre-snapped, and coordinates with rounding noise will
// fragment loops rather than be merged by a tolerance.
func Stitch(segments []geometry.Segment) []Polyline {
	var lines []Polyline
	var lb lineBuilder

	for _, seg := range segments {
		if !lb.tryAdd(seg) {
			lines = append(lines, lb.finish())
			lb = lineBuilder{}
			lb.tryAdd(seg)
		}
	}
	if len(lb.points) > 0 {
		lines = append(lines, lb.finish())
	}

	return lines
}
