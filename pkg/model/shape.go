package model

import (
	"github.com/Clinery1/laser-cam/pkg/geometry"
)

// Region is one polygon with zero or more interior holes.
type Region struct {
	Outer geometry.Ring
	Holes []geometry.Ring
}

// Shape is one or more polygon regions plus a precomputed convex hull
// and bounding box. Immutable once built.
type Shape struct {
	regions []Region
	hull    geometry.Ring
	bounds  geometry.Rect
}

// BuildShape classifies stitched polylines into nested regions. Every
// polyline is treated as a closed loop for area and containment
// purposes. The loop with the minimum area becomes the first top-level
// region; each remaining loop, in input order, becomes a hole of the
// first region found to contain it, or a new top-level region if none
// does.
//
// TODO: verify the minimum-area primary selection against real fixture
// drawings; the usual CAD convention makes the largest loop the outer
// boundary.
func BuildShape(lines []Polyline) *Shape {
	s := &Shape{}
	if len(lines) == 0 {
		return s
	}

	loops := make([]geometry.Ring, len(lines))
	for i, line := range lines {
		loops[i] = geometry.Ring(line.Points)
	}

	primary := 0
	for i, loop := range loops {
		if loop.Area() < loops[primary].Area() {
			primary = i
		}
	}
	s.regions = append(s.regions, Region{Outer: loops[primary]})

	var all []geometry.Point
	all = append(all, loops[primary]...)

	for i, loop := range loops {
		if i == primary {
			continue
		}
		all = append(all, loop...)

		placed := false
		for r := range s.regions {
			if len(loop) > 0 && s.regions[r].Outer.Contains(loop[0]) {
				s.regions[r].Holes = append(s.regions[r].Holes, loop)
				placed = true
				break
			}
		}
		if !placed {
			s.regions = append(s.regions, Region{Outer: loop})
		}
	}

	s.bounds = geometry.RectAround(all[0])
	for _, p := range all[1:] {
		s.bounds.Extend(p)
	}
	s.hull = geometry.ConvexHull(all)

	return s
}

// Regions returns the top-level regions in construction order.
func (s *Shape) Regions() []Region { return s.regions }

// Bounds returns the axis-aligned bounding box over all loops.
func (s *Shape) Bounds() geometry.Rect { return s.bounds }

// Hull returns the convex hull over all loop points.
func (s *Shape) Hull() geometry.Ring { return s.hull }

// Empty reports whether the shape has no loops at all.
func (s *Shape) Empty() bool { return len(s.regions) == 0 }

// Loops returns every ring in the shape's natural cutting order: each
// region's outer boundary followed by its holes.
func (s *Shape) Loops() []geometry.Ring {
	var loops []geometry.Ring
	for _, r := range s.regions {
		loops = append(loops, r.Outer)
		loops = append(loops, r.Holes...)
	}
	return loops
}

// PointCount returns the total number of stored loop points.
func (s *Shape) PointCount() int {
	n := 0
	for _, loop := range s.Loops() {
		n += len(loop)
	}
	return n
}

// ContainsPoint reports whether p lies inside the shape, using the
// even-odd rule across every loop: inside the union of regions minus
// their holes. Parity over all loops gives the right answer even when
// the minimum-area construction rule has filed a nested loop as a
// top-level region instead of a hole. The bounding box and convex hull
// reject far points cheaply first.
func (s *Shape) ContainsPoint(p geometry.Point) bool {
	if s.Empty() || !s.bounds.Contains(p) {
		return false
	}
	if len(s.hull) >= 3 && !s.hull.Contains(p) {
		return false
	}

	inside := false
	for _, loop := range s.Loops() {
		if loop.Contains(p) {
			inside = !inside
		}
	}
	return inside
}
