package geometry

import (
	"math"
)

type Point struct {
	X float64
	Y float64
}

type Vector2 = Point

// Segment is a directed line segment from A to B.
type Segment struct {
	A Point
	B Point
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min Point
	Max Point
}

// Ring is a closed polygon ring. The last point IS NOT a repeat of the
// first; the closing edge is implied.
type Ring []Point

func (a Vector2) Add(b Vector2) Vector2 {
	return Vector2{
		X: a.X + b.X,
		Y: a.Y + b.Y,
	}
}

func (a Vector2) Minus(b Vector2) Vector2 {
	return Vector2{
		X: a.X - b.X,
		Y: a.Y - b.Y,
	}
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

func (v Vector2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

func (a Vector2) CrossProductZ(b Vector2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Distance returns the distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// RectAround returns a degenerate Rect covering only p. Extend it with
// more points to grow it.
func RectAround(p Point) Rect {
	return Rect{Min: p, Max: p}
}

// Extend grows the rect to cover p.
func (r *Rect) Extend(p Point) {
	r.Min.X = math.Min(r.Min.X, p.X)
	r.Min.Y = math.Min(r.Min.Y, p.Y)
	r.Max.X = math.Max(r.Max.X, p.X)
	r.Max.Y = math.Max(r.Max.Y, p.Y)
}

// Contains reports whether p is inside the rect. The boundary is
// inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) Center() Point {
	return Point{
		X: (r.Min.X + r.Max.X) / 2,
		Y: (r.Min.Y + r.Max.Y) / 2,
	}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Area returns the unsigned area of the ring (shoelace formula).
func (r Ring) Area() float64 {
	if len(r) < 3 {
		return 0
	}
	sum := 0.0
	for i, j := 0, len(r)-1; i < len(r); j, i = i, i+1 {
		sum += r[j].CrossProductZ(r[i])
	}
	return math.Abs(sum) / 2
}

// Centroid returns the area centroid of the ring.
// NOTE: this is center-of-mass, not the extents midpoint.
func (r Ring) Centroid() Point {
	var cx, cy, area float64
	for i, j := 0, len(r)-1; i < len(r); j, i = i, i+1 {
		cross := r[j].CrossProductZ(r[i])
		cx += (r[j].X + r[i].X) * cross
		cy += (r[j].Y + r[i].Y) * cross
		area += cross
	}
	if area == 0 {
		return r.Bounds().Center()
	}
	area /= 2
	return Point{X: cx / (6 * area), Y: cy / (6 * area)}
}

// Contains reports whether p is inside the ring using the even-odd
// rule. Points exactly on an edge may land on either side.
func (r Ring) Contains(p Point) bool {
	in := false
	for i, j := 0, len(r)-1; i < len(r); j, i = i, i+1 {
		a, b := r[i], r[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

// Bounds returns the ring's axis-aligned bounding box.
func (r Ring) Bounds() Rect {
	if len(r) == 0 {
		return Rect{}
	}
	bounds := RectAround(r[0])
	for _, p := range r[1:] {
		bounds.Extend(p)
	}
	return bounds
}
