package geometry

import (
	"math"
)

// Transform is a similarity transform: uniform scale, then rotation,
// then translation.
type Transform struct {
	Translation Point
	Rotation    float64 // radians, counter-clockwise
	Scale       float64
}

// Identity returns the do-nothing transform.
func Identity() Transform {
	return Transform{Scale: 1}
}

// Apply maps p from model space into sheet space.
func (t Transform) Apply(p Point) Point {
	sin, cos := math.Sincos(t.Rotation)
	x := p.X * t.Scale
	y := p.Y * t.Scale
	return Point{
		X: cos*x - sin*y + t.Translation.X,
		Y: sin*x + cos*y + t.Translation.Y,
	}
}

// ApplyInverse maps p from sheet space back into model space. It
// undoes Apply step by step: translation, rotation, then scale.
func (t Transform) ApplyInverse(p Point) Point {
	sin, cos := math.Sincos(-t.Rotation)
	x := p.X - t.Translation.X
	y := p.Y - t.Translation.Y
	return Point{
		X: (cos*x - sin*y) / t.Scale,
		Y: (sin*x + cos*y) / t.Scale,
	}
}

// Inverse returns the similarity transform that undoes t.
func (t Transform) Inverse() Transform {
	inv := Transform{
		Rotation: -t.Rotation,
		Scale:    1 / t.Scale,
	}
	sin, cos := math.Sincos(inv.Rotation)
	inv.Translation = Point{
		X: -(cos*t.Translation.X - sin*t.Translation.Y) * inv.Scale,
		Y: -(sin*t.Translation.X + cos*t.Translation.Y) * inv.Scale,
	}
	return inv
}

// EntityTransform places a model instance on a sheet: an optional Y
// flip in model space followed by a similarity transform. The flip
// happens BEFORE the similarity transform; the order matters whenever
// the rotation is nonzero.
type EntityTransform struct {
	Transform Transform
	Flip      bool
}

// Apply maps a model-space point onto the sheet.
func (et EntityTransform) Apply(p Point) Point {
	if et.Flip {
		p.Y = -p.Y
	}
	return et.Transform.Apply(p)
}

// ApplyInverse maps a sheet-space point back into model space,
// inverting the same composition in reverse order.
func (et EntityTransform) ApplyInverse(p Point) Point {
	p = et.Transform.ApplyInverse(p)
	if et.Flip {
		p.Y = -p.Y
	}
	return p
}
