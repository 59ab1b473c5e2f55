package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTransformApply(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
		p    Point
		want Point
	}{
		{
			name: "identity",
			tr:   Identity(),
			p:    Point{3, 4},
			want: Point{3, 4},
		},
		{
			name: "translate",
			tr:   Transform{Translation: Point{10, -5}, Scale: 1},
			p:    Point{1, 1},
			want: Point{11, -4},
		},
		{
			name: "scale then translate",
			tr:   Transform{Translation: Point{1, 1}, Scale: 2},
			p:    Point{3, 4},
			want: Point{7, 9},
		},
		{
			name: "quarter turn",
			tr:   Transform{Rotation: math.Pi / 2, Scale: 1},
			p:    Point{1, 0},
			want: Point{0, 1},
		},
		{
			name: "rotate scale translate",
			tr:   Transform{Translation: Point{1, 2}, Rotation: math.Pi, Scale: 3},
			p:    Point{1, 0},
			want: Point{-2, 2},
		},
	}
	for _, test := range tests {
		got := test.tr.Apply(test.p)
		if diff := cmp.Diff(test.want, got, approx); diff != "" {
			t.Errorf("%s: Apply diff: %s", test.name, diff)
		}
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := Transform{Translation: Point{12.5, -3.25}, Rotation: 0.7, Scale: 1.75}
	points := []Point{{0, 0}, {1, 0}, {-4, 9}, {100.5, -33.3}}

	for _, p := range points {
		back := tr.ApplyInverse(tr.Apply(p))
		if diff := cmp.Diff(p, back, approx); diff != "" {
			t.Errorf("ApplyInverse(Apply(%v)) diff: %s", p, diff)
		}
		inv := tr.Inverse()
		back = inv.Apply(tr.Apply(p))
		if diff := cmp.Diff(p, back, approx); diff != "" {
			t.Errorf("Inverse().Apply(Apply(%v)) diff: %s", p, diff)
		}
	}
}

// The flip is applied in model space before the similarity transform.
// With a nonzero rotation the two orders give different results, so
// this pins the order down.
func TestEntityTransformFlipOrder(t *testing.T) {
	et := EntityTransform{
		Transform: Transform{Rotation: math.Pi / 2, Scale: 1},
		Flip:      true,
	}

	// Flip (1,2) -> (1,-2), then rotate 90deg -> (2,1).
	got := et.Apply(Point{1, 2})
	if diff := cmp.Diff(Point{2, 1}, got, approx); diff != "" {
		t.Errorf("Apply diff: %s", diff)
	}

	// Flipping after the rotation instead would have produced (2,-1).
	wrong := Point{2, -1}
	if diff := cmp.Diff(wrong, got, approx); diff == "" {
		t.Error("flip appears to be applied after the similarity transform")
	}
}

func TestEntityTransformRoundTrip(t *testing.T) {
	transforms := []EntityTransform{
		{Transform: Identity()},
		{Transform: Identity(), Flip: true},
		{Transform: Transform{Translation: Point{5, 7}, Rotation: 1.1, Scale: 0.5}, Flip: true},
		{Transform: Transform{Translation: Point{-2, 3}, Rotation: -0.3, Scale: 4}},
	}
	points := []Point{{0, 0}, {1, 2}, {-3.5, 0.25}}

	for _, et := range transforms {
		for _, p := range points {
			back := et.ApplyInverse(et.Apply(p))
			if diff := cmp.Diff(p, back, approx); diff != "" {
				t.Errorf("%+v: round trip of %v diff: %s", et, p, diff)
			}
		}
	}
}
