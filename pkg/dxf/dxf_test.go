package dxf

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/xerrors"

	"github.com/Clinery1/laser-cam/pkg/geometry"
)

func TestProjectionAxisMapping(t *testing.T) {
	tests := []struct {
		name      string
		extrusion Vec3
		want      geometry.Segment
	}{
		{
			name:      "z up keeps xy",
			extrusion: Vec3{Z: 1},
			want: geometry.Segment{
				A: geometry.Point{X: 1, Y: 2},
				B: geometry.Point{X: 4, Y: 5},
			},
		},
		{
			name:      "x up takes yz",
			extrusion: Vec3{X: 1},
			want: geometry.Segment{
				A: geometry.Point{X: 2, Y: 3},
				B: geometry.Point{X: 5, Y: 6},
			},
		},
		{
			name:      "y up takes xz",
			extrusion: Vec3{Y: 1},
			want: geometry.Segment{
				A: geometry.Point{X: 1, Y: 3},
				B: geometry.Point{X: 4, Y: 6},
			},
		},
	}
	for _, test := range tests {
		var proj Projection
		got, err := proj.Project(LineRecord{
			P1:        Vec3{X: 1, Y: 2, Z: 3},
			P2:        Vec3{X: 4, Y: 5, Z: 6},
			Extrusion: test.extrusion,
		})
		if err != nil {
			t.Fatalf("%s: Project: %s", test.name, err)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%s: segment diff: %s", test.name, diff)
		}
	}
}

func TestProjectionNotInPlane(t *testing.T) {
	var proj Projection
	_, err := proj.Project(LineRecord{
		Extrusion: Vec3{X: 0.7071, Y: 0.7071},
	})
	if !xerrors.Is(err, ErrModelNotInPlane) {
		t.Errorf("err = %v, want ErrModelNotInPlane", err)
	}
}

// The axis is fixed by the first record; later records are projected
// with the same mapping and never re-detected.
func TestProjectionNoRedetection(t *testing.T) {
	var proj Projection
	if _, err := proj.Project(LineRecord{Extrusion: Vec3{X: 1}}); err != nil {
		t.Fatalf("first Project: %s", err)
	}

	// A later record with a non-axis extrusion must not fail.
	got, err := proj.Project(LineRecord{
		P1:        Vec3{X: 1, Y: 2, Z: 3},
		P2:        Vec3{X: 4, Y: 5, Z: 6},
		Extrusion: Vec3{X: 0.5, Y: 0.5, Z: 0.7071},
	})
	if err != nil {
		t.Fatalf("second Project: %s", err)
	}
	want := geometry.Segment{
		A: geometry.Point{X: 2, Y: 3},
		B: geometry.Point{X: 5, Y: 6},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("segment diff: %s", diff)
	}
}

// Minimal DXF with two LINE entities forming an L, plus a CIRCLE that
// must be skipped and counted.
const sampleDXF = `0
SECTION
2
ENTITIES
0
LINE
8
0
10
0.0
20
0.0
30
0.0
11
10.0
21
0.0
31
0.0
210
0.0
220
0.0
230
1.0
0
LINE
8
0
10
10.0
20
0.0
30
0.0
11
10.0
21
5.0
31
0.0
210
0.0
220
0.0
230
1.0
0
CIRCLE
8
0
10
3.0
20
3.0
30
0.0
40
1.5
0
ENDSEC
0
EOF
`

func TestRead(t *testing.T) {
	d, err := Read(strings.NewReader(sampleDXF), "sample")
	if err != nil {
		t.Fatalf("Read: %s", err)
	}

	if d.Name != "sample" {
		t.Errorf("Name = %q, want %q", d.Name, "sample")
	}
	if d.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", d.Skipped)
	}

	want := []geometry.Segment{
		{A: geometry.Point{X: 0, Y: 0}, B: geometry.Point{X: 10, Y: 0}},
		{A: geometry.Point{X: 10, Y: 0}, B: geometry.Point{X: 10, Y: 5}},
	}
	if diff := cmp.Diff(want, d.Segments); diff != "" {
		t.Errorf("segments diff: %s", diff)
	}
}
