package geometry

import (
	"sort"
)

// ConvexHull returns the convex hull of the given points as a
// counter-clockwise ring using the Andrew monotone chain algorithm.
// Collinear points on the hull boundary are dropped. Inputs with fewer
// than three distinct points return what there is.
func ConvexHull(points []Point) Ring {
	if len(points) < 3 {
		return append(Ring(nil), points...)
	}

	pts := append([]Point(nil), points...)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	var lower, upper []Point
	for _, p := range pts {
		for len(lower) >= 2 && turn(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && turn(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// The last point of each chain is the first point of the other.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return Ring(hull)
}

func turn(a, b, c Point) float64 {
	return b.Minus(a).CrossProductZ(c.Minus(a))
}
