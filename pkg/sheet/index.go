package sheet

import (
	"github.com/asim/quadtree"

	"github.com/Clinery1/laser-cam/pkg/geometry"
)

var zeroPoint = quadtree.NewPoint(0, 0, nil)

// entityIndex is a quadtree over entity bounding boxes (center plus
// corners) used to narrow hit-testing candidates before the exact
// containment test.
type entityIndex struct {
	tree *quadtree.QuadTree
}

func newEntityIndex(bounds geometry.Rect) *entityIndex {
	center := bounds.Center()
	halfWidth := bounds.Width() / 2
	halfHeight := bounds.Height() / 2

	// Margin so entities dragged past the sheet edge are still indexed.
	halfWidth += 100
	halfHeight += 100

	aabb := quadtree.NewAABB(
		quadtree.NewPoint(center.X, center.Y, nil),
		quadtree.NewPoint(halfWidth, halfHeight, nil))
	return &entityIndex{
		tree: quadtree.New(aabb, 0, nil),
	}
}

func (ix *entityIndex) keyPoints(bounds geometry.Rect) []geometry.Point {
	return []geometry.Point{
		bounds.Center(),
		bounds.Min,
		{X: bounds.Max.X, Y: bounds.Min.Y},
		bounds.Max,
		{X: bounds.Min.X, Y: bounds.Max.Y},
	}
}

func (ix *entityIndex) add(id EntityID, bounds geometry.Rect) {
	for _, p := range ix.keyPoints(bounds) {
		point := quadtree.NewPoint(p.X, p.Y, nil)
		points := ix.tree.KNearest(quadtree.NewAABB(point, zeroPoint), 1, nil)
		if len(points) > 0 {
			px, py := points[0].Coordinates()
			if px == p.X && py == p.Y {
				ids := points[0].Data().(map[EntityID]struct{})
				ids[id] = struct{}{}
				continue
			}
		}
		ids := map[EntityID]struct{}{id: {}}
		ix.tree.Insert(quadtree.NewPoint(p.X, p.Y, ids))
	}
}

func (ix *entityIndex) remove(id EntityID, bounds geometry.Rect) {
	for _, p := range ix.keyPoints(bounds) {
		point := quadtree.NewPoint(p.X, p.Y, nil)
		points := ix.tree.KNearest(quadtree.NewAABB(point, zeroPoint), 1, nil)
		if len(points) == 0 {
			continue
		}
		px, py := points[0].Coordinates()
		if px != p.X || py != p.Y {
			continue
		}
		ids := points[0].Data().(map[EntityID]struct{})
		delete(ids, id)
		if len(ids) == 0 {
			ix.tree.Remove(points[0])
		}
	}
}

// search returns the ids indexed within halfExtent of p, deduplicated,
// in no particular order.
func (ix *entityIndex) search(p geometry.Point, halfExtent float64) []EntityID {
	aabb := quadtree.NewAABB(
		quadtree.NewPoint(p.X, p.Y, nil),
		quadtree.NewPoint(halfExtent, halfExtent, nil),
	)

	seen := map[EntityID]struct{}{}
	var out []EntityID
	for _, point := range ix.tree.Search(aabb) {
		for id := range point.Data().(map[EntityID]struct{}) {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
