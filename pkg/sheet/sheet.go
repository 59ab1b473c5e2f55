// Package sheet nests model placements on a cutting sheet and turns
// them into a G-code program.
package sheet

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Clinery1/laser-cam/pkg/geometry"
	"github.com/Clinery1/laser-cam/pkg/laser"
	"github.com/Clinery1/laser-cam/pkg/model"
)

// EntityID identifies one placement of a model on a sheet.
type EntityID uuid.UUID

func (id EntityID) String() string { return uuid.UUID(id).String() }

func newEntityID() EntityID { return EntityID(uuid.New()) }

// EntityState is the mutable per-placement data: where the instance
// sits on the sheet and which cut condition applies to it.
type EntityState struct {
	Transform geometry.EntityTransform
	Condition laser.ConditionID
}

// Entity is a placed instance of a model.
type Entity struct {
	ID    EntityID
	Model model.Handle
	State EntityState
}

// Bounds returns the entity's axis-aligned bounds in sheet space.
func (e *Entity) Bounds() geometry.Rect {
	mb := e.Model.Model().Bounds()
	corners := []geometry.Point{
		mb.Min,
		{X: mb.Max.X, Y: mb.Min.Y},
		mb.Max,
		{X: mb.Min.X, Y: mb.Max.Y},
	}
	bounds := geometry.RectAround(e.State.Transform.Apply(corners[0]))
	for _, c := range corners[1:] {
		bounds.Extend(e.State.Transform.Apply(c))
	}
	return bounds
}

// Sheet holds the entities placed on one cutting sheet. Models are
// shared read-only through their handles; the sheet owns the mutable
// placement state.
type Sheet struct {
	Name string
	Size geometry.Vector2

	entities map[EntityID]*Entity
	order    []EntityID
	index    *entityIndex

	// now is swappable for tests.
	now func() time.Time
}

func New(name string, size geometry.Vector2) *Sheet {
	return &Sheet{
		Name:     name,
		Size:     size,
		entities: map[EntityID]*Entity{},
		index:    newEntityIndex(geometry.Rect{Max: geometry.Point(size)}),
		now:      time.Now,
	}
}

// Place adds qty instances of a model. Each copy after the first is
// staggered by (5,5) so stacked placements stay visible and pickable.
func (s *Sheet) Place(h model.Handle, state EntityState, qty int) []EntityID {
	ids := make([]EntityID, 0, qty)
	for i := 0; i < qty; i++ {
		e := &Entity{
			ID:    newEntityID(),
			Model: h,
			State: state,
		}
		s.entities[e.ID] = e
		s.order = append(s.order, e.ID)
		s.index.add(e.ID, e.Bounds())
		ids = append(ids, e.ID)

		state.Transform.Transform.Translation =
			state.Transform.Transform.Translation.Add(geometry.Point{X: 5, Y: 5})
	}
	return ids
}

// Entity returns the placement for id. An unknown id means the caller
// broke referential integrity, which is a programming error.
func (s *Sheet) Entity(id EntityID) *Entity {
	e, ok := s.entities[id]
	if !ok {
		panic(fmt.Sprintf("sheet: entity %s does not exist", id))
	}
	return e
}

// Entities returns the placements in placement order.
func (s *Sheet) Entities() []*Entity {
	out := make([]*Entity, len(s.order))
	for i, id := range s.order {
		out[i] = s.entities[id]
	}
	return out
}

// Count returns the number of placed entities.
func (s *Sheet) Count() int { return len(s.entities) }

// Delete removes a placement.
func (s *Sheet) Delete(id EntityID) {
	e := s.Entity(id)
	s.index.remove(id, e.Bounds())
	delete(s.entities, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// SetState replaces a placement's state (transform edits, condition
// changes) and reindexes it.
func (s *Sheet) SetState(id EntityID, state EntityState) {
	e := s.Entity(id)
	s.index.remove(id, e.Bounds())
	e.State = state
	s.index.add(id, e.Bounds())
}

// Move translates a placement by delta in sheet space.
func (s *Sheet) Move(id EntityID, delta geometry.Vector2) {
	state := s.Entity(id).State
	state.Transform.Transform.Translation = state.Transform.Transform.Translation.Add(delta)
	s.SetState(id, state)
}

// EntityAt returns the entity under a sheet-space point, if any. The
// quadtree narrows the candidates; the precise test inverts each
// candidate's transform and asks the model.
func (s *Sheet) EntityAt(p geometry.Point) (EntityID, bool) {
	halfExtent := 0.0
	for _, e := range s.entities {
		b := e.Bounds()
		if d := b.Max.Minus(b.Min).Magnitude() / 2; d > halfExtent {
			halfExtent = d
		}
	}

	for _, id := range s.index.search(p, halfExtent) {
		e := s.entities[id]
		if e == nil {
			continue
		}
		modelPoint := e.State.Transform.ApplyInverse(p)
		if e.Model.Model().ContainsPoint(modelPoint) {
			return id, true
		}
	}
	return EntityID{}, false
}
