package sheet

import (
	"fmt"

	"github.com/Clinery1/laser-cam/pkg/gcode"
	"github.com/Clinery1/laser-cam/pkg/geometry"
	"github.com/Clinery1/laser-cam/pkg/laser"
	"github.com/Clinery1/laser-cam/pkg/model"
)

// Gcode generates the program for the whole sheet: the setup header, a
// sheet comment with the generation timestamp, every entity in
// placement order, a rapid return to the origin, and the program-end
// block. Conditions are resolved against the given store; an entity
// referencing a missing condition panics, since referential integrity
// is the owning layer's job.
func (s *Sheet) Gcode(conditions *laser.Store) string {
	b := gcode.NewBuilder()
	b.DefaultHeader()
	b.CommentBlock(fmt.Sprintf("Sheet `%s` generated %s",
		s.Name, s.now().Format("2006-01-02 15:04:05")))

	for _, e := range s.Entities() {
		cond := conditions.Get(e.State.Condition)
		GenerateModel(b, e.Model.Model(), e.State.Transform, cond)
	}

	b.RapidMotion().X(0).Y(0).Comment("return to origin")
	b.EndBlock()

	return b.Finish()
}

// GenerateModel emits the toolpath for one placed model under one cut
// condition. For each sequence item, in order, the shape's loops are
// traced PassCount times: a rapid move to the loop's first transformed
// point, the item's laser-engage blocks, one cutting move per
// remaining point, then the laser-disengage blocks. A shape with no
// loops or an item with zero passes emits no motion.
func GenerateModel(b *gcode.Builder, m *model.Model, et geometry.EntityTransform, cond *laser.Condition) {
	b.CommentBlock(fmt.Sprintf("Start model `%s` with laser condition `%s` and %d sequence items",
		m.Name(), cond.Name, len(cond.Sequence)))

	for i, item := range cond.Sequence {
		b.CommentBlock(item.StepComment(i + 1))

		for pass := 0; pass < item.PassCount(); pass++ {
			b.CommentBlock(fmt.Sprintf("-- Begin pass %d", pass+1))
			generateLoops(b, m.Shape(), et, item)
		}
	}

	b.CommentBlock(fmt.Sprintf("End model `%s`", m.Name()))
}

// generateLoops walks every loop of the shape in its natural
// region-then-holes order. The stored rings already exclude a
// duplicated start point, and the path is driven by the ring points
// only.
func generateLoops(b *gcode.Builder, shape *model.Shape, et geometry.EntityTransform, item laser.SequenceItem) {
	for n, loop := range shape.Loops() {
		if len(loop) == 0 {
			continue
		}
		b.CommentBlock(fmt.Sprintf("--- Start line %d", n))

		start := et.Apply(loop[0])
		b.RapidMotion().X(start.X).Y(start.Y)
		b.EndBlock()

		item.BeginCut(b)

		for _, p := range loop[1:] {
			tp := et.Apply(p)
			b.CuttingMotion().X(tp.X).Y(tp.Y)
			b.EndBlock()
		}

		item.EndCut(b)
	}
}
