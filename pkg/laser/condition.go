// Package laser holds cut conditions: named, ordered sequences of pass
// specifications that drive toolpath generation.
package laser

import (
	"fmt"
	"strconv"

	"github.com/Clinery1/laser-cam/pkg/gcode"
)

// ConditionID identifies a Condition inside a Store. IDs are unique
// per execution.
type ConditionID int

// Color is a display color with components in 0..1.
type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
}

var White = Color{R: 1, G: 1, B: 1}

// Condition is a named cut recipe: an ordered list of sequence items
// applied in order when generating toolpaths for an entity.
type Condition struct {
	ID       ConditionID `json:"id"`
	Name     string      `json:"name"`
	Color    Color       `json:"color"`
	Sequence Sequence    `json:"sequence"`
}

// SequenceItem is one pass specification. Implementations are GrblConst,
// GrblDyn, and CustomCodes. Zero passes is valid and emits no motion.
type SequenceItem interface {
	// PassCount returns how many times the shape is traced for this step.
	PassCount() int
	// PowerText and FeedText are the display forms of the step's power
	// and feed; numeric for the Grbl variants, user text for CustomCodes.
	PowerText() string
	FeedText() string
	// StepComment describes the step for the program listing. step is
	// 1-based.
	StepComment(step int) string
	// BeginCut emits the blocks that engage the laser, after the rapid
	// move to the loop's first point.
	BeginCut(b *gcode.Builder)
	// EndCut emits the blocks that disengage the laser after the loop.
	EndCut(b *gcode.Builder)

	sequenceItem()
}

// GrblConst fires the laser at constant power (M3).
type GrblConst struct {
	Passes uint16
	Power  uint16
	Feed   uint16
}

// GrblDyn scales laser power with motion speed (M4).
type GrblDyn struct {
	Passes uint16
	Power  uint16
	Feed   uint16
}

// CustomCodes substitutes user-authored G-code fragments verbatim; the
// power and feed strings are opaque text, not numbers.
type CustomCodes struct {
	Passes   uint16
	LaserOn  string
	LaserOff string
	Power    string
	Feed     string
}

func (s GrblConst) PassCount() int    { return int(s.Passes) }
func (s GrblConst) PowerText() string { return strconv.Itoa(int(s.Power)) }
func (s GrblConst) FeedText() string  { return strconv.Itoa(int(s.Feed)) }

func (s GrblConst) StepComment(step int) string {
	return grblStepComment(step, s.Passes, s.Feed, s.Power)
}

func (s GrblConst) BeginCut(b *gcode.Builder) {
	b.CuttingMotion().LaserPower(s.Power).Feed(s.Feed).LaserOnConst()
	b.EndBlock()
}

func (s GrblConst) EndCut(b *gcode.Builder) {
	b.CuttingMotion().LaserPower(0).LaserOff()
	b.EndBlock()
}

func (s GrblDyn) PassCount() int    { return int(s.Passes) }
func (s GrblDyn) PowerText() string { return strconv.Itoa(int(s.Power)) }
func (s GrblDyn) FeedText() string  { return strconv.Itoa(int(s.Feed)) }

func (s GrblDyn) StepComment(step int) string {
	return grblStepComment(step, s.Passes, s.Feed, s.Power)
}

func (s GrblDyn) BeginCut(b *gcode.Builder) {
	b.CuttingMotion().LaserPower(s.Power).Feed(s.Feed).LaserOnDyn()
	b.EndBlock()
}

func (s GrblDyn) EndCut(b *gcode.Builder) {
	b.CuttingMotion().LaserPower(0).LaserOff()
	b.EndBlock()
}

func (s CustomCodes) PassCount() int    { return int(s.Passes) }
func (s CustomCodes) PowerText() string { return s.Power }
func (s CustomCodes) FeedText() string  { return s.Feed }

func (s CustomCodes) StepComment(step int) string {
	return fmt.Sprintf("- Begin sequence %d with %d %s using custom laser codes",
		step, s.Passes, passWord(s.Passes))
}

func (s CustomCodes) BeginCut(b *gcode.Builder) {
	b.CustomCode(s.Power)
	b.EndBlock()
	b.CustomCode(s.Feed)
	b.EndBlock()
	b.CustomCode(s.LaserOn)
	b.EndBlock()
}

func (s CustomCodes) EndCut(b *gcode.Builder) {
	b.CustomCode(s.LaserOff)
	b.EndBlock()
}

func (GrblConst) sequenceItem()   {}
func (GrblDyn) sequenceItem()     {}
func (CustomCodes) sequenceItem() {}

// Power is 0..=1000 for GRBL, so power/10 is a percentage.
func grblStepComment(step int, passes, feed, power uint16) string {
	return fmt.Sprintf("- Begin sequence %d with %d %s at %dmm/min and %.1f%% power",
		step, passes, passWord(passes), feed, float64(power)/10)
}

func passWord(passes uint16) string {
	if passes == 1 {
		return "pass"
	}
	return "passes"
}
