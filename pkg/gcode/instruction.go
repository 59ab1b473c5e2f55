// Package gcode assembles G-code programs from typed instruction
// tokens grouped into blocks, one block per output line.
package gcode

import (
	"fmt"
)

// Instruction is a single G-code word. The set of implementations is
// closed; coordinates format with six decimals, integer words format
// as a letter with no decimal point, and Custom text passes through
// verbatim.
type Instruction interface {
	fmt.Stringer
	instruction()
}

// G is a preparatory (motion/setup) code.
type G uint16

// M is a miscellaneous (machine control) code.
type M uint16

// S is a spindle speed word; GRBL repurposes it for laser power 0..=1000.
type S uint16

// F is a feed rate word, mm/min for GRBL.
type F uint16

// X is an absolute X coordinate in mm.
type X float64

// Y is an absolute Y coordinate in mm.
type Y float64

// Custom is a raw user-authored G-code fragment inserted verbatim.
type Custom string

func (n G) String() string      { return fmt.Sprintf("G%d", uint16(n)) }
func (n M) String() string      { return fmt.Sprintf("M%d", uint16(n)) }
func (n S) String() string      { return fmt.Sprintf("S%d", uint16(n)) }
func (n F) String() string      { return fmt.Sprintf("F%d", uint16(n)) }
func (v X) String() string      { return fmt.Sprintf("X%.6f", float64(v)) }
func (v Y) String() string      { return fmt.Sprintf("Y%.6f", float64(v)) }
func (c Custom) String() string { return string(c) }

func (G) instruction()      {}
func (M) instruction()      {}
func (S) instruction()      {}
func (F) instruction()      {}
func (X) instruction()      {}
func (Y) instruction()      {}
func (Custom) instruction() {}
