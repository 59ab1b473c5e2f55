package gcode

import (
	"strings"
)

// Builder accumulates blocks into a program. Word methods append to an
// internal current block; EndBlock finalizes it and starts a new one.
// Finish may be called exactly once.
type Builder struct {
	blocks   []Block
	current  Block
	finished bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

// DefaultHeader appends the fixed setup block: work offset G54,
// XY plane G17, millimeters G21, absolute positioning G90,
// feed-per-minute mode G94.
func (b *Builder) DefaultHeader() *Builder {
	var block Block
	block.Push(G(54))
	block.Push(G(17))
	block.Push(G(21))
	block.Push(G(90))
	block.Push(G(94))
	b.blocks = append(b.blocks, block)
	return b
}

// RapidMotion appends a G0 rapid positioning word.
func (b *Builder) RapidMotion() *Builder {
	b.current.Push(G(0))
	return b
}

// CuttingMotion appends a G1 linear cutting word.
func (b *Builder) CuttingMotion() *Builder {
	b.current.Push(G(1))
	return b
}

func (b *Builder) X(v float64) *Builder {
	b.current.Push(X(v))
	return b
}

func (b *Builder) Y(v float64) *Builder {
	b.current.Push(Y(v))
	return b
}

// Feed appends a feed rate word. Feed rates are mm/min for GRBL.
func (b *Builder) Feed(feed uint16) *Builder {
	b.current.Push(F(feed))
	return b
}

// LaserPower appends a spindle-speed word carrying the laser power.
// NOTE: laser power is 0..=1000 for GRBL.
func (b *Builder) LaserPower(power uint16) *Builder {
	b.current.Push(S(power))
	return b
}

// LaserOnConst appends M3, laser on at constant power.
func (b *Builder) LaserOnConst() *Builder {
	b.current.Push(M(3))
	return b
}

// LaserOnDyn appends M4, laser power proportional to motion speed.
func (b *Builder) LaserOnDyn() *Builder {
	b.current.Push(M(4))
	return b
}

// LaserOff appends M5.
func (b *Builder) LaserOff() *Builder {
	b.current.Push(M(5))
	return b
}

func (b *Builder) Coolant(on bool) *Builder {
	if on {
		b.current.Push(M(8))
	} else {
		b.current.Push(M(9))
	}
	return b
}

// CustomCode appends a raw G-code fragment to the current block.
func (b *Builder) CustomCode(s string) *Builder {
	b.current.Push(Custom(s))
	return b
}

// Comment adds a comment to the current block.
func (b *Builder) Comment(text string) *Builder {
	b.current.AddComment(text)
	return b
}

// CommentBlock appends a standalone block holding only a comment.
func (b *Builder) CommentBlock(text string) *Builder {
	var block Block
	block.AddComment(text)
	b.blocks = append(b.blocks, block)
	return b
}

// EndBlock finalizes the current block and starts a new one.
func (b *Builder) EndBlock() {
	b.blocks = append(b.blocks, b.current)
	b.current = Block{}
}

// Finish flushes any pending block, appends the mandatory program-end
// block, and returns the formatted program, one block per line. The
// builder is consumed; a second call panics.
func (b *Builder) Finish() string {
	if b.finished {
		panic("gcode: Finish called twice on the same Builder")
	}
	b.finished = true

	if b.current.Len() > 0 {
		b.blocks = append(b.blocks, b.current)
		b.current = Block{}
	}

	var end Block
	end.Push(M(30))
	b.blocks = append(b.blocks, end)

	var sb strings.Builder
	for _, block := range b.blocks {
		sb.WriteString(block.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
