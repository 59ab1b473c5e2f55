package gcode

import (
	"fmt"
	"strings"
)

// Block is one output line's worth of instructions plus an optional
// trailing comment. Blocks are typically tiny (six or fewer words).
type Block struct {
	ins     []Instruction
	comment string
}

func (b *Block) Push(ins Instruction) {
	b.ins = append(b.ins, ins)
}

func (b *Block) Len() int { return len(b.ins) }

// AddComment sets the block comment. If one is already present the new
// text is appended after a "; " separator.
func (b *Block) AddComment(text string) {
	if b.comment == "" {
		b.comment = text
	} else {
		b.comment += "; " + text
	}
}

// String formats the block: instructions space-separated, then the
// parenthesized comment if present. A block with no instructions but a
// comment formats as just the comment with no leading space.
func (b Block) String() string {
	var sb strings.Builder
	if len(b.ins) > 0 {
		sb.WriteString(b.ins[0].String())
		for _, ins := range b.ins[1:] {
			sb.WriteByte(' ')
			sb.WriteString(ins.String())
		}
		if b.comment != "" {
			fmt.Fprintf(&sb, " (%s)", b.comment)
		}
	} else if b.comment != "" {
		fmt.Fprintf(&sb, "(%s)", b.comment)
	}
	return sb.String()
}
