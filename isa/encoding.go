package isa

import (
	"fmt"
)

// MajorOpcodeMask selects the seven opcode bits shared by all 32-bit
// instructions.
const MajorOpcodeMask = 0b1111111

// Encoding identifies the words that belong to an instruction: a word w
// matches when w&Mask == Match.
type Encoding struct {
	Match uint32
	Mask  uint32
}

// OpcodeEncoding returns an encoding that fixes only the major opcode.
func OpcodeEncoding(opcode uint32) Encoding {
	return Encoding{
		Match: opcode & MajorOpcodeMask,
		Mask:  MajorOpcodeMask,
	}
}

func (e Encoding) WithFunct3(funct3 uint32) Encoding {
	return e.with(fixedLayouts[FieldFunct3], funct3)
}

func (e Encoding) WithFunct7(funct7 uint32) Encoding {
	return e.with(fixedLayouts[FieldFunct7], funct7)
}

// WithBits fixes the bit range top..bottom to the given value.
func (e Encoding) WithBits(top, bottom uint, v uint32) Encoding {
	mask := uint32(rangeMask(top, bottom))
	return Encoding{
		Match: e.Match&^mask | (v<<bottom)&mask,
		Mask:  e.Mask | mask,
	}
}

func (e Encoding) with(l Layout, v uint32) Encoding {
	step := l.Steps[0]
	return Encoding{
		Match: e.Match&^uint32(step.Mask) | step.place(v),
		Mask:  e.Mask | uint32(step.Mask),
	}
}

// Matches returns true if word belongs to the encoding.
func (e Encoding) Matches(word uint32) bool {
	return word&e.Mask == e.Match
}

// HasMajorOpcode returns true if the encoding fixes all seven opcode bits,
// which is what lets a decoder partition the coding space by major opcode
// rather than scanning every instruction.
func (e Encoding) HasMajorOpcode() bool {
	return e.Mask&MajorOpcodeMask == MajorOpcodeMask
}

// MajorOpcode returns the low seven bits of Match.
func (e Encoding) MajorOpcode() uint8 {
	return uint8(e.Match & MajorOpcodeMask)
}

// Overlaps returns true if some word matches both encodings.
func (e Encoding) Overlaps(other Encoding) bool {
	common := e.Mask & other.Mask
	return e.Match&common == other.Match&common
}

// Refines returns true if e's mask fixes every bit that other's mask fixes.
func (e Encoding) Refines(other Encoding) bool {
	return e.Mask&other.Mask == other.Mask
}

func (e Encoding) String() string {
	return fmt.Sprintf("match=%#08x mask=%#08x", e.Match, e.Mask)
}
