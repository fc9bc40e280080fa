package isa

import (
	"fmt"
	"strings"
)

// Fields is the result of splitting an instruction word according to a
// format. Fields the format does not define are absent rather than zero, so
// every accessor reports whether its field is present.
type Fields struct {
	format  Format
	present FieldSet

	opcode uint8
	rd     Reg
	funct3 uint8
	rs1    Reg
	rs2    Reg
	funct7 uint8
	imm    int32
}

// Decode splits word into the fields of format f. It never fails: every
// word decodes structurally for any valid format. Decoding with an invalid
// format yields a Fields value with no fields present.
func Decode(word uint32, f Format) Fields {
	ret := Fields{
		format:  f,
		present: f.Fields(),
	}
	fs := ret.present
	if fs.Has(FieldOpcode) {
		ret.opcode = uint8(fixedLayouts[FieldOpcode].extract(word))
	}
	if fs.Has(FieldRd) {
		ret.rd = Reg(fixedLayouts[FieldRd].extract(word))
	}
	if fs.Has(FieldFunct3) {
		ret.funct3 = uint8(fixedLayouts[FieldFunct3].extract(word))
	}
	if fs.Has(FieldRs1) {
		ret.rs1 = Reg(fixedLayouts[FieldRs1].extract(word))
	}
	if fs.Has(FieldRs2) {
		ret.rs2 = Reg(fixedLayouts[FieldRs2].extract(word))
	}
	if fs.Has(FieldFunct7) {
		ret.funct7 = uint8(fixedLayouts[FieldFunct7].extract(word))
	}
	if fs.Has(FieldImm) {
		l := immLayouts[f]
		ret.imm = signExtend(l.extract(word), l.Width)
	}
	return ret
}

func (fs Fields) Format() Format {
	return fs.format
}

// Has returns true if the field is defined by the decoded format.
func (fs Fields) Has(f Field) bool {
	return fs.present.Has(f)
}

func (fs Fields) Opcode() (uint8, bool) {
	return fs.opcode, fs.Has(FieldOpcode)
}

func (fs Fields) Rd() (Reg, bool) {
	return fs.rd, fs.Has(FieldRd)
}

func (fs Fields) Funct3() (uint8, bool) {
	return fs.funct3, fs.Has(FieldFunct3)
}

func (fs Fields) Rs1() (Reg, bool) {
	return fs.rs1, fs.Has(FieldRs1)
}

func (fs Fields) Rs2() (Reg, bool) {
	return fs.rs2, fs.Has(FieldRs2)
}

func (fs Fields) Funct7() (uint8, bool) {
	return fs.funct7, fs.Has(FieldFunct7)
}

// Imm returns the reassembled, sign-extended immediate. For U-format the
// value already sits in the upper 20 bits.
func (fs Fields) Imm() (int32, bool) {
	return fs.imm, fs.Has(FieldImm)
}

// Operand returns the register number bound to the given operand.
func (fs Fields) Operand(o Operand) (Reg, bool) {
	switch o {
	case OperandRd:
		return fs.Rd()
	case OperandRs1:
		return fs.Rs1()
	case OperandRs2:
		return fs.Rs2()
	}
	return 0, false
}

// Values returns the raw field values. Absent fields are zero in the
// result, so callers that care must consult Has.
func (fs Fields) Values() Values {
	return Values{
		Opcode: uint32(fs.opcode),
		Rd:     uint32(fs.rd),
		Funct3: uint32(fs.funct3),
		Rs1:    uint32(fs.rs1),
		Rs2:    uint32(fs.rs2),
		Funct7: uint32(fs.funct7),
		Imm:    fs.imm,
	}
}

func (fs Fields) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%s{", fs.format)
	first := true
	add := func(f Field, s string) {
		if !fs.Has(f) {
			return
		}
		if !first {
			buf.WriteString(" ")
		}
		first = false
		fmt.Fprintf(&buf, "%s=%s", f, s)
	}
	add(FieldOpcode, fmt.Sprintf("%#02x", fs.opcode))
	add(FieldRd, fs.rd.String())
	add(FieldFunct3, fmt.Sprint(fs.funct3))
	add(FieldRs1, fs.rs1.String())
	add(FieldRs2, fs.rs2.String())
	add(FieldFunct7, fmt.Sprint(fs.funct7))
	add(FieldImm, fmt.Sprint(fs.imm))
	buf.WriteByte('}')
	return buf.String()
}

// Values holds raw field values for Encode.
type Values struct {
	Opcode uint32
	Rd     uint32
	Funct3 uint32
	Rs1    uint32
	Rs2    uint32
	Funct7 uint32
	Imm    int32
}

// Encode is the inverse of Decode: it places each field that format f
// defines into an instruction word, ignoring the others. Values wider than
// their field are truncated, and immediate bits the format cannot represent
// (bit 0 for B and J, the low 12 bits for U) are dropped.
func Encode(f Format, v Values) uint32 {
	fs := f.Fields()
	var word uint32
	if fs.Has(FieldOpcode) {
		word |= fixedLayouts[FieldOpcode].place(v.Opcode)
	}
	if fs.Has(FieldRd) {
		word |= fixedLayouts[FieldRd].place(v.Rd)
	}
	if fs.Has(FieldFunct3) {
		word |= fixedLayouts[FieldFunct3].place(v.Funct3)
	}
	if fs.Has(FieldRs1) {
		word |= fixedLayouts[FieldRs1].place(v.Rs1)
	}
	if fs.Has(FieldRs2) {
		word |= fixedLayouts[FieldRs2].place(v.Rs2)
	}
	if fs.Has(FieldFunct7) {
		word |= fixedLayouts[FieldFunct7].place(v.Funct7)
	}
	if fs.Has(FieldImm) {
		word |= immLayouts[f].place(uint32(v.Imm))
	}
	return word
}

// ImmRange returns the smallest and largest immediate the format can
// represent. It returns zeroes for formats without an immediate.
func ImmRange(f Format) (lo, hi int32) {
	if !f.HasImm() {
		return 0, 0
	}
	l := immLayouts[f]
	var align int32 = 1
	switch f {
	case FormatB, FormatJ:
		align = 2
	case FormatU:
		align = 1 << 12
	}
	if l.Width >= 32 {
		return -1 << 31, (1<<31 - 1) &^ (align - 1)
	}
	return -1 << (l.Width - 1), (1<<(l.Width-1) - 1) &^ (align - 1)
}
