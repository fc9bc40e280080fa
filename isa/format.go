// Package isa describes the 32-bit RISC-V base instruction formats: which
// fields each format carries, where their bits live, and how immediates are
// reassembled and sign-extended.
package isa

import (
	"strings"
)

// Format is one of the six standard 32-bit instruction encodings. The
// format alone fixes which fields an instruction word carries.
type Format uint8

const (
	FormatInvalid Format = iota
	FormatR              // register-register
	FormatI              // short immediate and loads
	FormatS              // stores
	FormatB              // conditional branches
	FormatU              // long immediate
	FormatJ              // unconditional jumps
)

// Formats lists every valid format, in declaration order.
var Formats = []Format{FormatR, FormatI, FormatS, FormatB, FormatU, FormatJ}

var formatNames = [...]string{
	FormatInvalid: "invalid",
	FormatR:       "R",
	FormatI:       "I",
	FormatS:       "S",
	FormatB:       "B",
	FormatU:       "U",
	FormatJ:       "J",
}

func (f Format) String() string {
	if int(f) >= len(formatNames) {
		return formatNames[FormatInvalid]
	}
	return formatNames[f]
}

// Valid returns true if f is one of the six standard formats.
func (f Format) Valid() bool {
	return f > FormatInvalid && f <= FormatJ
}

// ParseFormat accepts a single format letter in either case, returning
// FormatInvalid for anything else.
func ParseFormat(s string) Format {
	s = strings.ToUpper(s)
	for _, f := range Formats {
		if formatNames[f] == s {
			return f
		}
	}
	return FormatInvalid
}

// Field identifies one of the named bit fields of an instruction word.
type Field uint8

const (
	FieldOpcode Field = iota
	FieldRd
	FieldFunct3
	FieldRs1
	FieldRs2
	FieldFunct7
	FieldImm

	numFields
)

var fieldNames = [...]string{
	FieldOpcode: "opcode",
	FieldRd:     "rd",
	FieldFunct3: "funct3",
	FieldRs1:    "rs1",
	FieldRs2:    "rs2",
	FieldFunct7: "funct7",
	FieldImm:    "imm",
}

func (f Field) String() string {
	if f >= numFields {
		return "invalid"
	}
	return fieldNames[f]
}

// FieldSet is a set of fields.
type FieldSet uint8

func fieldSet(fields ...Field) FieldSet {
	var s FieldSet
	for _, f := range fields {
		s |= 1 << f
	}
	return s
}

func (s FieldSet) Has(f Field) bool {
	return s&(1<<f) != 0
}

func (s FieldSet) String() string {
	var buf strings.Builder
	buf.WriteByte('{')
	first := true
	for f := Field(0); f < numFields; f++ {
		if !s.Has(f) {
			continue
		}
		if !first {
			buf.WriteString(", ")
		}
		first = false
		buf.WriteString(f.String())
	}
	buf.WriteByte('}')
	return buf.String()
}

// The fixed fields sit at the same position in every format that has them.
var fixedLayouts = [...]Layout{
	FieldOpcode: MustParseLayout("6:0"),
	FieldRd:     MustParseLayout("11:7"),
	FieldFunct3: MustParseLayout("14:12"),
	FieldRs1:    MustParseLayout("19:15"),
	FieldRs2:    MustParseLayout("24:20"),
	FieldFunct7: MustParseLayout("31:25"),
}

var immLayouts = [...]Layout{
	FormatI: MustParseLayout("31:20"),
	FormatS: MustParseLayout("31:25[11:5],11:7[4:0]"),
	FormatB: MustParseLayout("31:25[12|10:5],11:7[4:1|11]"),
	FormatU: MustParseLayout("31:12[31:12]"),
	FormatJ: MustParseLayout("31:12[20|10:1|11|19:12]"),
}

var formatFields = [...]FieldSet{
	FormatR: fieldSet(FieldOpcode, FieldRd, FieldFunct3, FieldRs1, FieldRs2, FieldFunct7),
	FormatI: fieldSet(FieldOpcode, FieldRd, FieldFunct3, FieldRs1, FieldImm),
	FormatS: fieldSet(FieldOpcode, FieldFunct3, FieldRs1, FieldRs2, FieldImm),
	FormatB: fieldSet(FieldOpcode, FieldFunct3, FieldRs1, FieldRs2, FieldImm),
	FormatU: fieldSet(FieldOpcode, FieldRd, FieldImm),
	FormatJ: fieldSet(FieldOpcode, FieldRd, FieldImm),
}

// Fields returns the set of fields present in the format.
func (f Format) Fields() FieldSet {
	if !f.Valid() {
		return 0
	}
	return formatFields[f]
}

// Operands returns the register operands the format makes available.
func (f Format) Operands() OperandSet {
	fs := f.Fields()
	var ret OperandSet
	if fs.Has(FieldRd) {
		ret = ret.Add(OperandRd)
	}
	if fs.Has(FieldRs1) {
		ret = ret.Add(OperandRs1)
	}
	if fs.Has(FieldRs2) {
		ret = ret.Add(OperandRs2)
	}
	return ret
}

// HasImm returns true if the format carries an immediate.
func (f Format) HasImm() bool {
	return f.Fields().Has(FieldImm)
}

// Layout returns where the given field lives for this format, or false if
// the format does not have that field.
func (f Format) Layout(field Field) (Layout, bool) {
	if !f.Fields().Has(field) {
		return Layout{}, false
	}
	if field == FieldImm {
		return immLayouts[f], true
	}
	return fixedLayouts[field], true
}
