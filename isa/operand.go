package isa

import (
	"fmt"
	"strings"
)

// Operand names one of the register operands an instruction can bind.
type Operand uint8

const (
	OperandRd Operand = iota
	OperandRs1
	OperandRs2

	numOperands
)

var operandNames = [...]string{
	OperandRd:  "rd",
	OperandRs1: "rs1",
	OperandRs2: "rs2",
}

func (o Operand) String() string {
	if o >= numOperands {
		return "invalid"
	}
	return operandNames[o]
}

// Field returns the instruction field that holds the operand's register
// number.
func (o Operand) Field() Field {
	switch o {
	case OperandRd:
		return FieldRd
	case OperandRs1:
		return FieldRs1
	default:
		return FieldRs2
	}
}

// ParseOperand returns the operand with the given name.
func ParseOperand(s string) (Operand, bool) {
	for i, name := range operandNames {
		if name == s {
			return Operand(i), true
		}
	}
	return 0, false
}

// OperandSet is a subset of {rd, rs1, rs2}.
type OperandSet uint8

// Operands builds a set from the given operands.
func Operands(ops ...Operand) OperandSet {
	var s OperandSet
	for _, o := range ops {
		s = s.Add(o)
	}
	return s
}

func (s OperandSet) Has(o Operand) bool {
	return s&(1<<o) != 0
}

func (s OperandSet) Add(o Operand) OperandSet {
	return s | 1<<o
}

func (s OperandSet) Without(o Operand) OperandSet {
	return s &^ (1 << o)
}

// SubsetOf returns true if every operand of s is also in other.
func (s OperandSet) SubsetOf(other OperandSet) bool {
	return s&^other == 0
}

// List returns the operands of s in rd, rs1, rs2 order.
func (s OperandSet) List() []Operand {
	var ret []Operand
	for o := Operand(0); o < numOperands; o++ {
		if s.Has(o) {
			ret = append(ret, o)
		}
	}
	return ret
}

func (s OperandSet) String() string {
	var buf strings.Builder
	buf.WriteByte('{')
	for i, o := range s.List() {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(o.String())
	}
	buf.WriteByte('}')
	return buf.String()
}

// ParseOperandSet parses a comma-separated list like "rd,rs1,rs2". A lone
// "-" or an empty string is the empty set.
func ParseOperandSet(raw string) (OperandSet, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "-" {
		return 0, nil
	}
	var ret OperandSet
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		o, ok := ParseOperand(name)
		if !ok {
			return 0, fmt.Errorf("unknown operand %q", name)
		}
		if ret.Has(o) {
			return 0, fmt.Errorf("operand %q listed twice", name)
		}
		ret = ret.Add(o)
	}
	return ret, nil
}
