package isa

import (
	"fmt"
	"sort"
	"strings"
)

// Extension is the single-letter name of an ISA extension.
type Extension byte

// Size is the base integer register width, XLEN.
type Size uint8

// Standard combines a base size with an extension, like RV32I or RV64M.
// A Standard with no extension stands for "any extension of that size".
type Standard uint16

// Standards is the set of standards an instruction definition belongs to.
type Standards map[Standard]struct{}

const (
	RVInvalid Size = 0
	RV32      Size = 32
	RV64      Size = 64
	RV128     Size = 128
)

const (
	ExtInvalid Extension = 0
	ExtI       Extension = 'I' // base integer
	ExtM       Extension = 'M' // multiply and divide
	ExtA       Extension = 'A' // atomic
	ExtC       Extension = 'C' // compressed
)

const (
	Invalid = Standard(0)

	RV32Any = Standard(uint16(RV32))
	RV32I   = Standard(uint16(RV32) | uint16(ExtI)<<8)
	RV32M   = Standard(uint16(RV32) | uint16(ExtM)<<8)

	RV64Any = Standard(uint16(RV64))
	RV64I   = Standard(uint16(RV64) | uint16(ExtI)<<8)
	RV64M   = Standard(uint16(RV64) | uint16(ExtM)<<8)
)

// MakeStandard returns the standard for the given size and extension.
func MakeStandard(size Size, ext Extension) Standard {
	return Standard(uint16(size) | uint16(ext)<<8)
}

// Any returns the standard matching every extension of the size.
func (s Size) Any() Standard {
	return MakeStandard(s, ExtInvalid)
}

func (s Standard) Size() Size {
	return Size(s & 0xff)
}

func (s Standard) Extension() Extension {
	return Extension(s >> 8)
}

func (s Standard) Base() Standard {
	return Standard(s & 0xff)
}

func (s Standard) String() string {
	size := s.Size()
	ext := s.Extension()
	if ext == ExtInvalid {
		return fmt.Sprintf("RV%d", size)
	}
	return fmt.Sprintf("RV%d%c", size, ext)
}

// Of builds a set from the given standards, adding each one's base too so
// that Has(RV32Any) holds for anything in an RV32 standard.
func Of(stds ...Standard) Standards {
	ss := make(Standards, len(stds)*2)
	for _, s := range stds {
		ss.Add(s)
		ss.Add(s.Base())
	}
	return ss
}

func (ss Standards) Has(s Standard) bool {
	_, ok := ss[s]
	return ok
}

func (ss Standards) Add(s Standard) {
	ss[s] = struct{}{}
}

// List returns the standards in ascending order.
func (ss Standards) List() []Standard {
	ssList := make([]Standard, 0, len(ss))
	for s := range ss {
		ssList = append(ssList, s)
	}
	sort.Slice(ssList, func(i, j int) bool {
		return ssList[i] < ssList[j]
	})
	return ssList
}

func (ss Standards) String() string {
	var buf strings.Builder
	for i, s := range ss.List() {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(s.String())
	}
	return buf.String()
}

// ParseStandard parses names like "rv32i" or "rv64" (any extension),
// returning Invalid for anything it does not recognize.
func ParseStandard(s string) Standard {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "rv") {
		return Invalid
	}
	rest := s[2:]
	var bits Size
	switch {
	case strings.HasPrefix(rest, "128"):
		bits, rest = RV128, rest[3:]
	case strings.HasPrefix(rest, "32"):
		bits, rest = RV32, rest[2:]
	case strings.HasPrefix(rest, "64"):
		bits, rest = RV64, rest[2:]
	default:
		return Invalid
	}
	switch len(rest) {
	case 0:
		return bits.Any()
	case 1:
		return MakeStandard(bits, Extension(strings.ToUpper(rest)[0]))
	default:
		return Invalid
	}
}
