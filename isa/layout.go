package isa

import (
	"fmt"
	"strconv"
	"strings"
)

func rangeMask(top, bottom uint) bits32 {
	return bits32((uint64(1) << (top + 1)) - (uint64(1) << bottom))
}

// DecodeStep is a single "mask, then shift" operation. The results of all of
// the steps for a field can be bitwise-ORed together to produce the field's
// raw value.
type DecodeStep struct {
	Mask       bits32
	RightShift int
}

func (s DecodeStep) String() string {
	switch {
	case s.RightShift == 0:
		return fmt.Sprintf("(inst & %s)", s.Mask.String())
	case s.RightShift < 0:
		return fmt.Sprintf("(inst & %s) << %d", s.Mask.String(), -s.RightShift)
	default:
		return fmt.Sprintf("(inst & %s) >> %d", s.Mask.String(), s.RightShift)
	}
}

func (s DecodeStep) extract(word uint32) uint32 {
	v := word & uint32(s.Mask)
	if s.RightShift < 0 {
		return v << uint(-s.RightShift)
	}
	return v >> uint(s.RightShift)
}

// place is the inverse of extract: it takes a field value and returns the
// bits this step contributes to an instruction word.
func (s DecodeStep) place(v uint32) uint32 {
	if s.RightShift < 0 {
		return (v >> uint(-s.RightShift)) & uint32(s.Mask)
	}
	return (v << uint(s.RightShift)) & uint32(s.Mask)
}

// Layout describes where a field's bits live in an instruction word.
type Layout struct {
	Steps []DecodeStep

	// Width is the number of bits in the decoded value, counting from bit
	// zero of the result even when the lowest bits are never filled.
	Width int
}

func (l Layout) extract(word uint32) uint32 {
	var raw uint32
	for _, step := range l.Steps {
		raw |= step.extract(word)
	}
	return raw
}

func (l Layout) place(v uint32) uint32 {
	var word uint32
	for _, step := range l.Steps {
		word |= step.place(v)
	}
	return word
}

// ParseLayout deals with strings like those in the riscv-opcodes "operands"
// table and normalizes them to a sequence of decode steps.
//
// A plain range like "19:15" is a right-justified field. A range followed by
// a bracketed list like "31:25[12|10:5]" scatters consecutive source bits
// into the listed destination ranges, top first.
func ParseLayout(raw string) (Layout, error) {
	var ret Layout
	for _, rawPart := range strings.Split(raw, ",") {
		brack := strings.IndexByte(rawPart, '[')
		if brack == -1 {
			top, bottom, err := parseBitRange(rawPart)
			if err != nil {
				return Layout{}, err
			}
			ret.Steps = append(ret.Steps, DecodeStep{
				Mask:       rangeMask(top, bottom),
				RightShift: int(bottom),
			})
			ret.Width = max(ret.Width, int(top-bottom)+1)
			continue
		}

		rawSrc, rawDests := partition(rawPart, "[")
		if !strings.HasSuffix(rawDests, "]") {
			return Layout{}, fmt.Errorf("unclosed bracket in %q", rawPart)
		}
		rawDests = rawDests[:len(rawDests)-1]

		srcTop, srcBottom, err := parseBitRange(rawSrc)
		if err != nil {
			return Layout{}, err
		}

		// The next concat picks up where the previous one left off, so
		// srcTop moves along by the width of each destination range.
		for _, rawConcat := range strings.Split(rawDests, "|") {
			destTop, destBottom, err := parseBitRange(rawConcat)
			if err != nil {
				return Layout{}, err
			}
			width := destTop - destBottom
			if width > srcTop || srcTop-width < srcBottom {
				return Layout{}, fmt.Errorf("destination bits %q overrun source range %q", rawDests, rawSrc)
			}
			stepBottom := srcTop - width

			ret.Steps = append(ret.Steps, DecodeStep{
				Mask:       rangeMask(srcTop, stepBottom),
				RightShift: int(stepBottom) - int(destBottom),
			})
			ret.Width = max(ret.Width, int(destTop)+1)

			if stepBottom == 0 {
				break
			}
			srcTop = stepBottom - 1
		}
	}
	if len(ret.Steps) == 0 {
		return Layout{}, fmt.Errorf("empty layout %q", raw)
	}
	return ret, nil
}

// MustParseLayout is like ParseLayout but panics on error. It is intended
// for the fixed layout tables.
func MustParseLayout(raw string) Layout {
	l, err := ParseLayout(raw)
	if err != nil {
		panic(fmt.Sprintf("invalid layout %q: %s", raw, err))
	}
	return l
}

func parseBitRange(raw string) (top, bottom uint, err error) {
	rawTop, rawBottom := partition(raw, ":")
	if rawBottom == "" {
		rawBottom = rawTop
	}
	t, err := strconv.ParseUint(strings.TrimSpace(rawTop), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid bit number in %q", raw)
	}
	b, err := strconv.ParseUint(strings.TrimSpace(rawBottom), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid bit number in %q", raw)
	}
	if t > 31 || b > t {
		return 0, 0, fmt.Errorf("invalid bit range %q", raw)
	}
	return uint(t), uint(b), nil
}

func partition(s string, sep string) (l, r string) {
	idx := strings.Index(s, sep)
	if idx == -1 {
		return s, ""
	}
	return s[:idx], s[idx+len(sep):]
}
