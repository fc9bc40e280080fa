// Package defs loads instruction definitions from whitespace-separated
// tables, and carries the built-in RV32 definitions.
package defs

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/apparentlymart/riscv-dispatch/isa"
)

//go:embed data/rv32.defs
var baseDefs []byte

//go:embed data/fullnames
var baseFullNames []byte

// ParseError describes a bad line in a definitions table.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Base returns the built-in RV32I and RV32M definitions, with their full
// names filled in.
func Base() isa.Definitions {
	defs, err := Load(bytes.NewReader(baseDefs))
	if err != nil {
		panic(fmt.Sprintf("invalid built-in definitions: %s", err))
	}
	names, err := LoadFullNames(bytes.NewReader(baseFullNames))
	if err != nil {
		panic(fmt.Sprintf("invalid built-in full names: %s", err))
	}
	return WithFullNames(defs, names)
}

// LoadFile is Load for a named file.
func LoadFile(filename string) (isa.Definitions, error) {
	r, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Load(r)
}

// Load reads a definitions table. Each non-blank line, once any "#"
// comment is removed, describes one instruction:
//
//	add  6..0=0x33 14..12=0 31..25=0  r  rd,rs1,rs2  rv32i  : rs1 + rs2
//
// That is a mnemonic, one or more hi..lo=value match specs, a format
// letter, the operand list ("-" for none), any number of standards, and
// after the first colon the body.
//
// Load reads the whole table even after finding a bad line, and returns
// every problem found, each as a *ParseError.
func Load(r io.Reader) (isa.Definitions, error) {
	var ret isa.Definitions
	var errs []error

	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(trimComments(sc.Text()))
		if line == "" {
			continue
		}
		def, err := parseDefinition(line)
		if err != nil {
			errs = append(errs, &ParseError{Line: lineNum, Err: err})
			continue
		}
		ret = append(ret, def)
	}
	if err := sc.Err(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return ret, nil
}

func parseDefinition(line string) (isa.Definition, error) {
	head, body := partition(line, ":")
	body = strings.TrimSpace(body)
	if body == "" {
		return isa.Definition{}, fmt.Errorf("missing body")
	}

	fields := strings.Fields(head)
	if len(fields) < 3 {
		return isa.Definition{}, fmt.Errorf("expected a mnemonic, match specs, format and operands before the body")
	}
	def := isa.Definition{
		Mnemonic:  fields[0],
		Body:      body,
		Standards: make(isa.Standards),
	}
	fields = fields[1:]

	// The match specs run until the first field that doesn't start with a
	// digit, which is the format.
	for len(fields) > 0 && unicode.IsDigit(rune(fields[0][0])) {
		enc, err := parseMatchSpec(def.Encoding, fields[0])
		if err != nil {
			return isa.Definition{}, err
		}
		def.Encoding = enc
		fields = fields[1:]
	}
	if def.Encoding.Mask == 0 {
		return isa.Definition{}, fmt.Errorf("%s has no match specs", def.Mnemonic)
	}

	if len(fields) < 2 {
		return isa.Definition{}, fmt.Errorf("%s needs a format and an operand list", def.Mnemonic)
	}
	def.Format = isa.ParseFormat(fields[0])
	if !def.Format.Valid() {
		return isa.Definition{}, fmt.Errorf("%s has unknown format %q", def.Mnemonic, fields[0])
	}
	ops, err := isa.ParseOperandSet(fields[1])
	if err != nil {
		return isa.Definition{}, fmt.Errorf("%s: %w", def.Mnemonic, err)
	}
	def.Operands = ops

	// Any remaining fields are the standards the instruction belongs to.
	for _, raw := range fields[2:] {
		std := isa.ParseStandard(raw)
		if std == isa.Invalid {
			return isa.Definition{}, fmt.Errorf("%s has unknown standard %q", def.Mnemonic, raw)
		}
		def.Standards.Add(std)
		def.Standards.Add(std.Base())
	}

	return def, nil
}

// LoadFullNames reads a table of mnemonics and their quoted full names.
func LoadFullNames(r io.Reader) (map[string]string, error) {
	ret := make(map[string]string)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := trimComments(sc.Text())
		quot := strings.IndexRune(line, '"')
		if quot < 0 {
			continue
		}
		mnem := strings.TrimSpace(line[:quot])
		str := line[quot+1:]
		quot = strings.IndexRune(str, '"')
		if quot >= 0 {
			str = str[:quot]
		}

		ret[mnem] = strings.TrimSpace(str)
	}

	return ret, sc.Err()
}

// LoadFullNamesFile is LoadFullNames for a named file.
func LoadFullNamesFile(filename string) (map[string]string, error) {
	r, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return LoadFullNames(r)
}

// WithFullNames returns a copy of defs with full names taken from names
// wherever it has one.
func WithFullNames(defs isa.Definitions, names map[string]string) isa.Definitions {
	ret := make(isa.Definitions, len(defs))
	copy(ret, defs)
	for i := range ret {
		if name, ok := names[ret[i].Mnemonic]; ok {
			ret[i].FullName = name
		}
	}
	return ret
}

func trimComments(line string) string {
	hash := strings.IndexByte(line, '#')
	if hash == -1 {
		return line
	}
	return line[:hash]
}

func partition(s string, sep string) (l, r string) {
	idx := strings.Index(s, sep)
	if idx == -1 {
		return s, ""
	}
	return s[:idx], s[idx+len(sep):]
}

// parseMatchSpec adds a spec like "14..12=0x5" to enc.
func parseMatchSpec(enc isa.Encoding, rawSpec string) (isa.Encoding, error) {
	rawRng, rawWant := partition(rawSpec, "=")
	want, err := strconv.ParseUint(rawWant, 0, 32)
	if err != nil {
		return enc, fmt.Errorf("invalid value in match spec %q", rawSpec)
	}
	rawEnd, rawStart := partition(rawRng, "..")
	if rawStart == "" {
		rawStart = rawEnd
	}
	start, err := strconv.ParseUint(rawStart, 10, 64)
	if err != nil {
		return enc, fmt.Errorf("invalid bit range in match spec %q", rawSpec)
	}
	end, err := strconv.ParseUint(rawEnd, 10, 64)
	if err != nil {
		return enc, fmt.Errorf("invalid bit range in match spec %q", rawSpec)
	}
	if end > 31 || start > end {
		return enc, fmt.Errorf("invalid bit range in match spec %q", rawSpec)
	}
	if width := end - start + 1; width < 32 && want >= 1<<width {
		return enc, fmt.Errorf("value in match spec %q does not fit in %d bits", rawSpec, width)
	}
	return enc.WithBits(uint(end), uint(start), uint32(want)), nil
}
