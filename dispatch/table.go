// Package dispatch turns instruction definitions into handlers and collects
// them into a read-only table that an interpreter consults for each
// instruction word it fetches.
package dispatch

import (
	"errors"
	"fmt"
	"math/bits"
	"slices"

	"github.com/apparentlymart/riscv-dispatch/isa"
)

// Entry is one row of a dispatch table.
type Entry struct {
	Mnemonic string
	FullName string
	Format   isa.Format
	Encoding isa.Encoding
	Operands isa.OperandSet
	Handler  Handler
}

// Execute runs the entry's handler.
func (e Entry) Execute(regs *isa.RegisterFile, pc, word uint32) {
	e.Handler(regs, pc, word)
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (%s-type %s, %s)", e.Mnemonic, e.Format, e.Operands, e.Encoding)
}

// Table is an immutable, ordered collection of entries with unique
// mnemonics. It has no methods that modify it, so it can be shared freely
// between goroutines.
type Table struct {
	entries    []Entry
	byMnemonic map[string]int

	// byOpcode holds, for each major opcode, the indices of the entries
	// with that opcode, most specific mask first.
	byOpcode [isa.MajorOpcodeMask + 1][]int
}

// Build synthesizes a handler for each definition and collects the results
// into a table, preserving the input order.
//
// Build checks every definition before giving up, so the returned error
// (built with errors.Join) names every problem with every definition, each
// as a *DefinitionError.
func Build(defs isa.Definitions) (*Table, error) {
	var errs []error
	entries := make([]Entry, 0, len(defs))
	for i := range defs {
		def := &defs[i]
		body, problems := check(def)
		if len(problems) > 0 {
			for _, err := range problems {
				errs = append(errs, &DefinitionError{Index: i, Mnemonic: def.Mnemonic, Err: err})
			}
			entries = append(entries, Entry{Mnemonic: def.Mnemonic, Encoding: def.Encoding})
			continue
		}
		entries = append(entries, Entry{
			Mnemonic: def.Mnemonic,
			FullName: def.FullName,
			Format:   def.Format,
			Encoding: def.Encoding,
			Operands: def.Operands,
			Handler:  makeHandler(def.Format, def.Operands, body),
		})
	}

	// Entries for broken definitions are kept as placeholders until here
	// so that duplicate checks can still see them and report indices
	// that match the input.
	t, err := newTable(entries, len(errs) == 0)
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return t, nil
}

// NewTable builds a table from entries that already have handlers, such as
// those in generated code. It applies the same uniqueness and encoding
// checks as Build.
func NewTable(entries []Entry) (*Table, error) {
	return newTable(slices.Clone(entries), true)
}

// MustNewTable is like NewTable but panics if the entries are invalid. It
// is for package-level variables in generated code.
func MustNewTable(entries ...Entry) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(fmt.Sprintf("invalid dispatch table: %s", err))
	}
	return t
}

// newTable takes ownership of entries. When complete is false some entries
// are placeholders without handlers, and only the cross-entry checks are
// run.
func newTable(entries []Entry, complete bool) (*Table, error) {
	t := &Table{
		entries:    entries,
		byMnemonic: make(map[string]int, len(entries)),
	}

	var errs []error
	fail := func(i int, err error) {
		errs = append(errs, &DefinitionError{Index: i, Mnemonic: entries[i].Mnemonic, Err: err})
	}

	for i, e := range entries {
		if complete {
			if e.Handler == nil {
				fail(i, ErrMissingHandler)
			}
			if !e.Encoding.HasMajorOpcode() {
				fail(i, fmt.Errorf("%w: %s", ErrMissingOpcode, e.Encoding))
			}
		}
		if first, exists := t.byMnemonic[e.Mnemonic]; exists {
			fail(i, fmt.Errorf("%w %q, first defined at index %d", ErrDuplicateMnemonic, e.Mnemonic, first))
		} else {
			t.byMnemonic[e.Mnemonic] = i
		}

		if !e.Encoding.HasMajorOpcode() {
			continue
		}
		op := e.Encoding.MajorOpcode()
		for _, j := range t.byOpcode[op] {
			other := entries[j].Encoding
			switch {
			case other == e.Encoding:
				fail(i, fmt.Errorf("%w %s, same as %q", ErrDuplicateEncoding, e.Encoding, entries[j].Mnemonic))
			case other.Mask == e.Encoding.Mask:
				// Same mask but a different match never overlaps.
			case e.Encoding.Overlaps(other) && !e.Encoding.Refines(other) && !other.Refines(e.Encoding):
				// Lookup can only prefer one of two overlapping entries
				// when that one's mask is a superset of the other's.
				fail(i, fmt.Errorf("%w: %s and %q (%s) both match some words", ErrAmbiguousEncoding, e.Encoding, entries[j].Mnemonic, other))
			}
		}
		t.byOpcode[op] = append(t.byOpcode[op], i)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	for op := range t.byOpcode {
		slices.SortStableFunc(t.byOpcode[op], func(a, b int) int {
			return specificity(entries[b].Encoding) - specificity(entries[a].Encoding)
		})
	}
	return t, nil
}

func specificity(e isa.Encoding) int {
	return bits.OnesCount32(e.Mask)
}

// Lookup finds the entry whose encoding matches word. When more than one
// entry matches, the one whose mask fixes the most bits wins. A miss means
// the word is an illegal or unimplemented instruction.
func (t *Table) Lookup(word uint32) (Entry, bool) {
	for _, i := range t.byOpcode[word&isa.MajorOpcodeMask] {
		if t.entries[i].Encoding.Matches(word) {
			return t.entries[i], true
		}
	}
	return Entry{}, false
}

// Entry returns the entry with the given mnemonic.
func (t *Table) Entry(mnemonic string) (Entry, bool) {
	i, ok := t.byMnemonic[mnemonic]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in table order.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}
