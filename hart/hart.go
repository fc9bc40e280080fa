// Package hart runs instruction words against a dispatch table. A Hart is
// one execution context: it owns its register file and program counter,
// while the table it consults may be shared with any number of others.
package hart

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/apparentlymart/riscv-dispatch/dispatch"
	"github.com/apparentlymart/riscv-dispatch/isa"
)

// ErrIllegalInstruction is wrapped by every IllegalInstructionError, for
// callers that only care about the kind of failure.
var ErrIllegalInstruction = errors.New("illegal instruction")

// IllegalInstructionError reports a word that no table entry matches.
type IllegalInstructionError struct {
	Hart int
	PC   uint32
	Word uint32
}

func (e *IllegalInstructionError) Error() string {
	return fmt.Sprintf("hart %d: illegal instruction %#08x at pc %#08x", e.Hart, e.Word, e.PC)
}

func (e *IllegalInstructionError) Unwrap() error {
	return ErrIllegalInstruction
}

// Hart is a single execution context.
type Hart struct {
	ID   int
	Regs isa.RegisterFile
	PC   uint32

	// Steps counts the instructions executed so far.
	Steps uint64

	table *dispatch.Table
	log   logrus.FieldLogger
}

// New returns a hart with zeroed registers that executes instructions from
// table. A nil logger means the standard logrus logger.
func New(id int, table *dispatch.Table, log logrus.FieldLogger) *Hart {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Hart{
		ID:    id,
		table: table,
		log:   log,
	}
}

// Step executes a single instruction word at the current pc and then
// advances pc to the next word. If no entry matches the word, Step returns
// an *IllegalInstructionError and leaves the hart unchanged.
func (h *Hart) Step(word uint32) error {
	fields := logrus.Fields{
		"hart": h.ID,
		"pc":   fmt.Sprintf("%#08x", h.PC),
		"word": fmt.Sprintf("%#08x", word),
	}

	e, ok := h.table.Lookup(word)
	if !ok {
		h.log.WithFields(fields).Error("Illegal instruction")
		return &IllegalInstructionError{Hart: h.ID, PC: h.PC, Word: word}
	}

	fields["mnemonic"] = e.Mnemonic
	h.log.WithFields(fields).Debug("Hart step")

	e.Execute(&h.Regs, h.PC, word)
	h.PC += 4
	h.Steps++
	return nil
}

// Run fetches little-endian words from image, which is loaded at address
// base, and executes them starting from the current pc. It stops without
// error when pc leaves the image or after limit instructions, if limit is
// positive, and returns the number of instructions it executed.
func (h *Hart) Run(image []byte, base uint32, limit int) (int, error) {
	n := 0
	for limit <= 0 || n < limit {
		if h.PC < base {
			break
		}
		off := uint64(h.PC - base)
		if off+4 > uint64(len(image)) {
			break
		}
		word := binary.LittleEndian.Uint32(image[off:])
		if err := h.Step(word); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Reset zeroes the registers and the step count and moves pc to the given
// address.
func (h *Hart) Reset(pc uint32) {
	h.Regs = isa.RegisterFile{}
	h.PC = pc
	h.Steps = 0
}
