package dispatch

import (
	"errors"
	"fmt"

	"github.com/apparentlymart/riscv-dispatch/expr"
	"github.com/apparentlymart/riscv-dispatch/isa"
)

// Handler decodes, binds, evaluates and writes back one instruction word.
// Its only effect is on the given register file, so the same handler can
// run concurrently against different register files.
type Handler func(regs *isa.RegisterFile, pc, word uint32)

// Validate checks a single definition, returning every problem it finds.
// Each returned error wraps one of the package's sentinel errors.
func Validate(def *isa.Definition) []error {
	_, errs := check(def)
	return errs
}

func check(def *isa.Definition) (*expr.Expr, []error) {
	var errs []error

	if !def.Format.Valid() {
		// Nothing else about the definition can be judged without a layout.
		return nil, []error{fmt.Errorf("%w %q", ErrInvalidFormat, def.Format)}
	}

	avail := def.Format.Operands()
	for _, o := range def.Operands.List() {
		if avail.Has(o) {
			continue
		}
		if o == isa.OperandRd {
			// Declaring rd is what asks for a writeback, so for a format
			// without rd this is both an unavailable operand and an
			// impossible writeback.
			errs = append(errs, fmt.Errorf("%w: %w: %s has no rd", ErrWritebackWithoutRd, ErrOperandNotInFormat, def.Format))
			continue
		}
		errs = append(errs, fmt.Errorf("%w: %s has no %s", ErrOperandNotInFormat, def.Format, o))
	}

	if !def.Encoding.HasMajorOpcode() {
		errs = append(errs, fmt.Errorf("%w: %s", ErrMissingOpcode, def.Encoding))
	}
	if def.Encoding.Match&^def.Encoding.Mask != 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidEncoding, def.Encoding))
	}

	body, err := expr.Compile(def.Body)
	if err != nil {
		errs = append(errs, fmt.Errorf("%w %q: %w", ErrInvalidBody, def.Body, err))
		return nil, errs
	}

	idents := body.Idents()
	if idents.Has(expr.IdentRd) {
		errs = append(errs, ErrReadsRd)
	}
	for _, src := range []struct {
		id expr.Ident
		op isa.Operand
	}{
		{expr.IdentRs1, isa.OperandRs1},
		{expr.IdentRs2, isa.OperandRs2},
	} {
		if idents.Has(src.id) && !def.Operands.Has(src.op) {
			errs = append(errs, fmt.Errorf("%w %s", ErrUndeclaredOperand, src.op))
		}
	}
	if idents.Has(expr.IdentImm) && !def.Format.HasImm() {
		errs = append(errs, ErrNoImmediate)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return body, nil
}

// Synthesize returns the handler for a definition, or an error joining
// everything Validate would report.
//
// The handler decodes the word with the definition's format, binds the
// declared operands, evaluates the body and then, only if rd is declared,
// writes the result to rd. The write is the last thing it does.
func Synthesize(def *isa.Definition) (Handler, error) {
	body, errs := check(def)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return makeHandler(def.Format, def.Operands, body), nil
}

func makeHandler(format isa.Format, ops isa.OperandSet, body *expr.Expr) Handler {
	return func(regs *isa.RegisterFile, pc, word uint32) {
		b := Bind(isa.Decode(word, format), ops, regs, pc)
		v := body.Eval(&b.Env)
		if b.Writeback {
			regs.Write(b.Dest, v)
		}
	}
}
