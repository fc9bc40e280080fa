package dispatch

import (
	"github.com/apparentlymart/riscv-dispatch/expr"
	"github.com/apparentlymart/riscv-dispatch/isa"
)

// Binding is everything a handler needs to evaluate a body: the values of
// the source operands and the immediate, and where the result goes.
type Binding struct {
	Env expr.Env

	// Dest is the register named by rd. It is meaningful only when
	// Writeback is set, and has not been written yet.
	Dest      isa.Reg
	Writeback bool
}

// Bind resolves the declared operands of a decoded instruction. Source
// registers are read here, before any body runs, and only if declared.
// The immediate is bound whenever the format carries one.
//
// Bind does not check that the operands exist in the format; a declared
// operand the format lacks is simply left unbound. Validate rejects such
// definitions before any handler is made.
func Bind(fs isa.Fields, ops isa.OperandSet, regs *isa.RegisterFile, pc uint32) Binding {
	b := Binding{
		Env: expr.Env{PC: pc},
	}
	if ops.Has(isa.OperandRs1) {
		if r, ok := fs.Rs1(); ok {
			b.Env.Rs1 = regs.Read(r)
		}
	}
	if ops.Has(isa.OperandRs2) {
		if r, ok := fs.Rs2(); ok {
			b.Env.Rs2 = regs.Read(r)
		}
	}
	if imm, ok := fs.Imm(); ok {
		b.Env.Imm = uint32(imm)
	}
	if ops.Has(isa.OperandRd) {
		if r, ok := fs.Rd(); ok {
			b.Dest = r
			b.Writeback = true
		}
	}
	return b
}
