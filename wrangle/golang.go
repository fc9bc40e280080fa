package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/apparentlymart/riscv-dispatch/expr"
	"github.com/apparentlymart/riscv-dispatch/isa"
)

const modulePath = "github.com/apparentlymart/riscv-dispatch"

// generateGo returns the source of a Go file declaring one handler function
// per definition and a dispatch table named Table holding them all. The
// definitions must already have passed dispatch.Build.
func generateGo(pkg string, std isa.Standard, defs isa.Definitions) ([]byte, error) {
	bodies := make([]*expr.Expr, len(defs))
	usesHelpers := false
	for i := range defs {
		body, err := expr.Compile(defs[i].Body)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid body: %w", defs[i].Mnemonic, err)
		}
		bodies[i] = body
		// Bodies only name operands, so a qualified name can only be a
		// helper call.
		if strings.Contains(body.GoSource("expr"), "expr.") {
			usesHelpers = true
		}
	}
	funcNames := execFuncNames(defs)

	var w bytes.Buffer
	w.WriteString("// Code generated by wrangle; DO NOT EDIT.\n\n")
	fmt.Fprintf(&w, "package %s\n\n", pkg)
	w.WriteString("import (\n")
	fmt.Fprintf(&w, "\t%q\n", modulePath+"/dispatch")
	if usesHelpers {
		fmt.Fprintf(&w, "\t%q\n", modulePath+"/expr")
	}
	fmt.Fprintf(&w, "\t%q\n", modulePath+"/isa")
	w.WriteString(")\n\n")

	fmt.Fprintf(&w, "// Table dispatches the %s instructions.\n", std)
	w.WriteString("var Table = dispatch.MustNewTable(\n")
	for i := range defs {
		generateGoEntry(&w, &defs[i], funcNames[i])
	}
	w.WriteString(")\n\n")

	for i := range defs {
		generateGoHandler(&w, &defs[i], funcNames[i], bodies[i])
	}

	src, err := format.Source(w.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated invalid Go source: %w", err)
	}
	return src, nil
}

func generateGoEntry(w *bytes.Buffer, def *isa.Definition, funcName string) {
	w.WriteString("\tdispatch.Entry{\n")
	fmt.Fprintf(w, "\t\tMnemonic: %q,\n", def.Mnemonic)
	if def.FullName != "" {
		fmt.Fprintf(w, "\t\tFullName: %q,\n", def.FullName)
	}
	fmt.Fprintf(w, "\t\tFormat: isa.Format%s,\n", def.Format)
	fmt.Fprintf(w, "\t\tEncoding: isa.Encoding{Match: 0x%08x, Mask: 0x%08x},\n", def.Encoding.Match, def.Encoding.Mask)
	if ops := def.Operands.List(); len(ops) > 0 {
		names := make([]string, len(ops))
		for i, op := range ops {
			names[i] = "isa.Operand" + makeIdentTitle(op.String())
		}
		fmt.Fprintf(w, "\t\tOperands: isa.Operands(%s),\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(w, "\t\tHandler: %s,\n", funcName)
	w.WriteString("\t},\n")
}

// generateGoHandler writes a handler with the same behavior as the one
// dispatch.Synthesize builds, reading only the operands the body uses.
func generateGoHandler(w *bytes.Buffer, def *isa.Definition, funcName string, body *expr.Expr) {
	ids := body.Idents()
	needRs1 := def.Operands.Has(isa.OperandRs1) && ids.Has(expr.IdentRs1)
	needRs2 := def.Operands.Has(isa.OperandRs2) && ids.Has(expr.IdentRs2)
	needImm := ids.Has(expr.IdentImm)
	writeback := def.Writeback()

	fmt.Fprintf(w, "// %s implements %s: %s\n", funcName, def.Mnemonic, body)
	fmt.Fprintf(w, "func %s(regs *isa.RegisterFile, pc, word uint32) {\n", funcName)
	if needRs1 || needRs2 || needImm || writeback {
		fmt.Fprintf(w, "\tfs := isa.Decode(word, isa.Format%s)\n", def.Format)
	}
	if needRs1 {
		w.WriteString("\trs1Reg, _ := fs.Rs1()\n")
		w.WriteString("\trs1 := regs.Read(rs1Reg)\n")
	}
	if needRs2 {
		w.WriteString("\trs2Reg, _ := fs.Rs2()\n")
		w.WriteString("\trs2 := regs.Read(rs2Reg)\n")
	}
	if needImm {
		w.WriteString("\timmBits, _ := fs.Imm()\n")
		w.WriteString("\timm := uint32(immBits)\n")
	}
	src := body.GoSource("expr")
	if writeback {
		w.WriteString("\trd, _ := fs.Rd()\n")
		fmt.Fprintf(w, "\tregs.Write(rd, %s)\n", src)
	} else {
		fmt.Fprintf(w, "\t_ = %s\n", src)
	}
	w.WriteString("}\n\n")
}

// execFuncNames returns a distinct handler function name for each
// definition, in order.
func execFuncNames(defs isa.Definitions) []string {
	ret := make([]string, len(defs))
	seen := make(map[string]bool, len(defs))
	for i, def := range defs {
		base := "exec" + makeIdentTitle(def.Mnemonic)
		name := base
		for n := 2; seen[name]; n++ {
			name = fmt.Sprintf("%s_%d", base, n)
		}
		seen[name] = true
		ret[i] = name
	}
	return ret
}
