// Package expr implements the small expression language used for the
// semantic bodies of instruction definitions.
//
// A body is written in Go expression syntax over the names rs1, rs2, imm
// and pc. All arithmetic is on 32-bit unsigned values and wraps around.
// Comparisons yield 1 or 0 and compare unsigned. The functions sra, slt,
// div and rem are the signed operations, mulh, mulhsu and mulhu give the
// high word of a product, and sext sign-extends. Shift amounts use their
// low five bits, and division by zero follows the RISC-V M extension.
package expr

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
)

// Ident is one of the names a body may refer to.
type Ident uint8

const (
	IdentRs1 Ident = iota
	IdentRs2
	IdentImm
	IdentPC

	// IdentRd is recognized only so that a reference to it can be
	// reported. Nothing ever binds it.
	IdentRd

	numIdents
)

var identNames = [...]string{
	IdentRs1: "rs1",
	IdentRs2: "rs2",
	IdentImm: "imm",
	IdentPC:  "pc",
	IdentRd:  "rd",
}

func (id Ident) String() string {
	if id >= numIdents {
		return "invalid"
	}
	return identNames[id]
}

func lookupIdent(name string) (Ident, bool) {
	for i, n := range identNames {
		if n == name {
			return Ident(i), true
		}
	}
	return 0, false
}

// IdentSet is a set of names.
type IdentSet uint8

func (s IdentSet) Has(id Ident) bool {
	return s&(1<<id) != 0
}

func (s IdentSet) add(id Ident) IdentSet {
	return s | 1<<id
}

// List returns the names in s in declaration order.
func (s IdentSet) List() []Ident {
	var ret []Ident
	for id := Ident(0); id < numIdents; id++ {
		if s.Has(id) {
			ret = append(ret, id)
		}
	}
	return ret
}

// Env holds the values bound to the names of a body while it is evaluated.
// Imm holds the two's complement bits of the sign-extended immediate.
type Env struct {
	Rs1 uint32
	Rs2 uint32
	Imm uint32
	PC  uint32
}

func (env *Env) get(id Ident) uint32 {
	switch id {
	case IdentRs1:
		return env.Rs1
	case IdentRs2:
		return env.Rs2
	case IdentImm:
		return env.Imm
	case IdentPC:
		return env.PC
	}
	return 0
}

// Expr is a compiled body. It is immutable and safe for concurrent use.
type Expr struct {
	src    string
	idents IdentSet
	eval   func(*Env) uint32
	emit   emitter
}

// emitter writes Go source for a term. Terms that are operands of a binary
// operator are emitted with nested set, and then parenthesize themselves
// if they need to.
type emitter func(w *strings.Builder, qual string, nested bool)

type term struct {
	idents IdentSet
	eval   func(*Env) uint32
	emit   emitter
}

// Compile parses and checks src. The result can be evaluated directly or
// turned back into Go source.
func Compile(src string) (*Expr, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("empty expression")
	}
	node, err := parser.ParseExpr(src)
	if err != nil {
		return nil, err
	}
	t, err := compile(node)
	if err != nil {
		return nil, err
	}
	return &Expr{
		src:    src,
		idents: t.idents,
		eval:   t.eval,
		emit:   t.emit,
	}, nil
}

// MustCompile is like Compile but panics if src is invalid.
func MustCompile(src string) *Expr {
	e, err := Compile(src)
	if err != nil {
		panic(fmt.Sprintf("invalid expression %q: %s", src, err))
	}
	return e
}

func (e *Expr) String() string {
	return e.src
}

// Idents returns the set of names the expression refers to.
func (e *Expr) Idents() IdentSet {
	return e.idents
}

// Eval computes the value of the expression for the given bindings.
func (e *Expr) Eval(env *Env) uint32 {
	return e.eval(env)
}

// GoSource returns a Go expression of type uint32 with the same meaning,
// written in terms of variables named rs1, rs2, imm and pc. Helper calls
// are qualified with qual, which may be empty when the code will live in
// this package.
//
// Subexpressions that refer to no names at all are folded to a single
// literal, so the result never contains a constant expression that the Go
// compiler would reject for overflow.
func (e *Expr) GoSource(qual string) string {
	var buf strings.Builder
	e.emit(&buf, qual, false)
	return buf.String()
}

func compile(node ast.Expr) (term, error) {
	t, err := compileNode(node)
	if err != nil {
		return term{}, err
	}
	if t.idents == 0 {
		v := t.eval(&Env{})
		t.emit = literal(v)
		t.eval = func(*Env) uint32 { return v }
	}
	return t, nil
}

func compileNode(node ast.Expr) (term, error) {
	switch n := node.(type) {
	case *ast.ParenExpr:
		return compile(n.X)

	case *ast.BasicLit:
		if n.Kind != token.INT {
			return term{}, errorf(n, "unsupported literal %s", n.Value)
		}
		v, err := strconv.ParseUint(n.Value, 0, 32)
		if err != nil {
			return term{}, errorf(n, "integer literal %s does not fit in 32 bits", n.Value)
		}
		return term{
			eval: func(*Env) uint32 { return uint32(v) },
			emit: literal(uint32(v)),
		}, nil

	case *ast.Ident:
		id, ok := lookupIdent(n.Name)
		if !ok {
			return term{}, errorf(n, "undefined name %q", n.Name)
		}
		name := n.Name
		return term{
			idents: IdentSet(0).add(id),
			eval:   func(env *Env) uint32 { return env.get(id) },
			emit: func(w *strings.Builder, _ string, _ bool) {
				w.WriteString(name)
			},
		}, nil

	case *ast.UnaryExpr:
		x, err := compile(n.X)
		if err != nil {
			return term{}, err
		}
		return unary(n, x)

	case *ast.BinaryExpr:
		x, err := compile(n.X)
		if err != nil {
			return term{}, err
		}
		y, err := compile(n.Y)
		if err != nil {
			return term{}, err
		}
		return binary(n, x, y)

	case *ast.CallExpr:
		return call(n)
	}
	return term{}, errorf(node, "unsupported expression %T", node)
}

func unary(n *ast.UnaryExpr, x term) (term, error) {
	var eval func(*Env) uint32
	switch n.Op {
	case token.ADD:
		return x, nil
	case token.SUB:
		eval = func(env *Env) uint32 { return -x.eval(env) }
	case token.XOR:
		eval = func(env *Env) uint32 { return ^x.eval(env) }
	default:
		return term{}, errorf(n, "unsupported operator %s", n.Op)
	}
	op := n.Op.String()
	return term{
		idents: x.idents,
		eval:   eval,
		emit: func(w *strings.Builder, qual string, nested bool) {
			if nested {
				w.WriteByte('(')
			}
			w.WriteString(op)
			x.emit(w, qual, true)
			if nested {
				w.WriteByte(')')
			}
		},
	}, nil
}

// infixOps are the binary operators that mean the same thing on uint32 in
// Go as they do in a body, and so can be emitted as they are.
var infixOps = map[token.Token]func(a, b uint32) uint32{
	token.ADD:     func(a, b uint32) uint32 { return a + b },
	token.SUB:     func(a, b uint32) uint32 { return a - b },
	token.MUL:     func(a, b uint32) uint32 { return a * b },
	token.AND:     func(a, b uint32) uint32 { return a & b },
	token.OR:      func(a, b uint32) uint32 { return a | b },
	token.XOR:     func(a, b uint32) uint32 { return a ^ b },
	token.AND_NOT: func(a, b uint32) uint32 { return a &^ b },
}

// helperOps are emitted as calls to the helper of the given name.
var helperOps = map[token.Token]struct {
	name string
	fn   func(a, b uint32) uint32
}{
	token.QUO: {"Div", Div},
	token.REM: {"Rem", Rem},
	token.SHL: {"Shl", Shl},
	token.SHR: {"Shr", Shr},
}

var comparisonOps = map[token.Token]func(a, b uint32) bool{
	token.EQL: func(a, b uint32) bool { return a == b },
	token.NEQ: func(a, b uint32) bool { return a != b },
	token.LSS: func(a, b uint32) bool { return a < b },
	token.LEQ: func(a, b uint32) bool { return a <= b },
	token.GTR: func(a, b uint32) bool { return a > b },
	token.GEQ: func(a, b uint32) bool { return a >= b },
}

func binary(n *ast.BinaryExpr, x, y term) (term, error) {
	idents := x.idents | y.idents
	op := n.Op.String()

	if fn, ok := infixOps[n.Op]; ok {
		return term{
			idents: idents,
			eval:   func(env *Env) uint32 { return fn(x.eval(env), y.eval(env)) },
			emit: func(w *strings.Builder, qual string, nested bool) {
				if nested {
					w.WriteByte('(')
				}
				x.emit(w, qual, true)
				fmt.Fprintf(w, " %s ", op)
				y.emit(w, qual, true)
				if nested {
					w.WriteByte(')')
				}
			},
		}, nil
	}

	if h, ok := helperOps[n.Op]; ok {
		fn := h.fn
		return term{
			idents: idents,
			eval:   func(env *Env) uint32 { return fn(x.eval(env), y.eval(env)) },
			emit:   helperCall(h.name, x, y),
		}, nil
	}

	if cmp, ok := comparisonOps[n.Op]; ok {
		return term{
			idents: idents,
			eval:   func(env *Env) uint32 { return Bool(cmp(x.eval(env), y.eval(env))) },
			emit: func(w *strings.Builder, qual string, _ bool) {
				writeQualified(w, qual, "Bool")
				w.WriteByte('(')
				x.emit(w, qual, true)
				fmt.Fprintf(w, " %s ", op)
				y.emit(w, qual, true)
				w.WriteByte(')')
			},
		}, nil
	}

	return term{}, errorf(n, "unsupported operator %s", n.Op)
}

var builtins = map[string]struct {
	helper string
	fn     func(a, b uint32) uint32
}{
	"sra":    {"Sra", Sra},
	"slt":    {"Slt", Slt},
	"sltu":   {"Sltu", Sltu},
	"sext":   {"Sext", Sext},
	"div":    {"Sdiv", Sdiv},
	"rem":    {"Srem", Srem},
	"mulh":   {"Mulh", Mulh},
	"mulhsu": {"Mulhsu", Mulhsu},
	"mulhu":  {"Mulhu", Mulhu},
}

func call(n *ast.CallExpr) (term, error) {
	fun, ok := n.Fun.(*ast.Ident)
	if !ok {
		return term{}, errorf(n, "unsupported call")
	}
	b, ok := builtins[fun.Name]
	if !ok {
		return term{}, errorf(n, "undefined function %q", fun.Name)
	}
	if len(n.Args) != 2 || n.Ellipsis.IsValid() {
		return term{}, errorf(n, "%s takes exactly two arguments", fun.Name)
	}
	x, err := compile(n.Args[0])
	if err != nil {
		return term{}, err
	}
	y, err := compile(n.Args[1])
	if err != nil {
		return term{}, err
	}
	fn := b.fn
	return term{
		idents: x.idents | y.idents,
		eval:   func(env *Env) uint32 { return fn(x.eval(env), y.eval(env)) },
		emit:   helperCall(b.helper, x, y),
	}, nil
}

func helperCall(name string, x, y term) emitter {
	return func(w *strings.Builder, qual string, _ bool) {
		writeQualified(w, qual, name)
		w.WriteByte('(')
		x.emit(w, qual, false)
		w.WriteString(", ")
		y.emit(w, qual, false)
		w.WriteByte(')')
	}
}

func writeQualified(w *strings.Builder, qual, name string) {
	if qual != "" {
		w.WriteString(qual)
		w.WriteByte('.')
	}
	w.WriteString(name)
}

func literal(v uint32) emitter {
	var s string
	if v < 10 {
		s = strconv.FormatUint(uint64(v), 10)
	} else {
		s = fmt.Sprintf("%#x", v)
	}
	return func(w *strings.Builder, _ string, _ bool) {
		w.WriteString(s)
	}
}

func errorf(n ast.Node, format string, args ...any) error {
	return fmt.Errorf("column %d: %s", n.Pos(), fmt.Sprintf(format, args...))
}
