package isa

// Definition is one declarative instruction description: which format it
// uses, which register operands it binds, the words it matches and the
// semantic body to evaluate. Definitions are built once, when the
// definitions table is loaded, and are not modified afterwards.
type Definition struct {
	Mnemonic string
	FullName string
	Format   Format
	Operands OperandSet
	Encoding Encoding

	// Body is an expression over the bound operand names. Its value is
	// written to rd when rd is among the operands, and discarded otherwise.
	Body string

	Standards Standards
}

// Writeback returns true if a handler for d stores the body's value into rd.
func (d *Definition) Writeback() bool {
	return d.Operands.Has(OperandRd)
}

// Definitions is an ordered list of instruction definitions.
type Definitions []Definition

// Select returns the definitions that belong to the given standard, in
// their original order. A definition without any standards belongs to all
// of them.
func (ds Definitions) Select(std Standard) Definitions {
	var ret Definitions
	for _, d := range ds {
		if len(d.Standards) == 0 || d.Standards.Has(std) {
			ret = append(ret, d)
		}
	}
	return ret
}
