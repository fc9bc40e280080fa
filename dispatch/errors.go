package dispatch

import (
	"errors"
	"fmt"
)

// Problems found while checking definitions. Each is reported inside a
// DefinitionError naming the definition it was found in.
var (
	ErrInvalidFormat      = errors.New("invalid instruction format")
	ErrOperandNotInFormat = errors.New("operand not available in format")
	ErrWritebackWithoutRd = errors.New("writeback without a destination register")
	ErrReadsRd            = errors.New("body reads rd, which is write-only")
	ErrUndeclaredOperand  = errors.New("body refers to an undeclared operand")
	ErrNoImmediate        = errors.New("body refers to imm, but the format has no immediate")
	ErrInvalidBody        = errors.New("invalid body")
	ErrMissingOpcode      = errors.New("encoding does not fix the major opcode")
	ErrInvalidEncoding    = errors.New("encoding match has bits outside its mask")
	ErrMissingHandler     = errors.New("entry has no handler")
	ErrDuplicateMnemonic  = errors.New("duplicate mnemonic")
	ErrDuplicateEncoding  = errors.New("duplicate encoding")
	ErrAmbiguousEncoding  = errors.New("ambiguous encoding")
)

// DefinitionError is a problem with one definition, identified by its
// position in the input.
type DefinitionError struct {
	Index    int
	Mnemonic string
	Err      error
}

func (e *DefinitionError) Error() string {
	if e.Mnemonic == "" {
		return fmt.Sprintf("definition %d: %s", e.Index, e.Err)
	}
	return fmt.Sprintf("definition %d (%s): %s", e.Index, e.Mnemonic, e.Err)
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}

// DefinitionErrors returns every DefinitionError in err, which is usually
// the joined error returned by Build or NewTable.
func DefinitionErrors(err error) []*DefinitionError {
	var ret []*DefinitionError
	var walk func(error)
	walk = func(err error) {
		if err == nil {
			return
		}
		if de, ok := err.(*DefinitionError); ok {
			ret = append(ret, de)
			return
		}
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				walk(e)
			}
			return
		}
		walk(errors.Unwrap(err))
	}
	walk(err)
	return ret
}
