package pwg

import (
	"errors"
	"fmt"

	"github.com/zkforge/acvm/acir"
)

// MissingAssignmentError reports that an opcode needs a witness that has no
// value yet. Retryable: the opcode stalls and is retried on a later sweep.
type MissingAssignmentError struct {
	Witness acir.Witness
}

func (e *MissingAssignmentError) Error() string {
	return fmt.Sprintf("missing assignment for witness index %d", e.Witness)
}

// TooManyUnknownsError reports that an expression cannot be solved in one
// step because more than one witness is unassigned. Retryable.
type TooManyUnknownsError struct {
	Expr acir.Expression
}

func (e *TooManyUnknownsError) Error() string {
	return fmt.Sprintf("expression has too many unknowns (%d mul terms, %d linear terms)",
		len(e.Expr.MulTerms), len(e.Expr.LinearCombinations))
}

// IsNotSolvable reports whether err is one of the retryable stall conditions,
// as opposed to a fatal resolution error.
func IsNotSolvable(err error) bool {
	var missing *MissingAssignmentError
	var unknowns *TooManyUnknownsError
	return errors.As(err, &missing) || errors.As(err, &unknowns)
}

// UnsupportedBlackBoxFuncError is fatal: the backend lacks the primitive, so
// the circuit cannot be solved by this backend at all.
type UnsupportedBlackBoxFuncError struct {
	Func acir.BlackBoxFunc
}

func (e *UnsupportedBlackBoxFuncError) Error() string {
	return fmt.Sprintf("backend does not currently support the %s opcode", e.Func)
}

// UnsatisfiedConstraintError is fatal: a fully assigned constraint does not
// hold, so the circuit and the supplied inputs are mutually inconsistent.
type UnsatisfiedConstraintError struct{}

func (e *UnsatisfiedConstraintError) Error() string {
	return "could not satisfy all constraints"
}

// UnexpectedOpcodeError is fatal: the circuit is malformed relative to the
// opcode shape the solver expected. Got names the offending tag, whether it is
// a blackbox function, an opcode type or a directive type.
type UnexpectedOpcodeError struct {
	Expected string
	Got      string
}

func (e *UnexpectedOpcodeError) Error() string {
	return fmt.Sprintf("unexpected opcode, expected %s, but got %s", e.Expected, e.Got)
}

// IncorrectNumFunctionArgumentsError is fatal: a blackbox call carries the
// wrong number of inputs or outputs for its declared function.
type IncorrectNumFunctionArgumentsError struct {
	Expected int
	Func     acir.BlackBoxFunc
	Got      int
}

func (e *IncorrectNumFunctionArgumentsError) Error() string {
	return fmt.Sprintf("expected %d inputs for function %s, but got %d", e.Expected, e.Func, e.Got)
}

// BlackBoxFuncFailedError is fatal: the backend accepted the call but its
// internal computation failed; Reason carries the backend diagnostic.
type BlackBoxFuncFailedError struct {
	Func   acir.BlackBoxFunc
	Reason string
}

func (e *BlackBoxFuncFailedError) Error() string {
	return fmt.Sprintf("failed to solve blackbox function: %s, reason: %s", e.Func, e.Reason)
}
