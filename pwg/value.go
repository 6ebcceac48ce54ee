package pwg

import (
	"github.com/consensys/gnark/constraint"

	"github.com/zkforge/acvm/acir"
	"github.com/zkforge/acvm/field"
)

// InsertValue assigns v to w. Assignments are monotonic: writing a different
// value over an existing one means the constraint system is inconsistent.
// Backends use it to write blackbox outputs under the same discipline as the
// solver.
func InsertValue(w acir.Witness, v constraint.Element, witness *acir.WitnessMap) error {
	if old, ok := witness.Get(w); ok {
		if old != v {
			return &UnsatisfiedConstraintError{}
		}
		return nil
	}
	witness.Set(w, v)
	return nil
}

// getValue fully evaluates e against the witness, stalling on the first
// unassigned witness.
func getValue(f field.Field, e acir.Expression, witness *acir.WitnessMap) (constraint.Element, error) {
	sum := e.QC
	for _, t := range e.MulTerms {
		lv, ok := witness.Get(t.WL)
		if !ok {
			return constraint.Element{}, &MissingAssignmentError{Witness: t.WL}
		}
		rv, ok := witness.Get(t.WR)
		if !ok {
			return constraint.Element{}, &MissingAssignmentError{Witness: t.WR}
		}
		sum = f.Add(sum, f.Mul(t.Coeff, f.Mul(lv, rv)))
	}
	for _, t := range e.LinearCombinations {
		v, ok := witness.Get(t.W)
		if !ok {
			return constraint.Element{}, &MissingAssignmentError{Witness: t.W}
		}
		sum = f.Add(sum, f.Mul(t.Coeff, v))
	}
	return sum, nil
}
