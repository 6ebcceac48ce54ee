package pwg

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"

	"github.com/zkforge/acvm/acir"
	"github.com/zkforge/acvm/field"
)

// solveDirective computes a directive's outputs once its dependencies are
// assigned. Directives are hints, not enforced constraints; the circuit is
// expected to constrain their outputs separately.
func solveDirective(f field.Field, witness *acir.WitnessMap, d acir.Directive) (OpcodeResolution, error) {
	switch d.Type {
	case acir.DirectiveInvert:
		return solveInvert(f, witness, d.Invert)
	case acir.DirectiveQuotient:
		return solveQuotient(f, witness, d.Quotient)
	case acir.DirectiveTruncate:
		return solveTruncate(f, witness, d.Truncate)
	case acir.DirectiveToLeRadix:
		return solveToLeRadix(f, witness, d.ToLeRadix)
	default:
		return 0, &UnexpectedOpcodeError{Expected: "a known directive", Got: fmt.Sprintf("directive type %d", d.Type)}
	}
}

func solveInvert(f field.Field, witness *acir.WitnessMap, d acir.InvertDirective) (OpcodeResolution, error) {
	v, ok := witness.Get(d.X)
	if !ok {
		return 0, &MissingAssignmentError{Witness: d.X}
	}
	// Inverse of zero is zero, matching the field-inverse convention.
	inv, invertible := f.Inverse(v)
	if !invertible {
		inv = constraint.Element{}
	}
	if err := InsertValue(d.Result, inv, witness); err != nil {
		return 0, err
	}
	return OpcodeSolved, nil
}

func solveQuotient(f field.Field, witness *acir.WitnessMap, d acir.QuotientDirective) (OpcodeResolution, error) {
	av, err := getValue(f, d.A, witness)
	if err != nil {
		return 0, err
	}
	bv, err := getValue(f, d.B, witness)
	if err != nil {
		return 0, err
	}
	pred := true
	if d.Predicate != nil {
		pv, err := getValue(f, *d.Predicate, witness)
		if err != nil {
			return 0, err
		}
		pred = !pv.IsZero()
	}

	var q, r constraint.Element
	if pred {
		if bv.IsZero() {
			return 0, &UnsatisfiedConstraintError{}
		}
		a := f.ToBigInt(av)
		b := f.ToBigInt(bv)
		quo, rem := new(big.Int).QuoRem(a, b, new(big.Int))
		q = f.FromInterface(quo)
		r = f.FromInterface(rem)
	}
	if err := InsertValue(d.Q, q, witness); err != nil {
		return 0, err
	}
	if err := InsertValue(d.R, r, witness); err != nil {
		return 0, err
	}
	return OpcodeSolved, nil
}

func solveTruncate(f field.Field, witness *acir.WitnessMap, d acir.TruncateDirective) (OpcodeResolution, error) {
	av, err := getValue(f, d.A, witness)
	if err != nil {
		return 0, err
	}
	a := f.ToBigInt(av)
	pow := new(big.Int).Lsh(big.NewInt(1), uint(d.BitSize))
	low := new(big.Int).Mod(a, pow)
	high := new(big.Int).Rsh(a, uint(d.BitSize))
	if err := InsertValue(d.B, f.FromInterface(low), witness); err != nil {
		return 0, err
	}
	if err := InsertValue(d.C, f.FromInterface(high), witness); err != nil {
		return 0, err
	}
	return OpcodeSolved, nil
}

func solveToLeRadix(f field.Field, witness *acir.WitnessMap, d acir.ToLeRadixDirective) (OpcodeResolution, error) {
	av, err := getValue(f, d.A, witness)
	if err != nil {
		return 0, err
	}
	a := f.ToBigInt(av)
	radix := big.NewInt(int64(d.Radix))
	digit := new(big.Int)
	for _, w := range d.B {
		a.QuoRem(a, radix, digit)
		if err := InsertValue(w, f.FromInterface(digit), witness); err != nil {
			return 0, err
		}
	}
	return OpcodeSolved, nil
}
