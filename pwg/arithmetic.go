package pwg

import (
	"github.com/consensys/gnark/constraint"

	"github.com/zkforge/acvm/acir"
	"github.com/zkforge/acvm/field"
)

// solveArithmetic substitutes known witnesses into the expression. With zero
// unknowns left the expression must evaluate to zero; with exactly one
// unknown left linearly, the equation is solved for it and the witness
// assigned. Anything else stalls for a later sweep.
func solveArithmetic(f field.Field, witness *acir.WitnessMap, expr acir.Expression) (OpcodeResolution, error) {
	type unknownTerm struct {
		w     acir.Witness
		coeff constraint.Element
	}
	var unknowns []unknownTerm
	addCoeff := func(w acir.Witness, c constraint.Element) {
		for i := range unknowns {
			if unknowns[i].w == w {
				unknowns[i].coeff = f.Add(unknowns[i].coeff, c)
				return
			}
		}
		unknowns = append(unknowns, unknownTerm{w: w, coeff: c})
	}

	sum := expr.QC
	for _, t := range expr.MulTerms {
		lv, lok := witness.Get(t.WL)
		rv, rok := witness.Get(t.WR)
		switch {
		case lok && rok:
			sum = f.Add(sum, f.Mul(t.Coeff, f.Mul(lv, rv)))
		case lok:
			addCoeff(t.WR, f.Mul(t.Coeff, lv))
		case rok:
			addCoeff(t.WL, f.Mul(t.Coeff, rv))
		default:
			// Both sides unknown; covers the quadratic-in-one-unknown case
			// too, which a linear step cannot break.
			return 0, &TooManyUnknownsError{Expr: expr}
		}
	}
	for _, t := range expr.LinearCombinations {
		if v, ok := witness.Get(t.W); ok {
			sum = f.Add(sum, f.Mul(t.Coeff, v))
		} else {
			addCoeff(t.W, t.Coeff)
		}
	}

	// An unknown whose coefficients cancelled contributes nothing.
	live := unknowns[:0]
	for _, u := range unknowns {
		if !u.coeff.IsZero() {
			live = append(live, u)
		}
	}

	switch len(live) {
	case 0:
		if sum.IsZero() {
			return OpcodeSolved, nil
		}
		return 0, &UnsatisfiedConstraintError{}
	case 1:
		inv, _ := f.Inverse(live[0].coeff)
		assignment := f.Mul(f.Neg(sum), inv)
		if err := InsertValue(live[0].w, assignment, witness); err != nil {
			return 0, err
		}
		return OpcodeSolved, nil
	default:
		return 0, &TooManyUnknownsError{Expr: expr}
	}
}
