package acir

import (
	"strconv"
	"strings"

	"github.com/consensys/gnark/constraint"

	"github.com/zkforge/acvm/field"
)

// MulTerm is Coeff * WL * WR.
type MulTerm struct {
	Coeff constraint.Element
	WL    Witness
	WR    Witness
}

// LinearTerm is Coeff * W.
type LinearTerm struct {
	Coeff constraint.Element
	W     Witness
}

// Expression is a degree-2 constraint term: a sum of quadratic products, a
// sum of linear terms and a constant. An Arithmetic opcode is satisfied when
// its expression evaluates to zero.
type Expression struct {
	MulTerms           []MulTerm
	LinearCombinations []LinearTerm
	QC                 constraint.Element
}

func NewConstantExpression(c constraint.Element) Expression {
	return Expression{QC: c}
}

func NewLinearExpression(c constraint.Element, w Witness) Expression {
	return Expression{LinearCombinations: []LinearTerm{{Coeff: c, W: w}}}
}

func (e Expression) Clone() Expression {
	res := Expression{
		MulTerms:           make([]MulTerm, len(e.MulTerms)),
		LinearCombinations: make([]LinearTerm, len(e.LinearCombinations)),
		QC:                 e.QC,
	}
	copy(res.MulTerms, e.MulTerms)
	copy(res.LinearCombinations, e.LinearCombinations)
	return res
}

// IsConst reports whether the expression carries no witness terms.
func (e Expression) IsConst() bool {
	return len(e.MulTerms) == 0 && len(e.LinearCombinations) == 0
}

// ConstantValue returns the constant and true when the expression is a bare
// constant.
func (e Expression) ConstantValue() (constraint.Element, bool) {
	if !e.IsConst() {
		return constraint.Element{}, false
	}
	return e.QC, true
}

// ToWitness returns the single witness and true when the expression is
// exactly 1 * w.
func (e Expression) ToWitness(f field.Field) (Witness, bool) {
	if len(e.MulTerms) != 0 || len(e.LinearCombinations) != 1 || !e.QC.IsZero() {
		return 0, false
	}
	if !f.IsOne(e.LinearCombinations[0].Coeff) {
		return 0, false
	}
	return e.LinearCombinations[0].W, true
}

func (e Expression) forEachWitness(visit func(Witness)) {
	for _, t := range e.MulTerms {
		visit(t.WL)
		visit(t.WR)
	}
	for _, t := range e.LinearCombinations {
		visit(t.W)
	}
}

func (e Expression) String(f field.Field) string {
	s := make([]string, 0, len(e.MulTerms)+len(e.LinearCombinations)+1)
	for _, t := range e.MulTerms {
		s = append(s, "v"+strconv.Itoa(int(t.WL))+"*v"+strconv.Itoa(int(t.WR))+"*"+f.String(t.Coeff))
	}
	for _, t := range e.LinearCombinations {
		s = append(s, "v"+strconv.Itoa(int(t.W))+"*"+f.String(t.Coeff))
	}
	if !e.QC.IsZero() || len(s) == 0 {
		s = append(s, f.String(e.QC))
	}
	return strings.Join(s, "+")
}
