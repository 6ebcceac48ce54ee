package optimizers

import (
	"sort"

	"github.com/zkforge/acvm/acir"
	"github.com/zkforge/acvm/field"
)

// GeneralOptimizer canonicalizes arithmetic expressions: like terms are
// merged, zero-coefficient terms dropped and the remainder sorted by witness
// id. Satisfiability is unchanged; equal constraints become byte-equal.
type GeneralOptimizer struct {
	field field.Field
}

func NewGeneralOptimizer(f field.Field) *GeneralOptimizer {
	return &GeneralOptimizer{field: f}
}

func (g *GeneralOptimizer) Optimize(circuit acir.Circuit) acir.Circuit {
	optimized := make([]acir.Opcode, len(circuit.Opcodes))
	for i, opcode := range circuit.Opcodes {
		if opcode.Type == acir.OpcodeArithmetic {
			optimized[i] = acir.NewArithmeticOpcode(g.CanonicalizeExpression(opcode.Arith))
		} else {
			optimized[i] = opcode
		}
	}
	return acir.Circuit{
		CurrentWitnessIndex: circuit.CurrentWitnessIndex,
		Opcodes:             optimized,
		PublicParameters:    circuit.PublicParameters,
		ReturnValues:        circuit.ReturnValues,
	}
}

func (g *GeneralOptimizer) CanonicalizeExpression(e acir.Expression) acir.Expression {
	f := g.field

	mul := make([]acir.MulTerm, 0, len(e.MulTerms))
	for _, t := range e.MulTerms {
		// normalize operand order so v2*v1 merges with v1*v2
		if t.WL > t.WR {
			t.WL, t.WR = t.WR, t.WL
		}
		merged := false
		for i := range mul {
			if mul[i].WL == t.WL && mul[i].WR == t.WR {
				mul[i].Coeff = f.Add(mul[i].Coeff, t.Coeff)
				merged = true
				break
			}
		}
		if !merged {
			mul = append(mul, t)
		}
	}
	liveMul := mul[:0]
	for _, t := range mul {
		if !t.Coeff.IsZero() {
			liveMul = append(liveMul, t)
		}
	}
	sort.Slice(liveMul, func(i, j int) bool {
		if liveMul[i].WL != liveMul[j].WL {
			return liveMul[i].WL < liveMul[j].WL
		}
		return liveMul[i].WR < liveMul[j].WR
	})

	lin := make([]acir.LinearTerm, 0, len(e.LinearCombinations))
	for _, t := range e.LinearCombinations {
		merged := false
		for i := range lin {
			if lin[i].W == t.W {
				lin[i].Coeff = f.Add(lin[i].Coeff, t.Coeff)
				merged = true
				break
			}
		}
		if !merged {
			lin = append(lin, t)
		}
	}
	liveLin := lin[:0]
	for _, t := range lin {
		if !t.Coeff.IsZero() {
			liveLin = append(liveLin, t)
		}
	}
	sort.Slice(liveLin, func(i, j int) bool {
		return liveLin[i].W < liveLin[j].W
	})

	res := acir.Expression{QC: e.QC}
	if len(liveMul) > 0 {
		res.MulTerms = append([]acir.MulTerm(nil), liveMul...)
	}
	if len(liveLin) > 0 {
		res.LinearCombinations = append([]acir.LinearTerm(nil), liveLin...)
	}
	return res
}
