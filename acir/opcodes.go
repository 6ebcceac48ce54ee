package acir

import "github.com/consensys/gnark/constraint"

// OpcodeType enumerates the opcode kinds of a circuit.
type OpcodeType int

const (
	OpcodeArithmetic OpcodeType = iota + 1
	OpcodeBlackBoxFuncCall
	OpcodeDirective
	OpcodeOracle
	OpcodeBlock
)

// OracleData is a request for a value computable only outside the circuit.
// InputValues and OutputValues start empty; the solver fills InputValues from
// the witness, the caller supplies OutputValues before resubmitting.
type OracleData struct {
	Name         string
	Inputs       []Expression
	InputValues  []constraint.Element
	Outputs      []Witness
	OutputValues []constraint.Element
}

func (d OracleData) Clone() OracleData {
	res := OracleData{
		Name:         d.Name,
		Inputs:       make([]Expression, len(d.Inputs)),
		InputValues:  make([]constraint.Element, len(d.InputValues)),
		Outputs:      make([]Witness, len(d.Outputs)),
		OutputValues: make([]constraint.Element, len(d.OutputValues)),
	}
	for i, e := range d.Inputs {
		res.Inputs[i] = e.Clone()
	}
	copy(res.InputValues, d.InputValues)
	copy(res.Outputs, d.Outputs)
	copy(res.OutputValues, d.OutputValues)
	return res
}

// Opcode is one step of a circuit. Type selects which payload is meaningful:
//  1. an Arithmetic equality constraint
//  2. a call to a backend blackbox primitive
//  3. a directive, a pure solving hint
//  4. an oracle request resolved by the caller between solving rounds
//  5. an ordered memory-access trace
type Opcode struct {
	Type      OpcodeType
	Arith     Expression
	BlackBox  BlackBoxFuncCall
	Directive Directive
	Oracle    OracleData
	Block     MemoryBlock
}

func NewArithmeticOpcode(e Expression) Opcode {
	return Opcode{Type: OpcodeArithmetic, Arith: e}
}

func NewBlackBoxOpcode(call BlackBoxFuncCall) Opcode {
	return Opcode{Type: OpcodeBlackBoxFuncCall, BlackBox: call}
}

func NewDirectiveOpcode(d Directive) Opcode {
	return Opcode{Type: OpcodeDirective, Directive: d}
}

func NewOracleOpcode(d OracleData) Opcode {
	return Opcode{Type: OpcodeOracle, Oracle: d}
}

func NewBlockOpcode(b MemoryBlock) Opcode {
	return Opcode{Type: OpcodeBlock, Block: b}
}

// forEachWitness visits every witness the opcode references.
func (op Opcode) forEachWitness(visit func(Witness)) {
	switch op.Type {
	case OpcodeArithmetic:
		op.Arith.forEachWitness(visit)
	case OpcodeBlackBoxFuncCall:
		for _, in := range op.BlackBox.Inputs {
			visit(in.Witness)
		}
		for _, out := range op.BlackBox.Outputs {
			visit(out)
		}
	case OpcodeDirective:
		d := op.Directive
		switch d.Type {
		case DirectiveInvert:
			visit(d.Invert.X)
			visit(d.Invert.Result)
		case DirectiveQuotient:
			d.Quotient.A.forEachWitness(visit)
			d.Quotient.B.forEachWitness(visit)
			visit(d.Quotient.Q)
			visit(d.Quotient.R)
			if d.Quotient.Predicate != nil {
				d.Quotient.Predicate.forEachWitness(visit)
			}
		case DirectiveTruncate:
			d.Truncate.A.forEachWitness(visit)
			visit(d.Truncate.B)
			visit(d.Truncate.C)
		case DirectiveToLeRadix:
			d.ToLeRadix.A.forEachWitness(visit)
			for _, w := range d.ToLeRadix.B {
				visit(w)
			}
		}
	case OpcodeOracle:
		for _, e := range op.Oracle.Inputs {
			e.forEachWitness(visit)
		}
		for _, w := range op.Oracle.Outputs {
			visit(w)
		}
	case OpcodeBlock:
		for _, memOp := range op.Block.Trace {
			memOp.Operation.forEachWitness(visit)
			memOp.Index.forEachWitness(visit)
			memOp.Value.forEachWitness(visit)
		}
	}
}
