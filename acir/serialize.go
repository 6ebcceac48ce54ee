package acir

import (
	"github.com/consensys/gnark/constraint"

	"github.com/zkforge/acvm/utils"
)

// Serialize renders the circuit into a deterministic byte form. Byte-level
// framing of circuits is owned by external tooling; this encoding exists so
// circuits can be fingerprinted (see the digest helpers in the root package)
// and compared in tests. Field elements are written as raw limbs, so the
// bytes are only comparable between circuits built over the same engine.
func (c Circuit) Serialize() []byte {
	o := &utils.OutputBuf{}
	o.AppendUint32(c.CurrentWitnessIndex)
	appendWitnessList(o, c.PublicParameters)
	appendWitnessList(o, c.ReturnValues)
	o.AppendUint32(uint32(len(c.Opcodes)))
	for _, op := range c.Opcodes {
		appendOpcode(o, op)
	}
	return o.Bytes()
}

func appendWitnessList(o *utils.OutputBuf, ws []Witness) {
	o.AppendUint32(uint32(len(ws)))
	for _, w := range ws {
		o.AppendUint32(uint32(w))
	}
}

func appendElement(o *utils.OutputBuf, e constraint.Element) {
	for _, limb := range e {
		o.AppendUint64(limb)
	}
}

func appendExpression(o *utils.OutputBuf, e Expression) {
	o.AppendUint32(uint32(len(e.MulTerms)))
	for _, t := range e.MulTerms {
		appendElement(o, t.Coeff)
		o.AppendUint32(uint32(t.WL))
		o.AppendUint32(uint32(t.WR))
	}
	o.AppendUint32(uint32(len(e.LinearCombinations)))
	for _, t := range e.LinearCombinations {
		appendElement(o, t.Coeff)
		o.AppendUint32(uint32(t.W))
	}
	appendElement(o, e.QC)
}

func appendOpcode(o *utils.OutputBuf, op Opcode) {
	o.AppendUint32(uint32(op.Type))
	switch op.Type {
	case OpcodeArithmetic:
		appendExpression(o, op.Arith)
	case OpcodeBlackBoxFuncCall:
		o.AppendUint32(uint32(op.BlackBox.Name))
		o.AppendUint32(uint32(len(op.BlackBox.Inputs)))
		for _, in := range op.BlackBox.Inputs {
			o.AppendUint32(uint32(in.Witness))
			o.AppendUint32(in.NumBits)
		}
		appendWitnessList(o, op.BlackBox.Outputs)
	case OpcodeDirective:
		appendDirective(o, op.Directive)
	case OpcodeOracle:
		o.AppendBytes([]byte(op.Oracle.Name))
		o.AppendUint32(uint32(len(op.Oracle.Inputs)))
		for _, e := range op.Oracle.Inputs {
			appendExpression(o, e)
		}
		o.AppendUint32(uint32(len(op.Oracle.InputValues)))
		for _, v := range op.Oracle.InputValues {
			appendElement(o, v)
		}
		appendWitnessList(o, op.Oracle.Outputs)
		o.AppendUint32(uint32(len(op.Oracle.OutputValues)))
		for _, v := range op.Oracle.OutputValues {
			appendElement(o, v)
		}
	case OpcodeBlock:
		o.AppendUint32(uint32(op.Block.ID))
		o.AppendUint32(op.Block.Len)
		o.AppendUint32(uint32(len(op.Block.Trace)))
		for _, memOp := range op.Block.Trace {
			appendExpression(o, memOp.Operation)
			appendExpression(o, memOp.Index)
			appendExpression(o, memOp.Value)
		}
	}
}

func appendDirective(o *utils.OutputBuf, d Directive) {
	o.AppendUint32(uint32(d.Type))
	switch d.Type {
	case DirectiveInvert:
		o.AppendUint32(uint32(d.Invert.X))
		o.AppendUint32(uint32(d.Invert.Result))
	case DirectiveQuotient:
		appendExpression(o, d.Quotient.A)
		appendExpression(o, d.Quotient.B)
		o.AppendUint32(uint32(d.Quotient.Q))
		o.AppendUint32(uint32(d.Quotient.R))
		if d.Quotient.Predicate != nil {
			o.AppendUint32(1)
			appendExpression(o, *d.Quotient.Predicate)
		} else {
			o.AppendUint32(0)
		}
	case DirectiveTruncate:
		appendExpression(o, d.Truncate.A)
		o.AppendUint32(uint32(d.Truncate.B))
		o.AppendUint32(uint32(d.Truncate.C))
		o.AppendUint32(d.Truncate.BitSize)
	case DirectiveToLeRadix:
		appendExpression(o, d.ToLeRadix.A)
		appendWitnessList(o, d.ToLeRadix.B)
		o.AppendUint32(d.ToLeRadix.Radix)
	}
}
