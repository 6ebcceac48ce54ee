package acir

import (
	"fmt"

	"github.com/consensys/gnark/constraint"

	"github.com/zkforge/acvm/utils"
)

// DeserializeCircuit is the inverse of Serialize. It trusts the input to be a
// complete encoding; a truncated or corrupt buffer results in an error rather
// than a partial circuit.
func DeserializeCircuit(buf []byte) (c Circuit, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed circuit encoding: %v", r)
		}
	}()

	in := utils.NewInputBuf(buf)
	c.CurrentWitnessIndex = in.ReadUint32()
	c.PublicParameters = readWitnessList(in)
	c.ReturnValues = readWitnessList(in)
	n := in.ReadUint32()
	c.Opcodes = make([]Opcode, n)
	for i := range c.Opcodes {
		c.Opcodes[i] = readOpcode(in)
	}
	if !in.IsEnd() {
		return Circuit{}, fmt.Errorf("malformed circuit encoding: %d trailing bytes", in.Remaining())
	}
	return c, nil
}

func readWitnessList(in *utils.InputBuf) []Witness {
	n := in.ReadUint32()
	if n == 0 {
		return nil
	}
	ws := make([]Witness, n)
	for i := range ws {
		ws[i] = Witness(in.ReadUint32())
	}
	return ws
}

func readElement(in *utils.InputBuf) constraint.Element {
	var e constraint.Element
	for i := range e {
		e[i] = in.ReadUint64()
	}
	return e
}

func readExpression(in *utils.InputBuf) Expression {
	var e Expression
	if n := in.ReadUint32(); n > 0 {
		e.MulTerms = make([]MulTerm, n)
		for i := range e.MulTerms {
			e.MulTerms[i] = MulTerm{
				Coeff: readElement(in),
				WL:    Witness(in.ReadUint32()),
				WR:    Witness(in.ReadUint32()),
			}
		}
	}
	if n := in.ReadUint32(); n > 0 {
		e.LinearCombinations = make([]LinearTerm, n)
		for i := range e.LinearCombinations {
			e.LinearCombinations[i] = LinearTerm{
				Coeff: readElement(in),
				W:     Witness(in.ReadUint32()),
			}
		}
	}
	e.QC = readElement(in)
	return e
}

func readOpcode(in *utils.InputBuf) Opcode {
	switch t := OpcodeType(in.ReadUint32()); t {
	case OpcodeArithmetic:
		return NewArithmeticOpcode(readExpression(in))
	case OpcodeBlackBoxFuncCall:
		var call BlackBoxFuncCall
		call.Name = BlackBoxFunc(in.ReadUint32())
		if n := in.ReadUint32(); n > 0 {
			call.Inputs = make([]FunctionInput, n)
			for i := range call.Inputs {
				call.Inputs[i] = FunctionInput{
					Witness: Witness(in.ReadUint32()),
					NumBits: in.ReadUint32(),
				}
			}
		}
		call.Outputs = readWitnessList(in)
		return NewBlackBoxOpcode(call)
	case OpcodeDirective:
		return NewDirectiveOpcode(readDirective(in))
	case OpcodeOracle:
		var data OracleData
		data.Name = string(in.ReadBytes())
		if n := in.ReadUint32(); n > 0 {
			data.Inputs = make([]Expression, n)
			for i := range data.Inputs {
				data.Inputs[i] = readExpression(in)
			}
		}
		if n := in.ReadUint32(); n > 0 {
			data.InputValues = make([]constraint.Element, n)
			for i := range data.InputValues {
				data.InputValues[i] = readElement(in)
			}
		}
		data.Outputs = readWitnessList(in)
		if n := in.ReadUint32(); n > 0 {
			data.OutputValues = make([]constraint.Element, n)
			for i := range data.OutputValues {
				data.OutputValues[i] = readElement(in)
			}
		}
		return NewOracleOpcode(data)
	case OpcodeBlock:
		var block MemoryBlock
		block.ID = BlockID(in.ReadUint32())
		block.Len = in.ReadUint32()
		if n := in.ReadUint32(); n > 0 {
			block.Trace = make([]MemOp, n)
			for i := range block.Trace {
				block.Trace[i] = MemOp{
					Operation: readExpression(in),
					Index:     readExpression(in),
					Value:     readExpression(in),
				}
			}
		}
		return NewBlockOpcode(block)
	default:
		panic(fmt.Sprintf("unknown opcode type %d", t))
	}
}

func readDirective(in *utils.InputBuf) Directive {
	switch t := DirectiveType(in.ReadUint32()); t {
	case DirectiveInvert:
		return NewInvertDirective(Witness(in.ReadUint32()), Witness(in.ReadUint32()))
	case DirectiveQuotient:
		d := QuotientDirective{
			A: readExpression(in),
			B: readExpression(in),
			Q: Witness(in.ReadUint32()),
			R: Witness(in.ReadUint32()),
		}
		if in.ReadUint32() == 1 {
			pred := readExpression(in)
			d.Predicate = &pred
		}
		return NewQuotientDirective(d)
	case DirectiveTruncate:
		return NewTruncateDirective(TruncateDirective{
			A:       readExpression(in),
			B:       Witness(in.ReadUint32()),
			C:       Witness(in.ReadUint32()),
			BitSize: in.ReadUint32(),
		})
	case DirectiveToLeRadix:
		return NewToLeRadixDirective(ToLeRadixDirective{
			A:     readExpression(in),
			B:     readWitnessList(in),
			Radix: in.ReadUint32(),
		})
	default:
		panic(fmt.Sprintf("unknown directive type %d", t))
	}
}
