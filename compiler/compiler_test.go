package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkforge/acvm/acir"
	"github.com/zkforge/acvm/field/m31"
)

// The pipeline canonicalizes arithmetic and then drops redundant ranges; the
// resulting circuit must satisfy the same assignments as the input.
func TestOptimizePipeline(t *testing.T) {
	f := &m31.Field{}

	rangeOp := func(w acir.Witness, bits uint32) acir.Opcode {
		return acir.NewBlackBoxOpcode(acir.BlackBoxFuncCall{
			Name:   acir.RANGE,
			Inputs: []acir.FunctionInput{{Witness: w, NumBits: bits}},
		})
	}
	circuit := acir.Circuit{
		CurrentWitnessIndex: 8,
		Opcodes: []acir.Opcode{
			rangeOp(1, 32),
			acir.NewArithmeticOpcode(acir.Expression{
				LinearCombinations: []acir.LinearTerm{
					{Coeff: f.One(), W: 2},
					{Coeff: f.One(), W: 2},
				},
			}),
			rangeOp(1, 16),
		},
	}

	optimized := Optimize(f, circuit)
	require.NoError(t, optimized.Validate())
	require.Len(t, optimized.Opcodes, 2)

	// the 32-bit range is dropped, so the canonicalized arithmetic opcode
	// comes first and the surviving 16-bit range keeps its later position
	assert.Equal(t, acir.OpcodeArithmetic, optimized.Opcodes[0].Type)
	require.Len(t, optimized.Opcodes[0].Arith.LinearCombinations, 1)
	assert.Equal(t, f.FromInterface(2), optimized.Opcodes[0].Arith.LinearCombinations[0].Coeff)
	_, bits, ok := rangeInput(optimized.Opcodes[1])
	require.True(t, ok)
	assert.Equal(t, uint32(16), bits)

	// the input circuit is untouched
	assert.Len(t, circuit.Opcodes, 3)
}

func rangeInput(op acir.Opcode) (acir.Witness, uint32, bool) {
	if op.Type != acir.OpcodeBlackBoxFuncCall || op.BlackBox.Name != acir.RANGE {
		return 0, 0, false
	}
	in := op.BlackBox.Inputs[0]
	return in.Witness, in.NumBits, true
}
