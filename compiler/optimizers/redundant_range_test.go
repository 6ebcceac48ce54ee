package optimizers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkforge/acvm/acir"
)

func rangeOpcode(w acir.Witness, numBits uint32) acir.Opcode {
	return acir.NewBlackBoxOpcode(acir.BlackBoxFuncCall{
		Name:   acir.RANGE,
		Inputs: []acir.FunctionInput{{Witness: w, NumBits: numBits}},
	})
}

func rangeCircuit(opcodes ...acir.Opcode) acir.Circuit {
	return acir.Circuit{CurrentWitnessIndex: 64, Opcodes: opcodes}
}

func TestRangeOptimizerKeepsLowestBitSize(t *testing.T) {
	circuit := rangeCircuit(
		rangeOpcode(1, 16),
		rangeOpcode(1, 32),
	)
	optimized := NewRangeOptimizer(circuit).ReplaceRedundantRanges()
	require.Len(t, optimized.Opcodes, 1)
	w, bits, ok := extractRangeOpcode(optimized.Opcodes[0])
	require.True(t, ok)
	assert.Equal(t, acir.Witness(1), w)
	assert.Equal(t, uint32(16), bits)
}

// The lowest width wins regardless of the order the constraints appear in.
func TestRangeOptimizerOrderIndependent(t *testing.T) {
	circuit := rangeCircuit(
		rangeOpcode(1, 32),
		rangeOpcode(1, 16),
	)
	optimized := NewRangeOptimizer(circuit).ReplaceRedundantRanges()
	require.Len(t, optimized.Opcodes, 1)
	_, bits, ok := extractRangeOpcode(optimized.Opcodes[0])
	require.True(t, ok)
	assert.Equal(t, uint32(16), bits)
}

func TestRangeOptimizerPerWitness(t *testing.T) {
	circuit := rangeCircuit(
		rangeOpcode(1, 16),
		rangeOpcode(2, 8),
		rangeOpcode(1, 16),
		rangeOpcode(2, 23),
	)
	optimized := NewRangeOptimizer(circuit).ReplaceRedundantRanges()
	require.Len(t, optimized.Opcodes, 2)
	w1, bits1, _ := extractRangeOpcode(optimized.Opcodes[0])
	w2, bits2, _ := extractRangeOpcode(optimized.Opcodes[1])
	assert.Equal(t, acir.Witness(1), w1)
	assert.Equal(t, uint32(16), bits1)
	assert.Equal(t, acir.Witness(2), w2)
	assert.Equal(t, uint32(8), bits2)
}

// Non-range opcodes pass through untouched and keep their relative order. The
// surviving range constraint is the first one whose width equals the minimum,
// so it sits after the arithmetic opcode here.
func TestRangeOptimizerPreservesOtherOpcodes(t *testing.T) {
	arith := acir.NewArithmeticOpcode(acir.Expression{
		LinearCombinations: []acir.LinearTerm{{W: 3}},
	})
	circuit := rangeCircuit(
		rangeOpcode(1, 32),
		arith,
		rangeOpcode(1, 16),
	)
	optimized := NewRangeOptimizer(circuit).ReplaceRedundantRanges()
	require.Len(t, optimized.Opcodes, 2)
	assert.Equal(t, arith, optimized.Opcodes[0])
	_, bits, ok := extractRangeOpcode(optimized.Opcodes[1])
	require.True(t, ok)
	assert.Equal(t, uint32(16), bits)
}

func TestRangeOptimizerIdempotent(t *testing.T) {
	circuit := rangeCircuit(
		rangeOpcode(1, 16),
		rangeOpcode(1, 32),
		rangeOpcode(2, 8),
	)
	once := NewRangeOptimizer(circuit).ReplaceRedundantRanges()
	twice := NewRangeOptimizer(once).ReplaceRedundantRanges()
	assert.Equal(t, once, twice)
}

func TestWidthMapLowestWins(t *testing.T) {
	circuit := rangeCircuit(
		rangeOpcode(5, 16),
		rangeOpcode(5, 16),
		rangeOpcode(5, 17),
	)
	widths := collectRanges(circuit)
	bits, ok := widths.get(5)
	require.True(t, ok)
	assert.Equal(t, uint32(16), bits)
}
