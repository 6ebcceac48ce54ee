package acvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkforge/acvm/acir"
)

func TestDefaultOpcodeSupportedR1CS(t *testing.T) {
	supported := DefaultOpcodeSupported(Language{Kind: R1CS})

	assert.True(t, supported(acir.NewArithmeticOpcode(acir.Expression{})))
	assert.False(t, supported(acir.NewBlackBoxOpcode(acir.BlackBoxFuncCall{Name: acir.RANGE})))
	assert.False(t, supported(acir.NewOracleOpcode(acir.OracleData{})))
	assert.False(t, supported(acir.NewBlockOpcode(acir.MemoryBlock{})))
}

func TestDefaultOpcodeSupportedPLONK(t *testing.T) {
	supported := DefaultOpcodeSupported(Language{Kind: PLONKCSat, Width: 3})

	assert.True(t, supported(acir.NewArithmeticOpcode(acir.Expression{})))
	assert.True(t, supported(acir.NewBlackBoxOpcode(acir.BlackBoxFuncCall{Name: acir.RANGE})))
	assert.True(t, supported(acir.NewOracleOpcode(acir.OracleData{})))
	assert.False(t, supported(acir.NewBlockOpcode(acir.MemoryBlock{})))
	assert.False(t, supported(acir.NewBlackBoxOpcode(acir.BlackBoxFuncCall{Name: acir.AES})))
}

func TestCircuitFingerprints(t *testing.T) {
	circuit := acir.Circuit{
		CurrentWitnessIndex: 2,
		Opcodes: []acir.Opcode{
			acir.NewArithmeticOpcode(acir.Expression{
				LinearCombinations: []acir.LinearTerm{{W: 1}, {W: 2}},
			}),
		},
	}
	h1 := HashConstraintSystem(circuit)
	h2 := HashConstraintSystem(circuit)
	require.Equal(t, h1, h2)
	assert.Equal(t, ChecksumConstraintSystem(circuit), ChecksumConstraintSystem(circuit))

	circuit.Opcodes = nil
	assert.NotEqual(t, h1, HashConstraintSystem(circuit))
}
