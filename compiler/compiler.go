// Package compiler rewrites circuits before they reach a backend. Passes
// never change satisfiability: any witness satisfying the optimized circuit
// satisfies the original and vice versa.
package compiler

import (
	"github.com/consensys/gnark/logger"

	"github.com/zkforge/acvm/acir"
	"github.com/zkforge/acvm/compiler/optimizers"
	"github.com/zkforge/acvm/field"
)

// IsOpcodeSupported reports whether a backend accepts an opcode natively.
type IsOpcodeSupported func(acir.Opcode) bool

// Optimize runs the standard pass pipeline over the circuit and returns the
// rewritten copy. The input circuit is left untouched.
func Optimize(f field.Field, circuit acir.Circuit) acir.Circuit {
	before := len(circuit.Opcodes)
	c := optimizers.NewGeneralOptimizer(f).Optimize(circuit)
	c = optimizers.NewRangeOptimizer(c).ReplaceRedundantRanges()

	log := logger.Logger()
	log.Debug().
		Int("nbOpcodesBefore", before).
		Int("nbOpcodesAfter", len(c.Opcodes)).
		Msg("optimized circuit")
	return c
}
