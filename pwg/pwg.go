// Package pwg derives a complete witness assignment from a circuit and a
// partial assignment, delegating cryptographic primitives to a pluggable
// backend. Solving is a multi-pass fixpoint: opcodes are attempted
// opportunistically and retried across sweeps, since circuits are not
// guaranteed to be topologically ordered. The only suspension point is the
// oracle boundary, surfaced to the caller as an explicit status value.
package pwg

import (
	"fmt"

	"github.com/consensys/gnark/logger"

	"github.com/zkforge/acvm/acir"
	"github.com/zkforge/acvm/field"
)

// OpcodeResolution is the per-opcode outcome of one solving attempt.
type OpcodeResolution int

const (
	// OpcodeSolved: the opcode is fully resolved.
	OpcodeSolved OpcodeResolution = iota + 1
	// OpcodeInProgress: partial progress was made but the opcode must be
	// retried.
	OpcodeInProgress
	// OpcodeRequiresOracleData: the opcode's inputs are known but its outputs
	// must be supplied by the caller.
	OpcodeRequiresOracleData
)

// PartialWitnessGenerator is the capability a proving backend exposes to the
// solver: one method per blackbox primitive. Each method must, when every
// declared input is assigned, compute the primitive and write the results
// into the output witnesses. A backend that lacks a primitive must return
// *UnsupportedBlackBoxFuncError so the solver can fail fast instead of
// retrying.
type PartialWitnessGenerator interface {
	AES(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (OpcodeResolution, error)
	And(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (OpcodeResolution, error)
	Xor(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (OpcodeResolution, error)
	Range(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (OpcodeResolution, error)
	SHA256(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (OpcodeResolution, error)
	Blake2s(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (OpcodeResolution, error)
	ComputeMerkleRoot(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (OpcodeResolution, error)
	SchnorrVerify(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (OpcodeResolution, error)
	Pedersen(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (OpcodeResolution, error)
	HashToField128Security(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (OpcodeResolution, error)
	EcdsaSecp256k1(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (OpcodeResolution, error)
	FixedBaseScalarMul(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (OpcodeResolution, error)
	Keccak256(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (OpcodeResolution, error)
}

// Status is the terminal outcome of one Solve call. Either the circuit is
// fully solved, or the call suspended on oracle data: RequiredOracleData
// lists the requests whose inputs are known, and UnsolvedOpcodes is the
// residual opcode list (original relative order, oracle opcodes removed) for
// the caller to resubmit once the oracle outputs are filled in.
type Status struct {
	Solved             bool
	RequiredOracleData []acir.OracleData
	UnsolvedOpcodes    []acir.Opcode
}

// Solve advances the witness as far as the opcodes allow. The witness map and
// blocks state are caller-owned and carried across calls of a multi-round
// solve; the solver assumes exclusive access for the duration of each call.
func Solve(f field.Field, backend PartialWitnessGenerator, initialWitness *acir.WitnessMap, blocks *Blocks, opcodes []acir.Opcode) (Status, error) {
	opcodesToSolve := make([]acir.Opcode, len(opcodes))
	copy(opcodesToSolve, opcodes)

	for len(opcodesToSolve) > 0 {
		var unresolved []acir.Opcode
		var unresolvedOracles []acir.OracleData
		stalled := true
		var notSolvable error

		for _, opcode := range opcodesToSolve {
			var resolution OpcodeResolution
			var err error
			var solvedOracle *acir.OracleData

			switch opcode.Type {
			case acir.OpcodeArithmetic:
				resolution, err = solveArithmetic(f, initialWitness, opcode.Arith)
			case acir.OpcodeBlackBoxFuncCall:
				resolution, err = solveBlackBoxFuncCall(backend, initialWitness, opcode.BlackBox)
			case acir.OpcodeDirective:
				resolution, err = solveDirective(f, initialWitness, opcode.Directive)
			case acir.OpcodeOracle:
				data := opcode.Oracle.Clone()
				resolution, err = solveOracle(f, initialWitness, &data)
				solvedOracle = &data
			case acir.OpcodeBlock:
				resolution, err = blocks.solve(f, initialWitness, opcode.Block)
			default:
				return Status{}, &UnexpectedOpcodeError{Expected: "a known opcode type", Got: fmt.Sprintf("opcode type %d", opcode.Type)}
			}

			switch {
			case err == nil && resolution == OpcodeSolved:
				stalled = false
			case err == nil && resolution == OpcodeInProgress:
				stalled = false
				unresolved = append(unresolved, opcode)
			case err == nil && resolution == OpcodeRequiresOracleData:
				stalled = false
				unresolvedOracles = append(unresolvedOracles, *solvedOracle)
			case IsNotSolvable(err):
				// Stall; the opcode is retried on the next sweep. A partially
				// evaluated oracle keeps the input values computed so far.
				notSolvable = err
				if solvedOracle != nil {
					unresolved = append(unresolved, acir.NewOracleOpcode(*solvedOracle))
				} else {
					unresolved = append(unresolved, opcode)
				}
			default:
				return Status{}, err
			}
		}

		if len(unresolvedOracles) > 0 {
			log := logger.Logger()
			log.Debug().
				Int("nbOracles", len(unresolvedOracles)).
				Int("nbUnsolved", len(unresolved)).
				Msg("solve suspended on oracle data")
			return Status{RequiredOracleData: unresolvedOracles, UnsolvedOpcodes: unresolved}, nil
		}
		if stalled {
			// No opcode moved and no oracle round-trip can explain it: the
			// circuit is underconstrained or cyclic.
			return Status{}, notSolvable
		}
		opcodesToSolve = unresolved
	}
	return Status{Solved: true}, nil
}
