// Package acvm is the execution core of an arithmetic-circuit virtual
// machine: it rewrites ACIR circuits to drop redundant constraints and
// derives complete witness assignments from partial ones, delegating
// cryptographic primitives to a pluggable proving backend.
package acvm

import (
	"github.com/zkforge/acvm/acir"
	"github.com/zkforge/acvm/compiler"
	"github.com/zkforge/acvm/pwg"
)

// SmartContract emits on-chain verifiers for a backend's proofs.
type SmartContract interface {
	// EthContractFromVK returns an Ethereum smart contract verifying proofs
	// against the given verification key.
	EthContractFromVK(verificationKey []byte) (string, error)
}

// ProofSystemCompiler is the proving side of a backend. Transpiling to a
// language the proof system does not accept natively is usually inefficient,
// so the declared language and the proof system must line up.
type ProofSystemCompiler interface {
	// NPLanguage is the constraint language this proof system accepts
	// directly.
	NPLanguage() Language

	// BlackBoxFuncSupported reports whether the backend supports the given
	// blackbox function.
	BlackBoxFuncSupported(f acir.BlackBoxFunc) bool

	// GetExactCircuitSize returns the number of gates in the circuit.
	GetExactCircuitSize(circuit acir.Circuit) (uint32, error)

	// Preprocess generates the proving and verification keys for a circuit.
	Preprocess(circuit acir.Circuit) (provingKey []byte, verificationKey []byte, err error)

	// ProveWithPK creates a proof from the circuit, the witness values and
	// the proving key. Intermediate witnesses for blackbox functions are the
	// proof system's responsibility.
	ProveWithPK(circuit acir.Circuit, witnessValues *acir.WitnessMap, provingKey []byte) ([]byte, error)

	// VerifyWithVK verifies a proof against the circuit's public inputs and
	// the verification key.
	VerifyWithVK(proof []byte, publicInputs *acir.WitnessMap, circuit acir.Circuit, verificationKey []byte) (bool, error)
}

// Backend is the full capability object an embedding toolchain consumes.
type Backend interface {
	SmartContract
	ProofSystemCompiler
	pwg.PartialWitnessGenerator
}

// DefaultOpcodeSupported derives sensible opcode support from the constraint
// language alone.
//
// Deprecated: backends should declare what they support; this exists for
// embedders that only know the target language.
func DefaultOpcodeSupported(lang Language) compiler.IsOpcodeSupported {
	switch lang.Kind {
	case R1CS:
		// R1CS supports no opcode except arithmetic by default.
		return func(op acir.Opcode) bool {
			return op.Type == acir.OpcodeArithmetic
		}
	case PLONKCSat:
		// PLONK-style systems take most opcodes natively.
		return func(op acir.Opcode) bool {
			if op.Type == acir.OpcodeBlock {
				return false
			}
			if op.Type == acir.OpcodeBlackBoxFuncCall && op.BlackBox.Name == acir.AES {
				return false
			}
			return true
		}
	default:
		panic("unknown constraint language")
	}
}
