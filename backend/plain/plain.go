// Package plain is a pure-software proving backend: it implements the
// blackbox primitives with off-the-shelf cryptography and no proving system
// behind them. It exists to drive the solver in tests and tooling, and as the
// reference for what each primitive is expected to compute.
package plain

import (
	"crypto/sha256"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/secp256k1/ecdsa"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"

	"github.com/zkforge/acvm/acir"
	"github.com/zkforge/acvm/field"
	"github.com/zkforge/acvm/pwg"
)

// Backend solves blackbox calls directly over field values. Primitives with
// no software equivalent here (AES, the Pedersen/Schnorr family, fixed-base
// scalar multiplication) report UnsupportedBlackBoxFuncError.
type Backend struct {
	f field.Field
}

func New(f field.Field) *Backend {
	return &Backend{f: f}
}

func (b *Backend) witnessValue(witness *acir.WitnessMap, w acir.Witness) (*big.Int, error) {
	v, ok := witness.Get(w)
	if !ok {
		return nil, &pwg.MissingAssignmentError{Witness: w}
	}
	return b.f.ToBigInt(v), nil
}

// hashInput concatenates the inputs as big-endian byte strings, each padded
// to the nearest whole byte of its declared bit width.
func (b *Backend) hashInput(witness *acir.WitnessMap, inputs []acir.FunctionInput) ([]byte, error) {
	var message []byte
	for _, in := range inputs {
		v, err := b.witnessValue(witness, in.Witness)
		if err != nil {
			return nil, err
		}
		numBytes := (int(in.NumBits) + 7) / 8
		buf := make([]byte, numBytes)
		v.FillBytes(buf)
		message = append(message, buf...)
	}
	return message, nil
}

// writeDigest assigns one digest byte per output witness.
func (b *Backend) writeDigest(witness *acir.WitnessMap, fn acir.BlackBoxFunc, outputs []acir.Witness, digest []byte) (pwg.OpcodeResolution, error) {
	if len(outputs) != len(digest) {
		return 0, &pwg.IncorrectNumFunctionArgumentsError{Expected: len(digest), Func: fn, Got: len(outputs)}
	}
	for i, w := range outputs {
		if err := pwg.InsertValue(w, b.f.FromInterface(uint64(digest[i])), witness); err != nil {
			return 0, err
		}
	}
	return pwg.OpcodeSolved, nil
}

func (b *Backend) AES(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (pwg.OpcodeResolution, error) {
	return 0, &pwg.UnsupportedBlackBoxFuncError{Func: acir.AES}
}

func (b *Backend) And(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (pwg.OpcodeResolution, error) {
	return b.solveLogic(initialWitness, inputs, outputs, false)
}

func (b *Backend) Xor(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (pwg.OpcodeResolution, error) {
	return b.solveLogic(initialWitness, inputs, outputs, true)
}

func (b *Backend) solveLogic(witness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness, xor bool) (pwg.OpcodeResolution, error) {
	lhs, err := b.witnessValue(witness, inputs[0].Witness)
	if err != nil {
		return 0, err
	}
	rhs, err := b.witnessValue(witness, inputs[1].Witness)
	if err != nil {
		return 0, err
	}
	res := new(big.Int)
	if xor {
		res.Xor(lhs, rhs)
	} else {
		res.And(lhs, rhs)
	}
	// Truncate to the declared operand width.
	mask := new(big.Int).Lsh(big.NewInt(1), uint(inputs[0].NumBits))
	mask.Sub(mask, big.NewInt(1))
	res.And(res, mask)
	if err := pwg.InsertValue(outputs[0], b.f.FromInterface(res), witness); err != nil {
		return 0, err
	}
	return pwg.OpcodeSolved, nil
}

func (b *Backend) Range(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (pwg.OpcodeResolution, error) {
	v, err := b.witnessValue(initialWitness, inputs[0].Witness)
	if err != nil {
		return 0, err
	}
	if v.BitLen() > int(inputs[0].NumBits) {
		return 0, &pwg.UnsatisfiedConstraintError{}
	}
	return pwg.OpcodeSolved, nil
}

func (b *Backend) SHA256(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (pwg.OpcodeResolution, error) {
	message, err := b.hashInput(initialWitness, inputs)
	if err != nil {
		return 0, err
	}
	digest := sha256.Sum256(message)
	return b.writeDigest(initialWitness, acir.SHA256, outputs, digest[:])
}

func (b *Backend) Blake2s(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (pwg.OpcodeResolution, error) {
	message, err := b.hashInput(initialWitness, inputs)
	if err != nil {
		return 0, err
	}
	digest := blake2s.Sum256(message)
	return b.writeDigest(initialWitness, acir.Blake2s, outputs, digest[:])
}

func (b *Backend) Keccak256(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (pwg.OpcodeResolution, error) {
	message, err := b.hashInput(initialWitness, inputs)
	if err != nil {
		return 0, err
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(message)
	return b.writeDigest(initialWitness, acir.Keccak256, outputs, h.Sum(nil))
}

// HashToField128Security hashes the inputs with blake2s and reduces the
// digest into a single field element.
func (b *Backend) HashToField128Security(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (pwg.OpcodeResolution, error) {
	message, err := b.hashInput(initialWitness, inputs)
	if err != nil {
		return 0, err
	}
	digest := blake2s.Sum256(message)
	reduced := new(big.Int).SetBytes(digest[:])
	if err := pwg.InsertValue(outputs[0], b.f.FromInterface(reduced), initialWitness); err != nil {
		return 0, err
	}
	return pwg.OpcodeSolved, nil
}

// EcdsaSecp256k1 verifies a secp256k1 ECDSA signature over a pre-hashed
// message. The inputs are byte witnesses: 32 for the public key x coordinate,
// 32 for y, 64 for the r||s signature, and the remainder the hashed message.
// The single output is 1 when the signature verifies and 0 otherwise.
func (b *Backend) EcdsaSecp256k1(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (pwg.OpcodeResolution, error) {
	if len(inputs) < 32+32+64 {
		return 0, &pwg.IncorrectNumFunctionArgumentsError{Expected: 128, Func: acir.EcdsaSecp256k1, Got: len(inputs)}
	}
	raw := make([]byte, len(inputs))
	for i, in := range inputs {
		v, err := b.witnessValue(initialWitness, in.Witness)
		if err != nil {
			return 0, err
		}
		raw[i] = byte(v.Uint64())
	}
	pubKeyX := raw[0:32]
	pubKeyY := raw[32:64]
	sig := raw[64:128]
	hashedMessage := raw[128:]

	var pk ecdsa.PublicKey
	pk.A.X.SetBytes(pubKeyX)
	pk.A.Y.SetBytes(pubKeyY)

	valid, err := pk.Verify(sig, hashedMessage, nil)
	if err != nil {
		return 0, &pwg.BlackBoxFuncFailedError{Func: acir.EcdsaSecp256k1, Reason: err.Error()}
	}
	result := uint64(0)
	if valid {
		result = 1
	}
	if err := pwg.InsertValue(outputs[0], b.f.FromInterface(result), initialWitness); err != nil {
		return 0, err
	}
	return pwg.OpcodeSolved, nil
}

func (b *Backend) ComputeMerkleRoot(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (pwg.OpcodeResolution, error) {
	return 0, &pwg.UnsupportedBlackBoxFuncError{Func: acir.ComputeMerkleRoot}
}

func (b *Backend) SchnorrVerify(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (pwg.OpcodeResolution, error) {
	return 0, &pwg.UnsupportedBlackBoxFuncError{Func: acir.SchnorrVerify}
}

func (b *Backend) Pedersen(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (pwg.OpcodeResolution, error) {
	return 0, &pwg.UnsupportedBlackBoxFuncError{Func: acir.Pedersen}
}

func (b *Backend) FixedBaseScalarMul(initialWitness *acir.WitnessMap, inputs []acir.FunctionInput, outputs []acir.Witness) (pwg.OpcodeResolution, error) {
	return 0, &pwg.UnsupportedBlackBoxFuncError{Func: acir.FixedBaseScalarMul}
}
