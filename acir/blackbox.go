package acir

import "strconv"

// BlackBoxFunc names a cryptographic primitive that is opaque to the
// constraint system and delegated to the proving backend.
type BlackBoxFunc uint32

const (
	AES BlackBoxFunc = iota + 1
	AND
	XOR
	RANGE
	SHA256
	Blake2s
	ComputeMerkleRoot
	SchnorrVerify
	Pedersen
	HashToField128Security
	EcdsaSecp256k1
	FixedBaseScalarMul
	Keccak256
)

func (f BlackBoxFunc) String() string {
	switch f {
	case AES:
		return "aes"
	case AND:
		return "and"
	case XOR:
		return "xor"
	case RANGE:
		return "range"
	case SHA256:
		return "sha256"
	case Blake2s:
		return "blake2s"
	case ComputeMerkleRoot:
		return "compute_merkle_root"
	case SchnorrVerify:
		return "schnorr_verify"
	case Pedersen:
		return "pedersen"
	case HashToField128Security:
		return "hash_to_field_128_security"
	case EcdsaSecp256k1:
		return "ecdsa_secp256k1"
	case FixedBaseScalarMul:
		return "fixed_base_scalar_mul"
	case Keccak256:
		return "keccak256"
	default:
		return "black_box_func_" + strconv.Itoa(int(f))
	}
}

// FunctionInput is a typed input descriptor for a blackbox call: the witness
// carrying the value, plus the bit width the value is declared to fit in.
type FunctionInput struct {
	Witness Witness
	NumBits uint32
}

// BlackBoxFuncCall invokes a named primitive on input witnesses and writes
// the results into the output witnesses.
type BlackBoxFuncCall struct {
	Name    BlackBoxFunc
	Inputs  []FunctionInput
	Outputs []Witness
}
