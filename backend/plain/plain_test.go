package plain_test

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/secp256k1/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/zkforge/acvm/acir"
	"github.com/zkforge/acvm/backend/plain"
	"github.com/zkforge/acvm/field"
	"github.com/zkforge/acvm/field/bn254"
	"github.com/zkforge/acvm/field/m31"
	"github.com/zkforge/acvm/pwg"
)

func byteWitnesses(f field.Field, witness *acir.WitnessMap, first acir.Witness, data []byte) []acir.FunctionInput {
	inputs := make([]acir.FunctionInput, len(data))
	for i, b := range data {
		w := first + acir.Witness(i)
		witness.Set(w, f.FromInterface(uint64(b)))
		inputs[i] = acir.FunctionInput{Witness: w, NumBits: 8}
	}
	return inputs
}

func digestOutputs(first acir.Witness) []acir.Witness {
	outputs := make([]acir.Witness, 32)
	for i := range outputs {
		outputs[i] = first + acir.Witness(i)
	}
	return outputs
}

func assertDigest(t *testing.T, f field.Field, witness *acir.WitnessMap, outputs []acir.Witness, wantHex string) {
	t.Helper()
	want, err := hex.DecodeString(wantHex)
	require.NoError(t, err)
	require.Len(t, outputs, len(want))
	for i, w := range outputs {
		got, ok := witness.Get(w)
		require.True(t, ok, "output %d unassigned", i)
		assert.Equal(t, f.FromInterface(uint64(want[i])), got, "digest byte %d", i)
	}
}

func TestSHA256(t *testing.T) {
	f := &m31.Field{}
	backend := plain.New(f)
	witness := acir.NewWitnessMap()

	inputs := byteWitnesses(f, witness, 1, []byte("abc"))
	outputs := digestOutputs(100)
	res, err := backend.SHA256(witness, inputs, outputs)
	require.NoError(t, err)
	assert.Equal(t, pwg.OpcodeSolved, res)
	assertDigest(t, f, witness, outputs,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
}

func TestBlake2s(t *testing.T) {
	f := &m31.Field{}
	backend := plain.New(f)
	witness := acir.NewWitnessMap()

	inputs := byteWitnesses(f, witness, 1, []byte("abc"))
	outputs := digestOutputs(100)
	res, err := backend.Blake2s(witness, inputs, outputs)
	require.NoError(t, err)
	assert.Equal(t, pwg.OpcodeSolved, res)
	assertDigest(t, f, witness, outputs,
		"508c5e8c327c14e2e1a72ba34eeb452f37458b209ed63a294d999b4c86675982")
}

func TestKeccak256(t *testing.T) {
	f := &m31.Field{}
	backend := plain.New(f)
	witness := acir.NewWitnessMap()

	inputs := byteWitnesses(f, witness, 1, []byte("abc"))
	outputs := digestOutputs(100)
	res, err := backend.Keccak256(witness, inputs, outputs)
	require.NoError(t, err)
	assert.Equal(t, pwg.OpcodeSolved, res)
	assertDigest(t, f, witness, outputs,
		"4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")
}

func TestAndXor(t *testing.T) {
	f := &m31.Field{}
	backend := plain.New(f)
	witness := acir.NewWitnessMap()
	witness.Set(1, f.FromInterface(0b1100))
	witness.Set(2, f.FromInterface(0b1010))
	inputs := []acir.FunctionInput{
		{Witness: 1, NumBits: 4},
		{Witness: 2, NumBits: 4},
	}

	res, err := backend.And(witness, inputs, []acir.Witness{3})
	require.NoError(t, err)
	assert.Equal(t, pwg.OpcodeSolved, res)
	got, _ := witness.Get(3)
	assert.Equal(t, f.FromInterface(0b1000), got)

	res, err = backend.Xor(witness, inputs, []acir.Witness{4})
	require.NoError(t, err)
	assert.Equal(t, pwg.OpcodeSolved, res)
	got, _ = witness.Get(4)
	assert.Equal(t, f.FromInterface(0b0110), got)
}

func TestRange(t *testing.T) {
	f := &m31.Field{}
	backend := plain.New(f)
	witness := acir.NewWitnessMap()
	witness.Set(1, f.FromInterface(255))
	witness.Set(2, f.FromInterface(256))

	res, err := backend.Range(witness, []acir.FunctionInput{{Witness: 1, NumBits: 8}}, nil)
	require.NoError(t, err)
	assert.Equal(t, pwg.OpcodeSolved, res)

	_, err = backend.Range(witness, []acir.FunctionInput{{Witness: 2, NumBits: 8}}, nil)
	var unsat *pwg.UnsatisfiedConstraintError
	require.ErrorAs(t, err, &unsat)
}

func TestHashToField128Security(t *testing.T) {
	f := &m31.Field{}
	backend := plain.New(f)
	witness := acir.NewWitnessMap()

	inputs := byteWitnesses(f, witness, 1, []byte("abc"))
	res, err := backend.HashToField128Security(witness, inputs, []acir.Witness{50})
	require.NoError(t, err)
	assert.Equal(t, pwg.OpcodeSolved, res)
	_, ok := witness.Get(50)
	assert.True(t, ok)
}

func TestEcdsaSecp256k1(t *testing.T) {
	f := &bn254.Field{}
	backend := plain.New(f)

	privKey, err := ecdsa.GenerateKey(rand.Reader)
	require.NoError(t, err)

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte("hello world"))
	hashed := h.Sum(nil)

	sig, err := privKey.Sign(hashed, nil)
	require.NoError(t, err)

	pubX := privKey.PublicKey.A.X.Bytes()
	pubY := privKey.PublicKey.A.Y.Bytes()

	raw := make([]byte, 0, 128+len(hashed))
	raw = append(raw, pubX[:]...)
	raw = append(raw, pubY[:]...)
	raw = append(raw, sig...)
	raw = append(raw, hashed...)

	witness := acir.NewWitnessMap()
	inputs := byteWitnesses(f, witness, 1, raw)
	res, err := backend.EcdsaSecp256k1(witness, inputs, []acir.Witness{500})
	require.NoError(t, err)
	assert.Equal(t, pwg.OpcodeSolved, res)
	got, ok := witness.Get(500)
	require.True(t, ok)
	assert.True(t, f.IsOne(got))
}

func TestEcdsaSecp256k1RejectsTamperedMessage(t *testing.T) {
	f := &bn254.Field{}
	backend := plain.New(f)

	privKey, err := ecdsa.GenerateKey(rand.Reader)
	require.NoError(t, err)

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte("hello world"))
	hashed := h.Sum(nil)

	sig, err := privKey.Sign(hashed, nil)
	require.NoError(t, err)

	hashed[0] ^= 1
	pubX := privKey.PublicKey.A.X.Bytes()
	pubY := privKey.PublicKey.A.Y.Bytes()

	raw := make([]byte, 0, 128+len(hashed))
	raw = append(raw, pubX[:]...)
	raw = append(raw, pubY[:]...)
	raw = append(raw, sig...)
	raw = append(raw, hashed...)

	witness := acir.NewWitnessMap()
	inputs := byteWitnesses(f, witness, 1, raw)
	res, err := backend.EcdsaSecp256k1(witness, inputs, []acir.Witness{500})
	require.NoError(t, err)
	assert.Equal(t, pwg.OpcodeSolved, res)
	got, ok := witness.Get(500)
	require.True(t, ok)
	assert.True(t, got.IsZero())
}

func TestUnsupportedPrimitives(t *testing.T) {
	f := &m31.Field{}
	backend := plain.New(f)
	witness := acir.NewWitnessMap()

	_, err := backend.AES(witness, nil, nil)
	var unsupported *pwg.UnsupportedBlackBoxFuncError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, acir.AES, unsupported.Func)

	_, err = backend.Pedersen(witness, nil, nil)
	require.ErrorAs(t, err, &unsupported)
	_, err = backend.SchnorrVerify(witness, nil, nil)
	require.ErrorAs(t, err, &unsupported)
	_, err = backend.ComputeMerkleRoot(witness, nil, nil)
	require.ErrorAs(t, err, &unsupported)
	_, err = backend.FixedBaseScalarMul(witness, nil, nil)
	require.ErrorAs(t, err, &unsupported)
}
