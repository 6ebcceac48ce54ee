package bn254

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmeticMatchesFr(t *testing.T) {
	f := &Field{}
	a := f.FromInterface(12345)
	b := f.FromInterface("21888242871839275222246405745257275088548364400416034343698204186575808495616")

	var fa, fb, want fr.Element
	fa.SetUint64(12345)
	fb.SetString("21888242871839275222246405745257275088548364400416034343698204186575808495616")

	want.Mul(&fa, &fb)
	assert.Equal(t, want.String(), f.String(f.Mul(a, b)))
	want.Add(&fa, &fb)
	assert.Equal(t, want.String(), f.String(f.Add(a, b)))
}

func TestInverseRoundTrip(t *testing.T) {
	f := &Field{}
	a := f.FromInterface(987654321)
	inv, ok := f.Inverse(a)
	require.True(t, ok)
	assert.True(t, f.IsOne(f.Mul(a, inv)))
}

func TestToBigIntRoundTrip(t *testing.T) {
	f := &Field{}
	a := f.FromInterface(424242)
	assert.Equal(t, "424242", f.ToBigInt(a).String())
	assert.Equal(t, a, f.FromInterface(f.ToBigInt(a)))
}

func TestFieldMetadata(t *testing.T) {
	f := &Field{}
	assert.Equal(t, fr.Modulus().String(), f.Field().String())
	assert.Equal(t, fr.Modulus().BitLen(), f.FieldBitLen())
}
