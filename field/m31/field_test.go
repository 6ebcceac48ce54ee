package m31

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark/constraint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	f := &Field{}
	a := f.FromInterface(12345)
	b := f.FromInterface(67890)

	assert.Equal(t, f.FromInterface(12345+67890), f.Add(a, b))
	assert.Equal(t, f.FromInterface(12345*67890%P), f.Mul(a, b))
	assert.Equal(t, constraint.Element{}, f.Add(a, f.Neg(a)))
	assert.Equal(t, a, f.Sub(f.Add(a, b), b))
}

func TestFromInterfaceReduces(t *testing.T) {
	f := &Field{}
	x := new(big.Int).Add(Pbig, big.NewInt(3))
	assert.Equal(t, f.FromInterface(3), f.FromInterface(x))
	assert.Equal(t, constraint.Element{}, f.FromInterface(Pbig))
}

func TestInverse(t *testing.T) {
	f := &Field{}
	for _, v := range []uint64{1, 2, 3, 1 << 20, P - 1} {
		a := f.FromInterface(v)
		inv, ok := f.Inverse(a)
		require.True(t, ok, "value %d", v)
		assert.True(t, f.IsOne(f.Mul(a, inv)), "value %d", v)
	}
	zero := f.FromInterface(0)
	_, ok := f.Inverse(zero)
	assert.False(t, ok)
}

func TestUint64RoundTrip(t *testing.T) {
	f := &Field{}
	v, ok := f.Uint64(f.FromInterface(424242))
	require.True(t, ok)
	assert.Equal(t, uint64(424242), v)
	assert.Equal(t, "424242", f.String(f.FromInterface(424242)))
}
