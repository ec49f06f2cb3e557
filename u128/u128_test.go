package u128_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PlatariumNetwork/PlatariumCore/u128"
)

func TestFromUint64AndString(t *testing.T) {
	v := u128.FromUint64(12345)
	assert.Equal(t, "12345", v.String())
	assert.False(t, v.IsZero())
	assert.True(t, u128.Zero.IsZero())
}

func TestBytes16RoundTrip(t *testing.T) {
	v := u128.FromUint64(1<<63 + 7)
	b := v.Bytes16()
	back := u128.FromBytes16(b)
	assert.Equal(t, 0, v.Cmp(back))
}

func TestAddOverflow(t *testing.T) {
	maxU128 := new(big.Int).Lsh(big.NewInt(1), 128)
	maxU128.Sub(maxU128, big.NewInt(1))
	var maxBuf [16]byte
	maxU128.FillBytes(maxBuf[:])
	max := u128.FromBytes16(maxBuf)

	_, err := max.Add(u128.FromUint64(1))
	assert.ErrorIs(t, err, u128.ErrOverflow)

	sum, err := max.Add(u128.Zero)
	assert.NoError(t, err)
	assert.Equal(t, 0, sum.Cmp(max))
}

func TestSubUnderflow(t *testing.T) {
	small := u128.FromUint64(1)
	large := u128.FromUint64(2)
	_, err := small.Sub(large)
	assert.ErrorIs(t, err, u128.ErrOverflow)

	diff, err := large.Sub(small)
	assert.NoError(t, err)
	assert.Equal(t, "1", diff.String())
}

func TestComparisons(t *testing.T) {
	a := u128.FromUint64(5)
	b := u128.FromUint64(10)

	assert.True(t, b.GreaterOrEqual(a))
	assert.True(t, a.GreaterOrEqual(a))
	assert.False(t, a.GreaterOrEqual(b))

	assert.True(t, a.GreaterThanZero())
	assert.False(t, u128.Zero.GreaterThanZero())
}
