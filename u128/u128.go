// Package u128 implements the unsigned 128-bit scalar used for asset
// amounts and µPLP quantities. No library in reach ships a plain
// uint128 type; math/big.Int, range-checked to stay within [0, 2^128)
// on every construction and arithmetic op, is the idiomatic stdlib
// stand-in.
package u128

import (
	"errors"
	"math/big"
)

// ErrOverflow is returned by any operation that would produce a value
// outside [0, 2^128), or by a negative subtraction result.
var ErrOverflow = errors.New("ArithmeticOverflow")

// Int is an immutable unsigned 128-bit integer.
type Int struct {
	v big.Int
}

var max = func() *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), 128)
	return m.Sub(m, big.NewInt(1))
}()

// Zero is the additive identity.
var Zero = Int{}

// FromUint64 wraps a u64 value.
func FromUint64(v uint64) Int {
	var i Int
	i.v.SetUint64(v)
	return i
}

// FromBytes16 decodes a 16-byte big-endian encoding, as produced by
// Bytes16.
func FromBytes16(b [16]byte) Int {
	var i Int
	i.v.SetBytes(b[:])
	return i
}

func inRange(v *big.Int) bool {
	return v.Sign() >= 0 && v.Cmp(max) <= 0
}

// IsZero reports whether i == 0.
func (i Int) IsZero() bool { return i.v.Sign() == 0 }

// Cmp compares i to other: -1, 0, or 1.
func (i Int) Cmp(other Int) int { return i.v.Cmp(&other.v) }

// String renders the decimal representation.
func (i Int) String() string { return i.v.String() }

// Bytes16 returns the canonical 16-byte big-endian encoding used for
// hashing.
func (i Int) Bytes16() [16]byte {
	var out [16]byte
	i.v.FillBytes(out[:])
	return out
}

// Add returns i+other, or ErrOverflow if the result would exceed 2^128-1.
func (i Int) Add(other Int) (Int, error) {
	sum := new(big.Int).Add(&i.v, &other.v)
	if !inRange(sum) {
		return Int{}, ErrOverflow
	}
	return Int{v: *sum}, nil
}

// Sub returns i-other, or ErrOverflow if other > i.
func (i Int) Sub(other Int) (Int, error) {
	diff := new(big.Int).Sub(&i.v, &other.v)
	if !inRange(diff) {
		return Int{}, ErrOverflow
	}
	return Int{v: *diff}, nil
}

// GreaterOrEqual reports whether i >= other.
func (i Int) GreaterOrEqual(other Int) bool { return i.v.Cmp(&other.v) >= 0 }

// GreaterThanZero reports whether i > 0.
func (i Int) GreaterThanZero() bool { return i.v.Sign() > 0 }
