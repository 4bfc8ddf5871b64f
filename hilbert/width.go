package hilbert

import (
	"math/bits"

	"lukechampine.com/uint128"
)

// Width returns the number of bits in T.
func Width[T Coord]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// IndexBits returns the number of bits in a curve index for coordinates of
// type T.
func IndexBits[T Coord]() uint { return 2 * Width[T]() }

// MaxIndex returns the largest index that decodes to a T coordinate pair.
func MaxIndex[T Coord]() uint128.Uint128 {
	return uint128.Max.Rsh(128 - IndexBits[T]())
}

// Order returns the smallest even number of bits per coordinate that holds
// both x and y.
//
// The 2^Order x 2^Order square at the origin is covered by exactly the first
// 4^Order indices, and because Order is even the curve inside it has the same
// orientation it has for every coordinate width.
func Order(x, y uint64) uint {
	n := uint(bits.Len64(x | y))
	return (n + 1) &^ 1
}
