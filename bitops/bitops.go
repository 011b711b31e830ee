// Package bitops provides single-bit and flag primitives for integer types.
package bitops

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Size returns the width in bits of the integer type T.
func Size[T constraints.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// IsFlag reports whether x has exactly one bit set.
func IsFlag[T constraints.Integer](x T) bool {
	// Subtracting one from a power of two clears its single bit, so the
	// bitwise AND with the original value must be zero.
	return x > 0 && x&(x-1) == 0
}

// IsFlagSet reports whether the given flag is set in x.
// It does not check that flag is actually a flag.
func IsFlagSet[T constraints.Integer](x, flag T) bool {
	return x&flag != 0
}

// SetFlag returns x with the given flag set.
// It does not check that flag is actually a flag.
func SetFlag[T constraints.Integer](x, flag T) T {
	return x | flag
}

// IsBitSet reports whether the bit at bitIndex is set in x. Bits are
// indexed from zero, least significant first.
//
// Panics if bitIndex is negative or not less than the width of T.
func IsBitSet[T constraints.Integer](x T, bitIndex int) bool {
	checkIndex[T](bitIndex)
	return IsFlagSet(x, T(1)<<bitIndex)
}

// SetBit returns x with the bit at bitIndex set to one. Bits are indexed
// from zero, least significant first.
//
// Panics if bitIndex is negative or not less than the width of T.
func SetBit[T constraints.Integer](x T, bitIndex int) T {
	checkIndex[T](bitIndex)
	return SetFlag(x, T(1)<<bitIndex)
}

func checkIndex[T constraints.Integer](bitIndex int) {
	if bitIndex < 0 || bitIndex >= Size[T]() {
		panic(fmt.Sprintf("bitops: bit index %d out of range for %d-bit type", bitIndex, Size[T]()))
	}
}
