package mathutil

import (
	"math"
	"math/big"
	"math/bits"
	"unsafe"
)

var (
	big2 = big.NewInt(2)
	big5 = big.NewInt(5)
)

// BinaryDigits returns the number of bits needed to represent value.
func BinaryDigits(value uint32) int {
	return int(8*unsafe.Sizeof(uint32(0))) - bits.LeadingZeros32(value)
}

// MSB returns the position of the most significant set bit, or -1 for zero.
func MSB(value uint32) int {
	return BinaryDigits(value) - 1
}

// AbsDiff8 returns |a-b|.
func AbsDiff8(a, b uint8) uint8 {
	if a >= b {
		return a - b
	}
	return b - a
}

// WrappingShr shifts value right by n modulo the bit width of value.
// A shift by 32 leaves value unchanged, a shift by 33 is a shift by 1.
func WrappingShr(value uint32, n uint) uint32 {
	return value >> (n & 31)
}

// WrappingShl is the left counterpart of WrappingShr.
func WrappingShl(value uint32, n uint) uint32 {
	return value << (n & 31)
}

// TruncWord converts the word to a float64 integer, truncates it toward zero
// and converts it back.
func TruncWord(word uint32) uint32 {
	return uint32(math.Trunc(float64(word)))
}

// Pow2Dec returns such coef and exp, that 2^pow = coef * 10^exp exactly.
func Pow2Dec(pow int) (coef *big.Int, exp int32) {
	if pow >= 0 {
		return new(big.Int).Exp(big2, big.NewInt(int64(pow)), nil), 0
	}
	// 2^-n = 5^n / 10^n
	return new(big.Int).Exp(big5, big.NewInt(int64(-pow)), nil), int32(pow)
}
