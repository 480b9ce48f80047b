// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package ps2float implements the single-precision floating-point variant of
// the PlayStation 2 EE and VU units.
// It uses the IEEE 754 binary32 layout, but has no denormals, no NaNs and no infinities:
// exponent 0 is always treated as zero, the NaN encodings are the signed maximum values (Fmax),
// and the results are always rounded toward zero.
package ps2float

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	mu "github.com/avdva/ps2float/internal/mathutil"
)

type number = uint32

const (
	bitsInNumber = 32
	mantBits     = 23
	expBits      = 8
	bias         = 1<<(expBits-1) - 1

	signBit     = 1 << (bitsInNumber - 1)
	absMask     = signBit - 1
	mantMask    = 1<<mantBits - 1
	expMask     = 1<<expBits - 1
	implicitBit = 1 << mantBits
)

const (
	// MaxValue is +Fmax, the greatest value, encoded where IEEE 754 places NaN.
	MaxValue = Float(0x7FFFFFFF)
	// MinValue is -Fmax, the smallest value.
	MinValue = Float(0xFFFFFFFF)
	// PosInf is the encoding IEEE 754 uses for +Inf.
	PosInf = Float(0x7F800000)
	// NegInf is the encoding IEEE 754 uses for -Inf.
	NegInf = Float(0xFF800000)
	// PosZero is +0.
	PosZero = Float(0)
	// NegZero is -0.
	NegZero = Float(signBit)
)

// Float is a PS2 floating-point number.
// The value is stored exactly as the hardware stores it:
//   31 30      23 22                    0
//   s  eeeeeeee mmmmmmmmmmmmmmmmmmmmmmm
//
// Exponent is biased by 127, mantissa has an implicit leading 1 for non-zero exponents.
// Values compare bitwise with ==, use Eq or Cmp for numeric comparison.
type Float number

func neg(f Float) bool {
	return f&signBit != 0
}

func exp(f Float) uint8 {
	return uint8(f >> mantBits & expMask)
}

func mant(f Float) number {
	return number(f & mantMask)
}

func split(f Float) (sign bool, exponent uint8, mantissa number) {
	return neg(f), exp(f), mant(f)
}

func fromFields(sign bool, exponent uint8, mantissa number) Float {
	result := Float(number(exponent)<<mantBits | mantissa&mantMask)
	if sign {
		result |= signBit
	}
	return result
}

func withSign(f Float, sign bool) Float {
	if sign {
		return f | signBit
	}
	return f &^ signBit
}

// FromBits returns a float for the given bit pattern.
func FromBits(v uint32) Float {
	return Float(v)
}

// FromFields returns a float for the given sign, biased exponent, and mantissa.
// Only the lowest 23 bits of the mantissa are used.
func FromFields(neg bool, exponent uint8, mantissa uint32) Float {
	return fromFields(neg, exponent, mantissa)
}

// Max returns +Fmax.
func Max() Float {
	return MaxValue
}

// Min returns -Fmax.
func Min() Float {
	return MinValue
}

// Zero returns +0.
func Zero() Float {
	return PosZero
}

// Bits returns the bit pattern of f.
func (f Float) Bits() uint32 {
	return uint32(f)
}

// Neg returns true for negative values, including -0.
func (f Float) Neg() bool {
	return neg(f)
}

// Exp returns the biased exponent.
func (f Float) Exp() uint8 {
	return exp(f)
}

// Mant returns the mantissa without the implicit leading bit.
func (f Float) Mant() uint32 {
	return mant(f)
}

// IsZero returns true for +0 and -0.
func (f Float) IsZero() bool {
	return f&absMask == 0
}

// IsDenormalized returns true, if the exponent is 0.
// Zeros are denormalized as well.
func (f Float) IsDenormalized() bool {
	return exp(f) == 0
}

// IsAbnormal returns true for +-Fmax and +-Inf.
func (f Float) IsAbnormal() bool {
	switch f {
	case MaxValue, MinValue, PosInf, NegInf:
		return true
	}
	return false
}

// ord maps the sign-magnitude encoding to two's complement.
func ord(f Float) int32 {
	v := int32(f & absMask)
	if neg(f) {
		return -v
	}
	return v
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
// +0 and -0 are equal.
func (f Float) Cmp(other Float) int {
	a, b := ord(f), ord(other)
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Eq returns true, if both values are equal according to Cmp.
func (f Float) Eq(other Float) bool {
	return ord(f) == ord(other)
}

// Float64 returns the value as PS2 arithmetic sees it.
// Denormals are returned as signed zeros, encodings with exponent 255 are finite.
func (f Float) Float64() float64 {
	sign, e, m := split(f)
	if e == 0 {
		if sign {
			return math.Copysign(0, -1)
		}
		return 0
	}
	return signed(math.Ldexp(float64(m|implicitBit), int(e)-bias-mantBits), sign)
}

// Decimal returns the exact value of f, see Float64.
func (f Float) Decimal() decimal.Decimal {
	_, e, m := split(f)
	if e == 0 {
		return decimal.Zero
	}
	coef, dexp := mu.Pow2Dec(int(e) - bias - mantBits)
	coef.Mul(coef, big.NewInt(int64(m|implicitBit)))
	if neg(f) {
		coef.Neg(coef)
	}
	return decimal.NewFromBigInt(coef, dexp)
}

// displayValue reconstructs the number for String.
// Unlike Float64, it always restores the implicit bit.
func (f Float) displayValue() float64 {
	sign, e, m := split(f)
	mantissa := float64(m)/(1<<mantBits) + 1
	return signed(mantissa*math.Pow(2, float64(int(e)-bias)), sign)
}

func signed(v float64, sign bool) float64 {
	if sign {
		return -v
	}
	return v
}

// String returns the value with two fractional digits.
// Denormals and abnormal values are marked, like `Denormalized(0.00)` or `Inf(340282366920938463463374607431768211456.00)`.
func (f Float) String() string {
	var builder strings.Builder
	f.toStringsBuilder(&builder)
	return builder.String()
}

func (f Float) toStringsBuilder(builder *strings.Builder) {
	var prefix string
	switch {
	case f.IsDenormalized():
		prefix = "Denormalized"
	case f == MaxValue:
		prefix = "Fmax"
	case f == MinValue:
		prefix = "-Fmax"
	case f == PosInf:
		prefix = "Inf"
	case f == NegInf:
		prefix = "-Inf"
	}
	s := strconv.FormatFloat(f.displayValue(), 'f', 2, 64)
	if len(prefix) == 0 {
		builder.WriteString(s)
		return
	}
	builder.WriteString(prefix)
	builder.WriteRune('(')
	builder.WriteString(s)
	builder.WriteRune(')')
}

// GoString returns debug string representation.
func (f Float) GoString() string {
	sign, e, m := split(f)
	return f.String() + fmt.Sprintf(" {%v, %#02x, %#06x}", sign, e, m)
}
