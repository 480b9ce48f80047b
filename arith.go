// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ps2float

import (
	"math"

	mu "github.com/avdva/ps2float/internal/mathutil"
)

// abnormalOutcome is the hardware result of an operation on two abnormal values.
type abnormalOutcome struct {
	a, b      Float
	sum, diff Float
}

var abnormalTable = [...]abnormalOutcome{
	{MaxValue, MaxValue, MaxValue, PosZero},
	{MinValue, MinValue, MinValue, PosZero},
	{MinValue, MaxValue, MaxValue, MinValue},
	{MaxValue, MinValue, PosZero, MaxValue},
	{PosInf, PosInf, MaxValue, PosZero},
	{NegInf, PosInf, PosZero, MinValue},
	{NegInf, NegInf, MinValue, PosZero},
}

// Add returns f+other.
// Denormalized operands are treated as zeros, the result is rounded toward zero.
// If the exponent overflows, the result saturates to +-Fmax.
// If it underflows, the result is a signed zero.
func (f Float) Add(other Float) Float {
	if f.IsDenormalized() || other.IsDenormalized() {
		return solveDenormalized(f, other, true)
	}
	if f.IsAbnormal() && other.IsAbnormal() {
		return solveAbnormal(f, other, true)
	}
	// only values of the same sign are added, otherwise the magnitudes are subtracted.
	if neg(f) != neg(other) {
		return f.Sub(other)
	}
	return addOrSub(f, other, true)
}

// Sub returns f-other.
// See Add for the rounding rules.
func (f Float) Sub(other Float) Float {
	if f.IsDenormalized() || other.IsDenormalized() {
		return solveDenormalized(f, other, false)
	}
	if f.IsAbnormal() && other.IsAbnormal() {
		return solveAbnormal(f, other, false)
	}
	if f.Eq(other) {
		return withSign(PosZero, subSign(f, other))
	}
	return addOrSub(f, other, false)
}

// Mul is not implemented yet, it panics.
func (f Float) Mul(other Float) Float {
	panic("ps2float: Mul is not implemented")
}

// Div is not implemented yet, it panics.
func (f Float) Div(other Float) Float {
	panic("ps2float: Div is not implemented")
}

func solveAbnormal(a, b Float, add bool) Float {
	for _, outcome := range abnormalTable {
		if outcome.a != a || outcome.b != b {
			continue
		}
		if add {
			return outcome.sum
		}
		return outcome.diff
	}
	panic("ps2float: unhandled abnormal operation " + a.GoString() + ", " + b.GoString())
}

// solveDenormalized returns the operand, which is not denormalized, or zero.
func solveDenormalized(a, b Float, add bool) Float {
	var result Float
	aDen, bDen := a.IsDenormalized(), b.IsDenormalized()
	switch {
	case aDen && !bDen:
		result = b
	case !aDen && bDen:
		result = a
	case aDen && bDen:
		result = PosZero
	default:
		panic("ps2float: both operands are not denormalized")
	}
	if add {
		return withSign(result, addSign(a, b))
	}
	return withSign(result, subSign(a, b))
}

// addSign returns the sign of a+b.
// Only -0 + -0 gives a negative zero.
func addSign(a, b Float) bool {
	if a.IsZero() && b.IsZero() {
		switch {
		case !neg(a) || !neg(b):
			return false
		case neg(a) && neg(b):
			return true
		default:
			panic("ps2float: unhandled addition sign")
		}
	}
	return neg(a)
}

// subSign returns the sign of a-b.
// Only -0 - +0 gives a negative zero.
func subSign(a, b Float) bool {
	if a.IsZero() && b.IsZero() {
		switch {
		case !neg(a) || neg(b):
			return false
		case neg(a) && !neg(b):
			return true
		default:
			panic("ps2float: unhandled subtraction sign")
		}
	}
	if a.Cmp(b) < 0 {
		return !neg(b)
	}
	return neg(a)
}

// addOrSub adds or subtracts the mantissas of two normal values.
func addOrSub(a, b Float, add bool) Float {
	aNeg, aExp, aMant := split(a)
	_, bExp, bMant := split(b)
	diff := uint(mu.AbsDiff8(aExp, bExp))
	aMant |= implicitBit
	bMant |= implicitBit

	// align the exponents, the bits shifted out are lost.
	var e uint8
	if aExp >= bExp {
		bMant = mu.WrappingShr(bMant, diff)
		e = aExp
	} else {
		aMant = mu.WrappingShr(aMant, diff)
		e = bExp
	}

	var m number
	var sign bool
	if add {
		m, sign = aMant+bMant, aNeg
	} else {
		m, sign = aMant-bMant, subSign(a, b)
	}

	if m > 0 {
		for pos := mu.MSB(m); pos != mantBits; {
			if pos > mantBits {
				if e == math.MaxUint8 {
					return saturate(sign)
				}
				m >>= 1
				e++
				pos--
			} else {
				if e == 0 {
					return withSign(PosZero, sign)
				}
				m <<= 1
				e--
				pos++
			}
		}
		// no denormals: a normalized result with a zero exponent is flushed.
		if e == 0 {
			return withSign(PosZero, sign)
		}
	}
	return truncate(fromFields(sign, e, m))
}

func saturate(sign bool) Float {
	if sign {
		return MinValue
	}
	return MaxValue
}

// truncate rounds f toward zero.
// The word is passed through an integer float64 conversion, which never changes it.
func truncate(f Float) Float {
	return Float(mu.TruncWord(uint32(f)))
}
