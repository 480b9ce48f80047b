// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ps2float

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromBits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v    uint32
		neg  bool
		exp  uint8
		mant uint32
	}{
		{0x40A9999A, false, 0x81, 0x29999A}, // 5.3
		{0x00000000, false, 0, 0},
		{0x80000000, true, 0, 0},
		{0x7FFFFFFF, false, 0xFF, 0x7FFFFF},
		{0xFFFFFFFF, true, 0xFF, 0x7FFFFF},
		{0x7F800000, false, 0xFF, 0},
		{0xFF800000, true, 0xFF, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f := FromBits(test.v)
			a.Equal(test.v, f.Bits())
			a.Equal(test.neg, f.Neg())
			a.Equal(test.exp, f.Exp())
			a.Equal(test.mant, f.Mant())
		})
	}
}

func TestFromFields(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		neg      bool
		exp      uint8
		mant     uint32
		expected uint32
	}{
		{false, 0x81, 0x29999A, 0x40A9999A},
		{false, 0, 0, 0},
		{true, 0, 0, 0x80000000},
		{false, 0xFF, 0x7FFFFF, 0x7FFFFFFF},
		{true, 0xFF, 0x7FFFFF, 0xFFFFFFFF},
		{false, 0xFF, 0, 0x7F800000},
		{true, 0xFF, 0, 0xFF800000},
		{false, 0x7F, 0xFF800000, 0x3F800000}, // high bits are ignored
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.expected, FromFields(test.neg, test.exp, test.mant).Bits())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < 10000; i++ {
		v := rnd.Uint32()
		f := FromBits(v)
		if !a.Equal(v, f.Bits()) {
			break
		}
		a.Equal(f, FromFields(f.Neg(), f.Exp(), f.Mant()))
	}
}

func TestConstants(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint32(0x7FFFFFFF), Max().Bits())
	a.Equal(uint32(0xFFFFFFFF), Min().Bits())
	a.Equal(uint32(0), Zero().Bits())
	a.Equal(uint32(0x7F800000), PosInf.Bits())
	a.Equal(uint32(0xFF800000), NegInf.Bits())
	a.Equal(uint32(0x80000000), NegZero.Bits())
}

func TestClassification(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v                      Float
		zero, denorm, abnormal bool
	}{
		{PosZero, true, true, false},
		{NegZero, true, true, false},
		{FromBits(0x00000001), false, true, false},
		{FromBits(0x807FFFFF), false, true, false},
		{FromBits(0x3F800000), false, false, false},
		{FromBits(0x7F7FFFFF), false, false, false},
		{FromBits(0x7F800001), false, false, false},
		{FromBits(0x7FFFFFFE), false, false, false},
		{MaxValue, false, false, true},
		{MinValue, false, false, true},
		{PosInf, false, false, true},
		{NegInf, false, false, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.zero, test.v.IsZero())
			a.Equal(test.denorm, test.v.IsDenormalized())
			a.Equal(test.abnormal, test.v.IsAbnormal())
		})
	}
}

func TestCmp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b Float
		cmp  int
	}{
		{PosZero, NegZero, 0},
		{PosZero, PosZero, 0},
		{FromBits(0x3F800000), FromBits(0x3F800000), 0},
		{FromBits(0x40000000), FromBits(0x3F800000), 1},
		{FromBits(0xBF800000), FromBits(0x3F800000), -1},
		{FromBits(0xC0000000), FromBits(0xBF800000), -1},
		{FromBits(0xBF800000), NegZero, -1},
		{FromBits(0x00000001), PosZero, 1},
		{FromBits(0x80000001), NegZero, -1},
		{MinValue, FromBits(0x00000001), -1},
		{MinValue, NegInf, -1},
		{MaxValue, PosInf, 1},
		{MaxValue, MinValue, 1},
		{PosInf, FromBits(0x7F7FFFFF), 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.cmp, test.a.Cmp(test.b))
			a.Equal(-test.cmp, test.b.Cmp(test.a))
			a.Equal(test.cmp == 0, test.a.Eq(test.b))
		})
	}
}

func TestCmpRandom(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	value := func(f Float) int64 {
		v := int64(f & absMask)
		if f.Neg() {
			return -v
		}
		return v
	}
	for i := 0; i < 10000; i++ {
		f1, f2, f3 := Float(rnd.Uint32()), Float(rnd.Uint32()), Float(rnd.Uint32())
		v1, v2 := value(f1), value(f2)
		switch {
		case v1 < v2:
			a.Equal(-1, f1.Cmp(f2))
		case v1 > v2:
			a.Equal(1, f1.Cmp(f2))
		default:
			a.Equal(0, f1.Cmp(f2))
		}
		// transitivity
		if f1.Cmp(f2) <= 0 && f2.Cmp(f3) <= 0 {
			a.True(f1.Cmp(f3) <= 0)
		}
	}
}

func TestString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v        Float
		expected string
	}{
		{FromBits(0x3F800000), "1.00"},
		{FromBits(0xBF800000), "-1.00"},
		{FromBits(0x3F000000), "0.50"},
		{FromBits(0x40A9999A), "5.30"},
		{FromBits(0x7F7FFFFF), "340282346638528859811704183484516925440.00"},
		{PosZero, "Denormalized(0.00)"},
		{NegZero, "Denormalized(-0.00)"},
		{FromBits(0x00400000), "Denormalized(0.00)"},
		{MaxValue, "Fmax(680564693277057719623408366969033850880.00)"},
		{MinValue, "-Fmax(-680564693277057719623408366969033850880.00)"},
		{PosInf, "Inf(340282366920938463463374607431768211456.00)"},
		{NegInf, "-Inf(-340282366920938463463374607431768211456.00)"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.expected, test.v.String())
			a.Equal(test.expected, fmt.Sprint(test.v))
		})
	}
	a.Equal("-1.00 {true, 0x7f, 0x000000}", FromBits(0xBF800000).GoString())
}

func TestFloat64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v        Float
		expected float64
	}{
		{FromBits(0x3F800000), 1},
		{FromBits(0xC0400000), -3},
		{FromBits(0x3E800000), 0.25},
		{FromBits(0x00400000), 0},
		{PosInf, math.Ldexp(1, 128)},
		{MinValue, -math.Ldexp(1<<24-1, 105)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.expected, test.v.Float64())
		})
	}
	a.True(math.Signbit(NegZero.Float64()))
	a.True(math.Signbit(FromBits(0x80000001).Float64()))
	a.False(math.Signbit(PosZero.Float64()))
}

func TestDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v        Float
		expected string
	}{
		{FromBits(0x3F800000), "1"},
		{FromBits(0x3FC00000), "1.5"},
		{FromBits(0xBF000000), "-0.5"},
		{FromBits(0x00123456), "0"},
		{FromBits(0x00800000), "0.000000000000000000000000000000000000011754943508222875079687365372222456778186655567720875215087517062784172594547271728515625"},
		{PosInf, "340282366920938463463374607431768211456"},
		{MaxValue, "680564693277057719623408366969033850880"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			expected, err := decimal.NewFromString(test.expected)
			if a.NoError(err) {
				a.True(expected.Equal(test.v.Decimal()), "%s != %s", expected, test.v.Decimal())
			}
		})
	}
}

func BenchmarkCmp(b *testing.B) {
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < b.N; i++ {
		v1, v2 := Float(rnd.Uint32()), Float(rnd.Uint32())
		v1.Cmp(v2)
	}
}
