package wideint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	maxUint256 = "115792089237316195423570985008687907853269984665640564039457584007913129639935"
	maxUint512 = "13407807929942597099574024998205846127479365820592393377723561443721764030073546976801874298166903427690031858186486050853753882811946569946433649006084095"
)

func u256(n uint64) *Uint256 { return FromUint64[U256](n) }
func i256(n int64) *Int256 { return FromInt64[I256](n) }

func TestUint256(t *testing.T) {
	x := u256(202)
	y := u256(243)

	x.Add(x, y)
	assert.Equal(t, "445", x.String())
	x.Add(x, y)
	assert.Equal(t, "688", x.String())

	x.SetUint64(202)
	y.SetUint64(24)
	x.Sub(x, y)
	assert.Equal(t, "178", x.String())
	x.Sub(x, y)
	assert.Equal(t, "154", x.String())

	x.SetUint64(202)
	x.Mul(x, y)
	assert.Equal(t, "4848", x.String())
	x.Div(x, y)
	assert.Equal(t, "202", x.String())

	x.Div(x, y)
	assert.Equal(t, "8", x.String())
	x.Div(x, y)
	assert.Equal(t, "0", x.String())

	x.SetUint64(503)
	x.Mod(x, u256(10))
	assert.Equal(t, "3", x.String())
	x.Add(x, u256(2))
	x.Mod(x, u256(10))
	assert.Equal(t, "5", x.String())
}

func TestUint256Bitwise(t *testing.T) {
	for _, tc := range []struct {
		name   string
		op     func(z, x, y *Uint256) *Uint256
		y1, y2 uint64
		r1, r2 string
	}{
		{"and", (*Uint256).And, 100, 0xff, "100", "100"},
		{"or", (*Uint256).Or, 100, 0xff, "503", "511"},
		{"xor", (*Uint256).Xor, 100, 0xff, "403", "364"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			x := u256(503)
			tc.op(x, x, u256(tc.y1))
			assert.Equal(t, tc.r1, x.String())

			tc.op(x, x, u256(tc.y2))
			assert.Equal(t, tc.r2, x.String())
		})
	}
}

func TestShift(t *testing.T) {
	x := u256(503)
	assert.Equal(t, "32192", new(Uint256).Lsh(x, 6).String())
	assert.Equal(t, "400", new(Uint256).Lsh(u256(100), 2).String())
	assert.Equal(t, "125", new(Uint256).Rsh(x, 2).String())
	assert.Equal(t, "25", new(Uint256).Rsh(u256(100), 2).String())

	z := new(Uint256).Lsh(u256(1), 255)
	assert.False(t, z.Overflow())
	assert.Equal(t, "0x8000000000000000000000000000000000000000000000000000000000000000", z.Hex())

	z.Lsh(z, 1)
	assert.True(t, z.Overflow())
	assert.True(t, z.IsZero())

	z.Lsh(u256(1), 1000)
	assert.True(t, z.Overflow())
	assert.True(t, z.IsZero())

	z.Lsh(u256(0), 1000)
	assert.False(t, z.Overflow())

	z.Rsh(MustUint256(maxUint256), 255)
	assert.Equal(t, "1", z.String())
	z.Rsh(MustUint256(maxUint256), 256)
	assert.Equal(t, "0", z.String())
}

func TestArithmeticShift(t *testing.T) {
	for _, tc := range []struct {
		x        int64
		n        uint
		expected string
	}{
		{-1, 1, "-1"},
		{-1, 300, "-1"},
		{-7, 1, "-4"},
		{-8, 1, "-4"},
		{-8, 3, "-1"},
		{-8, 4, "-1"},
		{7, 1, "3"},
		{7, 3, "0"},
	} {
		assert.Equal(t, tc.expected, new(Int256).Rsh(i256(tc.x), tc.n).String(), "%d >> %d", tc.x, tc.n)
	}

	assert.Equal(t, "-32192", new(Int256).Lsh(i256(-503), 6).String())
}

func TestInt256(t *testing.T) {
	x := MustInt256("503")
	x.Neg(x)
	assert.Equal(t, "-503", x.String())
	assert.True(t, x.IsNegative())
	assert.Equal(t, -1, x.Sign())

	x.SetInt64(202)
	y := MustInt256("-243")
	x.Add(x, y)
	assert.Equal(t, "-41", x.String())
	assert.False(t, x.Lt(y))
	x.Add(x, y)
	assert.Equal(t, "-284", x.String())
	assert.True(t, x.Lt(y))

	assert.False(t, i256(202).Lt(y))

	x.Sub(i256(-5), i256(-7))
	assert.Equal(t, "2", x.String())
	x.Mul(i256(-5), i256(7))
	assert.Equal(t, "-35", x.String())
	x.Mul(i256(-5), i256(-7))
	assert.Equal(t, "35", x.String())
}

func TestSignedDivision(t *testing.T) {
	for _, tc := range []struct {
		x, y int64
		q, r string
	}{
		{7, 2, "3", "1"},
		{-7, 2, "-3", "-1"},
		{7, -2, "-3", "1"},
		{-7, -2, "3", "-1"},
		{-6, 3, "-2", "0"},
	} {
		assert.Equal(t, tc.q, new(Int256).Div(i256(tc.x), i256(tc.y)).String(), "%d / %d", tc.x, tc.y)
		assert.Equal(t, tc.r, new(Int256).Mod(i256(tc.x), i256(tc.y)).String(), "%d %% %d", tc.x, tc.y)
	}
}

func TestZeroIsNotNegative(t *testing.T) {
	x := new(Int256).Add(i256(-5), i256(5))
	assert.False(t, x.IsNegative())
	assert.Equal(t, 0, x.Sign())
	assert.True(t, x.Eq(new(Int256)))

	x.Neg(new(Int256))
	assert.False(t, x.IsNegative())

	x.Mul(i256(-5), i256(0))
	assert.False(t, x.IsNegative())

	x.Mod(i256(-6), i256(3))
	assert.False(t, x.IsNegative())
}

func TestOverflow(t *testing.T) {
	m256 := MustUint256(maxUint256)

	z := new(Uint256).Add(m256, u256(1))
	assert.True(t, z.Overflow())
	assert.True(t, z.IsZero())

	z.Add(u256(1), u256(2))
	assert.False(t, z.Overflow(), "overflow is not sticky across operations")

	z.Mul(m256, u256(2))
	assert.True(t, z.Overflow())
	assert.Equal(t, "115792089237316195423570985008687907853269984665640564039457584007913129639934", z.String())

	z.Sub(u256(0), u256(1))
	assert.True(t, z.Overflow())
	assert.Equal(t, maxUint256, z.String())

	z.Sub(u256(5), u256(7))
	assert.True(t, z.Overflow())
	assert.Equal(t, "115792089237316195423570985008687907853269984665640564039457584007913129639934", z.String())

	// 41234...234 + 41234...234 fits in 256 bits
	a := MustUint256("41234123412341234123412341234123412341234123412341234123412341234123412341234")
	z.Add(a, a)
	assert.False(t, z.Overflow())
	assert.Equal(t, "82468246824682468246824682468246824682468246824682468246824682468246824682468", z.String())

	b := MustUint512("3412341234123412341234123412341234123412341234123412341234123412341234123412341234123412341234123412341234123412341234123412341234123412341234123412341234")
	w := new(Uint512).Add(b, b)
	assert.False(t, w.Overflow())
	assert.Equal(t, "6824682468246824682468246824682468246824682468246824682468246824682468246824682468246824682468246824682468246824682468246824682468246824682468246824682468", w.String())

	w.Add(MustUint512(maxUint512), FromUint64[U512](1))
	assert.True(t, w.Overflow())
	assert.True(t, w.IsZero())

	s := MustInt256("-" + maxUint256)
	s.Sub(s, i256(1))
	assert.True(t, s.Overflow())
	assert.True(t, s.IsZero())
	assert.False(t, s.IsNegative())

	s.Add(MustInt256("-"+maxUint256), i256(1))
	assert.False(t, s.Overflow())
}

func TestIncDec(t *testing.T) {
	x := u256(0)
	assert.Equal(t, "1", x.Inc().String())
	assert.Equal(t, "1", x.String())
	assert.Equal(t, "0", x.Dec().String())
	assert.False(t, x.Overflow())

	x.Dec()
	assert.True(t, x.Overflow())
	assert.Equal(t, maxUint256, x.String())
	x.Inc()
	assert.True(t, x.Overflow())
	assert.True(t, x.IsZero())

	y := i256(0)
	assert.Equal(t, "-1", y.Dec().String())
	assert.Equal(t, "-2", y.Dec().String())
	assert.Equal(t, "-1", y.Inc().String())
}

func TestNot(t *testing.T) {
	assert.Equal(t, maxUint256, new(Uint256).Not(u256(0)).String())
	assert.Equal(t, "0", new(Uint256).Not(MustUint256(maxUint256)).String())

	assert.Equal(t, "-1", new(Int256).Not(i256(0)).String())
	assert.Equal(t, "-504", new(Int256).Not(i256(503)).String())
	assert.Equal(t, "502", new(Int256).Not(i256(-503)).String())
}

func TestSignedBitwise(t *testing.T) {
	assert.Equal(t, "-503", new(Int256).And(i256(-1), i256(-503)).String())
	assert.Equal(t, "0", new(Int256).And(i256(-8), i256(7)).String())
	assert.Equal(t, "-1", new(Int256).Or(i256(-8), i256(7)).String())
	assert.Equal(t, "-1", new(Int256).Xor(i256(-8), i256(7)).String())
	assert.Equal(t, "6", new(Int256).Xor(i256(-8), i256(-2)).String())
}

func TestSignedBitwiseUpperRange(t *testing.T) {
	// 2^255
	const half = "57896044618658097711785492504343953926634992332820282019728792003956564819968"
	x := MustInt256(half)
	negX := MustInt256("-" + half)
	maxX := MustInt256(maxUint256)
	negMax := MustInt256("-" + maxUint256)

	for _, tc := range []struct {
		name     string
		z        *Int256
		expected string
		overflow bool
	}{
		{"x | 0", new(Int256).Or(x, new(Int256)), half, false},
		{"x & x", new(Int256).And(x, x), half, false},
		{"-x & x", new(Int256).And(negX, x), half, false},
		{"-x | x", new(Int256).Or(negX, x), "-" + half, false},
		{"max | 0", new(Int256).Or(maxX, new(Int256)), maxUint256, false},
		{"-max ^ max", new(Int256).Xor(negMax, maxX), "-2", false},
		{"-max & -1", new(Int256).And(negMax, i256(-1)), "-" + maxUint256, false},
		{"^-max", new(Int256).Not(negMax), "115792089237316195423570985008687907853269984665640564039457584007913129639934", false},
		// -2^256 does not fit
		{"^max", new(Int256).Not(maxX), "0", true},
	} {
		assert.Equal(t, tc.expected, tc.z.String(), tc.name)
		assert.Equal(t, tc.overflow, tc.z.Overflow(), tc.name)
	}
}

func TestNegPanicsForUnsigned(t *testing.T) {
	assert.PanicsWithValue(t, "wideint: Neg of unsigned kind", func() {
		new(Uint256).Neg(u256(1))
	})
}

func TestDivisionByZero(t *testing.T) {
	assert.PanicsWithValue(t, "wideint: division by zero", func() {
		new(Uint256).Div(u256(1), u256(0))
	})
	assert.PanicsWithValue(t, "wideint: division by zero", func() {
		new(Int512).Mod(FromInt64[I512](-1), new(Int512))
	})
}

func TestExp(t *testing.T) {
	assert.Equal(t, "6", new(Uint256).Exp(u256(10), u256(5), u256(17)).String())
	assert.Equal(t, "1", new(Uint256).Exp(u256(10), u256(0), u256(17)).String())
	assert.Equal(t, "0", new(Uint256).Exp(u256(10), u256(0), u256(1)).String())
	assert.Equal(t, "0", new(Uint256).Exp(u256(0), u256(5), u256(17)).String())

	// (-2)^3 mod 5 = -8 mod 5 = 2
	assert.Equal(t, "2", new(Int256).Exp(i256(-2), i256(3), i256(5)).String())
	assert.Equal(t, "2", new(Int256).Exp(i256(-2), i256(3), i256(-5)).String())

	// 2^256 mod (2^256 - 1) does not overflow
	m256 := MustUint256(maxUint256)
	z := new(Uint256).Exp(u256(2), u256(256), m256)
	assert.Equal(t, "1", z.String())
	assert.False(t, z.Overflow())

	assert.PanicsWithValue(t, "wideint: zero modulus", func() {
		new(Uint256).Exp(u256(2), u256(2), u256(0))
	})
	assert.PanicsWithValue(t, "wideint: negative exponent", func() {
		new(Int256).Exp(i256(2), i256(-2), i256(7))
	})
}

func TestMulMod(t *testing.T) {
	m256 := MustUint256(maxUint256)
	// (2^256-1)^2 mod (2^256-2) = 1
	m := new(Uint256).Sub(m256, u256(1))
	assert.Equal(t, "1", new(Uint256).MulMod(m256, m256, m).String())

	assert.Equal(t, "3", new(Int256).MulMod(i256(-2), i256(3), i256(9)).String())
	assert.Equal(t, "0", new(Int256).MulMod(i256(-3), i256(3), i256(9)).String())
}

func TestConvert(t *testing.T) {
	x := MustInt256("-1")

	u := Convert[U256](x)
	assert.Equal(t, maxUint256, u.String())

	w := Convert[U512](x)
	assert.Equal(t, maxUint256, w.String(), "two's complement image at the source width")

	s := Convert[I512](x)
	assert.Equal(t, "-1", s.String())

	n := Convert[U256](MustUint512(maxUint512))
	assert.Equal(t, maxUint256, n.String())
	assert.False(t, n.Overflow())

	p := Convert[I256](MustUint256(maxUint256))
	assert.Equal(t, maxUint256, p.String())
	assert.False(t, p.IsNegative())

	z := Convert[I256](MustInt512("-115792089237316195423570985008687907853269984665640564039457584007913129639936"))
	assert.Equal(t, "0", z.String())
	assert.False(t, z.IsNegative())
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, Compare(u256(5), FromInt64[I512](5)))
	assert.Equal(t, 1, Compare(u256(5), FromInt64[I512](-5)))
	assert.Equal(t, -1, Compare(FromInt64[I256](-6), FromInt64[I512](-5)))
	assert.Equal(t, -1, Compare(MustUint256(maxUint256), MustUint512(maxUint512)))

	x, y := i256(-3), i256(2)
	assert.True(t, x.Lt(y))
	assert.True(t, x.Lte(y))
	assert.True(t, y.Gt(x))
	assert.True(t, y.Gte(x))
	assert.True(t, x.Lte(x))
	assert.True(t, x.Gte(x))
	assert.False(t, x.Eq(y))
	assert.Equal(t, -1, x.Cmp(y))
}

func TestNative(t *testing.T) {
	// negative input into an unsigned kind keeps the absolute value
	assert.Equal(t, "5", FromInt64[U256](-5).String())
	assert.Equal(t, "5", new(Uint512).SetFloat64(-5.5).String())
	assert.Equal(t, "9223372036854775808", FromInt64[U512](math.MinInt64).String())
	assert.False(t, FromInt64[U256](-5).IsNegative())

	assert.Equal(t, int64(-1), FromInt64[I256](-1).Int64())
	assert.Equal(t, "-9223372036854775808", FromInt64[I256](math.MinInt64).String())
	assert.Equal(t, int64(math.MinInt64), FromInt64[I256](math.MinInt64).Int64())

	assert.Equal(t, uint64(math.MaxUint64), MustUint256(maxUint256).Uint64())
	assert.Equal(t, uint64(1), MustInt256("-"+maxUint256).Uint64())

	assert.True(t, u256(1).Bool())
	assert.False(t, u256(0).Bool())

	assert.Equal(t, 256, u256(0).Bits())
	assert.Equal(t, 512, new(Int512).Bits())
	assert.True(t, new(Int512).IsSigned())
	assert.False(t, new(Uint512).IsSigned())
}

func TestFloat64(t *testing.T) {
	assert.Equal(t, "12", new(Uint256).SetFloat64(12.9).String())
	assert.Equal(t, "-12", new(Int256).SetFloat64(-12.9).String())
	assert.Equal(t, "12", new(Uint256).SetFloat64(-12.9).String())
	assert.Equal(t, "0", new(Int256).SetFloat64(-0.5).String())
	assert.False(t, new(Int256).SetFloat64(-0.5).IsNegative())

	assert.Equal(t, "1267650600228229401496703205376", new(Uint256).SetFloat64(0x1p100).String())
	assert.Equal(t, "0", new(Uint256).SetFloat64(0x1p300).String())
	assert.Equal(t, new(Uint512).Lsh(FromUint64[U512](1), 300).String(), new(Uint512).SetFloat64(0x1p300).String())

	assert.Equal(t, float64(0x1p100), new(Uint256).SetFloat64(0x1p100).Float64())
	assert.Equal(t, -12.0, i256(-12).Float64())

	assert.Panics(t, func() { new(Uint256).SetFloat64(math.NaN()) })
	assert.Panics(t, func() { new(Uint256).SetFloat64(math.Inf(-1)) })
}

func TestMagnitude(t *testing.T) {
	m := i256(-258).Magnitude()
	require.Len(t, m, 32)
	assert.Equal(t, []byte{1, 2}, m[30:])

	// magnitude is a copy
	x := i256(1)
	x.Magnitude()[31] = 2
	assert.Equal(t, "1", x.String())
}

func BenchmarkAdd(b *testing.B) {
	x := MustUint256("41234123412341234123412341234123412341234123412341234123412341234123412341234")
	z := new(Uint256)
	for range b.N {
		z.Add(x, x)
	}
}

func BenchmarkMul(b *testing.B) {
	x := MustUint512("3412341234123412341234123412341234123412341234123412341234123412341234123412341234123412341234123412341234123412341234123412341234123412341234123412341234")
	z := new(Uint512)
	for range b.N {
		z.Mul(x, x)
	}
}

func BenchmarkDiv(b *testing.B) {
	x := MustUint256(maxUint256)
	y := MustUint256("41234123412341234123412341234123")
	z := new(Uint256)
	for range b.N {
		z.Div(x, y)
	}
}

func BenchmarkExp(b *testing.B) {
	x := MustUint256("41234123412341234123412341234123412341234123412341234123412341234123412341234")
	m := MustUint256("21888242871839275222246405745257275088548364400416034343698204186575808495617")
	z := new(Uint256)
	for range b.N {
		z.Exp(x, x, m)
	}
}
