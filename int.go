package wideint

import "math"

// Kind selects the bit width and signedness of an [Int].
//
// The kinds provided by this package are [U256], [I256], [U512] and [I512].
type Kind interface {
	Bits() int
	Signed() bool
}

type (
	// U256 is the kind of unsigned 256-bit integers.
	U256 struct{}
	// I256 is the kind of signed 256-bit integers.
	I256 struct{}
	// U512 is the kind of unsigned 512-bit integers.
	U512 struct{}
	// I512 is the kind of signed 512-bit integers.
	I512 struct{}
)

func (U256) Bits() int    { return 256 }
func (U256) Signed() bool { return false }
func (I256) Bits() int    { return 256 }
func (I256) Signed() bool { return true }
func (U512) Bits() int    { return 512 }
func (U512) Signed() bool { return false }
func (I512) Bits() int    { return 512 }
func (I512) Signed() bool { return true }

// Shorthands for the supported kinds.
type (
	Uint256 = Int[U256]
	Int256  = Int[I256]
	Uint512 = Int[U512]
	Int512  = Int[I512]
)

// Int is a fixed-width integer of kind K.
//
// The value is stored in sign-magnitude form: the magnitude is a big-endian
// byte array of K.Bits()/8 bytes and the sign is a separate flag, so a signed
// 256-bit Int holds values in the range ±(2^256-1).
// Two's complement semantics are only used by the bitwise operations,
// unsigned conversions of negative values and arithmetic shifts.
//
// Operations set the receiver to the result and return it,
// all arguments and receivers are allowed to alias.
// Binary operations only accept operands of the same kind, use [Convert]
// to change the kind.
//
// The zero value is a valid zero.
type Int[K Kind] struct {
	// big-endian magnitude, only the trailing K.Bits()/8 bytes are used
	mag      [maxBytes]byte
	neg      bool
	overflow bool
}

func size[K Kind]() int {
	var k K
	return k.Bits() / 8
}

func signed[K Kind]() bool {
	var k K
	return k.Signed()
}

// m returns the magnitude bytes.
func (z *Int[K]) m() []byte {
	return z.mag[maxBytes-size[K]():]
}

// set sets z from the outcome of an operation.
func (z *Int[K]) set(s status) *Int[K] {
	z.neg = s&statusNegative != 0
	z.overflow = s&statusOverflow != 0
	return z
}

// Bits returns the bit width of z.
func (z *Int[K]) Bits() int {
	var k K
	return k.Bits()
}

// IsSigned reports whether z is of a signed kind.
func (z *Int[K]) IsSigned() bool {
	return signed[K]()
}

// Overflow reports whether the operation that produced z could not represent its
// true result in z.Bits() bits and wrapped around.
func (z *Int[K]) Overflow() bool {
	return z.overflow
}

// IsZero reports whether z == 0.
func (z *Int[K]) IsZero() bool {
	for _, b := range z.m() {
		if b != 0 {
			return false
		}
	}
	return true
}

// Bool reports whether z != 0.
func (z *Int[K]) Bool() bool {
	return !z.IsZero()
}

// IsNegative reports whether z < 0.
func (z *Int[K]) IsNegative() bool {
	return z.neg
}

// Sign returns -1 if z < 0, 0 if z == 0 and +1 if z > 0.
func (z *Int[K]) Sign() int {
	switch {
	case z.neg:
		return -1
	case z.IsZero():
		return 0
	default:
		return 1
	}
}

// Magnitude returns the big-endian K.Bits()/8 byte absolute value of z.
func (z *Int[K]) Magnitude() []byte {
	return append([]byte(nil), z.m()...)
}

// Set sets z = x, and returns z.
func (z *Int[K]) Set(x *Int[K]) *Int[K] {
	*z = *x
	return z
}

// SetUint64 sets z = v, and returns z.
func (z *Int[K]) SetUint64(v uint64) *Int[K] {
	*z = Int[K]{}
	m := z.m()
	for i := 1; v != 0 && i <= len(m); i++ {
		m[len(m)-i] = byte(v)
		v >>= 8
	}
	return z
}

// SetInt64 sets z = v, and returns z.
//
// A negative v stored into an unsigned kind stores its absolute value,
// like [Int.SetFloat64].
func (z *Int[K]) SetInt64(v int64) *Int[K] {
	if v >= 0 {
		return z.SetUint64(uint64(v))
	}
	z.SetUint64(uint64(-(v + 1)) + 1) // |v| without overflow for math.MinInt64
	z.neg = signed[K]()
	return z
}

// SetFloat64 sets z to f truncated toward zero, and returns z.
// Bits above z.Bits() are dropped silently.
//
// SetFloat64 panics if f is NaN or infinite.
// A negative f stored into an unsigned kind stores its absolute value.
func (z *Int[K]) SetFloat64(f float64) *Int[K] {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("wideint: NaN or infinite float")
	}
	*z = Int[K]{}

	f = math.Trunc(f)
	neg := f < 0
	mant, exp := math.Frexp(math.Abs(f)) // |f| = mant * 2^exp, 0.5 <= mant < 1
	if mant == 0 {
		return z
	}
	u := uint64(math.Ldexp(mant, 64)) // 64-bit mantissa, exact
	exp -= 64

	m := z.m()
	var limbs [maxLimbs]uint64
	x := limbs[:len(m)/8]
	x[0] = u
	if exp < 0 {
		rsh(x, x, uint(-exp))
	} else {
		lsh(x, x, uint(exp))
	}
	fillBytes(m, x)

	z.neg = neg && signed[K]() && !z.IsZero()
	return z
}

// FromUint64 returns a new Int of kind K set to v.
func FromUint64[K Kind](v uint64) *Int[K] {
	return new(Int[K]).SetUint64(v)
}

// FromInt64 returns a new Int of kind K set to v, see [Int.SetInt64].
func FromInt64[K Kind](v int64) *Int[K] {
	return new(Int[K]).SetInt64(v)
}

// low128 returns the low 128 bits of the magnitude.
func (z *Int[K]) low128() (hi, lo uint64) {
	var x [2]uint64
	m := z.m()
	setLimbs(x[:], m[len(m)-16:])
	return x[1], x[0]
}

// Uint64 returns the low 64 bits of z in two's complement form,
// like uint64 conversion of a native integer.
func (z *Int[K]) Uint64() uint64 {
	_, lo := z.low128()
	if z.neg {
		return -lo
	}
	return lo
}

// Int64 returns the low 64 bits of z in two's complement form,
// like int64 conversion of a native integer.
func (z *Int[K]) Int64() int64 {
	return int64(z.Uint64())
}

// Float64 returns the nearest float64 value of the low 128 bits of z
// with the sign of z.
func (z *Int[K]) Float64() float64 {
	hi, lo := z.low128()
	f := math.Ldexp(float64(hi), 64) + float64(lo)
	if z.neg {
		return -f
	}
	return f
}

// Convert returns x converted to the kind D.
//
// The min(D.Bits(), S.Bits())/8 least significant bytes are copied:
//   - between kinds of the same signedness the sign is kept;
//   - a negative signed x converted to an unsigned kind is first replaced by
//     its two's complement image at the width of S;
//   - an unsigned x converted to a signed kind stays non-negative.
//
// Bytes that do not fit are dropped silently, the result never reports overflow.
func Convert[D Kind, S Kind](x *Int[S]) *Int[D] {
	z := new(Int[D])
	src := x.m()
	neg := x.neg

	if neg && !signed[D]() {
		var limbs [maxLimbs]uint64
		t := limbs[:len(src)/8]
		setLimbs(t, src)
		toTwos(t, true)
		var buf [maxBytes]byte
		src = buf[maxBytes-len(src):]
		fillBytes(src, t)
		neg = false
	}

	dst := z.m()
	n := min(len(src), len(dst))
	copy(dst[len(dst)-n:], src[len(src)-n:])
	z.neg = neg && signed[D]() && !z.IsZero()
	return z
}

// Add sets z = x + y, and returns z.
func (z *Int[K]) Add(x, y *Int[K]) *Int[K] {
	return z.set(binaryOp(opAdd, z.m(), x.m(), x.neg, y.m(), y.neg, signed[K]()))
}

// Sub sets z = x - y, and returns z.
//
// For unsigned kinds a negative difference wraps around modulo 2^z.Bits()
// and reports overflow.
func (z *Int[K]) Sub(x, y *Int[K]) *Int[K] {
	return z.set(binaryOp(opSub, z.m(), x.m(), x.neg, y.m(), y.neg, signed[K]()))
}

// Mul sets z = x * y, and returns z.
func (z *Int[K]) Mul(x, y *Int[K]) *Int[K] {
	return z.set(binaryOp(opMul, z.m(), x.m(), x.neg, y.m(), y.neg, signed[K]()))
}

// Div sets z to the quotient x/y truncated toward zero, and returns z.
// Div panics if y == 0.
func (z *Int[K]) Div(x, y *Int[K]) *Int[K] {
	return z.set(binaryOp(opDiv, z.m(), x.m(), x.neg, y.m(), y.neg, signed[K]()))
}

// Mod sets z to the remainder x%y with the sign of x, and returns z.
// Mod panics if y == 0.
func (z *Int[K]) Mod(x, y *Int[K]) *Int[K] {
	return z.set(binaryOp(opMod, z.m(), x.m(), x.neg, y.m(), y.neg, signed[K]()))
}

// And sets z = x & y, and returns z.
//
// For signed kinds the operands act as unbounded two's complement values,
// as in [math/big]. A result whose magnitude does not fit is truncated and
// sets the overflow flag.
func (z *Int[K]) And(x, y *Int[K]) *Int[K] {
	return z.set(binaryOp(opAnd, z.m(), x.m(), x.neg, y.m(), y.neg, signed[K]()))
}

// Or sets z = x | y, and returns z.
func (z *Int[K]) Or(x, y *Int[K]) *Int[K] {
	return z.set(binaryOp(opOr, z.m(), x.m(), x.neg, y.m(), y.neg, signed[K]()))
}

// Xor sets z = x ^ y, and returns z.
func (z *Int[K]) Xor(x, y *Int[K]) *Int[K] {
	return z.set(binaryOp(opXor, z.m(), x.m(), x.neg, y.m(), y.neg, signed[K]()))
}

// Not sets z = ^x, and returns z.
//
// For signed kinds this is -x-1, which overflows only for x = 2^n-1.
// For unsigned kinds every bit of the magnitude is flipped.
func (z *Int[K]) Not(x *Int[K]) *Int[K] {
	var ones Int[K]
	if signed[K]() {
		ones.SetInt64(-1)
	} else {
		for i := range ones.m() {
			ones.m()[i] = 0xff
		}
	}
	return z.Xor(x, &ones)
}

// Neg sets z = -x, and returns z.
// Neg panics if K is unsigned.
func (z *Int[K]) Neg(x *Int[K]) *Int[K] {
	if !signed[K]() {
		panic("wideint: Neg of unsigned kind")
	}
	z.Set(x)
	z.neg = !x.neg && !x.IsZero()
	z.overflow = false
	return z
}

// Lsh sets z = x << n, and returns z.
// Overflow is reported when set bits are shifted out.
func (z *Int[K]) Lsh(x *Int[K], n uint) *Int[K] {
	return z.set(shift(z.m(), x.m(), x.neg, n, true))
}

// Rsh sets z = x >> n, and returns z.
// Negative values are shifted arithmetically, i.e. rounded toward negative infinity.
func (z *Int[K]) Rsh(x *Int[K], n uint) *Int[K] {
	return z.set(shift(z.m(), x.m(), x.neg, n, false))
}

// Inc sets z = z + 1, and returns z.
func (z *Int[K]) Inc() *Int[K] {
	return z.Add(z, FromUint64[K](1))
}

// Dec sets z = z - 1, and returns z.
func (z *Int[K]) Dec() *Int[K] {
	return z.Sub(z, FromUint64[K](1))
}

// Exp sets z = x^y mod |m|, and returns z.
//
// The result is in the range [0, |m|). Intermediate products are computed
// at twice the width, so Exp never overflows.
// Exp panics if m == 0 or y < 0.
func (z *Int[K]) Exp(x, y, m *Int[K]) *Int[K] {
	if y.neg {
		panic("wideint: negative exponent")
	}
	expMod(z.m(), x.m(), x.neg, y.m(), m.m())
	z.neg, z.overflow = false, false
	return z
}

// MulMod sets z = x*y mod |m|, and returns z.
//
// The result is in the range [0, |m|), the product is computed at twice
// the width, so MulMod never overflows.
// MulMod panics if m == 0.
func (z *Int[K]) MulMod(x, y, m *Int[K]) *Int[K] {
	mulModSigned(z.m(), x.m(), x.neg, y.m(), y.neg, m.m())
	z.neg, z.overflow = false, false
	return z
}

// Cmp compares z and y and returns -1 if z < y, 0 if z == y and +1 if z > y.
func (z *Int[K]) Cmp(y *Int[K]) int {
	return compare(z.m(), z.neg, y.m(), y.neg)
}

// Eq reports whether z == y.
func (z *Int[K]) Eq(y *Int[K]) bool { return z.Cmp(y) == 0 }

// Lt reports whether z < y.
func (z *Int[K]) Lt(y *Int[K]) bool { return z.Cmp(y) < 0 }

// Gt reports whether z > y.
func (z *Int[K]) Gt(y *Int[K]) bool { return z.Cmp(y) > 0 }

// Lte reports whether z <= y.
func (z *Int[K]) Lte(y *Int[K]) bool { return z.Cmp(y) <= 0 }

// Gte reports whether z >= y.
func (z *Int[K]) Gte(y *Int[K]) bool { return z.Cmp(y) >= 0 }

// Compare compares the values of x and y of any kinds
// and returns -1 if x < y, 0 if x == y and +1 if x > y.
func Compare[A Kind, B Kind](x *Int[A], y *Int[B]) int {
	return compare(x.m(), x.neg, y.m(), y.neg)
}
