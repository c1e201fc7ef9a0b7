package field

import (
	"crypto/subtle"

	"github.com/AlexanderYastrebov/wideint"
	"github.com/pkg/errors"
)

// Element represents an element of the field GF(q).
//
// This type works similarly to [filippo.io/edwards25519/field.Element],
// and all arguments and receivers are allowed to alias.
//
// The zero value is a valid zero element.
type Element struct {
	// v < q
	v wideint.Uint256
}

// q is the field order.
var q = wideint.MustUint256("21888242871839275222246405745257275088548364400416034343698204186575808495617")

// qMinus2 is the exponent of the inverse, x^(q-2) = 1/x by Fermat's little theorem.
var qMinus2 = new(wideint.Uint256).Sub(q, wideint.FromUint64[wideint.U256](2))

// Modulus returns the field order q.
func Modulus() *wideint.Uint256 {
	return new(wideint.Uint256).Set(q)
}

// Set sets v = a, and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// SetUint64 sets v = x, and returns v.
func (v *Element) SetUint64(x uint64) *Element {
	v.v.SetUint64(x) // x < q
	return v
}

// SetUint256 sets v = x mod q, and returns v.
func (v *Element) SetUint256(x *wideint.Uint256) *Element {
	if x.Lt(q) {
		v.v.SetBytes(x.Bytes()) // drops the overflow flag of x
	} else {
		v.v.Mod(x, q)
	}
	return v
}

// SetBytes sets v to x mod q, where x is a 32-byte big-endian encoding. If x is
// not of the right length, SetBytes returns nil and an error, and the
// receiver is unchanged.
//
// Non-canonical values (q through 2^256-1) are accepted and reduced.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	if len(x) != 32 {
		return nil, errors.New("field: invalid field element input size")
	}
	return v.SetUint256(wideint.FromBytes[wideint.U256](x)), nil
}

// Bytes returns the canonical 32-byte big-endian encoding of v.
func (v *Element) Bytes() []byte {
	return v.v.Bytes()
}

// FillBytes sets buf to the canonical 32-byte big-endian encoding of v, and returns buf.
// If buf is shorter than 32 bytes, FillBytes will panic.
func (v *Element) FillBytes(buf []byte) []byte {
	return v.v.FillBytes(buf)
}

// Uint256 returns v as an integer in the range [0, q).
func (v *Element) Uint256() *wideint.Uint256 {
	return new(wideint.Uint256).Set(&v.v)
}

// String returns the decimal representation of v.
func (v *Element) String() string {
	return v.v.String()
}

// Equal returns 1 if v and u are equal, and 0 otherwise.
func (v *Element) Equal(u *Element) int {
	su, sv := u.Bytes(), v.Bytes()
	return subtle.ConstantTimeCompare(su, sv)
}

// IsZero returns 1 if v == 0, and 0 otherwise.
func (v *Element) IsZero() int {
	return v.Equal(feZero)
}

var feZero = &Element{}

// Zero sets v = 0, and returns v.
func (v *Element) Zero() *Element {
	*v = *feZero
	return v
}

var feOne = new(Element).SetUint64(1)

// One sets v = 1, and returns v.
func (v *Element) One() *Element {
	*v = *feOne
	return v
}

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *Element) Select(a, b *Element, cond int) *Element {
	buf := b.Bytes()
	subtle.ConstantTimeCopy(cond, buf, a.Bytes())
	v.v.SetBytes(buf)
	return v
}

// Swap swaps v and u if cond == 1 or leaves them unchanged if cond == 0.
func (v *Element) Swap(u *Element, cond int) {
	vb, ub := v.Bytes(), u.Bytes()
	t := make([]byte, len(vb))
	copy(t, vb)
	subtle.ConstantTimeCopy(cond, vb, ub)
	subtle.ConstantTimeCopy(cond, ub, t)
	v.v.SetBytes(vb)
	u.v.SetBytes(ub)
}

// Add sets v = x + y, and returns v.
func (v *Element) Add(x, y *Element) *Element {
	// x + y < 2q < 2^256
	v.v.Add(&x.v, &y.v)
	if v.v.Gte(q) {
		v.v.Sub(&v.v, q)
	}
	return v
}

// Subtract sets v = a - b, and returns v.
func (v *Element) Subtract(a, b *Element) *Element {
	if a.v.Gte(&b.v) {
		v.v.Sub(&a.v, &b.v)
		return v
	}
	// a + (q - b) < q
	var t wideint.Uint256
	t.Sub(q, &b.v)
	v.v.Add(&a.v, &t)
	return v
}

// Negate sets v = -a, and returns v.
func (v *Element) Negate(a *Element) *Element {
	return v.Subtract(feZero, a)
}

// Multiply sets v = x * y, and returns v.
func (v *Element) Multiply(x, y *Element) *Element {
	v.v.MulMod(&x.v, &y.v, q)
	return v
}

// Square sets v = x * x, and returns v.
func (v *Element) Square(x *Element) *Element {
	return v.Multiply(x, x)
}

// Pow sets v = x^e, and returns v.
func (v *Element) Pow(x *Element, e *wideint.Uint256) *Element {
	v.v.Exp(&x.v, e, q)
	return v
}

// Invert sets v = 1/z mod q, and returns v.
//
// If z == 0, Invert returns v = 0.
func (v *Element) Invert(z *Element) *Element {
	// Inversion is implemented as exponentiation with exponent q - 2.
	return v.Pow(z, qMinus2)
}
