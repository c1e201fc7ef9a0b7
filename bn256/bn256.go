// Package bn256 defines the BN254 (alt_bn128) curve operations consumed by
// the MiMC and zk-SNARK tooling, and binds them to [gnark-crypto].
//
// Points are exchanged as affine coordinates of [wideint.Uint256] values,
// the point at infinity is (0, 0).
//
// [gnark-crypto]: https://github.com/consensys/gnark-crypto
package bn256

import (
	"github.com/AlexanderYastrebov/wideint"
	"github.com/pkg/errors"
)

// G1 is a point of the group G1 over the base field.
type G1 struct {
	X, Y wideint.Uint256
}

// G2 is a point of the group G2 over the quadratic extension field.
// Element 0 of each coordinate is the real part and element 1 the imaginary part.
type G2 struct {
	X, Y [2]wideint.Uint256
}

// Backend performs curve arithmetic and pairing checks.
type Backend interface {
	// G1Add returns a + b.
	G1Add(a, b *G1) (*G1, error)
	// G1ScalarMul returns s * p.
	G1ScalarMul(p *G1, s *wideint.Uint256) (*G1, error)
	// G2Add returns a + b.
	G2Add(a, b *G2) (*G2, error)
	// G2ScalarMul returns s * p.
	G2ScalarMul(p *G2, s *wideint.Uint256) (*G2, error)
	// Pairing returns whether the product of pairings e(g1[i], g2[i]) is one.
	Pairing(g1 []G1, g2 []G2) (bool, error)
}

var (
	// ErrInvalidPoint is returned for coordinates that are not a valid group element.
	ErrInvalidPoint = errors.New("bn256: invalid point")

	// ErrArgument is returned for malformed pairing arguments.
	ErrArgument = errors.New("bn256: invalid argument")
)

// Status returns the numeric status code for an error returned by a [Backend]:
// 0 for success, -1 for invalid points and -2 for invalid pairing arguments.
func Status(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrArgument):
		return -2
	default:
		return -1
	}
}

// P returns the base field order.
func P() *wideint.Uint256 {
	return new(wideint.Uint256).Set(p)
}

var p = wideint.MustUint256("21888242871839275222246405745257275088696311157297823662689037894645226208583")

// Negate returns -a, such that a + (-a) is the point at infinity.
func Negate(a *G1) *G1 {
	r := &G1{X: a.X}
	if a.X.IsZero() && a.Y.IsZero() {
		return r
	}
	// p - (y mod p)
	r.Y.Mod(&a.Y, p)
	r.Y.Sub(p, &r.Y)
	r.Y.Mod(&r.Y, p)
	return r
}

// PairingProd2 checks e(a1, a2) * e(b1, b2) == 1.
func PairingProd2(b Backend, a1 *G1, a2 *G2, b1 *G1, b2 *G2) (bool, error) {
	return b.Pairing([]G1{*a1, *b1}, []G2{*a2, *b2})
}

// PairingProd3 checks e(a1, a2) * e(b1, b2) * e(c1, c2) == 1.
func PairingProd3(b Backend, a1 *G1, a2 *G2, b1 *G1, b2 *G2, c1 *G1, c2 *G2) (bool, error) {
	return b.Pairing([]G1{*a1, *b1, *c1}, []G2{*a2, *b2, *c2})
}

// PairingProd4 checks e(a1, a2) * e(b1, b2) * e(c1, c2) * e(d1, d2) == 1.
func PairingProd4(b Backend, a1 *G1, a2 *G2, b1 *G1, b2 *G2, c1 *G1, c2 *G2, d1 *G1, d2 *G2) (bool, error) {
	return b.Pairing([]G1{*a1, *b1, *c1, *d1}, []G2{*a2, *b2, *c2, *d2})
}
