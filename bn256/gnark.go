package bn256

import (
	"math/big"

	"github.com/AlexanderYastrebov/wideint"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/pkg/errors"
)

type gnarkBackend struct{}

// New returns a [Backend] implemented with gnark-crypto.
func New() Backend {
	return gnarkBackend{}
}

func (gnarkBackend) G1Add(a, b *G1) (*G1, error) {
	pa, err := g1ToAffine(a)
	if err != nil {
		return nil, err
	}
	pb, err := g1ToAffine(b)
	if err != nil {
		return nil, err
	}

	var ja, jb bn254.G1Jac
	ja.FromAffine(pa)
	jb.FromAffine(pb)
	ja.AddAssign(&jb)

	return g1FromJac(&ja), nil
}

func (gnarkBackend) G1ScalarMul(a *G1, s *wideint.Uint256) (*G1, error) {
	pa, err := g1ToAffine(a)
	if err != nil {
		return nil, err
	}

	var j bn254.G1Jac
	j.FromAffine(pa)
	j.ScalarMultiplication(&j, bigInt(s))

	return g1FromJac(&j), nil
}

func (gnarkBackend) G2Add(a, b *G2) (*G2, error) {
	pa, err := g2ToAffine(a)
	if err != nil {
		return nil, err
	}
	pb, err := g2ToAffine(b)
	if err != nil {
		return nil, err
	}

	var ja, jb bn254.G2Jac
	ja.FromAffine(pa)
	jb.FromAffine(pb)
	ja.AddAssign(&jb)

	return g2FromJac(&ja), nil
}

func (gnarkBackend) G2ScalarMul(a *G2, s *wideint.Uint256) (*G2, error) {
	pa, err := g2ToAffine(a)
	if err != nil {
		return nil, err
	}

	var j bn254.G2Jac
	j.FromAffine(pa)
	j.ScalarMultiplication(&j, bigInt(s))

	return g2FromJac(&j), nil
}

func (gnarkBackend) Pairing(g1 []G1, g2 []G2) (bool, error) {
	if len(g1) != len(g2) {
		return false, errors.Wrapf(ErrArgument, "mismatched number of points: %d G1, %d G2", len(g1), len(g2))
	}
	if len(g1) == 0 {
		return false, errors.Wrap(ErrArgument, "no points")
	}

	ps := make([]bn254.G1Affine, len(g1))
	qs := make([]bn254.G2Affine, len(g2))
	for i := range g1 {
		p, err := g1ToAffine(&g1[i])
		if err != nil {
			return false, errors.Wrapf(err, "pair %d", i)
		}
		q, err := g2ToAffine(&g2[i])
		if err != nil {
			return false, errors.Wrapf(err, "pair %d", i)
		}
		ps[i], qs[i] = *p, *q
	}

	ok, err := bn254.PairingCheck(ps, qs)
	if err != nil {
		return false, errors.Wrap(ErrArgument, err.Error())
	}
	return ok, nil
}

func bigInt(s *wideint.Uint256) *big.Int {
	return new(big.Int).SetBytes(s.Bytes())
}

// setFp sets e to x, x must be below the base field order.
func setFp(e *fp.Element, x *wideint.Uint256) error {
	if !x.Lt(p) {
		return errors.Wrapf(ErrInvalidPoint, "coordinate %s is not below the field order", x)
	}
	e.SetBytes(x.Bytes())
	return nil
}

func fpUint256(e *fp.Element) wideint.Uint256 {
	b := e.Bytes()
	var r wideint.Uint256
	r.SetBytes(b[:])
	return r
}

func g1ToAffine(a *G1) (*bn254.G1Affine, error) {
	var r bn254.G1Affine
	if err := setFp(&r.X, &a.X); err != nil {
		return nil, err
	}
	if err := setFp(&r.Y, &a.Y); err != nil {
		return nil, err
	}
	if !r.IsOnCurve() {
		return nil, errors.Wrap(ErrInvalidPoint, "G1 point is not on curve")
	}
	return &r, nil
}

func g1FromJac(j *bn254.G1Jac) *G1 {
	var a bn254.G1Affine
	a.FromJacobian(j)
	return &G1{X: fpUint256(&a.X), Y: fpUint256(&a.Y)}
}

func g2ToAffine(a *G2) (*bn254.G2Affine, error) {
	var r bn254.G2Affine
	for _, c := range []struct {
		e *fp.Element
		x *wideint.Uint256
	}{
		{&r.X.A0, &a.X[0]},
		{&r.X.A1, &a.X[1]},
		{&r.Y.A0, &a.Y[0]},
		{&r.Y.A1, &a.Y[1]},
	} {
		if err := setFp(c.e, c.x); err != nil {
			return nil, err
		}
	}
	if !r.IsOnCurve() {
		return nil, errors.Wrap(ErrInvalidPoint, "G2 point is not on curve")
	}
	if !r.IsInSubGroup() {
		return nil, errors.Wrap(ErrInvalidPoint, "G2 point is not in subgroup")
	}
	return &r, nil
}

func g2FromJac(j *bn254.G2Jac) *G2 {
	var a bn254.G2Affine
	a.FromJacobian(j)
	return &G2{
		X: [2]wideint.Uint256{fpUint256(&a.X.A0), fpUint256(&a.X.A1)},
		Y: [2]wideint.Uint256{fpUint256(&a.Y.A0), fpUint256(&a.Y.A1)},
	}
}
