package bn256

import (
	"testing"

	"github.com/AlexanderYastrebov/wideint"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	g1Gen = &G1{X: *wideint.MustUint256("1"), Y: *wideint.MustUint256("2")}
	g1Two = &G1{
		X: *wideint.MustUint256("1368015179489954701390400359078579693043519447331113978918064868415326638035"),
		Y: *wideint.MustUint256("9918110051302171585080402603319702774565515993150576347155970296011118125764"),
	}
)

func g2Gen() *G2 {
	_, _, _, g2 := bn254.Generators()
	return &G2{
		X: [2]wideint.Uint256{fpUint256(&g2.X.A0), fpUint256(&g2.X.A1)},
		Y: [2]wideint.Uint256{fpUint256(&g2.Y.A0), fpUint256(&g2.Y.A1)},
	}
}

func TestP(t *testing.T) {
	assert.Equal(t, "21888242871839275222246405745257275088696311157297823662689037894645226208583", P().String())
}

func TestG1Add(t *testing.T) {
	b := New()

	r, err := b.G1Add(g1Gen, g1Gen)
	require.NoError(t, err)
	assert.Equal(t, g1Two.X.String(), r.X.String())
	assert.Equal(t, g1Two.Y.String(), r.Y.String())

	r, err = b.G1Add(g1Gen, &G1{})
	require.NoError(t, err)
	assert.Equal(t, "1", r.X.String())
	assert.Equal(t, "2", r.Y.String())
}

func TestG1ScalarMul(t *testing.T) {
	b := New()

	r, err := b.G1ScalarMul(g1Gen, wideint.MustUint256("2"))
	require.NoError(t, err)
	assert.True(t, r.X.Eq(&g1Two.X))
	assert.True(t, r.Y.Eq(&g1Two.Y))

	r, err = b.G1ScalarMul(g1Gen, new(wideint.Uint256))
	require.NoError(t, err)
	assert.True(t, r.X.IsZero() && r.Y.IsZero(), "0*G is the point at infinity")
}

func TestNegate(t *testing.T) {
	b := New()

	n := Negate(g1Gen)
	assert.Equal(t, "1", n.X.String())
	assert.Equal(t, "21888242871839275222246405745257275088696311157297823662689037894645226208581", n.Y.String())

	r, err := b.G1Add(g1Gen, n)
	require.NoError(t, err)
	assert.True(t, r.X.IsZero() && r.Y.IsZero())

	inf := Negate(&G1{})
	assert.True(t, inf.X.IsZero() && inf.Y.IsZero())
}

func TestG2(t *testing.T) {
	b := New()
	g := g2Gen()

	sum, err := b.G2Add(g, g)
	require.NoError(t, err)

	mul, err := b.G2ScalarMul(g, wideint.MustUint256("2"))
	require.NoError(t, err)

	for i := range 2 {
		assert.True(t, sum.X[i].Eq(&mul.X[i]))
		assert.True(t, sum.Y[i].Eq(&mul.Y[i]))
	}
}

func TestPairing(t *testing.T) {
	b := New()
	g2 := g2Gen()

	ok, err := PairingProd2(b, g1Gen, g2, Negate(g1Gen), g2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.Pairing([]G1{*g1Gen}, []G2{*g2})
	require.NoError(t, err)
	assert.False(t, ok)

	// e(2G, G2) * e(-G, G2) * e(-G, G2) == 1
	ok, err = PairingProd3(b, g1Two, g2, Negate(g1Gen), g2, Negate(g1Gen), g2)
	require.NoError(t, err)
	assert.True(t, ok)

	// e(2G, G2) * e(-G, 2*G2) == 1
	g22, err := b.G2ScalarMul(g2, wideint.MustUint256("2"))
	require.NoError(t, err)
	ok, err = PairingProd2(b, g1Two, g2, Negate(g1Gen), g22)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = PairingProd4(b, g1Two, g2, Negate(g1Gen), g22, g1Gen, g2, Negate(g1Gen), g2)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = PairingProd3(b, g1Two, g2, Negate(g1Two), g2, g1Gen, g2)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = PairingProd4(b, g1Two, g2, Negate(g1Two), g2, g1Two, g2, Negate(g1Gen), g22)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestErrors(t *testing.T) {
	b := New()

	_, err := b.G1Add(g1Gen, &G1{X: *wideint.MustUint256("1"), Y: *wideint.MustUint256("3")})
	assert.ErrorIs(t, err, ErrInvalidPoint)
	assert.Equal(t, -1, Status(err))

	_, err = b.G1ScalarMul(&G1{X: *P(), Y: *wideint.MustUint256("2")}, wideint.MustUint256("2"))
	assert.ErrorIs(t, err, ErrInvalidPoint)

	_, err = b.G2Add(&G2{}, &G2{X: [2]wideint.Uint256{*wideint.MustUint256("1")}})
	assert.ErrorIs(t, err, ErrInvalidPoint)

	_, err = b.Pairing([]G1{*g1Gen}, nil)
	assert.ErrorIs(t, err, ErrArgument)
	assert.Equal(t, -2, Status(err))

	_, err = b.Pairing([]G1{{X: *wideint.MustUint256("1"), Y: *wideint.MustUint256("3")}}, []G2{*g2Gen()})
	assert.ErrorIs(t, err, ErrInvalidPoint)
	assert.Equal(t, -1, Status(err))

	assert.Equal(t, 0, Status(nil))
}
