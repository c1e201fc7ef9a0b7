// Package mimc implements the MiMC7 hash over the BN254 scalar field.
//
// The construction and its round constants match the MiMC7 hash used by
// Ethereum-style zk-SNARK tooling:
//
//   - 91 rounds of x -> (x + k + c[i])^7 mod q,
//   - round constants derived from the seed "mimc" with Keccak-256,
//   - Miyaguchi-Preneel compression for multiple elements.
//
// Inputs that are not reduced modulo q are reduced first.
//
// [MiMC]: https://eprint.iacr.org/2016/492.pdf
package mimc

import (
	"sync"

	"github.com/AlexanderYastrebov/wideint"
	"github.com/AlexanderYastrebov/wideint/field"
	"golang.org/x/crypto/sha3"
)

const (
	// Rounds is the number of rounds of the MiMC7 permutation.
	Rounds = 91

	// Seed is the seed the round constants are derived from.
	Seed = "mimc"
)

// Q returns the field order all hashing is performed modulo.
func Q() *wideint.Uint256 {
	return field.Modulus()
}

// constants holds c[0] = 0, c[i] = Keccak256(c[i-1]) mod q where the
// unreduced digests are chained starting from Keccak256(Seed).
var constants = sync.OnceValue(func() []field.Element {
	cts := make([]field.Element, Rounds)

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(Seed))
	c := h.Sum(nil)

	for i := 1; i < Rounds; i++ {
		h.Reset()
		h.Write(c)
		c = h.Sum(c[:0])

		if _, err := cts[i].SetBytes(c); err != nil {
			panic(err)
		}
	}
	return cts
})

// Constants returns a copy of the round constants.
func Constants() []*wideint.Uint256 {
	cts := constants()
	r := make([]*wideint.Uint256, len(cts))
	for i := range cts {
		r[i] = cts[i].Uint256()
	}
	return r
}

// Hash7 returns the MiMC7 permutation of x keyed by k.
func Hash7(x, k *wideint.Uint256) *wideint.Uint256 {
	var xe, ke field.Element
	xe.SetUint256(x)
	ke.SetUint256(k)
	return hash7(&xe, &ke).Uint256()
}

func hash7(x, k *field.Element) *field.Element {
	cts := constants()

	var h, t, t2 field.Element
	for i := range Rounds {
		if i == 0 {
			t.Add(x, k)
		} else {
			t.Add(&h, k)
			t.Add(&t, &cts[i])
		}
		// h = t^7
		t2.Square(&t)
		h.Square(&t2)
		h.Multiply(&h, &t2)
		h.Multiply(&h, &t)
	}
	return h.Add(&h, k)
}

// Hash returns the MiMC7 hash of elements keyed by key.
//
// Each element is absorbed as r = r + e + Hash7(e, r), starting from r = key.
func Hash(elements []*wideint.Uint256, key *wideint.Uint256) *wideint.Uint256 {
	var r, e field.Element
	r.SetUint256(key)
	for _, x := range elements {
		e.SetUint256(x)
		absorb(&r, &e)
	}
	return r.Uint256()
}

// absorb sets r = r + e + hash7(e, r).
func absorb(r, e *field.Element) {
	h := hash7(e, r)
	r.Add(r, e)
	r.Add(r, h)
}

// Sum returns the 32-byte big-endian encoding of Hash(elements, key).
func Sum(elements []*wideint.Uint256, key *wideint.Uint256) []byte {
	return Hash(elements, key).Bytes()
}

// HashBytes returns the 32-byte big-endian MiMC7 hash of b.
//
// The input is split into 31-byte big-endian elements, the last one may be
// shorter, which are hashed with key 0.
// The empty input hashes to zero.
func HashBytes(b []byte) []byte {
	d := new(digest)
	d.Write(b)
	return d.Sum(nil)
}
