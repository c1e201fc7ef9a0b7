package mimc

import (
	"hash"

	"github.com/AlexanderYastrebov/wideint/field"
)

const (
	// Size is the size of a MiMC7 digest in bytes.
	Size = 32

	// BlockSize is the number of input bytes absorbed as one field element.
	BlockSize = 31
)

// digest absorbs complete blocks as they are written
// and the trailing partial block on Sum.
type digest struct {
	r  field.Element
	x  [BlockSize]byte
	nx int
}

// New returns a new [hash.Hash] computing the MiMC7 digest, see [HashBytes].
func New() hash.Hash {
	return new(digest)
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Reset() {
	*d = digest{}
}

func (d *digest) Write(p []byte) (int, error) {
	n := len(p)
	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		p = p[c:]
		if d.nx == BlockSize {
			d.block(d.x[:])
			d.nx = 0
		}
	}
	for len(p) >= BlockSize {
		d.block(p[:BlockSize])
		p = p[BlockSize:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return n, nil
}

func (d *digest) block(b []byte) {
	var buf [Size]byte
	copy(buf[Size-len(b):], b)

	var e field.Element
	if _, err := e.SetBytes(buf[:]); err != nil {
		panic(err)
	}
	absorb(&d.r, &e)
}

// Sum appends the current hash to b and returns the resulting slice.
// It does not change the underlying hash state.
func (d *digest) Sum(b []byte) []byte {
	d0 := *d
	if d0.nx > 0 {
		d0.block(d0.x[:d0.nx])
	}
	var out [Size]byte
	return append(b, d0.r.FillBytes(out[:])...)
}
