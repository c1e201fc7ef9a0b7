package wideint

import "math/bits"

// Magnitudes are processed as little-endian slices of 64-bit limbs,
// so that x[0] is the least significant limb.
//
// Operands of a single operation always have the same number of limbs
// (the width of the kind), products use twice as many.
const (
	maxBytes = 64
	maxLimbs = maxBytes / 8
)

// setLimbs sets x to the big-endian magnitude b, len(b) == 8*len(x).
func setLimbs(x []uint64, b []byte) {
	n := len(x)
	for i := range n {
		off := len(b) - 8*(i+1)
		x[i] = uint64(b[off])<<56 | uint64(b[off+1])<<48 | uint64(b[off+2])<<40 | uint64(b[off+3])<<32 |
			uint64(b[off+4])<<24 | uint64(b[off+5])<<16 | uint64(b[off+6])<<8 | uint64(b[off+7])
	}
}

// fillBytes writes x into the big-endian magnitude b, len(b) == 8*len(x).
func fillBytes(b []byte, x []uint64) {
	for i, w := range x {
		off := len(b) - 8*(i+1)
		b[off] = byte(w >> 56)
		b[off+1] = byte(w >> 48)
		b[off+2] = byte(w >> 40)
		b[off+3] = byte(w >> 32)
		b[off+4] = byte(w >> 24)
		b[off+5] = byte(w >> 16)
		b[off+6] = byte(w >> 8)
		b[off+7] = byte(w)
	}
}

func isZero(x []uint64) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

// length returns the number of significant limbs of x.
func length(x []uint64) int {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return i
}

func bitLen(x []uint64) int {
	n := length(x)
	if n == 0 {
		return 0
	}
	return (n-1)*64 + bits.Len64(x[n-1])
}

// cmp compares x and y of equal length and returns -1, 0 or +1.
func cmp(x, y []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// add sets z = x + y and returns the carry.
func add(z, x, y []uint64) uint64 {
	var carry uint64
	for i := range z {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return carry
}

// sub sets z = x - y and returns the borrow.
func sub(z, x, y []uint64) uint64 {
	var borrow uint64
	for i := range z {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	return borrow
}

// negate sets x = 2^(64*len(x)) - x, the two's complement of x.
func negate(x []uint64) {
	var borrow uint64
	for i := range x {
		x[i], borrow = bits.Sub64(0, x[i], borrow)
	}
}

// mul sets z = x * y, len(z) == len(x) + len(y).
// z must not alias x or y.
func mul(z, x, y []uint64) {
	clear(z)
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j, yj := range y {
			hi, lo := bits.Mul64(xi, yj)
			var c uint64
			lo, c = bits.Add64(lo, z[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			z[i+j] = lo
			carry = hi
		}
		z[i+len(y)] = carry
	}
}

// lsh sets z = x << n truncated to len(z) limbs, len(z) == len(x).
func lsh(z, x []uint64, n uint) {
	limbs, s := int(n/64), n%64
	for i := len(z) - 1; i >= 0; i-- {
		var w uint64
		if j := i - limbs; j >= 0 {
			w = x[j] << s
			if j > 0 && s > 0 {
				w |= x[j-1] >> (64 - s)
			}
		}
		z[i] = w
	}
}

// rsh sets z = x >> n, len(z) == len(x).
func rsh(z, x []uint64, n uint) {
	limbs, s := int(n/64), n%64
	for i := range z {
		var w uint64
		if j := i + limbs; j < len(x) {
			w = x[j] >> s
			if j+1 < len(x) && s > 0 {
				w |= x[j+1] << (64 - s)
			}
		}
		z[i] = w
	}
}

// lowBitsSet reports whether any of the n least significant bits of x is set.
func lowBitsSet(x []uint64, n uint) bool {
	limbs, s := int(n/64), n%64
	for i := 0; i < limbs && i < len(x); i++ {
		if x[i] != 0 {
			return true
		}
	}
	return limbs < len(x) && s > 0 && x[limbs]<<(64-s) != 0
}

// divRem sets q = u / v and r = u % v.
//
// It requires len(q) >= len(u), len(r) >= len(v), len(u) <= 2*maxLimbs,
// len(v) <= maxLimbs and v != 0. q and r must not alias u or v.
//
// https://en.wikipedia.org/wiki/Division_algorithm#Long_division
// (Knuth, TAOCP vol. 2, 4.3.1, Algorithm D)
func divRem(q, r, u, v []uint64) {
	clear(q)
	clear(r)

	vLen := length(v)
	uLen := length(u)
	if uLen < vLen {
		copy(r, u[:uLen])
		return
	}

	// Normalize, so that the top bit of the divisor is set.
	shift := uint(bits.LeadingZeros64(v[vLen-1]))

	var vnBuf [maxLimbs]uint64
	vn := vnBuf[:vLen]
	for i := vLen - 1; i > 0; i-- {
		vn[i] = v[i]<<shift | v[i-1]>>(64-shift)
	}
	vn[0] = v[0] << shift

	var unBuf [2*maxLimbs + 1]uint64
	un := unBuf[:uLen+1]
	un[uLen] = u[uLen-1] >> (64 - shift)
	for i := uLen - 1; i > 0; i-- {
		un[i] = u[i]<<shift | u[i-1]>>(64-shift)
	}
	un[0] = u[0] << shift

	if vLen == 1 {
		rem := un[uLen]
		for j := uLen - 1; j >= 0; j-- {
			q[j], rem = bits.Div64(rem, un[j], vn[0])
		}
		r[0] = rem >> shift
		return
	}

	divKnuth(q, un, vn)

	for i := 0; i < vLen-1; i++ {
		r[i] = un[i]>>shift | un[i+1]<<(64-shift)
	}
	r[vLen-1] = un[vLen-1] >> shift
}

// divKnuth implements the main loop of Algorithm D for the normalized
// divisor d, len(d) >= 2. The remainder is left in u.
func divKnuth(q, u, d []uint64) {
	dh := d[len(d)-1]
	dl := d[len(d)-2]

	for j := len(u) - len(d) - 1; j >= 0; j-- {
		u2 := u[j+len(d)]
		u1 := u[j+len(d)-1]
		u0 := u[j+len(d)-2]

		var qhat, rhat uint64
		if u2 >= dh {
			qhat = ^uint64(0)
		} else {
			qhat, rhat = bits.Div64(u2, u1, dh)
			ph, pl := bits.Mul64(qhat, dl)
			if ph > rhat || (ph == rhat && pl > u0) {
				qhat--
			}
		}

		// Multiply and subtract.
		borrow := subMul(u[j:], d, qhat)
		u[j+len(d)] = u2 - borrow
		if u2 < borrow {
			// Too much subtracted, add back.
			qhat--
			u[j+len(d)] += addTo(u[j:], d)
		}

		q[j] = qhat
	}
}

// subMul sets x -= y * m over len(y) limbs and returns the borrow.
func subMul(x, y []uint64, m uint64) uint64 {
	var borrow uint64
	for i := range y {
		s, c1 := bits.Sub64(x[i], borrow, 0)
		ph, pl := bits.Mul64(y[i], m)
		t, c2 := bits.Sub64(s, pl, 0)
		x[i] = t
		borrow = ph + c1 + c2
	}
	return borrow
}

// addTo sets x += y over len(y) limbs and returns the carry.
func addTo(x, y []uint64) uint64 {
	var carry uint64
	for i := range y {
		x[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return carry
}

// divWord sets x = x / w and returns x % w.
func divWord(x []uint64, w uint64) uint64 {
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		x[i], rem = bits.Div64(rem, x[i], w)
	}
	return rem
}

// mulAddWord sets x = x*m + a and returns the carry limb.
func mulAddWord(x []uint64, m, a uint64) uint64 {
	carry := a
	for i := range x {
		hi, lo := bits.Mul64(x[i], m)
		var c uint64
		lo, c = bits.Add64(lo, carry, 0)
		x[i] = lo
		carry = hi + c
	}
	return carry
}
