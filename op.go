package wideint

// op selects the operation performed by [binaryOp].
type op uint8

const (
	opAdd op = iota + 1
	opSub
	opMul
	opDiv
	opMod
	opAnd
	opOr
	opXor
)

// status is the outcome of [binaryOp] and [shift].
type status uint8

const (
	statusNegative status = 1 << iota
	statusOverflow
)

// binaryOp computes z = x <op> y over sign-magnitude operands.
//
// x, y and z are big-endian magnitudes of the same width (a multiple of 8 bytes),
// xneg and yneg are the operand signs. z may alias x or y.
//
// Arithmetic operations act on the represented integers and store the true result
// truncated to the width, with statusOverflow set when it does not fit.
// Division truncates toward zero and the remainder has the sign of the dividend.
// Unsigned results below zero are stored as their two's complement image.
//
// Bitwise operations act on the magnitudes when signed is not set.
// Otherwise they act on the two's complement images of the operands one limb
// wider than the width (see [toTwos]), and the resulting magnitude is truncated
// to the width with statusOverflow set when it does not fit.
//
// binaryOp panics if y is zero for opDiv and opMod.
func binaryOp(o op, z, x []byte, xneg bool, y []byte, yneg bool, signed bool) status {
	n := len(z) / 8

	var xs, ys [maxLimbs]uint64
	a, b := xs[:n], ys[:n]
	setLimbs(a, x)
	setLimbs(b, y)

	var neg, overflow bool
	switch o {
	case opAdd, opSub:
		if o == opSub {
			yneg = !yneg
		}
		if xneg == yneg {
			overflow = add(a, a, b) != 0
			neg = xneg
		} else if cmp(a, b) >= 0 {
			sub(a, a, b)
			neg = xneg
		} else {
			sub(a, b, a)
			neg = yneg
		}
	case opMul:
		var ps [2 * maxLimbs]uint64
		p := ps[:2*n]
		mul(p, a, b)
		copy(a, p[:n])
		overflow = !isZero(p[n:])
		neg = xneg != yneg
	case opDiv, opMod:
		if isZero(b) {
			panic("wideint: division by zero")
		}
		var qs, rs [2 * maxLimbs]uint64
		divRem(qs[:n], rs[:n], a, b)
		if o == opDiv {
			copy(a, qs[:n])
			neg = xneg != yneg
		} else {
			copy(a, rs[:n])
			neg = xneg
		}
	case opAnd, opOr, opXor:
		if !signed {
			bitwise(o, a, b)
			break
		}
		// one extra limb holds the sign, so every magnitude of the width has an image
		var xt, yt [maxLimbs + 1]uint64
		ta, tb := xt[:n+1], yt[:n+1]
		copy(ta, a)
		copy(tb, b)
		toTwos(ta, xneg)
		toTwos(tb, yneg)
		bitwise(o, ta, tb)
		neg = fromTwos(ta)
		copy(a, ta[:n])
		overflow = ta[n] != 0
	default:
		panic("wideint: unknown operator")
	}

	if isZero(a) {
		neg = false
	}
	if neg && !signed {
		// underflow of an unsigned kind wraps modulo 2^width
		negate(a)
		neg, overflow = false, true
	}

	fillBytes(z, a)
	return makeStatus(neg, overflow)
}

func bitwise(o op, x, y []uint64) {
	for i := range x {
		switch o {
		case opAnd:
			x[i] &= y[i]
		case opOr:
			x[i] |= y[i]
		case opXor:
			x[i] ^= y[i]
		}
	}
}

// shift computes z = x << n (left) or z = x >> n over a sign-magnitude operand.
//
// Left shift reports statusOverflow when set bits are shifted past the width.
// Right shift of a negative value rounds toward negative infinity,
// i.e. it is an arithmetic shift of the two's complement value.
func shift(z, x []byte, neg bool, n uint, left bool) status {
	l := len(z) / 8

	var xs [maxLimbs]uint64
	a := xs[:l]
	setLimbs(a, x)

	var overflow bool
	if left {
		overflow = !isZero(a) && (n >= uint(64*l) || uint(bitLen(a))+n > uint(64*l))
		if n >= uint(64*l) {
			clear(a)
		} else {
			lsh(a, a, n)
		}
	} else {
		roundUp := neg && lowBitsSet(a, n)
		rsh(a, a, n)
		if roundUp {
			var one [maxLimbs]uint64
			one[0] = 1
			add(a, a, one[:l])
		}
	}

	if isZero(a) {
		neg = false
	}
	fillBytes(z, a)
	return makeStatus(neg, overflow)
}

// toTwos converts magnitude x with sign neg into its two's complement image
// modulo 2^(64*len(x)).
func toTwos(x []uint64, neg bool) {
	if neg {
		negate(x)
	}
}

// fromTwos converts the two's complement image x back into a magnitude
// and returns its sign.
func fromTwos(x []uint64) (neg bool) {
	if x[len(x)-1]>>63 == 0 {
		return false
	}
	negate(x)
	return true
}

func makeStatus(neg, overflow bool) status {
	var s status
	if neg {
		s |= statusNegative
	}
	if overflow {
		s |= statusOverflow
	}
	return s
}

// compare returns the three-way comparison of sign-magnitude values x and y
// which may have different widths.
func compare(x []byte, xneg bool, y []byte, yneg bool) int {
	if xneg != yneg {
		if xneg {
			return -1
		}
		return 1
	}
	c := compareMagnitude(x, y)
	if xneg {
		return -c
	}
	return c
}

// compareMagnitude compares big-endian magnitudes of possibly different lengths.
func compareMagnitude(x, y []byte) int {
	for len(x) > len(y) {
		if x[0] != 0 {
			return 1
		}
		x = x[1:]
	}
	for len(y) > len(x) {
		if y[0] != 0 {
			return -1
		}
		y = y[1:]
	}
	for i := range x {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// expMod sets z = x^y mod |m| for sign-magnitude x, non-negative y and non-zero m.
// The result is in [0, |m|).
func expMod(z, x []byte, xneg bool, y, m []byte) {
	n := len(z) / 8

	var xs, ys, ms [maxLimbs]uint64
	base, e, mod := xs[:n], ys[:n], ms[:n]
	setLimbs(base, x)
	setLimbs(e, y)
	setLimbs(mod, m)
	if isZero(mod) {
		panic("wideint: zero modulus")
	}

	var qs [2 * maxLimbs]uint64
	var rs [maxLimbs]uint64
	r := rs[:n]

	divRem(qs[:n], r, base, mod)
	if xneg && !isZero(r) {
		sub(r, mod, r)
	}
	copy(base, r)

	var accs [maxLimbs]uint64
	acc := accs[:n]
	acc[0] = 1
	if length(mod) == 1 && mod[0] == 1 {
		acc[0] = 0
	}

	// left-to-right square-and-multiply
	for i := bitLen(e) - 1; i >= 0; i-- {
		mulMod(acc, acc, acc, mod)
		if e[i/64]>>(uint(i)%64)&1 == 1 {
			mulMod(acc, acc, base, mod)
		}
	}

	fillBytes(z, acc)
}

// mulMod sets z = x * y mod m using a double width intermediate product.
// z may alias x or y.
func mulMod(z, x, y, m []uint64) {
	n := len(m)
	var ps, qs [2 * maxLimbs]uint64
	p := ps[:2*n]
	mul(p, x, y)
	divRem(qs[:2*n], z, p, m)
}

// mulModSigned sets z = x*y mod |m| for sign-magnitude x and y and non-zero m.
// The result is in [0, |m|).
func mulModSigned(z, x []byte, xneg bool, y []byte, yneg bool, m []byte) {
	n := len(z) / 8

	var xs, ys, ms [maxLimbs]uint64
	a, b, mod := xs[:n], ys[:n], ms[:n]
	setLimbs(a, x)
	setLimbs(b, y)
	setLimbs(mod, m)
	if isZero(mod) {
		panic("wideint: zero modulus")
	}

	mulMod(a, a, b, mod)
	if xneg != yneg && !isZero(a) {
		sub(a, mod, a)
	}
	fillBytes(z, a)
}
