package wideint

import (
	"github.com/pkg/errors"
)

// ErrSyntax is returned when a string is not a valid integer literal.
var ErrSyntax = errors.New("wideint: invalid syntax")

// SetString sets z to the value of s, and returns z.
//
// s is a decimal literal, or a hexadecimal literal with the "0x" or "0X" prefix,
// optionally preceded by "-" for signed kinds.
//
// Digits are accumulated most significant first as z = z*base + digit.
// If a step overflows, parsing stops and z is left with the wrapped value of
// that step and reports [Int.Overflow], remaining digits are not checked.
func (z *Int[K]) SetString(s string) (*Int[K], error) {
	*z = Int[K]{}

	lit := s
	neg := false
	if len(lit) > 0 && lit[0] == '-' {
		if !signed[K]() {
			return nil, errors.Wrapf(ErrSyntax, "negative literal %q for unsigned kind", s)
		}
		neg = true
		lit = lit[1:]
	}

	base := uint64(10)
	if len(lit) > 2 && lit[0] == '0' && (lit[1] == 'x' || lit[1] == 'X') {
		base = 16
		lit = lit[2:]
	}
	if lit == "" {
		return nil, errors.Wrapf(ErrSyntax, "empty literal %q", s)
	}

	m := z.m()
	var limbs [maxLimbs]uint64
	x := limbs[:len(m)/8]
	overflow := false
	for i := 0; i < len(lit); i++ {
		d, ok := digit(lit[i], base)
		if !ok {
			return nil, errors.Wrapf(ErrSyntax, "invalid digit %q in %q", lit[i], s)
		}
		if mulAddWord(x, base, d) != 0 {
			overflow = true
			break
		}
	}
	fillBytes(m, x)

	z.neg = neg && !isZero(x)
	z.overflow = overflow
	return z, nil
}

func digit(c byte, base uint64) (uint64, bool) {
	var d uint64
	switch {
	case '0' <= c && c <= '9':
		d = uint64(c - '0')
	case 'a' <= c && c <= 'f':
		d = uint64(c-'a') + 10
	case 'A' <= c && c <= 'F':
		d = uint64(c-'A') + 10
	default:
		return 0, false
	}
	return d, d < base
}

// Parse returns a new Int of kind K set to the value of s, see [Int.SetString].
func Parse[K Kind](s string) (*Int[K], error) {
	return new(Int[K]).SetString(s)
}

// MustParse is like [Parse] but panics if s is not a valid literal.
func MustParse[K Kind](s string) *Int[K] {
	z, err := Parse[K](s)
	if err != nil {
		panic(err)
	}
	return z
}

// MustUint256 returns the [Uint256] value of the literal s, see [MustParse].
func MustUint256(s string) *Uint256 { return MustParse[U256](s) }

// MustInt256 returns the [Int256] value of the literal s, see [MustParse].
func MustInt256(s string) *Int256 { return MustParse[I256](s) }

// MustUint512 returns the [Uint512] value of the literal s, see [MustParse].
func MustUint512(s string) *Uint512 { return MustParse[U512](s) }

// MustInt512 returns the [Int512] value of the literal s, see [MustParse].
func MustInt512(s string) *Int512 { return MustParse[I512](s) }

// String returns the decimal representation of z.
func (z *Int[K]) String() string {
	m := z.m()
	var limbs [maxLimbs]uint64
	x := limbs[:len(m)/8]
	setLimbs(x, m)

	// 2^512 has 155 decimal digits
	var buf [1 + 155]byte
	i := len(buf)
	for {
		i--
		buf[i] = '0' + byte(divWord(x, 10))
		if isZero(x) {
			break
		}
	}
	if z.neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Hex returns the hexadecimal representation of z with the "0x" prefix
// and without leading zeros.
func (z *Int[K]) Hex() string {
	const digits = "0123456789abcdef"
	m := z.m()
	buf := make([]byte, 0, 3+2*len(m))
	if z.neg {
		buf = append(buf, '-')
	}
	buf = append(buf, '0', 'x')
	start := len(buf)
	for _, c := range m {
		if len(buf) == start && c == 0 {
			continue
		}
		if len(buf) == start && c < 0x10 {
			buf = append(buf, digits[c])
			continue
		}
		buf = append(buf, digits[c>>4], digits[c&0xf])
	}
	if len(buf) == start {
		buf = append(buf, '0')
	}
	return string(buf)
}

// MarshalText implements [encoding.TextMarshaler] using the decimal representation.
func (z *Int[K]) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], see [Int.SetString].
// Literals that overflow are rejected.
func (z *Int[K]) UnmarshalText(text []byte) error {
	if _, err := z.SetString(string(text)); err != nil {
		return err
	}
	if z.overflow {
		return errors.Errorf("wideint: literal %q overflows %d bits", text, z.Bits())
	}
	return nil
}
