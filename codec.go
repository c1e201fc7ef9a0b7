package wideint

func mustBeUnsigned[K Kind]() {
	if signed[K]() {
		panic("wideint: byte encoding of signed kind")
	}
}

// SetBytes sets z to the value of the big-endian byte slice b, and returns z.
//
// If b is shorter than z.Bits()/8 bytes it is zero-extended, if it is longer
// only the trailing z.Bits()/8 bytes are used, i.e. the value is reduced
// modulo 2^z.Bits().
//
// SetBytes panics if K is signed.
func (z *Int[K]) SetBytes(b []byte) *Int[K] {
	mustBeUnsigned[K]()
	*z = Int[K]{}
	m := z.m()
	if len(b) > len(m) {
		b = b[len(b)-len(m):]
	}
	copy(m[len(m)-len(b):], b)
	return z
}

// SetBytesLE sets z to the value of the little-endian byte slice b, and returns z.
// See [Int.SetBytes] for the handling of the slice length.
//
// SetBytesLE panics if K is signed.
func (z *Int[K]) SetBytesLE(b []byte) *Int[K] {
	mustBeUnsigned[K]()
	*z = Int[K]{}
	m := z.m()
	if len(b) > len(m) {
		b = b[:len(m)]
	}
	for i, c := range b {
		m[len(m)-1-i] = c
	}
	return z
}

// FromBytes returns a new Int of kind K set to the big-endian byte slice b.
// See [Int.SetBytes].
func FromBytes[K Kind](b []byte) *Int[K] {
	return new(Int[K]).SetBytes(b)
}

// Bytes returns the z.Bits()/8 byte big-endian encoding of z.
//
// Bytes panics if K is signed.
func (z *Int[K]) Bytes() []byte {
	mustBeUnsigned[K]()
	return append([]byte(nil), z.m()...)
}

// FillBytes sets buf to the z.Bits()/8 byte big-endian encoding of z, and returns buf.
//
// FillBytes panics if K is signed or buf is shorter than z.Bits()/8 bytes.
func (z *Int[K]) FillBytes(buf []byte) []byte {
	mustBeUnsigned[K]()
	m := z.m()
	if len(buf) < len(m) {
		panic("wideint: buffer too small")
	}
	buf = buf[:len(m)]
	copy(buf, m)
	return buf
}

// BytesLE returns the z.Bits()/8 byte little-endian encoding of z.
//
// BytesLE panics if K is signed.
func (z *Int[K]) BytesLE() []byte {
	mustBeUnsigned[K]()
	m := z.m()
	b := make([]byte, len(m))
	for i, c := range m {
		b[len(b)-1-i] = c
	}
	return b
}

// MinimalBytes returns the big-endian encoding of z without leading zero bytes.
// The encoding of zero is empty.
//
// MinimalBytes panics if K is signed.
func (z *Int[K]) MinimalBytes() []byte {
	mustBeUnsigned[K]()
	m := z.m()
	i := 0
	for i < len(m) && m[i] == 0 {
		i++
	}
	return append([]byte{}, m[i:]...)
}
