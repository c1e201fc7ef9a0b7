// Package wideint implements fixed-width 256-bit and 512-bit integer arithmetic,
// signed and unsigned.
//
// The [Int] type is parameterized by a [Kind] that fixes its width and signedness.
// Values are stored in sign-magnitude form with a big-endian magnitude, and every
// arithmetic operation reports whether its true result fit the width
// via [Int.Overflow]. Results that do not fit wrap around silently, the way
// native fixed-width integers do.
//
// Operations follow the [math/big] convention: the receiver is set to the
// result and returned, so calls can be chained:
//
//	x := wideint.MustUint256("503")
//	y := new(wideint.Uint256).Lsh(x, 6) // 32192
//	z := new(wideint.Uint256).Exp(wideint.FromUint64[wideint.U256](10), wideint.FromUint64[wideint.U256](5), wideint.FromUint64[wideint.U256](17)) // 6
//
// Binary operations accept operands of the same kind only.
// Values are converted between kinds explicitly with [Convert]; when mixing kinds,
// convert to the kind with more bits, or to the signed kind if the widths are equal.
//
// Byte encoding ([Int.SetBytes], [Int.Bytes] and their little-endian variants) is
// only defined for unsigned kinds, the methods panic on signed kinds.
// Division by zero, negation of an unsigned value and other precondition
// violations panic as well.
package wideint
