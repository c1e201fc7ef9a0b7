// Package field implements arithmetic modulo the prime
//
//	q = 21888242871839275222246405745257275088548364400416034343698204186575808495617
//
// the order of the BN254 (alt_bn128) scalar field.
//
// [Element] type API follows [filippo.io/edwards25519/field.Element],
// but elements are encoded as 32-byte big-endian values, matching the
// encoding used by Ethereum-style BN254 tooling.
//
// Elements are backed by [wideint.Uint256] and every operation is a
// modular reduction of fixed-width integer arithmetic,
// products are reduced with [wideint.Int.MulMod].
package field
