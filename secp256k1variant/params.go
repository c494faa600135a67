// Package secp256k1variant implements the optional secp256k1 hash-to-curve
// pipeline spec §4.5/§4.1 calls out as "present in the source as an
// alternative hash-to-curve target but ... not required for the OPRF
// protocol ... specified only as an optional pipeline variant." Nothing in
// package oprf depends on this package; it is a standalone alternative
// pipeline with its own Point type, exercised only by its own tests.
// map_to_curve output is not tagged by curve, and no suite tag selects
// between this pipeline and hash2curve's.
//
// secp256k1 has curve coefficient A = 0, so the simplified SWU map used for
// P-256 (hash2curve.MapToCurveP256, which requires A != 0) does not apply
// directly. Spec §4.5 allows either applying a 3-isogeny from a mapped
// curve E' or, "when absent, construct the point directly" — this package
// takes the second path and maps straight onto secp256k1 using the
// Shallue-van de Woestijne method (RFC 9380 §6.6.1), which is defined for
// any A, B and does not require an isogeny.
package secp256k1variant

import "math/big"

// These are the secp256k1 curve constants this variant needs: field
// prime P, group order N, curve coefficients A=0, B=7, and the RFC 9380
// §6.6.1 SVDW constant Z. They are the standard, widely published
// secp256k1 domain parameters (SEC2 §2.4.1), not derived from any
// crypto/elliptic table since the standard library does not carry this
// curve.
var (
	P  = mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	N  = mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
	Gx = mustHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	Gy = mustHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")
	A  = big.NewInt(0)
	B  = big.NewInt(7)
	// Z is the SVDW constant for secp256k1 (RFC 9380 §6.6.1): Z = 1 satisfies
	// the method's conditions for this curve (g(Z) != 0, -g(Z)*3Z^2 is a
	// square, and g(Z) = 8 is a square).
	Z = big.NewInt(1)
)

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("secp256k1variant: invalid hex constant " + s)
	}
	return v
}
