// Package field implements the prime-field and scalar-field arithmetic the
// hash-to-curve and OPRF layers build on, plus the RFC 8017 octet-string
// conversions those layers serialize through.
//
// Field elements (mod the P-256 prime p) and scalars (mod the P-256 group
// order n) share one Go type, Elem, which carries the modulus it is reduced
// under. Binary operations reduce under the receiver's modulus and do not
// check that the other operand carries the same one.
package field

import (
	"math/big"

	"github.com/oprfkit/p256oprf/oprferr"
)

// I2OSP serialises a non-negative integer big-endian into exactly length bytes.
// Corresponds to RFC 8017 §4.1.
func I2OSP(value *big.Int, length int) ([]byte, error) {
	if value.Sign() < 0 {
		return nil, oprferr.New("I2OSP", oprferr.InvalidLength)
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(8*length))
	if value.Cmp(limit) >= 0 {
		return nil, oprferr.New("I2OSP", oprferr.InvalidLength)
	}
	out := make([]byte, length)
	value.FillBytes(out)
	return out, nil
}

// I2OSPUint is a convenience wrapper over I2OSP for small non-negative values.
func I2OSPUint(value uint64, length int) ([]byte, error) {
	return I2OSP(new(big.Int).SetUint64(value), length)
}

// OS2IP interprets bytes big-endian as a non-negative integer. It is the
// total inverse of I2OSP.
func OS2IP(data []byte) *big.Int {
	return new(big.Int).SetBytes(data)
}

// Strxor XORs two equal-length byte strings, failing when lengths differ.
func Strxor(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, oprferr.New("strxor", oprferr.InvalidLength)
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}
