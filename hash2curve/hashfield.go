package hash2curve

import (
	"math/big"

	"github.com/oprfkit/p256oprf/field"
)

// hashToFieldL is the per-element byte length used by hash_to_field for
// both P-256's field prime and its group order: 48 bytes suffices for
// 128-bit security against modulus bias for any 256-bit modulus (RFC 9380
// §5.2). Two independent call sites use this same L with different moduli
// (the field prime for map_to_curve, the group order for HashToScalar) —
// the modulus is always passed explicitly rather than picked by a
// per-modulus singleton, per the Design Notes on HashToField coupling.
const hashToFieldL = 48

// HashToField implements hash_to_field (RFC 9380 §5.2) for SHA-256/P-256
// sized moduli, returning count integers in [0, modulus).
func HashToField(msg, dst []byte, modulus *big.Int, count int) ([]*big.Int, error) {
	uniform, err := ExpandMessageXMD(msg, dst, count*hashToFieldL)
	if err != nil {
		return nil, err
	}

	out := make([]*big.Int, count)
	for i := 0; i < count; i++ {
		window := uniform[i*hashToFieldL : (i+1)*hashToFieldL]
		elem := field.New(field.OS2IP(window), modulus)
		out[i] = elem.Int()
	}
	return out, nil
}
