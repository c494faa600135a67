package secp256k1variant

import "github.com/oprfkit/p256oprf/hash2curve"

// DST is the demonstration domain-separation tag this variant's exported
// HashToCurve uses; it is not part of the OPRF(P-256, SHA-256) suite and
// carries no cryptographic meaning beyond exercising the pipeline.
const DST = "secp256k1variant-demo-v1"

// HashToCurve maps msg to a secp256k1 point: two field elements via
// hash_to_field (reused from hash2curve, which already takes its modulus
// as an explicit parameter rather than a per-modulus singleton), each
// mapped independently via the SVDW method, then combined by point
// addition — the same RO-suite shape as hash2curve.HashToCurve for
// P-256, just over a different curve and without the isogeny step.
func HashToCurve(msg []byte) (Point, error) {
	us, err := hash2curve.HashToField(msg, []byte(DST), P, 2)
	if err != nil {
		return Point{}, err
	}

	q0 := MapToCurve(us[0])
	q1 := MapToCurve(us[1])

	// Cofactor is 1 for secp256k1, so clear_cofactor is the identity map.
	return Add(q0, q1), nil
}
