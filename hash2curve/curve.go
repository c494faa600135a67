package hash2curve

// HashToCurve implements hash_to_curve (RFC 9380 §3) for P-256: it hashes
// msg to two field elements under dst, maps each independently via
// MapToCurveP256, adds the results, and clears the cofactor (a no-op for
// P-256, whose cofactor is 1). The result is deterministic in (msg, dst)
// and, by the _RO_ suite's random-oracle property, indistinguishable from
// a uniformly random group element.
func HashToCurve(msg, dst []byte) (Point, error) {
	us, err := HashToField(msg, dst, P256Params().P, 2)
	if err != nil {
		return Point{}, err
	}

	q0 := MapToCurveP256(us[0])
	q1 := MapToCurveP256(us[1])

	r := Add(q0, q1)
	// clear_cofactor is the identity map for P-256 (h_eff = 1).
	return r, nil
}
