package secp256k1variant

import "math/big"

// ScalarMult returns k*pt via double-and-add. k is first reduced mod the
// group order through the decred library's constant-time ModNScalar type
// (ReduceScalar) rather than plain math/big modular reduction, so this
// variant leans on the same third-party library the validation path
// (ValidateWithLibrary) uses for point decoding.
func ScalarMult(k *big.Int, pt Point) Point {
	reduced := ReduceScalar(k.Bytes())
	var buf [32]byte
	reduced.PutBytes(&buf)
	kk := new(big.Int).SetBytes(buf[:])

	acc := Identity()
	cur := pt
	for i := kk.BitLen() - 1; i >= 0; i-- {
		acc = Add(acc, acc)
		if kk.Bit(i) == 1 {
			acc = Add(acc, cur)
		}
	}
	return acc
}
