package oprf

import (
	"crypto/sha256"
	"math/big"

	"github.com/oprfkit/p256oprf/field"
	"github.com/oprfkit/p256oprf/hash2curve"
	"github.com/oprfkit/p256oprf/oprferr"
)

// finalizeDST is the literal domain-separation suffix RFC 9497 §3.3.1 uses
// for Finalize; unlike HashToGroup/HashToScalar/DeriveKeyPair it is not
// suite-parameterized.
const finalizeDST = "Finalize"

// Blind computes P = HashToGroup(input), draws a fresh blind r uniform in
// [1, n-1], and returns (r, r*P). Called on the client side.
func (s Suite) Blind(input []byte) (r *big.Int, blinded hash2curve.Point, err error) {
	r, err = randomScalar()
	if err != nil {
		return nil, hash2curve.Point{}, err
	}
	blinded, err = s.BlindWithFactor(input, r)
	if err != nil {
		return nil, hash2curve.Point{}, err
	}
	return r, blinded, nil
}

// BlindWithFactor computes r*HashToGroup(input) for a caller-supplied
// blind r. Production callers should use Blind, which draws r uniformly;
// this entry point exists so conformance tests can reproduce fixed test
// vectors (spec §8 scenarios 3-5).
func (s Suite) BlindWithFactor(input []byte, r *big.Int) (hash2curve.Point, error) {
	const op = "oprf.Blind"
	p, err := s.HashToGroup(input)
	if err != nil {
		return hash2curve.Point{}, oprferr.Wrap(op, oprferr.OffCurvePoint, err)
	}
	return hash2curve.ScalarMult(r, p), nil
}

// Evaluate computes skS * blindedElement. Called on the server side.
func Evaluate(skS *big.Int, blindedElement hash2curve.Point) hash2curve.Point {
	return hash2curve.ScalarMult(skS, blindedElement)
}

// Finalize recovers N = r^-1 * evaluatedElement and returns the 32-byte
// OPRF output SHA256(len(input) || input || len(issuedElement) ||
// issuedElement || "Finalize"). Called on the client side.
func Finalize(input []byte, r *big.Int, evaluatedElement hash2curve.Point) ([32]byte, error) {
	const op = "oprf.Finalize"
	var out [32]byte

	n := hash2curve.P256Params().N
	rInv := new(big.Int).ModInverse(r, n)
	if rInv == nil {
		return out, oprferr.New(op, oprferr.WeakScalar)
	}

	N := hash2curve.ScalarMult(rInv, evaluatedElement)
	issued, err := hash2curve.EncodeCompressed(N)
	if err != nil {
		return out, oprferr.Wrap(op, oprferr.OffCurvePoint, err)
	}

	inputLen, err := field.I2OSPUint(uint64(len(input)), 2)
	if err != nil {
		return out, oprferr.Wrap(op, oprferr.InvalidLength, err)
	}
	issuedLen, err := field.I2OSPUint(uint64(len(issued)), 2)
	if err != nil {
		return out, oprferr.Wrap(op, oprferr.InvalidLength, err)
	}

	h := sha256.New()
	h.Write(inputLen)
	h.Write(input)
	h.Write(issuedLen)
	h.Write(issued)
	h.Write([]byte(finalizeDST))
	copy(out[:], h.Sum(nil))
	return out, nil
}
