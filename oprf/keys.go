package oprf

import (
	"crypto/rand"
	"math/big"

	"github.com/oprfkit/p256oprf/field"
	"github.com/oprfkit/p256oprf/hash2curve"
	"github.com/oprfkit/p256oprf/oprferr"
)

// maxDeriveKeyPairCounter bounds DeriveKeyPair's rejection-sampling loop
// (spec §4.7: "Fail when counter > 255").
const maxDeriveKeyPairCounter = 255

// DeriveKeyPair deterministically derives a server private key skS from a
// seed and an info string, per RFC 9497 §3.2.1. It retries with an
// incrementing counter byte until a non-zero scalar is produced, and fails
// if that does not happen within 256 attempts (cryptographically
// negligible, spec §7 DeriveKeyPairExhausted).
func (s Suite) DeriveKeyPair(seed, info []byte) (*big.Int, error) {
	const op = "oprf.DeriveKeyPair"

	infoLen, err := field.I2OSPUint(uint64(len(info)), 2)
	if err != nil {
		return nil, oprferr.Wrap(op, oprferr.InvalidLength, err)
	}
	deriveInput := make([]byte, 0, len(seed)+len(infoLen)+len(info))
	deriveInput = append(deriveInput, seed...)
	deriveInput = append(deriveInput, infoLen...)
	deriveInput = append(deriveInput, info...)

	dst := s.DeriveKeyPairDST()
	for counter := 0; counter <= maxDeriveKeyPairCounter; counter++ {
		counterByte, err := field.I2OSPUint(uint64(counter), 1)
		if err != nil {
			return nil, oprferr.Wrap(op, oprferr.InvalidLength, err)
		}
		msg := make([]byte, 0, len(deriveInput)+1)
		msg = append(msg, deriveInput...)
		msg = append(msg, counterByte...)

		skS, err := s.HashToScalar(msg, dst)
		if err != nil {
			return nil, oprferr.Wrap(op, oprferr.InvalidLength, err)
		}
		if skS.Sign() != 0 {
			return skS, nil
		}
	}
	return nil, oprferr.New(op, oprferr.DeriveKeyPairExhausted)
}

// randomScalar draws a uniform scalar in [1, n-1], redrawing on the
// cryptographically negligible chance of a zero result (spec §3, Blind
// factor r invariant I2; spec §7 WeakScalar).
func randomScalar() (*big.Int, error) {
	const op = "oprf.randomScalar"
	n := hash2curve.P256Params().N
	nMinus1 := new(big.Int).Sub(n, big.NewInt(1))
	for {
		k, err := rand.Int(rand.Reader, nMinus1)
		if err != nil {
			return nil, oprferr.Wrap(op, oprferr.WeakScalar, err)
		}
		k.Add(k, big.NewInt(1)) // shift [0, n-2] to [1, n-1]
		if k.Sign() != 0 {
			return k, nil
		}
	}
}
