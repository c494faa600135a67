// Package oprf implements the client and server sides of OPRF(P-256, SHA-256)
// mode 0, per RFC 9497, built on the hash-to-curve pipeline in hash2curve.
//
// # Protocol Flow
//
// The protocol involves three steps, split across two parties:
//
//  1. Client blinds its input using Blind():
//     draws a random scalar r, computes blindedElement = r * HashToGroup(input)
//
//  2. Server evaluates using (*Server).Process():
//     computes evaluatedElement = skS * blindedElement
//
//  3. Client finalizes using Finalize():
//     recovers N = r^-1 * evaluatedElement, then
//     output = SHA256(len(input) || input || len(N) || SerializeElement(N) || "Finalize")
//
// Client.ConvertToIdentityKey wraps all of this into the single call a
// caller actually wants: given a Server and a sensitive string, it returns
// a stable identity key that reveals nothing about the string to anyone
// who doesn't already hold it, and nothing about the server's key to the
// client.
//
// # Usage Example
//
//	server, err := oprf.NewServer(oprf.ServerConfig{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client := oprf.NewClient()
//	key, err := client.ConvertToIdentityKey(server, "user@example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// key is "<processIdentifier>:<64 lowercase hex chars>"
//
// # Cryptographic Details
//
// This implementation follows RFC 9497 OPRF(P-256, SHA-256), mode 0, and
// RFC 9380 hash-to-curve (P256_XMD:SHA-256_SSWU_RO_). Only mode 0 (no
// verifiability) is implemented; VOPRF/POPRF verification is out of scope.
package oprf

import (
	"math/big"

	"github.com/oprfkit/p256oprf/hash2curve"
)

// Suite identifies the OPRF cipher suite. Only SuiteP256 participates in
// the protocol types in this package; it exists as an enumerated value
// (rather than this package simply being P-256-only in name) so the
// context-string construction below generalizes the same way RFC 9497
// defines it for every suite, even though this module wires up exactly one.
type Suite int

const (
	// SuiteP256 is OPRF(P-256, SHA-256), mode 0.
	SuiteP256 Suite = iota
)

// modeBase is the mode-0 (base OPRF, no verifiability) byte of the context string.
const modeBase = 0x00

func (s Suite) identifier() string {
	switch s {
	case SuiteP256:
		return "P256-SHA256"
	default:
		return "unknown"
	}
}

// contextString builds "OPRFV1-" || I2OSP(mode, 1) || "-" || suiteID per RFC 9497 §3.2.
func (s Suite) contextString() []byte {
	out := make([]byte, 0, 7+1+1+len(s.identifier()))
	out = append(out, "OPRFV1-"...)
	out = append(out, modeBase)
	out = append(out, '-')
	out = append(out, s.identifier()...)
	return out
}

// dst builds a DST of the form label||"OPRFV1-"||mode||"-"||suiteID. No
// separator is inserted: labels that want a trailing "-" carry it themselves.
func (s Suite) dst(label string) []byte {
	ctx := s.contextString()
	out := make([]byte, 0, len(label)+len(ctx))
	out = append(out, label...)
	out = append(out, ctx...)
	return out
}

// HashToGroupDST returns the DST used by HashToGroup.
func (s Suite) HashToGroupDST() []byte { return s.dst("HashToGroup-") }

// HashToScalarDST returns the DST used by HashToScalar.
func (s Suite) HashToScalarDST() []byte { return s.dst("HashToScalar-") }

// DeriveKeyPairDST returns the DST used by DeriveKeyPair.
func (s Suite) DeriveKeyPairDST() []byte { return s.dst("DeriveKeyPair") }

// HashToGroup hashes input onto the P-256 curve using this suite's DST.
func (s Suite) HashToGroup(input []byte) (hash2curve.Point, error) {
	return hash2curve.HashToCurve(input, s.HashToGroupDST())
}

// HashToScalar hashes input to a scalar mod the group order n, under dst.
func (s Suite) HashToScalar(input, dst []byte) (*big.Int, error) {
	out, err := hash2curve.HashToField(input, dst, hash2curve.P256Params().N, 1)
	if err != nil {
		return nil, err
	}
	return out[0], nil
}
