// Package transport defines the wire types that pass between an OPRF
// client and server, and the hex/SEC1 codec they're carried over. None of
// this package touches OPRF semantics — it is the thin, explicitly
// out-of-scope collaborator spec §1 calls for (hex/octet encoding, request
// tracing ids), kept separate so the cryptographic core in oprf and
// hash2curve never has to know about wire formats.
package transport

import (
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/oprfkit/p256oprf/hash2curve"
	"github.com/oprfkit/p256oprf/oprferr"
)

// Request is the message a Client sends a Server: a blinded element plus
// an opaque tracing id. RequestID is never fed into the OPRF computation.
type Request struct {
	HexCodedEcPoint string
	RequestID       string
}

// Response is the message a Server sends back: an evaluated element plus
// the server's opaque process identifier.
type Response struct {
	HexCodedEcPoint   string
	ProcessIdentifier string
}

// NewRequestID returns a fresh opaque tracing id, grounded on the
// uuid.New().String() idiom used for connection ids elsewhere in the pack
// (see DESIGN.md).
func NewRequestID() string {
	return uuid.New().String()
}

// NewProcessIdentifier returns a fresh "SP:<uuid>" server process
// identifier, per spec §3.
func NewProcessIdentifier() string {
	return "SP:" + uuid.New().String()
}

// EncodePointHex serialises a curve point as lowercase SEC1-compressed hex
// (66 hex chars for P-256), rejecting the point at infinity (spec §6: "The
// infinity point is not a valid wire value").
func EncodePointHex(pt hash2curve.Point) (string, error) {
	raw, err := hash2curve.EncodeCompressed(pt)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// DecodePointHex parses lowercase or uppercase SEC1-compressed hex back
// into a validated, on-curve point.
func DecodePointHex(s string) (hash2curve.Point, error) {
	const op = "transport.DecodePointHex"
	raw, err := hex.DecodeString(s)
	if err != nil {
		return hash2curve.Point{}, oprferr.Wrap(op, oprferr.InvalidHex, err)
	}
	return hash2curve.DecodeCompressed(raw)
}
