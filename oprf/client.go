package oprf

import (
	"github.com/oprfkit/p256oprf/transport"
)

// Server is the interface a Client talks to: the single external boundary
// spec §6 defines. Production code satisfies this with *oprf.Server; tests
// can satisfy it with a fake to exercise error paths without real crypto.
type Server interface {
	Process(req transport.Request) (transport.Response, error)
}

// Client is the oblivious side of the protocol. It carries no per-call
// state between invocations of ConvertToIdentityKey — every field here is
// immutable configuration, so a single Client is safe to share and call
// concurrently from multiple goroutines (spec §5).
type Client struct {
	suite Suite
}

// NewClient returns a Client for OPRF(P-256, SHA-256) mode 0.
func NewClient() *Client {
	return &Client{suite: SuiteP256}
}

// ConvertToIdentityKey runs the full client side of the protocol against
// server for sensitiveData and returns the resulting identity key. Two
// calls with the same sensitiveData against the same server always
// produce the same key, regardless of the fresh blind drawn internally
// (spec P1/I6); two different inputs, or the same input against a
// different server, produce different keys with overwhelming probability
// (spec P2/P3).
func (c *Client) ConvertToIdentityKey(server Server, sensitiveData string) (string, error) {
	input := []byte(sensitiveData)

	r, blinded, err := c.suite.Blind(input)
	if err != nil {
		return "", err
	}

	blindedHex, err := transport.EncodePointHex(blinded)
	if err != nil {
		return "", err
	}

	resp, err := server.Process(transport.Request{
		HexCodedEcPoint: blindedHex,
		RequestID:       transport.NewRequestID(),
	})
	if err != nil {
		return "", err
	}

	evaluated, err := transport.DecodePointHex(resp.HexCodedEcPoint)
	if err != nil {
		return "", err
	}

	output, err := Finalize(input, r, evaluated)
	if err != nil {
		return "", err
	}

	return IdentityKey(resp.ProcessIdentifier, output), nil
}
