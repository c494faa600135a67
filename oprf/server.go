package oprf

import (
	"math/big"

	"github.com/oprfkit/p256oprf/oprferr"
	"github.com/oprfkit/p256oprf/transport"
)

// ServerConfig selects how a Server's private key is constructed. The zero
// value (ServerConfig{}) requests a random key, matching spec §4.9's
// "Random key mode".
type ServerConfig struct {
	// Seed and Info, when Seed is non-empty, request "Derived key mode":
	// skS = DeriveKeyPair(Seed, Info).
	Seed []byte
	Info []byte
}

// Server holds the OPRF secret key for one server instance. All fields
// are set once in NewServer and never mutated afterward, so a *Server is
// safe to call concurrently from multiple goroutines without locking
// (spec §5): Process is a pure function of (skS, request).
type Server struct {
	suite             Suite
	skS               *big.Int
	processIdentifier string
}

// NewServer constructs a Server per cfg: a uniformly random key when cfg
// is the zero value, or DeriveKeyPair(cfg.Seed, cfg.Info) when cfg.Seed is
// set. A fresh process identifier ("SP:" + uuid) is generated either way.
func NewServer(cfg ServerConfig) (*Server, error) {
	suite := SuiteP256

	var skS *big.Int
	var err error
	if len(cfg.Seed) > 0 {
		skS, err = suite.DeriveKeyPair(cfg.Seed, cfg.Info)
	} else {
		skS, err = randomScalar()
	}
	if err != nil {
		return nil, err
	}
	if skS.Sign() == 0 {
		return nil, oprferr.New("oprf.NewServer", oprferr.WeakScalar)
	}

	return &Server{
		suite:             suite,
		skS:               skS,
		processIdentifier: transport.NewProcessIdentifier(),
	}, nil
}

// ProcessIdentifier returns this server's opaque process identifier.
func (srv *Server) ProcessIdentifier() string { return srv.processIdentifier }

// Process parses req's blinded element, validates it is on-curve and not
// the identity, evaluates it under skS, and returns the result alongside
// this server's process identifier. The server holds no per-client state:
// all linkage between a client's input and this output is carried by skS
// and never exposed (spec §4.9).
func (srv *Server) Process(req transport.Request) (transport.Response, error) {
	const op = "oprf.Server.Process"

	q, err := transport.DecodePointHex(req.HexCodedEcPoint)
	if err != nil {
		return transport.Response{}, err
	}
	if q.Infinity {
		return transport.Response{}, oprferr.New(op, oprferr.OffCurvePoint)
	}

	r := Evaluate(srv.skS, q)

	hexOut, err := transport.EncodePointHex(r)
	if err != nil {
		return transport.Response{}, err
	}

	return transport.Response{
		HexCodedEcPoint:   hexOut,
		ProcessIdentifier: srv.processIdentifier,
	}, nil
}
