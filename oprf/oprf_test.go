package oprf

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/oprfkit/p256oprf/transport"
)

// processRequest builds a transport.Request carrying hexPoint as its
// blinded element, for tests that want to drive Server.Process directly
// with a hand-built (possibly malformed) wire value.
func processRequest(hexPoint string) transport.Request {
	return transport.Request{HexCodedEcPoint: hexPoint, RequestID: transport.NewRequestID()}
}

// serverKey exposes a Server's private key to benchmarks in this package,
// which can reach unexported fields directly since they share package oprf.
func serverKey(srv *Server) *big.Int {
	return srv.skS
}

// mustNewServerBench is mustNewServer's *testing.B counterpart.
func mustNewServerBench(b *testing.B) *Server {
	b.Helper()
	srv, err := NewServer(ServerConfig{})
	if err != nil {
		b.Fatalf("NewServer: %v", err)
	}
	return srv
}

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in test vector: " + err.Error())
	}
	return b
}

func mustBigHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex big.Int in test vector: " + s)
	}
	return v
}

// TestDeriveKeyPairVector checks RFC 9497 §A.1.1's DeriveKeyPair vector.
func TestDeriveKeyPairVector(t *testing.T) {
	seed := bytes.Repeat([]byte{0xA3}, 32)
	info := []byte("test key")
	want := mustBigHex("159749d750713afe245d2d39ccfaae8381c53ce92d098a9375ee70739c7ac0bf")

	got, err := SuiteP256.DeriveKeyPair(seed, info)
	if err != nil {
		t.Fatalf("DeriveKeyPair: %v", err)
	}
	if got.Cmp(want) != 0 {
		t.Errorf("skS = %x, want %x", got, want)
	}
}

// TestFullOPRFVectors checks RFC 9497 §A.1.1 vectors 1-2 end to end: blind
// with a fixed factor, evaluate under the derived skS, finalize, and
// compare against the known output.
func TestFullOPRFVectors(t *testing.T) {
	seed := bytes.Repeat([]byte{0xA3}, 32)
	info := []byte("test key")
	skS, err := SuiteP256.DeriveKeyPair(seed, info)
	if err != nil {
		t.Fatalf("DeriveKeyPair: %v", err)
	}

	cases := []struct {
		name   string
		input  []byte
		blind  string
		output string
	}{
		{
			name:   "vector 1",
			input:  []byte{0x00},
			blind:  "3338fa65ec36e0290022b48eb562889d89dbfa691d1cde91517fa222ed7ad364",
			output: "a0b34de5fa4c5b6da07e72af73cc507cceeb48981b97b7285fc375345fe495dd",
		},
		{
			name:   "vector 2",
			input:  bytes.Repeat([]byte{0x5A}, 17),
			blind:  "e6d0f1d89ad552e859d708177054aca4695ef33b5d89d4d3f9a2c376e08a1450",
			output: "c748ca6dd327f0ce85f4ae3a8cd6d4d5390bbb804c9e12dcf94f853fece3dcce",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := mustBigHex(c.blind)

			blinded, err := SuiteP256.BlindWithFactor(c.input, r)
			if err != nil {
				t.Fatalf("BlindWithFactor: %v", err)
			}

			evaluated := Evaluate(skS, blinded)

			output, err := Finalize(c.input, r, evaluated)
			if err != nil {
				t.Fatalf("Finalize: %v", err)
			}

			want := mustDecodeHex(c.output)
			if !bytes.Equal(output[:], want) {
				t.Errorf("output = %x, want %x", output, want)
			}
		})
	}
}

func mustNewServer(t *testing.T, cfg ServerConfig) *Server {
	t.Helper()
	srv, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv
}

// TestClientServerDeterministicUnderBlind checks that the same input
// against the same server yields the same identity key regardless of the
// fresh blind drawn per call.
func TestClientServerDeterministicUnderBlind(t *testing.T) {
	srv := mustNewServer(t, ServerConfig{})
	client := NewClient()

	key1, err := client.ConvertToIdentityKey(srv, "same input")
	if err != nil {
		t.Fatalf("ConvertToIdentityKey: %v", err)
	}
	key2, err := client.ConvertToIdentityKey(srv, "same input")
	if err != nil {
		t.Fatalf("ConvertToIdentityKey: %v", err)
	}
	if key1 != key2 {
		t.Errorf("identity keys differ across calls with the same input: %q vs %q", key1, key2)
	}
}

// TestClientServerDifferentInputs checks that different inputs at a fixed
// server yield different identity keys.
func TestClientServerDifferentInputs(t *testing.T) {
	srv := mustNewServer(t, ServerConfig{})
	client := NewClient()

	keyA, err := client.ConvertToIdentityKey(srv, "input a")
	if err != nil {
		t.Fatalf("ConvertToIdentityKey: %v", err)
	}
	keyB, err := client.ConvertToIdentityKey(srv, "input b")
	if err != nil {
		t.Fatalf("ConvertToIdentityKey: %v", err)
	}
	if keyA == keyB {
		t.Error("different inputs produced the same identity key")
	}
}

// TestClientServerDifferentServers checks P3: the same input against two
// independently keyed servers yields different identity keys.
func TestClientServerDifferentServers(t *testing.T) {
	srv1 := mustNewServer(t, ServerConfig{})
	srv2 := mustNewServer(t, ServerConfig{})
	client := NewClient()

	key1, err := client.ConvertToIdentityKey(srv1, "shared input")
	if err != nil {
		t.Fatalf("ConvertToIdentityKey: %v", err)
	}
	key2, err := client.ConvertToIdentityKey(srv2, "shared input")
	if err != nil {
		t.Fatalf("ConvertToIdentityKey: %v", err)
	}
	if key1 == key2 {
		t.Error("two independently keyed servers produced the same identity key")
	}
}

// TestTwoClientsAgree checks spec §8 scenario 6: two independently
// constructed Client instances converting the same string against one
// Server return identical identity keys.
func TestTwoClientsAgree(t *testing.T) {
	srv := mustNewServer(t, ServerConfig{})
	clientA := NewClient()
	clientB := NewClient()

	keyA, err := clientA.ConvertToIdentityKey(srv, "shared secret")
	if err != nil {
		t.Fatalf("ConvertToIdentityKey: %v", err)
	}
	keyB, err := clientB.ConvertToIdentityKey(srv, "shared secret")
	if err != nil {
		t.Fatalf("ConvertToIdentityKey: %v", err)
	}
	if keyA != keyB {
		t.Errorf("two clients disagreed on the identity key: %q vs %q", keyA, keyB)
	}
}

// TestIdentityKeyFormat checks the wire format in spec §6.
func TestIdentityKeyFormat(t *testing.T) {
	srv := mustNewServer(t, ServerConfig{})
	client := NewClient()

	key, err := client.ConvertToIdentityKey(srv, "format check")
	if err != nil {
		t.Fatalf("ConvertToIdentityKey: %v", err)
	}

	parts := strings.SplitN(key, ":", 2)
	if len(parts) != 2 {
		t.Fatalf("identity key %q has no ':' separator", key)
	}
	if parts[0] != srv.ProcessIdentifier() {
		t.Errorf("identity key prefix = %q, want %q", parts[0], srv.ProcessIdentifier())
	}
	if len(parts[1]) != 64 {
		t.Errorf("identity key hex suffix has length %d, want 64", len(parts[1]))
	}
	if _, err := hex.DecodeString(parts[1]); err != nil {
		t.Errorf("identity key suffix is not valid hex: %v", err)
	}
}

// TestDerivedKeyServerIsDeterministic checks that Derived key mode produces
// the same skS (and therefore the same server behavior) for the same
// seed/info across independently constructed Server instances.
func TestDerivedKeyServerIsDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 32)
	info := []byte("app-v1")

	srv1 := mustNewServer(t, ServerConfig{Seed: seed, Info: info})
	srv2 := mustNewServer(t, ServerConfig{Seed: seed, Info: info})
	client := NewClient()

	key1, err := client.ConvertToIdentityKey(srv1, "deterministic check")
	if err != nil {
		t.Fatalf("ConvertToIdentityKey: %v", err)
	}
	key2, err := client.ConvertToIdentityKey(srv2, "deterministic check")
	if err != nil {
		t.Fatalf("ConvertToIdentityKey: %v", err)
	}

	suffix1 := strings.SplitN(key1, ":", 2)[1]
	suffix2 := strings.SplitN(key2, ":", 2)[1]
	if suffix1 != suffix2 {
		t.Error("two independently derived servers with the same seed/info disagreed on the OPRF output")
	}
}

// TestServerRejectsOffCurvePoint checks the OffCurvePoint error path
// (spec §7) for a malformed request.
func TestServerRejectsOffCurvePoint(t *testing.T) {
	srv := mustNewServer(t, ServerConfig{})
	// x = 1 is not the x-coordinate of any P-256 point (B - 2 is a non-square);
	// x = 0 would be, since B is a square mod p.
	bad := "02" + strings.Repeat("00", 31) + "01"
	_, err := srv.Process(processRequest(bad))
	if err == nil {
		t.Error("Process should reject an off-curve point")
	}
}

// Benchmarks, mirroring the teacher's Benchmark*-alongside-Test* layout.

func BenchmarkBlind(b *testing.B) {
	input := []byte("benchmark-input")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = SuiteP256.Blind(input)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	srv := mustNewServerBench(b)
	input := []byte("benchmark-input")
	_, blinded, _ := SuiteP256.Blind(input)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Evaluate(serverKey(srv), blinded)
	}
}

func BenchmarkConvertToIdentityKey(b *testing.B) {
	srv := mustNewServerBench(b)
	client := NewClient()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = client.ConvertToIdentityKey(srv, "benchmark-input")
	}
}
