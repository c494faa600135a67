package transport

import (
	"testing"

	"github.com/oprfkit/p256oprf/hash2curve"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	pt, err := hash2curve.HashToCurve([]byte("wire test"), []byte("dst"))
	if err != nil {
		t.Fatalf("HashToCurve: %v", err)
	}

	s, err := EncodePointHex(pt)
	if err != nil {
		t.Fatalf("EncodePointHex: %v", err)
	}
	if len(s) != 66 {
		t.Fatalf("encoded hex length = %d, want 66", len(s))
	}

	got, err := DecodePointHex(s)
	if err != nil {
		t.Fatalf("DecodePointHex: %v", err)
	}
	if !pt.Equal(got) {
		t.Error("round-tripped point does not match original")
	}
}

func TestEncodeRejectsInfinity(t *testing.T) {
	if _, err := EncodePointHex(hash2curve.Identity()); err == nil {
		t.Error("EncodePointHex should reject the point at infinity")
	}
}

func TestDecodeRejectsMalformedHex(t *testing.T) {
	if _, err := DecodePointHex("not-hex-at-all"); err == nil {
		t.Error("DecodePointHex should reject malformed hex")
	}
}

func TestDecodeRejectsOddLengthHex(t *testing.T) {
	if _, err := DecodePointHex("0"); err == nil {
		t.Error("DecodePointHex should reject odd-length hex")
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	if _, err := DecodePointHex("0203"); err == nil {
		t.Error("DecodePointHex should reject a point encoding shorter than 33 bytes")
	}
}

func TestRequestIDAndProcessIdentifierAreUnique(t *testing.T) {
	if NewRequestID() == NewRequestID() {
		t.Error("NewRequestID produced identical ids")
	}
	if NewProcessIdentifier() == NewProcessIdentifier() {
		t.Error("NewProcessIdentifier produced identical ids")
	}
	if got := NewProcessIdentifier(); len(got) < len("SP:") || got[:3] != "SP:" {
		t.Errorf("NewProcessIdentifier() = %q, want SP: prefix", got)
	}
}
