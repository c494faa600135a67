package field

import (
	"errors"
	"math/big"
	"testing"

	"github.com/oprfkit/p256oprf/oprferr"
)

func TestI2OSPOS2IPRoundTrip(t *testing.T) {
	cases := []struct {
		value  uint64
		length int
	}{
		{0, 1},
		{255, 1},
		{256, 2},
		{1<<16 - 1, 2},
		{1 << 16, 3},
	}
	for _, c := range cases {
		enc, err := I2OSPUint(c.value, c.length)
		if err != nil {
			t.Fatalf("I2OSP(%d, %d): %v", c.value, c.length, err)
		}
		if len(enc) != c.length {
			t.Fatalf("I2OSP(%d, %d): got length %d", c.value, c.length, len(enc))
		}
		got := OS2IP(enc)
		if got.Uint64() != c.value {
			t.Errorf("OS2IP(I2OSP(%d)) = %d, want %d", c.value, got.Uint64(), c.value)
		}
	}
}

func TestI2OSPRangeErrors(t *testing.T) {
	if _, err := I2OSP(big.NewInt(-1), 1); err == nil {
		t.Error("I2OSP(-1, 1) should fail")
	} else if !errors.Is(err, oprferr.Sentinel(oprferr.InvalidLength)) {
		t.Errorf("unexpected error kind: %v", err)
	}

	if _, err := I2OSPUint(256, 1); err == nil {
		t.Error("I2OSP(256, 1) should fail, value exceeds 256^1")
	}
}

func TestStrxorLengthMismatch(t *testing.T) {
	if _, err := Strxor([]byte{1, 2, 3}, []byte{1, 2}); err == nil {
		t.Error("Strxor with mismatched lengths should fail")
	}
}

func TestStrxor(t *testing.T) {
	a := []byte{0xff, 0x00, 0xaa}
	b := []byte{0x0f, 0xf0, 0x55}
	out, err := Strxor(a, b)
	if err != nil {
		t.Fatalf("Strxor: %v", err)
	}
	want := []byte{0xf0, 0xf0, 0xff}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("Strxor byte %d = %x, want %x", i, out[i], want[i])
		}
	}
}

func TestCMov(t *testing.T) {
	m := big.NewInt(97)
	a := FromUint64(5, m)
	b := FromUint64(9, m)
	if got := CMov(a, b, false); !got.Equal(a) {
		t.Errorf("CMov(a,b,false) = %v, want a", got.Int())
	}
	if got := CMov(a, b, true); !got.Equal(b) {
		t.Errorf("CMov(a,b,true) = %v, want b", got.Int())
	}
}

func TestInv0Zero(t *testing.T) {
	m := big.NewInt(97)
	z := FromUint64(0, m)
	if inv := z.Inv0(); !inv.IsZero() {
		t.Errorf("Inv0(0) = %v, want 0", inv.Int())
	}
}

func TestIsSquare(t *testing.T) {
	// mod 23, squares are 1,2,3,4,6,8,9,12,13,16,18 (quadratic residues).
	m := big.NewInt(23)
	if !FromUint64(0, m).IsSquare() {
		t.Error("0 should be considered square")
	}
	if !FromUint64(4, m).IsSquare() {
		t.Error("4 = 2^2 should be square mod 23")
	}
	if FromUint64(5, m).IsSquare() {
		t.Error("5 should not be square mod 23")
	}
	for _, qr := range []uint64{1, 2, 3, 4, 6, 8, 9, 12, 13, 16, 18} {
		if !FromUint64(qr, m).IsSquare() {
			t.Errorf("%d should be square mod 23", qr)
		}
	}
}
