package field

import "math/big"

// Elem is an integer reduced modulo a field or scalar modulus. The zero
// value is not meaningful on its own; always construct through New/FromUint64.
type Elem struct {
	v *big.Int
	m *big.Int
}

// New reduces v modulo m and returns the resulting element.
func New(v, m *big.Int) *Elem {
	r := new(big.Int).Mod(v, m)
	return &Elem{v: r, m: m}
}

// FromUint64 builds an element from a small non-negative constant.
func FromUint64(v uint64, m *big.Int) *Elem {
	return New(new(big.Int).SetUint64(v), m)
}

// Int returns the element's canonical representative in [0, m).
func (e *Elem) Int() *big.Int { return new(big.Int).Set(e.v) }

// Modulus returns the modulus this element is reduced under.
func (e *Elem) Modulus() *big.Int { return e.m }

// Bytes returns the element's big-endian encoding, left-padded to size bytes.
func (e *Elem) Bytes(size int) []byte {
	out := make([]byte, size)
	e.v.FillBytes(out)
	return out
}

// IsZero reports whether the element is congruent to zero.
func (e *Elem) IsZero() bool { return e.v.Sign() == 0 }

// Equal reports whether two elements under the same modulus are congruent.
func (e *Elem) Equal(o *Elem) bool { return e.v.Cmp(o.v) == 0 }

// Add returns e + o mod m.
func (e *Elem) Add(o *Elem) *Elem { return New(new(big.Int).Add(e.v, o.v), e.m) }

// Sub returns e - o mod m.
func (e *Elem) Sub(o *Elem) *Elem { return New(new(big.Int).Sub(e.v, o.v), e.m) }

// Mul returns e * o mod m.
func (e *Elem) Mul(o *Elem) *Elem { return New(new(big.Int).Mul(e.v, o.v), e.m) }

// Square returns e^2 mod m.
func (e *Elem) Square() *Elem { return e.Mul(e) }

// Neg returns -e mod m.
func (e *Elem) Neg() *Elem { return New(new(big.Int).Neg(e.v), e.m) }

// Exp returns e^k mod m.
func (e *Elem) Exp(k *big.Int) *Elem {
	return New(new(big.Int).Exp(e.v, k, e.m), e.m)
}

// Inv0 returns the multiplicative inverse of e mod m, defined to be 0 when
// e is 0 (the convention RFC 9380's sqrt_ratio and SWU steps rely on).
// m must be prime.
func (e *Elem) Inv0() *Elem {
	if e.IsZero() {
		return New(big.NewInt(0), e.m)
	}
	pMinus2 := new(big.Int).Sub(e.m, big.NewInt(2))
	return e.Exp(pMinus2)
}

// Sgn0 implements RFC 9380's sgn0(x) = x mod 2, returning 0 or 1.
func (e *Elem) Sgn0() int {
	return int(new(big.Int).And(e.v, big.NewInt(1)).Int64())
}

// CMov performs a branchless conditional select: it returns b if cond is
// true and a otherwise, computed via arithmetic rather than a Go branch so
// that the same instruction sequence executes regardless of which operand
// is picked. cond is first turned into a 0/1 multiplier.
func CMov(a, b *Elem, cond bool) *Elem {
	c := int64(0)
	if cond {
		c = 1
	}
	cc := big.NewInt(c)
	notCC := new(big.Int).Sub(big.NewInt(1), cc)
	m := a.m
	term1 := new(big.Int).Mul(cc, b.v)
	term2 := new(big.Int).Mul(notCC, a.v)
	return New(new(big.Int).Add(term1, term2), m)
}

// Sqrt returns a square root of e modulo m for m ≡ 3 (mod 4), i.e. e^((m+1)/4).
// It does not verify the result squares back to e; callers that need that
// check (e.g. sqrt_ratio) must perform it themselves.
func (e *Elem) Sqrt() *Elem {
	exp := new(big.Int).Add(e.m, big.NewInt(1))
	exp.Rsh(exp, 2)
	return e.Exp(exp)
}

// IsSquare reports whether e is a quadratic residue mod m (m prime), via
// Euler's criterion e^((m-1)/2) == 1. Zero is considered square, matching
// RFC 9380's is_square convention.
func (e *Elem) IsSquare() bool {
	if e.IsZero() {
		return true
	}
	exp := new(big.Int).Sub(e.m, big.NewInt(1))
	exp.Rsh(exp, 1)
	r := e.Exp(exp)
	return r.v.Cmp(big.NewInt(1)) == 0
}
