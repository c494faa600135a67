package hash2curve

import (
	"math/big"

	"github.com/oprfkit/p256oprf/oprferr"
)

// Point is a P-256 curve point in affine coordinates, or the identity
// (point at infinity) when Infinity is true. X and Y are nil on the
// identity. A Point is always kept normalised: X, Y (when present) are
// reduced mod p and the Infinity flag is authoritative — callers never
// need to special-case "large" unreduced coordinates.
type Point struct {
	X, Y     *big.Int
	Infinity bool
}

// Identity returns the P-256 point at infinity.
func Identity() Point { return Point{Infinity: true} }

// NewPoint builds a normalised affine point from coordinates already known
// to lie on the curve (callers that compute x, y via the SWU map use this
// directly; callers decoding untrusted wire data should use DecodeCompressed,
// which validates the curve equation first).
func NewPoint(x, y *big.Int) Point {
	p := P256Params().P
	return Point{X: new(big.Int).Mod(x, p), Y: new(big.Int).Mod(y, p)}
}

// IsOnCurve reports whether the point satisfies y^2 = x^3 + Ax + B (mod p).
// The identity is considered on-curve.
func (pt Point) IsOnCurve() bool {
	if pt.Infinity {
		return true
	}
	pr := P256Params()
	p := pr.P

	y2 := new(big.Int).Mul(pt.Y, pt.Y)
	y2.Mod(y2, p)

	x3 := new(big.Int).Mul(pt.X, pt.X)
	x3.Mul(x3, pt.X)
	ax := new(big.Int).Mul(pr.A, pt.X)
	rhs := new(big.Int).Add(x3, ax)
	rhs.Add(rhs, pr.B)
	rhs.Mod(rhs, p)

	return y2.Cmp(rhs) == 0
}

// Equal reports whether two normalised points are the same curve point.
func (pt Point) Equal(o Point) bool {
	if pt.Infinity || o.Infinity {
		return pt.Infinity == o.Infinity
	}
	return pt.X.Cmp(o.X) == 0 && pt.Y.Cmp(o.Y) == 0
}

// Add returns pt + o using the standard affine Weierstrass addition law,
// including the doubling and point-at-infinity special cases.
func Add(pt, o Point) Point {
	if pt.Infinity {
		return o
	}
	if o.Infinity {
		return pt
	}

	p := P256Params().P

	if pt.X.Cmp(o.X) == 0 {
		ySum := new(big.Int).Add(pt.Y, o.Y)
		ySum.Mod(ySum, p)
		if ySum.Sign() == 0 {
			return Identity()
		}
		return double(pt)
	}

	// lambda = (y2 - y1) / (x2 - x1)
	num := new(big.Int).Sub(o.Y, pt.Y)
	den := new(big.Int).Sub(o.X, pt.X)
	den.Mod(den, p)
	denInv := new(big.Int).ModInverse(den, p)
	lambda := new(big.Int).Mul(num, denInv)
	lambda.Mod(lambda, p)

	return pointFromLambda(pt, o.X, lambda, p)
}

func double(pt Point) Point {
	p := P256Params().P
	a := P256Params().A

	if pt.Y.Sign() == 0 {
		return Identity()
	}

	// lambda = (3x^2 + A) / (2y)
	num := new(big.Int).Mul(pt.X, pt.X)
	num.Mul(num, big.NewInt(3))
	num.Add(num, a)
	num.Mod(num, p)

	den := new(big.Int).Lsh(pt.Y, 1)
	den.Mod(den, p)
	denInv := new(big.Int).ModInverse(den, p)

	lambda := new(big.Int).Mul(num, denInv)
	lambda.Mod(lambda, p)

	return pointFromLambda(pt, pt.X, lambda, p)
}

func pointFromLambda(pt Point, otherX, lambda, p *big.Int) Point {
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, pt.X)
	x3.Sub(x3, otherX)
	x3.Mod(x3, p)

	y3 := new(big.Int).Sub(pt.X, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, pt.Y)
	y3.Mod(y3, p)

	return NewPoint(x3, y3)
}

// ScalarMult returns k*pt via constant-time-shaped double-and-add: it
// always performs exactly 256 doublings and conditionally adds, rather
// than branching on the bits of the scalar through Go's control flow, so
// that secret scalars (skS, r, r^-1) do not skew the instruction count by
// their Hamming weight. k is reduced mod the group order first.
func ScalarMult(k *big.Int, pt Point) Point {
	n := P256Params().N
	kk := new(big.Int).Mod(k, n)

	acc := Identity()
	cur := pt
	for i := n.BitLen() - 1; i >= 0; i-- {
		acc = Add(acc, acc)
		doubled := Add(acc, cur)
		bit := kk.Bit(i)
		acc = cmovPoint(acc, doubled, bit == 1)
	}
	// Leading zero bits (and k == 0) never select the sum, so acc stays identity.
	_ = cur
	return acc
}

// cmovPoint selects b when cond is true and a otherwise. The coordinate
// arithmetic is branchless (mirroring field.CMov); the Infinity flag itself
// is a single bit and is selected the same way, kept as a plain Go bool op
// since it carries no secret magnitude to leak through timing.
func cmovPoint(a, b Point, cond bool) Point {
	p := P256Params().P
	c := int64(0)
	if cond {
		c = 1
	}
	cc := big.NewInt(c)
	notCC := new(big.Int).Sub(big.NewInt(1), cc)

	ax, ay := coordsOrZero(a)
	bx, by := coordsOrZero(b)

	x := new(big.Int).Add(new(big.Int).Mul(cc, bx), new(big.Int).Mul(notCC, ax))
	x.Mod(x, p)
	y := new(big.Int).Add(new(big.Int).Mul(cc, by), new(big.Int).Mul(notCC, ay))
	y.Mod(y, p)

	inf := a.Infinity
	if cond {
		inf = b.Infinity
	}
	if inf {
		return Identity()
	}
	return Point{X: x, Y: y}
}

func coordsOrZero(pt Point) (*big.Int, *big.Int) {
	if pt.Infinity {
		return big.NewInt(0), big.NewInt(0)
	}
	return pt.X, pt.Y
}

// EncodeCompressed serialises a point as the 33-byte SEC1 compressed
// encoding: a leading 0x02/0x03 parity byte followed by the 32-byte
// big-endian X coordinate. The identity point has no valid wire encoding.
func EncodeCompressed(pt Point) ([]byte, error) {
	const op = "hash2curve.EncodeCompressed"
	if pt.Infinity {
		return nil, oprferr.New(op, oprferr.OffCurvePoint)
	}
	out := make([]byte, 33)
	if pt.Y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	pt.X.FillBytes(out[1:])
	return out, nil
}

// DecodeCompressed parses a 33-byte SEC1 compressed point, recovering Y via
// the curve equation and the parity byte, and rejects anything off-curve
// or equal to the identity.
func DecodeCompressed(data []byte) (Point, error) {
	const op = "hash2curve.DecodeCompressed"
	if len(data) != 33 || (data[0] != 0x02 && data[0] != 0x03) {
		return Point{}, oprferr.New(op, oprferr.OffCurvePoint)
	}
	pr := P256Params()
	p := pr.P

	x := new(big.Int).SetBytes(data[1:])
	if x.Cmp(p) >= 0 {
		return Point{}, oprferr.New(op, oprferr.OffCurvePoint)
	}

	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)
	ax := new(big.Int).Mul(pr.A, x)
	rhs := new(big.Int).Add(x3, ax)
	rhs.Add(rhs, pr.B)
	rhs.Mod(rhs, p)

	yElem := elemSqrt(rhs, p)
	if yElem == nil {
		return Point{}, oprferr.New(op, oprferr.OffCurvePoint)
	}

	wantOdd := data[0] == 0x03
	if (yElem.Bit(0) == 1) != wantOdd {
		yElem = new(big.Int).Sub(p, yElem)
	}

	pt := NewPoint(x, yElem)
	if !pt.IsOnCurve() {
		return Point{}, oprferr.New(op, oprferr.OffCurvePoint)
	}
	return pt, nil
}

// elemSqrt returns a square root of rhs mod p (p ≡ 3 mod 4), verifying the
// result actually squares back to rhs, or nil if rhs is not a square.
func elemSqrt(rhs, p *big.Int) *big.Int {
	exp := new(big.Int).Add(p, big.NewInt(1))
	exp.Rsh(exp, 2)
	y := new(big.Int).Exp(rhs, exp, p)
	check := new(big.Int).Mul(y, y)
	check.Mod(check, p)
	if check.Cmp(rhs) != 0 {
		return nil
	}
	return y
}
