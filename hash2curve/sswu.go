package hash2curve

import (
	"math/big"

	"github.com/oprfkit/p256oprf/field"
)

// MapToCurveP256 implements the simplified SWU mapping of RFC 9380 §6.6.2
// for P-256, where A ≠ 0 so no 3-isogeny step is needed (contrast
// secp256k1variant, where A = 0 rules out simplified SWU and the
// Shallue-van de Woestijne map is used instead). u is a single field
// element; the returned point always lies on the P-256 curve.
//
// Step names (tv1..tv6) follow RFC 9380 §6.6.2 so this reads directly
// against the spec.
func MapToCurveP256(u *big.Int) Point {
	pr := P256Params()
	p, A, B, Z := pr.P, pr.A, pr.B, pr.Z

	uE := field.New(u, p)
	AE := field.New(A, p)
	BE := field.New(B, p)
	ZE := field.New(Z, p)
	one := field.FromUint64(1, p)

	tv1 := ZE.Mul(uE.Square())
	tv2 := tv1.Square().Add(tv1)
	tv3 := BE.Mul(tv2.Add(one))

	tv2NotZero := !tv2.IsZero()
	negTv2 := tv2.Neg()
	tv4 := AE.Mul(field.CMov(ZE, negTv2, tv2NotZero))

	tv2b := tv3.Square()
	tv6 := tv4.Square()
	tv5 := AE.Mul(tv6)
	tv2b = tv2b.Add(tv5)
	tv2b = tv2b.Mul(tv3)
	tv6 = tv6.Mul(tv4)
	tv5 = BE.Mul(tv6)
	tv2b = tv2b.Add(tv5)

	x := tv1.Mul(tv3)

	isGx1Square, y1 := sqrtRatio(tv2b, tv6, p)
	y := tv1.Mul(uE).Mul(y1)

	x = field.CMov(x, tv3, isGx1Square)
	y = field.CMov(y, y1, isGx1Square)

	yNeg := y.Neg()
	y = field.CMov(yNeg, y, uE.Sgn0() == y.Sgn0())

	xOut := x.Mul(tv4.Inv0())
	return NewPoint(xOut.Int(), y.Int())
}

// sqrtRatio implements RFC 9380 §F.2.1's sqrt_ratio for p ≡ 3 (mod 4):
// given u, v it returns (true, sqrt(u/v)) when u/v is a square in Fp, and
// (false, sqrt(Z*u/v)) otherwise, where Z is the curve's SWU constant.
func sqrtRatio(u, v *field.Elem, p *big.Int) (bool, *field.Elem) {
	Z := field.New(P256Params().Z, p)

	c1 := new(big.Int).Sub(p, big.NewInt(3))
	c1.Rsh(c1, 2) // (p-3)/4
	c2exp := new(big.Int).Add(p, big.NewInt(1))
	c2exp.Rsh(c2exp, 2) // (p+1)/4
	negZ := Z.Neg()
	c2 := negZ.Exp(c2exp)

	tv1 := v.Square()
	tv2 := u.Mul(v)
	tv1 = tv1.Mul(tv2)

	y1 := tv1.Exp(c1).Mul(tv2)
	y2 := y1.Mul(c2)

	check := y1.Square().Mul(v)
	isSquare := check.Equal(u)

	y := field.CMov(y2, y1, isSquare)
	return isSquare, y
}
