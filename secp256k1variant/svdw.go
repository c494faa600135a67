package secp256k1variant

import (
	"math/big"

	"github.com/oprfkit/p256oprf/field"
)

// MapToCurve implements map_to_curve_svdw (RFC 9380 §6.6.1) directly onto
// secp256k1 (A=0, B=7): unlike simplified SWU, SVDW needs no isogeny, so
// there is no intermediate "OnIsogenous" curve for this variant to thread
// through a separate isogeny step (see the package doc for why spec §4.5's
// "when absent, construct the point directly" branch applies here).
//
// Step names (tv1..tv4, x1/x2/x3, gx1/gx2, e1/e2/e3) follow RFC 9380
// §6.6.1 so this reads directly against the RFC.
func MapToCurve(u *big.Int) Point {
	p := P
	uE := field.New(u, p)
	BE := field.New(B, p)
	ZE := field.New(Z, p)
	one := field.FromUint64(1, p)
	three := field.FromUint64(3, p)
	four := field.FromUint64(4, p)
	two := field.FromUint64(2, p)

	// g(x) = x^3 + A*x + B; here A=0 so g(x) = x^3 + B.
	gOf := func(x *field.Elem) *field.Elem {
		return x.Square().Mul(x).Add(BE)
	}

	c1 := gOf(ZE)
	c2 := ZE.Neg().Mul(two.Inv0())

	// c3 = sqrt(-g(Z) * (3*Z^2 + 4*A)); A=0 so the bracket is 3*Z^2.
	bracket := three.Mul(ZE.Square())
	c3radicand := c1.Neg().Mul(bracket)
	c3 := c3radicand.Sqrt()

	// c4 = -4*g(Z) / (3*Z^2 + 4*A)
	c4 := four.Neg().Mul(c1).Mul(bracket.Inv0())

	tv1 := uE.Square().Mul(c1)
	tv2 := one.Add(tv1)
	tv1 = one.Sub(tv1)
	tv3 := tv1.Mul(tv2).Inv0()
	tv4 := uE.Mul(tv1).Mul(tv3).Mul(c3)

	x1 := c2.Sub(tv4)
	gx1 := gOf(x1)
	e1 := gx1.IsSquare()

	x2 := c2.Add(tv4)
	gx2 := gOf(x2)
	e2 := gx2.IsSquare() && !e1

	x3 := tv2.Square().Mul(tv3).Square().Mul(c4).Add(ZE)

	x := field.CMov(x3, x1, e1)
	x = field.CMov(x, x2, e2)

	gx := gOf(x)
	y := gx.Sqrt()

	e3 := uE.Sgn0() == y.Sgn0()
	y = field.CMov(y.Neg(), y, e3)

	return NewPoint(x.Int(), y.Int())
}
