package hash2curve

import (
	"crypto/elliptic"
	"math/big"
	"sync"
)

// Params holds the process-constant P-256 curve table: prime p, order n,
// generator G, coefficients (A, B), and the RFC 9380 §8.2 Table 5 SWU
// constant Z. It is built once from crypto/elliptic's parameter table (a
// thin constant-table collaborator, per spec scope) and never mutated
// after initP256 runs, so it is safe to share as a read-only package
// singleton across goroutines without locking.
type Params struct {
	P  *big.Int // field prime
	N  *big.Int // group order
	Gx *big.Int
	Gy *big.Int
	A  *big.Int // P-256 coefficient A = p - 3
	B  *big.Int // P-256 coefficient B
	Z  *big.Int // SWU constant, Z = p - 10 mod p (RFC 9380 Table 5, P-256: Z = -10)
	H  *big.Int // cofactor, 1 for P-256
}

var (
	p256Once   sync.Once
	p256Params Params
)

func initP256() {
	c := elliptic.P256().Params()
	p := new(big.Int).Set(c.P)
	a := new(big.Int).Sub(p, big.NewInt(3))
	a.Mod(a, p)
	z := new(big.Int).Sub(p, big.NewInt(10))
	z.Mod(z, p)
	p256Params = Params{
		P:  p,
		N:  new(big.Int).Set(c.N),
		Gx: new(big.Int).Set(c.Gx),
		Gy: new(big.Int).Set(c.Gy),
		A:  a,
		B:  new(big.Int).Set(c.B),
		Z:  z,
		H:  big.NewInt(1),
	}
}

// P256Params returns the process-wide P-256 curve table, initializing it
// on first use.
func P256Params() Params {
	p256Once.Do(initP256)
	return p256Params
}
