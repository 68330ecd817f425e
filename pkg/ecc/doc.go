// Package ecc implements arithmetic in prime fields of at most 64 bits and
// the group law of short Weierstrass elliptic curves defined over them.
//
// Field elements and points are immutable values. Operations that can fail
// return an error wrapping one of the package's Err* values:
//
//	a, _ := ecc.NewFieldElement(0, 223)
//	b, _ := ecc.NewFieldElement(7, 223)
//	x, _ := ecc.NewFieldElement(47, 223)
//	y, _ := ecc.NewFieldElement(71, 223)
//	p, err := ecc.NewPoint(&x, &y, a, b)
//	if err != nil {
//		return err
//	}
//	q, err := p.ScalarMul(2) // (36, 111)
//
// Intermediate products are computed in 128 bits and reduced immediately,
// so any modulus below 2^64 is supported. Nothing here is constant-time;
// the package is meant for learning and testing, not for protecting secrets.
package ecc
