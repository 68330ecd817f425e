package curves

import (
	"encoding/binary"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Secp256k1 is the secp256k1 group backed by dcrd's implementation. It
// serves as a reference for the group law over a 256-bit field.
type Secp256k1 struct{}

// NewSecp256k1 returns a new instance of the Secp256k1 curve wrapper
func NewSecp256k1() Curve {
	return &Secp256k1{}
}

func (c *Secp256k1) Name() string {
	return "secp256k1"
}

func (c *Secp256k1) Identity() Point {
	return &Secp256k1Point{}
}

func (c *Secp256k1) Generator() Point {
	var k secp256k1.ModNScalar
	k.SetInt(1)
	var g secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&k, &g)
	return &Secp256k1Point{p: g}
}

// Secp256k1Point implements Point
type Secp256k1Point struct {
	p secp256k1.JacobianPoint
}

func (p *Secp256k1Point) Add(q Point) (Point, error) {
	o, ok := q.(*Secp256k1Point)
	if !ok {
		return nil, ErrPointMismatch
	}
	var res secp256k1.JacobianPoint
	secp256k1.AddNonConst(&p.p, &o.p, &res)
	return &Secp256k1Point{p: res}, nil
}

func (p *Secp256k1Point) ScalarMult(k uint64) (Point, error) {
	if k == 0 || p.IsIdentity() {
		return &Secp256k1Point{}, nil
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], k)
	var s secp256k1.ModNScalar
	s.SetByteSlice(buf[:])

	var res secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&s, &p.p, &res)
	return &Secp256k1Point{p: res}, nil
}

func (p *Secp256k1Point) Neg() Point {
	if p.IsIdentity() {
		return &Secp256k1Point{}
	}
	res := p.affine()
	res.Y.Negate(1).Normalize()
	return &Secp256k1Point{p: res}
}

func (p *Secp256k1Point) Equal(q Point) bool {
	o, ok := q.(*Secp256k1Point)
	if !ok {
		return false
	}
	if p.IsIdentity() || o.IsIdentity() {
		return p.IsIdentity() == o.IsIdentity()
	}
	// Compare X and Y coordinates after normalizing to affine.
	a, b := p.affine(), o.affine()
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y)
}

func (p *Secp256k1Point) IsIdentity() bool {
	var x, y, z secp256k1.FieldVal
	x.Set(&p.p.X).Normalize()
	y.Set(&p.p.Y).Normalize()
	z.Set(&p.p.Z).Normalize()
	return (x.IsZero() && y.IsZero()) || z.IsZero()
}

func (p *Secp256k1Point) affine() secp256k1.JacobianPoint {
	var res secp256k1.JacobianPoint
	res.Set(&p.p)
	res.ToAffine()
	return res
}
