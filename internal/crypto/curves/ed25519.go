package curves

import (
	"encoding/binary"

	"filippo.io/edwards25519"
)

type Ed25519Curve struct{}

// NewEd25519 returns the prime-order edwards25519 group.
func NewEd25519() Curve {
	return &Ed25519Curve{}
}

func (c *Ed25519Curve) Name() string {
	return "Ed25519"
}

func (c *Ed25519Curve) Identity() Point {
	return &Ed25519Point{p: edwards25519.NewIdentityPoint()}
}

func (c *Ed25519Curve) Generator() Point {
	return &Ed25519Point{p: edwards25519.NewGeneratorPoint()}
}

// Ed25519Point implements Point
type Ed25519Point struct {
	p *edwards25519.Point
}

func (p *Ed25519Point) Add(q Point) (Point, error) {
	o, ok := q.(*Ed25519Point)
	if !ok {
		return nil, ErrPointMismatch
	}
	res := edwards25519.NewIdentityPoint().Add(p.p, o.p)
	return &Ed25519Point{p: res}, nil
}

func (p *Ed25519Point) ScalarMult(k uint64) (Point, error) {
	// edwards25519 scalars are 32 bytes little-endian; any uint64 is
	// already below the group order, so the encoding is canonical.
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[:8], k)
	s, err := edwards25519.NewScalar().SetCanonicalBytes(buf[:])
	if err != nil {
		return nil, err
	}
	res := edwards25519.NewIdentityPoint().ScalarMult(s, p.p)
	return &Ed25519Point{p: res}, nil
}

func (p *Ed25519Point) Neg() Point {
	return &Ed25519Point{p: edwards25519.NewIdentityPoint().Negate(p.p)}
}

func (p *Ed25519Point) Equal(q Point) bool {
	o, ok := q.(*Ed25519Point)
	if !ok {
		return false
	}
	return p.p.Equal(o.p) == 1
}

func (p *Ed25519Point) IsIdentity() bool {
	return p.p.Equal(edwards25519.NewIdentityPoint()) == 1
}
