package curves

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// ErrIdentityGenerator is returned when the point at infinity is offered as a
// generator.
var ErrIdentityGenerator = errors.New("curves: generator must not be the point at infinity")

// Weierstrass is a caller-defined short Weierstrass curve over a 64-bit prime
// field, with the group law of package ecc.
type Weierstrass struct {
	g ecc.Point
}

// NewWeierstrass returns the group generated by g on g's curve.
func NewWeierstrass(g ecc.Point) (*Weierstrass, error) {
	if g.IsInfinity() {
		return nil, ErrIdentityGenerator
	}
	return &Weierstrass{g: g}, nil
}

func (c *Weierstrass) Name() string {
	a, b := c.g.A(), c.g.B()
	return fmt.Sprintf("y^2 = x^3 + %dx + %d mod %d", a.Num(), b.Num(), a.Prime())
}

func (c *Weierstrass) Identity() Point {
	// The generator's coefficients share a prime, so this cannot fail.
	inf, _ := ecc.Infinity(c.g.A(), c.g.B())
	return &WeierstrassPoint{p: inf}
}

func (c *Weierstrass) Generator() Point {
	return &WeierstrassPoint{p: c.g}
}

// WeierstrassPoint implements Point over an ecc.Point.
type WeierstrassPoint struct {
	p ecc.Point
}

// WrapPoint adapts p to the Point interface.
func WrapPoint(p ecc.Point) *WeierstrassPoint {
	return &WeierstrassPoint{p: p}
}

// Unwrap returns the underlying ecc.Point.
func (p *WeierstrassPoint) Unwrap() ecc.Point {
	return p.p
}

func (p *WeierstrassPoint) Add(q Point) (Point, error) {
	o, ok := q.(*WeierstrassPoint)
	if !ok {
		return nil, ErrPointMismatch
	}
	res, err := p.p.Add(o.p)
	if err != nil {
		return nil, err
	}
	return &WeierstrassPoint{p: res}, nil
}

func (p *WeierstrassPoint) ScalarMult(k uint64) (Point, error) {
	res, err := p.p.ScalarMul(k)
	if err != nil {
		return nil, err
	}
	return &WeierstrassPoint{p: res}, nil
}

func (p *WeierstrassPoint) Neg() Point {
	return &WeierstrassPoint{p: p.p.Neg()}
}

func (p *WeierstrassPoint) Equal(q Point) bool {
	o, ok := q.(*WeierstrassPoint)
	return ok && p.p.Equal(o.p)
}

func (p *WeierstrassPoint) IsIdentity() bool {
	return p.p.IsInfinity()
}

func (p *WeierstrassPoint) String() string {
	return p.p.String()
}
