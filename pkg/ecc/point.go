package ecc

import (
	"fmt"
)

// Point is a point on the short Weierstrass curve y^2 = x^3 + a*x + b over
// the field of its coordinates, or the point at infinity of that curve.
//
// Like FieldElement, Point is an immutable value type.
type Point struct {
	x, y     FieldElement
	a, b     FieldElement
	infinity bool
}

// NewPoint returns the point (x, y) on the curve with coefficients a and b.
// If x or y is nil the result is the point at infinity and no curve check is
// made. All present elements must share the same prime.
func NewPoint(x, y *FieldElement, a, b FieldElement) (Point, error) {
	if a.prime != b.prime {
		return Point{}, errorf("NewPoint", ErrIncompatibleField, "coefficients a (prime %d) and b (prime %d)", a.prime, b.prime)
	}
	if x == nil || y == nil {
		return Point{a: a, b: b, infinity: true}, nil
	}
	if x.prime != a.prime || y.prime != a.prime {
		return Point{}, errorf("NewPoint", ErrIncompatibleField, "coordinates (prime %d, %d) and curve (prime %d)", x.prime, y.prime, a.prime)
	}

	// y^2 == x^3 + a*x + b
	lhs := y.times(*y)
	rhs := x.times(*x).times(*x).plus(a.times(*x)).plus(b)
	if lhs != rhs {
		return Point{}, errorf("NewPoint", ErrNotOnCurve, "(%d, %d) on y^2 = x^3 + %dx + %d mod %d", x.num, y.num, a.num, b.num, a.prime)
	}
	return Point{x: *x, y: *y, a: a, b: b}, nil
}

// Infinity returns the identity of the curve with coefficients a and b.
func Infinity(a, b FieldElement) (Point, error) {
	return NewPoint(nil, nil, a, b)
}

func (p Point) IsInfinity() bool {
	return p.infinity
}

// X returns the x coordinate; ok is false for the point at infinity.
func (p Point) X() (x FieldElement, ok bool) {
	return p.x, !p.infinity
}

// Y returns the y coordinate; ok is false for the point at infinity.
func (p Point) Y() (y FieldElement, ok bool) {
	return p.y, !p.infinity
}

func (p Point) A() FieldElement {
	return p.a
}

func (p Point) B() FieldElement {
	return p.b
}

// Equal reports whether p and q are the same point on the same curve.
func (p Point) Equal(q Point) bool {
	return p == q
}

func (p Point) String() string {
	if p.infinity {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%d,%d)_%d_%d FieldElement(%d)", p.x.num, p.y.num, p.a.num, p.b.num, p.a.prime)
}

// Neg returns the additive inverse of p.
func (p Point) Neg() Point {
	if p.infinity {
		return p
	}
	return Point{x: p.x, y: p.y.Neg(), a: p.a, b: p.b}
}

// Add returns p + q under the elliptic curve group law.
func (p Point) Add(q Point) (Point, error) {
	if p.a != q.a || p.b != q.b {
		return Point{}, errorf("Point.Add", ErrDifferentCurve, "%s and %s", p.curve(), q.curve())
	}

	if p.infinity {
		return q, nil
	}
	if q.infinity {
		return p, nil
	}

	// Additive inverses: the line through them is vertical.
	if p.x == q.x && p.y != q.y {
		return p.identity(), nil
	}

	var (
		s   FieldElement
		err error
	)
	if p.x == q.x {
		// Tangent at a point with y = 0 is vertical.
		if p.y.IsZero() {
			return p.identity(), nil
		}
		// s = (3*x1^2 + a) / (2*y1)
		num := p.x.times(p.x).scaled(3).plus(p.a)
		s, err = num.Div(p.y.scaled(2))
	} else {
		// s = (y2 - y1) / (x2 - x1)
		s, err = q.y.minus(p.y).Div(q.x.minus(p.x))
	}
	if err != nil {
		return Point{}, wrap("Point.Add", err)
	}

	x3 := s.times(s).minus(p.x).minus(q.x)
	y3 := s.times(p.x.minus(x3)).minus(p.y)
	r, err := NewPoint(&x3, &y3, p.a, p.b)
	if err != nil {
		return Point{}, wrap("Point.Add", err)
	}
	return r, nil
}

// ScalarMul returns coefficient*p using binary double-and-add, starting from
// the least significant bit of coefficient.
func (p Point) ScalarMul(coefficient uint64) (Point, error) {
	result := p.identity()
	current := p
	for coef := coefficient; coef > 0; coef >>= 1 {
		var err error
		if coef&1 == 1 {
			if result, err = result.Add(current); err != nil {
				return Point{}, wrap("Point.ScalarMul", err)
			}
		}
		if coef > 1 {
			if current, err = current.Add(current); err != nil {
				return Point{}, wrap("Point.ScalarMul", err)
			}
		}
	}
	return result, nil
}

func (p Point) identity() Point {
	return Point{a: p.a, b: p.b, infinity: true}
}

func (p Point) curve() string {
	return fmt.Sprintf("y^2 = x^3 + %dx + %d mod %d", p.a.num, p.b.num, p.a.prime)
}
