package curves

import (
	"errors"
	"fmt"
)

// ErrLawViolated is wrapped by every failure reported by CheckGroupLaws.
var ErrLawViolated = errors.New("curves: group law violated")

// CheckGroupLaws checks the abelian group axioms on c for the points p and q
// (together with c's generator), and that p.ScalarMult(k) equals k-fold
// repeated addition of p for every k in [0, n].
//
// Errors from the backend are returned as-is; a law that evaluates but does
// not hold is reported as ErrLawViolated.
func CheckGroupLaws(c Curve, p, q Point, n uint64) error {
	o := c.Identity()
	g := c.Generator()

	// Identity: p + O = O + p = p
	po, err := p.Add(o)
	if err != nil {
		return err
	}
	op, err := o.Add(p)
	if err != nil {
		return err
	}
	if !po.Equal(p) || !op.Equal(p) {
		return violation(c, "identity")
	}

	// Inverse: p + (-p) = O
	inv, err := p.Add(p.Neg())
	if err != nil {
		return err
	}
	if !inv.IsIdentity() {
		return violation(c, "inverse")
	}

	// Commutativity: p + q = q + p
	pq, err := p.Add(q)
	if err != nil {
		return err
	}
	qp, err := q.Add(p)
	if err != nil {
		return err
	}
	if !pq.Equal(qp) {
		return violation(c, "commutativity")
	}

	// Associativity: (p + q) + g = p + (q + g)
	lhs, err := pq.Add(g)
	if err != nil {
		return err
	}
	qg, err := q.Add(g)
	if err != nil {
		return err
	}
	rhs, err := p.Add(qg)
	if err != nil {
		return err
	}
	if !lhs.Equal(rhs) {
		return violation(c, "associativity")
	}

	// Scalar multiplication agrees with repeated addition.
	sum := o
	for k := uint64(0); ; k++ {
		kp, err := p.ScalarMult(k)
		if err != nil {
			return err
		}
		if !kp.Equal(sum) {
			return violation(c, fmt.Sprintf("scalar multiplication by %d", k))
		}
		if k == n {
			return nil
		}
		if sum, err = sum.Add(p); err != nil {
			return err
		}
	}
}

func violation(c Curve, law string) error {
	return fmt.Errorf("%w: %s on %s", ErrLawViolated, law, c.Name())
}
