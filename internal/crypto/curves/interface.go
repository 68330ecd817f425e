package curves

import (
	"errors"
)

// ErrPointMismatch is returned when points from different backends are combined.
var ErrPointMismatch = errors.New("curves: point types do not match")

// Point represents an element of an elliptic curve group.
// It abstracts away the underlying coordinate system (Affine, Jacobian, Edwards).
type Point interface {
	// Add adds this point to another point of the same curve.
	Add(q Point) (Point, error)

	// ScalarMult multiplies this point by k.
	ScalarMult(k uint64) (Point, error)

	// Neg returns the additive inverse of this point.
	Neg() Point

	// Equal reports whether both points are the same group element.
	Equal(q Point) bool

	// IsIdentity reports whether this is the neutral element.
	IsIdentity() bool
}

// Curve is a group of curve points with a distinguished generator.
type Curve interface {
	// Name returns the name of the curve.
	Name() string

	// Identity returns the neutral element.
	Identity() Point

	// Generator returns the base point G.
	Generator() Point
}
