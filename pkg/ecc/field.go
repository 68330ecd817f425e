package ecc

import (
	"fmt"
	"math/bits"
)

// FieldElement is a residue modulo prime. The zero value is not a valid
// element; use NewFieldElement.
//
// FieldElement is an immutable value type: every operation returns a new
// element and == compares both the residue and the modulus.
type FieldElement struct {
	num   uint64
	prime uint64
}

// NewFieldElement returns num as an element of the field of integers modulo
// prime. Primality of prime is not verified.
func NewFieldElement(num, prime uint64) (FieldElement, error) {
	if prime < 2 {
		return FieldElement{}, errorf("NewFieldElement", ErrInvalidModulus, "got %d", prime)
	}
	if num >= prime {
		return FieldElement{}, errorf("NewFieldElement", ErrInvalidRange, "num %d not in field range 0 to %d", num, prime-1)
	}
	return FieldElement{num: num, prime: prime}, nil
}

// Num returns the residue.
func (e FieldElement) Num() uint64 {
	return e.num
}

// Prime returns the modulus.
func (e FieldElement) Prime() uint64 {
	return e.prime
}

func (e FieldElement) IsZero() bool {
	return e.num == 0
}

func (e FieldElement) Equal(other FieldElement) bool {
	return e == other
}

func (e FieldElement) String() string {
	return fmt.Sprintf("FieldElement_%d(%d)", e.prime, e.num)
}

// Add returns e + other.
func (e FieldElement) Add(other FieldElement) (FieldElement, error) {
	if e.prime != other.prime {
		return FieldElement{}, e.mismatch("FieldElement.Add", other)
	}
	return e.plus(other), nil
}

// Sub returns e - other.
func (e FieldElement) Sub(other FieldElement) (FieldElement, error) {
	if e.prime != other.prime {
		return FieldElement{}, e.mismatch("FieldElement.Sub", other)
	}
	return e.minus(other), nil
}

// Mul returns e * other.
func (e FieldElement) Mul(other FieldElement) (FieldElement, error) {
	if e.prime != other.prime {
		return FieldElement{}, e.mismatch("FieldElement.Mul", other)
	}
	return e.times(other), nil
}

// Pow returns e^exponent. The exponent is reduced modulo prime-1 first
// (Fermat's little theorem), which is exact for nonzero e when prime is prime.
// Zero raised to a positive exponent is zero and 0^0 is one.
func (e FieldElement) Pow(exponent uint64) FieldElement {
	if e.num == 0 {
		if exponent == 0 {
			return FieldElement{num: 1 % e.prime, prime: e.prime}
		}
		return e
	}
	return FieldElement{num: powMod(e.num, exponent%(e.prime-1), e.prime), prime: e.prime}
}

// Div returns e / other, computed as e * other^(prime-2).
func (e FieldElement) Div(other FieldElement) (FieldElement, error) {
	if e.prime != other.prime {
		return FieldElement{}, e.mismatch("FieldElement.Div", other)
	}
	if other.num == 0 {
		return FieldElement{}, errorf("FieldElement.Div", ErrDivisionByZero, "%s / %s", e, other)
	}
	return e.times(other.Pow(e.prime - 2)), nil
}

// Inverse returns the multiplicative inverse of e.
func (e FieldElement) Inverse() (FieldElement, error) {
	if e.num == 0 {
		return FieldElement{}, errorf("FieldElement.Inverse", ErrDivisionByZero, "%s has no inverse", e)
	}
	return e.Pow(e.prime - 2), nil
}

// Neg returns the additive inverse of e.
func (e FieldElement) Neg() FieldElement {
	if e.num == 0 {
		return e
	}
	return FieldElement{num: e.prime - e.num, prime: e.prime}
}

func (e FieldElement) mismatch(op string, other FieldElement) error {
	return errorf(op, ErrIncompatibleField, "prime %d != %d", e.prime, other.prime)
}

// plus, minus and times assume both operands share a modulus.

func (e FieldElement) plus(other FieldElement) FieldElement {
	return FieldElement{num: addMod(e.num, other.num, e.prime), prime: e.prime}
}

func (e FieldElement) minus(other FieldElement) FieldElement {
	return FieldElement{num: subMod(e.num, other.num, e.prime), prime: e.prime}
}

func (e FieldElement) times(other FieldElement) FieldElement {
	return FieldElement{num: mulMod(e.num, other.num, e.prime), prime: e.prime}
}

// scaled returns k*e for a small integer k, reduced into the field first.
func (e FieldElement) scaled(k uint64) FieldElement {
	return FieldElement{num: mulMod(k%e.prime, e.num, e.prime), prime: e.prime}
}

// Modular helpers. Inputs a, b are already reduced (< m), m >= 2.

func addMod(a, b, m uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= m {
		// With a carry the true sum is s + 2^64 and s - m wraps to the
		// right value.
		s -= m
	}
	return s
}

func subMod(a, b, m uint64) uint64 {
	if a >= b {
		return a - b
	}
	// a + m - b, ordered so nothing exceeds m.
	return m - (b - a)
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

func powMod(base, exp, m uint64) uint64 {
	result := 1 % m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}
	return result
}
