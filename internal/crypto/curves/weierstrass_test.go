package curves

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

func point223(t *testing.T, x, y uint64) ecc.Point {
	t.Helper()
	a, err := ecc.NewFieldElement(0, 223)
	require.NoError(t, err)
	b, err := ecc.NewFieldElement(7, 223)
	require.NoError(t, err)
	fx, err := ecc.NewFieldElement(x, 223)
	require.NoError(t, err)
	fy, err := ecc.NewFieldElement(y, 223)
	require.NoError(t, err)
	p, err := ecc.NewPoint(&fx, &fy, a, b)
	require.NoError(t, err)
	return p
}

func TestWeierstrass(t *testing.T) {
	curve, err := NewWeierstrass(point223(t, 47, 71))
	require.NoError(t, err)
	assert.Equal(t, "y^2 = x^3 + 0x + 7 mod 223", curve.Name())

	g := curve.Generator()
	p2, err := g.ScalarMult(2)
	require.NoError(t, err)
	assert.True(t, p2.Equal(WrapPoint(point223(t, 36, 111))))
	assert.Equal(t, point223(t, 36, 111), p2.(*WeierstrassPoint).Unwrap())

	p21, err := g.ScalarMult(21)
	require.NoError(t, err)
	assert.True(t, p21.IsIdentity())
	assert.True(t, p21.Equal(curve.Identity()))
}

func TestWeierstrassIdentityGenerator(t *testing.T) {
	p := point223(t, 47, 71)
	inf, err := ecc.Infinity(p.A(), p.B())
	require.NoError(t, err)

	_, err = NewWeierstrass(inf)
	assert.ErrorIs(t, err, ErrIdentityGenerator)
}

func TestWeierstrassErrors(t *testing.T) {
	g := WrapPoint(point223(t, 47, 71))

	_, err := g.Add(NewEd25519().Generator())
	assert.ErrorIs(t, err, ErrPointMismatch)
	assert.False(t, g.Equal(NewEd25519().Generator()))

	// Same field, different b.
	a, _ := ecc.NewFieldElement(0, 223)
	b, _ := ecc.NewFieldElement(5, 223)
	other, err := ecc.Infinity(a, b)
	require.NoError(t, err)
	_, err = g.Add(WrapPoint(other))
	assert.ErrorIs(t, err, ecc.ErrDifferentCurve)
}
