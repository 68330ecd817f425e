package curves

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEd25519Point(t *testing.T) {
	curve := NewEd25519()

	// Test Generator
	g := curve.Generator()
	assert.NotNil(t, g)
	assert.False(t, g.IsIdentity())
	assert.True(t, curve.Identity().IsIdentity())

	// Test ScalarMult
	p2, err := g.ScalarMult(2)
	require.NoError(t, err)

	// Test Add
	p3, err := g.Add(g)
	require.NoError(t, err)
	assert.True(t, p2.Equal(p3))

	// Test Neg
	sum, err := p2.Add(p2.Neg())
	require.NoError(t, err)
	assert.True(t, sum.IsIdentity())

	zero, err := g.ScalarMult(0)
	require.NoError(t, err)
	assert.True(t, zero.IsIdentity())
}

func TestEd25519Mismatch(t *testing.T) {
	g := NewEd25519().Generator()
	_, err := g.Add(NewSecp256k1().Generator())
	assert.ErrorIs(t, err, ErrPointMismatch)
	assert.False(t, g.Equal(NewSecp256k1().Generator()))
}
