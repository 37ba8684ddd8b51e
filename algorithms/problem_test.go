package algorithms

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemValidate(t *testing.T) {
	cases := []struct {
		p   Problem
		msg string
	}{
		{Problem{N: 0, M: 5}, "n must be >= 1"},
		{Problem{N: 5, M: 0}, "m must be >= 1"},
		{Problem{N: 5, M: 5, Q: 6}, "q must be a prime power"},
		{Problem{N: 5, M: 5, W: 3.5}, "w must be in the range 2 <= w <= 3"},
		{Problem{N: 5, M: 5, W: 1.5}, "w must be in the range 2 <= w <= 3"},
	}
	for _, c := range cases {
		err := c.p.Validate()
		require.ErrorIs(t, err, ErrInvalidParameter)
		assert.Contains(t, err.Error(), c.msg)
	}
	require.NoError(t, Problem{N: 5, M: 5, Q: 256, W: 2.81}.Validate())
	require.NoError(t, Problem{N: 1, M: 1}.Validate())
}

func TestProblemPredicates(t *testing.T) {
	over := Problem{N: 10, M: 15}
	assert.True(t, over.IsOverdefined())
	assert.False(t, over.IsUnderdefined())
	assert.False(t, over.IsSquare())
	assert.False(t, over.IsOverFiniteField())

	under := Problem{N: 15, M: 10, Q: 3}
	assert.True(t, under.IsUnderdefined())
	assert.True(t, under.IsOverFiniteField())

	assert.True(t, Problem{N: 7, M: 7}.IsSquare())
}

func TestReducedSize(t *testing.T) {
	cases := []struct {
		p    Problem
		n, m int
	}{
		{Problem{N: 10, M: 12, Q: 2}, 10, 12},
		{Problem{N: 12, M: 10, Q: 256}, 9, 9},
		{Problem{N: 12, M: 10, Q: 2}, 9, 9},
		{Problem{N: 12, M: 10, Q: 3}, 10, 10},
		{Problem{N: 15, M: 10, Q: 2}, 9, 9},
		{Problem{N: 15, M: 10, Q: 3}, 10, 10},
		{Problem{N: 15, M: 10}, 10, 10},
		{Problem{N: 25, M: 10, Q: 7}, 9, 9},
		{Problem{N: 183, M: 12, Q: 4}, 1, 1},
	}
	for _, c := range cases {
		n, m := c.p.ReducedSize()
		assert.Equal(t, c.n, n, "%s", c.p)
		assert.Equal(t, c.m, m, "%s", c.p)
	}
}

func TestParametersString(t *testing.T) {
	ps := Parameters{Int("k", 4), String("variant", "deterministic")}
	assert.Equal(t, "k: 4, variant: deterministic", ps.String())

	ps = Parameters{Rat("λ", 2, 18), {Name: "κ", Value: nil}}
	assert.Equal(t, "λ: 1/9, κ: -", ps.String())

	v, ok := ps.Get("λ")
	require.True(t, ok)
	assert.Equal(t, 0, v.(*big.Rat).Cmp(big.NewRat(1, 9)))

	_, ok = ps.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, "", Parameters(nil).String())
}

func TestLookupHelpers(t *testing.T) {
	ps := Parameters{Int("k", 3), String("variant", "las_vegas"), Int("λ", 0)}

	k, err := lookupInt(ps, "k", 9)
	require.NoError(t, err)
	assert.Equal(t, 3, k)

	k, err = lookupInt(ps, "missing", 9)
	require.NoError(t, err)
	assert.Equal(t, 9, k)

	_, err = lookupInt(ps, "variant", 0)
	require.ErrorIs(t, err, ErrInvalidParameter)

	r, err := lookupRat(ps, "λ", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Sign())

	require.ErrorIs(t, checkNames(ps, "k", "variant"), ErrInvalidParameter)
	require.NoError(t, checkNames(ps, "k", "variant", "λ"))

	assert.Equal(t, 2, floorMul(big.NewRat(2, 9), 9))
	assert.Equal(t, 1, floorMul(big.NewRat(2, 9), 8))
	assert.Equal(t, 0, floorMul(big.NewRat(1, 10), 9))
}
