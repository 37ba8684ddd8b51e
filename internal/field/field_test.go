package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactor(t *testing.T) {
	cases := []struct {
		q, p, d int
	}{
		{2, 2, 1},
		{3, 3, 1},
		{4, 2, 2},
		{9, 3, 2},
		{16, 2, 4},
		{31, 31, 1},
		{256, 2, 8},
		{343, 7, 3},
		{65537, 65537, 1},
	}
	for _, c := range cases {
		p, d, ok := Factor(c.q)
		require.Truef(t, ok, "q=%d", c.q)
		assert.Equalf(t, c.p, p, "p for q=%d", c.q)
		assert.Equalf(t, c.d, d, "d for q=%d", c.q)
	}
}

func TestNotPrimePower(t *testing.T) {
	for _, q := range []int{-4, 0, 1, 6, 10, 12, 36, 100, 1000} {
		assert.Falsef(t, IsPrimePower(q), "q=%d", q)
		_, err := New(q)
		assert.ErrorIs(t, err, ErrNotPrimePower)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, q := range []int{2, 4, 8, 256, 1024} {
		assert.Truef(t, IsPowerOfTwo(q), "q=%d", q)
	}
	for _, q := range []int{0, 1, 3, 6, 9, 31, 255} {
		assert.Falsef(t, IsPowerOfTwo(q), "q=%d", q)
	}
}

func TestOrderIsEven(t *testing.T) {
	o, err := New(16)
	require.NoError(t, err)
	assert.True(t, o.IsEven())

	o, err = New(27)
	require.NoError(t, err)
	assert.False(t, o.IsEven())
	assert.Equal(t, Order{Q: 27, P: 3, Degree: 3}, o)
}

func TestFactorPrimalityFromRoots(t *testing.T) {
	for _, q := range []int{6, 12, 100, 15, 49 * 3, 1 << 20 * 3} {
		_, _, ok := Factor(q)
		assert.Falsef(t, ok, "q=%d", q)
	}
	for _, c := range []struct{ q, p, d int }{{2, 2, 1}, {9, 3, 2}, {256, 2, 8}, {1 << 30, 2, 30}, {3 * 3 * 3 * 3 * 3, 3, 5}} {
		p, d, ok := Factor(c.q)
		require.Truef(t, ok, "q=%d", c.q)
		assert.Equal(t, c.p, p)
		assert.Equal(t, c.d, d)
	}
}

func TestRoot(t *testing.T) {
	r, exact := root(343, 3)
	assert.True(t, exact)
	assert.Equal(t, 7, r)

	r, exact = root(344, 3)
	assert.False(t, exact)
	assert.Equal(t, 7, r)

	r, exact = root(1<<62, 62)
	assert.True(t, exact)
	assert.Equal(t, 2, r)
}
