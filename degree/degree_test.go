package degree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegular(t *testing.T) {
	d, err := Regular(15, Quadratic(10))
	require.NoError(t, err)
	assert.Equal(t, 11, d)

	d, err = Regular(10, []int{3, 3, 3, 3, 3})
	require.NoError(t, err)
	assert.Equal(t, 11, d)

	_, err = Regular(5, Quadratic(10))
	require.ErrorIs(t, err, ErrNotRegular)
}

func TestSemiRegular(t *testing.T) {
	d, err := SemiRegular(10, Quadratic(15), 0)
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	d, err = SemiRegular(5, Quadratic(10), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	d, err = SemiRegular(10, Quadratic(15), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	_, err = SemiRegular(10, Quadratic(10), 0)
	require.ErrorIs(t, err, ErrNotSemiRegular)
}

func TestOfSystemDispatch(t *testing.T) {
	cases := []struct {
		n, m, q int
		want    int
	}{
		{15, 15, 0, 16},
		{15, 10, 0, 11},
		{10, 15, 0, 4},
		{5, 10, 7, 3},
	}
	for _, c := range cases {
		got, err := QuadraticSystem(c.n, c.m, c.q)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "n=%d m=%d q=%d", c.n, c.m, c.q)
	}
}

func TestWitness(t *testing.T) {
	cases := []struct {
		n, m, q int
		want    int
	}{
		{6, 12, 7, 3},
		{1, 15, 2, 2},
		{4, 12, 7, 3},
		{10, 12, 7, 7},
	}
	for _, c := range cases {
		got, err := Witness(c.n, c.m, c.q)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "n=%d m=%d q=%d", c.n, c.m, c.q)
	}
}
