package series

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(vs []*big.Int) []int64 {
	out := make([]int64, len(vs))
	for i, v := range vs {
		out[i] = v.Int64()
	}
	return out
}

func TestFactorExpansion(t *testing.T) {
	// (1 - z)^-2 = 1 + 2z + 3z^2 + ...
	s := Factor(-1, 1, -2, 5)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ints(s.Coefficients()))

	// (1 - z^2)^3 = 1 - 3z^2 + 3z^4 - z^6
	s = Factor(-1, 2, 3, 8)
	assert.Equal(t, []int64{1, 0, -3, 0, 3, 0, -1, 0}, ints(s.Coefficients()))

	// (1 + z)^-1 alternates
	s = Factor(1, 1, -1, 4)
	assert.Equal(t, []int64{1, -1, 1, -1}, ints(s.Coefficients()))
}

func TestInverseAndDiv(t *testing.T) {
	s := Factor(-1, 1, 3, 6)
	inv, err := s.Inverse()
	require.NoError(t, err)
	assert.Equal(t, ints(Factor(-1, 1, -3, 6).Coefficients()), ints(inv.Coefficients()))

	one := s.Mul(inv)
	assert.Equal(t, []int64{1, 0, 0, 0, 0, 0}, ints(one.Coefficients()))

	_, err = FromCoefficients(3, 2, 1).Inverse()
	require.Error(t, err)

	q, err := One(4).Div(Factor(-1, 1, 1, 4))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 1, 1, 1}, ints(q.Coefficients()))
}

func TestPrefixSumsAndFirstNonPositive(t *testing.T) {
	s := FromCoefficients(5, 3, -1, -1, -2, 4)
	assert.Equal(t, []int64{3, 2, 1, -1, 3}, ints(s.PrefixSums().Coefficients()))

	d, err := s.PrefixSums().FirstNonPositive()
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	_, err = FromCoefficients(3, 1, 1, 1).FirstNonPositive()
	require.ErrorIs(t, err, ErrNoNonPositive)
}

func TestHilbertSemiRegular(t *testing.T) {
	s := Hilbert(5, []int{2, 2, 2, 2, 2, 2, 2}, 0, 10)
	assert.Equal(t, []int64{1, 5, 8, 0, -14, -14, 0, 8, 5, 1}, ints(s.Coefficients()))

	s = Hilbert(10, repeat(2, 15), 0, 8)
	assert.Equal(t, []int64{1, 10, 40, 70, -5, -248, -400, -40}, ints(s.Coefficients()))
}

func TestHilbertWithFieldEquations(t *testing.T) {
	// over GF(2) the quadratic system reduces to (1 + z)^n / (1 + z^2)^m
	s := Hilbert(4, repeat(2, 4), 2, 8)
	assert.Equal(t, []int64{1, 4, 2, -12, -13, 24, 36, -40}, ints(s.Coefficients()))
}

func TestHilbertSeriesDefaults(t *testing.T) {
	h := NewHilbertSeries(10, repeat(2, 15), 0, 0)
	assert.Equal(t, 30, h.Precision())
	assert.Equal(t, 10, h.NVariables())
	assert.Len(t, h.Degrees(), 15)

	d, err := h.FirstNonPositiveInteger()
	require.NoError(t, err)
	assert.Equal(t, 4, d)
	assert.Equal(t, int64(70), h.CoefficientOf(3).Int64())
}

func TestFirstNonPositiveGrowing(t *testing.T) {
	calls := 0
	d, err := FirstNonPositiveGrowing(64, func(prec int) *Series {
		calls++
		return Hilbert(10, repeat(2, 15), 0, prec)
	})
	require.NoError(t, err)
	assert.Equal(t, 4, d)
	assert.Equal(t, 1, calls)

	_, err = FirstNonPositiveGrowing(40, func(prec int) *Series {
		return Factor(-1, 1, -1, prec)
	})
	require.ErrorIs(t, err, ErrNoNonPositive)
}

func TestNMonomialSeries(t *testing.T) {
	boolean := NewNMonomialSeries(3, 2)
	var got []int64
	for d := 0; d < 5; d++ {
		got = append(got, boolean.OfDegree(d).Int64())
	}
	assert.Equal(t, []int64{1, 3, 3, 1, 0}, got)

	ternary := NewNMonomialSeries(3, 3)
	got = got[:0]
	for d := 0; d < 7; d++ {
		got = append(got, ternary.UpToDegree(d).Int64())
	}
	assert.Equal(t, []int64{1, 4, 10, 17, 23, 26, 27}, got)

	// the closed form agrees with the generating function
	gf := Factor(-1, 3, 4, 12).Mul(Factor(-1, 1, -4, 12))
	assert.Equal(t, ints(gf.Coefficients()), ints(NewNMonomialSeries(4, 3).Series(12).Coefficients()))

	unbounded := NewNMonomialSeries(4, 0)
	assert.Equal(t, int64(35), unbounded.UpToDegree(3).Int64())
	assert.Equal(t, int64(0), unbounded.OfDegree(-1).Int64())
}

func TestBinomialHelpers(t *testing.T) {
	assert.Equal(t, int64(10), Binomial(5, 2).Int64())
	assert.Equal(t, int64(0), Binomial(5, 6).Int64())
	assert.Equal(t, int64(0), Binomial(-1, 0).Int64())
	assert.Equal(t, int64(176), SumOfBinomialCoefficients(10, 3).Int64())
	assert.Equal(t, int64(32), SumOfBinomialCoefficients(5, 10).Int64())
}

func TestBivariateAdmissibleSeries(t *testing.T) {
	// n=10, m=12, q=5, k=2, total degree <= 2
	const prec = 3
	hk := Hilbert(2, repeat(2, 12), 5, prec)
	hn := Hilbert(10, repeat(2, 12), 5, prec)
	nm := NewNMonomialSeries(8, 5).Series(prec)

	b := InXY(hk, prec).Mul(InX(nm, prec)).Sub(InX(hn, prec)).Sub(InY(hk, prec)).DivOneMinusXY()

	want := map[[2]int]int64{
		{0, 0}: -1, {0, 1}: -3, {0, 2}: 6,
		{1, 0}: -3, {1, 1}: -3,
		{2, 0}: -10,
	}
	for k, v := range want {
		assert.Equal(t, v, b.Coefficient(k[0], k[1]).Int64(), "coefficient x^%d y^%d", k[0], k[1])
	}
	assert.Equal(t, int64(0), b.Coefficient(3, 0).Int64())

	terms := b.Terms()
	require.Len(t, terms, 6)
	assert.Equal(t, Term{X: 0, Y: 0, Coeff: big.NewInt(-1)}, terms[0])
	assert.Equal(t, 1, terms[1].X)
	assert.Equal(t, 2, terms[3].X)
}

func TestSeriesString(t *testing.T) {
	s := FromCoefficients(4, 1, -2, 0, 3)
	assert.Equal(t, "1 - 2*z + 3*z^3 + O(z^4)", s.String())
	assert.Equal(t, "0 + O(z^2)", New(2).String())
}

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}
