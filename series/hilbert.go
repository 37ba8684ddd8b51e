package series

import (
	"fmt"
	"math/big"
	"sort"
)

// HilbertSeries is the Hilbert series of a generic system of polynomials
// with the given degrees in n variables, optionally together with the field
// equations x^q - x of GF(q).
type HilbertSeries struct {
	n       int
	degrees []int
	q       int
	prec    int
	s       *Series
}

// NewHilbertSeries builds the series truncated at prec. A non-positive prec
// selects the default 2·len(degrees). q == 0 omits the field equations.
func NewHilbertSeries(n int, degrees []int, q, prec int) *HilbertSeries {
	if prec <= 0 {
		prec = 2 * len(degrees)
	}
	ds := append([]int(nil), degrees...)
	return &HilbertSeries{
		n:       n,
		degrees: ds,
		q:       q,
		prec:    prec,
		s:       Hilbert(n, ds, q, prec),
	}
}

// Hilbert returns
//
//	prod_d (1 - z^d)/(1 - z^(d·q)) · ((1 - z^q)/(1 - z))^n   if q > 0
//	prod_d (1 - z^d) / (1 - z)^n                             otherwise
//
// truncated after prec coefficients.
func Hilbert(n int, degrees []int, q, prec int) *Series {
	counts := map[int]int{}
	for _, d := range degrees {
		counts[d]++
	}
	keys := make([]int, 0, len(counts))
	for d := range counts {
		keys = append(keys, d)
	}
	sort.Ints(keys)

	s := One(prec)
	for _, d := range keys {
		c := counts[d]
		s = s.Mul(Factor(-1, d, c, prec))
		if q > 0 {
			s = s.Mul(Factor(-1, d*q, -c, prec))
		}
	}
	if q > 0 {
		s = s.Mul(Factor(-1, q, n, prec))
	}
	return s.Mul(Factor(-1, 1, -n, prec))
}

// NVariables returns n.
func (h *HilbertSeries) NVariables() int { return h.n }

// Degrees returns a copy of the polynomial degrees.
func (h *HilbertSeries) Degrees() []int { return append([]int(nil), h.degrees...) }

// Precision returns the truncation order.
func (h *HilbertSeries) Precision() int { return h.prec }

// Series returns the underlying truncated series.
func (h *HilbertSeries) Series() *Series { return h.s }

// CoefficientOf returns the coefficient of z^d.
func (h *HilbertSeries) CoefficientOf(d int) *big.Int { return h.s.Coefficient(d) }

// FirstNonPositiveInteger returns the first exponent whose coefficient is
// <= 0, the degree of regularity of a semi-regular system.
func (h *HilbertSeries) FirstNonPositiveInteger() (int, error) {
	d, err := h.s.FirstNonPositive()
	if err != nil {
		return 0, fmt.Errorf("series: hilbert series of %d variables and %d polynomials: %w", h.n, len(h.degrees), err)
	}
	return d, nil
}
