package series

import "math/big"

// NMonomialSeries counts monomials in n variables over GF(q), where every
// individual exponent is below q because of the field equations. Its
// generating function is ((1 - z^q)/(1 - z))^n; with q == 0 exponents are
// unbounded and the series is 1/(1 - z)^n.
type NMonomialSeries struct {
	n int
	q int
}

// NewNMonomialSeries returns the counter for n variables over GF(q).
func NewNMonomialSeries(n, q int) *NMonomialSeries {
	return &NMonomialSeries{n: n, q: q}
}

// NVariables returns n.
func (s *NMonomialSeries) NVariables() int { return s.n }

// Order returns q, or 0 when exponents are unbounded.
func (s *NMonomialSeries) Order() int { return s.q }

// UpToDegree returns the number of monomials of total degree <= d.
//
// By inclusion-exclusion over the variables whose exponent reaches q:
// sum_j (-1)^j C(n, j) C(d - j·q + n, n).
func (s *NMonomialSeries) UpToDegree(d int) *big.Int {
	if d < 0 {
		return new(big.Int)
	}
	if s.q <= 0 {
		return Binomial(d+s.n, s.n)
	}
	out := new(big.Int)
	for j := 0; j <= s.n; j++ {
		r := d - j*s.q
		if r < 0 {
			break
		}
		term := new(big.Int).Mul(Binomial(s.n, j), Binomial(r+s.n, s.n))
		if j%2 == 1 {
			out.Sub(out, term)
		} else {
			out.Add(out, term)
		}
	}
	return out
}

// OfDegree returns the number of monomials of total degree exactly d.
func (s *NMonomialSeries) OfDegree(d int) *big.Int {
	if d < 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(s.UpToDegree(d), s.UpToDegree(d-1))
}

// Series returns the generating function truncated at prec.
func (s *NMonomialSeries) Series(prec int) *Series {
	out := New(prec)
	for d := 0; d < prec; d++ {
		out.c[d].Set(s.OfDegree(d))
	}
	return out
}
