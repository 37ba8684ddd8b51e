// Package series implements the truncated formal power series the cost
// models are built from: Hilbert series of polynomial systems, monomial
// counting series over GF(q), and the bivariate series used to enumerate
// admissible Crossbred degrees.
//
// Coefficients are exact big.Int values. Every series the estimators need is
// a product of factors (1 ± z^k)^e, so division only ever happens by series
// whose constant term is ±1 and integrality is preserved.
package series

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNoNonPositive is returned when no coefficient <= 0 lies within the
// precision of a series.
var ErrNoNonPositive = errors.New("series: no non-positive coefficient within precision")

// Series is a univariate power series truncated after Prec() coefficients.
type Series struct {
	c []*big.Int
}

// New returns the zero series with the given precision.
func New(prec int) *Series {
	if prec < 0 {
		prec = 0
	}
	c := make([]*big.Int, prec)
	for i := range c {
		c[i] = new(big.Int)
	}
	return &Series{c: c}
}

// One returns the series 1.
func One(prec int) *Series {
	s := New(prec)
	if prec > 0 {
		s.c[0].SetInt64(1)
	}
	return s
}

// FromCoefficients builds a series from its leading coefficients.
func FromCoefficients(prec int, coeffs ...int64) *Series {
	s := New(prec)
	for i, v := range coeffs {
		if i >= prec {
			break
		}
		s.c[i].SetInt64(v)
	}
	return s
}

// Factor returns (1 + sign·z^step)^exp truncated at prec. exp may be
// negative, in which case the generalised binomial expansion is used.
func Factor(sign, step, exp, prec int) *Series {
	s := New(prec)
	if prec == 0 {
		return s
	}
	if step <= 0 {
		panic(fmt.Sprintf("series: factor step must be positive, got %d", step))
	}
	sg := big.NewInt(int64(sign))
	pow := big.NewInt(1)
	for j := 0; j*step < prec; j++ {
		var b *big.Int
		if exp >= 0 {
			if j > exp {
				break
			}
			b = Binomial(exp, j)
		} else {
			// C(-e, j) = (-1)^j C(e+j-1, j)
			b = Binomial(-exp+j-1, j)
			if j%2 == 1 {
				b.Neg(b)
			}
		}
		s.c[j*step].Mul(b, pow)
		pow.Mul(pow, sg)
	}
	return s
}

// Prec returns the number of stored coefficients.
func (s *Series) Prec() int { return len(s.c) }

// Coefficient returns a copy of the coefficient of z^d; zero outside the
// precision.
func (s *Series) Coefficient(d int) *big.Int {
	if d < 0 || d >= len(s.c) {
		return new(big.Int)
	}
	return new(big.Int).Set(s.c[d])
}

// Coefficients returns copies of all stored coefficients.
func (s *Series) Coefficients() []*big.Int {
	out := make([]*big.Int, len(s.c))
	for i, v := range s.c {
		out[i] = new(big.Int).Set(v)
	}
	return out
}

// Truncate returns s with at most prec coefficients.
func (s *Series) Truncate(prec int) *Series {
	if prec > len(s.c) {
		prec = len(s.c)
	}
	out := New(prec)
	for i := 0; i < prec; i++ {
		out.c[i].Set(s.c[i])
	}
	return out
}

func minPrec(a, b *Series) int {
	if len(a.c) < len(b.c) {
		return len(a.c)
	}
	return len(b.c)
}

// Add returns s + t at the smaller precision.
func (s *Series) Add(t *Series) *Series {
	out := New(minPrec(s, t))
	for i := range out.c {
		out.c[i].Add(s.c[i], t.c[i])
	}
	return out
}

// Sub returns s - t at the smaller precision.
func (s *Series) Sub(t *Series) *Series {
	out := New(minPrec(s, t))
	for i := range out.c {
		out.c[i].Sub(s.c[i], t.c[i])
	}
	return out
}

// Mul returns s·t at the smaller precision.
func (s *Series) Mul(t *Series) *Series {
	prec := minPrec(s, t)
	out := New(prec)
	tmp := new(big.Int)
	for i := 0; i < prec; i++ {
		if s.c[i].Sign() == 0 {
			continue
		}
		for j := 0; i+j < prec; j++ {
			if t.c[j].Sign() == 0 {
				continue
			}
			out.c[i+j].Add(out.c[i+j], tmp.Mul(s.c[i], t.c[j]))
		}
	}
	return out
}

// Inverse returns 1/s. The constant term must be ±1.
func (s *Series) Inverse() (*Series, error) {
	prec := len(s.c)
	if prec == 0 {
		return New(0), nil
	}
	c0 := s.c[0]
	if !(c0.IsInt64() && (c0.Int64() == 1 || c0.Int64() == -1)) {
		return nil, fmt.Errorf("series: constant term %s is not a unit", c0)
	}
	out := New(prec)
	out.c[0].Set(c0)
	acc, tmp := new(big.Int), new(big.Int)
	for k := 1; k < prec; k++ {
		acc.SetInt64(0)
		for j := 1; j <= k; j++ {
			if s.c[j].Sign() == 0 {
				continue
			}
			acc.Add(acc, tmp.Mul(s.c[j], out.c[k-j]))
		}
		// c0 is its own inverse
		out.c[k].Mul(acc, c0)
		out.c[k].Neg(out.c[k])
	}
	return out, nil
}

// Div returns s/t.
func (s *Series) Div(t *Series) (*Series, error) {
	inv, err := t.Inverse()
	if err != nil {
		return nil, err
	}
	return s.Mul(inv), nil
}

// PrefixSums returns s/(1 - z), i.e. the running sums of the coefficients.
func (s *Series) PrefixSums() *Series {
	out := New(len(s.c))
	acc := new(big.Int)
	for i, v := range s.c {
		acc.Add(acc, v)
		out.c[i].Set(acc)
	}
	return out
}

// FirstNonPositive returns the smallest d with coefficient(d) <= 0.
func (s *Series) FirstNonPositive() (int, error) {
	for i, v := range s.c {
		if v.Sign() <= 0 {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w (precision %d)", ErrNoNonPositive, len(s.c))
}

// FirstNonPositiveGrowing evaluates build at doubling precisions, starting
// small and capped at maxPrec, and returns the first non-positive index.
// Large systems only pay for the coefficients actually inspected.
func FirstNonPositiveGrowing(maxPrec int, build func(prec int) *Series) (int, error) {
	prec := 16
	for {
		if prec > maxPrec {
			prec = maxPrec
		}
		d, err := build(prec).FirstNonPositive()
		if err == nil {
			return d, nil
		}
		if prec >= maxPrec {
			return 0, err
		}
		prec *= 2
	}
}

// String renders the series like 1 + 5*z + 8*z^2 + O(z^prec).
func (s *Series) String() string {
	out := ""
	for i, v := range s.c {
		if v.Sign() == 0 {
			continue
		}
		term := v.String()
		switch i {
		case 0:
		case 1:
			term += "*z"
		default:
			term += fmt.Sprintf("*z^%d", i)
		}
		if out == "" {
			out = term
			continue
		}
		if v.Sign() < 0 {
			out += " - " + term[1:]
		} else {
			out += " + " + term
		}
	}
	if out == "" {
		out = "0"
	}
	return fmt.Sprintf("%s + O(z^%d)", out, len(s.c))
}
