package series

import (
	"fmt"
	"math/big"
	"strings"
)

// Bivariate is a power series in x and y truncated by total degree: only
// monomials x^i y^j with i + j < Prec() are kept.
type Bivariate struct {
	prec int
	c    [][]*big.Int
}

// Term is one monomial of a bivariate series.
type Term struct {
	X, Y  int
	Coeff *big.Int
}

// NewBivariate returns the zero series.
func NewBivariate(prec int) *Bivariate {
	if prec < 0 {
		prec = 0
	}
	c := make([][]*big.Int, prec)
	for i := range c {
		c[i] = make([]*big.Int, prec-i)
		for j := range c[i] {
			c[i][j] = new(big.Int)
		}
	}
	return &Bivariate{prec: prec, c: c}
}

// InX embeds s(z) as s(x).
func InX(s *Series, prec int) *Bivariate {
	b := NewBivariate(prec)
	for i := 0; i < prec && i < s.Prec(); i++ {
		b.c[i][0].Set(s.c[i])
	}
	return b
}

// InY embeds s(z) as s(y).
func InY(s *Series, prec int) *Bivariate {
	b := NewBivariate(prec)
	for j := 0; j < prec && j < s.Prec(); j++ {
		b.c[0][j].Set(s.c[j])
	}
	return b
}

// InXY embeds s(z) as s(x·y).
func InXY(s *Series, prec int) *Bivariate {
	b := NewBivariate(prec)
	for i := 0; 2*i < prec && i < s.Prec(); i++ {
		b.c[i][i].Set(s.c[i])
	}
	return b
}

// Prec returns the total-degree truncation bound.
func (b *Bivariate) Prec() int { return b.prec }

// Coefficient returns a copy of the coefficient of x^i y^j.
func (b *Bivariate) Coefficient(i, j int) *big.Int {
	if i < 0 || j < 0 || i+j >= b.prec {
		return new(big.Int)
	}
	return new(big.Int).Set(b.c[i][j])
}

func minBivariatePrec(a, o *Bivariate) int {
	if a.prec < o.prec {
		return a.prec
	}
	return o.prec
}

// Add returns b + o.
func (b *Bivariate) Add(o *Bivariate) *Bivariate {
	out := NewBivariate(minBivariatePrec(b, o))
	for i := range out.c {
		for j := range out.c[i] {
			out.c[i][j].Add(b.c[i][j], o.c[i][j])
		}
	}
	return out
}

// Sub returns b - o.
func (b *Bivariate) Sub(o *Bivariate) *Bivariate {
	out := NewBivariate(minBivariatePrec(b, o))
	for i := range out.c {
		for j := range out.c[i] {
			out.c[i][j].Sub(b.c[i][j], o.c[i][j])
		}
	}
	return out
}

// Mul returns b·o.
func (b *Bivariate) Mul(o *Bivariate) *Bivariate {
	prec := minBivariatePrec(b, o)
	out := NewBivariate(prec)
	tmp := new(big.Int)
	for i1 := 0; i1 < prec; i1++ {
		for j1 := 0; i1+j1 < prec; j1++ {
			a := b.c[i1][j1]
			if a.Sign() == 0 {
				continue
			}
			for i2 := 0; i1+j1+i2 < prec; i2++ {
				for j2 := 0; i1+j1+i2+j2 < prec; j2++ {
					v := o.c[i2][j2]
					if v.Sign() == 0 {
						continue
					}
					out.c[i1+i2][j1+j2].Add(out.c[i1+i2][j1+j2], tmp.Mul(a, v))
				}
			}
		}
	}
	return out
}

// DivOneMinusXY returns b / ((1 - x)(1 - y)): every coefficient becomes the
// sum of the coefficients dominated by its exponents.
func (b *Bivariate) DivOneMinusXY() *Bivariate {
	out := NewBivariate(b.prec)
	for i := 0; i < b.prec; i++ {
		for j := 0; i+j < b.prec; j++ {
			v := out.c[i][j]
			v.Set(b.c[i][j])
			if i > 0 {
				v.Add(v, out.c[i-1][j])
			}
			if j > 0 {
				v.Add(v, out.c[i][j-1])
			}
			if i > 0 && j > 0 {
				v.Sub(v, out.c[i-1][j-1])
			}
		}
	}
	return out
}

// Terms lists the non-zero monomials by increasing total degree and, within
// a degree, by decreasing x exponent.
func (b *Bivariate) Terms() []Term {
	var out []Term
	for deg := 0; deg < b.prec; deg++ {
		for i := deg; i >= 0; i-- {
			v := b.c[i][deg-i]
			if v.Sign() == 0 {
				continue
			}
			out = append(out, Term{X: i, Y: deg - i, Coeff: new(big.Int).Set(v)})
		}
	}
	return out
}

// String renders the non-zero terms followed by the truncation order.
func (b *Bivariate) String() string {
	var sb strings.Builder
	for k, t := range b.Terms() {
		if k > 0 {
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "%s*x^%d*y^%d", t.Coeff, t.X, t.Y)
	}
	if sb.Len() == 0 {
		sb.WriteString("0")
	}
	fmt.Fprintf(&sb, " + O(x, y)^%d", b.prec)
	return sb.String()
}
