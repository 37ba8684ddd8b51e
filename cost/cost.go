// Package cost holds the numeric values the estimators report: time and
// memory complexities expressed as numbers of operations or field elements.
//
// A Cost wraps a high-precision big.Float. Combinatorial counts (binomials,
// monomial counts, powers of q) enter exactly and stay exact as long as they
// fit in Prec bits of mantissa; logarithmic factors and fractional exponents
// are folded in from float64. Floating approximations only surface through
// Log2 and Float64, which callers use for reporting.
package cost

import (
	"math"
	"math/big"
)

// Prec is the mantissa precision, in bits, of every Cost.
const Prec = 1024

// Cost is an immutable non-negative cost value, possibly +Inf.
// The zero value is 0.
type Cost struct {
	v *big.Float
}

func newFloat() *big.Float {
	return new(big.Float).SetPrec(Prec)
}

// Zero returns the cost 0.
func Zero() Cost { return Cost{v: newFloat()} }

// Inf returns the unbounded cost used for infeasible parameter domains.
func Inf() Cost { return Cost{v: newFloat().SetInf(false)} }

// Int converts an exact integer count.
func Int(x *big.Int) Cost { return Cost{v: newFloat().SetInt(x)} }

// Int64 converts a small exact integer.
func Int64(x int64) Cost { return Cost{v: newFloat().SetInt64(x)} }

// Float converts a float64. +Inf maps to Inf; NaN is not a valid cost and
// panics.
func Float(x float64) Cost {
	if math.IsInf(x, 1) {
		return Inf()
	}
	return Cost{v: newFloat().SetFloat64(x)}
}

// PowInt returns base^e computed exactly.
func PowInt(base int64, e int) Cost {
	if e < 0 {
		return Exp2(float64(e) * math.Log2(float64(base)))
	}
	z := new(big.Int).Exp(big.NewInt(base), big.NewInt(int64(e)), nil)
	return Int(z)
}

// Exp2 returns 2^l. The value is built from its binary exponent so that
// results far outside the float64 range are still representable.
func Exp2(l float64) Cost {
	switch {
	case math.IsInf(l, 1):
		return Inf()
	case math.IsInf(l, -1):
		return Zero()
	}
	e := math.Floor(l)
	f := newFloat().SetFloat64(math.Exp2(l - e))
	return Cost{v: f.SetMantExp(f, int(e))}
}

// PowFloat returns base^e for a positive real base and real exponent.
func PowFloat(base, e float64) Cost {
	if base == 0 {
		if e == 0 {
			return Int64(1)
		}
		return Zero()
	}
	return Exp2(e * math.Log2(base))
}

func (c Cost) val() *big.Float {
	if c.v == nil {
		return newFloat()
	}
	return c.v
}

// IsInf reports whether c is unbounded.
func (c Cost) IsInf() bool { return c.val().IsInf() }

// IsZero reports whether c == 0.
func (c Cost) IsZero() bool { return !c.IsInf() && c.val().Sign() == 0 }

// Add returns c + d.
func (c Cost) Add(d Cost) Cost {
	return Cost{v: newFloat().Add(c.val(), d.val())}
}

// Sub returns c - d. Infinite operands yield Inf.
func (c Cost) Sub(d Cost) Cost {
	if c.IsInf() || d.IsInf() {
		return Inf()
	}
	return Cost{v: newFloat().Sub(c.val(), d.val())}
}

// Mul returns c·d. A product involving Inf is Inf, including Inf·0.
func (c Cost) Mul(d Cost) Cost {
	if c.IsInf() || d.IsInf() {
		return Inf()
	}
	return Cost{v: newFloat().Mul(c.val(), d.val())}
}

// MulInt multiplies by an exact integer.
func (c Cost) MulInt(x *big.Int) Cost { return c.Mul(Int(x)) }

// MulInt64 multiplies by a small exact integer.
func (c Cost) MulInt64(x int64) Cost { return c.Mul(Int64(x)) }

// MulFloat multiplies by a float64 factor such as log2(n).
func (c Cost) MulFloat(f float64) Cost { return c.Mul(Float(f)) }

// Quo returns c/d. Division by zero yields Inf.
func (c Cost) Quo(d Cost) Cost {
	if c.IsInf() || d.IsZero() {
		return Inf()
	}
	if d.IsInf() {
		return Zero()
	}
	return Cost{v: newFloat().Quo(c.val(), d.val())}
}

// Pow returns c^e. Non-negative integral exponents are applied by exact
// repeated squaring; any other exponent goes through the log domain.
func (c Cost) Pow(e float64) Cost {
	if c.IsInf() {
		if e == 0 {
			return Int64(1)
		}
		return Inf()
	}
	if e >= 0 && e == math.Trunc(e) && e <= math.MaxInt32 {
		n := int64(e)
		acc := newFloat().SetInt64(1)
		base := newFloat().Set(c.val())
		for n > 0 {
			if n&1 == 1 {
				acc.Mul(acc, base)
			}
			n >>= 1
			if n > 0 {
				base.Mul(base, base)
			}
		}
		return Cost{v: acc}
	}
	if c.IsZero() {
		return Zero()
	}
	return Exp2(e * c.Log2())
}

// Cmp compares c and d exactly and returns -1, 0 or +1.
func (c Cost) Cmp(d Cost) int { return c.val().Cmp(d.val()) }

// Less reports whether c < d.
func (c Cost) Less(d Cost) bool { return c.Cmp(d) < 0 }

// Max returns the larger of a and b, preferring a on ties.
func Max(a, b Cost) Cost {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

// Log2 returns log2(c) as a float64: +Inf for Inf, -Inf for zero.
func (c Cost) Log2() float64 {
	v := c.val()
	switch {
	case v.IsInf():
		return math.Inf(1)
	case v.Sign() == 0:
		return math.Inf(-1)
	case v.Sign() < 0:
		return math.NaN()
	}
	mant := new(big.Float)
	exp := v.MantExp(mant)
	f, _ := mant.Float64()
	return float64(exp) + math.Log2(f)
}

// Float64 returns the nearest float64, saturating at ±Inf.
func (c Cost) Float64() float64 {
	f, _ := c.val().Float64()
	return f
}

// Big returns a copy of the underlying value.
func (c Cost) Big() *big.Float { return newFloat().Set(c.val()) }

// String formats c with 12 significant digits.
func (c Cost) String() string {
	if c.IsInf() {
		return "+Inf"
	}
	return c.val().Text('g', 12)
}
