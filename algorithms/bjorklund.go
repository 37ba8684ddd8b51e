package algorithms

import (
	"fmt"
	"math"
	"math/big"

	"mq-estimator/cost"
	"mq-estimator/series"
)

// Bjorklund estimates the polynomial-method algorithm of Björklund, Kaski
// and Williams over GF(2).
type Bjorklund struct {
	base
	nsolutions int
	k          int

	best *ratCandidate
}

// ratCandidate is the optimum of a search over one rational parameter.
type ratCandidate struct {
	r    *big.Rat
	time cost.Cost
}

var bjorklundParameters = []parameterSpec[*Bjorklund]{
	{name: "λ", compute: func(e *Bjorklund) any { return ratOrNil(e.search().r) }},
}

// NewBjorklund returns the estimator. The field is fixed to GF(2); asking
// for any other field fails.
func NewBjorklund(n, m int, opts ...Option) (*Bjorklund, error) {
	c := newConfig(opts)
	b, err := newBinaryBase("Bjorklund", n, m, c)
	if err != nil {
		return nil, err
	}
	e := &Bjorklund{base: b, nsolutions: c.nsolutions, k: solutionBits(c.nsolutions)}
	e.optimum = bindParameters(e, bjorklundParameters)
	return e, nil
}

// NSolutions returns the expected number of solutions.
func (e *Bjorklund) NSolutions() int { return e.nsolutions }

// Lambda returns the optimal λ.
func (e *Bjorklund) Lambda() (*big.Rat, bool) {
	r, ok := e.optimum.value("λ").(*big.Rat)
	return r, ok
}

// bjorklundKey is the full argument tuple of the recursive cost.
type bjorklundKey struct {
	n, m   int
	lambda string
}

// bjorklundT is the recursive running time of one call on n variables and m
// equations with reduction factor λ.
type bjorklundT struct {
	lambda *big.Rat
	memo   map[bjorklundKey]*big.Int
}

func newBjorklundT(lambda *big.Rat) *bjorklundT {
	return &bjorklundT{lambda: lambda, memo: map[bjorklundKey]*big.Int{}}
}

func (t *bjorklundT) eval(n, m int) *big.Int {
	if n <= 1 {
		return big.NewInt(1)
	}
	key := bjorklundKey{n: n, m: m, lambda: t.lambda.RatString()}
	if v, ok := t.memo[key]; ok {
		return v
	}
	l := floorMul(t.lambda, n)
	// T1 = n + (l+2)·m·sbc(n, 2) + (n-l)·2^(n-l)
	t1 := new(big.Int).Mul(big.NewInt(int64((l+2)*m)), series.SumOfBinomialCoefficients(n, 2))
	t1.Add(t1, big.NewInt(int64(n)))
	t1.Add(t1, new(big.Int).Lsh(big.NewInt(int64(n-l)), uint(n-l)))

	r := new(big.Int).Add(t.eval(l, l+2), t1)
	r.Mul(r, series.SumOfBinomialCoefficients(n-l, l+4))
	r.Mul(r, big.NewInt(int64(48*n+1)))
	t.memo[key] = r
	return r
}

func (e *Bjorklund) timeAt(lambda *big.Rat) cost.Cost {
	n := e.nReduced
	t := newBjorklundT(lambda)
	sum := new(big.Int)
	for i := 1; i < n; i++ {
		sum.Add(sum, t.eval(n-i, e.problem.M+e.k+2))
	}
	return cost.Int(sum).MulInt64(int64(8 * e.k)).MulFloat(math.Log2(float64(n)))
}

func (e *Bjorklund) search() *ratCandidate {
	if e.best != nil {
		return e.best
	}
	n := e.nReduced
	best := ratCandidate{time: cost.Inf()}
	for l := 3; l < min(e.problem.M, n-1); l++ {
		lambda := big.NewRat(int64(l), int64(n))
		if t := e.timeAt(lambda); t.Less(best.time) {
			best = ratCandidate{r: lambda, time: t}
		}
	}
	e.best = &best
	return e.best
}

// TimeComplexity is 8k·log2(n)·Σ T(n-i, m+k+2, λ) at the optimal λ, with
// k = ⌊log2(nsolutions+1)⌋.
func (e *Bjorklund) TimeComplexity() cost.Cost {
	return e.cachedTime(func() cost.Cost {
		e.Lambda()
		return e.search().time
	})
}

// TimeComplexityAt evaluates the cost at an explicit λ in (0, 1).
func (e *Bjorklund) TimeComplexityAt(ps Parameters) (cost.Cost, error) {
	if err := checkNames(ps, "λ"); err != nil {
		return cost.Cost{}, fmt.Errorf("Bjorklund: %w", err)
	}
	lambda, err := lookupRat(ps, "λ", e.search().r)
	if err != nil {
		return cost.Cost{}, fmt.Errorf("Bjorklund: %w", err)
	}
	if lambda == nil {
		return cost.Inf(), nil
	}
	if !inOpenUnitInterval(lambda) {
		return cost.Cost{}, e.errorf(ErrOutOfRange, "λ must be in the range 0 < λ < 1")
	}
	return e.timeAt(lambda), nil
}

// MemoryComplexity follows the recursion S(n, m) = S(l, l+2) +
// 2^(n-l)·log2(48n+1) + m·sbc(n, 2).
func (e *Bjorklund) MemoryComplexity() cost.Cost {
	return e.cachedMemory(func() cost.Cost {
		lambda := e.search().r
		if lambda == nil {
			return cost.Inf()
		}
		return bjorklundS(e.nReduced, e.problem.M, lambda)
	})
}

func bjorklundS(n, m int, lambda *big.Rat) cost.Cost {
	if n <= 1 {
		return cost.Zero()
	}
	l := floorMul(lambda, n)
	s := cost.PowInt(2, n-l).MulFloat(math.Log2(float64(48*n + 1)))
	s = s.Add(cost.Int(series.SumOfBinomialCoefficients(n, 2)).MulInt64(int64(m)))
	return bjorklundS(l, l+2, lambda).Add(s)
}

// TildeOTime is 2^(0.803225·n).
func (e *Bjorklund) TildeOTime() cost.Cost {
	return cost.Exp2(0.803225 * float64(e.nReduced))
}

// newBinaryBase builds the base of an estimator that only exists over
// GF(2).
func newBinaryBase(name string, n, m int, c *config) (base, error) {
	if c.q != 0 && c.q != 2 {
		return base{}, fmt.Errorf("%s: %w: q must be 2", name, ErrInvalidParameter)
	}
	if c.nsolutions < 1 {
		return base{}, fmt.Errorf("%s: %w: nsolutions must be >= 1", name, ErrInvalidParameter)
	}
	return newBase(name, Problem{N: n, M: m, Q: 2}, true)
}

// solutionBits returns ⌊log2(nsolutions + 1)⌋.
func solutionBits(nsolutions int) int {
	return bitsLen(nsolutions+1) - 1
}

func bitsLen(x int) int {
	n := 0
	for x > 0 {
		n++
		x >>= 1
	}
	return n
}

func inOpenUnitInterval(r *big.Rat) bool {
	return r.Sign() > 0 && r.Cmp(big.NewRat(1, 1)) < 0
}

func ratOrNil(r *big.Rat) any {
	if r == nil {
		return nil
	}
	return r
}
