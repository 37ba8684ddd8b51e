package algorithms

import (
	"fmt"
	"math"
	"math/big"

	"mq-estimator/cost"
	"mq-estimator/series"
)

// DinurFirst estimates Dinur's first polynomial-method algorithm over GF(2).
type DinurFirst struct {
	base
	nsolutions int
	k          int

	best *dinurFirstCandidate
}

type dinurFirstCandidate struct {
	kappa, lambda *big.Rat
	time          cost.Cost
}

var dinurFirstParameters = []parameterSpec[*DinurFirst]{
	{name: "λ", compute: func(e *DinurFirst) any { return ratOrNil(e.search().lambda) }},
	{name: "κ", compute: func(e *DinurFirst) any { return ratOrNil(e.search().kappa) }},
}

// NewDinurFirst returns the estimator over GF(2).
func NewDinurFirst(n, m int, opts ...Option) (*DinurFirst, error) {
	c := newConfig(opts)
	b, err := newBinaryBase("DinurFirst", n, m, c)
	if err != nil {
		return nil, err
	}
	e := &DinurFirst{base: b, nsolutions: c.nsolutions, k: solutionBits(c.nsolutions)}
	e.optimum = bindParameters(e, dinurFirstParameters)
	return e, nil
}

// NSolutions returns the expected number of solutions.
func (e *DinurFirst) NSolutions() int { return e.nsolutions }

// Lambda returns the optimal λ.
func (e *DinurFirst) Lambda() (*big.Rat, bool) {
	r, ok := e.optimum.value("λ").(*big.Rat)
	return r, ok
}

// Kappa returns the optimal κ.
func (e *DinurFirst) Kappa() (*big.Rat, bool) {
	r, ok := e.optimum.value("κ").(*big.Rat)
	return r, ok
}

type dinurKey struct {
	n, n1, w int
	lambda   string
}

// dinurT is the recursive cost T(n, n1, w, λ) of one call. m and k are the
// polynomial count and solution bits shared by every call.
type dinurT struct {
	m, k   int
	lambda *big.Rat
	memo   map[dinurKey]*big.Int
}

func (t *dinurT) eval(n, n1, w int) *big.Int {
	key := dinurKey{n: n, n1: n1, w: w, lambda: t.lambda.RatString()}
	if v, ok := t.memo[key]; ok {
		return v
	}
	// n2 = ⌊n1 - λ·n⌋
	ln := new(big.Rat).Mul(t.lambda, new(big.Rat).SetInt64(int64(n)))
	diff := new(big.Rat).Sub(new(big.Rat).SetInt64(int64(n1)), ln)
	n2 := int(floorRat(diff).Int64())

	nn := big.NewInt(int64(n))
	var r *big.Int
	if n2 <= 0 {
		r = new(big.Int).Mul(nn, series.SumOfBinomialCoefficients(n-n1, w))
		r.Lsh(r, uint(n1))
	} else {
		r = new(big.Int).Set(t.eval(n, n2, n2+4))
		t2 := new(big.Int).Mul(nn, series.SumOfBinomialCoefficients(n-n1, w))
		r.Add(r, t2.Lsh(t2, uint(n1-n2)))
		r.Add(r, new(big.Int).Mul(nn, series.SumOfBinomialCoefficients(n-n2, n2+4)))
		t4 := new(big.Int).Mul(big.NewInt(int64((n2+2)*(t.m+t.k+2))), series.SumOfBinomialCoefficients(n, 2))
		r.Add(r, t4)
		r.Mul(r, big.NewInt(int64(48*n+1)))
	}
	t.memo[key] = r
	return r
}

// floorRat returns ⌊r⌋; Euclidean division floors for a positive
// denominator.
func floorRat(r *big.Rat) *big.Int {
	return new(big.Int).Div(r.Num(), r.Denom())
}

// timeAt uses n1(i) = ⌊(n-i)·κ⌋ and w(i) = ⌊(n-i)·(1-κ)⌋ for every
// level i of the outer sum.
func (e *DinurFirst) timeAt(kappa, lambda *big.Rat) cost.Cost {
	n := e.nReduced
	t := &dinurT{m: e.problem.M, k: e.k, lambda: lambda, memo: map[dinurKey]*big.Int{}}
	oneMinus := new(big.Rat).Sub(big.NewRat(1, 1), kappa)
	sum := new(big.Int)
	for i := 1; i < n; i++ {
		sum.Add(sum, t.eval(n-i, floorMul(kappa, n-i), floorMul(oneMinus, n-i)))
	}
	return cost.Int(sum).MulInt64(int64(8 * e.k)).MulFloat(math.Log2(float64(n)))
}

func (e *DinurFirst) search() *dinurFirstCandidate {
	if e.best != nil {
		return e.best
	}
	n := e.nReduced
	best := dinurFirstCandidate{time: cost.Inf()}
	for n1 := 1; n1 < min(e.problem.M+e.k, (n-1)/3); n1++ {
		kappa := big.NewRat(int64(n1), int64(n-1))
		for n2 := 1; n2 < n1; n2++ {
			lambda := big.NewRat(int64(n1-n2), int64(n-1))
			if t := e.timeAt(kappa, lambda); t.Less(best.time) {
				best = dinurFirstCandidate{kappa: kappa, lambda: lambda, time: t}
			}
		}
	}
	e.best = &best
	return e.best
}

// TimeComplexity is 8k·log2(n)·Σ_i T(n-i, n1(i), w(i), λ) at the optimal
// (κ, λ).
func (e *DinurFirst) TimeComplexity() cost.Cost {
	return e.cachedTime(func() cost.Cost {
		e.OptimalParameters()
		return e.search().time
	})
}

// TimeComplexityAt evaluates the cost at explicit κ and λ.
func (e *DinurFirst) TimeComplexityAt(ps Parameters) (cost.Cost, error) {
	if err := checkNames(ps, "λ", "κ"); err != nil {
		return cost.Cost{}, fmt.Errorf("DinurFirst: %w", err)
	}
	best := e.search()
	lambda, err := lookupRat(ps, "λ", best.lambda)
	if err != nil {
		return cost.Cost{}, fmt.Errorf("DinurFirst: %w", err)
	}
	kappa, err := lookupRat(ps, "κ", best.kappa)
	if err != nil {
		return cost.Cost{}, fmt.Errorf("DinurFirst: %w", err)
	}
	if lambda == nil || kappa == nil {
		return cost.Inf(), nil
	}
	if !inOpenUnitInterval(lambda) {
		return cost.Cost{}, e.errorf(ErrOutOfRange, "λ must be in the range 0 < λ < 1")
	}
	if !inOpenUnitInterval(kappa) {
		return cost.Cost{}, e.errorf(ErrOutOfRange, "κ must be in the range 0 < κ < 1")
	}
	return e.timeAt(kappa, lambda), nil
}

// MemoryComplexity is (48n+1)·2^⌊(1-κ)·n⌋.
func (e *DinurFirst) MemoryComplexity() cost.Cost {
	return e.cachedMemory(func() cost.Cost {
		kappa := e.search().kappa
		if kappa == nil {
			return cost.Inf()
		}
		n := e.nReduced
		oneMinus := new(big.Rat).Sub(big.NewRat(1, 1), kappa)
		return cost.PowInt(2, floorMul(oneMinus, n)).MulInt64(int64(48*n + 1))
	})
}

// TildeOTime is 2^(0.6943·n).
func (e *DinurFirst) TildeOTime() cost.Cost {
	return cost.Exp2(0.6943 * float64(e.nReduced))
}
