package algorithms

import (
	"fmt"

	"mq-estimator/cost"
	"mq-estimator/degree"
	"mq-estimator/series"
)

// Variants of BooleanSolveFXL, in search order.
const (
	VariantLasVegas      = "las_vegas"
	VariantDeterministic = "deterministic"
)

var booleanSolveVariants = []string{VariantLasVegas, VariantDeterministic}

// BooleanSolveFXL estimates BooleanSolve and FXL: guess k variables and
// check consistency of the rest with a Macaulay matrix at the witness
// degree, by sparse (Las Vegas) or dense (deterministic) linear algebra.
type BooleanSolveFXL struct {
	base
	w    float64
	best *fxlCandidate
}

type fxlCandidate struct {
	k       int
	variant string
	wdeg    int
	time    cost.Cost
}

var booleanSolveFXLParameters = []parameterSpec[*BooleanSolveFXL]{
	{name: "k", compute: func(e *BooleanSolveFXL) any {
		if b := e.search(); b.variant != "" {
			return b.k
		}
		return nil
	}},
	{name: "variant", compute: func(e *BooleanSolveFXL) any {
		if b := e.search(); b.variant != "" {
			return b.variant
		}
		return nil
	}},
}

// NewBooleanSolveFXL returns the estimator. The system must be square or
// overdefined over a finite field.
func NewBooleanSolveFXL(n, m int, opts ...Option) (*BooleanSolveFXL, error) {
	c := newConfig(opts)
	w := c.linearAlgebraConstant(2)
	p := Problem{N: n, M: m, Q: c.q, W: w}
	if err := requireField("BooleanSolveFXL", p); err != nil {
		return nil, err
	}
	b, err := newBase("BooleanSolveFXL", p, false)
	if err != nil {
		return nil, err
	}
	if !p.IsOverdefined() && !p.IsSquare() {
		return nil, b.errorf(ErrInvalidParameter, "the no. of polynomials must be >= than the no. of variables")
	}
	e := &BooleanSolveFXL{base: b, w: w}
	e.optimum = bindParameters(e, booleanSolveFXLParameters)
	return e, nil
}

// K returns the optimal number of guessed variables.
func (e *BooleanSolveFXL) K() (int, bool) { return e.optimum.intValue("k") }

// Variant returns the optimal variant.
func (e *BooleanSolveFXL) Variant() (string, bool) {
	v, ok := e.optimum.value("variant").(string)
	return v, ok
}

func (e *BooleanSolveFXL) minK() int {
	if e.problem.IsOverdefined() {
		return 0
	}
	return 1
}

func (e *BooleanSolveFXL) evaluate(k int, variant string) (fxlCandidate, error) {
	n, m, q := e.problem.N, e.problem.M, e.problem.Q
	wd, err := degree.Witness(n-k, m, q)
	if err != nil {
		return fxlCandidate{}, err
	}
	cols := cost.Int(series.Binomial(n-k+wd, wd))
	guess := cost.PowInt(int64(q), k)
	var t cost.Cost
	switch variant {
	case VariantLasVegas:
		t = cost.Int(series.Binomial(n-k+2, 2)).MulInt64(3).Mul(guess).Mul(cols.Pow(2))
	case VariantDeterministic:
		t = guess.MulInt64(int64(m)).Mul(cols.Pow(e.w))
	default:
		return fxlCandidate{}, fmt.Errorf("%w: variant must be %q or %q", ErrInvalidParameter, VariantLasVegas, VariantDeterministic)
	}
	return fxlCandidate{k: k, variant: variant, wdeg: wd, time: t}, nil
}

func (e *BooleanSolveFXL) search() *fxlCandidate {
	if e.best != nil {
		return e.best
	}
	best := fxlCandidate{time: cost.Inf()}
	for _, v := range booleanSolveVariants {
		for k := e.minK(); k < e.problem.N; k++ {
			c, err := e.evaluate(k, v)
			if err != nil {
				continue
			}
			if c.time.Less(best.time) {
				best = c
			}
		}
	}
	e.best = &best
	return e.best
}

// TimeComplexity minimises over the variant and k.
func (e *BooleanSolveFXL) TimeComplexity() cost.Cost {
	return e.cachedTime(func() cost.Cost {
		e.OptimalParameters()
		return e.search().time
	})
}

// TimeComplexityAt evaluates the cost at explicit k and variant.
func (e *BooleanSolveFXL) TimeComplexityAt(ps Parameters) (cost.Cost, error) {
	if err := checkNames(ps, "k", "variant"); err != nil {
		return cost.Cost{}, fmt.Errorf("BooleanSolveFXL: %w", err)
	}
	best := e.search()
	k, err := lookupInt(ps, "k", best.k)
	if err != nil {
		return cost.Cost{}, fmt.Errorf("BooleanSolveFXL: %w", err)
	}
	v, err := lookupString(ps, "variant", best.variant)
	if err != nil {
		return cost.Cost{}, fmt.Errorf("BooleanSolveFXL: %w", err)
	}
	if k < e.minK() || k >= e.problem.N {
		return cost.Cost{}, e.errorf(ErrOutOfRange, "k must be in the range %d <= k < %d", e.minK(), e.problem.N)
	}
	c, err := e.evaluate(k, v)
	if err != nil {
		return cost.Cost{}, fmt.Errorf("BooleanSolveFXL: %w", err)
	}
	return c.time, nil
}

// MemoryComplexity is max(C(n-k+wd, wd)^2, m·n^2).
func (e *BooleanSolveFXL) MemoryComplexity() cost.Cost {
	return e.cachedMemory(func() cost.Cost {
		best := e.search()
		if best.variant == "" {
			return cost.Inf()
		}
		n, m := e.problem.N, e.problem.M
		cols := cost.Int(series.Binomial(n-best.k+best.wdeg, best.wdeg)).Pow(2)
		return cost.Max(cols, cost.Int64(int64(m*n*n)))
	})
}

// TildeOTime drops the polynomial factors of the optimal variant.
func (e *BooleanSolveFXL) TildeOTime() cost.Cost {
	best := e.search()
	if best.variant == "" {
		return cost.Inf()
	}
	n, q := e.problem.N, e.problem.Q
	cols := cost.Int(series.Binomial(n-best.k+best.wdeg, best.wdeg))
	exp := e.w
	if best.variant == VariantLasVegas {
		exp = 2
	}
	return cost.PowInt(int64(q), best.k).Mul(cols.Pow(exp))
}
