package algorithms

import (
	"fmt"
	"math"

	"mq-estimator/cost"
	"mq-estimator/series"
)

// DinurSecond estimates Dinur's second (simplified) polynomial-method
// algorithm over GF(2).
type DinurSecond struct {
	base
	best *dinurSecondCandidate
}

type dinurSecondCandidate struct {
	n1    int
	time  cost.Cost
	found bool
}

var dinurSecondParameters = []parameterSpec[*DinurSecond]{
	{name: "n1", compute: func(e *DinurSecond) any {
		if b := e.search(); b.found {
			return b.n1
		}
		return nil
	}},
}

// NewDinurSecond returns the estimator over GF(2).
func NewDinurSecond(n, m int, opts ...Option) (*DinurSecond, error) {
	c := newConfig(opts)
	b, err := newBinaryBase("DinurSecond", n, m, c)
	if err != nil {
		return nil, err
	}
	e := &DinurSecond{base: b}
	e.optimum = bindParameters(e, dinurSecondParameters)
	return e, nil
}

// N1 returns the optimal n1.
func (e *DinurSecond) N1() (int, bool) { return e.optimum.intValue("n1") }

// maxN1 is the largest admissible n1.
func (e *DinurSecond) maxN1() int { return (e.problem.M-2)/2 - 1 }

func (e *DinurSecond) timeAt(n1 int) cost.Cost {
	n := e.nReduced
	logn := math.Log2(float64(n))
	t1 := cost.PowInt(2, n1).Mul(cost.Int(series.SumOfBinomialCoefficients(n-n1, n1+3))).MulFloat(16 * logn)
	t2 := cost.PowInt(2, n-n1).MulInt64(int64(n1 * n))
	t3 := cost.PowInt(2, n-2*n1+1).Mul(cost.Int(series.SumOfBinomialCoefficients(n, 2)))
	return t1.Add(t2).Add(t3)
}

func (e *DinurSecond) search() *dinurSecondCandidate {
	if e.best != nil {
		return e.best
	}
	best := dinurSecondCandidate{time: cost.Inf()}
	for n1 := 1; n1 <= e.maxN1(); n1++ {
		if t := e.timeAt(n1); t.Less(best.time) {
			best = dinurSecondCandidate{n1: n1, time: t, found: true}
		}
	}
	e.best = &best
	return e.best
}

// TimeComplexity is 16·log2(n)·2^n1·sbc(n-n1, n1+3) + n1·n·2^(n-n1) +
// 2^(n-2n1+1)·sbc(n, 2) at the optimal n1.
func (e *DinurSecond) TimeComplexity() cost.Cost {
	return e.cachedTime(func() cost.Cost {
		e.N1()
		return e.search().time
	})
}

// TimeComplexityAt evaluates the cost at an explicit n1.
func (e *DinurSecond) TimeComplexityAt(ps Parameters) (cost.Cost, error) {
	if err := checkNames(ps, "n1"); err != nil {
		return cost.Cost{}, fmt.Errorf("DinurSecond: %w", err)
	}
	best := e.search()
	n1, err := lookupInt(ps, "n1", best.n1)
	if err != nil {
		return cost.Cost{}, fmt.Errorf("DinurSecond: %w", err)
	}
	if _, given := ps.Get("n1"); !given && !best.found {
		return cost.Inf(), nil
	}
	if n1 < 1 || n1 >= e.nReduced {
		return cost.Cost{}, e.errorf(ErrOutOfRange, "n1 must be in the range 1 <= n1 < %d", e.nReduced)
	}
	return e.timeAt(n1), nil
}

// MemoryComplexity is 8·(n1+1)·sbc(n-n1, n1+3).
func (e *DinurSecond) MemoryComplexity() cost.Cost {
	return e.cachedMemory(func() cost.Cost {
		best := e.search()
		if !best.found {
			return cost.Inf()
		}
		n := e.nReduced
		return cost.Int(series.SumOfBinomialCoefficients(n-best.n1, best.n1+3)).MulInt64(int64(8 * (best.n1 + 1)))
	})
}

// TildeOTime is 2^((1 - 1/5.4)·n).
func (e *DinurSecond) TildeOTime() cost.Cost {
	return cost.Exp2((1 - 1/(2.7*2)) * float64(e.nReduced))
}
