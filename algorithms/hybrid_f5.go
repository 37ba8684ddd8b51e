package algorithms

import (
	"fmt"

	"mq-estimator/cost"
	"mq-estimator/degree"
)

// HybridF5 estimates the hybrid approach: guess k variables and run F5 on
// the remaining n-k.
type HybridF5 struct {
	base
	degrees []int
	w       float64
	quantum bool

	best *hybridCandidate
}

type hybridCandidate struct {
	k    int
	dreg int
	time cost.Cost
}

var hybridF5Parameters = []parameterSpec[*HybridF5]{
	{name: "k", compute: func(e *HybridF5) any { return e.search().k }},
}

// NewHybridF5 returns a HybridF5 estimator. The field is required.
func NewHybridF5(n, m int, opts ...Option) (*HybridF5, error) {
	c := newConfig(opts)
	w := c.linearAlgebraConstant(2)
	p := Problem{N: n, M: m, Q: c.q, W: w}
	if err := requireField("HybridF5", p); err != nil {
		return nil, err
	}
	b, err := newBase("HybridF5", p, true)
	if err != nil {
		return nil, err
	}
	degrees := c.polynomialDegrees(m)
	if len(degrees) != m {
		return nil, b.errorf(ErrInvalidParameter, "len(degrees) must be equal to %d", m)
	}
	e := &HybridF5{
		base:    b,
		degrees: degrees[:b.mReduced],
		w:       w,
		quantum: c.quantum,
	}
	e.optimum = bindParameters(e, hybridF5Parameters)
	return e, nil
}

// UsesQuantum reports whether guesses are costed with Grover search.
func (e *HybridF5) UsesQuantum() bool { return e.quantum }

// K returns the optimal number of guessed variables.
func (e *HybridF5) K() int {
	k, _ := e.optimum.intValue("k")
	return k
}

func (e *HybridF5) guessCost(k int) cost.Cost {
	q := int64(e.problem.Q)
	if e.quantum {
		return cost.PowFloat(float64(q), float64(k)/2)
	}
	return cost.PowInt(q, k)
}

func (e *HybridF5) evaluate(k int) (hybridCandidate, error) {
	n := e.nReduced - k
	dreg, err := degree.OfSystem(n, e.degrees, e.problem.Q)
	if err != nil {
		return hybridCandidate{}, err
	}
	t := e.guessCost(k).Mul(f5Time(n, len(e.degrees), dreg, e.w))
	return hybridCandidate{k: k, dreg: dreg, time: t}, nil
}

func (e *HybridF5) search() *hybridCandidate {
	if e.best != nil {
		return e.best
	}
	best := hybridCandidate{k: 0, time: cost.Inf()}
	for k := 0; k < e.nReduced; k++ {
		c, err := e.evaluate(k)
		if err != nil {
			continue
		}
		if c.time.Less(best.time) {
			best = c
		}
	}
	e.best = &best
	return e.best
}

// TimeComplexity is min over k of q^k·F5(n-k, m), with q^(k/2) in the
// quantum setting.
func (e *HybridF5) TimeComplexity() cost.Cost {
	return e.cachedTime(func() cost.Cost {
		e.K()
		return e.search().time
	})
}

// TimeComplexityAt evaluates the cost at parameter k.
func (e *HybridF5) TimeComplexityAt(ps Parameters) (cost.Cost, error) {
	if err := checkNames(ps, "k"); err != nil {
		return cost.Cost{}, fmt.Errorf("HybridF5: %w", err)
	}
	k, err := lookupInt(ps, "k", e.K())
	if err != nil {
		return cost.Cost{}, fmt.Errorf("HybridF5: %w", err)
	}
	if k < 0 || k >= e.nReduced {
		return cost.Cost{}, e.errorf(ErrOutOfRange, "k must be in the range 0 <= k < %d", e.nReduced)
	}
	c, err := e.evaluate(k)
	if err != nil {
		return cost.Cost{}, fmt.Errorf("HybridF5: %w", err)
	}
	return c.time, nil
}

// MemoryComplexity is the F5 memory on the subsystem left after guessing.
func (e *HybridF5) MemoryComplexity() cost.Cost {
	return e.cachedMemory(func() cost.Cost {
		best := e.search()
		if best.time.IsInf() {
			return cost.Inf()
		}
		return f5Memory(e.nReduced-best.k, best.dreg)
	})
}

// TildeOTime is q^k times the F5 tilde estimate at the optimal k.
func (e *HybridF5) TildeOTime() cost.Cost {
	best := e.search()
	if best.time.IsInf() {
		return cost.Inf()
	}
	n := e.nReduced - best.k
	return e.guessCost(best.k).Mul(f5Tilde(n, len(e.degrees), best.dreg, e.w))
}
