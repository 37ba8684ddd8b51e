package algorithms

import (
	"fmt"
	"math"

	"mq-estimator/cost"
)

// ExhaustiveSearch estimates enumerating every assignment, with the
// Gray-code speedup of Bouillaguet et al. over GF(2).
type ExhaustiveSearch struct {
	base
	nsolutions int
}

// NewExhaustiveSearch returns the estimator. The field is required.
func NewExhaustiveSearch(n, m int, opts ...Option) (*ExhaustiveSearch, error) {
	c := newConfig(opts)
	p := Problem{N: n, M: m, Q: c.q}
	if err := requireField("ExhaustiveSearch", p); err != nil {
		return nil, err
	}
	b, err := newBase("ExhaustiveSearch", p, true)
	if err != nil {
		return nil, err
	}
	if c.nsolutions < 1 {
		return nil, b.errorf(ErrInvalidParameter, "nsolutions must be >= 1")
	}
	e := &ExhaustiveSearch{base: b, nsolutions: c.nsolutions}
	e.optimum = bindParameters(e, nil)
	return e, nil
}

// NSolutions returns the expected number of solutions.
func (e *ExhaustiveSearch) NSolutions() int { return e.nsolutions }

func (e *ExhaustiveSearch) time() cost.Cost {
	n, q := e.nReduced, e.problem.Q
	var t cost.Cost
	if q == 2 {
		t = cost.PowInt(2, n).MulFloat(4 * math.Log2(float64(n)))
	} else {
		t = cost.PowInt(int64(q), n).MulFloat(math.Log(float64(n)) / math.Log(float64(q)))
	}
	return t.Quo(cost.Int64(int64(e.nsolutions + 1)))
}

// TimeComplexity is 4·log2(n)·2^n/(s+1) over GF(2) and log_q(n)·q^n/(s+1)
// otherwise, s the number of solutions.
func (e *ExhaustiveSearch) TimeComplexity() cost.Cost {
	return e.cachedTime(e.time)
}

// TimeComplexityAt accepts no parameters.
func (e *ExhaustiveSearch) TimeComplexityAt(ps Parameters) (cost.Cost, error) {
	if err := checkNames(ps); err != nil {
		return cost.Cost{}, fmt.Errorf("ExhaustiveSearch: %w", err)
	}
	return e.time(), nil
}

// MemoryComplexity is m·n^2.
func (e *ExhaustiveSearch) MemoryComplexity() cost.Cost {
	n := int64(e.nReduced)
	return cost.Int64(int64(e.problem.M) * n * n)
}

// TildeOTime is q^n.
func (e *ExhaustiveSearch) TildeOTime() cost.Cost {
	return cost.PowInt(int64(e.problem.Q), e.nReduced)
}
