package algorithms

import (
	"fmt"

	"mq-estimator/cost"
	"mq-estimator/internal/field"
)

// KPG estimates the Kipnis-Patarin-Goubin algorithm for very underdefined
// systems over fields of characteristic 2.
type KPG struct {
	base
	w float64
}

// NewKPG returns the estimator. q must be a power of two and m(m+1) < n.
func NewKPG(n, m int, opts ...Option) (*KPG, error) {
	c := newConfig(opts)
	w := c.linearAlgebraConstant(2)
	p := Problem{N: n, M: m, Q: c.q, W: w}
	if err := requireField("KPG", p); err != nil {
		return nil, err
	}
	b, err := newBase("KPG", p, false)
	if err != nil {
		return nil, err
	}
	if !field.IsPowerOfTwo(c.q) {
		return nil, b.errorf(ErrInvalidParameter, "the order of finite field q must be a power of 2")
	}
	if m*(m+1) >= n {
		return nil, b.errorf(ErrInvalidParameter, "the condition m(m + 1) < n must be satisfied")
	}
	e := &KPG{base: b, w: w}
	e.optimum = bindParameters(e, nil)
	return e, nil
}

func (e *KPG) time() cost.Cost {
	return cost.Int64(int64(e.problem.N)).Pow(e.w).MulInt64(int64(e.problem.M))
}

// TimeComplexity is m·n^w.
func (e *KPG) TimeComplexity() cost.Cost { return e.cachedTime(e.time) }

// TimeComplexityAt accepts no parameters.
func (e *KPG) TimeComplexityAt(ps Parameters) (cost.Cost, error) {
	if err := checkNames(ps); err != nil {
		return cost.Cost{}, fmt.Errorf("KPG: %w", err)
	}
	return e.time(), nil
}

// MemoryComplexity is m·n^2.
func (e *KPG) MemoryComplexity() cost.Cost { return underdefinedMemory(e.problem) }

// TildeOTime is 1: the algorithm is polynomial.
func (e *KPG) TildeOTime() cost.Cost { return cost.Int64(1) }

func underdefinedMemory(p Problem) cost.Cost {
	n := int64(p.N)
	return cost.Int64(int64(p.M) * n * n)
}
