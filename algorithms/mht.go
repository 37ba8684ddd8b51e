package algorithms

import (
	"fmt"

	"mq-estimator/cost"
	"mq-estimator/internal/field"
)

// MHT estimates the Miura-Hashimoto-Takagi algorithm for underdefined
// systems with m(m+3)/2 <= n.
type MHT struct {
	base
	w float64
}

// NewMHT returns the estimator. The field is required.
func NewMHT(n, m int, opts ...Option) (*MHT, error) {
	c := newConfig(opts)
	w := c.linearAlgebraConstant(2)
	p := Problem{N: n, M: m, Q: c.q, W: w}
	if err := requireField("MHT", p); err != nil {
		return nil, err
	}
	b, err := newBase("MHT", p, false)
	if err != nil {
		return nil, err
	}
	if m*(m+3) > 2*n {
		return nil, b.errorf(ErrInvalidParameter, "the parameter n should be greater than or equal to m * (m + 3) / 2")
	}
	e := &MHT{base: b, w: w}
	e.optimum = bindParameters(e, nil)
	return e, nil
}

func (e *MHT) time() cost.Cost {
	t := cost.Int64(int64(e.problem.N)).Pow(e.w).MulInt64(int64(e.problem.M))
	if !field.IsPowerOfTwo(e.problem.Q) {
		t = t.Mul(cost.PowInt(2, e.problem.M))
	}
	return t
}

// TimeComplexity is m·n^w in characteristic 2 and 2^m·m·n^w otherwise.
func (e *MHT) TimeComplexity() cost.Cost { return e.cachedTime(e.time) }

// TimeComplexityAt accepts no parameters.
func (e *MHT) TimeComplexityAt(ps Parameters) (cost.Cost, error) {
	if err := checkNames(ps); err != nil {
		return cost.Cost{}, fmt.Errorf("MHT: %w", err)
	}
	return e.time(), nil
}

// MemoryComplexity is m·n^2.
func (e *MHT) MemoryComplexity() cost.Cost { return underdefinedMemory(e.problem) }

// TildeOTime is 1.
func (e *MHT) TildeOTime() cost.Cost { return cost.Int64(1) }
