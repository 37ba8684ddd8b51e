package algorithms

import (
	"fmt"
	"math"

	"mq-estimator/cost"
)

// CGMTA estimates the algorithm of Courtois, Goubin, Meier and Tacier for
// underdefined systems.
type CGMTA struct {
	base
	k float64
}

// NewCGMTA returns the estimator. The field is required and m <= n.
func NewCGMTA(n, m int, opts ...Option) (*CGMTA, error) {
	c := newConfig(opts)
	p := Problem{N: n, M: m, Q: c.q}
	if err := requireField("CGMTA", p); err != nil {
		return nil, err
	}
	b, err := newBase("CGMTA", p, false)
	if err != nil {
		return nil, err
	}
	if m > n {
		return nil, b.errorf(ErrInvalidParameter, "m must be <= n")
	}
	half := float64(n) / 2
	k := math.Min(float64(m)/2, math.Sqrt(math.Max(0, half-math.Sqrt(half))))
	e := &CGMTA{base: b, k: k}
	e.optimum = bindParameters(e, nil)
	return e, nil
}

// K returns min(m/2, sqrt(n/2 - sqrt(n/2))).
func (e *CGMTA) K() float64 { return e.k }

func (e *CGMTA) time() cost.Cost {
	return cost.PowFloat(float64(e.problem.Q), float64(e.problem.M)-e.k).MulInt64(2)
}

// TimeComplexity is 2·q^(m-k).
func (e *CGMTA) TimeComplexity() cost.Cost { return e.cachedTime(e.time) }

// TimeComplexityAt accepts no parameters.
func (e *CGMTA) TimeComplexityAt(ps Parameters) (cost.Cost, error) {
	if err := checkNames(ps); err != nil {
		return cost.Cost{}, fmt.Errorf("CGMTA: %w", err)
	}
	return e.time(), nil
}

// MemoryComplexity is 2k·q^k.
func (e *CGMTA) MemoryComplexity() cost.Cost {
	return cost.PowFloat(float64(e.problem.Q), e.k).MulFloat(2 * e.k)
}

// TildeOTime is q^(m-k).
func (e *CGMTA) TildeOTime() cost.Cost {
	return cost.PowFloat(float64(e.problem.Q), float64(e.problem.M)-e.k)
}
