package algorithms

import (
	"fmt"

	"mq-estimator/cost"
	"mq-estimator/degree"
	"mq-estimator/series"
)

// F5 estimates Faugère's F5 Gröbner basis algorithm on a regular or
// semi-regular system.
type F5 struct {
	base
	degrees []int
	w       float64
	dreg    int
}

// NewF5 returns an F5 estimator. The field is optional; w defaults to 2 and
// the polynomials are quadratic unless WithDegrees is given.
func NewF5(n, m int, opts ...Option) (*F5, error) {
	c := newConfig(opts)
	w := c.linearAlgebraConstant(2)
	b, err := newBase("F5", Problem{N: n, M: m, Q: c.q, W: w}, false)
	if err != nil {
		return nil, err
	}
	degrees := c.polynomialDegrees(m)
	if len(degrees) != m {
		return nil, b.errorf(ErrInvalidParameter, "len(degrees) must be equal to %d", m)
	}
	dreg, err := degree.OfSystem(n, degrees, c.q)
	if err != nil {
		return nil, fmt.Errorf("F5: %w", err)
	}
	e := &F5{base: b, degrees: degrees, w: w, dreg: dreg}
	e.optimum = bindParameters(e, nil)
	return e, nil
}

// DegreeOfRegularity returns the degree the Macaulay matrices reach.
func (e *F5) DegreeOfRegularity() int { return e.dreg }

// Degrees returns the polynomial degrees.
func (e *F5) Degrees() []int { return append([]int(nil), e.degrees...) }

// TimeComplexity is (m·C(n+d-1, d))^w for regular systems and C(n+d, d)^w
// for semi-regular ones, d the degree of regularity.
func (e *F5) TimeComplexity() cost.Cost {
	return e.cachedTime(func() cost.Cost {
		return f5Time(e.problem.N, e.problem.M, e.dreg, e.w)
	})
}

// TimeComplexityAt accepts no parameters.
func (e *F5) TimeComplexityAt(ps Parameters) (cost.Cost, error) {
	if err := checkNames(ps); err != nil {
		return cost.Cost{}, fmt.Errorf("F5: %w", err)
	}
	return f5Time(e.problem.N, e.problem.M, e.dreg, e.w), nil
}

// MemoryComplexity is C(n+d-1, d)^2.
func (e *F5) MemoryComplexity() cost.Cost {
	return e.cachedMemory(func() cost.Cost { return f5Memory(e.problem.N, e.dreg) })
}

// TildeOTime drops the factor m of the regular case.
func (e *F5) TildeOTime() cost.Cost {
	return f5Tilde(e.problem.N, e.problem.M, e.dreg, e.w)
}

func f5Time(n, m, dreg int, w float64) cost.Cost {
	if m > n {
		return cost.Int(series.Binomial(n+dreg, dreg)).Pow(w)
	}
	return cost.Int(series.Binomial(n+dreg-1, dreg)).MulInt64(int64(m)).Pow(w)
}

func f5Memory(n, dreg int) cost.Cost {
	return cost.Int(series.Binomial(n+dreg-1, dreg)).Pow(2)
}

func f5Tilde(n, m, dreg int, w float64) cost.Cost {
	if m > n {
		return cost.Int(series.Binomial(n+dreg, dreg)).Pow(w)
	}
	return cost.Int(series.Binomial(n+dreg-1, dreg)).Pow(w)
}
