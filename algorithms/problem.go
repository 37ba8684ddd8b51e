// Package algorithms estimates the time and memory needed by the known
// algorithms for solving systems of multivariate quadratic equations.
//
// Every estimator owns one Problem and a static list of the parameters it
// optimises. Optima are searched lazily, memoised per instance and exposed
// through OptimalParameters; TimeComplexityAt evaluates the same cost model
// at caller supplied parameters without touching the cache.
package algorithms

import (
	"errors"
	"fmt"

	"mq-estimator/internal/field"
)

var (
	// ErrInvalidParameter reports an invalid construction argument.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrFieldRequired reports an estimator that only exists over a finite
	// field being built without one.
	ErrFieldRequired = errors.New("the order of the finite field is required")
	// ErrOutOfRange reports an explicit parameter outside its admissible
	// range.
	ErrOutOfRange = errors.New("parameter out of range")
)

// Problem is an MQ instance: N variables, M polynomials, an optional field
// order Q (0 when absent) and an optional linear algebra constant W (0 when
// absent).
type Problem struct {
	N int
	M int
	Q int
	W float64
}

// Validate checks the constraints shared by every estimator.
func (p Problem) Validate() error {
	if p.N < 1 {
		return fmt.Errorf("%w: n must be >= 1", ErrInvalidParameter)
	}
	if p.M < 1 {
		return fmt.Errorf("%w: m must be >= 1", ErrInvalidParameter)
	}
	if p.Q != 0 && !field.IsPrimePower(p.Q) {
		return fmt.Errorf("%w: q must be a prime power", ErrInvalidParameter)
	}
	if p.W != 0 && (p.W < 2 || p.W > 3) {
		return fmt.Errorf("%w: w must be in the range 2 <= w <= 3", ErrInvalidParameter)
	}
	return nil
}

// IsOverdefined reports m > n.
func (p Problem) IsOverdefined() bool { return p.M > p.N }

// IsUnderdefined reports n > m.
func (p Problem) IsUnderdefined() bool { return p.N > p.M }

// IsSquare reports n == m.
func (p Problem) IsSquare() bool { return p.N == p.M }

// IsOverFiniteField reports whether a field order was given.
func (p Problem) IsOverFiniteField() bool { return p.Q != 0 }

// ReducedSize applies the Thomae-Wolf transformation to underdefined
// systems. With α = ⌊n/m⌋ the system becomes square of size m - α + 1, one
// smaller over fields of even characteristic. Other systems are unchanged.
func (p Problem) ReducedSize() (n, m int) {
	if !p.IsUnderdefined() {
		return p.N, p.M
	}
	alpha := p.N / p.M
	r := p.M - alpha + 1
	// Thomae and Wolf, "Solving underdetermined systems of multivariate
	// quadratic equations revisited" (PKC 2012): in characteristic two one
	// more variable is removed, giving m - α. (12, 10) over GF(2) is 9x9.
	if p.Q != 0 && p.Q%2 == 0 {
		r--
	}
	if r < 1 {
		r = 1
	}
	return r, r
}

func (p Problem) String() string {
	if p.Q == 0 {
		return fmt.Sprintf("n=%d m=%d", p.N, p.M)
	}
	return fmt.Sprintf("n=%d m=%d q=%d", p.N, p.M, p.Q)
}
