package estimator

import (
	"fmt"
	"math"

	"mq-estimator/algorithms"
	"mq-estimator/cost"
	"mq-estimator/internal/field"
)

var securityLevels = []int{80, 100, 128, 192, 256}

// maxPolynomials bounds the search of MinNPolynomials.
var maxPolynomials = 1024

// MinNPolynomials returns the smallest m such that a square system of m
// quadratic polynomials in m variables over F_q needs at least 2^level
// operations with the hybrid F5 attack. The search stops with
// algorithms.ErrOutOfRange past maxPolynomials.
func MinNPolynomials(level, q int, w float64) (int, error) {
	ok := false
	for _, l := range securityLevels {
		ok = ok || l == level
	}
	if !ok {
		return 0, fmt.Errorf("%w: the valid parameter for security_level are 80, 100, 128, 192, 256", algorithms.ErrInvalidParameter)
	}
	for m := 2; m <= maxPolynomials; m++ {
		e, err := algorithms.NewHybridF5(m, m, algorithms.WithField(q), algorithms.WithLinearAlgebraConstant(w))
		if err != nil {
			return 0, fmt.Errorf("estimator: min polynomials: %w", err)
		}
		if e.TimeComplexity().Log2() >= float64(level) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("estimator: min polynomials: %w: no m <= %d reaches 2^%d", algorithms.ErrOutOfRange, maxPolynomials, level)
}

// MinNVariables is MinNPolynomials for square systems.
func MinNVariables(level, q int, w float64) (int, error) {
	return MinNPolynomials(level, q, w)
}

// NGates converts a number of multiplications in F_q into a gate count,
// nmul·(2·log2(q)² + log2(q)).
func NGates(q int, nmul cost.Cost) (cost.Cost, error) {
	if !field.IsPrimePower(q) {
		return cost.Cost{}, fmt.Errorf("estimator: %w: q must be a prime power", algorithms.ErrInvalidParameter)
	}
	l := math.Log2(float64(q))
	return nmul.MulFloat(2*l*l + l), nil
}
