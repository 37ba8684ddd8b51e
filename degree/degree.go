// Package degree computes the degree of regularity and the witness degree of
// generic polynomial systems, the quantities every Gröbner-basis style cost
// model is indexed by.
package degree

import (
	"errors"
	"fmt"

	"mq-estimator/series"
)

var (
	// ErrNotRegular is returned by Regular for systems with more polynomials
	// than variables.
	ErrNotRegular = errors.New("degree: the number of variables must be greater than or equal to the number of polynomials")
	// ErrNotSemiRegular is returned by SemiRegular for systems that are not
	// overdefined.
	ErrNotSemiRegular = errors.New("degree: the number of polynomials must be strictly greater than the number of variables")
)

// Regular returns sum(d - 1) + 1 over the degrees of a regular system.
func Regular(n int, degrees []int) (int, error) {
	if n < len(degrees) {
		return 0, fmt.Errorf("%w (n=%d, m=%d)", ErrNotRegular, n, len(degrees))
	}
	d := 1
	for _, di := range degrees {
		d += di - 1
	}
	return d, nil
}

// SemiRegular returns the index of the first non-positive coefficient of the
// Hilbert series of an overdefined system. q == 0 means no field equations.
func SemiRegular(n int, degrees []int, q int) (int, error) {
	m := len(degrees)
	if m <= n {
		return 0, fmt.Errorf("%w (n=%d, m=%d)", ErrNotSemiRegular, n, m)
	}
	d, err := series.FirstNonPositiveGrowing(2*m, func(prec int) *series.Series {
		return series.Hilbert(n, degrees, q, prec)
	})
	if err != nil {
		return 0, fmt.Errorf("degree: semi-regular system n=%d m=%d q=%d: %w", n, m, q, err)
	}
	return d, nil
}

// OfSystem dispatches to Regular when n >= m and to SemiRegular otherwise.
func OfSystem(n int, degrees []int, q int) (int, error) {
	if n >= len(degrees) {
		return Regular(n, degrees)
	}
	return SemiRegular(n, degrees, q)
}

// QuadraticSystem is OfSystem for m quadratic polynomials.
func QuadraticSystem(n, m, q int) (int, error) {
	return OfSystem(n, Quadratic(m), q)
}

// Witness returns the witness degree of m quadratic polynomials in n
// variables: the first non-positive coefficient of H(z)/(1 - z).
func Witness(n, m, q int) (int, error) {
	degrees := Quadratic(m)
	d, err := series.FirstNonPositiveGrowing(2*m+n+2, func(prec int) *series.Series {
		return series.Hilbert(n, degrees, q, prec).PrefixSums()
	})
	if err != nil {
		return 0, fmt.Errorf("degree: witness degree n=%d m=%d q=%d: %w", n, m, q, err)
	}
	return d, nil
}

// Quadratic returns m copies of 2.
func Quadratic(m int) []int {
	out := make([]int, m)
	for i := range out {
		out[i] = 2
	}
	return out
}
