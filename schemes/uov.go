package schemes

import (
	"fmt"

	"mq-estimator/algorithms"
)

// UOV is the unbalanced oil-and-vinegar scheme, a Rainbow with one layer.
// The number of polynomials equals the number of oil variables.
type UOV struct {
	rainbow *Rainbow
}

// NewUOV returns the UOV instance over GF(q) with n variables and m
// polynomials.
func NewUOV(q, n, m int) (*UOV, error) {
	if n-m <= m {
		return nil, fmt.Errorf("uov: %w: the no. of vinegar variables must be greater than the no. of oil variables", algorithms.ErrInvalidParameter)
	}
	r, err := NewRainbow(q, n, n-m)
	if err != nil {
		return nil, err
	}
	return &UOV{rainbow: r}, nil
}

func (u *UOV) Field() int        { return u.rainbow.q }
func (u *UOV) NVariables() int   { return u.rainbow.NVariables() }
func (u *UOV) NPolynomials() int { return u.rainbow.m }
func (u *UOV) NVinegarVars() int { return u.rainbow.v[0] }
func (u *UOV) NOilVars() int     { return u.rainbow.oil(0) }

func (u *UOV) HighRank(s Setting) int  { return u.rainbow.HighRank(s) }
func (u *UOV) UOVAttack(s Setting) int { return u.rainbow.UOVAttack(s) }

func (u *UOV) Direct(s Setting) (int, error) { return u.rainbow.Direct(s) }

// SecurityLevel is the cheapest of the direct, high rank and
// oil-and-vinegar attacks under s.
func (u *UOV) SecurityLevel(s Setting) (int, error) { return u.rainbow.SecurityLevel(s) }

func (u *UOV) String() string {
	return fmt.Sprintf("UOV signature over GF(%d) with %d variables and %d polynomials", u.Field(), u.NVariables(), u.NPolynomials())
}
