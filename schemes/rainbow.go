package schemes

import (
	"fmt"
	"math/big"

	"mq-estimator/algorithms"
	"mq-estimator/cost"
	"mq-estimator/internal/field"
	"mq-estimator/series"
)

// rbsPrecision is the total degree up to which the Rainbow Band Separation
// series is expanded.
const rbsPrecision = 50

// Rainbow is a layered oil-and-vinegar signature scheme over GF(q) with n
// variables. Layer l has v[l] vinegar variables and v[l+1]-v[l] oil
// variables, with v[u] = n.
type Rainbow struct {
	q int
	v []int
	m int
}

// NewRainbow returns the Rainbow instance with the given vinegar counts.
func NewRainbow(q, n int, v ...int) (*Rainbow, error) {
	if !field.IsPrimePower(q) {
		return nil, fmt.Errorf("rainbow: %w: q must be a prime power", algorithms.ErrInvalidParameter)
	}
	if len(v) == 0 {
		return nil, fmt.Errorf("rainbow: %w: at least one layer is required", algorithms.ErrInvalidParameter)
	}
	for i, vi := range v {
		if vi >= n {
			return nil, fmt.Errorf("rainbow: %w: all integers in v must be strictly less than n", algorithms.ErrInvalidParameter)
		}
		if vi < 1 || (i > 0 && vi <= v[i-1]) {
			return nil, fmt.Errorf("rainbow: %w: v must be positive and strictly increasing", algorithms.ErrInvalidParameter)
		}
	}
	vs := append(append([]int(nil), v...), n)
	return &Rainbow{q: q, v: vs, m: n - v[0]}, nil
}

// Rainbow128 is the level I parameter set (16, 100, [36, 68]).
func Rainbow128() *Rainbow { return mustRainbow(16, 100, 36, 68) }

// Rainbow192 is the level III parameter set (256, 148, [68, 100]).
func Rainbow192() *Rainbow { return mustRainbow(256, 148, 68, 100) }

// Rainbow256 is the level V parameter set (256, 196, [96, 132]).
func Rainbow256() *Rainbow { return mustRainbow(256, 196, 96, 132) }

func mustRainbow(q, n int, v ...int) *Rainbow {
	r, err := NewRainbow(q, n, v...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Rainbow) Field() int        { return r.q }
func (r *Rainbow) NVariables() int   { return r.v[len(r.v)-1] }
func (r *Rainbow) NPolynomials() int { return r.m }
func (r *Rainbow) NLayers() int      { return len(r.v) - 1 }

func (r *Rainbow) checkLayer(l int) error {
	if l < 0 || l >= r.NLayers() {
		return fmt.Errorf("rainbow: %w: l must be in the range 0 <= l < %d", algorithms.ErrOutOfRange, r.NLayers())
	}
	return nil
}

// NVinegarAtLayer returns the number of vinegar variables of layer l.
func (r *Rainbow) NVinegarAtLayer(l int) (int, error) {
	if err := r.checkLayer(l); err != nil {
		return 0, err
	}
	return r.v[l], nil
}

// NOilAtLayer returns the number of oil variables, and polynomials, of
// layer l.
func (r *Rainbow) NOilAtLayer(l int) (int, error) {
	if err := r.checkLayer(l); err != nil {
		return 0, err
	}
	return r.oil(l), nil
}

func (r *Rainbow) oil(l int) int { return r.v[l+1] - r.v[l] }

// guess returns q^e, or q^(e/2) for a quantum attacker.
func (r *Rainbow) guess(e int, s Setting) cost.Cost {
	if s.Quantum {
		return cost.PowFloat(float64(r.q), float64(e)/2)
	}
	return cost.PowInt(int64(r.q), e)
}

// HighRank is the high rank attack, q^o·n³/6 with o the oil variables of
// the last layer.
func (r *Rainbow) HighRank(s Setting) int {
	n := int64(r.NVariables())
	nmul := r.guess(r.oil(r.NLayers()-1), s).Mul(cost.Int64(n * n * n).Quo(cost.Int64(6)))
	return bitCost(r.q, nmul, s)
}

// UOVAttack is the Kipnis-Shamir oil-and-vinegar attack on the last layer,
// q^(n-2o-1)·o⁴.
func (r *Rainbow) UOVAttack(s Setting) int {
	o := r.oil(r.NLayers() - 1)
	nmul := r.guess(r.NVariables()-2*o-1, s).MulInt64(int64(o * o * o * o))
	return bitCost(r.q, nmul, s)
}

// Direct solves the public system with HybridF5 on m equations in m
// variables.
func (r *Rainbow) Direct(s Setting) (int, error) {
	opts := []algorithms.Option{algorithms.WithField(r.q)}
	if s.Quantum {
		opts = append(opts, algorithms.WithQuantum())
	}
	e, err := algorithms.NewHybridF5(r.m, r.m, opts...)
	if err != nil {
		return 0, fmt.Errorf("rainbow: direct attack: %w", err)
	}
	return bitCost(r.q, e.TimeComplexity(), s), nil
}

// MinRank is the support minors MinRank attack on the first two layers.
// Quantum has no effect.
func (r *Rainbow) MinRank(s Setting) (int, error) {
	if r.NLayers() < 2 {
		return 0, fmt.Errorf("rainbow: minrank: %w: needs two layers", ErrUnsupported)
	}
	K := r.oil(1) + 1
	rank := r.v[0] + r.oil(0)
	n := r.NVariables()
	return bitCost(r.q, supportMinors(K, rank, n, n), s), nil
}

// BandSeparation is the Rainbow Band Separation attack. The bilinear system
// in the x and y variables is solved at the first bidegree (a, b) whose
// series coefficient is negative.
func (r *Rainbow) BandSeparation(s Setting) (int, error) {
	if r.NLayers() < 2 {
		return 0, fmt.Errorf("rainbow: band separation: %w: needs two layers", ErrUnsupported)
	}
	nx := r.v[0] + r.oil(0)
	ny := r.oil(1)
	mx := r.oil(0) + r.oil(1)
	mxy := r.NVariables() - 1

	const P = rbsPrecision
	a := series.Factor(-1, 2, mx, P).Mul(series.Factor(-1, 1, -(nx + 1), P))
	b := series.Factor(-1, 1, -(ny + 1), P)
	c := series.Factor(-1, 1, mxy, P)
	g := series.InX(a, P).Mul(series.InY(b, P)).Mul(series.InXY(c, P))

	var best cost.Cost
	found := false
	for deg := 1; deg < P && !found; deg++ {
		for i := 0; i <= deg; i++ {
			j := deg - i
			if g.Coefficient(i, j).Sign() >= 0 {
				continue
			}
			monomials := new(big.Int).Mul(series.Binomial(i+nx, nx), series.Binomial(j+ny, ny))
			nmul := cost.Int(monomials).Pow(2).MulInt64(int64(3 * (nx + 1) * (ny + 1)))
			if !found || nmul.Less(best) {
				best, found = nmul, true
			}
		}
	}
	if !found {
		best = cost.PowInt(2, 512)
	}
	return bitCost(r.q, best, s), nil
}

// SecurityLevel is the cheapest attack under s.
func (r *Rainbow) SecurityLevel(s Setting) (int, error) {
	direct, err := r.Direct(s)
	if err != nil {
		return 0, err
	}
	level := min(direct, r.HighRank(s), r.UOVAttack(s))
	if r.NLayers() < 2 {
		return level, nil
	}
	minrank, err := r.MinRank(s)
	if err != nil {
		return 0, err
	}
	rbs, err := r.BandSeparation(s)
	if err != nil {
		return 0, err
	}
	return min(level, minrank, rbs), nil
}

func (r *Rainbow) String() string {
	return fmt.Sprintf("Rainbow signature over GF(%d) with %d variables and %d polynomials", r.q, r.NVariables(), r.m)
}
