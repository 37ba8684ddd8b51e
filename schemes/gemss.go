package schemes

import (
	"errors"
	"fmt"
	"math"

	"mq-estimator/algorithms"
	"mq-estimator/cost"
	"mq-estimator/series"
)

// GeMSS is an HFEv- signature scheme over GF(2): a secret HFE polynomial
// of degree D over GF(2^n), with delta equations removed and v vinegar
// variables added.
type GeMSS struct {
	D     int
	N     int
	Delta int
	V     int
}

// NewGeMSS validates and returns an HFEv- parameter set.
func NewGeMSS(D, n, delta, v int) (*GeMSS, error) {
	switch {
	case D < 2:
		return nil, fmt.Errorf("gemss: %w: D must be >= 2", algorithms.ErrInvalidParameter)
	case n < 2:
		return nil, fmt.Errorf("gemss: %w: n must be >= 2", algorithms.ErrInvalidParameter)
	case delta < 0 || delta >= n-1:
		return nil, fmt.Errorf("gemss: %w: delta must be in the range 0 <= delta < n-1", algorithms.ErrInvalidParameter)
	case v < 1:
		return nil, fmt.Errorf("gemss: %w: v must be >= 1", algorithms.ErrInvalidParameter)
	}
	return &GeMSS{D: D, N: n, Delta: delta, V: v}, nil
}

func mustGeMSS(D, n, delta, v int) *GeMSS {
	g, err := NewGeMSS(D, n, delta, v)
	if err != nil {
		panic(err)
	}
	return g
}

func GeMSS128() *GeMSS     { return mustGeMSS(513, 174, 12, 12) }
func GeMSS192() *GeMSS     { return mustGeMSS(513, 265, 22, 20) }
func GeMSS256() *GeMSS     { return mustGeMSS(513, 354, 30, 33) }
func BlueGeMSS128() *GeMSS { return mustGeMSS(129, 175, 13, 14) }
func BlueGeMSS192() *GeMSS { return mustGeMSS(129, 265, 22, 23) }
func BlueGeMSS256() *GeMSS { return mustGeMSS(129, 358, 34, 32) }
func RedGeMSS128() *GeMSS  { return mustGeMSS(17, 177, 15, 15) }
func RedGeMSS192() *GeMSS  { return mustGeMSS(17, 266, 23, 25) }
func RedGeMSS256() *GeMSS  { return mustGeMSS(17, 358, 34, 35) }

// NPolynomials is n - delta.
func (g *GeMSS) NPolynomials() int { return g.N - g.Delta }

// NVariables is n + v.
func (g *GeMSS) NVariables() int { return g.N + g.V }

// ExhaustiveSearch is 4·log2(m)·2^m.
func (g *GeMSS) ExhaustiveSearch() int {
	m := g.NPolynomials()
	return floorLog2(cost.Float(4 * math.Log2(float64(m))).Mul(cost.PowInt(2, m)))
}

// QuantumExhaustiveSearchGates counts the gates of Grover search on the
// public system. The variant with fewer qubits doubles the gate count.
func (g *GeMSS) QuantumExhaustiveSearchGates(lessQubits bool) int {
	n := int64(g.NPolynomials())
	m := n
	gates := cost.Exp2(float64(n+1) / 2).MulInt64(2*(m+1)*((n+1)*(n+1)+2*(n+1)) + 1)
	if lessQubits {
		gates = gates.MulInt64(2)
	}
	return floorLog2(gates)
}

// QuantumExhaustiveSearchQubits counts the qubits of the same search.
func (g *GeMSS) QuantumExhaustiveSearchQubits(lessQubits bool) int {
	n := g.NPolynomials()
	m := n
	if lessQubits {
		return 3 + (n + 1) + ceilLog2(m+1)
	}
	return (m + 1) + (n + 1) + 2
}

func (g *GeMSS) ApproximationAlgorithm() int {
	return int(math.Floor(0.8765 * float64(g.NPolynomials())))
}

// BooleanSolve is the asymptotic Boolean Solve bound 2^(0.792m) over GF(2).
func (g *GeMSS) BooleanSolve() int {
	return int(math.Floor(0.792 * float64(g.NPolynomials())))
}

func (g *GeMSS) QuantumBooleanSolve() int {
	return int(math.Floor(0.462 * float64(g.NPolynomials())))
}

// MinRankKipnisShamir is n^(2(ceil(log2 D)+v+delta+1)).
func (g *GeMSS) MinRankKipnisShamir() int {
	return floorLog2(cost.PowInt(int64(g.N), 2*(ceilLog2(g.D)+g.V+g.Delta+1)))
}

// DegreeOfRegularity is the HFEv- bound
// floor((floor(log2(D-1)) + 1 + delta + v + 7) / 3).
func (g *GeMSS) DegreeOfRegularity() int {
	return (ceilLog2(g.D) + g.Delta + g.V + 7) / 3
}

// GrobnerBases is C(m, dreg)².
func (g *GeMSS) GrobnerBases() int {
	return floorLog2(cost.Int(series.Binomial(g.NPolynomials(), g.DegreeOfRegularity())).Pow(2))
}

// MinRankWithProjections minimises over the number c of projected vinegar
// variables.
func (g *GeMSS) MinRankWithProjections() int {
	r := ceilLog2(g.D)
	n, v, d := g.N, g.V, g.Delta
	pairs := cost.Int(series.Binomial(n-d, 2))
	best := cost.Inf()
	for c := 1; c <= v; c++ {
		e := float64(c)*(float64(r+d)+math.Sqrt(float64(n-d))) - float64(c*(c+1)/2)
		cc := cost.Int(series.Binomial(n+v+r-c, d+v+r-c)).Pow(2).Mul(pairs).Mul(cost.Exp2(e))
		if cc.Less(best) {
			best = cc
		}
	}
	return floorLog2(best)
}

// MinRankWithSupportMinors runs the support minors modelling with target
// rank ceil(log2 D)+delta+v+1.
func (g *GeMSS) MinRankWithSupportMinors() int {
	r := ceilLog2(g.D) + g.Delta + g.V + 1
	return floorLog2(supportMinors(g.NPolynomials(), r, g.NVariables(), g.NVariables()))
}

// Distinguishing is the attack that guesses k variables until the fixed
// system becomes indistinguishable from a random one, costed
// 3·C(n+v-k, d)²·C(n+v-k, 2)·2^(n-k), with the guess halved quantumly.
func (g *GeMSS) Distinguishing(s Setting) int {
	m := g.NPolynomials()
	dreg := func(np int) (int, error) {
		return series.FirstNonPositiveGrowing(2*m, func(prec int) *series.Series {
			return series.Factor(1, 1, np, prec).Mul(series.Factor(1, 2, -m, prec))
		})
	}
	d := g.DegreeOfRegularity()
	nv := g.N + g.V
	kbar := 0
	for kbar = nv; kbar > 0; kbar-- {
		r, err := dreg(nv - kbar)
		if errors.Is(err, series.ErrNoNonPositive) || (err == nil && d <= r) {
			break
		}
	}
	if kbar == 0 {
		kbar = 1
	}
	best := cost.PowInt(2, 512)
	for k := 0; k < kbar; k++ {
		e := float64(g.N - k)
		if s.Quantum {
			e /= 2
		}
		c := cost.Int(series.Binomial(nv-k, d)).Pow(2).MulInt(series.Binomial(nv-k, 2)).MulInt64(3).Mul(cost.Exp2(e))
		if c.Less(best) {
			best = c
		}
	}
	return floorLog2(best)
}

// SecurityLevel is the cheapest attack counted for s. The distinguishing
// attack is reported but not counted.
func (g *GeMSS) SecurityLevel(s Setting) int {
	if s.Quantum {
		return min(g.QuantumBooleanSolve(), g.QuantumExhaustiveSearchGates(false))
	}
	return min(
		g.ExhaustiveSearch(),
		g.ApproximationAlgorithm(),
		g.BooleanSolve(),
		g.MinRankKipnisShamir(),
		g.MinRankWithProjections(),
		g.MinRankWithSupportMinors(),
		g.GrobnerBases(),
	)
}

func (g *GeMSS) String() string {
	return fmt.Sprintf("GeMSS signature with D=%d, n=%d, delta=%d, v=%d", g.D, g.N, g.Delta, g.V)
}
