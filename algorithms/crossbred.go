package algorithms

import (
	"fmt"
	"math"
	"math/big"
	"sort"

	"mq-estimator/cost"
	"mq-estimator/degree"
	"mq-estimator/series"
)

// Crossbred estimates the Joux-Vitse crossbred algorithm. A degree-D
// Macaulay matrix is preprocessed into degree-d equations in k variables,
// which are then linearised for every guess of the other n-k.
type Crossbred struct {
	base
	w    float64
	maxD int
	h    int

	best *crossbredCandidate
}

type crossbredCandidate struct {
	k, D, d int
	time    cost.Cost
	found   bool
}

// AdmissibleParameter is one (k, D, d) triple satisfying the crossbred
// sign condition.
type AdmissibleParameter struct {
	K, D, Sub int
}

var crossbredParameters = []parameterSpec[*Crossbred]{
	{name: "k", compute: func(e *Crossbred) any { return e.searchField(func(c *crossbredCandidate) int { return c.k }) }},
	{name: "D", compute: func(e *Crossbred) any { return e.searchField(func(c *crossbredCandidate) int { return c.D }) }},
	{name: "d", compute: func(e *Crossbred) any { return e.searchField(func(c *crossbredCandidate) int { return c.d }) }},
}

// NewCrossbred returns a Crossbred estimator. The field is required; D is
// bounded by WithMaxDegree (default 10).
func NewCrossbred(n, m int, opts ...Option) (*Crossbred, error) {
	c := newConfig(opts)
	w := c.linearAlgebraConstant(2)
	p := Problem{N: n, M: m, Q: c.q, W: w}
	if err := requireField("Crossbred", p); err != nil {
		return nil, err
	}
	b, err := newBase("Crossbred", p, true)
	if err != nil {
		return nil, err
	}
	if c.maxD < 2 {
		return nil, b.errorf(ErrInvalidParameter, "max_D must be >= 2")
	}
	if c.h < 0 {
		return nil, b.errorf(ErrInvalidParameter, "h must be >= 0")
	}
	e := &Crossbred{base: b, w: w, maxD: c.maxD, h: c.h}
	e.optimum = bindParameters(e, crossbredParameters)
	return e, nil
}

// MaxD returns the upper bound on D.
func (e *Crossbred) MaxD() int { return e.maxD }

// K returns the optimal number of variables kept after preprocessing.
func (e *Crossbred) K() (int, bool) { return e.optimum.intValue("k") }

// D returns the optimal degree of the initial Macaulay matrix.
func (e *Crossbred) D() (int, bool) { return e.optimum.intValue("D") }

// SubDegree returns the optimal degree d of the linearised system.
func (e *Crossbred) SubDegree() (int, bool) { return e.optimum.intValue("d") }

func (e *Crossbred) searchField(f func(*crossbredCandidate) int) any {
	c := e.search()
	if !c.found {
		return nil
	}
	return f(c)
}

// NColumnsPreprocessing counts the columns of the preprocessing matrix:
// monomials of degree in (d, D) in the first k variables times monomials
// completing them below D in the remaining n-k.
func (e *Crossbred) NColumnsPreprocessing(k, D, d int) (*big.Int, error) {
	if d >= D {
		return nil, e.errorf(ErrOutOfRange, "d must be smaller than D")
	}
	q := e.problem.Q
	inK := series.NewNMonomialSeries(k, q)
	rest := series.NewNMonomialSeries(e.nReduced-k, q)
	total := new(big.Int)
	for dk := d + 1; dk < D; dk++ {
		total.Add(total, new(big.Int).Mul(inK.OfDegree(dk), rest.UpToDegree(D-dk-1)))
	}
	return total, nil
}

// NColumnsLinearization counts the monomials of degree <= d in k variables.
func (e *Crossbred) NColumnsLinearization(k, d int) *big.Int {
	return series.NewNMonomialSeries(k, e.problem.Q).UpToDegree(d)
}

// admissibleSeries builds
//
//	(H_k(xy)·N_{n-k}(x) - H_n(x) - H_k(y)) / ((1-x)(1-y))
//
// truncated at total degree maxD+1, H the Hilbert series of the system over
// k or n variables and N the monomial series of the remaining variables.
func (e *Crossbred) admissibleSeries(k int) *series.Bivariate {
	prec := e.maxD + 1
	q := e.problem.Q
	degrees := degree.Quadratic(e.mReduced)
	hk := series.Hilbert(k, degrees, q, prec)
	hn := series.Hilbert(e.nReduced, degrees, q, prec)
	nk := series.NewNMonomialSeries(e.nReduced-k, q).Series(prec)
	s := series.InXY(hk, prec).Mul(series.InX(nk, prec))
	s = s.Sub(series.InX(hn, prec)).Sub(series.InY(hk, prec))
	return s.DivOneMinusXY()
}

// AdmissibleParameters lists the (D, d) pairs for k, ordered by D+d and
// then by decreasing D.
func (e *Crossbred) AdmissibleParameters(k int) []AdmissibleParameter {
	var out []AdmissibleParameter
	for _, t := range e.admissibleSeries(k).Terms() {
		D, d := t.X, t.Y
		if t.Coeff.Sign() >= 0 && D > d && d >= 1 && D <= e.maxD {
			out = append(out, AdmissibleParameter{K: k, D: D, Sub: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := out[i].D+out[i].Sub, out[j].D+out[j].Sub
		if si != sj {
			return si < sj
		}
		return out[i].D > out[j].D
	})
	return out
}

// cost without the 2^h factor.
func (e *Crossbred) rawTime(k, D, d int) (cost.Cost, error) {
	np, err := e.NColumnsPreprocessing(k, D, d)
	if err != nil {
		return cost.Cost{}, err
	}
	nl := e.NColumnsLinearization(k, d)
	npc := cost.Int(np)
	l := npc.Log2()
	if np.Cmp(big.NewInt(1)) <= 0 || l <= 1 {
		return cost.Inf(), nil
	}
	pre := npc.Pow(2).MulFloat(l).MulFloat(math.Log2(l))
	q := int64(e.problem.Q)
	lin := cost.PowInt(q, e.nReduced-k).MulInt64(int64(e.mReduced)).Mul(cost.Int(nl).Pow(e.w))
	return pre.Add(lin), nil
}

func (e *Crossbred) search() *crossbredCandidate {
	if e.best != nil {
		return e.best
	}
	best := crossbredCandidate{time: cost.Inf()}
	for k := 1; k < e.nReduced; k++ {
		for _, a := range e.AdmissibleParameters(k) {
			t, err := e.rawTime(a.K, a.D, a.Sub)
			if err != nil {
				continue
			}
			if t.Less(best.time) {
				best = crossbredCandidate{k: a.K, D: a.D, d: a.Sub, time: t, found: true}
			}
		}
	}
	e.best = &best
	return e.best
}

func (e *Crossbred) hybridization() cost.Cost { return cost.PowInt(2, e.h) }

// TimeComplexity is np²·log np·log log np + m·q^(n-k)·nl^w at the optimum,
// times 2^h.
func (e *Crossbred) TimeComplexity() cost.Cost {
	return e.cachedTime(func() cost.Cost {
		e.OptimalParameters()
		return e.search().time.Mul(e.hybridization())
	})
}

// TimeComplexityAt evaluates the cost at explicit k, D and d.
func (e *Crossbred) TimeComplexityAt(ps Parameters) (cost.Cost, error) {
	if err := checkNames(ps, "k", "D", "d"); err != nil {
		return cost.Cost{}, fmt.Errorf("Crossbred: %w", err)
	}
	best := e.search()
	var vals [3]int
	for i, name := range []string{"k", "D", "d"} {
		def := [3]int{best.k, best.D, best.d}[i]
		v, err := lookupInt(ps, name, def)
		if err != nil {
			return cost.Cost{}, fmt.Errorf("Crossbred: %w", err)
		}
		vals[i] = v
	}
	k, D, d := vals[0], vals[1], vals[2]
	if k < 1 || k >= e.nReduced {
		return cost.Cost{}, e.errorf(ErrOutOfRange, "k must be in the range 1 <= k < %d", e.nReduced)
	}
	if d < 1 || D <= d || D > e.maxD {
		return cost.Cost{}, e.errorf(ErrOutOfRange, "D and d must satisfy 1 <= d < D <= %d", e.maxD)
	}
	t, err := e.rawTime(k, D, d)
	if err != nil {
		return cost.Cost{}, err
	}
	return t.Mul(e.hybridization()), nil
}

// MemoryComplexity is np² + nl².
func (e *Crossbred) MemoryComplexity() cost.Cost {
	return e.cachedMemory(func() cost.Cost {
		best := e.search()
		if !best.found {
			return cost.Inf()
		}
		np, _ := e.NColumnsPreprocessing(best.k, best.D, best.d)
		nl := e.NColumnsLinearization(best.k, best.d)
		return cost.Int(np).Pow(2).Add(cost.Int(nl).Pow(2))
	})
}

// TildeOTime is (np² + q^(n-k)·nl^w)·2^h.
func (e *Crossbred) TildeOTime() cost.Cost {
	best := e.search()
	if !best.found {
		return cost.Inf()
	}
	np, _ := e.NColumnsPreprocessing(best.k, best.D, best.d)
	nl := e.NColumnsLinearization(best.k, best.d)
	lin := cost.PowInt(int64(e.problem.Q), e.nReduced-best.k).Mul(cost.Int(nl).Pow(e.w))
	return cost.Int(np).Pow(2).Add(lin).Mul(e.hybridization())
}
