package algorithms

import (
	"fmt"
	"math"
	"math/big"

	"mq-estimator/cost"
	"mq-estimator/internal/field"
	"mq-estimator/series"
)

// Lokshtanov estimates the polynomial-method algorithm of Lokshtanov,
// Paturi, Tamaki, Williams and Yu over GF(q).
type Lokshtanov struct {
	base
	order field.Order
	h     int

	best *ratCandidate
}

var lokshtanovParameters = []parameterSpec[*Lokshtanov]{
	{name: "δ", compute: func(e *Lokshtanov) any { return ratOrNil(e.search().r) }},
}

// NewLokshtanov returns the estimator. The field is required.
func NewLokshtanov(n, m int, opts ...Option) (*Lokshtanov, error) {
	c := newConfig(opts)
	p := Problem{N: n, M: m, Q: c.q}
	if err := requireField("Lokshtanov", p); err != nil {
		return nil, err
	}
	b, err := newBase("Lokshtanov", p, true)
	if err != nil {
		return nil, err
	}
	if c.h < 0 {
		return nil, b.errorf(ErrInvalidParameter, "h must be >= 0")
	}
	order, err := field.New(c.q)
	if err != nil {
		return nil, fmt.Errorf("Lokshtanov: %w", err)
	}
	e := &Lokshtanov{base: b, order: order, h: c.h}
	e.optimum = bindParameters(e, lokshtanovParameters)
	return e, nil
}

// Delta returns the optimal δ.
func (e *Lokshtanov) Delta() (*big.Rat, bool) {
	r, ok := e.optimum.value("δ").(*big.Rat)
	return r, ok
}

type lokshtanovKey struct {
	n     int
	delta string
}

// lokshtanovC is the cost C(n, δ) = n·(q^(n-np) + M·q^np·n^(6q)) of one
// level, np = ⌊δ·n⌋ and M the number of monomials of degree at most
// 2(q-1)(np+2) in n-np variables.
type lokshtanovC struct {
	q     int
	delta *big.Rat
	memo  map[lokshtanovKey]*big.Int
}

func (c *lokshtanovC) eval(n int) *big.Int {
	key := lokshtanovKey{n: n, delta: c.delta.RatString()}
	if v, ok := c.memo[key]; ok {
		return v
	}
	np := floorMul(c.delta, n)
	monomials := lokshtanovMonomials(n, np, c.q)
	q := big.NewInt(int64(c.q))
	nn := big.NewInt(int64(n))

	r := new(big.Int).Exp(q, big.NewInt(int64(np)), nil)
	r.Mul(r, monomials)
	r.Mul(r, new(big.Int).Exp(nn, big.NewInt(int64(6*c.q)), nil))
	r.Add(r, new(big.Int).Exp(q, big.NewInt(int64(n-np)), nil))
	r.Mul(r, nn)
	c.memo[key] = r
	return r
}

func lokshtanovMonomials(n, np, q int) *big.Int {
	deg := 2 * (q - 1) * (np + 2)
	return series.NewNMonomialSeries(n-np, q).UpToDegree(deg)
}

func (e *Lokshtanov) hybridization() cost.Cost { return cost.PowInt(2, e.h) }

func (e *Lokshtanov) rawTime(delta *big.Rat) cost.Cost {
	n, q := e.nReduced, e.problem.Q
	c := &lokshtanovC{q: q, delta: delta, memo: map[lokshtanovKey]*big.Int{}}
	sum := new(big.Int)
	for i := 1; i < n; i++ {
		sum.Add(sum, c.eval(n-i))
	}
	return cost.Int(sum).MulInt64(int64(100 * (q - 1))).MulFloat(math.Log2(float64(q)))
}

func (e *Lokshtanov) search() *ratCandidate {
	if e.best != nil {
		return e.best
	}
	n, m := e.nReduced, e.mReduced
	best := ratCandidate{time: cost.Inf()}
	for np := 1; np < min(m-2, n); np++ {
		delta := big.NewRat(int64(np), int64(n))
		if t := e.rawTime(delta); t.Less(best.time) {
			best = ratCandidate{r: delta, time: t}
		}
	}
	e.best = &best
	return e.best
}

// TimeComplexity is 100·log2(q)·(q-1)·Σ C(n-i, δ) at the optimal δ, times
// 2^h.
func (e *Lokshtanov) TimeComplexity() cost.Cost {
	return e.cachedTime(func() cost.Cost {
		e.Delta()
		return e.search().time.Mul(e.hybridization())
	})
}

// TimeComplexityAt evaluates the cost at an explicit δ.
func (e *Lokshtanov) TimeComplexityAt(ps Parameters) (cost.Cost, error) {
	if err := checkNames(ps, "δ"); err != nil {
		return cost.Cost{}, fmt.Errorf("Lokshtanov: %w", err)
	}
	delta, err := lookupRat(ps, "δ", e.search().r)
	if err != nil {
		return cost.Cost{}, fmt.Errorf("Lokshtanov: %w", err)
	}
	if delta == nil {
		return cost.Inf(), nil
	}
	if !inOpenUnitInterval(delta) {
		return cost.Cost{}, e.errorf(ErrOutOfRange, "δ must be in the range 0 < δ < 1")
	}
	return e.rawTime(delta).Mul(e.hybridization()), nil
}

// MemoryComplexity is M + log2(n)·q^(n-np).
func (e *Lokshtanov) MemoryComplexity() cost.Cost {
	return e.cachedMemory(func() cost.Cost {
		delta := e.search().r
		if delta == nil {
			return cost.Inf()
		}
		n, q := e.nReduced, e.problem.Q
		np := floorMul(delta, n)
		table := cost.PowInt(int64(q), n-np).MulFloat(math.Log2(float64(n)))
		return cost.Int(lokshtanovMonomials(n, np, q)).Add(table)
	})
}

// TildeOTime depends on the field: q^(0.8765n) over GF(2), q^(0.9n) in
// characteristic 2, q^(0.9975n) for small characteristic and
// q^n·log2(q)/(2e·d) otherwise; all times 2^h.
func (e *Lokshtanov) TildeOTime() cost.Cost {
	const euler = 2.718
	q, n := float64(e.problem.Q), float64(e.nReduced)
	var t cost.Cost
	switch {
	case e.order.Q == 2:
		t = cost.PowFloat(q, 0.8765*n)
	case e.order.P == 2:
		t = cost.PowFloat(q, 0.9*n)
	case math.Log2(float64(e.order.P)) < 8*euler:
		t = cost.PowFloat(q, 0.9975*n)
	default:
		t = cost.PowInt(int64(e.problem.Q), e.nReduced).MulFloat(math.Log2(q) / (2 * euler * float64(e.order.Degree)))
	}
	return t.Mul(e.hybridization())
}
