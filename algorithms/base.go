package algorithms

import (
	"fmt"

	"mq-estimator/cost"
)

// Estimator is the contract every algorithm estimator implements.
type Estimator interface {
	// Name is the algorithm identifier used in reports.
	Name() string
	Problem() Problem
	NVariablesReduced() int
	NPolynomialsReduced() int
	// TimeComplexity is the cost at the optimal parameters. It is +Inf when
	// no admissible parameter exists.
	TimeComplexity() cost.Cost
	// TimeComplexityAt evaluates the cost model at explicit parameters.
	// Missing parameters default to their optimum. Nothing is cached.
	TimeComplexityAt(Parameters) (cost.Cost, error)
	MemoryComplexity() cost.Cost
	// TildeOTime is the leading asymptotic term of the time complexity.
	TildeOTime() cost.Cost
	OptimalParameters() Parameters
	HasOptimalParameters() bool
}

// parameterSpec declares one optimised parameter of estimator type E.
type parameterSpec[E any] struct {
	name    string
	compute func(E) any
}

// optimum memoises the declared parameters of one estimator instance. A
// cell is computed on first access and never recomputed; absent optima are
// stored as nil.
type optimum struct {
	names   []string
	compute []func() any
	cache   map[string]any
}

func bindParameters[E any](e E, specs []parameterSpec[E]) optimum {
	o := optimum{cache: make(map[string]any, len(specs))}
	for _, s := range specs {
		s := s
		o.names = append(o.names, s.name)
		o.compute = append(o.compute, func() any { return s.compute(e) })
	}
	return o
}

func (o *optimum) value(name string) any {
	if v, ok := o.cache[name]; ok {
		return v
	}
	for i, n := range o.names {
		if n == name {
			v := o.compute[i]()
			o.cache[name] = v
			return v
		}
	}
	panic(fmt.Sprintf("algorithms: no optimal parameter %q", name))
}

func (o *optimum) intValue(name string) (int, bool) {
	v, ok := o.value(name).(int)
	return v, ok
}

func (o *optimum) all() Parameters {
	out := make(Parameters, len(o.names))
	for i, n := range o.names {
		out[i] = Parameter{Name: n, Value: o.value(n)}
	}
	return out
}

// base carries the state shared by every estimator: the problem, its
// reduced size, the parameter memo and the cached complexities.
type base struct {
	name     string
	problem  Problem
	nReduced int
	mReduced int
	optimum  optimum

	timeCache   *cost.Cost
	memoryCache *cost.Cost
}

func newBase(name string, p Problem, reduce bool) (base, error) {
	if err := p.Validate(); err != nil {
		return base{}, fmt.Errorf("%s: %w", name, err)
	}
	b := base{name: name, problem: p, nReduced: p.N, mReduced: p.M}
	if reduce {
		b.nReduced, b.mReduced = p.ReducedSize()
	}
	return b, nil
}

func (b *base) Name() string             { return b.name }
func (b *base) Problem() Problem         { return b.problem }
func (b *base) NVariablesReduced() int   { return b.nReduced }
func (b *base) NPolynomialsReduced() int { return b.mReduced }

// OptimalParameters computes every declared parameter.
func (b *base) OptimalParameters() Parameters { return b.optimum.all() }

// HasOptimalParameters reports whether the estimator declares parameters.
func (b *base) HasOptimalParameters() bool { return len(b.optimum.names) > 0 }

func (b *base) cachedTime(f func() cost.Cost) cost.Cost {
	if b.timeCache == nil {
		c := f()
		b.timeCache = &c
	}
	return *b.timeCache
}

func (b *base) cachedMemory(f func() cost.Cost) cost.Cost {
	if b.memoryCache == nil {
		c := f()
		b.memoryCache = &c
	}
	return *b.memoryCache
}

func (b *base) String() string {
	return fmt.Sprintf("%s estimator (%s)", b.name, b.problem)
}

// errorf prefixes an error with the estimator name.
func (b *base) errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", b.name, sentinel, fmt.Sprintf(format, args...))
}

// requireField returns ErrFieldRequired when q is absent.
func requireField(name string, p Problem) error {
	if p.Q == 0 {
		return fmt.Errorf("%s: %w", name, ErrFieldRequired)
	}
	return nil
}
