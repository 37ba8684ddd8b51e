package algorithms

// Option configures an estimator at construction time.
type Option func(*config)

type config struct {
	q          int
	w          float64
	wSet       bool
	nsolutions int
	maxD       int
	h          int
	degrees    []int
	quantum    bool
}

func newConfig(opts []Option) *config {
	c := &config{nsolutions: 1, maxD: 10}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithField sets the order q of the finite field.
func WithField(q int) Option {
	return func(c *config) { c.q = q }
}

// WithLinearAlgebraConstant sets w, the exponent of matrix multiplication.
func WithLinearAlgebraConstant(w float64) Option {
	return func(c *config) {
		c.w = w
		c.wSet = true
	}
}

// WithSolutions sets the expected number of solutions of the system.
func WithSolutions(k int) Option {
	return func(c *config) { c.nsolutions = k }
}

// WithMaxDegree bounds the Macaulay degree D searched by Crossbred.
func WithMaxDegree(d int) Option {
	return func(c *config) { c.maxD = d }
}

// WithHybridization folds h externally guessed bits into the time
// complexity.
func WithHybridization(h int) Option {
	return func(c *config) { c.h = h }
}

// WithDegrees sets the degree of every polynomial. The default is quadratic.
func WithDegrees(d ...int) Option {
	return func(c *config) { c.degrees = append([]int(nil), d...) }
}

// WithQuantum makes HybridF5 use Grover search for the guessed variables.
func WithQuantum() Option {
	return func(c *config) { c.quantum = true }
}

// linearAlgebraConstant returns w or def when unset.
func (c *config) linearAlgebraConstant(def float64) float64 {
	if c.wSet {
		return c.w
	}
	return def
}

// polynomialDegrees returns the configured degrees or m quadratics.
func (c *config) polynomialDegrees(m int) []int {
	if c.degrees != nil {
		return c.degrees
	}
	out := make([]int, m)
	for i := range out {
		out[i] = 2
	}
	return out
}
