// Package estimator aggregates every algorithm estimator applicable to one
// MQ problem, tabulates their complexities and picks the fastest.
package estimator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"mq-estimator/algorithms"
	"mq-estimator/cost"
	"mq-estimator/prof"
)

// ErrUnknownAlgorithm is returned when an excluded name is not registered.
var ErrUnknownAlgorithm = errors.New("estimator: unknown algorithm")

// Option configures an MQEstimator.
type Option func(*settings)

type settings struct {
	q          int
	w          float64
	nsolutions int
	excluded   []string
	logger     *slog.Logger
	recorder   *prof.Recorder
}

// WithField sets the order of the finite field.
func WithField(q int) Option { return func(s *settings) { s.q = q } }

// WithLinearAlgebraConstant sets w (default 2).
func WithLinearAlgebraConstant(w float64) Option { return func(s *settings) { s.w = w } }

// WithSolutions sets the expected number of solutions (default 1).
func WithSolutions(k int) Option { return func(s *settings) { s.nsolutions = k } }

// WithExcluded leaves the named algorithms out.
func WithExcluded(names ...string) Option {
	return func(s *settings) { s.excluded = append(s.excluded, names...) }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option { return func(s *settings) { s.logger = l } }

// WithRecorder records the time spent evaluating each algorithm.
func WithRecorder(r *prof.Recorder) Option { return func(s *settings) { s.recorder = r } }

// MQEstimator holds one estimator per applicable algorithm, in registration
// order.
type MQEstimator struct {
	problem    algorithms.Problem
	nsolutions int
	algorithms []algorithms.Estimator
	logger     *slog.Logger
	recorder   *prof.Recorder
}

// New builds every registered estimator that accepts (n, m) and the
// options. Estimators whose construction fails, or that are bound to a field
// other than the requested one, are skipped.
func New(n, m int, opts ...Option) (*MQEstimator, error) {
	s := &settings{w: 2, nsolutions: 1}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p := algorithms.Problem{N: n, M: m, Q: s.q, W: s.w}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("estimator: %w", err)
	}
	excluded := make(map[string]bool, len(s.excluded))
	for _, name := range s.excluded {
		if _, ok := algorithms.Lookup(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
		}
		excluded[name] = true
	}

	algOpts := []algorithms.Option{
		algorithms.WithLinearAlgebraConstant(s.w),
		algorithms.WithSolutions(s.nsolutions),
	}
	if s.q != 0 {
		algOpts = append(algOpts, algorithms.WithField(s.q))
	}

	e := &MQEstimator{problem: p, nsolutions: s.nsolutions, logger: s.logger, recorder: s.recorder}
	for _, r := range algorithms.Registered() {
		if excluded[r.Name] {
			continue
		}
		alg, err := r.New(n, m, algOpts...)
		if err != nil {
			e.logger.Debug("algorithm skipped",
				slog.String("algorithm", r.Name),
				slog.String("error", err.Error()),
			)
			continue
		}
		if q := alg.Problem().Q; q != 0 && q != s.q {
			e.logger.Debug("algorithm skipped",
				slog.String("algorithm", r.Name),
				slog.Int("field", q),
			)
			continue
		}
		e.algorithms = append(e.algorithms, alg)
	}
	e.logger.Debug("estimator ready",
		slog.String("problem", p.String()),
		slog.Int("algorithms", len(e.algorithms)),
	)
	return e, nil
}

// Problem returns the shared problem.
func (e *MQEstimator) Problem() algorithms.Problem { return e.problem }

// Algorithms returns the included estimators.
func (e *MQEstimator) Algorithms() []algorithms.Estimator {
	return append([]algorithms.Estimator(nil), e.algorithms...)
}

// Names returns the names of the included estimators.
func (e *MQEstimator) Names() []string {
	out := make([]string, len(e.algorithms))
	for i, a := range e.algorithms {
		out[i] = a.Name()
	}
	return out
}

// Len returns the number of included estimators.
func (e *MQEstimator) Len() int { return len(e.algorithms) }

// Row is one line of the complexity report. Time and Memory are log2 of
// the cost; +Inf marks an infeasible algorithm.
type Row struct {
	Name       string  `json:"algorithm"`
	Time       float64 `json:"time"`
	Memory     float64 `json:"memory"`
	Parameters string  `json:"parameters"`
}

func (e *MQEstimator) timeOf(a algorithms.Estimator, useTilde bool) cost.Cost {
	defer e.recorder.Track(time.Now(), a.Name())
	if useTilde {
		return a.TildeOTime()
	}
	return a.TimeComplexity()
}

// Table reports every included estimator in registration order.
func (e *MQEstimator) Table(useTilde bool) []Row {
	rows := make([]Row, 0, len(e.algorithms))
	for _, a := range e.algorithms {
		start := time.Now()
		t := e.timeOf(a, useTilde)
		row := Row{
			Name:       a.Name(),
			Time:       t.Log2(),
			Memory:     a.MemoryComplexity().Log2(),
			Parameters: a.OptimalParameters().String(),
		}
		e.logger.Debug("algorithm evaluated",
			slog.String("algorithm", row.Name),
			slog.Float64("time", row.Time),
			slog.Duration("duration", time.Since(start)),
		)
		rows = append(rows, row)
	}
	return rows
}

// Fastest returns the estimator with the smallest time complexity, compared
// exactly. The first of equal estimators wins and nil is returned when none
// is included.
func (e *MQEstimator) Fastest(useTilde bool) algorithms.Estimator {
	var (
		best     algorithms.Estimator
		bestCost cost.Cost
	)
	for _, a := range e.algorithms {
		c := e.timeOf(a, useTilde)
		if best == nil || c.Less(bestCost) {
			best, bestCost = a, c
		}
	}
	return best
}

func (e *MQEstimator) String() string {
	return fmt.Sprintf("MQ Estimator for system with %d variables and %d equations", e.problem.N, e.problem.M)
}
