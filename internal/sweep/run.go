package sweep

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"mq-estimator/estimator"
	"mq-estimator/prof"
)

// Result is the report of one grid point. Err is set when the estimator
// rejected the point.
type Result struct {
	Point
	Fastest string
	Rows    []estimator.Row
	Digest  string
	Err     string
}

// Runner evaluates a sweep with a bounded number of workers.
type Runner struct {
	cfg      Config
	logger   *slog.Logger
	recorder *prof.Recorder
	progress io.Writer
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

func WithLogger(l *slog.Logger) RunnerOption        { return func(r *Runner) { r.logger = l } }
func WithRecorder(rec *prof.Recorder) RunnerOption { return func(r *Runner) { r.recorder = rec } }

// WithProgress draws a progress bar on w.
func WithProgress(w io.Writer) RunnerOption { return func(r *Runner) { r.progress = w } }

func NewRunner(cfg Config, opts ...RunnerOption) *Runner {
	r := &Runner{cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run evaluates every grid point. Results keep grid order. Only a
// cancelled context or an invalid grid aborts the sweep.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	points, err := r.cfg.Grid()
	if err != nil {
		return nil, err
	}
	workers := r.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	r.logger.Info("sweep started", slog.Int("points", len(points)), slog.Int("workers", workers))
	start := time.Now()

	results := make([]Result, len(points))
	bar := newProgressBar(r.progress, len(points))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range points {
		i, p := i, p
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = r.evaluate(p)
			bar.Increment()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	r.logger.Info("sweep finished", slog.Int("points", len(points)), slog.Duration("elapsed", time.Since(start)))
	return results, nil
}

func (r *Runner) evaluate(p Point) Result {
	res := Result{Point: p}
	opts := []estimator.Option{
		estimator.WithLinearAlgebraConstant(r.cfg.W),
		estimator.WithSolutions(r.cfg.NSolutions),
		estimator.WithExcluded(r.cfg.Exclude...),
		estimator.WithLogger(r.logger),
		estimator.WithRecorder(r.recorder),
	}
	if p.Q != 0 {
		opts = append(opts, estimator.WithField(p.Q))
	}
	est, err := estimator.New(p.N, p.M, opts...)
	if err != nil {
		r.logger.Warn("point rejected", slog.String("point", p.String()), slog.String("error", err.Error()))
		res.Err = err.Error()
		return res
	}
	res.Rows = est.Table(r.cfg.UseTilde)
	if f := est.Fastest(r.cfg.UseTilde); f != nil {
		res.Fastest = f.Name()
	}
	res.Digest = hex.EncodeToString(estimator.Digest(res.Rows))
	return res
}
