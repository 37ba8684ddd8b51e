package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"mq-estimator/estimator"
	"mq-estimator/prof"
)

type problemFlags struct {
	n, m, q    int
	w          float64
	nsolutions int
	exclude    []string
	tilde      bool
}

func (f *problemFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.n, "n", "n", 0, "number of variables")
	cmd.Flags().IntVarP(&f.m, "m", "m", 0, "number of polynomials")
	cmd.Flags().IntVarP(&f.q, "q", "q", 0, "order of the finite field (0: none)")
	cmd.Flags().Float64VarP(&f.w, "w", "w", 2, "linear algebra constant, 2 <= w <= 3")
	cmd.Flags().IntVar(&f.nsolutions, "nsolutions", 1, "expected number of solutions")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude", nil, "algorithms to leave out")
	cmd.Flags().BoolVar(&f.tilde, "tilde", false, "report the leading asymptotic term only")
	_ = cmd.MarkFlagRequired("n")
	_ = cmd.MarkFlagRequired("m")
}

func (f *problemFlags) build(ro *rootOptions, rec *prof.Recorder) (*estimator.MQEstimator, error) {
	opts := []estimator.Option{
		estimator.WithLinearAlgebraConstant(f.w),
		estimator.WithSolutions(f.nsolutions),
		estimator.WithExcluded(f.exclude...),
		estimator.WithLogger(ro.logger),
		estimator.WithRecorder(rec),
	}
	if f.q != 0 {
		opts = append(opts, estimator.WithField(f.q))
	}
	return estimator.New(f.n, f.m, opts...)
}

func newTableCmd(ro *rootOptions) *cobra.Command {
	pf := &problemFlags{}
	var digest, profile bool
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Tabulate the time and memory complexity of every applicable algorithm",
		Example: `  mqestimate table -n 10 -m 15 -q 2
  mqestimate table -n 183 -m 12 -q 4 --tilde`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var rec *prof.Recorder
			if profile {
				rec = prof.NewRecorder()
			}
			est, err := pf.build(ro, rec)
			if err != nil {
				return err
			}
			rows := est.Table(pf.tilde)
			fastest := est.Fastest(pf.tilde)
			highlight := -1
			cells := make([][]string, len(rows))
			for i, r := range rows {
				cells[i] = []string{r.Name, formatBits(r.Time), formatBits(r.Memory), r.Parameters}
				if fastest != nil && r.Name == fastest.Name() {
					highlight = i
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(est.String()))
			fmt.Fprintln(out, renderTable([]string{"algorithm", "time", "memory", "parameters"}, cells, highlight))
			if digest {
				fmt.Fprintf(out, "digest: %s\n", hex.EncodeToString(estimator.Digest(rows)))
			}
			if profile {
				for _, t := range prof.Aggregate(rec.SnapshotAndReset()) {
					fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("%-18s %10s  x%d", t.Label, t.Dur, t.Count)))
				}
			}
			return nil
		},
	}
	pf.register(cmd)
	cmd.Flags().BoolVar(&digest, "digest", false, "print a SHAKE256 fingerprint of the table")
	cmd.Flags().BoolVar(&profile, "profile", false, "print the time spent per algorithm")
	return cmd
}

func newFastestCmd(ro *rootOptions) *cobra.Command {
	pf := &problemFlags{}
	cmd := &cobra.Command{
		Use:   "fastest",
		Short: "Print the algorithm with the smallest time complexity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			est, err := pf.build(ro, nil)
			if err != nil {
				return err
			}
			best := est.Fastest(pf.tilde)
			if best == nil {
				return fmt.Errorf("no algorithm applies to n=%d, m=%d, q=%d", pf.n, pf.m, pf.q)
			}
			t := best.TimeComplexity()
			if pf.tilde {
				t = best.TildeOTime()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t2^%s\t%s\n", best.Name(), formatBits(t.Log2()), best.OptimalParameters())
			return nil
		},
	}
	pf.register(cmd)
	return cmd
}

func newMinPolynomialsCmd() *cobra.Command {
	var (
		level, q int
		w        float64
	)
	cmd := &cobra.Command{
		Use:     "min-polynomials",
		Aliases: []string{"min-variables"},
		Short:   "Smallest square system reaching a security level against HybridF5",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := estimator.MinNPolynomials(level, q, w)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m)
			return nil
		},
	}
	cmd.Flags().IntVar(&level, "level", 128, "security level in bits (80, 100, 128, 192, 256)")
	cmd.Flags().IntVarP(&q, "q", "q", 0, "order of the finite field")
	cmd.Flags().Float64VarP(&w, "w", "w", 2, "linear algebra constant")
	_ = cmd.MarkFlagRequired("q")
	return cmd
}
