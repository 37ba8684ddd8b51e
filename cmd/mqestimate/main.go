// Command mqestimate reports the complexity of solving MQ problems and the
// security of multivariate signature schemes.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	ro := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "mqestimate",
		Short:         "Estimate the cost of solving multivariate quadratic systems",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), ro.logLevel, ro.logFormat)
			if err != nil {
				return err
			}
			ro.logger = logger
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&ro.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&ro.logFormat, "log-format", "text", "log format (text, json)")

	cmd.AddCommand(
		newTableCmd(ro),
		newFastestCmd(ro),
		newMinPolynomialsCmd(),
		newSecurityCmd(),
		newSweepCmd(ro),
	)
	return cmd
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q", format)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
