package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mq-estimator/schemes"
)

func newSecurityCmd() *cobra.Command {
	var q, n, m int
	cmd := &cobra.Command{
		Use:   "security <preset|uov>",
		Short: "Evaluate the known attacks on a multivariate signature scheme",
		Long: "Evaluate the known attacks on a multivariate signature scheme.\n\nPresets: " +
			strings.Join(schemes.Presets(), ", ") + ".\nUse \"uov\" with -q, -n and -m for a custom UOV instance.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				s   schemes.Scheme
				err error
			)
			if strings.EqualFold(args[0], "uov") {
				s, err = schemes.NewUOV(q, n, m)
			} else {
				s, err = schemes.Preset(args[0])
			}
			if err != nil {
				return err
			}
			rep, err := s.Report()
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(rep.Attacks)+1)
			for _, a := range rep.Attacks {
				rows = append(rows, []string{a.Name, formatLevel(a.Classical), formatLevel(a.Quantum)})
			}
			rows = append(rows, []string{"security level", formatLevel(rep.Classical), formatLevel(rep.Quantum)})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(rep.Scheme))
			fmt.Fprintln(out, renderTable([]string{"attack", "classical", "quantum"}, rows, len(rows)-1))
			return nil
		},
	}
	cmd.Flags().IntVarP(&q, "q", "q", 16, "uov: order of the finite field")
	cmd.Flags().IntVarP(&n, "n", "n", 0, "uov: number of variables")
	cmd.Flags().IntVarP(&m, "m", "m", 0, "uov: number of polynomials")
	return cmd
}
