package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/keypadchain/chain"
)

func newPressesCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "presses CODE",
		Short: "Print one optimal sequence of human presses for a code",
		Long: `Presses reconstructs one shortest sequence of buttons the human presses to
type CODE. Its length grows exponentially with --depth; solver.expand_limit
caps it.

Examples:
  keypadchain presses --depth 2 029A`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, f)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			code, err := chain.ParseCode(args[0])
			if err != nil {
				return err
			}
			s, err := chain.NewSolver(cfg.Solver.Depth,
				chain.WithLogger(log),
				chain.WithExpandLimit(cfg.Solver.ExpandLimit),
			)
			if err != nil {
				return err
			}
			p, err := s.Presses(code)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%d\n", p, len(p))
			return err
		},
	}
}
