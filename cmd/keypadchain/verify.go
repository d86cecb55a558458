package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/keypadchain/chain"
	"github.com/katalvlaran/keypadchain/simulate"
)

// maxVerifyDepth keeps the exhaustive search within a few million states.
const maxVerifyDepth = 4

func newVerifyCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "verify CODE...",
		Short: "Cross-check the solver against an exhaustive search",
		Long: fmt.Sprintf(`Verify solves each CODE with the memoized solver and with a breadth-first
search over every robot pointer position, and fails if they disagree.
Depth is limited to %d.

Examples:
  keypadchain verify --depth 2 029A 980A`, maxVerifyDepth),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, f)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			depth := cfg.Solver.Depth
			if depth > maxVerifyDepth {
				return fmt.Errorf("verify: depth %d exceeds %d", depth, maxVerifyDepth)
			}
			s, err := chain.NewSolver(depth, chain.WithLogger(log))
			if err != nil {
				return err
			}
			for _, arg := range args {
				code, err := chain.ParseCode(arg)
				if err != nil {
					return err
				}
				got, err := s.Solve(code)
				if err != nil {
					return err
				}
				want, err := simulate.Shortest(string(code), depth, simulate.WithContext(cmd.Context()))
				if err != nil {
					return err
				}
				if got != int64(want) {
					log.Error("solver disagrees with search",
						zap.String("code", string(code)), zap.Int64("solver", got), zap.Int("search", want))
					return fmt.Errorf("verify: %s: solver %d, search %d", code, got, want)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s ok %d\n", code, got)
			}
			return nil
		},
	}
}
