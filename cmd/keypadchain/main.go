// Package main implements the keypadchain CLI: it reads door codes and
// prints the minimal human press counts through a chain of robot keypads.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/keypadchain/internal/config"
	"github.com/katalvlaran/keypadchain/internal/logging"
)

// version information
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// rootFlags are shared by every sub-command.
type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	depth      int
	workers    int
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:   "keypadchain",
		Short: "Minimal keypad presses through a chain of robots",
		Long: `keypadchain computes how many buttons a human must press on a directional
keypad so that, through a chain of robots each steering the next keypad,
a door code gets typed on the final numeric keypad.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML config file")
	pf.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&f.logFormat, "log-format", "", "log format (console, json)")
	pf.IntVarP(&f.depth, "depth", "d", 0, "robot-operated directional keypads in the chain")
	pf.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for batches")

	root.AddCommand(newSolveCmd(f))
	root.AddCommand(newPressesCmd(f))
	root.AddCommand(newVerifyCmd(f))
	return root
}

// setup loads config, applies explicitly set flags and builds the logger.
func setup(cmd *cobra.Command, f *rootFlags) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("depth") {
		cfg.Solver.Depth = f.depth
	}
	if flags.Changed("workers") {
		cfg.Solver.Workers = f.workers
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, log, nil
}
