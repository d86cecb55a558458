package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/keypadchain/chain"
	"github.com/katalvlaran/keypadchain/internal/metrics"
)

func newSolveCmd(f *rootFlags) *cobra.Command {
	var (
		outputJSON  bool
		metricsFile string
	)
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve every code in a file or stdin",
		Long: `Solve reads one door code per line and prints, for each code, the minimal
number of human presses, its numeric value and their product, followed by the
weighted total.

Examples:
  # Two robots between you and the door
  keypadchain solve --depth 2 codes.txt

  # Twenty-five robots, codes from stdin, JSON output
  cat codes.txt | keypadchain solve -d 25 --json -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, f)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			if cmd.Flags().Changed("metrics-file") {
				cfg.Metrics.Textfile = metricsFile
			}

			in, closeIn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeIn()
			codes, err := chain.ParseCodes(in)
			if err != nil {
				log.Error("failed to read codes", zap.Error(err))
				return err
			}

			opts := []chain.Option{
				chain.WithLogger(log),
				chain.WithWorkers(cfg.Solver.Workers),
			}
			var rec *metrics.Recorder
			if cfg.Metrics.Textfile != "" {
				rec = metrics.New(cfg.Metrics.Namespace)
				opts = append(opts, chain.WithObserver(rec))
			}

			rep, err := chain.SolveBatch(cmd.Context(), codes, cfg.Solver.Depth, opts...)
			if err != nil {
				log.Error("batch failed", zap.Error(err))
				return err
			}
			if rec != nil {
				rec.ObserveReport(rep)
				if err := rec.WriteTextfile(cfg.Metrics.Textfile); err != nil {
					return fmt.Errorf("failed to write metrics: %w", err)
				}
			}

			if outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			return printReport(cmd.OutOrStdout(), rep)
		},
	}
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output the report as JSON")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this text file")
	return cmd
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	fh, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	return fh, func() { _ = fh.Close() }, nil
}

func printReport(out io.Writer, rep *chain.Report) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tPRESSES\tVALUE\tCOMPLEXITY")
	for _, r := range rep.Results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", r.Code, r.Presses, r.Value, r.Complexity)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "total %d\n", rep.Total)
	return err
}
