package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/GopalChinta/Online-Fraud-Detection/pkg/observability"
)

// globalOptions holds flags shared by every subcommand.
type globalOptions struct {
	verbose bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "qfraudctl",
		Short: "Operate the quantum-enhanced fraud detection stub",
		Long: `qfraudctl drives the fraud detection service from the command line.

Available subcommands:
  score      - Score one transaction locally or against a server
  benchmarks - Print the traditional vs quantum-enhanced comparison
  events     - Tail detection events from Kafka
  certs      - Generate a development CA and server certificate`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.verbose {
				opts.logger = observability.InitLogger(observability.LogConfig{
					Output: cmd.ErrOrStderr(),
					Level:  "debug",
					Format: "text",
				})
				return
			}
			opts.logger = observability.NewDiscardLogger()
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr")

	cmd.AddCommand(
		newScoreCmd(opts),
		newBenchmarksCmd(opts),
		newEventsCmd(opts),
		newCertsCmd(),
	)
	return cmd
}
