package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/application/dto"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/application/usecase"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/infrastructure/fixtures"
)

type benchmarksOptions struct {
	file   string
	remote remoteOptions
}

func newBenchmarksCmd(_ *globalOptions) *cobra.Command {
	opts := &benchmarksOptions{}

	cmd := &cobra.Command{
		Use:   "benchmarks",
		Short: "Print the traditional vs quantum-enhanced comparison",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmarks(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "benchmark YAML file (embedded fixture when empty)")
	opts.remote.register(cmd)
	return cmd
}

func runBenchmarks(ctx context.Context, w io.Writer, opts *benchmarksOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		report dto.BenchmarkResponse
		err    error
	)
	if opts.remote.address != "" {
		report, err = benchmarksRemote(ctx, opts)
	} else {
		report, err = benchmarksLocal(ctx, opts)
	}
	if err != nil {
		return err
	}
	return printBenchmarks(w, report)
}

func benchmarksLocal(ctx context.Context, opts *benchmarksOptions) (dto.BenchmarkResponse, error) {
	loader, err := fixtures.NewLoader(opts.file)
	if err != nil {
		return dto.BenchmarkResponse{}, err
	}
	return usecase.NewGetBenchmarks(loader).Execute(ctx)
}

func benchmarksRemote(ctx context.Context, opts *benchmarksOptions) (dto.BenchmarkResponse, error) {
	client, closeConn, err := opts.remote.client()
	if err != nil {
		return dto.BenchmarkResponse{}, err
	}
	defer closeConn()

	ctx, cancel := context.WithTimeout(ctx, opts.remote.timeout)
	defer cancel()

	resp, err := client.GetBenchmarks(ctx)
	if err != nil {
		return dto.BenchmarkResponse{}, fmt.Errorf("remote benchmarks: %w", err)
	}

	out := dto.BenchmarkResponse{Title: resp.Title}
	for _, m := range resp.Metrics {
		if m == nil {
			continue
		}
		out.Metrics = append(out.Metrics, dto.BenchmarkMetricResponse{
			Key:           m.Key,
			Name:          m.Name,
			Traditional:   m.Traditional,
			Enhanced:      m.Enhanced,
			Improvement:   m.Improvement,
			LowerIsBetter: m.LowerIsBetter,
		})
	}
	return out, nil
}

func printBenchmarks(w io.Writer, report dto.BenchmarkResponse) error {
	if report.Title != "" {
		if _, err := fmt.Fprintln(w, report.Title); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "METRIC\tTRADITIONAL\tQUANTUM-ENHANCED\tIMPROVEMENT\t")
	for _, m := range report.Metrics {
		fmt.Fprintf(tw, "%s\t%.1f%%\t%.1f%%\t%+.1f\t\n", m.Name, m.Traditional, m.Enhanced, m.Improvement)
	}
	return tw.Flush()
}
