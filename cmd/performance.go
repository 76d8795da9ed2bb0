package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/classfolio"
	"github.com/etnz/classfolio/renderer"
	"github.com/google/subcommands"
)

type performanceCmd struct{}

func (*performanceCmd) Name() string { return "performance" }
func (*performanceCmd) Synopsis() string {
	return "display the returns and daily values of every portfolio against the benchmark"
}
func (*performanceCmd) Usage() string {
	return `cpt performance

  Values every section's portfolio on every day of the price table, since the
  start date, and compares it to the benchmark.
`
}
func (*performanceCmd) SetFlags(f *flag.FlagSet) {}

func (*performanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}
	_, docs, p, err := computePerformance(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	var lastUpdated string
	if docs.Prices != nil {
		lastUpdated = docs.Prices.LastUpdated
	}
	printMarkdown(renderer.PerformanceMarkdown(p, docs.Config, lastUpdated))
	return subcommands.ExitSuccess
}

// computePerformance loads the settings and documents, and computes the performance.
func computePerformance(ctx context.Context) (*Settings, *classfolio.Documents, *classfolio.Performance, error) {
	s, err := AppSettings()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cannot load settings: %w", err)
	}
	docs, err := DecodeDocuments(ctx, s)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cannot load documents: %w", err)
	}
	p, err := classfolio.ComputePerformance(docs.Config, docs.Prices, s.Options())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cannot compute performance: %w", err)
	}
	return s, docs, p, nil
}
