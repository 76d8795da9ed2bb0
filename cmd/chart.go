package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/classfolio"
	"github.com/etnz/classfolio/chart"
	"github.com/google/subcommands"
)

type chartCmd struct {
	output  string
	section string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw the performance chart, or a section's holdings" }
func (*chartCmd) Usage() string {
	return `cpt chart [-o <file.png|file.svg>] [-s <section id>]

  Draws every portfolio and the benchmark over time. With -s, draws the vote
  allocation of a section instead. The format follows the file extension.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "performance.png", "output image file")
	f.StringVar(&c.section, "s", "", "draw the holdings of the section with this id")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, docs, p, err := computePerformance(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var sec *classfolio.Section
	if c.section != "" {
		if sec = docs.Config.Section(c.section); sec == nil {
			fmt.Fprintf(os.Stderr, "Unknown section %q\n", c.section)
			return subcommands.ExitUsageError
		}
	}

	file, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	opts := s.ChartOptions(c.output)
	if sec != nil {
		err = chart.Holdings(file, *sec, opts)
	} else {
		err = chart.Performance(file, p, opts)
	}
	switch {
	case errors.Is(err, classfolio.ErrNoData), errors.Is(err, chart.ErrComingSoon):
		file.Close()
		os.Remove(c.output)
		fmt.Fprintf(os.Stderr, "Nothing to draw: %v\n", err)
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error drawing chart: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Chart saved to %s\n", c.output)
	return subcommands.ExitSuccess
}
