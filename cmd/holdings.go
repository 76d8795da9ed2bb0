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

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	section string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the vote allocation of every section" }
func (*holdingsCmd) Usage() string {
	return `cpt holdings [-s <section id>]

  Displays the holdings of each section, sorted by votes, with their share of
  the section's investment.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.section, "s", "", "only display the section with this id")
}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}
	s, err := AppSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		return subcommands.ExitFailure
	}
	docs, err := DecodeDocuments(ctx, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading documents: %v\n", err)
		return subcommands.ExitFailure
	}

	cfg := docs.Config
	if c.section != "" {
		sec := cfg.Section(c.section)
		if sec == nil {
			fmt.Fprintf(os.Stderr, "Unknown section %q\n", c.section)
			return subcommands.ExitUsageError
		}
		only := *cfg
		only.Sections = []classfolio.Section{*sec}
		cfg = &only
	}

	printMarkdown(renderer.HoldingsMarkdown(cfg))
	return subcommands.ExitSuccess
}
