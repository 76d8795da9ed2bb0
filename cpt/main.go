// Command cpt tracks the performance of class stock portfolios.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/classfolio/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
func completion() *complete.Command {
	images := predict.Or(predict.Files("*.png"), predict.Files("*.svg"))
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"settings": predict.Files("*.yaml"),
			"data-dir": predict.Dirs("*"),
			"data-url": predict.Something,
			"plain":    predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"holdings":    {Flags: map[string]complete.Predictor{"s": predict.Something}},
			"performance": {},
			"export":      {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
			"chart":       {Flags: map[string]complete.Predictor{"o": images, "s": predict.Something}},
			"update":      {Flags: map[string]complete.Predictor{"range": predict.Set{"1d", "5d", "1mo", "3mo", "6mo", "1y", "ytd"}}},
			"watch":       {Flags: map[string]complete.Predictor{"now": predict.Nothing}},
			"help":        {},
		},
	}
}

func main() {
	// exits when called by the shell for completion.
	completion().Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
