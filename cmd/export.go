package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/classfolio"
	"github.com/etnz/classfolio/date"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the aligned performance series as json" }
func (*exportCmd) Usage() string {
	return `cpt export [-o <file>]

  Writes the chart data as json: one row per day with every series value, null
  when a series has no data that day, the value axis, and the returns.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "output file, standard output if empty")
}

// exportSeries describes a series of the export.
type exportSeries struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Benchmark bool   `json:"benchmark,omitempty"`
}

// export is the json document written by the export command.
type export struct {
	LastUpdated       string                        `json:"lastUpdated,omitempty"`
	InitialInvestment float64                       `json:"initialInvestment"`
	StartDate         date.Date                     `json:"startDate"`
	LastDataDate      *date.Date                    `json:"lastDataDate"`
	Series            []exportSeries                `json:"series"`
	Rows              []classfolio.Row              `json:"rows"`
	Returns           map[string]classfolio.Percent `json:"returns"`
	Axis              struct {
		Min   float64   `json:"min"`
		Max   float64   `json:"max"`
		Ticks []float64 `json:"ticks"`
	} `json:"axis"`
}

func newExport(cfg *classfolio.Config, prices *classfolio.PriceData, p *classfolio.Performance) *export {
	e := &export{
		InitialInvestment: p.InitialInvestment,
		StartDate:         cfg.StartDate,
		Rows:              []classfolio.Row{},
		Returns:           map[string]classfolio.Percent{},
	}
	if prices != nil {
		e.LastUpdated = prices.LastUpdated
	}
	for _, s := range p.Series {
		e.Series = append(e.Series, exportSeries{ID: s.ID, Name: s.Name})
	}
	if p.Benchmark != nil {
		e.Series = append(e.Series, exportSeries{ID: p.Benchmark.ID, Name: p.Benchmark.Name, Benchmark: true})
	}
	if p.HasData() {
		e.LastDataDate = &p.Alignment.LastDataDate
		e.Rows = p.Alignment.Rows
		e.Returns = p.Alignment.Returns
	}
	e.Axis.Min, e.Axis.Max, e.Axis.Ticks = p.Axis.Min, p.Axis.Max, p.Axis.Ticks
	return e
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, docs, p, err := computePerformance(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newExport(docs.Config, docs.Prices, p)); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing export: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
