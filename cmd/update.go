package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/classfolio"
	"github.com/etnz/classfolio/date"
	"github.com/etnz/classfolio/yahoo"
	"github.com/google/subcommands"
)

type updateCmd struct {
	rng string
}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "update closing prices of every held ticker from Yahoo Finance"
}
func (*updateCmd) Usage() string {
	return `cpt update [-range <range>]

  Fetches the recent daily closes of every ticker held by any section, and of
  the benchmark, and records the days missing from prices.json. Nothing is
  fetched if today is already recorded.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rng, "range", "", "period to fetch, like 5d or 1mo, defaults to the settings")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}
	s, err := AppSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.rng != "" {
		s.Schedule.Range = c.rng
	}
	if _, err := updatePrices(ctx, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating prices: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// errReadOnly is returned when prices would be written to a URL.
var errReadOnly = errors.New("prices can only be updated in a data folder, not from a data url")

// updatePrices fetches and records the missing days of prices in the data
// folder. It returns the days added.
func updatePrices(ctx context.Context, s *Settings) ([]date.Date, error) {
	if s.Data.URL != "" {
		return nil, errReadOnly
	}
	docs, err := classfolio.Load(ctx, os.DirFS(s.Data.Dir))
	if err != nil {
		return nil, err
	}
	prices := docs.Prices
	if prices == nil {
		prices = &classfolio.PriceData{Prices: make(classfolio.PriceTable)}
	}

	today := date.Today()
	if yahoo.HasDay(prices, today) {
		log.Printf("already have prices for %v, skipping", today)
		return nil, nil
	}
	tickers := yahoo.Tickers(docs.Config, s.Benchmark.Ticker)
	log.Printf("fetching prices for %d tickers: %v", len(tickers), tickers)

	u := &yahoo.Updater{
		Client:    yahoo.NewClient(nil),
		Benchmark: s.Benchmark.Ticker,
		Range:     s.Schedule.Range,
	}
	added, err := u.Update(ctx, docs.Config, prices)
	if err != nil {
		return nil, err
	}
	for _, day := range added {
		log.Printf("added prices for %v: %d tickers", day, len(prices.Prices[day]))
	}
	if err := EncodePrices(s, prices); err != nil {
		return nil, err
	}
	log.Printf("prices saved to %s", s.Data.Dir)
	return added, nil
}
