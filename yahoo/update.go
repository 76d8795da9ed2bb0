package yahoo

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/etnz/classfolio"
	"github.com/etnz/classfolio/date"
	"github.com/shopspring/decimal"
)

// Tickers returns every ticker held by cfg, plus the benchmark ticker.
func Tickers(cfg *classfolio.Config, benchmark string) []string {
	tickers := cfg.Tickers()
	if benchmark != "" && !slices.Contains(tickers, benchmark) {
		tickers = append(tickers, benchmark)
	}
	return tickers
}

// HasDay reports whether the price document already has prices for day.
func HasDay(data *classfolio.PriceData, day date.Date) bool {
	_, ok := data.Table()[day]
	return ok
}

// round returns p rounded to the cent.
func round(p float64) float64 {
	f, _ := decimal.NewFromFloat(p).Round(2).Float64()
	return f
}

// Merge adds the closes of every day not yet in data, and stamps data with
// now. Recorded days are never modified, and days without any price are not
// added.
//
// It returns the added days, in chronological order.
func Merge(data *classfolio.PriceData, closes map[string]*date.History[float64], now time.Time) []date.Date {
	if data.Prices == nil {
		data.Prices = make(classfolio.PriceTable)
	}
	fresh := make(classfolio.PriceTable)
	for ticker, h := range closes {
		for day, p := range h.Values() {
			if _, exists := data.Prices[day]; exists || p <= 0 {
				continue
			}
			if fresh[day] == nil {
				fresh[day] = make(classfolio.Quotes)
			}
			fresh[day][ticker] = round(p)
		}
	}
	for day, q := range fresh {
		data.Prices[day] = q
	}
	data.LastUpdated = now.UTC().Format(time.RFC3339)
	return fresh.Dates()
}

// Updater keeps a price document up to date.
type Updater struct {
	Client *Client
	// Benchmark is the ticker always fetched on top of the holdings.
	Benchmark string
	// Range is the period fetched on every update.
	Range string
	// Now returns the current time.
	Now func() time.Time
}

// Update fetches recent closes for every ticker of cfg and merges them into
// data.
//
// It does nothing if data already has prices for today. It returns the days
// added.
func (u *Updater) Update(ctx context.Context, cfg *classfolio.Config, data *classfolio.PriceData) ([]date.Date, error) {
	now := time.Now()
	if u.Now != nil {
		now = u.Now()
	}
	today := date.New(now.Date())
	if HasDay(data, today) {
		return nil, nil
	}
	rng := u.Range
	if rng == "" {
		rng = DefaultRange
	}
	closes, err := u.Client.Closes(ctx, Tickers(cfg, u.Benchmark), rng)
	if err != nil {
		return nil, fmt.Errorf("cannot update prices: %w", err)
	}
	return Merge(data, closes, now), nil
}
