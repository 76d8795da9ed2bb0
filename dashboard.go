package classfolio

import (
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Options configures how performance series are built and aligned.
type Options struct {
	// BenchmarkID is the series id of the benchmark.
	BenchmarkID string
	// BenchmarkTicker is the ticker valued as the benchmark.
	BenchmarkTicker string
	// BenchmarkName is the display name of the benchmark.
	BenchmarkName string
	// FutureDays is the number of empty business days after the last data date.
	FutureDays int
	// TickCount is the number of value axis ticks aimed at.
	TickCount int
}

// DefaultOptions returns options comparing portfolios to the S&P 500.
func DefaultOptions() Options {
	return Options{
		BenchmarkID:     DefaultBenchmarkID,
		BenchmarkTicker: DefaultBenchmarkID,
		BenchmarkName:   "S&P 500",
		FutureDays:      DefaultFutureDays,
		TickCount:       DefaultTickCount,
	}
}

// Performance is everything needed to chart the portfolios against the benchmark.
type Performance struct {
	InitialInvestment float64
	// Series holds one series per section with holdings, in configuration order.
	Series []Series
	// Benchmark is nil when the benchmark has no price on the start date.
	Benchmark *Series
	// Alignment is nil when no portfolio has data yet.
	Alignment *Alignment
	Axis      Axis
}

// HasData reports whether there is anything to chart.
func (p *Performance) HasData() bool { return p != nil && p.Alignment != nil }

// ComputePerformance values every section with holdings and the benchmark
// over the price table, and aligns them.
//
// A nil prices is valid: prices are not available yet, and the performance
// has no data.
func ComputePerformance(cfg *Config, prices *PriceData, opts Options) (*Performance, error) {
	if cfg == nil {
		return nil, errors.New("missing portfolio configuration")
	}
	table := prices.Table()
	p := &Performance{InitialInvestment: cfg.InitialInvestment}
	for _, s := range cfg.Sections {
		if len(s.Holdings) == 0 {
			continue
		}
		p.Series = append(p.Series, Series{
			ID:      s.ID,
			Name:    s.Name,
			History: BuildHistory(s, table, cfg.StartDate, cfg.InitialInvestment),
		})
	}

	if h := BuildBenchmark(table, opts.BenchmarkTicker, cfg.StartDate, cfg.InitialInvestment); len(h) > 0 {
		p.Benchmark = &Series{ID: opts.BenchmarkID, Name: opts.BenchmarkName, History: h}
	}

	a, err := Aligner{FutureDays: opts.FutureDays}.Align(p.Series, p.Benchmark, cfg.InitialInvestment)
	switch {
	case errors.Is(err, ErrNoData):
		// nothing to chart, yet.
	case err != nil:
		return nil, err
	default:
		p.Alignment = a
	}
	p.Axis = NewAxis(p.Alignment, cfg.InitialInvestment, opts.TickCount)
	return p, nil
}

// Dashboard memoizes the performance computed from a configuration and prices.
//
// It recomputes only when the content of either input changes. It is safe
// for concurrent use.
type Dashboard struct {
	Options Options

	mu   sync.Mutex
	key  string
	last *Performance
}

// NewDashboard returns a dashboard using the given options.
func NewDashboard(opts Options) *Dashboard { return &Dashboard{Options: opts} }

// Performance returns the performance for cfg and prices, from memory if
// inputs did not change since the last call.
func (d *Dashboard) Performance(cfg *Config, prices *PriceData) (*Performance, error) {
	key, err := contentKey(cfg, prices, d.Options)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.last != nil && d.key == key {
		return d.last, nil
	}
	p, err := ComputePerformance(cfg, prices, d.Options)
	if err != nil {
		return nil, err
	}
	d.key, d.last = key, p
	return p, nil
}

// contentKey returns a digest of the inputs content.
//
// encoding/json sorts map keys, so equal contents give equal keys.
func contentKey(inputs ...any) (string, error) {
	h := sha1.New()
	enc := json.NewEncoder(h)
	for _, in := range inputs {
		if err := enc.Encode(in); err != nil {
			return "", fmt.Errorf("cannot digest inputs: %w", err)
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
