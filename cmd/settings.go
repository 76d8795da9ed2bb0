package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/etnz/classfolio"
	"github.com/etnz/classfolio/chart"
	"github.com/etnz/classfolio/yahoo"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Settings holds the tracker settings.
type Settings struct {
	Data struct {
		// Dir is the folder holding portfolios.json and prices.json.
		Dir string `yaml:"dir"`
		// URL, when set, is where documents are read from instead of Dir.
		URL string `yaml:"url"`
		// CacheDir caches URL responses for the day, disabled if empty.
		CacheDir string `yaml:"cache_dir"`
	} `yaml:"data"`
	Benchmark struct {
		ID     string `yaml:"id"`
		Ticker string `yaml:"ticker"`
		Name   string `yaml:"name"`
	} `yaml:"benchmark"`
	Chart struct {
		Width      int `yaml:"width"`
		Height     int `yaml:"height"`
		FutureDays int `yaml:"future_days"`
		TickCount  int `yaml:"tick_count"`
	} `yaml:"chart"`
	Schedule struct {
		UpdateCron string `yaml:"update_cron"`
		Range      string `yaml:"range"`
	} `yaml:"schedule"`
}

// cronParser parses cron expressions with a leading seconds field.
var cronParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// LoadSettings reads settings from a YAML file, then applies environment
// variable overrides and defaults. A missing file is not an error.
func LoadSettings(path string) (*Settings, error) {
	s := &Settings{}
	s.Chart.FutureDays = -1 // 0 is a valid value.

	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read settings: %w", err)
		}
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parse settings %q: %w", path, err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("CPT_DATA_DIR"); v != "" {
		s.Data.Dir = v
	}
	if v := os.Getenv("CPT_DATA_URL"); v != "" {
		s.Data.URL = v
	}
	if v := os.Getenv("CPT_BENCHMARK"); v != "" {
		s.Benchmark.ID, s.Benchmark.Ticker = v, v
	}
	if v := os.Getenv("CPT_CRON"); v != "" {
		s.Schedule.UpdateCron = v
	}

	// Defaults
	if s.Data.Dir == "" {
		s.Data.Dir = "."
	}
	if s.Benchmark.Ticker == "" {
		s.Benchmark.Ticker = classfolio.DefaultBenchmarkID
	}
	if s.Benchmark.ID == "" {
		s.Benchmark.ID = s.Benchmark.Ticker
	}
	if s.Benchmark.Name == "" {
		s.Benchmark.Name = s.Benchmark.Ticker
		if s.Benchmark.Ticker == classfolio.DefaultBenchmarkID {
			s.Benchmark.Name = classfolio.DefaultOptions().BenchmarkName
		}
	}
	defaults := chart.DefaultOptions()
	if s.Chart.Width == 0 {
		s.Chart.Width = defaults.Width
	}
	if s.Chart.Height == 0 {
		s.Chart.Height = defaults.Height
	}
	if s.Chart.FutureDays < 0 {
		s.Chart.FutureDays = classfolio.DefaultFutureDays
	}
	if s.Chart.TickCount == 0 {
		s.Chart.TickCount = classfolio.DefaultTickCount
	}
	if s.Schedule.UpdateCron == "" {
		s.Schedule.UpdateCron = "0 30 21 * * 1-5"
	}
	if s.Schedule.Range == "" {
		s.Schedule.Range = yahoo.DefaultRange
	}
	return s, nil
}

// Validate checks that all settings are usable.
func (s *Settings) Validate() error {
	var errs []error
	if s.Chart.Width <= 0 || s.Chart.Height <= 0 {
		errs = append(errs, fmt.Errorf("chart size must be positive, got %dx%d", s.Chart.Width, s.Chart.Height))
	}
	if s.Chart.TickCount < 2 {
		errs = append(errs, fmt.Errorf("chart.tick_count must be at least 2, got %d", s.Chart.TickCount))
	}
	if _, err := cronParser.Parse(s.Schedule.UpdateCron); err != nil {
		errs = append(errs, fmt.Errorf("schedule.update_cron %q: %w", s.Schedule.UpdateCron, err))
	}
	return errors.Join(errs...)
}

// Options returns the performance options.
func (s *Settings) Options() classfolio.Options {
	return classfolio.Options{
		BenchmarkID:     s.Benchmark.ID,
		BenchmarkTicker: s.Benchmark.Ticker,
		BenchmarkName:   s.Benchmark.Name,
		FutureDays:      s.Chart.FutureDays,
		TickCount:       s.Chart.TickCount,
	}
}

// ChartOptions returns the chart options for an output file.
func (s *Settings) ChartOptions(path string) chart.Options {
	opts := chart.DefaultOptions()
	opts.Format = chart.FormatOf(path)
	opts.Width, opts.Height = s.Chart.Width, s.Chart.Height
	return opts
}
