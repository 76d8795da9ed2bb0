package classfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/etnz/classfolio/date"
)

// Config is the portfolio configuration document.
type Config struct {
	StartDate         date.Date `json:"startDate"`
	InitialInvestment float64   `json:"initialInvestment"`
	Sections          []Section `json:"sections"`
}

// Section returns the section with the given id, or nil.
func (c *Config) Section(id string) *Section {
	for i := range c.Sections {
		if c.Sections[i].ID == id {
			return &c.Sections[i]
		}
	}
	return nil
}

// Tickers returns every ticker held by any section, in configuration order.
func (c *Config) Tickers() []string {
	var tickers []string
	seen := make(map[string]bool)
	for _, s := range c.Sections {
		for _, t := range s.Tickers() {
			if !seen[t] {
				seen[t] = true
				tickers = append(tickers, t)
			}
		}
	}
	return tickers
}

// Validate checks the configuration can be valued.
func (c *Config) Validate() error {
	var errs []error
	if c.StartDate.IsZero() {
		errs = append(errs, errors.New("startDate is required"))
	}
	if c.InitialInvestment <= 0 {
		errs = append(errs, fmt.Errorf("initialInvestment must be positive, got %v", c.InitialInvestment))
	}
	ids := make(map[string]bool)
	for i, s := range c.Sections {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("section #%d has no id", i))
			continue
		}
		if ids[s.ID] {
			errs = append(errs, fmt.Errorf("duplicate section id %q", s.ID))
		}
		ids[s.ID] = true
		for _, h := range s.Holdings {
			if h.Ticker == "" {
				errs = append(errs, fmt.Errorf("section %q has a holding without ticker", s.ID))
			}
			if h.Votes < 0 {
				errs = append(errs, fmt.Errorf("section %q: %s has negative votes %d", s.ID, h.Ticker, h.Votes))
			}
		}
	}
	return errors.Join(errs...)
}

// DecodeConfig reads and validates a portfolio configuration document.
func DecodeConfig(r io.Reader) (*Config, error) {
	var c Config
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("cannot decode portfolio configuration: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid portfolio configuration: %w", err)
	}
	return &c, nil
}
