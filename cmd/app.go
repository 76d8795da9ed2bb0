// Package cmd implements the CLI application to track class portfolios.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/classfolio"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&performanceCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")

	c.Register(&updateCmd{}, "prices")
	c.Register(&watchCmd{}, "prices")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var settingsFile = flag.String("settings", "cpt.yaml", "Path to the settings file (YAML format)")
var dataDir = flag.String("data-dir", "", "Folder containing portfolios.json and prices.json, overrides the settings")
var dataURL = flag.String("data-url", "", "Base URL to read portfolios.json and prices.json from, overrides the settings")
var plain = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")

// AppSettings loads the settings file, with command line flags on top.
func AppSettings() (*Settings, error) {
	s, err := LoadSettings(*settingsFile)
	if err != nil {
		return nil, err
	}
	if *dataDir != "" {
		s.Data.Dir, s.Data.URL = *dataDir, ""
	}
	if *dataURL != "" {
		s.Data.URL = *dataURL
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// DecodeDocuments reads the configuration and the prices from the data URL
// if any, from the data folder otherwise.
func DecodeDocuments(ctx context.Context, s *Settings) (*classfolio.Documents, error) {
	if s.Data.URL != "" {
		var client *http.Client
		if s.Data.CacheDir != "" {
			if err := os.MkdirAll(s.Data.CacheDir, 0755); err != nil {
				return nil, fmt.Errorf("cannot create cache folder: %w", err)
			}
			client = classfolio.DailyClient(s.Data.CacheDir)
		}
		return classfolio.Fetch(ctx, client, s.Data.URL)
	}
	return classfolio.Load(ctx, os.DirFS(s.Data.Dir))
}

// EncodePrices writes the prices into the data folder.
//
// The document is written next to its destination first, so that readers
// never see a partial document.
func EncodePrices(s *Settings, p *classfolio.PriceData) error {
	dest := filepath.Join(s.Data.Dir, classfolio.PricesFile)
	f, err := os.CreateTemp(s.Data.Dir, classfolio.PricesFile+".*")
	if err != nil {
		return fmt.Errorf("cannot write prices: %w", err)
	}
	defer os.Remove(f.Name()) // no-op once renamed.
	if err := classfolio.EncodePrices(f, p); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write prices: %w", err)
	}
	return os.Rename(f.Name(), dest)
}

// printMarkdown prints md to the terminal, rendered unless -plain is set.
func printMarkdown(md string) {
	if *plain {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
