package classfolio

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"
)

// Document names, relative to the data location.
const (
	ConfigFile = "portfolios.json"
	PricesFile = "prices.json"
)

// Documents holds the two input documents.
type Documents struct {
	Config *Config
	// Prices is nil when the price document is not available yet.
	Prices *PriceData
}

// opener opens a named document.
type opener func(ctx context.Context, name string) (io.ReadCloser, error)

// Load reads both documents from a file system.
//
// A configuration that cannot be read or decoded is an error. Prices that
// cannot be read are reported as not available yet.
func Load(ctx context.Context, fsys fs.FS) (*Documents, error) {
	return load(ctx, func(_ context.Context, name string) (io.ReadCloser, error) {
		return fsys.Open(name)
	})
}

// Fetch retrieves both documents relative to base URL, with the same
// policy as Load.
func Fetch(ctx context.Context, client *http.Client, base string) (*Documents, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid data url %q: %w", base, err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return load(ctx, func(ctx context.Context, name string) (io.ReadCloser, error) {
		return httpOpen(ctx, client, u.JoinPath(name).String())
	})
}

// load fetches the configuration and prices concurrently.
func load(ctx context.Context, open opener) (*Documents, error) {
	var docs Documents
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := open(ctx, ConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load portfolio configuration: %w", err)
		}
		defer r.Close()
		docs.Config, err = DecodeConfig(r)
		return err
	})
	g.Go(func() error {
		r, err := open(ctx, PricesFile)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Printf("warning, prices are not available yet: %v", err)
			return nil
		}
		defer r.Close()
		docs.Prices, err = DecodePrices(r)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &docs, nil
}

// httpOpen GETs addr, a 404 is reported as fs.ErrNotExist.
func httpOpen(ctx context.Context, client *http.Client, addr string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("cannot http GET %v: %w", addr, fs.ErrNotExist)
	case resp.StatusCode != http.StatusOK:
		resp.Body.Close()
		return nil, fmt.Errorf("cannot http GET %v: %v", addr, resp.Status)
	}
	return resp.Body, nil
}
