// Package yahoo maintains the price document from the Yahoo Finance chart API.
package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/classfolio/date"
	"golang.org/x/sync/errgroup"
)

// DefaultBaseURL is the Yahoo Finance query host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// DefaultRange covers a trading week, enough to catch up on weekends and holidays.
const DefaultRange = "5d"

// ErrNoPrices is returned when none of the requested tickers could be fetched.
var ErrNoPrices = errors.New("no prices returned")

// Client fetches daily closing prices.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
	// Parallel is the maximum number of concurrent requests.
	Parallel int
}

// NewClient returns a client for the public Yahoo Finance API.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		HTTPClient: httpClient,
		BaseURL:    DefaultBaseURL,
		UserAgent:  "Mozilla/5.0",
		Parallel:   4,
	}
}

// Closes returns the daily adjusted closing prices of every ticker over the
// range (like "5d" or "1mo").
//
// Tickers that cannot be fetched are logged and left out. It returns
// ErrNoPrices if none of them could be fetched.
func (c *Client) Closes(ctx context.Context, tickers []string, rng string) (map[string]*date.History[float64], error) {
	var mu sync.Mutex
	closes := make(map[string]*date.History[float64], len(tickers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.Parallel, 1))
	for _, ticker := range tickers {
		g.Go(func() error {
			h, err := c.history(ctx, ticker, rng)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				log.Printf("warning, skipping %s: %v", ticker, err)
				return nil
			}
			mu.Lock()
			closes[ticker] = h
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(closes) == 0 {
		return nil, ErrNoPrices
	}
	return closes, nil
}

// history fetches and parses the daily chart of a single ticker.
func (c *Client) history(ctx context.Context, ticker, rng string) (*date.History[float64], error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s", c.BaseURL, url.PathEscape(ticker), url.QueryEscape(rng))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)

	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil, fmt.Errorf("yahoo decode (%s): %w", resp.Status, err)
	}
	// error responses still carry a json description.
	if desc, err := jsonpath.Get("$.chart.error.description", jobj); err == nil {
		if s, ok := desc.(string); ok && s != "" {
			return nil, fmt.Errorf("yahoo api error: %s", s)
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %s", resp.Status)
	}
	return parseChart(jobj)
}

// parseChart reads the first chart result: timestamps, and adjusted closes
// if present, closes otherwise.
//
// Timestamps are shifted by the exchange offset before being turned into
// days, so that a close is reported on its trading day.
func parseChart(jobj any) (*date.History[float64], error) {
	stamps, err := floats(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		return nil, fmt.Errorf("yahoo: no data returned: %w", err)
	}
	prices, err := floats(jobj, "$.chart.result[0].indicators.adjclose[0].adjclose")
	if err != nil || len(prices) != len(stamps) {
		prices, err = floats(jobj, "$.chart.result[0].indicators.quote[0].close")
		if err != nil {
			return nil, fmt.Errorf("yahoo: no close prices: %w", err)
		}
	}
	if len(prices) != len(stamps) {
		return nil, fmt.Errorf("yahoo: %d prices for %d timestamps", len(prices), len(stamps))
	}
	var offset float64
	if v, err := jsonpath.Get("$.chart.result[0].meta.gmtoffset", jobj); err == nil {
		offset, _ = v.(float64)
	}

	h := new(date.History[float64])
	for i, ts := range stamps {
		p := prices[i]
		if p <= 0 {
			continue // null bars, holidays or the current session.
		}
		t := time.Unix(int64(ts+offset), 0).UTC()
		h.Append(date.New(t.Date()), p)
	}
	return h, nil
}

// floats evaluates path to a list of numbers, null entries are reported as 0.
func floats(jobj any, path string) ([]float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, err
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%s is not a list: %v", path, jval)
	}
	values := make([]float64, len(jlist))
	for i, v := range jlist {
		values[i], _ = v.(float64)
	}
	return values, nil
}
