package classfolio

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/etnz/classfolio/date"
)

// Quotes maps a ticker to its price on a given day.
type Quotes map[string]float64

// Price returns the ticker's price if it is known and positive.
func (q Quotes) Price(ticker string) (float64, bool) {
	p, ok := q[ticker]
	if !ok || p <= 0 {
		return 0, false
	}
	return p, true
}

// PriceTable maps a day to the quotes known on that day.
type PriceTable map[date.Date]Quotes

// Dates returns every day in the table, in chronological order.
func (t PriceTable) Dates() []date.Date {
	return slices.SortedFunc(maps.Keys(t), date.Date.Compare)
}

// Last returns the latest day in the table.
func (t PriceTable) Last() (date.Date, bool) {
	if len(t) == 0 {
		return date.Date{}, false
	}
	days := t.Dates()
	return days[len(days)-1], true
}

// PriceData is the price document, as produced by the daily updater.
type PriceData struct {
	LastUpdated string     `json:"lastUpdated"`
	Prices      PriceTable `json:"prices"`
}

// Table returns the price table, nil safe.
//
// A nil *PriceData means "not yet available", and has no prices.
func (p *PriceData) Table() PriceTable {
	if p == nil {
		return nil
	}
	return p.Prices
}

// DecodePrices reads a price document.
func DecodePrices(r io.Reader) (*PriceData, error) {
	var p PriceData
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("cannot decode prices: %w", err)
	}
	if p.Prices == nil {
		p.Prices = make(PriceTable)
	}
	return &p, nil
}

// EncodePrices writes a price document, with sorted keys and indentation.
func EncodePrices(w io.Writer, p *PriceData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("cannot encode prices: %w", err)
	}
	return nil
}
