package classfolio

import (
	"math"
	"testing"

	"github.com/etnz/classfolio/date"
)

const tolerance = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) <= tolerance*math.Max(1, math.Abs(b)) }

// d parses a date for test tables.
func d(s string) date.Date { return date.MustParse(s) }

// techSection is the AAPL 3 votes, MSFT 1 vote section.
func techSection() Section {
	return Section{
		ID:         "001",
		Name:       "Section 001",
		Instructor: "Prof. A",
		Holdings: []Holding{
			{Ticker: "AAPL", Company: "Apple Inc.", Votes: 3},
			{Ticker: "MSFT", Company: "Microsoft", Votes: 1},
		},
	}
}

// samplePrices has a weekend gap, a day before start, and a day without MSFT.
func samplePrices() PriceTable {
	return PriceTable{
		d("2025-01-03"): {"AAPL": 90, "MSFT": 190, "SPY": 490},
		d("2025-01-06"): {"AAPL": 100, "MSFT": 200, "SPY": 500},
		d("2025-01-07"): {"AAPL": 110, "MSFT": 220, "SPY": 510},
		d("2025-01-08"): {"AAPL": 120, "SPY": 520},
		d("2025-01-09"): {"MSFT": 210},
		d("2025-01-10"): {"AAPL": 100, "MSFT": 200, "SPY": 495},
	}
}

// assertNull fails if the series has a value on the row.
func assertNull(t *testing.T, r Row, id string) {
	t.Helper()
	if v, ok := r.Value(id); ok {
		t.Errorf("row %v: %s = %v, want null", r.Date, id, v)
	}
}
