package classfolio

import (
	"github.com/etnz/classfolio/date"
)

// ValuePoint is the value of a series on a given day.
type ValuePoint struct {
	Date  date.Date `json:"date"`
	Value float64   `json:"value"`
}

// History is a sequence of value points in strictly increasing date order.
type History []ValuePoint

// Dates returns the days of the history.
func (h History) Dates() []date.Date {
	days := make([]date.Date, len(h))
	for i, p := range h {
		days[i] = p.Date
	}
	return days
}

// Last returns the latest point of the history.
func (h History) Last() (ValuePoint, bool) {
	if len(h) == 0 {
		return ValuePoint{}, false
	}
	return h[len(h)-1], true
}

// index returns the history as a date.History for lookups.
func (h History) index() *date.History[float64] {
	idx := new(date.History[float64])
	for _, p := range h {
		idx.Append(p.Date, p.Value)
	}
	return idx
}

// BuildHistory values the section on every day of the price table, from the
// start date on.
//
// It returns nil if the section has no holdings or if there are no prices on
// the start date: the section cannot be tracked yet. Days with a zero value,
// typically because none of the holdings is priced yet, are left out.
func BuildHistory(s Section, prices PriceTable, start date.Date, initialInvestment float64) History {
	if len(s.Holdings) == 0 {
		return nil
	}
	startQuotes, ok := prices[start]
	if !ok {
		return nil
	}
	var h History
	for _, on := range prices.Dates() {
		if on.Before(start) {
			continue
		}
		if v := Value(s, startQuotes, prices[on], initialInvestment); v > 0 {
			h = append(h, ValuePoint{Date: on, Value: v})
		}
	}
	return h
}

// BuildBenchmark values an initial investment fully spent on a single ticker
// at its start date price.
//
// Days without a price for the ticker are omitted. It returns nil if the
// ticker has no price on the start date.
func BuildBenchmark(prices PriceTable, ticker string, start date.Date, initialInvestment float64) History {
	startPrice, ok := prices[start].Price(ticker)
	if !ok {
		return nil
	}
	shares := initialInvestment / startPrice
	var h History
	for _, on := range prices.Dates() {
		if on.Before(start) {
			continue
		}
		if p, ok := prices[on].Price(ticker); ok {
			h = append(h, ValuePoint{Date: on, Value: shares * p})
		}
	}
	return h
}
