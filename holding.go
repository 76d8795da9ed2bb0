package classfolio

import (
	"cmp"
	"slices"
)

// Holding is one ticker's allocation within a portfolio, weighted by votes.
type Holding struct {
	Ticker  string `json:"ticker"`
	Company string `json:"company"`
	Votes   int    `json:"votes"`
}

// Section is a vote-weighted portfolio, built by one class section.
//
// ID is the stable key used for every series derived from the section.
type Section struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Instructor string    `json:"instructor"`
	Holdings   []Holding `json:"holdings"`
}

// TotalVotes returns the sum of votes over all holdings.
func (s Section) TotalVotes() int {
	total := 0
	for _, h := range s.Holdings {
		total += h.Votes
	}
	return total
}

// Weights returns the share of the initial investment allocated to each
// holding, in holdings order.
//
// Weights sum to 1 unless there are no votes at all, in which case every
// weight is 0.
func (s Section) Weights() []float64 {
	weights := make([]float64, len(s.Holdings))
	total := s.TotalVotes()
	if total <= 0 {
		return weights
	}
	for i, h := range s.Holdings {
		weights[i] = float64(h.Votes) / float64(total)
	}
	return weights
}

// Tickers returns the unique tickers held by the section, in holdings order.
func (s Section) Tickers() []string {
	tickers := make([]string, 0, len(s.Holdings))
	for _, h := range s.Holdings {
		if !slices.Contains(tickers, h.Ticker) {
			tickers = append(tickers, h.Ticker)
		}
	}
	return tickers
}

// Allocation describes a holding and its share of the section's votes.
type Allocation struct {
	Holding
	Share Percent
}

// Allocations returns the holdings sorted by decreasing votes, with their
// share of the total votes.
//
// Holdings with the same number of votes keep their configuration order.
func (s Section) Allocations() []Allocation {
	weights := s.Weights()
	allocations := make([]Allocation, len(s.Holdings))
	for i, h := range s.Holdings {
		allocations[i] = Allocation{Holding: h, Share: Percent(weights[i] * 100)}
	}
	slices.SortStableFunc(allocations, func(a, b Allocation) int { return cmp.Compare(b.Votes, a.Votes) })
	return allocations
}
