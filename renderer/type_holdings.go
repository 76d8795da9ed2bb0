package renderer

import "github.com/etnz/classfolio"

// Holdings is the holdings report data.
type Holdings struct {
	Sections []HoldingsSection
}

// HoldingsSection is a section and its allocations, by decreasing votes.
type HoldingsSection struct {
	ID          string
	Name        string
	Instructor  string
	Allocations []classfolio.Allocation
}

// ComingSoon is true when the section has not voted on any holding yet.
func (s HoldingsSection) ComingSoon() bool { return len(s.Allocations) == 0 }

// NewHoldings prepares every section of cfg for rendering, in configuration order.
func NewHoldings(cfg *classfolio.Config) *Holdings {
	h := &Holdings{}
	for _, s := range cfg.Sections {
		h.Sections = append(h.Sections, HoldingsSection{
			ID:          s.ID,
			Name:        s.Name,
			Instructor:  s.Instructor,
			Allocations: s.Allocations(),
		})
	}
	return h
}
