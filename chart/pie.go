package chart

import (
	"fmt"
	"io"

	"github.com/etnz/classfolio"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Holdings renders the vote allocation of a section as a pie chart.
//
// It returns ErrComingSoon if the section has no holdings.
func Holdings(w io.Writer, s classfolio.Section, opts Options) error {
	pie, err := NewHoldings(s, opts)
	if err != nil {
		return err
	}
	if err := pie.Render(opts.Format.provider(), w); err != nil {
		return fmt.Errorf("cannot render %s holdings: %w", s.ID, err)
	}
	return nil
}

// NewHoldings builds a pie chart with one slice per holding, the most voted first.
func NewHoldings(s classfolio.Section, opts Options) (*chart.PieChart, error) {
	if s.TotalVotes() <= 0 {
		return nil, fmt.Errorf("section %s: %w", s.ID, ErrComingSoon)
	}
	size := min(opts.Width, opts.Height)
	pie := &chart.PieChart{
		Title:  s.Name,
		Width:  size,
		Height: size,
	}
	for i, a := range s.Allocations() {
		if a.Votes == 0 {
			continue
		}
		pie.Values = append(pie.Values, chart.Value{
			Value: float64(a.Votes),
			Label: fmt.Sprintf("%s %s", a.Ticker, a.Share),
			Style: chart.Style{
				FillColor:   sliceColors[i%len(sliceColors)],
				StrokeColor: drawing.ColorWhite,
				FontColor:   textColor,
			},
		})
	}
	return pie, nil
}
