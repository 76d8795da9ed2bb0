package renderer

import (
	"github.com/etnz/classfolio"
	"github.com/etnz/classfolio/date"
)

// Performance is the performance report data.
//
// Amounts are already Money and returns Percent, so they render themselves.
type Performance struct {
	LastUpdated       string           `json:"lastUpdated,omitempty"`
	InitialInvestment classfolio.Money `json:"-"`
	StartDate         date.Date        `json:"startDate"`
	// HasData is false until any portfolio has a value.
	HasData      bool      `json:"hasData"`
	LastDataDate date.Date `json:"lastDataDate"`
	// Columns are the series, portfolios first, then the benchmark.
	Columns []Column `json:"columns"`
	// Returns lists the terminal return of every series that has one.
	Returns []Return           `json:"returns"`
	Rows    []Row              `json:"rows"`
	Ticks   []classfolio.Money `json:"-"`
}

// Column is a series header.
type Column struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Return is the terminal state of a series.
type Return struct {
	ID     string             `json:"id"`
	Name   string             `json:"name"`
	Value  classfolio.Money   `json:"-"`
	Return classfolio.Percent `json:"return"`
}

// Row is a data day, with one formatted cell per column, empty when the
// series has no value that day.
type Row struct {
	Date  date.Date `json:"date"`
	Cells []string  `json:"cells"`
}

// NewPerformance prepares p for rendering.
func NewPerformance(p *classfolio.Performance, cfg *classfolio.Config, lastUpdated string) *Performance {
	r := &Performance{
		LastUpdated:       lastUpdated,
		InitialInvestment: classfolio.M(cfg.InitialInvestment, ""),
		StartDate:         cfg.StartDate,
		HasData:           p.HasData(),
	}
	if !r.HasData {
		return r
	}
	a := p.Alignment
	r.LastDataDate = a.LastDataDate

	names := make(map[string]string)
	for _, s := range p.Series {
		names[s.ID] = s.Name
	}
	if p.Benchmark != nil {
		names[p.Benchmark.ID] = p.Benchmark.Name
	}
	last := make(map[string]float64)
	for _, id := range a.IDs {
		r.Columns = append(r.Columns, Column{ID: id, Name: names[id]})
	}
	for _, row := range a.DataRows() {
		cells := make([]string, len(a.IDs))
		for i, id := range a.IDs {
			if v, ok := row.Value(id); ok {
				cells[i] = classfolio.M(v, "").String()
				last[id] = v
			}
		}
		r.Rows = append(r.Rows, Row{Date: row.Date, Cells: cells})
	}
	for _, id := range a.IDs {
		if ret, ok := a.Returns[id]; ok {
			r.Returns = append(r.Returns, Return{ID: id, Name: names[id], Value: classfolio.M(last[id], ""), Return: ret})
		}
	}
	for _, t := range p.Axis.Ticks {
		r.Ticks = append(r.Ticks, classfolio.M(t, ""))
	}
	return r
}
