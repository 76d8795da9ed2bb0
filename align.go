package classfolio

import (
	"errors"
	"slices"

	"github.com/etnz/classfolio/date"
)

// DefaultBenchmarkID is the series id of the benchmark, and its ticker by default.
const DefaultBenchmarkID = "SPY"

// DefaultFutureDays is the number of business days reserved after the last data date.
const DefaultFutureDays = 5

// ErrNoData is returned when no portfolio has any value to align.
var ErrNoData = errors.New("no price data available")

// Series is a named value history.
type Series struct {
	ID      string
	Name    string
	History History
}

// Row is the set of series values on a single day of the axis.
type Row struct {
	Date date.Date
	// Future is true for synthetic days after the last data date.
	Future bool
	// Values holds a value per series id, nil when the series has no data on that day.
	Values map[string]*float64
	// Returns holds the terminal return per series id, only on the last data date.
	Returns map[string]Percent

	order []string // series ids order for json
}

// Value returns the value of the series on that row.
func (r Row) Value(id string) (float64, bool) {
	if v := r.Values[id]; v != nil {
		return *v, true
	}
	return 0, false
}

// MarshalJSON writes the row as a flat object: the date, then every series'
// value (null when missing), followed by its return when there is one.
func (r Row) MarshalJSON() ([]byte, error) {
	fields := make([]field, 0, 1+2*len(r.order))
	fields = append(fields, field{"date", r.Date})
	for _, id := range r.order {
		fields = append(fields, field{id, r.Values[id]})
		if ret, ok := r.Returns[id]; ok {
			fields = append(fields, field{id + "_return", float64(ret)})
		}
	}
	return marshalObject(fields...)
}

// Alignment merges several series on a single date axis.
type Alignment struct {
	// IDs lists the series ids: portfolios first, in order, then the benchmark if any.
	IDs  []string
	Rows []Row
	// LastDataDate is the last day with actual portfolio data.
	LastDataDate date.Date
	// Returns holds the terminal return, in percent, of every series that has one.
	Returns map[string]Percent
}

// Dates returns the axis: data days followed by future days.
func (a *Alignment) Dates() []date.Date {
	days := make([]date.Date, len(a.Rows))
	for i, r := range a.Rows {
		days[i] = r.Date
	}
	return days
}

// DataRows returns the rows carrying data, without the future ones.
func (a *Alignment) DataRows() []Row {
	i := slices.IndexFunc(a.Rows, func(r Row) bool { return r.Future })
	if i < 0 {
		return a.Rows
	}
	return a.Rows[:i]
}

// Bounds returns the lowest and highest value across all series.
func (a *Alignment) Bounds() (lo, hi float64, ok bool) {
	for _, r := range a.Rows {
		for _, v := range r.Values {
			if v == nil {
				continue
			}
			if !ok {
				lo, hi, ok = *v, *v, true
				continue
			}
			lo, hi = min(lo, *v), max(hi, *v)
		}
	}
	return lo, hi, ok
}

// Aligner aligns portfolio series and a benchmark on a common date axis.
type Aligner struct {
	// FutureDays is the number of empty business days appended to the axis.
	FutureDays int
}

// Align aligns series with the default number of future days.
func Align(portfolios []Series, benchmark *Series, initialInvestment float64) (*Alignment, error) {
	return Aligner{FutureDays: DefaultFutureDays}.Align(portfolios, benchmark, initialInvestment)
}

// Align builds one row per day where any portfolio has a value, followed by
// the future days.
//
// A series gets a value on a row only if it has a point on that exact day:
// missing days are null, never filled with a previous value. Benchmark days
// without portfolio data are not part of the axis.
//
// It returns ErrNoData if none of the portfolios has any point.
func (al Aligner) Align(portfolios []Series, benchmark *Series, initialInvestment float64) (*Alignment, error) {
	days := make([][]date.Date, 0, len(portfolios))
	for _, s := range portfolios {
		days = append(days, s.History.Dates())
	}
	dataDates := slices.Collect(date.Union(days...))
	if len(dataDates) == 0 {
		return nil, ErrNoData
	}
	last := dataDates[len(dataDates)-1]

	all := portfolios
	if benchmark != nil {
		all = append(slices.Clip(portfolios), *benchmark)
	}

	a := &Alignment{
		IDs:          make([]string, 0, len(all)),
		LastDataDate: last,
		Returns:      make(map[string]Percent),
	}
	indexes := make([]*date.History[float64], len(all))
	for i, s := range all {
		a.IDs = append(a.IDs, s.ID)
		indexes[i] = s.History.index()
	}

	// Portfolios report the return of their own last point, the benchmark
	// the one on the last data date.
	for _, s := range portfolios {
		if p, ok := s.History.Last(); ok {
			a.Returns[s.ID] = Change(p.Value, initialInvestment)
		}
	}
	if benchmark != nil {
		if v, ok := indexes[len(all)-1].Get(last); ok {
			a.Returns[benchmark.ID] = Change(v, initialInvestment)
		}
	}

	for _, on := range dataDates {
		row := a.newRow(on, false)
		for i, id := range a.IDs {
			if v, ok := indexes[i].Get(on); ok {
				row.Values[id] = &v
			}
		}
		if on == last {
			row.Returns = a.Returns
		}
		a.Rows = append(a.Rows, row)
	}

	on := last
	for range max(al.FutureDays, 0) {
		on = on.AddBusinessDays(1)
		a.Rows = append(a.Rows, a.newRow(on, true))
	}
	return a, nil
}

// newRow returns a row with every series set to null.
func (a *Alignment) newRow(on date.Date, future bool) Row {
	row := Row{
		Date:   on,
		Future: future,
		Values: make(map[string]*float64, len(a.IDs)),
		order:  a.IDs,
	}
	for _, id := range a.IDs {
		row.Values[id] = nil
	}
	return row
}
