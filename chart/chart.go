// Package chart draws the performance of the portfolios, and their holdings,
// as PNG or SVG images.
package chart

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/etnz/classfolio"
	"github.com/wcharczuk/go-chart/v2"
)

// Format is an image format.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// FormatOf returns the format matching a file extension, PNG by default.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return SVG
	}
	return PNG
}

func (f Format) provider() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}
	return chart.PNG
}

// Options configures the rendering.
type Options struct {
	Format  Format
	Width   int
	Height  int
	Palette Palette
	// MaxLabels is the most date labels drawn on the x axis.
	MaxLabels int
}

// DefaultOptions returns a 1024x450 PNG with the default palette.
func DefaultOptions() Options {
	return Options{Format: PNG, Width: 1024, Height: 450, Palette: DefaultPalette(), MaxLabels: 12}
}

// dateLabel is the x axis date layout, like "Jan 2".
const dateLabel = "Jan 2"

var (
	benchmarkDash = []float64{8, 4}
	referenceDash = []float64{5, 5}
)

// Performance renders the performance chart of p into w.
//
// It returns classfolio.ErrNoData when there is nothing to draw yet.
func Performance(w io.Writer, p *classfolio.Performance, opts Options) error {
	ch, err := NewPerformance(p, opts)
	if err != nil {
		return err
	}
	if err := ch.Render(opts.Format.provider(), w); err != nil {
		return fmt.Errorf("cannot render performance chart: %w", err)
	}
	return nil
}

// NewPerformance builds the performance chart: one line per series, over
// the full date axis, with the initial investment as a reference line.
//
// A series is drawn as several lines when it has gaps, so that no value is
// ever interpolated.
func NewPerformance(p *classfolio.Performance, opts Options) (*chart.Chart, error) {
	if !p.HasData() {
		return nil, classfolio.ErrNoData
	}
	a := p.Alignment
	if opts.Palette.Colors == nil {
		opts.Palette = DefaultPalette()
	}

	names := make(map[string]string)
	for _, s := range p.Series {
		names[s.ID] = s.Name
	}
	benchmarkID := ""
	if p.Benchmark != nil {
		benchmarkID = p.Benchmark.ID
		names[benchmarkID] = p.Benchmark.Name
	}

	ch := &chart.Chart{
		Title:      "Portfolio Performance Comparison",
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 70, Bottom: 20}},
		XAxis:      xAxis(a, opts.MaxLabels),
		YAxis:      yAxis(p.Axis),
	}

	// legend only shows the first line of each series.
	legend := &chart.Chart{}
	last := float64(len(a.Rows) - 1)
	reference := chart.ContinuousSeries{
		Name:    fmt.Sprintf("Initial (%s)", classfolio.M(p.InitialInvestment, "")),
		XValues: []float64{0, max(last, 1)},
		YValues: []float64{p.InitialInvestment, p.InitialInvestment},
		Style:   chart.Style{StrokeColor: axisColor, StrokeWidth: 1, StrokeDashArray: referenceDash},
	}
	ch.Series = append(ch.Series, reference)
	legend.Series = append(legend.Series, reference)

	var annotations []chart.Value2
	for _, id := range a.IDs {
		style := chart.Style{StrokeColor: opts.Palette.Color(id), StrokeWidth: 2.5}
		if id == benchmarkID {
			style.StrokeDashArray = benchmarkDash
		} else {
			style.DotColor = opts.Palette.Color(id)
			style.DotWidth = 4
		}
		for i, seg := range segments(a, id) {
			s := chart.ContinuousSeries{XValues: seg.x, YValues: seg.y, Style: style}
			if len(seg.x) == 1 {
				// a lone point has no line, make it visible.
				s.Style.DotColor = style.StrokeColor
				s.Style.DotWidth = 4
			}
			if i == 0 {
				s.Name = names[id]
				legend.Series = append(legend.Series, s)
			}
			ch.Series = append(ch.Series, s)
		}
		if ret, ok := a.Returns[id]; ok {
			if v, ok := lastValue(a, id); ok {
				annotations = append(annotations, chart.Value2{
					XValue: float64(len(a.DataRows()) - 1),
					YValue: v,
					Label:  ret.SignedString(),
					Style:  chart.Style{StrokeColor: opts.Palette.Color(id), FontColor: opts.Palette.Color(id)},
				})
			}
		}
	}
	if len(annotations) > 0 {
		ch.Series = append(ch.Series, chart.AnnotationSeries{Annotations: annotations})
	}
	ch.Elements = []chart.Renderable{chart.Legend(legend)}
	return ch, nil
}

// segment is a run of consecutive rows where a series has a value.
type segment struct{ x, y []float64 }

// segments splits the series id at every row without a value.
func segments(a *classfolio.Alignment, id string) []segment {
	var segs []segment
	var cur segment
	for i, r := range a.Rows {
		v, ok := r.Value(id)
		if !ok {
			if len(cur.x) > 0 {
				segs = append(segs, cur)
				cur = segment{}
			}
			continue
		}
		cur.x = append(cur.x, float64(i))
		cur.y = append(cur.y, v)
	}
	if len(cur.x) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

// lastValue returns the latest value of the series id.
func lastValue(a *classfolio.Alignment, id string) (float64, bool) {
	rows := a.DataRows()
	for i := len(rows) - 1; i >= 0; i-- {
		if v, ok := rows[i].Value(id); ok {
			return v, true
		}
	}
	return 0, false
}

// xAxis labels the row indexes with their dates, future days included.
func xAxis(a *classfolio.Alignment, maxLabels int) chart.XAxis {
	stride := 1
	if maxLabels > 0 && len(a.Rows) > maxLabels {
		stride = (len(a.Rows) + maxLabels - 1) / maxLabels
	}
	var ticks []chart.Tick
	for i := 0; i < len(a.Rows); i += stride {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: a.Rows[i].Date.Format(dateLabel)})
	}
	return chart.XAxis{
		Style: chart.Style{StrokeColor: axisColor, FontColor: axisColor},
		Range: &chart.ContinuousRange{Min: 0, Max: float64(max(len(a.Rows)-1, 1))},
		Ticks: ticks,
	}
}

// yAxis uses the value axis ticks, as whole dollars.
func yAxis(axis classfolio.Axis) chart.YAxis {
	ticks := make([]chart.Tick, len(axis.Ticks))
	for i, t := range axis.Ticks {
		ticks[i] = chart.Tick{Value: t, Label: classfolio.M(t, "").String()}
	}
	return chart.YAxis{
		Style: chart.Style{StrokeColor: axisColor, FontColor: axisColor},
		Range: &chart.ContinuousRange{Min: axis.Min, Max: axis.Max},
		Ticks: ticks,
	}
}

// ErrComingSoon is returned when a section has no holdings to draw.
var ErrComingSoon = errors.New("no holdings yet")
