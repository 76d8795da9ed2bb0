package chart

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/classfolio"
	"github.com/etnz/classfolio/date"
	"github.com/google/go-cmp/cmp"
	"github.com/wcharczuk/go-chart/v2"
)

func testPerformance(t *testing.T) *classfolio.Performance {
	t.Helper()
	cfg := &classfolio.Config{
		StartDate:         date.MustParse("2025-01-06"),
		InitialInvestment: 10000,
		Sections: []classfolio.Section{
			{ID: "001", Name: "Section 001", Holdings: []classfolio.Holding{{Ticker: "AAPL", Votes: 3}, {Ticker: "MSFT", Votes: 1}}},
			{ID: "042", Name: "Section 042", Holdings: []classfolio.Holding{{Ticker: "MSFT", Votes: 1}}},
		},
	}
	prices := &classfolio.PriceData{Prices: classfolio.PriceTable{
		date.MustParse("2025-01-06"): {"AAPL": 100, "MSFT": 200, "SPY": 500},
		date.MustParse("2025-01-07"): {"AAPL": 110, "MSFT": 220},
		date.MustParse("2025-01-08"): {"AAPL": 120, "MSFT": 200, "SPY": 520},
	}}
	p, err := classfolio.ComputePerformance(cfg, prices, classfolio.DefaultOptions())
	if err != nil {
		t.Fatalf("ComputePerformance() unexpected error: %v", err)
	}
	return p
}

func TestNewPerformance(t *testing.T) {
	ch, err := NewPerformance(testPerformance(t), DefaultOptions())
	if err != nil {
		t.Fatalf("NewPerformance() unexpected error: %v", err)
	}

	var lines []chart.ContinuousSeries
	var annotations []chart.Value2
	for _, s := range ch.Series {
		switch s := s.(type) {
		case chart.ContinuousSeries:
			lines = append(lines, s)
		case chart.AnnotationSeries:
			annotations = append(annotations, s.Annotations...)
		}
	}
	// reference, 001, 042, and SPY cut in two by 2025-01-07.
	if len(lines) != 5 {
		t.Fatalf("NewPerformance() has %d lines, want 5", len(lines))
	}
	if got := lines[0].Name; got != "Initial ($10,000)" {
		t.Errorf("reference line name = %q, want Initial ($10,000)", got)
	}
	palette := DefaultPalette()
	if got := lines[1].Style.StrokeColor; !got.Equals(palette.Color("001")) {
		t.Errorf("001 color = %v, want %v", got, palette.Color("001"))
	}
	if got := lines[2].Style.StrokeColor; !got.Equals(palette.Default) {
		t.Errorf("042 color = %v, want the default color", got)
	}
	spy := lines[3:]
	if spy[0].Name != "S&P 500" || spy[1].Name != "" {
		t.Errorf("benchmark lines names = %q, %q want S&P 500 then none", spy[0].Name, spy[1].Name)
	}
	if diff := cmp.Diff([]float64{0}, spy[0].XValues); diff != "" {
		t.Errorf("benchmark first segment mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{2}, spy[1].XValues); diff != "" {
		t.Errorf("benchmark second segment mismatch (-want +got):\n%s", diff)
	}
	if len(spy[0].Style.StrokeDashArray) == 0 {
		t.Errorf("benchmark line is not dashed")
	}

	var labels []string
	for _, a := range annotations {
		labels = append(labels, a.Label)
	}
	if diff := cmp.Diff([]string{"+15.0%", "+0.0%", "+4.0%"}, labels); diff != "" {
		t.Errorf("return annotations mismatch (-want +got):\n%s", diff)
	}

	// three data days and five future ones.
	if got := len(ch.XAxis.Ticks); got != 8 {
		t.Errorf("len(XAxis.Ticks) = %d, want 8", got)
	}
	if got := ch.XAxis.Ticks[0].Label; got != "Jan 6" {
		t.Errorf("XAxis.Ticks[0].Label = %q, want Jan 6", got)
	}
	if got := ch.YAxis.Ticks[0].Label; !strings.HasPrefix(got, "$") {
		t.Errorf("YAxis.Ticks[0].Label = %q, want a dollar amount", got)
	}
}

func TestXAxisLabelStride(t *testing.T) {
	p := testPerformance(t)
	ax := xAxis(p.Alignment, 3)
	var labels []string
	for _, tick := range ax.Ticks {
		labels = append(labels, tick.Label)
	}
	// 8 days, every third one.
	if diff := cmp.Diff([]string{"Jan 6", "Jan 9", "Jan 14"}, labels); diff != "" {
		t.Errorf("xAxis() labels mismatch (-want +got):\n%s", diff)
	}
}

func TestPerformanceRender(t *testing.T) {
	testCases := []struct {
		format Format
		prefix string
	}{
		{PNG, "\x89PNG"},
		{SVG, "<svg"},
	}
	for _, tc := range testCases {
		t.Run(string(tc.format), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Format = tc.format
			var buf bytes.Buffer
			if err := Performance(&buf, testPerformance(t), opts); err != nil {
				t.Fatalf("Performance() unexpected error: %v", err)
			}
			if !strings.HasPrefix(buf.String(), tc.prefix) {
				t.Errorf("Performance() output starts with %q, want %q", buf.String()[:min(8, buf.Len())], tc.prefix)
			}
		})
	}
}

func TestPerformanceWithoutData(t *testing.T) {
	cfg := &classfolio.Config{StartDate: date.MustParse("2025-01-06"), InitialInvestment: 10000}
	p, err := classfolio.ComputePerformance(cfg, nil, classfolio.DefaultOptions())
	if err != nil {
		t.Fatalf("ComputePerformance() unexpected error: %v", err)
	}
	if err := Performance(new(bytes.Buffer), p, DefaultOptions()); !errors.Is(err, classfolio.ErrNoData) {
		t.Errorf("Performance() error = %v, want %v", err, classfolio.ErrNoData)
	}
}

func TestHoldings(t *testing.T) {
	s := classfolio.Section{ID: "001", Name: "Section 001", Holdings: []classfolio.Holding{
		{Ticker: "MSFT", Votes: 1}, {Ticker: "AAPL", Votes: 3}, {Ticker: "NVDA", Votes: 0},
	}}
	pie, err := NewHoldings(s, DefaultOptions())
	if err != nil {
		t.Fatalf("NewHoldings() unexpected error: %v", err)
	}
	var labels []string
	for _, v := range pie.Values {
		labels = append(labels, v.Label)
	}
	if diff := cmp.Diff([]string{"AAPL 75.0%", "MSFT 25.0%"}, labels); diff != "" {
		t.Errorf("NewHoldings() labels mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := Holdings(&buf, s, DefaultOptions()); err != nil {
		t.Fatalf("Holdings() unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Errorf("Holdings() wrote nothing")
	}

	if _, err := NewHoldings(classfolio.Section{ID: "007"}, DefaultOptions()); !errors.Is(err, ErrComingSoon) {
		t.Errorf("NewHoldings(empty) error = %v, want %v", err, ErrComingSoon)
	}
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]Format{"out.svg": SVG, "OUT.SVG": SVG, "out.png": PNG, "out": PNG} {
		if got := FormatOf(path); got != want {
			t.Errorf("FormatOf(%q) = %q, want %q", path, got, want)
		}
	}
}
