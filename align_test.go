package classfolio

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/etnz/classfolio/date"
	"github.com/google/go-cmp/cmp"
)

// sampleAlignment aligns the tech section and SPY from 2025-01-06 on.
func sampleAlignment(t *testing.T) *Alignment {
	t.Helper()
	start := d("2025-01-06")
	portfolio := Series{ID: "001", Name: "Section 001", History: BuildHistory(techSection(), samplePrices(), start, 10000)}
	benchmark := &Series{ID: "SPY", Name: "S&P 500", History: BuildBenchmark(samplePrices(), "SPY", start, 10000)}
	a, err := Align([]Series{portfolio}, benchmark, 10000)
	if err != nil {
		t.Fatalf("Align() unexpected error: %v", err)
	}
	return a
}

func TestAlignAxis(t *testing.T) {
	a := sampleAlignment(t)
	want := []date.Date{
		d("2025-01-06"), d("2025-01-07"), d("2025-01-08"), d("2025-01-09"), d("2025-01-10"),
		// next five business days, over the weekend.
		d("2025-01-13"), d("2025-01-14"), d("2025-01-15"), d("2025-01-16"), d("2025-01-17"),
	}
	if diff := cmp.Diff(want, a.Dates(), cmp.AllowUnexported(date.Date{})); diff != "" {
		t.Errorf("Align() dates mismatch (-want +got):\n%s", diff)
	}
	if a.LastDataDate != d("2025-01-10") {
		t.Errorf("Align() LastDataDate = %v, want 2025-01-10", a.LastDataDate)
	}
	if diff := cmp.Diff([]string{"001", "SPY"}, a.IDs); diff != "" {
		t.Errorf("Align() IDs mismatch (-want +got):\n%s", diff)
	}
	if got := len(a.DataRows()); got != 5 {
		t.Errorf("len(DataRows()) = %d, want 5", got)
	}
}

func TestAlignFutureRowsAreEmpty(t *testing.T) {
	a := sampleAlignment(t)
	for _, r := range a.Rows[len(a.DataRows()):] {
		if !r.Future {
			t.Errorf("row %v: Future = false, want true", r.Date)
		}
		if !r.Date.IsBusinessDay() {
			t.Errorf("row %v is not a business day", r.Date)
		}
		for _, id := range a.IDs {
			assertNull(t, r, id)
		}
		if len(r.Returns) != 0 {
			t.Errorf("row %v: Returns = %v, want none", r.Date, r.Returns)
		}
	}
}

func TestAlignDoesNotFillGaps(t *testing.T) {
	a := sampleAlignment(t)
	gap := a.Rows[3]
	if gap.Date != d("2025-01-09") {
		t.Fatalf("Rows[3].Date = %v, want 2025-01-09", gap.Date)
	}
	// SPY has no price on 2025-01-09, its 2025-01-08 value must not be carried.
	assertNull(t, gap, "SPY")
	if v, ok := gap.Value("001"); !ok || !approx(v, 2625) {
		t.Errorf("Rows[3].Value(001) = %v, %v want 2625, true", v, ok)
	}
}

func TestAlignReturns(t *testing.T) {
	a := sampleAlignment(t)
	want := map[string]Percent{"001": 0, "SPY": -1}
	if diff := cmp.Diff(want, a.Returns, cmp.Comparer(Percent.Equal)); diff != "" {
		t.Errorf("Align() returns mismatch (-want +got):\n%s", diff)
	}
	for _, r := range a.Rows {
		if r.Date == a.LastDataDate {
			if len(r.Returns) != 2 {
				t.Errorf("last data row returns = %v, want 2 returns", r.Returns)
			}
			continue
		}
		if len(r.Returns) != 0 {
			t.Errorf("row %v: Returns = %v, want none", r.Date, r.Returns)
		}
	}
}

func TestAlignPortfolioEndingEarly(t *testing.T) {
	early := Series{ID: "002", History: History{{d("2025-01-06"), 10000}, {d("2025-01-07"), 10500}}}
	late := Series{ID: "003", History: History{{d("2025-01-06"), 10000}, {d("2025-01-08"), 9500}}}
	a, err := Align([]Series{early, late}, nil, 10000)
	if err != nil {
		t.Fatalf("Align() unexpected error: %v", err)
	}
	if a.LastDataDate != d("2025-01-08") {
		t.Errorf("LastDataDate = %v, want 2025-01-08", a.LastDataDate)
	}
	// 002 return is the one of its own last point.
	if got := a.Returns["002"]; !got.Equal(5) {
		t.Errorf("Returns[002] = %v, want 5%%", got)
	}
	if got := a.Returns["003"]; !got.Equal(-5) {
		t.Errorf("Returns[003] = %v, want -5%%", got)
	}
	assertNull(t, a.Rows[2], "002")
	assertNull(t, a.Rows[1], "003")
}

func TestAlignBenchmarkWithoutLastDate(t *testing.T) {
	p := Series{ID: "001", History: History{{d("2025-01-06"), 10000}, {d("2025-01-07"), 10100}}}
	b := &Series{ID: "SPY", History: History{{d("2025-01-06"), 10000}, {d("2025-01-08"), 10300}}}
	a, err := Align([]Series{p}, b, 10000)
	if err != nil {
		t.Fatalf("Align() unexpected error: %v", err)
	}
	if _, ok := a.Returns["SPY"]; ok {
		t.Errorf("Returns[SPY] = %v, want none", a.Returns["SPY"])
	}
	// benchmark only days are not on the axis.
	for _, r := range a.DataRows() {
		if r.Date == d("2025-01-08") {
			t.Errorf("benchmark only day %v is a data row", r.Date)
		}
	}
}

func TestAlignNoData(t *testing.T) {
	testCases := []struct {
		name       string
		portfolios []Series
	}{
		{"no portfolios", nil},
		{"empty histories", []Series{{ID: "001"}, {ID: "002"}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := &Series{ID: "SPY", History: History{{d("2025-01-06"), 10000}}}
			if _, err := Align(tc.portfolios, b, 10000); !errors.Is(err, ErrNoData) {
				t.Errorf("Align() error = %v, want %v", err, ErrNoData)
			}
		})
	}
}

func TestAlignFutureDays(t *testing.T) {
	p := Series{ID: "001", History: History{{d("2025-01-09"), 10000}}}
	a, err := Aligner{FutureDays: 2}.Align([]Series{p}, nil, 10000)
	if err != nil {
		t.Fatalf("Align() unexpected error: %v", err)
	}
	want := []date.Date{d("2025-01-09"), d("2025-01-10"), d("2025-01-13")}
	if diff := cmp.Diff(want, a.Dates(), cmp.AllowUnexported(date.Date{})); diff != "" {
		t.Errorf("Align() dates mismatch (-want +got):\n%s", diff)
	}
}

func TestRowMarshalJSON(t *testing.T) {
	a := sampleAlignment(t)
	testCases := []struct {
		row  int
		want string
	}{
		{0, `{"date":"2025-01-06","001":10000,"SPY":10000}`},
		{3, `{"date":"2025-01-09","001":2625,"SPY":null}`},
		{4, `{"date":"2025-01-10","001":10000,"001_return":0,"SPY":9900,"SPY_return":-1}`},
		{5, `{"date":"2025-01-13","001":null,"SPY":null}`},
	}
	for _, tc := range testCases {
		got, err := json.Marshal(a.Rows[tc.row])
		if err != nil {
			t.Fatalf("json.Marshal(Rows[%d]) unexpected error: %v", tc.row, err)
		}
		if string(got) != tc.want {
			t.Errorf("json.Marshal(Rows[%d]) = %s, want %s", tc.row, got, tc.want)
		}
	}
}

func TestAlignmentBounds(t *testing.T) {
	a := sampleAlignment(t)
	lo, hi, ok := a.Bounds()
	if !ok || !approx(lo, 2625) || !approx(hi, 11000) {
		t.Errorf("Bounds() = %v, %v, %v want 2625, 11000, true", lo, hi, ok)
	}
}
