package classfolio

import "math"

// DefaultTickCount is the number of ticks aimed at on the value axis.
const DefaultTickCount = 5

// niceSteps are the candidate distances between two ticks.
var niceSteps = []float64{50, 100, 200, 250, 500, 1000}

// NiceStep returns the smallest candidate step at least as large as rough.
//
// Portfolio values stay in the thousands of dollars, so a rough step above
// the largest candidate still gets the largest candidate.
func NiceStep(rough float64) float64 {
	for _, s := range niceSteps {
		if s >= rough {
			return s
		}
	}
	return niceSteps[len(niceSteps)-1]
}

// Ticks returns every multiple of a nice step from below lo to above hi, in
// ascending order, aiming at target ticks.
//
// A target below 2 is treated as 2.
func Ticks(lo, hi float64, target int) []float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	target = max(target, 2)
	step := NiceStep((hi - lo) / float64(target-1))
	niceMin := math.Floor(lo/step) * step
	niceMax := math.Ceil(hi/step) * step

	// count steps rather than accumulate them, to keep ticks exact multiples.
	n := int(math.Round((niceMax - niceMin) / step))
	ticks := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		ticks = append(ticks, niceMin+float64(i)*step)
	}
	return ticks
}

// Axis is the value axis domain of a chart.
type Axis struct {
	Min, Max float64
	Ticks    []float64
}

// NewAxis computes the value axis of an alignment, always including the
// initial investment, with a 2% margin on both ends.
func NewAxis(a *Alignment, initialInvestment float64, target int) Axis {
	lo, hi := initialInvestment, initialInvestment
	if a != nil {
		if l, h, ok := a.Bounds(); ok {
			lo, hi = min(lo, l), max(hi, h)
		}
	}
	ticks := Ticks(lo*0.98, hi*1.02, target)
	return Axis{Min: ticks[0], Max: ticks[len(ticks)-1], Ticks: ticks}
}
