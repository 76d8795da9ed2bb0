package classfolio

import (
	"fmt"
	"math"
)

// Percent is a ratio expressed in percent: 12.5 means 12.5%.
type Percent float64

// percentTolerance is the precision of Percent comparisons.
const percentTolerance = 1e-4

// Change returns the percent change from reference to value.
func Change(value, reference float64) Percent {
	return Percent((value - reference) / reference * 100)
}

// Equal reports whether p and q are the same percentage, up to rounding errors.
func (p Percent) Equal(q Percent) bool { return math.Abs(float64(p-q)) < percentTolerance }

// String prints one decimal: "12.5%".
func (p Percent) String() string { return fmt.Sprintf("%.1f%%", float64(p)) }

// SignedString always prints the sign, zero included: "+0.0%".
func (p Percent) SignedString() string { return fmt.Sprintf("%+.1f%%", float64(p)) }
