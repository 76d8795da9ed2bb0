package chart

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Palette maps a series id to its line color.
type Palette struct {
	Colors map[string]drawing.Color
	// Default is the color of ids missing from Colors.
	Default drawing.Color
}

// hex parses a "#RRGGBB" color.
func hex(s string) drawing.Color { return drawing.ColorFromHex(strings.TrimPrefix(s, "#")) }

// DefaultPalette returns the colors of the known sections and of the benchmark.
func DefaultPalette() Palette {
	return Palette{
		Colors: map[string]drawing.Color{
			"001": hex("#3B82F6"),
			"002": hex("#10B981"),
			"003": hex("#F59E0B"),
			"007": hex("#8B5CF6"),
			"008": hex("#EC4899"),
			"SPY": hex("#1F2937"),
		},
		Default: hex("#3B82F6"),
	}
}

// Color returns the color of the series id.
func (p Palette) Color(id string) drawing.Color {
	if c, ok := p.Colors[id]; ok {
		return c
	}
	return p.Default
}

// sliceColors are used in turn for pie slices.
var sliceColors = []drawing.Color{
	hex("#6F7F99"),
	hex("#10B981"),
	hex("#F59E0B"),
	hex("#8B5CF6"),
	hex("#EC4899"),
	hex("#06B6D4"),
	hex("#EF4444"),
	hex("#84CC16"),
	hex("#F97316"),
	hex("#6366F1"),
}

var (
	axisColor = hex("#666A70")
	textColor = hex("#2A2F36")
)
