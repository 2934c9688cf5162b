package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Meter block characters.
const (
	BarFilled = '█'
	BarEmpty  = '░'
)

// ThresholdColor returns a color for resource percentages. Higher values
// indicate pressure: 0-60% green, 60-80% yellow, 80%+ red.
func ThresholdColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 80:
		return ColorError
	case percent >= 60:
		return ColorWarning
	default:
		return ColorSuccess
	}
}

// ClampPercent clamps a percentage to the 0-100 range.
func ClampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// CalculateBarCounts returns the number of filled and empty characters for a
// meter. Percent should be 0-100, width is the total bar width.
func CalculateBarCounts(percent float64, width int) (filled, empty int) {
	filled = int((percent / 100.0) * float64(width))
	empty = width - filled
	return
}

// BuildBarString builds the raw bar string (without styling) from
// filled/empty counts, wrapped in [ ].
func BuildBarString(filledCount, emptyCount int) string {
	var sb strings.Builder
	sb.Grow(filledCount + emptyCount + 2)

	sb.WriteRune('[')
	for i := 0; i < filledCount; i++ {
		sb.WriteRune(BarFilled)
	}
	for i := 0; i < emptyCount; i++ {
		sb.WriteRune(BarEmpty)
	}
	sb.WriteRune(']')

	return sb.String()
}

// RenderMeter renders a colored percent meter. Percent should be 0-100.
func RenderMeter(percent float64, width int) string {
	if width <= 0 {
		return ""
	}

	percent = ClampPercent(percent)
	filled, empty := CalculateBarCounts(percent, width)
	bar := BuildBarString(filled, empty)

	style := lipgloss.NewStyle().Foreground(ThresholdColor(percent))
	return style.Render(bar)
}

// RenderMeterLine renders a labeled meter with the percentage appended, the
// standard per-resource line of status and watch views.
func RenderMeterLine(label string, percent float64, width int) string {
	meter := RenderMeter(percent, width)
	pct := fmt.Sprintf("%5.1f%%", ClampPercent(percent))
	return padRight(label, 8) + meter + " " + pct
}
