package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Eight block glyphs, one per vertical level, lowest first.
var sparklineLevels = []rune("▁▂▃▄▅▆▇█")

// RenderSparkline draws a percentage series as one block glyph per sample,
// keeping the most recent width samples. The vertical scale is fixed at
// 0-100, so equal load always renders the same glyph from frame to frame;
// out-of-range values clamp to the end glyphs. The whole line is tinted by
// the newest sample's threshold color. Returns "" when there is no data or
// no room.
func RenderSparkline(data []float64, width int) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	var b strings.Builder
	b.Grow(len(data) * 3) // each block glyph is 3 bytes of UTF-8

	for _, v := range data {
		b.WriteRune(sparklineLevels[sparklineLevel(v)])
	}

	tint := lipgloss.NewStyle().Foreground(ThresholdColor(data[len(data)-1]))
	return tint.Render(b.String())
}

// sparklineLevel maps a percentage to a glyph index.
func sparklineLevel(percent float64) int {
	level := int(percent / 100 * float64(len(sparklineLevels)-1))
	if level < 0 {
		return 0
	}
	if level > len(sparklineLevels)-1 {
		return len(sparklineLevels) - 1
	}
	return level
}
