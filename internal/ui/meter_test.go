package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

// stripANSI removes escape sequences so assertions see the visible text.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestThresholdColor(t *testing.T) {
	tests := []struct {
		percent float64
		want    lipgloss.Color
	}{
		{0, ColorSuccess},
		{59.9, ColorSuccess},
		{60, ColorWarning},
		{79.9, ColorWarning},
		{80, ColorError},
		{100, ColorError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.1f", tt.percent), func(t *testing.T) {
			assert.Equal(t, tt.want, ThresholdColor(tt.percent))
		})
	}
}

func TestClampPercent(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"zero stays zero", 0, 0},
		{"fifty stays fifty", 50, 50},
		{"hundred stays hundred", 100, 100},
		{"negative becomes zero", -10, 0},
		{"over hundred becomes hundred", 150, 100},
		{"fractional values work", 33.33, 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClampPercent(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCalculateBarCounts(t *testing.T) {
	tests := []struct {
		name       string
		percent    float64
		width      int
		wantFilled int
		wantEmpty  int
	}{
		{"zero percent", 0, 10, 0, 10},
		{"fifty percent", 50, 10, 5, 5},
		{"hundred percent", 100, 10, 10, 0},
		{"33 percent rounds down", 33, 10, 3, 7},
		{"different width", 50, 20, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filled, empty := CalculateBarCounts(tt.percent, tt.width)
			assert.Equal(t, tt.wantFilled, filled, "filled count")
			assert.Equal(t, tt.wantEmpty, empty, "empty count")
		})
	}
}

func TestBuildBarString(t *testing.T) {
	tests := []struct {
		name     string
		filled   int
		empty    int
		expected string
	}{
		{"all empty", 0, 5, "[░░░░░]"},
		{"all filled", 5, 0, "[█████]"},
		{"mixed", 3, 2, "[███░░]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BuildBarString(tt.filled, tt.empty)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestBarConstants(t *testing.T) {
	assert.Equal(t, '█', BarFilled, "filled block constant")
	assert.Equal(t, '░', BarEmpty, "empty block constant")
}

func TestRenderMeter(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		width   int
		wantLen int // visible rune count without ANSI codes
	}{
		{"zero width returns empty", 50, 0, 0},
		{"normal meter", 50, 10, 12}, // 10 chars + 2 brackets
		{"clamped over hundred", 250, 10, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderMeter(tt.percent, tt.width)
			if tt.width <= 0 {
				assert.Empty(t, result)
				return
			}
			stripped := stripANSI(result)
			assert.Equal(t, tt.wantLen, len([]rune(stripped)))
		})
	}
}

func TestRenderMeterFullAtHundred(t *testing.T) {
	result := stripANSI(RenderMeter(100, 10))
	assert.Equal(t, "["+strings.Repeat("█", 10)+"]", result)
}

func TestRenderMeterLine(t *testing.T) {
	line := stripANSI(RenderMeterLine("CPU", 42.5, 10))
	assert.Contains(t, line, "CPU")
	assert.Contains(t, line, "42.5%")
	assert.Contains(t, line, "[")
}
