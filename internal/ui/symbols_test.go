package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolGlyphs(t *testing.T) {
	assert.Equal(t, "✓", SymbolSuccess)
	assert.Equal(t, "✗", SymbolFail)
	assert.Equal(t, "⚠", SymbolWarning)
	assert.Equal(t, "○", SymbolPending)
	assert.Equal(t, "●", SymbolComplete)
}

func TestSymbolsDistinct(t *testing.T) {
	symbols := []string{SymbolSuccess, SymbolFail, SymbolWarning, SymbolPending, SymbolComplete}

	seen := make(map[string]bool)
	for _, s := range symbols {
		assert.False(t, seen[s], "duplicate symbol %q", s)
		seen[s] = true
	}
}
