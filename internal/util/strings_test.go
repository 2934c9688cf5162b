package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinOrNone(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		expected string
	}{
		{
			name:     "empty slice",
			items:    []string{},
			expected: "(none)",
		},
		{
			name:     "nil slice",
			items:    nil,
			expected: "(none)",
		},
		{
			name:     "single item",
			items:    []string{"eth0"},
			expected: "eth0",
		},
		{
			name:     "multiple items",
			items:    []string{"eth0", "lo", "wlan0"},
			expected: "eth0, lo, wlan0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, JoinOrNone(tt.items))
		})
	}
}

func TestJoinOrDefault(t *testing.T) {
	assert.Equal(t, "-", JoinOrDefault(nil, "-"))
	assert.Equal(t, "a, b", JoinOrDefault([]string{"a", "b"}, "-"))
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected string
	}{
		{name: "zero is plural", count: 0, expected: "processes"},
		{name: "one is singular", count: 1, expected: "process"},
		{name: "many is plural", count: 5, expected: "processes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Pluralize(tt.count, "process", "processes"))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{
			name:     "short string unchanged",
			input:    "vim",
			max:      10,
			expected: "vim",
		},
		{
			name:     "exact length unchanged",
			input:    "12345",
			max:      5,
			expected: "12345",
		},
		{
			name:     "long string gets ellipsis",
			input:    "/usr/lib/systemd/systemd --switched-root",
			max:      20,
			expected: "/usr/lib/systemd/...",
		},
		{
			name:     "zero max yields empty",
			input:    "anything",
			max:      0,
			expected: "",
		},
		{
			name:     "tiny max skips ellipsis",
			input:    "abcdef",
			max:      2,
			expected: "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.max))
		})
	}
}
