package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistinctSortedIDs(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "deduplicates and sorts",
			input:    []string{"b", "a", "b", "c", "a"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "opposite input orders lock identically",
			input:    []string{"acc-2", "acc-1"},
			expected: []string{"acc-1", "acc-2"},
		},
		{
			name:     "empty input",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, distinctSortedIDs(tt.input))
		})
	}
}

func TestDistinctSortedIDs_SameSetRegardlessOfOrder(t *testing.T) {
	forward := distinctSortedIDs([]string{"acc-1", "acc-2", "acc-3"})
	reverse := distinctSortedIDs([]string{"acc-3", "acc-2", "acc-1"})

	assert.Equal(t, forward, reverse)
}
