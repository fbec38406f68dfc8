package updeto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name      string
		store     string
		installed string
		expected  int
	}{
		{
			name:      "identical versions",
			store:     "1.2.3",
			installed: "1.2.3",
			expected:  0,
		},
		{
			name:      "missing component pads to zero",
			store:     "1.2.0",
			installed: "1.2",
			expected:  0,
		},
		{
			name:      "store patch ahead of shorter installed",
			store:     "1.2.1",
			installed: "1.2",
			expected:  1,
		},
		{
			name:      "installed minor ahead of longer store",
			store:     "1.1.9",
			installed: "1.2",
			expected:  -1,
		},
		{
			name:      "numeric not lexicographic",
			store:     "1.10",
			installed: "1.9",
			expected:  1,
		},
		{
			name:      "store major ahead",
			store:     "2.0.0",
			installed: "1.9.9",
			expected:  1,
		},
		{
			name:      "installed ahead",
			store:     "1.0.0",
			installed: "1.0.1",
			expected:  -1,
		},
		{
			name:      "four component equality",
			store:     "1.2.3.0",
			installed: "1.2.3",
			expected:  0,
		},
		{
			name:      "four component store ahead",
			store:     "1.2.3.4",
			installed: "1.2.3",
			expected:  1,
		},
		{
			name:      "four component installed ahead",
			store:     "1.2.3.4",
			installed: "1.2.4",
			expected:  -1,
		},
		{
			name:      "pre-release below release",
			store:     "1.2.0-beta",
			installed: "1.2.0",
			expected:  -1,
		},
		{
			name:      "release above pre-release",
			store:     "1.2.0",
			installed: "1.2.0-beta.1",
			expected:  1,
		},
		{
			name:      "non-numeric components compare lexicographically",
			store:     "1.2.3.beta",
			installed: "1.2.3.alpha",
			expected:  1,
		},
		{
			name:      "equal non-numeric components",
			store:     "1.2.3.beta",
			installed: "1.2.3.beta",
			expected:  0,
		},
		{
			name:      "numeric difference wins before non-numeric tail",
			store:     "1.3.0.beta",
			installed: "1.2.9.beta",
			expected:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompareVersions(tt.store, tt.installed))
		})
	}
}

func TestCompareVersionsSymmetry(t *testing.T) {
	// Swapping the operands must flip the sign for the comparison to be a
	// total order.
	pairs := [][2]string{
		{"1.2", "1.2.3"},
		{"1.9", "1.10"},
		{"1.2.3.4", "1.2.3"},
		{"2.0.0", "2.0.0"},
		{"1.2.3.beta", "1.2.3.alpha"},
	}
	for _, pair := range pairs {
		forward := CompareVersions(pair[0], pair[1])
		backward := CompareVersions(pair[1], pair[0])
		assert.Equal(t, forward, -backward, "pair %v", pair)
	}
}
