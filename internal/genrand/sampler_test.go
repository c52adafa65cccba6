package genrand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Weighted Sampling Tests
// ==========================

func TestSample_DistributionWithinTolerance(t *testing.T) {
	s := New(42)
	options := []Weighted[string]{
		{Value: "a", Weight: 0.5},
		{Value: "b", Weight: 0.3},
		{Value: "c", Weight: 0.2},
	}

	const draws = 10000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		v, err := Sample(s, options)
		require.NoError(t, err)
		counts[v]++
	}

	assert.InDelta(t, 0.5, float64(counts["a"])/draws, 0.02)
	assert.InDelta(t, 0.3, float64(counts["b"])/draws, 0.02)
	assert.InDelta(t, 0.2, float64(counts["c"])/draws, 0.02)
}

func TestSample_UnnormalizedWeights(t *testing.T) {
	s := New(42)
	options := []Weighted[string]{
		{Value: "x", Weight: 5},
		{Value: "y", Weight: 15},
	}

	const draws = 10000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		v, err := Sample(s, options)
		require.NoError(t, err)
		counts[v]++
	}
	assert.InDelta(t, 0.25, float64(counts["x"])/draws, 0.02)
}

func TestSample_SingleOption(t *testing.T) {
	s := New(1)
	v, err := Sample(s, []Weighted[int]{{Value: 99, Weight: 1}})
	require.NoError(t, err)
	assert.Equal(t, 99, v)
}

func TestSample_ZeroWeightOptionNeverDrawn(t *testing.T) {
	s := New(3)
	options := []Weighted[string]{
		{Value: "live", Weight: 1},
		{Value: "dead", Weight: 0},
	}
	for i := 0; i < 1000; i++ {
		v, err := Sample(s, options)
		require.NoError(t, err)
		assert.Equal(t, "live", v)
	}
}

// ==========================
// Degenerate Input Tests
// ==========================

func TestSample_Degenerate(t *testing.T) {
	tests := []struct {
		name    string
		options []Weighted[string]
	}{
		{name: "empty options", options: nil},
		{name: "all zero weights", options: []Weighted[string]{{Value: "a", Weight: 0}, {Value: "b", Weight: 0}}},
		{name: "negative weight", options: []Weighted[string]{{Value: "a", Weight: -1}, {Value: "b", Weight: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(1)
			_, err := Sample(s, tt.options)
			assert.Error(t, err)
		})
	}
}

// ==========================
// PickDistinct Tests
// ==========================

func TestPickDistinct_NoDuplicates(t *testing.T) {
	s := New(11)
	pool := []string{"a", "b", "c", "d", "e"}

	picked := PickDistinct(s, pool, 3)
	require.Len(t, picked, 3)

	seen := map[string]bool{}
	for _, v := range picked {
		assert.False(t, seen[v], "duplicate %q", v)
		seen[v] = true
	}
}

func TestPickDistinct_ClampsToPool(t *testing.T) {
	s := New(11)
	pool := []string{"a", "b"}
	assert.Len(t, PickDistinct(s, pool, 10), 2)
	assert.Empty(t, PickDistinct(s, pool, 0))
}

func TestPickDistinct_Deterministic(t *testing.T) {
	pool := []string{"a", "b", "c", "d"}
	assert.Equal(t, PickDistinct(New(5), pool, 2), PickDistinct(New(5), pool, 2))
}
