package genrand

import (
	"fmt"

	"sales-datagen/internal/common/errors"
)

// Weighted pairs a candidate value with its relative weight.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// Sample draws one value from an ordered list of weighted options. Weights
// are normalized over their sum; each option owns the half-open cumulative
// interval [lo, hi), and the last option absorbs floating-point rounding at
// 1.0. Options with zero weight are never selected. A nil or zero-total list
// is a ConfigurationError.
func Sample[T any](s *Stream, options []Weighted[T]) (T, error) {
	var zero T
	if len(options) == 0 {
		return zero, errors.NewInvalidDistributionError("no options supplied")
	}

	total := 0.0
	for i, opt := range options {
		if opt.Weight < 0 {
			return zero, errors.NewInvalidDistributionError(
				fmt.Sprintf("option %d has negative weight %v", i, opt.Weight))
		}
		total += opt.Weight
	}
	if total <= 0 {
		return zero, errors.NewInvalidDistributionError("weights sum to zero")
	}

	u := s.Uniform() * total
	cum := 0.0
	for _, opt := range options {
		cum += opt.Weight
		if u < cum {
			return opt.Value, nil
		}
	}
	// u landed on the rounding sliver at the top of the interval; the last
	// option with positive weight absorbs it.
	for i := len(options) - 1; i >= 0; i-- {
		if options[i].Weight > 0 {
			return options[i].Value, nil
		}
	}
	return zero, errors.NewInvalidDistributionError("weights sum to zero")
}

// SampleStrings is a convenience wrapper for string-valued distributions.
func SampleStrings(s *Stream, values []string, weights []float64) (string, error) {
	if len(values) != len(weights) {
		return "", errors.NewInvalidDistributionError(
			fmt.Sprintf("values/weights length mismatch: %d vs %d", len(values), len(weights)))
	}
	options := make([]Weighted[string], len(values))
	for i := range values {
		options[i] = Weighted[string]{Value: values[i], Weight: weights[i]}
	}
	return Sample(s, options)
}

// PickDistinct draws k distinct elements from pool, preserving the stream's
// determinism. k is clamped to len(pool).
func PickDistinct[T any](s *Stream, pool []T, k int) []T {
	if k > len(pool) {
		k = len(pool)
	}
	if k <= 0 {
		return nil
	}
	out := make([]T, 0, k)
	for _, idx := range s.Perm(len(pool))[:k] {
		out = append(out, pool[idx])
	}
	return out
}
