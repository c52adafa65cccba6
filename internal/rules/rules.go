// Package rules holds the typed, immutable generation-rule configuration.
// Every distribution or range is a typed value validated once at load time,
// so misconfiguration surfaces as a ConfigurationError before generation
// starts, never mid-run.
package rules

import (
	"fmt"

	"sales-datagen/internal/common/errors"
	"sales-datagen/internal/genrand"
)

// ==========================
// Distribution primitives
// ==========================

// WeightedValue pairs a string candidate with its relative weight.
type WeightedValue struct {
	Value  string  `mapstructure:"value" json:"value"`
	Weight float64 `mapstructure:"weight" json:"weight"`
}

// WeightedTable is an ordered weighted distribution over strings.
type WeightedTable []WeightedValue

// Sample draws one value from the table.
func (t WeightedTable) Sample(s *genrand.Stream) (string, error) {
	options := make([]genrand.Weighted[string], len(t))
	for i, wv := range t {
		options[i] = genrand.Weighted[string]{Value: wv.Value, Weight: wv.Weight}
	}
	return genrand.Sample(s, options)
}

// validate checks the table is non-empty with a positive weight total.
func (t WeightedTable) validate(field string) error {
	if len(t) == 0 {
		return errors.NewMissingRuleSectionError(field)
	}
	total := 0.0
	for _, wv := range t {
		if wv.Weight < 0 {
			return errors.NewInvalidDistributionError(
				fmt.Sprintf("%s: option %q has negative weight", field, wv.Value))
		}
		total += wv.Weight
	}
	if total <= 0 {
		return errors.NewInvalidDistributionError(field + ": weights sum to zero")
	}
	return nil
}

// NestedChoice is a weighted option carrying its own sub-distribution
// (e.g. industry -> sub-industry).
type NestedChoice struct {
	Value    string        `mapstructure:"value" json:"value"`
	Weight   float64       `mapstructure:"weight" json:"weight"`
	Children WeightedTable `mapstructure:"children" json:"children"`
}

// NestedTable is a two-level conditional distribution.
type NestedTable []NestedChoice

// Sample draws a parent value, then recursively a child from the parent's
// sub-distribution.
func (t NestedTable) Sample(s *genrand.Stream) (parent, child string, err error) {
	options := make([]genrand.Weighted[NestedChoice], len(t))
	for i, nc := range t {
		options[i] = genrand.Weighted[NestedChoice]{Value: nc, Weight: nc.Weight}
	}
	picked, err := genrand.Sample(s, options)
	if err != nil {
		return "", "", err
	}
	child, err = picked.Children.Sample(s)
	if err != nil {
		return "", "", err
	}
	return picked.Value, child, nil
}

func (t NestedTable) validate(field string) error {
	if len(t) == 0 {
		return errors.NewMissingRuleSectionError(field)
	}
	total := 0.0
	for _, nc := range t {
		total += nc.Weight
		if err := nc.Children.validate(field + "." + nc.Value); err != nil {
			return err
		}
	}
	if total <= 0 {
		return errors.NewInvalidDistributionError(field + ": weights sum to zero")
	}
	return nil
}

// Range is an inclusive integer range.
type Range struct {
	Min int `mapstructure:"min" json:"min"`
	Max int `mapstructure:"max" json:"max"`
}

// Sample draws uniformly from [Min, Max].
func (r Range) Sample(s *genrand.Stream) int {
	return s.IntBetween(r.Min, r.Max)
}

func (r Range) validate(field string) error {
	if r.Max < r.Min {
		return errors.NewEmptyRangeError(field, float64(r.Min), float64(r.Max))
	}
	return nil
}

// FloatRange is a half-open float range [Min, Max).
type FloatRange struct {
	Min float64 `mapstructure:"min" json:"min"`
	Max float64 `mapstructure:"max" json:"max"`
}

// Sample draws uniformly from [Min, Max).
func (r FloatRange) Sample(s *genrand.Stream) float64 {
	return s.Float64Between(r.Min, r.Max)
}

func (r FloatRange) validate(field string) error {
	if r.Max < r.Min {
		return errors.NewEmptyRangeError(field, r.Min, r.Max)
	}
	return nil
}

// NormalSpec describes clamped normal sampling: Normal(Mean, StdDev)
// truncated to [Min, Max] by a simple clamp, never rejection sampling, so the
// configuration may deliberately place mass on the boundaries.
type NormalSpec struct {
	Mean   float64 `mapstructure:"mean" json:"mean"`
	StdDev float64 `mapstructure:"stddev" json:"stddev"`
	Min    float64 `mapstructure:"min" json:"min"`
	Max    float64 `mapstructure:"max" json:"max"`
}

// Sample draws from the clamped normal distribution.
func (n NormalSpec) Sample(s *genrand.Stream) float64 {
	v := s.Normal(n.Mean, n.StdDev)
	if v < n.Min {
		return n.Min
	}
	if v > n.Max {
		return n.Max
	}
	return v
}

func (n NormalSpec) validate(field string) error {
	if n.Max < n.Min {
		return errors.NewEmptyRangeError(field, n.Min, n.Max)
	}
	if n.StdDev < 0 {
		return errors.NewInvalidConfigValueError(field+".stddev", fmt.Sprintf("negative stddev %v", n.StdDev))
	}
	return nil
}

// MarkovTable maps a state to the weighted distribution of its successors.
type MarkovTable map[string]WeightedTable

// Next draws the successor of the given state.
func (m MarkovTable) Next(s *genrand.Stream, state string) (string, error) {
	row, ok := m[state]
	if !ok {
		return "", errors.NewInvalidMarkovTableError("no row for state " + state)
	}
	return row.Sample(s)
}

// validate checks every required state has a row and every row only targets
// known states.
func (m MarkovTable) validate(field string, states []string) error {
	known := make(map[string]bool, len(states))
	for _, st := range states {
		known[st] = true
	}
	for _, st := range states {
		row, ok := m[st]
		if !ok {
			return errors.NewInvalidMarkovTableError(fmt.Sprintf("%s: missing row for state %q", field, st))
		}
		if err := row.validate(fmt.Sprintf("%s[%s]", field, st)); err != nil {
			return err
		}
		for _, wv := range row {
			if !known[wv.Value] {
				return errors.NewInvalidMarkovTableError(
					fmt.Sprintf("%s[%s]: transition to unknown state %q", field, st, wv.Value))
			}
		}
	}
	return nil
}
