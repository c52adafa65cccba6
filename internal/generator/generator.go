// Package generator builds internally consistent synthetic CRM sales
// datasets. Every random draw goes through one genrand.Stream (or a fork of
// it), so a run is fully determined by its seed, anchor date and rules.
package generator

import (
	"time"

	"sales-datagen/internal/common/logger"
	"sales-datagen/internal/rules"
)

// Request describes one generation run. A nil Seed draws one from entropy;
// the seed actually used is always recorded on the dataset.
type Request struct {
	Seed           *int64
	NumCustomers   int
	NumSalesPeople int
	Anchor         time.Time
}

// Generator produces datasets from a validated rules object.
type Generator struct {
	rules  rules.Config
	logger logger.Logger
}

// New validates the rules and returns a Generator. Invalid rules surface
// here as a ConfigurationError, never mid-run.
func New(cfg rules.Config, log logger.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		rules:  cfg,
		logger: log.WithFields(map[string]interface{}{"component": "generator"}),
	}, nil
}

// Rules returns the rules the generator was built with.
func (g *Generator) Rules() rules.Config {
	return g.rules
}
