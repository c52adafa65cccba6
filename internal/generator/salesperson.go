package generator

import (
	"sales-datagen/internal/genrand"
	"sales-datagen/internal/models"
	"sales-datagen/internal/rules"
)

// generateSalesPerson builds one sales person: a base person plus
// clamped-normal performance metrics, territories and expertise tags.
func generateSalesPerson(s *genrand.Stream, cfg rules.Config) (models.SalesPerson, error) {
	person, err := generatePerson(s, cfg.Person, "Sales Representative")
	if err != nil {
		return models.SalesPerson{}, err
	}

	spr := cfg.SalesPerson

	metrics := models.SalesMetrics{
		QuotaAttainment:   spr.QuotaAttainment.Sample(s),
		AverageDealSize:   spr.AverageDealSize.Sample(s),
		WinRate:           spr.WinRate.Sample(s),
		AverageSalesCycle: int(spr.AverageSalesCycle.Sample(s)),
	}

	territoryCount := spr.TerritoryCount.Sample(s)
	territories := genrand.PickDistinct(s, spr.Territories, territoryCount)

	return models.SalesPerson{
		Person:       person,
		SalesMetrics: metrics,
		Territories:  territories,
		Expertise:    sampleExpertise(s, spr),
	}, nil
}

// sampleExpertise first tries each configured combination set by its
// probability, in order; only when none matches does it fall back to
// independent sampling from the full pool.
func sampleExpertise(s *genrand.Stream, spr rules.SalesPersonRules) []string {
	for _, combo := range spr.Combinations {
		if s.Uniform() < combo.Probability {
			tags := make([]string, len(combo.Tags))
			copy(tags, combo.Tags)
			return tags
		}
	}

	count := spr.ExpertiseCount.Sample(s)
	return genrand.PickDistinct(s, spr.ExpertisePool, count)
}
