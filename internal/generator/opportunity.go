package generator

import (
	"math"
	"time"

	"sales-datagen/internal/genrand"
	"sales-datagen/internal/models"
	"sales-datagen/internal/rules"
)

// buildOpportunity runs one opportunity end to end: lifecycle simulation,
// product selection, value and probability computation, and the
// loss/competitor annotations.
func buildOpportunity(
	s *genrand.Stream,
	cfg rules.Config,
	customer models.Customer,
	salesPersonID string,
	catalog []models.Product,
	anchor time.Time,
) (models.Opportunity, error) {
	or := cfg.Opportunity

	trace, status := simulateLifecycle(s, or)

	lineItems, err := selectProducts(s, or, catalog)
	if err != nil {
		return models.Opportunity{}, err
	}

	value, err := dealValue(s, or, customer)
	if err != nil {
		return models.Opportunity{}, err
	}

	closeOffset := trace[len(trace)-1].EntryOffsetDays
	expectedClose := anchor.AddDate(0, 0, closeOffset).Format("2006-01-02")

	opp := models.Opportunity{
		ID:                s.NewID(),
		CustomerID:        customer.ID,
		SalesPersonID:     salesPersonID,
		Products:          lineItems,
		Status:            status,
		Value:             value,
		Probability:       closeProbability(or, trace, status),
		ExpectedCloseDate: expectedClose,
		StageHistory:      trace,
	}

	if status == models.StageLost && len(or.LossReasons) > 0 {
		reason := or.LossReasons[s.IntBetween(0, len(or.LossReasons)-1)]
		opp.LossReason = &reason
	}
	if s.Uniform() < or.CompetitorProbability && len(or.CompetitorNames) > 0 {
		competitor := or.CompetitorNames[s.IntBetween(0, len(or.CompetitorNames)-1)]
		opp.CompetitorInvolved = &competitor
	}

	return opp, nil
}

// selectProducts picks the opportunity's line items. Bundle matching is
// attempted first; ad hoc cross-sell only fills slots a bundle left open.
func selectProducts(s *genrand.Stream, or rules.OpportunityRules, catalog []models.Product) ([]models.OpportunityProduct, error) {
	var selected []models.Product
	taken := make(map[string]bool)

	if len(or.CommonBundles) > 0 && s.Uniform() < or.BundleProbability {
		bundle := or.CommonBundles[s.IntBetween(0, len(or.CommonBundles)-1)]
		for _, category := range bundle {
			if len(selected) >= or.MaxProducts {
				break
			}
			if product, ok := pickFromCategory(s, catalog, category, taken); ok {
				selected = append(selected, product)
				taken[product.ID] = true
			}
		}
	}

	if len(selected) == 0 {
		product := catalog[s.IntBetween(0, len(catalog)-1)]
		selected = append(selected, product)
		taken[product.ID] = true
	}

	if len(selected) < or.MaxProducts && s.Uniform() < or.CrossSellProbability {
		extra := s.IntBetween(1, or.MaxProducts-len(selected))
		for _, idx := range s.Perm(len(catalog)) {
			if extra == 0 {
				break
			}
			product := catalog[idx]
			if !taken[product.ID] {
				selected = append(selected, product)
				taken[product.ID] = true
				extra--
			}
		}
	}

	lineItems := make([]models.OpportunityProduct, 0, len(selected))
	for _, product := range selected {
		quantity := or.Quantity.Sample(s)

		customizationCount := s.IntBetween(0, len(product.CustomizationOptions))
		customizations := genrand.PickDistinct(s, product.CustomizationOptions, customizationCount)

		lineItems = append(lineItems, models.OpportunityProduct{
			ProductID:       product.ID,
			Quantity:        quantity,
			Customizations:  customizations,
			AppliedDiscount: product.DiscountFor(quantity),
		})
	}
	return lineItems, nil
}

func pickFromCategory(s *genrand.Stream, catalog []models.Product, category string, taken map[string]bool) (models.Product, bool) {
	var candidates []models.Product
	for _, p := range catalog {
		if p.Category == category && !taken[p.ID] {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return models.Product{}, false
	}
	return candidates[s.IntBetween(0, len(candidates)-1)], true
}

// dealValue derives the opportunity value from the customer size's base
// range scaled by the industry multiplier and an independently sampled
// urgency multiplier.
func dealValue(s *genrand.Stream, or rules.OpportunityRules, customer models.Customer) (float64, error) {
	base := or.ValueBySize[string(customer.Size)].Sample(s)

	industryMult, ok := or.IndustryMultipliers[customer.Industry]
	if !ok {
		industryMult = 1.0
	}

	options := make([]genrand.Weighted[rules.UrgencyRule], len(or.Urgencies))
	for i, u := range or.Urgencies {
		options[i] = genrand.Weighted[rules.UrgencyRule]{Value: u, Weight: u.Weight}
	}
	urgency, err := genrand.Sample(s, options)
	if err != nil {
		return 0, err
	}

	return math.Round(base*industryMult*urgency.Multiplier*100) / 100, nil
}
