package generator

import (
	"fmt"
	"strings"

	"sales-datagen/internal/genrand"
	"sales-datagen/internal/models"
	"sales-datagen/internal/rules"
)

// generateCatalog builds the run's product catalog: a configured number of
// products per category.
func generateCatalog(s *genrand.Stream, pr rules.ProductRules) ([]models.Product, error) {
	var products []models.Product
	for _, category := range pr.Categories {
		count := pr.ProductsPerCategory.Sample(s)
		for i := 0; i < count; i++ {
			product, err := generateProduct(s, pr, category)
			if err != nil {
				return nil, err
			}
			products = append(products, product)
		}
	}
	return products, nil
}

func generateProduct(s *genrand.Stream, pr rules.ProductRules, category string) (models.Product, error) {
	adjective := pr.NameAdjectives[s.IntBetween(0, len(pr.NameAdjectives)-1)]
	name := fmt.Sprintf("%s %s", adjective, category)

	featureCount := pr.FeatureCount.Sample(s)
	features := genrand.PickDistinct(s, pr.FeaturePool, featureCount)

	customizationCount := pr.CustomizationCount.Sample(s)
	customizations := genrand.PickDistinct(s, pr.CustomizationPool, customizationCount)

	return models.Product{
		ID:                   s.NewID(),
		Name:                 name,
		Category:             category,
		Price:                pr.Price.Sample(s),
		Description:          fmt.Sprintf("%s offering with %s", category, strings.Join(features, ", ")),
		Features:             features,
		CustomizationOptions: customizations,
		DiscountTiers:        generateDiscountTiers(s, pr.DiscountTiers),
	}, nil
}

// generateDiscountTiers builds the tier table by delta accumulation:
// quantity thresholds grow by a strictly positive step and discounts by a
// non-negative step, so monotonicity holds by construction. Discounts cap at
// MaxDiscount.
func generateDiscountTiers(s *genrand.Stream, tr rules.DiscountTierRules) []models.DiscountTier {
	count := tr.Count.Sample(s)

	tiers := make([]models.DiscountTier, 0, count)
	quantity := tr.FirstQuantity.Sample(s)
	discount := tr.FirstDiscount.Sample(s)

	for i := 0; i < count; i++ {
		if discount > tr.MaxDiscount {
			discount = tr.MaxDiscount
		}
		tiers = append(tiers, models.DiscountTier{
			Quantity:           quantity,
			DiscountPercentage: discount,
		})
		quantity += tr.QuantityStep.Sample(s)
		discount += tr.DiscountStep.Sample(s)
	}
	return tiers
}
