package models

// DiscountTier grants a discount at or above a quantity threshold. Within a
// product, tiers are ordered by strictly increasing quantity with
// non-decreasing discount.
type DiscountTier struct {
	Quantity           int     `json:"quantity"`
	DiscountPercentage float64 `json:"discountPercentage"`
}

// Product is a catalog entry.
type Product struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	Category             string         `json:"category"`
	Price                float64        `json:"price"`
	Description          string         `json:"description"`
	Features             []string       `json:"features"`
	CustomizationOptions []string       `json:"customizationOptions"`
	DiscountTiers        []DiscountTier `json:"discountTiers"`
}

// DiscountFor returns the discount fraction (0..1) earned by the given order
// quantity: the deepest tier whose threshold the quantity meets.
func (p Product) DiscountFor(quantity int) float64 {
	discount := 0.0
	for _, tier := range p.DiscountTiers {
		if quantity >= tier.Quantity {
			discount = tier.DiscountPercentage / 100.0
		}
	}
	return discount
}
