package models

// SalesMetrics holds the performance profile of a sales person. Each metric
// is sampled from a clamped normal distribution at generation time.
type SalesMetrics struct {
	QuotaAttainment   float64 `json:"quotaAttainment"`
	AverageDealSize   float64 `json:"averageDealSize"`
	WinRate           float64 `json:"winRate"`
	AverageSalesCycle int     `json:"averageSalesCycle"`
}

// SalesPerson extends Person with sales-specific attributes.
type SalesPerson struct {
	Person
	SalesMetrics SalesMetrics `json:"salesMetrics"`
	Territories  []string     `json:"territories"`
	Expertise    []string     `json:"expertise"`
}

// HasTerritory reports whether the sales person covers the given territory.
func (sp SalesPerson) HasTerritory(territory string) bool {
	for _, t := range sp.Territories {
		if t == territory {
			return true
		}
	}
	return false
}

// HasExpertise reports whether the sales person carries the given tag.
func (sp SalesPerson) HasExpertise(tag string) bool {
	for _, e := range sp.Expertise {
		if e == tag {
			return true
		}
	}
	return false
}
