package generator

import (
	"time"

	"sales-datagen/internal/common/errors"
	"sales-datagen/internal/common/metrics"
	"sales-datagen/internal/genrand"
	"sales-datagen/internal/models"
)

// Generate runs one full dataset build. Products and sales people are
// generated first from the root stream; each customer and everything hanging
// off it (opportunities, interactions) comes from a per-customer fork, so
// customer shards are independently reproducible. The assembled dataset is
// integrity-checked before it is returned; a failed check aborts the run.
func (g *Generator) Generate(req Request) (*models.Dataset, error) {
	start := time.Now()

	ds, err := g.generate(req)
	if err != nil {
		code := "UNKNOWN"
		if ie, ok := errors.AsDataIntegrityError(err); ok {
			code = string(ie.Code)
		} else if ce, ok := errors.AsConfigurationError(err); ok {
			code = string(ce.Code)
		}
		metrics.RunsFailed.WithLabelValues(code).Inc()
		g.logger.WithError(err).Error("generation run failed", nil)
		return nil, err
	}

	metrics.RunsCompleted.Inc()
	metrics.RunDuration.Observe(time.Since(start).Seconds())
	metrics.EntitiesGenerated.WithLabelValues("products").Add(float64(len(ds.Products)))
	metrics.EntitiesGenerated.WithLabelValues("salesPeople").Add(float64(len(ds.SalesPeople)))
	metrics.EntitiesGenerated.WithLabelValues("customers").Add(float64(len(ds.Customers)))
	metrics.EntitiesGenerated.WithLabelValues("opportunities").Add(float64(len(ds.Opportunities)))
	metrics.EntitiesGenerated.WithLabelValues("interactions").Add(float64(len(ds.Interactions)))

	g.logger.Info("generation run completed", map[string]interface{}{
		"seed":          ds.Seed,
		"customers":     len(ds.Customers),
		"salesPeople":   len(ds.SalesPeople),
		"opportunities": len(ds.Opportunities),
		"interactions":  len(ds.Interactions),
		"durationMs":    time.Since(start).Milliseconds(),
	})

	return ds, nil
}

func (g *Generator) generate(req Request) (*models.Dataset, error) {
	var stream *genrand.Stream
	if req.Seed != nil {
		stream = genrand.New(*req.Seed)
	} else {
		stream = genrand.NewFromEntropy()
	}

	anchor := req.Anchor
	if anchor.IsZero() {
		anchor = time.Now().UTC().Truncate(24 * time.Hour)
	}

	catalog, err := generateCatalog(stream, g.rules.Product)
	if err != nil {
		return nil, err
	}

	salesPeople := make([]models.SalesPerson, 0, req.NumSalesPeople)
	for i := 0; i < req.NumSalesPeople; i++ {
		sp, err := generateSalesPerson(stream, g.rules)
		if err != nil {
			return nil, err
		}
		salesPeople = append(salesPeople, sp)
	}

	ds := &models.Dataset{
		Products:    catalog,
		SalesPeople: salesPeople,
		Seed:        stream.Seed(),
		Anchor:      anchor,
	}

	for i := 0; i < req.NumCustomers; i++ {
		shard := stream.Fork(uint64(i))

		customer, territory, err := generateCustomer(shard, g.rules)
		if err != nil {
			return nil, err
		}
		ds.Customers = append(ds.Customers, customer)

		salesPerson, err := assignSalesPerson(shard, salesPeople, territory, customer)
		if err != nil {
			return nil, err
		}

		oppCount := g.rules.Opportunity.PerCustomer.Sample(shard)
		for j := 0; j < oppCount; j++ {
			opp, err := buildOpportunity(shard, g.rules, customer, salesPerson.ID, catalog, anchor)
			if err != nil {
				return nil, err
			}
			ds.Opportunities = append(ds.Opportunities, opp)

			interactions, err := sequenceInteractions(shard, g.rules.Interaction, opp, customer, anchor)
			if err != nil {
				return nil, err
			}
			ds.Interactions = append(ds.Interactions, interactions...)
		}
	}

	if err := verifyIntegrity(ds); err != nil {
		return nil, err
	}

	return ds, nil
}

// assignSalesPerson picks the customer's owner with territory and expertise
// affinity: covering the customer's territory counts most, carrying a tag
// matching the customer's size bucket adds a smaller boost, and everyone
// keeps a base weight so assignment never starves.
func assignSalesPerson(s *genrand.Stream, salesPeople []models.SalesPerson, territory string, customer models.Customer) (models.SalesPerson, error) {
	affinityTag := map[models.CompanySize]string{
		models.SizeSmall:      "SMB",
		models.SizeMedium:     "Solution Selling",
		models.SizeEnterprise: "Enterprise",
	}[customer.Size]

	options := make([]genrand.Weighted[models.SalesPerson], len(salesPeople))
	for i, sp := range salesPeople {
		weight := 1.0
		if sp.HasTerritory(territory) {
			weight += 2.0
		}
		if sp.HasExpertise(affinityTag) {
			weight += 1.0
		}
		options[i] = genrand.Weighted[models.SalesPerson]{Value: sp, Weight: weight}
	}
	return genrand.Sample(s, options)
}

// verifyIntegrity cross-checks every reference in the dataset against the
// run's id registry. A failure here is an engine bug, so the run aborts
// instead of dropping records.
func verifyIntegrity(ds *models.Dataset) error {
	productIDs, err := registerIDs("product", len(ds.Products), func(i int) string { return ds.Products[i].ID })
	if err != nil {
		return err
	}
	salesPersonIDs, err := registerIDs("salesPerson", len(ds.SalesPeople), func(i int) string { return ds.SalesPeople[i].ID })
	if err != nil {
		return err
	}
	customerIDs, err := registerIDs("customer", len(ds.Customers), func(i int) string { return ds.Customers[i].ID })
	if err != nil {
		return err
	}

	opportunities := make(map[string]models.Opportunity, len(ds.Opportunities))
	for _, opp := range ds.Opportunities {
		if _, dup := opportunities[opp.ID]; dup {
			return errors.NewDuplicateIDError("opportunity", opp.ID)
		}
		opportunities[opp.ID] = opp

		if !customerIDs[opp.CustomerID] {
			return errors.NewUnknownReferenceError("opportunity", "customerId", opp.CustomerID)
		}
		if !salesPersonIDs[opp.SalesPersonID] {
			return errors.NewUnknownReferenceError("opportunity", "salesPersonId", opp.SalesPersonID)
		}
		for _, item := range opp.Products {
			if !productIDs[item.ProductID] {
				return errors.NewUnknownReferenceError("opportunity", "productId", item.ProductID)
			}
		}
	}

	seen := make(map[string]bool, len(ds.Interactions))
	for _, interaction := range ds.Interactions {
		if seen[interaction.ID] {
			return errors.NewDuplicateIDError("interaction", interaction.ID)
		}
		seen[interaction.ID] = true

		owner, ok := opportunities[interaction.OpportunityID]
		if !ok {
			return errors.NewUnknownReferenceError("interaction", "opportunityId", interaction.OpportunityID)
		}
		if interaction.CustomerID != owner.CustomerID || interaction.SalesPersonID != owner.SalesPersonID {
			return errors.NewPartyMismatchError(interaction.ID, interaction.OpportunityID)
		}
	}

	return nil
}

func registerIDs(entity string, n int, id func(int) string) (map[string]bool, error) {
	registry := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if registry[v] {
			return nil, errors.NewDuplicateIDError(entity, v)
		}
		registry[v] = true
	}
	return registry, nil
}
