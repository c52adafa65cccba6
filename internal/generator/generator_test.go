package generator

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-datagen/internal/common/logger"
	"sales-datagen/internal/genrand"
	"sales-datagen/internal/models"
	"sales-datagen/internal/rules"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	gen, err := New(rules.Defaults(), logger.NewTestLogger(t))
	require.NoError(t, err)
	return gen
}

func testRequest(seed int64, customers, salesPeople int) Request {
	return Request{
		Seed:           &seed,
		NumCustomers:   customers,
		NumSalesPeople: salesPeople,
		Anchor:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func generateTestDataset(t *testing.T) *models.Dataset {
	t.Helper()
	ds, err := newTestGenerator(t).Generate(testRequest(42, 10, 3))
	require.NoError(t, err)
	return ds
}

// ==========================
// Person / Demographics Tests
// ==========================

func TestGeneratePerson_EmailDerivedFromName(t *testing.T) {
	s := genrand.New(42)
	cfg := rules.Defaults()

	for i := 0; i < 200; i++ {
		p, err := generatePerson(s, cfg.Person, "Manager")
		require.NoError(t, err)

		local := p.Email[:strings.Index(p.Email, "@")]
		first := emailToken(p.FirstName)
		last := emailToken(p.LastName)

		assert.Contains(t, local, last, "email %q does not carry the last name %q", p.Email, p.LastName)
		assert.True(t,
			strings.Contains(local, first) || strings.HasPrefix(local, first[:1]),
			"email %q does not reflect first name %q", p.Email, p.FirstName)
	}
}

func TestGeneratePerson_LanguagesIncludeLocal(t *testing.T) {
	s := genrand.New(7)
	cfg := rules.Defaults()

	localByNationality := map[string]string{}
	for _, n := range cfg.Person.Nationalities {
		localByNationality[n.Value] = n.LocalLanguage
	}

	for i := 0; i < 200; i++ {
		p, err := generatePerson(s, cfg.Person, "CEO")
		require.NoError(t, err)

		local := localByNationality[p.Demographics.Nationality]
		assert.Contains(t, p.Demographics.Languages, local)
		assert.GreaterOrEqual(t, len(p.Demographics.Languages), cfg.Person.LanguageCount.Min)
		assert.LessOrEqual(t, len(p.Demographics.Languages), cfg.Person.LanguageCount.Max)

		seen := map[string]bool{}
		for _, lang := range p.Demographics.Languages {
			assert.False(t, seen[lang], "duplicate language %q", lang)
			seen[lang] = true
		}
	}
}

func TestGeneratePerson_NamesMatchNationalityPool(t *testing.T) {
	s := genrand.New(11)
	cfg := rules.Defaults()

	pools := map[string]map[string]bool{}
	for _, n := range cfg.Person.Nationalities {
		pool := map[string]bool{}
		for _, fn := range n.FirstNames {
			pool[fn] = true
		}
		pools[n.Value] = pool
	}

	for i := 0; i < 200; i++ {
		p, err := generatePerson(s, cfg.Person, "Director")
		require.NoError(t, err)
		assert.True(t, pools[p.Demographics.Nationality][p.FirstName],
			"first name %q not in the %s pool", p.FirstName, p.Demographics.Nationality)
	}
}

// ==========================
// Sales Person Tests
// ==========================

func TestGenerateSalesPerson_MetricsClamped(t *testing.T) {
	s := genrand.New(42)
	cfg := rules.Defaults()

	for i := 0; i < 300; i++ {
		sp, err := generateSalesPerson(s, cfg)
		require.NoError(t, err)

		m := sp.SalesMetrics
		assert.GreaterOrEqual(t, m.QuotaAttainment, cfg.SalesPerson.QuotaAttainment.Min)
		assert.LessOrEqual(t, m.QuotaAttainment, cfg.SalesPerson.QuotaAttainment.Max)
		assert.GreaterOrEqual(t, m.WinRate, cfg.SalesPerson.WinRate.Min)
		assert.LessOrEqual(t, m.WinRate, cfg.SalesPerson.WinRate.Max)
		assert.GreaterOrEqual(t, float64(m.AverageSalesCycle), cfg.SalesPerson.AverageSalesCycle.Min)
		assert.LessOrEqual(t, float64(m.AverageSalesCycle), cfg.SalesPerson.AverageSalesCycle.Max)

		assert.NotEmpty(t, sp.Territories)
		assert.NotEmpty(t, sp.Expertise)
	}
}

func TestSampleExpertise_CombinationOrFallback(t *testing.T) {
	s := genrand.New(42)
	spr := rules.Defaults().SalesPerson

	combos := map[string]bool{}
	for _, c := range spr.Combinations {
		combos[strings.Join(c.Tags, "|")] = true
	}

	sawCombo, sawFallback := false, false
	for i := 0; i < 500; i++ {
		tags := sampleExpertise(s, spr)
		if combos[strings.Join(tags, "|")] {
			sawCombo = true
		} else {
			sawFallback = true
			assert.GreaterOrEqual(t, len(tags), spr.ExpertiseCount.Min)
			assert.LessOrEqual(t, len(tags), spr.ExpertiseCount.Max)
		}
	}
	assert.True(t, sawCombo, "combination sets never drawn")
	assert.True(t, sawFallback, "independent fallback never drawn")
}

// ==========================
// Product Catalog Tests
// ==========================

func TestGenerateCatalog_CoversAllCategories(t *testing.T) {
	s := genrand.New(42)
	pr := rules.Defaults().Product

	catalog, err := generateCatalog(s, pr)
	require.NoError(t, err)

	byCategory := map[string]int{}
	for _, p := range catalog {
		byCategory[p.Category]++
		assert.GreaterOrEqual(t, p.Price, pr.Price.Min)
		assert.Less(t, p.Price, pr.Price.Max)
	}
	for _, category := range pr.Categories {
		assert.GreaterOrEqual(t, byCategory[category], pr.ProductsPerCategory.Min)
		assert.LessOrEqual(t, byCategory[category], pr.ProductsPerCategory.Max)
	}
}

func TestGenerateDiscountTiers_Monotonic(t *testing.T) {
	s := genrand.New(42)
	tr := rules.Defaults().Product.DiscountTiers

	for run := 0; run < 200; run++ {
		tiers := generateDiscountTiers(s, tr)
		require.NotEmpty(t, tiers)

		for i := 1; i < len(tiers); i++ {
			assert.Greater(t, tiers[i].Quantity, tiers[i-1].Quantity,
				"quantity thresholds must strictly increase")
			assert.GreaterOrEqual(t, tiers[i].DiscountPercentage, tiers[i-1].DiscountPercentage,
				"discounts must never decrease")
		}
		for _, tier := range tiers {
			assert.LessOrEqual(t, tier.DiscountPercentage, tr.MaxDiscount)
		}
	}
}

func TestProduct_DiscountForDeepestTier(t *testing.T) {
	p := models.Product{DiscountTiers: []models.DiscountTier{
		{Quantity: 5, DiscountPercentage: 5},
		{Quantity: 10, DiscountPercentage: 10},
		{Quantity: 20, DiscountPercentage: 15},
	}}

	assert.Equal(t, 0.0, p.DiscountFor(4))
	assert.Equal(t, 0.05, p.DiscountFor(5))
	assert.Equal(t, 0.10, p.DiscountFor(19))
	assert.Equal(t, 0.15, p.DiscountFor(100))
}

// ==========================
// Customer Tests
// ==========================

func TestGenerateCustomer_SizeGatesDraws(t *testing.T) {
	s := genrand.New(42)
	cfg := rules.Defaults()

	for i := 0; i < 200; i++ {
		c, territory, err := generateCustomer(s, cfg)
		require.NoError(t, err)

		profile := cfg.Customer.SizeProfiles[string(c.Size)]
		assert.GreaterOrEqual(t, c.EmployeeCount, profile.Employees.Min)
		assert.LessOrEqual(t, c.EmployeeCount, profile.Employees.Max)
		assert.GreaterOrEqual(t, c.AnnualRevenue, int64(profile.AnnualRevenue.Min))
		assert.LessOrEqual(t, c.AnnualRevenue, int64(profile.AnnualRevenue.Max))
		assert.GreaterOrEqual(t, len(c.Contacts), profile.Contacts.Min)
		assert.LessOrEqual(t, len(c.Contacts), profile.Contacts.Max)
		assert.NotEmpty(t, territory)
	}
}

func TestGenerateCustomer_IndustryPairing(t *testing.T) {
	s := genrand.New(9)
	cfg := rules.Defaults()

	children := map[string]map[string]bool{}
	for _, nc := range cfg.Customer.Industries {
		children[nc.Value] = map[string]bool{}
		for _, c := range nc.Children {
			children[nc.Value][c.Value] = true
		}
	}

	for i := 0; i < 200; i++ {
		c, _, err := generateCustomer(s, cfg)
		require.NoError(t, err)
		assert.True(t, children[c.Industry][c.SubIndustry],
			"%s is not a sub-industry of %s", c.SubIndustry, c.Industry)
	}
}

// ==========================
// Lifecycle Tests
// ==========================

func TestSimulateLifecycle_TraceShape(t *testing.T) {
	s := genrand.New(42)
	or := rules.Defaults().Opportunity

	sawWon, sawLost := false, false
	for run := 0; run < 500; run++ {
		trace, status := simulateLifecycle(s, or)

		require.NotEmpty(t, trace)
		last := trace[len(trace)-1]
		assert.True(t, last.Stage.IsTerminal())
		assert.Equal(t, status, last.Stage)
		assert.Equal(t, 0, last.DurationDays)

		offset := 0
		for i, visit := range trace[:len(trace)-1] {
			assert.Equal(t, models.StageOrder[i], visit.Stage, "stage order must be a forward walk")
			assert.Equal(t, offset, visit.EntryOffsetDays)
			assert.GreaterOrEqual(t, visit.DurationDays, or.StageProgression[string(visit.Stage)].DurationDays.Min)
			assert.LessOrEqual(t, visit.DurationDays, or.StageProgression[string(visit.Stage)].DurationDays.Max)
			offset += visit.DurationDays
		}
		assert.Equal(t, offset, last.EntryOffsetDays)

		if status == models.StageWon {
			sawWon = true
			assert.Len(t, trace, len(models.StageOrder)+1, "won deals pass every stage")
		} else {
			sawLost = true
		}
	}
	assert.True(t, sawWon)
	assert.True(t, sawLost)
}

func TestCloseProbability(t *testing.T) {
	or := rules.Defaults().Opportunity

	wonTrace := []models.StageVisit{
		{Stage: models.StageIdentified}, {Stage: models.StageQualified},
		{Stage: models.StageProposalSent}, {Stage: models.StageNegotiating},
		{Stage: models.StageWon},
	}
	assert.Equal(t, 1.0, closeProbability(or, wonTrace, models.StageWon))

	lostEarly := []models.StageVisit{
		{Stage: models.StageIdentified}, {Stage: models.StageLost},
	}
	assert.Equal(t, or.StageProbabilities["identified"], closeProbability(or, lostEarly, models.StageLost))

	lostLate := []models.StageVisit{
		{Stage: models.StageIdentified}, {Stage: models.StageQualified},
		{Stage: models.StageProposalSent}, {Stage: models.StageNegotiating},
		{Stage: models.StageLost},
	}
	assert.Equal(t, or.StageProbabilities["negotiating"], closeProbability(or, lostLate, models.StageLost))
}

// ==========================
// Interaction Tests
// ==========================

func TestSequenceInteractions_StayWithinStageWindows(t *testing.T) {
	ds := generateTestDataset(t)
	anchor := ds.Anchor

	opportunities := map[string]models.Opportunity{}
	for _, opp := range ds.Opportunities {
		opportunities[opp.ID] = opp
	}

	for _, in := range ds.Interactions {
		owner := opportunities[in.OpportunityID]

		day := int(in.Timestamp.Sub(anchor).Hours() / 24)
		inWindow := false
		for _, visit := range owner.StageHistory {
			if visit.Stage.IsTerminal() {
				continue
			}
			if day >= visit.EntryOffsetDays && day < visit.EntryOffsetDays+visit.DurationDays {
				inWindow = true
				break
			}
		}
		assert.True(t, inWindow, "interaction %s on day %d falls outside every stage window", in.ID, day)
	}
}

func TestSequenceInteractions_ChronologicalPerOpportunity(t *testing.T) {
	ds := generateTestDataset(t)

	lastSeen := map[string]time.Time{}
	for _, in := range ds.Interactions {
		if prev, ok := lastSeen[in.OpportunityID]; ok {
			assert.False(t, in.Timestamp.Before(prev),
				"interaction %s out of order within its opportunity", in.ID)
		}
		lastSeen[in.OpportunityID] = in.Timestamp
	}
}

func TestSequenceInteractions_SentimentChainExplainable(t *testing.T) {
	ds := generateTestDataset(t)
	ir := rules.Defaults().Interaction

	reachable := map[string]map[string]bool{}
	for state, row := range ir.SentimentTransitions {
		reachable[state] = map[string]bool{}
		for _, wv := range row {
			if wv.Weight > 0 {
				reachable[state][wv.Value] = true
			}
		}
	}

	byOpportunity := map[string][]models.Interaction{}
	for _, in := range ds.Interactions {
		byOpportunity[in.OpportunityID] = append(byOpportunity[in.OpportunityID], in)
	}

	for oppID, chain := range byOpportunity {
		for i := 1; i < len(chain); i++ {
			prev := string(chain[i-1].Sentiment)
			next := string(chain[i].Sentiment)
			assert.True(t, reachable[prev][next],
				"opportunity %s: transition %s -> %s has zero probability", oppID, prev, next)
		}
	}
}

func TestSequenceInteractions_FieldsConsistent(t *testing.T) {
	ds := generateTestDataset(t)
	ir := rules.Defaults().Interaction

	for _, in := range ds.Interactions {
		dur, ok := ir.DurationsByType[in.Type]
		require.True(t, ok, "unknown interaction type %q", in.Type)
		assert.GreaterOrEqual(t, in.Duration, dur.Min)
		assert.LessOrEqual(t, in.Duration, dur.Max)

		assert.NotEmpty(t, in.Topics)
		assert.NotEmpty(t, in.Notes)
		assert.NotEmpty(t, in.NextSteps)
		assert.NotContains(t, in.Notes, "{contact}")
		assert.NotContains(t, in.Notes, "{topic}")
		assert.NotContains(t, in.Notes, "{company}")
	}
}

// ==========================
// Assembler Tests
// ==========================

func TestGenerate_ReferentialIntegrity(t *testing.T) {
	ds := generateTestDataset(t)

	assert.Len(t, ds.Customers, 10)
	assert.Len(t, ds.SalesPeople, 3)
	assert.NotEmpty(t, ds.Products)

	customerIDs := map[string]bool{}
	for _, c := range ds.Customers {
		customerIDs[c.ID] = true
	}
	salesPersonIDs := map[string]bool{}
	for _, sp := range ds.SalesPeople {
		salesPersonIDs[sp.ID] = true
	}
	productIDs := map[string]bool{}
	for _, p := range ds.Products {
		productIDs[p.ID] = true
	}

	opportunities := map[string]models.Opportunity{}
	for _, opp := range ds.Opportunities {
		assert.True(t, customerIDs[opp.CustomerID])
		assert.True(t, salesPersonIDs[opp.SalesPersonID])
		require.NotEmpty(t, opp.Products)
		for _, item := range opp.Products {
			assert.True(t, productIDs[item.ProductID])
		}
		opportunities[opp.ID] = opp
	}

	for _, in := range ds.Interactions {
		owner, ok := opportunities[in.OpportunityID]
		require.True(t, ok)
		assert.Equal(t, owner.CustomerID, in.CustomerID)
		assert.Equal(t, owner.SalesPersonID, in.SalesPersonID)
	}
}

func TestGenerate_OpportunityCountPerCustomerBounded(t *testing.T) {
	ds := generateTestDataset(t)
	perCustomer := rules.Defaults().Opportunity.PerCustomer

	counts := map[string]int{}
	for _, opp := range ds.Opportunities {
		counts[opp.CustomerID]++
	}
	for customerID, n := range counts {
		assert.LessOrEqual(t, n, perCustomer.Max, "customer %s exceeds opportunity cap", customerID)
	}
}

func TestGenerate_AppliedDiscountMatchesTier(t *testing.T) {
	ds := generateTestDataset(t)

	products := map[string]models.Product{}
	for _, p := range ds.Products {
		products[p.ID] = p
	}

	for _, opp := range ds.Opportunities {
		for _, item := range opp.Products {
			expected := products[item.ProductID].DiscountFor(item.Quantity)
			assert.Equal(t, expected, item.AppliedDiscount)
		}
	}
}

func TestGenerate_LossAnnotations(t *testing.T) {
	ds := generateTestDataset(t)

	for _, opp := range ds.Opportunities {
		if opp.Status == models.StageLost {
			require.NotNil(t, opp.LossReason, "lost opportunity %s has no loss reason", opp.ID)
			assert.NotEmpty(t, *opp.LossReason)
		} else {
			assert.Nil(t, opp.LossReason)
		}
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	gen := newTestGenerator(t)

	a, err := gen.Generate(testRequest(42, 10, 3))
	require.NoError(t, err)
	b, err := gen.Generate(testRequest(42, 10, 3))
	require.NoError(t, err)

	rawA, err := json.Marshal(a)
	require.NoError(t, err)
	rawB, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, string(rawA), string(rawB), "same seed must replay byte-identically")
}

func TestGenerate_SeedsDiverge(t *testing.T) {
	gen := newTestGenerator(t)

	a, err := gen.Generate(testRequest(1, 5, 2))
	require.NoError(t, err)
	b, err := gen.Generate(testRequest(2, 5, 2))
	require.NoError(t, err)

	rawA, _ := json.Marshal(a)
	rawB, _ := json.Marshal(b)
	assert.NotEqual(t, string(rawA), string(rawB))
}

func TestGenerate_UnseededRunRecordsSeed(t *testing.T) {
	gen := newTestGenerator(t)

	ds, err := gen.Generate(Request{
		NumCustomers:   2,
		NumSalesPeople: 2,
		Anchor:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	replaySeed := ds.Seed
	replay, err := gen.Generate(testRequest(replaySeed, 2, 2))
	require.NoError(t, err)

	rawA, _ := json.Marshal(ds)
	rawB, _ := json.Marshal(replay)
	assert.Equal(t, string(rawA), string(rawB), "recorded seed must replay the unseeded run")
}

func TestGenerate_ZeroCustomers(t *testing.T) {
	gen := newTestGenerator(t)

	ds, err := gen.Generate(testRequest(5, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, ds.Customers)
	assert.Empty(t, ds.Opportunities)
	assert.Empty(t, ds.Interactions)
	assert.NotEmpty(t, ds.Products)
}

func TestVerifyIntegrity_DetectsDanglingReference(t *testing.T) {
	ds := generateTestDataset(t)
	require.NotEmpty(t, ds.Opportunities)

	ds.Opportunities[0].CustomerID = "00000000-0000-0000-0000-000000000000"
	err := verifyIntegrity(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNKNOWN_REFERENCE")
}

func TestNew_RejectsInvalidRules(t *testing.T) {
	cfg := rules.Defaults()
	cfg.Customer.Sizes = nil

	_, err := New(cfg, logger.NewNoOpLogger())
	assert.Error(t, err)
}
