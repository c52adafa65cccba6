// internal/common/validation/schema_test.go
package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-datagen/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func testPerson(id string) models.Person {
	return models.Person{
		ID:          id,
		FirstName:   "Emma",
		LastName:    "Smith",
		Email:       "emma.smith@example.com",
		PhoneNumber: "+1-555-1234567",
		Role:        "CTO",
		Demographics: models.Demographics{
			Nationality:            "British",
			Languages:              []string{"English"},
			Timezone:               "Europe/London",
			PreferredContactMethod: "email",
		},
	}
}

func testDataset() *models.Dataset {
	product := models.Product{
		ID:       "prod-1",
		Name:     "Premium Software",
		Category: "Software",
		Price:    12000,
		Features: []string{"analytics", "reporting"},
		DiscountTiers: []models.DiscountTier{
			{Quantity: 5, DiscountPercentage: 5},
		},
	}

	salesPerson := models.SalesPerson{
		Person: testPerson("sp-1"),
		SalesMetrics: models.SalesMetrics{
			QuotaAttainment:   0.92,
			AverageDealSize:   54000,
			WinRate:           0.31,
			AverageSalesCycle: 58,
		},
		Territories: []string{"EMEA"},
		Expertise:   []string{"Enterprise"},
	}

	customer := models.Customer{
		ID:            "cust-1",
		Company:       "Global Dynamics",
		Contacts:      []models.Person{testPerson("contact-1")},
		Industry:      "Technology",
		SubIndustry:   "SaaS",
		Size:          models.SizeMedium,
		Status:        "customer",
		AnnualRevenue: 25000000,
		EmployeeCount: 480,
		Location: models.Location{
			Country:  "United Kingdom",
			City:     "London",
			Timezone: "Europe/London",
		},
	}

	opportunity := models.Opportunity{
		ID:            "opp-1",
		CustomerID:    "cust-1",
		SalesPersonID: "sp-1",
		Products: []models.OpportunityProduct{
			{ProductID: "prod-1", Quantity: 6, AppliedDiscount: 0.05},
		},
		Status:            models.StageWon,
		Value:             72000,
		Probability:       1.0,
		ExpectedCloseDate: "2026-03-15",
		StageHistory: []models.StageVisit{
			{Stage: models.StageIdentified, EntryOffsetDays: 0, DurationDays: 7},
			{Stage: models.StageWon, EntryOffsetDays: 7, DurationDays: 0},
		},
	}

	interaction := models.Interaction{
		ID:            "int-1",
		OpportunityID: "opp-1",
		Type:          "call",
		Timestamp:     time.Date(2026, 1, 3, 10, 30, 0, 0, time.UTC),
		CustomerID:    "cust-1",
		SalesPersonID: "sp-1",
		Duration:      25,
		Outcome:       "successful",
		Notes:         "Discussed pricing with Emma Smith",
		NextSteps:     "Send proposal to Global Dynamics",
		Sentiment:     models.SentimentPositive,
		Topics:        []string{"pricing"},
	}

	return &models.Dataset{
		Products:      []models.Product{product},
		SalesPeople:   []models.SalesPerson{salesPerson},
		Customers:     []models.Customer{customer},
		Opportunities: []models.Opportunity{opportunity},
		Interactions:  []models.Interaction{interaction},
		Seed:          42,
		Anchor:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// ==========================
// ValidateDataset Tests
// ==========================

func TestValidateDataset_CleanDatasetPasses(t *testing.T) {
	result, err := ValidateDataset(testDataset())
	require.NoError(t, err)
	assert.True(t, result.Valid, "unexpected violations: %+v", result.Errors)
	assert.Empty(t, result.Errors)
}

func TestValidateDataset_ReportsViolations(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(ds *models.Dataset)
		entityPrefix string
	}{
		{
			name: "customer missing id",
			mutate: func(ds *models.Dataset) {
				ds.Customers[0].ID = ""
			},
			entityPrefix: "customers[0]",
		},
		{
			name: "malformed contact email",
			mutate: func(ds *models.Dataset) {
				ds.Customers[0].Contacts[0].Email = "not-an-email"
			},
			entityPrefix: "customers[0]",
		},
		{
			name: "negative product price",
			mutate: func(ds *models.Dataset) {
				ds.Products[0].Price = -10
			},
			entityPrefix: "products[0]",
		},
		{
			name: "invalid opportunity status",
			mutate: func(ds *models.Dataset) {
				ds.Opportunities[0].Status = "pending"
			},
			entityPrefix: "opportunities[0]",
		},
		{
			name: "invalid sentiment",
			mutate: func(ds *models.Dataset) {
				ds.Interactions[0].Sentiment = "ecstatic"
			},
			entityPrefix: "interactions[0]",
		},
		{
			name: "interaction without topics",
			mutate: func(ds *models.Dataset) {
				ds.Interactions[0].Topics = []string{}
			},
			entityPrefix: "interactions[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := testDataset()
			tt.mutate(ds)

			result, err := ValidateDataset(ds)
			require.NoError(t, err)

			assert.False(t, result.Valid)
			require.NotEmpty(t, result.Errors)
			found := false
			for _, ve := range result.Errors {
				if ve.Entity == tt.entityPrefix {
					found = true
				}
			}
			assert.True(t, found, "no violation attributed to %s: %+v", tt.entityPrefix, result.Errors)
		})
	}
}
