package loader

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-datagen/internal/common/database"
	"sales-datagen/internal/common/logger"
	"sales-datagen/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func testDataset() *models.Dataset {
	reason := "budget constraints"
	return &models.Dataset{
		Products: []models.Product{
			{
				ID:       "6f1c6f47-9b7e-4f3a-b9cf-1f2c3d4e5f60",
				Name:     "Premium Software",
				Category: "Software",
				Price:    12500.50,
				Features: []string{"analytics", "reporting"},
			},
		},
		SalesPeople: []models.SalesPerson{
			{
				Person: models.Person{
					ID:        "7a2d7b58-0c8f-4a4b-8adf-2a3b4c5d6e71",
					FirstName: "Emma",
					LastName:  "Smith",
					Email:     "emma.smith@example.com",
				},
				Territories: []string{"EMEA"},
				Expertise:   []string{"Enterprise"},
			},
		},
		Customers: []models.Customer{
			{
				ID:            "8b3e8c69-1d90-4b5c-9be0-3b4c5d6e7f82",
				Company:       "Global Dynamics",
				Contacts:      []models.Person{{ID: "contact-1"}},
				Industry:      "Technology",
				SubIndustry:   "SaaS",
				Size:          models.SizeMedium,
				Status:        "customer",
				AnnualRevenue: 25000000,
				EmployeeCount: 480,
			},
		},
		Opportunities: []models.Opportunity{
			{
				ID:            "9c4f9d70-2ea1-4c6d-acf1-4c5d6e7f8a93",
				CustomerID:    "8b3e8c69-1d90-4b5c-9be0-3b4c5d6e7f82",
				SalesPersonID: "7a2d7b58-0c8f-4a4b-8adf-2a3b4c5d6e71",
				Products: []models.OpportunityProduct{
					{ProductID: "6f1c6f47-9b7e-4f3a-b9cf-1f2c3d4e5f60", Quantity: 6},
				},
				Status:            models.StageLost,
				Value:             72000,
				Probability:       0.25,
				ExpectedCloseDate: "2026-03-15",
				LossReason:        &reason,
				StageHistory: []models.StageVisit{
					{Stage: models.StageIdentified, DurationDays: 7},
					{Stage: models.StageLost, EntryOffsetDays: 7},
				},
			},
		},
		Interactions: []models.Interaction{
			{
				ID:            "ad50ae81-3fb2-4d7e-bd02-5d6e7f8a9ba4",
				OpportunityID: "9c4f9d70-2ea1-4c6d-acf1-4c5d6e7f8a93",
				CustomerID:    "8b3e8c69-1d90-4b5c-9be0-3b4c5d6e7f82",
				SalesPersonID: "7a2d7b58-0c8f-4a4b-8adf-2a3b4c5d6e71",
				Type:          "call",
				Timestamp:     time.Date(2026, 1, 3, 10, 30, 0, 0, time.UTC),
				Duration:      25,
				Outcome:       "successful",
				Sentiment:     models.SentimentNeutral,
				Topics:        []string{"pricing"},
			},
		},
		Seed:   42,
		Anchor: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newMockPostgres(t *testing.T) (*database.PostgresClient, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &database.PostgresClient{DB: db}, mock
}

// ==========================
// PostgresLoader Tests
// ==========================

func TestPostgresLoader_Load(t *testing.T) {
	client, mock := newMockPostgres(t)
	ds := testDataset()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS products`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO products`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO sales_people`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO customers`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO opportunities`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO interactions`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	l := NewPostgresLoader(client, logger.NewTestLogger(t))
	require.NoError(t, l.Load(context.Background(), ds))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLoader_RollsBackOnInsertFailure(t *testing.T) {
	client, mock := newMockPostgres(t)
	ds := testDataset()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS products`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO products`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	l := NewPostgresLoader(client, logger.NewTestLogger(t))
	err := l.Load(context.Background(), ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert product")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLoader_SchemaFailureStopsLoad(t *testing.T) {
	client, mock := newMockPostgres(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS products`).
		WillReturnError(assert.AnError)

	l := NewPostgresLoader(client, logger.NewTestLogger(t))
	err := l.Load(context.Background(), testDataset())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create schema")
	assert.NoError(t, mock.ExpectationsWereMet())
}
