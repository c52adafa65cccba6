// Package loader pushes generated datasets into the supported storage
// backends. Loaders treat the dataset as read-only input and never mutate
// it.
package loader

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"sales-datagen/internal/common/database"
	"sales-datagen/internal/common/logger"
	"sales-datagen/internal/common/metrics"
	"sales-datagen/internal/models"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS products (
    id UUID PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT,
    price NUMERIC,
    features TEXT[],
    metadata JSONB,
    created_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS sales_people (
    id UUID PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT UNIQUE,
    territories TEXT[],
    metadata JSONB,
    created_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS customers (
    id UUID PRIMARY KEY,
    company_name TEXT NOT NULL,
    industry TEXT,
    size TEXT,
    status TEXT,
    annual_revenue NUMERIC,
    metadata JSONB,
    created_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS opportunities (
    id UUID PRIMARY KEY,
    customer_id UUID REFERENCES customers(id),
    sales_person_id UUID REFERENCES sales_people(id),
    status TEXT,
    value NUMERIC,
    probability NUMERIC,
    expected_close_date DATE,
    metadata JSONB,
    created_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS interactions (
    id UUID PRIMARY KEY,
    opportunity_id UUID REFERENCES opportunities(id),
    customer_id UUID REFERENCES customers(id),
    sales_person_id UUID REFERENCES sales_people(id),
    type TEXT,
    occurred_at TIMESTAMPTZ,
    notes TEXT,
    sentiment TEXT,
    topics TEXT[],
    metadata JSONB,
    created_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_customers_industry ON customers(industry);
CREATE INDEX IF NOT EXISTS idx_opportunities_status ON opportunities(status);
CREATE INDEX IF NOT EXISTS idx_interactions_customer ON interactions(customer_id);
CREATE INDEX IF NOT EXISTS idx_interactions_opportunity ON interactions(opportunity_id);
`

// PostgresLoader writes a dataset into a relational schema, all records in
// one transaction.
type PostgresLoader struct {
	client *database.PostgresClient
	logger logger.Logger
}

func NewPostgresLoader(client *database.PostgresClient, log logger.Logger) *PostgresLoader {
	return &PostgresLoader{
		client: client,
		logger: log.WithFields(map[string]interface{}{"loader": "postgres"}),
	}
}

// Load creates the schema if absent and inserts every record. Any failure
// rolls the whole load back.
func (l *PostgresLoader) Load(ctx context.Context, ds *models.Dataset) error {
	if _, err := l.client.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := l.client.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range ds.Products {
		metadata, _ := json.Marshal(map[string]interface{}{
			"description":          p.Description,
			"customizationOptions": p.CustomizationOptions,
			"discountTiers":        p.DiscountTiers,
		})
		_, err := tx.ExecContext(ctx,
			`INSERT INTO products (id, name, category, price, features, metadata)
             VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, p.Name, p.Category, p.Price, pq.Array(p.Features), metadata)
		if err != nil {
			return fmt.Errorf("failed to insert product %s: %w", p.ID, err)
		}
	}

	for _, sp := range ds.SalesPeople {
		metadata, _ := json.Marshal(map[string]interface{}{
			"demographics": sp.Demographics,
			"salesMetrics": sp.SalesMetrics,
			"expertise":    sp.Expertise,
		})
		_, err := tx.ExecContext(ctx,
			`INSERT INTO sales_people (id, name, email, territories, metadata)
             VALUES ($1, $2, $3, $4, $5)`,
			sp.ID, sp.FirstName+" "+sp.LastName, sp.Email, pq.Array(sp.Territories), metadata)
		if err != nil {
			return fmt.Errorf("failed to insert sales person %s: %w", sp.ID, err)
		}
	}

	for _, c := range ds.Customers {
		metadata, _ := json.Marshal(map[string]interface{}{
			"contacts":      c.Contacts,
			"subIndustry":   c.SubIndustry,
			"employeeCount": c.EmployeeCount,
			"location":      c.Location,
		})
		_, err := tx.ExecContext(ctx,
			`INSERT INTO customers (id, company_name, industry, size, status, annual_revenue, metadata)
             VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			c.ID, c.Company, c.Industry, c.Size, c.Status, c.AnnualRevenue, metadata)
		if err != nil {
			return fmt.Errorf("failed to insert customer %s: %w", c.ID, err)
		}
	}

	for _, o := range ds.Opportunities {
		metadata, _ := json.Marshal(map[string]interface{}{
			"products":           o.Products,
			"stageHistory":       o.StageHistory,
			"lossReason":         o.LossReason,
			"competitorInvolved": o.CompetitorInvolved,
		})
		_, err := tx.ExecContext(ctx,
			`INSERT INTO opportunities (id, customer_id, sales_person_id, status, value, probability, expected_close_date, metadata)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			o.ID, o.CustomerID, o.SalesPersonID, o.Status, o.Value, o.Probability, o.ExpectedCloseDate, metadata)
		if err != nil {
			return fmt.Errorf("failed to insert opportunity %s: %w", o.ID, err)
		}
	}

	for _, in := range ds.Interactions {
		metadata, _ := json.Marshal(map[string]interface{}{
			"outcome":   in.Outcome,
			"duration":  in.Duration,
			"nextSteps": in.NextSteps,
		})
		_, err := tx.ExecContext(ctx,
			`INSERT INTO interactions (id, opportunity_id, customer_id, sales_person_id, type, occurred_at, notes, sentiment, topics, metadata)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			in.ID, in.OpportunityID, in.CustomerID, in.SalesPersonID, in.Type,
			in.Timestamp, in.Notes, in.Sentiment, pq.Array(in.Topics), metadata)
		if err != nil {
			return fmt.Errorf("failed to insert interaction %s: %w", in.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit load: %w", err)
	}

	total := len(ds.Products) + len(ds.SalesPeople) + len(ds.Customers) + len(ds.Opportunities) + len(ds.Interactions)
	metrics.RecordsLoaded.WithLabelValues("postgres", "all").Add(float64(total))

	l.logger.Info("dataset loaded into postgres", map[string]interface{}{"records": total})
	return nil
}
