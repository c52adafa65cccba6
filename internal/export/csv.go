package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"sales-datagen/internal/models"
)

// WriteCSV writes one CSV file per entity collection into dir. Nested fields
// (demographics, line items, stage history) are flattened to JSON columns so
// no information is lost on the way out.
func WriteCSV(ds *models.Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	writers := []struct {
		name  string
		write func(*csv.Writer) error
	}{
		{"products.csv", func(w *csv.Writer) error { return writeProducts(w, ds.Products) }},
		{"sales_people.csv", func(w *csv.Writer) error { return writeSalesPeople(w, ds.SalesPeople) }},
		{"customers.csv", func(w *csv.Writer) error { return writeCustomers(w, ds.Customers) }},
		{"opportunities.csv", func(w *csv.Writer) error { return writeOpportunities(w, ds.Opportunities) }},
		{"interactions.csv", func(w *csv.Writer) error { return writeInteractions(w, ds.Interactions) }},
	}

	for _, spec := range writers {
		if err := writeFile(filepath.Join(dir, spec.name), spec.write); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(*csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := write(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	w.Flush()
	return w.Error()
}

func jsonColumn(v interface{}) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(raw)
}

func writeProducts(w *csv.Writer, products []models.Product) error {
	if err := w.Write([]string{"id", "name", "category", "price", "description", "features", "customizationOptions", "discountTiers"}); err != nil {
		return err
	}
	for _, p := range products {
		record := []string{
			p.ID, p.Name, p.Category,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			p.Description,
			strings.Join(p.Features, ";"),
			strings.Join(p.CustomizationOptions, ";"),
			jsonColumn(p.DiscountTiers),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeSalesPeople(w *csv.Writer, salesPeople []models.SalesPerson) error {
	if err := w.Write([]string{"id", "firstName", "lastName", "email", "phoneNumber", "demographics", "quotaAttainment", "averageDealSize", "winRate", "averageSalesCycle", "territories", "expertise"}); err != nil {
		return err
	}
	for _, sp := range salesPeople {
		record := []string{
			sp.ID, sp.FirstName, sp.LastName, sp.Email, sp.PhoneNumber,
			jsonColumn(sp.Demographics),
			strconv.FormatFloat(sp.SalesMetrics.QuotaAttainment, 'f', 4, 64),
			strconv.FormatFloat(sp.SalesMetrics.AverageDealSize, 'f', 2, 64),
			strconv.FormatFloat(sp.SalesMetrics.WinRate, 'f', 4, 64),
			strconv.Itoa(sp.SalesMetrics.AverageSalesCycle),
			strings.Join(sp.Territories, ";"),
			strings.Join(sp.Expertise, ";"),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeCustomers(w *csv.Writer, customers []models.Customer) error {
	if err := w.Write([]string{"id", "company", "industry", "subIndustry", "size", "status", "annualRevenue", "employeeCount", "country", "city", "timezone", "contacts"}); err != nil {
		return err
	}
	for _, c := range customers {
		record := []string{
			c.ID, c.Company, c.Industry, c.SubIndustry,
			string(c.Size), c.Status,
			strconv.FormatInt(c.AnnualRevenue, 10),
			strconv.Itoa(c.EmployeeCount),
			c.Location.Country, c.Location.City, c.Location.Timezone,
			jsonColumn(c.Contacts),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeOpportunities(w *csv.Writer, opportunities []models.Opportunity) error {
	if err := w.Write([]string{"id", "customerId", "salesPersonId", "status", "value", "probability", "expectedCloseDate", "lossReason", "competitorInvolved", "products", "stageHistory"}); err != nil {
		return err
	}
	for _, o := range opportunities {
		lossReason := ""
		if o.LossReason != nil {
			lossReason = *o.LossReason
		}
		competitor := ""
		if o.CompetitorInvolved != nil {
			competitor = *o.CompetitorInvolved
		}
		record := []string{
			o.ID, o.CustomerID, o.SalesPersonID, string(o.Status),
			strconv.FormatFloat(o.Value, 'f', 2, 64),
			strconv.FormatFloat(o.Probability, 'f', 2, 64),
			o.ExpectedCloseDate, lossReason, competitor,
			jsonColumn(o.Products),
			jsonColumn(o.StageHistory),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeInteractions(w *csv.Writer, interactions []models.Interaction) error {
	if err := w.Write([]string{"id", "opportunityId", "customerId", "salesPersonId", "type", "timestamp", "duration", "outcome", "sentiment", "topics", "notes", "nextSteps"}); err != nil {
		return err
	}
	for _, in := range interactions {
		record := []string{
			in.ID, in.OpportunityID, in.CustomerID, in.SalesPersonID,
			in.Type, in.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
			strconv.Itoa(in.Duration), in.Outcome, string(in.Sentiment),
			strings.Join(in.Topics, ";"), in.Notes, in.NextSteps,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
