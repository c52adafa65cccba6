package models

// CompanySize buckets drive contact counts, revenue/employee ranges and deal
// value ranges.
type CompanySize string

const (
	SizeSmall      CompanySize = "small"
	SizeMedium     CompanySize = "medium"
	SizeEnterprise CompanySize = "enterprise"
)

// CompanySizes lists every valid size bucket.
var CompanySizes = []CompanySize{SizeSmall, SizeMedium, SizeEnterprise}

// Location places a customer company geographically.
type Location struct {
	Country  string `json:"country"`
	City     string `json:"city"`
	Timezone string `json:"timezone"`
}

// Customer is a customer company with its contact roster.
type Customer struct {
	ID            string      `json:"id"`
	Company       string      `json:"company"`
	Contacts      []Person    `json:"contacts"`
	Industry      string      `json:"industry"`
	SubIndustry   string      `json:"subIndustry"`
	Size          CompanySize `json:"size"`
	Status        string      `json:"status"`
	AnnualRevenue int64       `json:"annualRevenue"`
	EmployeeCount int         `json:"employeeCount"`
	Location      Location    `json:"location"`
}

// HasDecisionMaker reports whether at least one contact holds a
// decision-maker-eligible role.
func (c Customer) HasDecisionMaker() bool {
	for _, contact := range c.Contacts {
		if contact.IsDecisionMaker() {
			return true
		}
	}
	return false
}
