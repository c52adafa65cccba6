package generator

import (
	"fmt"

	"sales-datagen/internal/genrand"
	"sales-datagen/internal/models"
	"sales-datagen/internal/rules"
)

// generateCustomer builds one customer company. The size bucket is sampled
// first and gates every size-dependent draw: employee count, revenue,
// contact count and the role mix. The second return value is the sales
// territory of the sampled location, used for sales person assignment.
func generateCustomer(s *genrand.Stream, cfg rules.Config) (models.Customer, string, error) {
	cr := cfg.Customer

	size, err := cr.Sizes.Sample(s)
	if err != nil {
		return models.Customer{}, "", err
	}
	profile := cr.SizeProfiles[size]

	industry, subIndustry, err := cr.Industries.Sample(s)
	if err != nil {
		return models.Customer{}, "", err
	}

	status, err := cr.Statuses.Sample(s)
	if err != nil {
		return models.Customer{}, "", err
	}

	location := sampleLocation(s, cr.Locations)

	contactCount := profile.Contacts.Sample(s)
	contacts := make([]models.Person, 0, contactCount)
	for i := 0; i < contactCount; i++ {
		role, err := profile.Roles.Sample(s)
		if err != nil {
			return models.Customer{}, "", err
		}
		contact, err := generatePerson(s, cfg.Person, role)
		if err != nil {
			return models.Customer{}, "", err
		}
		contacts = append(contacts, contact)
	}

	customer := models.Customer{
		ID:            s.NewID(),
		Company:       generateCompanyName(s, cr),
		Contacts:      contacts,
		Industry:      industry,
		SubIndustry:   subIndustry,
		Size:          models.CompanySize(size),
		Status:        status,
		AnnualRevenue: int64(profile.AnnualRevenue.Sample(s)),
		EmployeeCount: profile.Employees.Sample(s),
		Location: models.Location{
			Country:  location.Country,
			City:     location.City,
			Timezone: location.Timezone,
		},
	}
	return customer, location.Territory, nil
}

// sampleLocation draws a weighted company location rule. Locations carry a
// sales territory used later for sales person assignment.
func sampleLocation(s *genrand.Stream, locations []rules.LocationRule) rules.LocationRule {
	options := make([]genrand.Weighted[rules.LocationRule], len(locations))
	for i, loc := range locations {
		options[i] = genrand.Weighted[rules.LocationRule]{Value: loc, Weight: loc.Weight}
	}
	picked, err := genrand.Sample(s, options)
	if err != nil {
		// Location weights are validated at load time.
		return rules.LocationRule{}
	}
	return picked
}

func generateCompanyName(s *genrand.Stream, cr rules.CustomerRules) string {
	prefix := cr.CompanyPrefixes[s.IntBetween(0, len(cr.CompanyPrefixes)-1)]
	suffix := cr.CompanySuffixes[s.IntBetween(0, len(cr.CompanySuffixes)-1)]
	return fmt.Sprintf("%s %s", prefix, suffix)
}
