package generator

import (
	"fmt"
	"strings"

	"sales-datagen/internal/genrand"
	"sales-datagen/internal/models"
	"sales-datagen/internal/rules"
)

// generatePerson builds one person record with the given role. The name pool
// follows the sampled nationality and the email is derived from the name, so
// records stay demographically consistent.
func generatePerson(s *genrand.Stream, pr rules.PersonRules, role string) (models.Person, error) {
	nat, err := sampleNationality(s, pr)
	if err != nil {
		return models.Person{}, err
	}

	demo, err := generateDemographics(s, pr, nat)
	if err != nil {
		return models.Person{}, err
	}

	firstName := nat.FirstNames[s.IntBetween(0, len(nat.FirstNames)-1)]
	lastName := nat.LastNames[s.IntBetween(0, len(nat.LastNames)-1)]

	email, err := deriveEmail(s, pr, firstName, lastName)
	if err != nil {
		return models.Person{}, err
	}

	return models.Person{
		ID:           s.NewID(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PhoneNumber:  generatePhone(s, pr),
		Role:         role,
		Demographics: demo,
	}, nil
}

// deriveEmail substitutes the person's name into one of the configured
// patterns. The derivation is deterministic given the name and the pattern
// draw.
func deriveEmail(s *genrand.Stream, pr rules.PersonRules, firstName, lastName string) (string, error) {
	pattern, err := pr.EmailPatterns.Sample(s)
	if err != nil {
		return "", err
	}
	domain := pr.EmailDomains[s.IntBetween(0, len(pr.EmailDomains)-1)]

	first := emailToken(firstName)
	last := emailToken(lastName)

	email := pattern
	email = strings.ReplaceAll(email, "{first}", first)
	email = strings.ReplaceAll(email, "{last}", last)
	if first != "" {
		email = strings.ReplaceAll(email, "{f}", first[:1])
	}
	email = strings.ReplaceAll(email, "{domain}", domain)
	return email, nil
}

// emailToken lowercases a name and strips anything outside a-z0-9 so the
// local part stays ASCII-safe.
func emailToken(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func generatePhone(s *genrand.Stream, pr rules.PersonRules) string {
	code := pr.PhoneCountryCodes[s.IntBetween(0, len(pr.PhoneCountryCodes)-1)]
	return fmt.Sprintf("+%s-%d-%d", code, s.IntBetween(100, 999), s.IntBetween(1000000, 9999999))
}
