package generator

import (
	"sales-datagen/internal/genrand"
	"sales-datagen/internal/models"
	"sales-datagen/internal/rules"
)

// sampleNationality draws the nationality bucket that conditions the rest of
// the demographic draws, including the name pools.
func sampleNationality(s *genrand.Stream, pr rules.PersonRules) (rules.NationalityRule, error) {
	options := make([]genrand.Weighted[rules.NationalityRule], len(pr.Nationalities))
	for i, nr := range pr.Nationalities {
		options[i] = genrand.Weighted[rules.NationalityRule]{Value: nr, Weight: nr.Weight}
	}
	return genrand.Sample(s, options)
}

// generateDemographics draws demographics conditioned on the given
// nationality bucket. The local language is always present; English is added
// by probability; remaining slots fill from the generic pool without
// duplicates.
func generateDemographics(s *genrand.Stream, pr rules.PersonRules, nat rules.NationalityRule) (models.Demographics, error) {
	count := pr.LanguageCount.Sample(s)

	languages := []string{nat.LocalLanguage}
	if nat.LocalLanguage != "English" && len(languages) < count {
		if s.Uniform() < pr.EnglishProbability {
			languages = append(languages, "English")
		}
	}

	if len(languages) < count {
		have := make(map[string]bool, len(languages))
		for _, l := range languages {
			have[l] = true
		}
		for _, idx := range s.Perm(len(pr.LanguagePool)) {
			if len(languages) >= count {
				break
			}
			candidate := pr.LanguagePool[idx]
			if !have[candidate] {
				languages = append(languages, candidate)
				have[candidate] = true
			}
		}
	}

	timezone, err := pr.Timezones.Sample(s)
	if err != nil {
		return models.Demographics{}, err
	}
	contactMethod, err := pr.ContactMethods.Sample(s)
	if err != nil {
		return models.Demographics{}, err
	}

	return models.Demographics{
		Nationality:            nat.Value,
		Languages:              languages,
		Timezone:               timezone,
		PreferredContactMethod: contactMethod,
	}, nil
}
