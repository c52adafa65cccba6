package rules

import (
	"fmt"

	"sales-datagen/internal/common/errors"
)

// nonTerminalStages and sentiments are duplicated here as plain strings so
// the rules package stays decoupled from the entity model.
var nonTerminalStages = []string{"identified", "qualified", "proposalSent", "negotiating"}
var terminalStages = []string{"won", "lost"}
var sentimentStates = []string{"positive", "neutral", "negative"}

// Validate checks the whole rules tree and returns the first
// ConfigurationError found. A Config that passes Validate cannot fail a
// distribution or range draw mid-generation.
func (c Config) Validate() error {
	if err := c.Person.validate(); err != nil {
		return err
	}
	if err := c.SalesPerson.validate(); err != nil {
		return err
	}
	if err := c.Customer.validate(); err != nil {
		return err
	}
	if err := c.Product.validate(); err != nil {
		return err
	}
	if err := c.Opportunity.validate(c.Customer, c.Product); err != nil {
		return err
	}
	if err := c.Interaction.validate(); err != nil {
		return err
	}
	return nil
}

func probability(field string, p float64) error {
	if p < 0 || p > 1 {
		return errors.NewInvalidConfigValueError(field, fmt.Sprintf("probability %v outside [0,1]", p))
	}
	return nil
}

func nonEmpty(field string, values []string) error {
	if len(values) == 0 {
		return errors.NewMissingRuleSectionError(field)
	}
	return nil
}

func (p PersonRules) validate() error {
	if len(p.Nationalities) == 0 {
		return errors.NewMissingRuleSectionError("person.nationalities")
	}
	total := 0.0
	for _, n := range p.Nationalities {
		total += n.Weight
		if n.LocalLanguage == "" {
			return errors.NewInvalidConfigValueError("person.nationalities."+n.Value, "missing localLanguage")
		}
		if len(n.FirstNames) == 0 || len(n.LastNames) == 0 {
			return errors.NewInvalidConfigValueError("person.nationalities."+n.Value, "empty name pool")
		}
	}
	if total <= 0 {
		return errors.NewInvalidDistributionError("person.nationalities: weights sum to zero")
	}
	if err := p.LanguageCount.validate("person.languageCount"); err != nil {
		return err
	}
	if p.LanguageCount.Min < 1 {
		return errors.NewInvalidConfigValueError("person.languageCount.min", "must be at least 1")
	}
	if err := probability("person.englishProbability", p.EnglishProbability); err != nil {
		return err
	}
	if err := nonEmpty("person.languagePool", p.LanguagePool); err != nil {
		return err
	}
	if err := nonEmpty("person.emailDomains", p.EmailDomains); err != nil {
		return err
	}
	if err := nonEmpty("person.phoneCountryCodes", p.PhoneCountryCodes); err != nil {
		return err
	}
	if err := p.EmailPatterns.validate("person.emailPatterns"); err != nil {
		return err
	}
	if err := p.Timezones.validate("person.timezones"); err != nil {
		return err
	}
	return p.ContactMethods.validate("person.contactMethods")
}

func (sp SalesPersonRules) validate() error {
	specs := map[string]NormalSpec{
		"salesPerson.quotaAttainment":   sp.QuotaAttainment,
		"salesPerson.averageDealSize":   sp.AverageDealSize,
		"salesPerson.winRate":           sp.WinRate,
		"salesPerson.averageSalesCycle": sp.AverageSalesCycle,
	}
	for field, spec := range specs {
		if err := spec.validate(field); err != nil {
			return err
		}
	}
	if err := nonEmpty("salesPerson.territories", sp.Territories); err != nil {
		return err
	}
	if err := sp.TerritoryCount.validate("salesPerson.territoryCount"); err != nil {
		return err
	}
	if sp.TerritoryCount.Min < 1 || sp.TerritoryCount.Max > len(sp.Territories) {
		return errors.NewInvalidConfigValueError("salesPerson.territoryCount",
			fmt.Sprintf("range [%d,%d] incompatible with %d territories", sp.TerritoryCount.Min, sp.TerritoryCount.Max, len(sp.Territories)))
	}
	if err := nonEmpty("salesPerson.expertisePool", sp.ExpertisePool); err != nil {
		return err
	}
	if err := sp.ExpertiseCount.validate("salesPerson.expertiseCount"); err != nil {
		return err
	}
	if sp.ExpertiseCount.Min < 1 || sp.ExpertiseCount.Max > len(sp.ExpertisePool) {
		return errors.NewInvalidConfigValueError("salesPerson.expertiseCount",
			fmt.Sprintf("range [%d,%d] incompatible with %d tags", sp.ExpertiseCount.Min, sp.ExpertiseCount.Max, len(sp.ExpertisePool)))
	}
	for i, combo := range sp.Combinations {
		if err := probability(fmt.Sprintf("salesPerson.combinations[%d].probability", i), combo.Probability); err != nil {
			return err
		}
		if len(combo.Tags) == 0 {
			return errors.NewInvalidConfigValueError(fmt.Sprintf("salesPerson.combinations[%d]", i), "empty tag set")
		}
	}
	return nil
}

func (c CustomerRules) validate() error {
	if err := c.Sizes.validate("customer.sizes"); err != nil {
		return err
	}
	for _, size := range c.Sizes {
		profile, ok := c.SizeProfiles[size.Value]
		if !ok {
			return errors.NewMissingRuleSectionError("customer.sizeProfiles." + size.Value)
		}
		prefix := "customer.sizeProfiles." + size.Value
		if err := profile.Employees.validate(prefix + ".employees"); err != nil {
			return err
		}
		if err := profile.AnnualRevenue.validate(prefix + ".annualRevenue"); err != nil {
			return err
		}
		if err := profile.Contacts.validate(prefix + ".contacts"); err != nil {
			return err
		}
		if profile.Contacts.Min < 1 {
			return errors.NewInvalidConfigValueError(prefix+".contacts.min", "every customer needs at least one contact")
		}
		if err := profile.Roles.validate(prefix + ".roles"); err != nil {
			return err
		}
	}
	if err := c.Industries.validate("customer.industries"); err != nil {
		return err
	}
	if err := c.Statuses.validate("customer.statuses"); err != nil {
		return err
	}
	if len(c.Locations) == 0 {
		return errors.NewMissingRuleSectionError("customer.locations")
	}
	total := 0.0
	for _, loc := range c.Locations {
		total += loc.Weight
	}
	if total <= 0 {
		return errors.NewInvalidDistributionError("customer.locations: weights sum to zero")
	}
	if err := nonEmpty("customer.companyPrefixes", c.CompanyPrefixes); err != nil {
		return err
	}
	return nonEmpty("customer.companySuffixes", c.CompanySuffixes)
}

func (p ProductRules) validate() error {
	if err := nonEmpty("product.categories", p.Categories); err != nil {
		return err
	}
	if err := p.ProductsPerCategory.validate("product.productsPerCategory"); err != nil {
		return err
	}
	if p.ProductsPerCategory.Min < 1 {
		return errors.NewInvalidConfigValueError("product.productsPerCategory.min", "must be at least 1")
	}
	if err := p.Price.validate("product.price"); err != nil {
		return err
	}
	if err := nonEmpty("product.nameAdjectives", p.NameAdjectives); err != nil {
		return err
	}
	if err := p.FeatureCount.validate("product.featureCount"); err != nil {
		return err
	}
	if p.FeatureCount.Max > len(p.FeaturePool) {
		return errors.NewInvalidConfigValueError("product.featureCount.max",
			fmt.Sprintf("%d exceeds pool size %d", p.FeatureCount.Max, len(p.FeaturePool)))
	}
	if err := p.CustomizationCount.validate("product.customizationCount"); err != nil {
		return err
	}
	if p.CustomizationCount.Max > len(p.CustomizationPool) {
		return errors.NewInvalidConfigValueError("product.customizationCount.max",
			fmt.Sprintf("%d exceeds pool size %d", p.CustomizationCount.Max, len(p.CustomizationPool)))
	}
	dt := p.DiscountTiers
	if err := dt.Count.validate("product.discountTiers.count"); err != nil {
		return err
	}
	if dt.Count.Min < 1 {
		return errors.NewInvalidConfigValueError("product.discountTiers.count.min", "must be at least 1")
	}
	if err := dt.FirstQuantity.validate("product.discountTiers.firstQuantity"); err != nil {
		return err
	}
	if dt.FirstQuantity.Min < 1 {
		return errors.NewInvalidConfigValueError("product.discountTiers.firstQuantity.min", "must be at least 1")
	}
	if err := dt.QuantityStep.validate("product.discountTiers.quantityStep"); err != nil {
		return err
	}
	if dt.QuantityStep.Min < 1 {
		return errors.NewInvalidConfigValueError("product.discountTiers.quantityStep.min",
			"must be at least 1 to keep thresholds strictly increasing")
	}
	if err := dt.FirstDiscount.validate("product.discountTiers.firstDiscount"); err != nil {
		return err
	}
	if dt.FirstDiscount.Min < 0 {
		return errors.NewInvalidConfigValueError("product.discountTiers.firstDiscount.min", "negative discount")
	}
	if err := dt.DiscountStep.validate("product.discountTiers.discountStep"); err != nil {
		return err
	}
	if dt.DiscountStep.Min < 0 {
		return errors.NewInvalidConfigValueError("product.discountTiers.discountStep.min",
			"negative step would break non-decreasing discounts")
	}
	if dt.MaxDiscount <= 0 || dt.MaxDiscount > 100 {
		return errors.NewInvalidConfigValueError("product.discountTiers.maxDiscount",
			fmt.Sprintf("%v outside (0,100]", dt.MaxDiscount))
	}
	return nil
}

func (o OpportunityRules) validate(customer CustomerRules, product ProductRules) error {
	if err := o.PerCustomer.validate("opportunity.perCustomer"); err != nil {
		return err
	}
	if o.PerCustomer.Min < 0 {
		return errors.NewInvalidConfigValueError("opportunity.perCustomer.min", "negative count")
	}
	for _, stage := range nonTerminalStages {
		rule, ok := o.StageProgression[stage]
		if !ok {
			return errors.NewMissingRuleSectionError("opportunity.stageProgression." + stage)
		}
		if err := probability("opportunity.stageProgression."+stage+".advanceProbability", rule.AdvanceProbability); err != nil {
			return err
		}
		if err := rule.DurationDays.validate("opportunity.stageProgression." + stage + ".durationDays"); err != nil {
			return err
		}
		if rule.DurationDays.Min < 1 {
			return errors.NewInvalidConfigValueError("opportunity.stageProgression."+stage+".durationDays.min",
				"stages need at least one day")
		}
	}
	for _, stage := range append(append([]string{}, nonTerminalStages...), terminalStages...) {
		p, ok := o.StageProbabilities[stage]
		if !ok {
			return errors.NewMissingRuleSectionError("opportunity.stageProbabilities." + stage)
		}
		if err := probability("opportunity.stageProbabilities."+stage, p); err != nil {
			return err
		}
	}
	// Deeper stages must never report a lower win probability.
	prev := -1.0
	for _, stage := range nonTerminalStages {
		p := o.StageProbabilities[stage]
		if p < prev {
			return errors.NewInvalidConfigValueError("opportunity.stageProbabilities",
				fmt.Sprintf("probability decreases at stage %q", stage))
		}
		prev = p
	}
	for _, size := range customer.Sizes {
		vr, ok := o.ValueBySize[size.Value]
		if !ok {
			return errors.NewMissingRuleSectionError("opportunity.valueBySize." + size.Value)
		}
		if err := vr.validate("opportunity.valueBySize." + size.Value); err != nil {
			return err
		}
	}
	if len(o.Urgencies) == 0 {
		return errors.NewMissingRuleSectionError("opportunity.urgencies")
	}
	total := 0.0
	for _, u := range o.Urgencies {
		total += u.Weight
		if u.Multiplier <= 0 {
			return errors.NewInvalidConfigValueError("opportunity.urgencies."+u.Name, "multiplier must be positive")
		}
	}
	if total <= 0 {
		return errors.NewInvalidDistributionError("opportunity.urgencies: weights sum to zero")
	}
	if o.MaxProducts < 1 {
		return errors.NewInvalidConfigValueError("opportunity.maxProducts", "must be at least 1")
	}
	if err := o.Quantity.validate("opportunity.quantity"); err != nil {
		return err
	}
	if o.Quantity.Min < 1 {
		return errors.NewInvalidConfigValueError("opportunity.quantity.min", "must be at least 1")
	}
	if err := probability("opportunity.crossSellProbability", o.CrossSellProbability); err != nil {
		return err
	}
	if err := probability("opportunity.bundleProbability", o.BundleProbability); err != nil {
		return err
	}
	if err := probability("opportunity.competitorProbability", o.CompetitorProbability); err != nil {
		return err
	}
	categories := make(map[string]bool, len(product.Categories))
	for _, cat := range product.Categories {
		categories[cat] = true
	}
	for i, bundle := range o.CommonBundles {
		if len(bundle) == 0 {
			return errors.NewInvalidConfigValueError(fmt.Sprintf("opportunity.commonBundles[%d]", i), "empty bundle")
		}
		for _, cat := range bundle {
			if !categories[cat] {
				return errors.NewInvalidConfigValueError(fmt.Sprintf("opportunity.commonBundles[%d]", i),
					fmt.Sprintf("unknown product category %q", cat))
			}
		}
	}
	if o.CompetitorProbability > 0 && len(o.CompetitorNames) == 0 {
		return errors.NewMissingRuleSectionError("opportunity.competitorNames")
	}
	return nonEmpty("opportunity.lossReasons", o.LossReasons)
}

func (i InteractionRules) validate() error {
	types := map[string]bool{}
	outcomes := map[string]bool{}
	for _, stage := range nonTerminalStages {
		rule, ok := i.Stages[stage]
		if !ok {
			return errors.NewMissingRuleSectionError("interaction.stages." + stage)
		}
		prefix := "interaction.stages." + stage
		if err := rule.Frequency.validate(prefix + ".frequency"); err != nil {
			return err
		}
		if rule.Frequency.Min < 0 {
			return errors.NewInvalidConfigValueError(prefix+".frequency.min", "negative count")
		}
		if err := rule.GapDays.validate(prefix + ".gapDays"); err != nil {
			return err
		}
		if rule.GapDays.Min < 1 {
			return errors.NewInvalidConfigValueError(prefix+".gapDays.min",
				"gaps below one day would break interaction ordering")
		}
		if err := rule.Types.validate(prefix + ".types"); err != nil {
			return err
		}
		for _, wv := range rule.Types {
			types[wv.Value] = true
		}
	}
	for t := range types {
		if _, ok := i.DurationsByType[t]; !ok {
			return errors.NewMissingRuleSectionError("interaction.durationsByType." + t)
		}
		if err := i.DurationsByType[t].validate("interaction.durationsByType." + t); err != nil {
			return err
		}
	}
	if err := i.InitialSentiment.validate("interaction.initialSentiment"); err != nil {
		return err
	}
	for _, wv := range i.InitialSentiment {
		if err := knownSentiment("interaction.initialSentiment", wv.Value); err != nil {
			return err
		}
	}
	if err := i.SentimentTransitions.validate("interaction.sentimentTransitions", sentimentStates); err != nil {
		return err
	}
	for _, sentiment := range sentimentStates {
		table, ok := i.OutcomesBySentiment[sentiment]
		if !ok {
			return errors.NewMissingRuleSectionError("interaction.outcomesBySentiment." + sentiment)
		}
		if err := table.validate("interaction.outcomesBySentiment." + sentiment); err != nil {
			return err
		}
		for _, wv := range table {
			outcomes[wv.Value] = true
		}
	}
	if err := nonEmpty("interaction.topics", i.Topics); err != nil {
		return err
	}
	if err := i.TopicCount.validate("interaction.topicCount"); err != nil {
		return err
	}
	if i.TopicCount.Min < 1 || i.TopicCount.Max > len(i.Topics) {
		return errors.NewInvalidConfigValueError("interaction.topicCount",
			fmt.Sprintf("range [%d,%d] incompatible with %d topics", i.TopicCount.Min, i.TopicCount.Max, len(i.Topics)))
	}
	for t := range types {
		if len(i.NoteTemplates[t]) == 0 {
			return errors.NewMissingRuleSectionError("interaction.noteTemplates." + t)
		}
	}
	for o := range outcomes {
		if len(i.NextStepTemplates[o]) == 0 {
			return errors.NewMissingRuleSectionError("interaction.nextStepTemplates." + o)
		}
	}
	return nil
}

func knownSentiment(field, value string) error {
	for _, s := range sentimentStates {
		if s == value {
			return nil
		}
	}
	return errors.NewInvalidConfigValueError(field, fmt.Sprintf("unknown sentiment %q", value))
}
