package rules

// Defaults returns the built-in rules object. It always passes Validate;
// the defaults test keeps that honest.
func Defaults() Config {
	return Config{
		Person:      defaultPersonRules(),
		SalesPerson: defaultSalesPersonRules(),
		Customer:    defaultCustomerRules(),
		Product:     defaultProductRules(),
		Opportunity: defaultOpportunityRules(),
		Interaction: defaultInteractionRules(),
	}
}

func defaultPersonRules() PersonRules {
	return PersonRules{
		Nationalities: []NationalityRule{
			{
				Value: "American", Weight: 0.30, LocalLanguage: "English",
				FirstNames: []string{"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda", "David", "Elizabeth", "Sarah", "Brian"},
				LastNames:  []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller", "Davis", "Wilson", "Anderson", "Taylor"},
			},
			{
				Value: "British", Weight: 0.15, LocalLanguage: "English",
				FirstNames: []string{"Oliver", "Amelia", "George", "Isla", "Harry", "Emily", "Jack", "Sophie", "Charlie", "Grace"},
				LastNames:  []string{"Clarke", "Walker", "Harris", "Wright", "Turner", "Hughes", "Edwards", "Bennett", "Shaw", "Palmer"},
			},
			{
				Value: "German", Weight: 0.15, LocalLanguage: "German",
				FirstNames: []string{"Lukas", "Anna", "Felix", "Lena", "Maximilian", "Clara", "Jonas", "Sophia", "Paul", "Marie"},
				LastNames:  []string{"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Wagner", "Becker", "Hoffmann", "Koch", "Richter"},
			},
			{
				Value: "French", Weight: 0.10, LocalLanguage: "French",
				FirstNames: []string{"Louis", "Camille", "Hugo", "Chloé", "Arthur", "Manon", "Jules", "Inès", "Lucas", "Léa"},
				LastNames:  []string{"Martin", "Bernard", "Dubois", "Moreau", "Laurent", "Lefebvre", "Roux", "Fournier", "Girard", "Lambert"},
			},
			{
				Value: "Spanish", Weight: 0.10, LocalLanguage: "Spanish",
				FirstNames: []string{"Hugo", "Lucía", "Martín", "Sofía", "Pablo", "María", "Álvaro", "Paula", "Adrián", "Carla"},
				LastNames:  []string{"García", "Martínez", "López", "Sánchez", "Pérez", "Gómez", "Fernández", "Díaz", "Torres", "Ruiz"},
			},
			{
				Value: "Chinese", Weight: 0.10, LocalLanguage: "Chinese",
				FirstNames: []string{"Wei", "Fang", "Jun", "Xiu", "Ming", "Li", "Hao", "Yan", "Lei", "Jing"},
				LastNames:  []string{"Wang", "Li", "Zhang", "Liu", "Chen", "Yang", "Huang", "Zhao", "Wu", "Zhou"},
			},
			{
				Value: "Indian", Weight: 0.10, LocalLanguage: "Hindi",
				FirstNames: []string{"Aarav", "Priya", "Vihaan", "Ananya", "Arjun", "Diya", "Rohan", "Isha", "Karan", "Meera"},
				LastNames:  []string{"Sharma", "Verma", "Patel", "Gupta", "Singh", "Kumar", "Reddy", "Nair", "Iyer", "Mehta"},
			},
		},
		LanguagePool:       []string{"English", "Spanish", "French", "German", "Chinese", "Hindi", "Portuguese", "Japanese"},
		LanguageCount:      Range{Min: 1, Max: 3},
		EnglishProbability: 0.8,
		EmailPatterns: WeightedTable{
			{Value: "{first}.{last}@{domain}", Weight: 0.45},
			{Value: "{f}{last}@{domain}", Weight: 0.25},
			{Value: "{first}_{last}@{domain}", Weight: 0.15},
			{Value: "{first}{last}@{domain}", Weight: 0.15},
		},
		EmailDomains: []string{"example.com", "corpmail.com", "bizpost.net", "workmail.org"},
		Timezones: WeightedTable{
			{Value: "UTC-8", Weight: 0.2},
			{Value: "UTC-5", Weight: 0.3},
			{Value: "UTC", Weight: 0.15},
			{Value: "UTC+1", Weight: 0.2},
			{Value: "UTC+8", Weight: 0.15},
		},
		ContactMethods: WeightedTable{
			{Value: "email", Weight: 0.5},
			{Value: "phone", Weight: 0.3},
			{Value: "both", Weight: 0.2},
		},
		PhoneCountryCodes: []string{"1", "44", "49", "33", "34", "86", "91"},
	}
}

func defaultSalesPersonRules() SalesPersonRules {
	return SalesPersonRules{
		QuotaAttainment:   NormalSpec{Mean: 0.90, StdDev: 0.15, Min: 0.60, Max: 1.20},
		AverageDealSize:   NormalSpec{Mean: 55000, StdDev: 20000, Min: 10000, Max: 100000},
		WinRate:           NormalSpec{Mean: 0.30, StdDev: 0.05, Min: 0.20, Max: 0.40},
		AverageSalesCycle: NormalSpec{Mean: 60, StdDev: 15, Min: 30, Max: 90},
		Territories:       []string{"North America", "Europe", "Asia Pacific", "Latin America"},
		TerritoryCount:    Range{Min: 1, Max: 2},
		ExpertisePool: []string{
			"Technical", "Solution Selling", "Enterprise",
			"Consultative Selling", "SMB", "Transactional",
		},
		ExpertiseCount: Range{Min: 2, Max: 4},
		Combinations: []ExpertiseCombination{
			{Tags: []string{"Enterprise", "Solution Selling"}, Probability: 0.30},
			{Tags: []string{"SMB", "Transactional"}, Probability: 0.25},
			{Tags: []string{"Technical", "Consultative Selling"}, Probability: 0.20},
		},
	}
}

func defaultCustomerRules() CustomerRules {
	return CustomerRules{
		Sizes: WeightedTable{
			{Value: "small", Weight: 0.5},
			{Value: "medium", Weight: 0.3},
			{Value: "enterprise", Weight: 0.2},
		},
		SizeProfiles: map[string]SizeProfile{
			"small": {
				Employees:     Range{Min: 10, Max: 100},
				AnnualRevenue: Range{Min: 1_000_000, Max: 10_000_000},
				Contacts:      Range{Min: 1, Max: 3},
				Roles: WeightedTable{
					{Value: "CEO", Weight: 0.35},
					{Value: "CTO", Weight: 0.20},
					{Value: "Director", Weight: 0.20},
					{Value: "Manager", Weight: 0.25},
				},
			},
			"medium": {
				Employees:     Range{Min: 100, Max: 1000},
				AnnualRevenue: Range{Min: 10_000_000, Max: 100_000_000},
				Contacts:      Range{Min: 2, Max: 5},
				Roles: WeightedTable{
					{Value: "CEO", Weight: 0.10},
					{Value: "CTO", Weight: 0.15},
					{Value: "Director", Weight: 0.30},
					{Value: "Manager", Weight: 0.25},
					{Value: "Senior Manager", Weight: 0.20},
				},
			},
			"enterprise": {
				Employees:     Range{Min: 1000, Max: 10000},
				AnnualRevenue: Range{Min: 100_000_000, Max: 1_000_000_000},
				Contacts:      Range{Min: 3, Max: 8},
				Roles: WeightedTable{
					{Value: "CTO", Weight: 0.10},
					{Value: "CFO", Weight: 0.10},
					{Value: "Director", Weight: 0.35},
					{Value: "Manager", Weight: 0.25},
					{Value: "Senior Manager", Weight: 0.20},
				},
			},
		},
		Industries: NestedTable{
			{
				Value: "Technology", Weight: 0.35,
				Children: WeightedTable{
					{Value: "SaaS", Weight: 0.5},
					{Value: "Hardware", Weight: 0.25},
					{Value: "IT Services", Weight: 0.25},
				},
			},
			{
				Value: "Manufacturing", Weight: 0.25,
				Children: WeightedTable{
					{Value: "Automotive", Weight: 0.4},
					{Value: "Electronics", Weight: 0.35},
					{Value: "Industrial", Weight: 0.25},
				},
			},
			{
				Value: "Healthcare", Weight: 0.20,
				Children: WeightedTable{
					{Value: "Hospitals", Weight: 0.4},
					{Value: "Biotech", Weight: 0.3},
					{Value: "Medical Devices", Weight: 0.3},
				},
			},
			{
				Value: "Financial", Weight: 0.20,
				Children: WeightedTable{
					{Value: "Banking", Weight: 0.4},
					{Value: "Insurance", Weight: 0.35},
					{Value: "Investment", Weight: 0.25},
				},
			},
		},
		Statuses: WeightedTable{
			{Value: "lead", Weight: 0.25},
			{Value: "prospect", Weight: 0.30},
			{Value: "qualified", Weight: 0.25},
			{Value: "customer", Weight: 0.20},
		},
		Locations: []LocationRule{
			{Country: "United States", City: "San Francisco", Timezone: "UTC-8", Territory: "North America", Weight: 0.15},
			{Country: "United States", City: "New York", Timezone: "UTC-5", Territory: "North America", Weight: 0.20},
			{Country: "Canada", City: "Toronto", Timezone: "UTC-5", Territory: "North America", Weight: 0.08},
			{Country: "United Kingdom", City: "London", Timezone: "UTC", Territory: "Europe", Weight: 0.12},
			{Country: "Germany", City: "Berlin", Timezone: "UTC+1", Territory: "Europe", Weight: 0.10},
			{Country: "France", City: "Paris", Timezone: "UTC+1", Territory: "Europe", Weight: 0.08},
			{Country: "Spain", City: "Madrid", Timezone: "UTC+1", Territory: "Europe", Weight: 0.05},
			{Country: "China", City: "Shanghai", Timezone: "UTC+8", Territory: "Asia Pacific", Weight: 0.08},
			{Country: "Singapore", City: "Singapore", Timezone: "UTC+8", Territory: "Asia Pacific", Weight: 0.06},
			{Country: "India", City: "Bangalore", Timezone: "UTC+5", Territory: "Asia Pacific", Weight: 0.05},
			{Country: "Brazil", City: "São Paulo", Timezone: "UTC-3", Territory: "Latin America", Weight: 0.03},
		},
		CompanyPrefixes: []string{
			"Northwind", "Vertex", "Blue Ridge", "Summit", "Ironclad", "Lakeshore",
			"Pinnacle", "Redwood", "Atlas", "Meridian", "Crestline", "Silverpine",
			"Harborview", "Stonegate", "Brightwater", "Fairfield",
		},
		CompanySuffixes: []string{
			"Technologies", "Industries", "Group", "Solutions", "Holdings",
			"Partners", "Systems", "Logistics", "Labs", "Enterprises",
		},
	}
}

func defaultProductRules() ProductRules {
	return ProductRules{
		Categories:          []string{"Software", "Hardware", "Services", "Consulting"},
		ProductsPerCategory: Range{Min: 3, Max: 6},
		Price:               FloatRange{Min: 1000, Max: 50000},
		NameAdjectives: []string{
			"Quantum", "Apex", "Fusion", "Pulse", "Vector", "Orbit",
			"Prism", "Catalyst", "Beacon", "Horizon", "Nimbus", "Vertex",
		},
		FeaturePool: []string{
			"analytics", "automation", "integrations", "reporting", "dashboards",
			"encryption", "api access", "audit trail", "role management",
			"notifications", "scheduling", "mobile support",
		},
		FeatureCount: Range{Min: 3, Max: 6},
		CustomizationPool: []string{
			"branding", "sso", "extended support", "onboarding", "data migration",
			"custom fields", "dedicated hosting",
		},
		CustomizationCount: Range{Min: 2, Max: 4},
		DiscountTiers: DiscountTierRules{
			Count:         Range{Min: 3, Max: 5},
			FirstQuantity: Range{Min: 2, Max: 5},
			QuantityStep:  Range{Min: 5, Max: 15},
			FirstDiscount: FloatRange{Min: 3, Max: 5},
			DiscountStep:  FloatRange{Min: 0, Max: 7},
			MaxDiscount:   40,
		},
	}
}

func defaultOpportunityRules() OpportunityRules {
	return OpportunityRules{
		PerCustomer: Range{Min: 0, Max: 3},
		StageProgression: map[string]StageRule{
			"identified":   {AdvanceProbability: 0.60, DurationDays: Range{Min: 3, Max: 14}},
			"qualified":    {AdvanceProbability: 0.65, DurationDays: Range{Min: 7, Max: 21}},
			"proposalSent": {AdvanceProbability: 0.60, DurationDays: Range{Min: 5, Max: 15}},
			"negotiating":  {AdvanceProbability: 0.55, DurationDays: Range{Min: 5, Max: 20}},
		},
		StageProbabilities: map[string]float64{
			"identified":   0.10,
			"qualified":    0.25,
			"proposalSent": 0.50,
			"negotiating":  0.70,
			"won":          1.00,
			"lost":         0.00,
		},
		ValueBySize: map[string]FloatRange{
			"small":      {Min: 10_000, Max: 50_000},
			"medium":     {Min: 50_000, Max: 250_000},
			"enterprise": {Min: 250_000, Max: 1_000_000},
		},
		IndustryMultipliers: map[string]float64{
			"Technology":    1.10,
			"Manufacturing": 1.00,
			"Healthcare":    1.05,
			"Financial":     1.20,
		},
		Urgencies: []UrgencyRule{
			{Name: "low", Multiplier: 0.90, Weight: 0.30},
			{Name: "normal", Multiplier: 1.00, Weight: 0.50},
			{Name: "high", Multiplier: 1.25, Weight: 0.20},
		},
		MaxProducts:          4,
		Quantity:             Range{Min: 1, Max: 10},
		CrossSellProbability: 0.35,
		BundleProbability:    0.40,
		CommonBundles: [][]string{
			{"Software", "Services"},
			{"Hardware", "Services"},
			{"Software", "Consulting"},
		},
		CompetitorProbability: 0.50,
		CompetitorNames: []string{
			"Stratus Dynamics", "Corewave", "Helix Digital", "Bright Peak Software",
		},
		LossReasons: []string{
			"Budget was reallocated to another initiative",
			"Chose a competitor with an existing relationship",
			"Decision postponed indefinitely",
			"Feature gap on a must-have requirement",
			"Procurement stalled on contract terms",
		},
	}
}

func defaultInteractionRules() InteractionRules {
	return InteractionRules{
		Stages: map[string]StageInteractionRule{
			"identified": {
				Frequency: Range{Min: 1, Max: 2},
				GapDays:   Range{Min: 1, Max: 5},
				Types: WeightedTable{
					{Value: "email", Weight: 0.5},
					{Value: "call", Weight: 0.4},
					{Value: "meeting", Weight: 0.1},
				},
			},
			"qualified": {
				Frequency: Range{Min: 2, Max: 4},
				GapDays:   Range{Min: 2, Max: 6},
				Types: WeightedTable{
					{Value: "call", Weight: 0.35},
					{Value: "email", Weight: 0.25},
					{Value: "meeting", Weight: 0.25},
					{Value: "demo", Weight: 0.15},
				},
			},
			"proposalSent": {
				Frequency: Range{Min: 2, Max: 4},
				GapDays:   Range{Min: 1, Max: 4},
				Types: WeightedTable{
					{Value: "proposal", Weight: 0.30},
					{Value: "email", Weight: 0.25},
					{Value: "call", Weight: 0.25},
					{Value: "demo", Weight: 0.20},
				},
			},
			"negotiating": {
				Frequency: Range{Min: 3, Max: 6},
				GapDays:   Range{Min: 1, Max: 3},
				Types: WeightedTable{
					{Value: "meeting", Weight: 0.40},
					{Value: "call", Weight: 0.30},
					{Value: "proposal", Weight: 0.20},
					{Value: "email", Weight: 0.10},
				},
			},
		},
		InitialSentiment: WeightedTable{
			{Value: "positive", Weight: 0.30},
			{Value: "neutral", Weight: 0.50},
			{Value: "negative", Weight: 0.20},
		},
		SentimentTransitions: MarkovTable{
			"positive": WeightedTable{
				{Value: "positive", Weight: 0.70},
				{Value: "neutral", Weight: 0.25},
				{Value: "negative", Weight: 0.05},
			},
			"neutral": WeightedTable{
				{Value: "positive", Weight: 0.30},
				{Value: "neutral", Weight: 0.50},
				{Value: "negative", Weight: 0.20},
			},
			"negative": WeightedTable{
				{Value: "positive", Weight: 0.15},
				{Value: "neutral", Weight: 0.35},
				{Value: "negative", Weight: 0.50},
			},
		},
		DurationsByType: map[string]Range{
			"call":     {Min: 10, Max: 45},
			"email":    {Min: 2, Max: 10},
			"meeting":  {Min: 30, Max: 90},
			"demo":     {Min: 45, Max: 120},
			"proposal": {Min: 15, Max: 60},
		},
		OutcomesBySentiment: map[string]WeightedTable{
			"positive": {
				{Value: "successful", Weight: 0.65},
				{Value: "followupRequired", Weight: 0.30},
				{Value: "noAnswer", Weight: 0.05},
			},
			"neutral": {
				{Value: "successful", Weight: 0.25},
				{Value: "followupRequired", Weight: 0.55},
				{Value: "noAnswer", Weight: 0.15},
				{Value: "notInterested", Weight: 0.05},
			},
			"negative": {
				{Value: "followupRequired", Weight: 0.35},
				{Value: "notInterested", Weight: 0.40},
				{Value: "noAnswer", Weight: 0.25},
			},
		},
		Topics: []string{
			"pricing", "features", "timeline", "technical",
			"competition", "implementation", "support",
		},
		TopicCount: Range{Min: 1, Max: 4},
		NoteTemplates: map[string][]string{
			"call": {
				"Spoke with {contact} about current priorities at {company}.",
				"Walked {contact} through how the platform fits {company}'s workflow.",
				"Short call with {contact}; main concern raised was {topic}.",
			},
			"email": {
				"Sent {contact} a summary covering {topic} for {company}.",
				"Shared requested materials on {topic} with {contact}.",
				"Followed up with {contact} on open questions about {topic}.",
			},
			"meeting": {
				"On-site meeting with {contact}; discussed {topic} and rollout scope at {company}.",
				"Stakeholder review with {contact}; {topic} dominated the agenda.",
			},
			"demo": {
				"Product demo for {contact}; deep dive on {topic}.",
				"Ran a tailored demo for {company}; {contact} focused on {topic}.",
			},
			"proposal": {
				"Reviewed proposal terms with {contact}, including {topic}.",
				"Walked {contact} through the revised proposal for {company}.",
			},
		},
		NextStepTemplates: map[string][]string{
			"successful": {
				"Send recap and schedule next milestone review.",
				"Loop in the wider team at the customer for a scoping session.",
			},
			"followupRequired": {
				"Follow up next week with the requested details.",
				"Book a follow-up call once internal review completes.",
			},
			"notInterested": {
				"Pause outreach; revisit next quarter.",
				"Log objections and move to nurture cadence.",
			},
			"noAnswer": {
				"Retry later in the week at a different time.",
				"Send a short email to re-establish contact.",
			},
		},
	}
}
