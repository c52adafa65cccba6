package rules

// Config is the full immutable rules object, one section per entity family.
// Section and field names line up with the yaml rules tree.
type Config struct {
	Person      PersonRules      `mapstructure:"person" json:"person"`
	SalesPerson SalesPersonRules `mapstructure:"salesPerson" json:"salesPerson"`
	Customer    CustomerRules    `mapstructure:"customer" json:"customer"`
	Product     ProductRules     `mapstructure:"product" json:"product"`
	Opportunity OpportunityRules `mapstructure:"opportunity" json:"opportunity"`
	Interaction InteractionRules `mapstructure:"interaction" json:"interaction"`
}

// ==========================
// Person / demographics
// ==========================

// NationalityRule carries everything conditioned on a nationality bucket:
// the local language and the name pools, so names stay demographically
// consistent with the sampled nationality.
type NationalityRule struct {
	Value         string   `mapstructure:"value" json:"value"`
	Weight        float64  `mapstructure:"weight" json:"weight"`
	LocalLanguage string   `mapstructure:"localLanguage" json:"localLanguage"`
	FirstNames    []string `mapstructure:"firstNames" json:"firstNames"`
	LastNames     []string `mapstructure:"lastNames" json:"lastNames"`
}

type PersonRules struct {
	Nationalities      []NationalityRule `mapstructure:"nationalities" json:"nationalities"`
	LanguagePool       []string          `mapstructure:"languagePool" json:"languagePool"`
	LanguageCount      Range             `mapstructure:"languageCount" json:"languageCount"`
	EnglishProbability float64           `mapstructure:"englishProbability" json:"englishProbability"`
	EmailPatterns      WeightedTable     `mapstructure:"emailPatterns" json:"emailPatterns"`
	EmailDomains       []string          `mapstructure:"emailDomains" json:"emailDomains"`
	Timezones          WeightedTable     `mapstructure:"timezones" json:"timezones"`
	ContactMethods     WeightedTable     `mapstructure:"contactMethods" json:"contactMethods"`
	PhoneCountryCodes  []string          `mapstructure:"phoneCountryCodes" json:"phoneCountryCodes"`
}

// ==========================
// Sales person
// ==========================

// ExpertiseCombination is a curated tag set drawn with priority before
// independent expertise sampling.
type ExpertiseCombination struct {
	Tags        []string `mapstructure:"tags" json:"tags"`
	Probability float64  `mapstructure:"probability" json:"probability"`
}

type SalesPersonRules struct {
	QuotaAttainment   NormalSpec             `mapstructure:"quotaAttainment" json:"quotaAttainment"`
	AverageDealSize   NormalSpec             `mapstructure:"averageDealSize" json:"averageDealSize"`
	WinRate           NormalSpec             `mapstructure:"winRate" json:"winRate"`
	AverageSalesCycle NormalSpec             `mapstructure:"averageSalesCycle" json:"averageSalesCycle"`
	Territories       []string               `mapstructure:"territories" json:"territories"`
	TerritoryCount    Range                  `mapstructure:"territoryCount" json:"territoryCount"`
	ExpertisePool     []string               `mapstructure:"expertisePool" json:"expertisePool"`
	ExpertiseCount    Range                  `mapstructure:"expertiseCount" json:"expertiseCount"`
	Combinations      []ExpertiseCombination `mapstructure:"combinations" json:"combinations"`
}

// ==========================
// Customer
// ==========================

// SizeProfile is everything gated by the company size bucket.
type SizeProfile struct {
	Employees     Range         `mapstructure:"employees" json:"employees"`
	AnnualRevenue Range         `mapstructure:"annualRevenue" json:"annualRevenue"`
	Contacts      Range         `mapstructure:"contacts" json:"contacts"`
	Roles         WeightedTable `mapstructure:"roles" json:"roles"`
}

// LocationRule is a weighted company location; Territory links it to sales
// territories for assignment weighting.
type LocationRule struct {
	Country   string  `mapstructure:"country" json:"country"`
	City      string  `mapstructure:"city" json:"city"`
	Timezone  string  `mapstructure:"timezone" json:"timezone"`
	Territory string  `mapstructure:"territory" json:"territory"`
	Weight    float64 `mapstructure:"weight" json:"weight"`
}

type CustomerRules struct {
	Sizes           WeightedTable          `mapstructure:"sizes" json:"sizes"`
	SizeProfiles    map[string]SizeProfile `mapstructure:"sizeProfiles" json:"sizeProfiles"`
	Industries      NestedTable            `mapstructure:"industries" json:"industries"`
	Statuses        WeightedTable          `mapstructure:"statuses" json:"statuses"`
	Locations       []LocationRule         `mapstructure:"locations" json:"locations"`
	CompanyPrefixes []string               `mapstructure:"companyPrefixes" json:"companyPrefixes"`
	CompanySuffixes []string               `mapstructure:"companySuffixes" json:"companySuffixes"`
}

// ==========================
// Product catalog
// ==========================

// DiscountTierRules drives tier construction by delta accumulation, which
// keeps quantity thresholds strictly increasing and discounts non-decreasing
// by construction.
type DiscountTierRules struct {
	Count         Range      `mapstructure:"count" json:"count"`
	FirstQuantity Range      `mapstructure:"firstQuantity" json:"firstQuantity"`
	QuantityStep  Range      `mapstructure:"quantityStep" json:"quantityStep"`
	FirstDiscount FloatRange `mapstructure:"firstDiscount" json:"firstDiscount"`
	DiscountStep  FloatRange `mapstructure:"discountStep" json:"discountStep"`
	MaxDiscount   float64    `mapstructure:"maxDiscount" json:"maxDiscount"`
}

type ProductRules struct {
	Categories          []string          `mapstructure:"categories" json:"categories"`
	ProductsPerCategory Range             `mapstructure:"productsPerCategory" json:"productsPerCategory"`
	Price               FloatRange        `mapstructure:"price" json:"price"`
	NameAdjectives      []string          `mapstructure:"nameAdjectives" json:"nameAdjectives"`
	FeaturePool         []string          `mapstructure:"featurePool" json:"featurePool"`
	FeatureCount        Range             `mapstructure:"featureCount" json:"featureCount"`
	CustomizationPool   []string          `mapstructure:"customizationPool" json:"customizationPool"`
	CustomizationCount  Range             `mapstructure:"customizationCount" json:"customizationCount"`
	DiscountTiers       DiscountTierRules `mapstructure:"discountTiers" json:"discountTiers"`
}

// ==========================
// Opportunity lifecycle
// ==========================

// StageRule is the lifecycle transition rule for one non-terminal stage:
// probability of advancing to the single configured next stage (the
// complement goes to lost) and the dwell-time range.
type StageRule struct {
	AdvanceProbability float64 `mapstructure:"advanceProbability" json:"advanceProbability"`
	DurationDays       Range   `mapstructure:"durationDays" json:"durationDays"`
}

// UrgencyRule is a weighted deal-urgency bucket with its value multiplier.
type UrgencyRule struct {
	Name       string  `mapstructure:"name" json:"name"`
	Multiplier float64 `mapstructure:"multiplier" json:"multiplier"`
	Weight     float64 `mapstructure:"weight" json:"weight"`
}

type OpportunityRules struct {
	PerCustomer            Range                 `mapstructure:"perCustomer" json:"perCustomer"`
	StageProgression       map[string]StageRule  `mapstructure:"stageProgression" json:"stageProgression"`
	StageProbabilities     map[string]float64    `mapstructure:"stageProbabilities" json:"stageProbabilities"`
	ValueBySize            map[string]FloatRange `mapstructure:"valueBySize" json:"valueBySize"`
	IndustryMultipliers    map[string]float64    `mapstructure:"industryMultipliers" json:"industryMultipliers"`
	Urgencies              []UrgencyRule         `mapstructure:"urgencies" json:"urgencies"`
	MaxProducts            int                   `mapstructure:"maxProducts" json:"maxProducts"`
	Quantity               Range                 `mapstructure:"quantity" json:"quantity"`
	CrossSellProbability   float64               `mapstructure:"crossSellProbability" json:"crossSellProbability"`
	BundleProbability      float64               `mapstructure:"bundleProbability" json:"bundleProbability"`
	CommonBundles          [][]string            `mapstructure:"commonBundles" json:"commonBundles"`
	CompetitorProbability  float64               `mapstructure:"competitorProbability" json:"competitorProbability"`
	CompetitorNames        []string              `mapstructure:"competitorNames" json:"competitorNames"`
	LossReasons            []string              `mapstructure:"lossReasons" json:"lossReasons"`
}

// ==========================
// Interactions
// ==========================

// StageInteractionRule drives interaction sequencing within one lifecycle
// stage's day window.
type StageInteractionRule struct {
	Frequency Range         `mapstructure:"frequency" json:"frequency"`
	GapDays   Range         `mapstructure:"gapDays" json:"gapDays"`
	Types     WeightedTable `mapstructure:"types" json:"types"`
}

type InteractionRules struct {
	Stages               map[string]StageInteractionRule `mapstructure:"stages" json:"stages"`
	InitialSentiment     WeightedTable                   `mapstructure:"initialSentiment" json:"initialSentiment"`
	SentimentTransitions MarkovTable                     `mapstructure:"sentimentTransitions" json:"sentimentTransitions"`
	DurationsByType      map[string]Range                `mapstructure:"durationsByType" json:"durationsByType"`
	OutcomesBySentiment  map[string]WeightedTable        `mapstructure:"outcomesBySentiment" json:"outcomesBySentiment"`
	Topics               []string                        `mapstructure:"topics" json:"topics"`
	TopicCount           Range                           `mapstructure:"topicCount" json:"topicCount"`
	NoteTemplates        map[string][]string             `mapstructure:"noteTemplates" json:"noteTemplates"`
	NextStepTemplates    map[string][]string             `mapstructure:"nextStepTemplates" json:"nextStepTemplates"`
}
