package models

// Stage enumerates the opportunity lifecycle states.
type Stage string

const (
	StageIdentified   Stage = "identified"
	StageQualified    Stage = "qualified"
	StageProposalSent Stage = "proposalSent"
	StageNegotiating  Stage = "negotiating"
	StageWon          Stage = "won"
	StageLost         Stage = "lost"
)

// StageOrder is the fixed forward walk through the non-terminal stages.
// There is no skipping or regression; lost is reachable from every entry.
var StageOrder = []Stage{StageIdentified, StageQualified, StageProposalSent, StageNegotiating}

// IsTerminal reports whether the stage ends the lifecycle.
func (s Stage) IsTerminal() bool {
	return s == StageWon || s == StageLost
}

// StageVisit records one lifecycle state an opportunity passed through, with
// its entry offset from the run anchor and its duration. Terminal visits have
// zero duration.
type StageVisit struct {
	Stage           Stage `json:"stage"`
	EntryOffsetDays int   `json:"entryOffsetDays"`
	DurationDays    int   `json:"durationDays"`
}

// OpportunityProduct is one line item on an opportunity.
type OpportunityProduct struct {
	ProductID       string   `json:"productId"`
	Quantity        int      `json:"quantity"`
	Customizations  []string `json:"customizations"`
	AppliedDiscount float64  `json:"appliedDiscount"`
}

// Opportunity is a sales opportunity tied to one customer and one sales
// person generated in the same run.
type Opportunity struct {
	ID                 string               `json:"id"`
	CustomerID         string               `json:"customerId"`
	SalesPersonID      string               `json:"salesPersonId"`
	Products           []OpportunityProduct `json:"products"`
	Status             Stage                `json:"status"`
	Value              float64              `json:"value"`
	Probability        float64              `json:"probability"`
	ExpectedCloseDate  string               `json:"expectedCloseDate"`
	LossReason         *string              `json:"lossReason"`
	CompetitorInvolved *string              `json:"competitorInvolved"`
	StageHistory       []StageVisit         `json:"stageHistory"`
}
