package models

// Demographics describes the locale-dependent attributes of a person.
type Demographics struct {
	Nationality            string   `json:"nationality"`
	Languages              []string `json:"languages"`
	Timezone               string   `json:"timezone"`
	PreferredContactMethod string   `json:"preferredContactMethod"`
}

// Person is a base person record, used for customer contacts and embedded in
// sales people.
type Person struct {
	ID           string       `json:"id"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Email        string       `json:"email"`
	PhoneNumber  string       `json:"phoneNumber"`
	Role         string       `json:"role"`
	Demographics Demographics `json:"demographics"`
}

// DecisionMakerRoles are the contact roles treated as decision-maker eligible
// by downstream consumers.
var DecisionMakerRoles = map[string]bool{
	"CEO":      true,
	"CTO":      true,
	"CFO":      true,
	"Director": true,
}

// IsDecisionMaker reports whether the person's role carries buying authority.
func (p Person) IsDecisionMaker() bool {
	return DecisionMakerRoles[p.Role]
}
