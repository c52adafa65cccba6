package models

import "time"

// Dataset is the engine's only contract boundary: an internally consistent,
// read-only collection of generated records. Seed and Anchor are recorded so
// any run, including unseeded ones, can be replayed byte-for-byte.
type Dataset struct {
	Products      []Product     `json:"products"`
	SalesPeople   []SalesPerson `json:"salesPeople"`
	Customers     []Customer    `json:"customers"`
	Opportunities []Opportunity `json:"opportunities"`
	Interactions  []Interaction `json:"interactions"`
	Seed          int64         `json:"generatedWithSeed"`
	Anchor        time.Time     `json:"anchorDate"`
}
