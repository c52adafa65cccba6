package models

import "time"

// Sentiment enumerates interaction sentiments. Within an opportunity the
// sentiment sequence forms a Markov chain.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Sentiments lists every valid sentiment.
var Sentiments = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}

// Interaction is one time-stamped touch point between the owning
// opportunity's sales person and customer. OpportunityID links the
// interaction back to its opportunity so downstream consumers can replay a
// deal's history in order.
type Interaction struct {
	ID            string    `json:"id"`
	OpportunityID string    `json:"opportunityId"`
	Type          string    `json:"type"`
	Timestamp     time.Time `json:"timestamp"`
	CustomerID    string    `json:"customerId"`
	SalesPersonID string    `json:"salesPersonId"`
	Duration      int       `json:"duration"`
	Outcome       string    `json:"outcome"`
	Notes         string    `json:"notes"`
	NextSteps     string    `json:"nextSteps"`
	Sentiment     Sentiment `json:"sentiment"`
	Topics        []string  `json:"topics"`
}
