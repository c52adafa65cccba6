package generator

import (
	"strings"
	"time"

	"sales-datagen/internal/genrand"
	"sales-datagen/internal/models"
	"sales-datagen/internal/rules"
)

// sequenceInteractions produces the interaction history of one opportunity
// from its stage-visit trace. Each non-terminal visit opens a day window;
// interactions are placed by accumulating per-stage gaps and stop as soon as
// the next gap would overflow the window, never spilling into the next
// stage. Sentiment follows a Markov chain across the whole opportunity.
func sequenceInteractions(
	s *genrand.Stream,
	ir rules.InteractionRules,
	opp models.Opportunity,
	customer models.Customer,
	anchor time.Time,
) ([]models.Interaction, error) {
	var result []models.Interaction

	sentiment, err := ir.InitialSentiment.Sample(s)
	if err != nil {
		return nil, err
	}
	first := true

	for _, visit := range opp.StageHistory {
		if visit.Stage.IsTerminal() {
			break
		}
		stageRule, ok := ir.Stages[string(visit.Stage)]
		if !ok {
			continue
		}

		count := stageRule.Frequency.Sample(s)
		elapsed := 0

		for i := 0; i < count; i++ {
			elapsed += stageRule.GapDays.Sample(s)
			if elapsed >= visit.DurationDays {
				break
			}

			if !first {
				sentiment, err = ir.SentimentTransitions.Next(s, sentiment)
				if err != nil {
					return nil, err
				}
			}
			first = false

			interaction, err := buildInteraction(s, ir, opp, customer, visit, anchor, elapsed, sentiment)
			if err != nil {
				return nil, err
			}
			result = append(result, interaction)
		}
	}

	return result, nil
}

func buildInteraction(
	s *genrand.Stream,
	ir rules.InteractionRules,
	opp models.Opportunity,
	customer models.Customer,
	visit models.StageVisit,
	anchor time.Time,
	elapsed int,
	sentiment string,
) (models.Interaction, error) {
	stageRule := ir.Stages[string(visit.Stage)]

	interactionType, err := stageRule.Types.Sample(s)
	if err != nil {
		return models.Interaction{}, err
	}

	outcome, err := ir.OutcomesBySentiment[sentiment].Sample(s)
	if err != nil {
		return models.Interaction{}, err
	}

	topicCount := ir.TopicCount.Sample(s)
	topics := genrand.PickDistinct(s, ir.Topics, topicCount)

	// Business-hour jitter within the day keeps timestamps plausible
	// without disturbing day-level ordering.
	day := anchor.AddDate(0, 0, visit.EntryOffsetDays+elapsed)
	timestamp := time.Date(
		day.Year(), day.Month(), day.Day(),
		s.IntBetween(8, 17), s.IntBetween(0, 59), 0, 0, time.UTC,
	)

	contact := customer.Contacts[s.IntBetween(0, len(customer.Contacts)-1)]
	topic := topics[0]

	return models.Interaction{
		ID:            s.NewID(),
		OpportunityID: opp.ID,
		Type:          interactionType,
		Timestamp:     timestamp,
		CustomerID:    customer.ID,
		SalesPersonID: opp.SalesPersonID,
		Duration:      ir.DurationsByType[interactionType].Sample(s),
		Outcome:       outcome,
		Notes:         fillTemplate(s, ir.NoteTemplates[interactionType], contact, customer, topic),
		NextSteps:     fillTemplate(s, ir.NextStepTemplates[outcome], contact, customer, topic),
		Sentiment:     models.Sentiment(sentiment),
		Topics:        topics,
	}, nil
}

// fillTemplate picks one template and substitutes the contact, company and
// topic placeholders.
func fillTemplate(s *genrand.Stream, templates []string, contact models.Person, customer models.Customer, topic string) string {
	if len(templates) == 0 {
		return ""
	}
	text := templates[s.IntBetween(0, len(templates)-1)]
	text = strings.ReplaceAll(text, "{contact}", contact.FirstName+" "+contact.LastName)
	text = strings.ReplaceAll(text, "{company}", customer.Company)
	text = strings.ReplaceAll(text, "{topic}", topic)
	return text
}
