package generator

import (
	"sales-datagen/internal/genrand"
	"sales-datagen/internal/models"
	"sales-datagen/internal/rules"
)

// simulateLifecycle walks an opportunity through the fixed stage order. At
// each non-terminal stage a Bernoulli branch on the stage's
// advanceProbability decides between moving to the next stage and losing the
// deal; surviving all four stages wins it. Every visited stage dwells a
// uniform number of days from its configured range. The returned trace
// always ends with a zero-duration terminal visit.
func simulateLifecycle(s *genrand.Stream, or rules.OpportunityRules) ([]models.StageVisit, models.Stage) {
	var trace []models.StageVisit
	offset := 0

	for i, stage := range models.StageOrder {
		rule := or.StageProgression[string(stage)]
		duration := rule.DurationDays.Sample(s)

		trace = append(trace, models.StageVisit{
			Stage:           stage,
			EntryOffsetDays: offset,
			DurationDays:    duration,
		})
		offset += duration

		if s.Uniform() >= rule.AdvanceProbability {
			trace = append(trace, models.StageVisit{
				Stage:           models.StageLost,
				EntryOffsetDays: offset,
				DurationDays:    0,
			})
			return trace, models.StageLost
		}

		if i == len(models.StageOrder)-1 {
			trace = append(trace, models.StageVisit{
				Stage:           models.StageWon,
				EntryOffsetDays: offset,
				DurationDays:    0,
			})
			return trace, models.StageWon
		}
	}

	// StageOrder is never empty.
	return trace, models.StageLost
}

// closeProbability maps a finished lifecycle to the fixed per-stage
// probability table: won deals are certain, lost deals report the estimate
// of the deepest stage they reached.
func closeProbability(or rules.OpportunityRules, trace []models.StageVisit, status models.Stage) float64 {
	if status == models.StageWon {
		return or.StageProbabilities[string(models.StageWon)]
	}
	if len(trace) < 2 {
		return or.StageProbabilities[string(models.StageLost)]
	}
	deepest := trace[len(trace)-2].Stage
	return or.StageProbabilities[string(deepest)]
}
