package engine

import "math"

// MaxScorePerCriterion is the top of the ordinal rating scale. A score of 0
// means "not yet scored" and is penalized as zero rather than excluded.
const MaxScorePerCriterion = 5

// weightSumTolerance absorbs float drift when checking that a criteria
// group's weights sum to 100.
const weightSumTolerance = 0.001

// ScoredCriterion is a single human-entered judgment: an ordinal rating
// 0..5 plus free-form notes. Never computed by the engine.
type ScoredCriterion struct {
	Notes string `json:"notes"`
	Score int    `json:"score"`
}

// CriteriaDefinition is a static catalog entry describing one weighted
// evaluation dimension. Weights within one group sum to 100.
type CriteriaDefinition struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// CriterionDetail is the per-criterion breakdown inside an EvaluationResult.
type CriterionDetail struct {
	Title         string  `json:"title"`
	Weight        float64 `json:"weight"`
	Score         int     `json:"score"`
	WeightedScore float64 `json:"weighted_score"`
	Notes         string  `json:"notes,omitempty"`
}

// EvaluationResult is a full recomputation over one criteria group. It is
// derived state: built fresh on every call, never partially updated.
type EvaluationResult struct {
	TotalScore float64                    `json:"total_score"`
	MaxScore   float64                    `json:"max_score"`
	Percentage float64                    `json:"percentage"`
	Details    map[string]CriterionDetail `json:"details"`
}

// EvaluateCriteria computes the weighted score for one criteria group.
// Each criterion contributes score * weight / 5 to the total; an unscored
// criterion (score 0) contributes nothing to the total but its full weight
// to the maximum, so incomplete evaluations read low rather than inflated.
func EvaluateCriteria(defs []CriteriaDefinition, scores map[string]ScoredCriterion) (*EvaluationResult, error) {
	if len(defs) == 0 {
		return nil, invalidInputf("criteria group is empty")
	}

	known := make(map[string]struct{}, len(defs))
	weightSum := 0.0
	for _, def := range defs {
		if def.Weight < 0 || def.Weight > 100 {
			return nil, invalidInputf("criterion %q has weight %.2f outside 0..100", def.ID, def.Weight)
		}
		if _, dup := known[def.ID]; dup {
			return nil, invalidInputf("duplicate criterion id %q", def.ID)
		}
		known[def.ID] = struct{}{}
		weightSum += def.Weight
	}
	if math.Abs(weightSum-100) > weightSumTolerance {
		return nil, invalidInputf("criteria weights sum to %.2f, expected 100", weightSum)
	}

	for id, sc := range scores {
		if _, ok := known[id]; !ok {
			return nil, invalidInputf("unknown criterion id %q", id)
		}
		if sc.Score < 0 || sc.Score > MaxScorePerCriterion {
			return nil, invalidInputf("criterion %q scored %d, expected 0..%d", id, sc.Score, MaxScorePerCriterion)
		}
	}

	result := &EvaluationResult{
		Details: make(map[string]CriterionDetail, len(defs)),
	}

	for _, def := range defs {
		sc := scores[def.ID] // zero value = not yet scored
		weighted := float64(sc.Score) * def.Weight / MaxScorePerCriterion

		result.TotalScore += weighted
		result.MaxScore += def.Weight
		result.Details[def.ID] = CriterionDetail{
			Title:         def.Title,
			Weight:        def.Weight,
			Score:         sc.Score,
			WeightedScore: weighted,
			Notes:         sc.Notes,
		}
	}

	result.Percentage = clampPercent(result.TotalScore / result.MaxScore * 100)

	return result, nil
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
