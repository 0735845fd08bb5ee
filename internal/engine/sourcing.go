package engine

// Sourcing model candidates. Precedence order on exact ties: Build wins
// over Buy, Buy wins over Open Source.
const (
	SourcingBuild      = "build"
	SourcingBuy        = "buy"
	SourcingOpenSource = "open_source"
)

// The eight shared sourcing criteria. Every criterion is scored once and
// feeds all three candidate totals through candidate-specific coefficients.
const (
	CriterionStrategicDifferentiation = "strategic_differentiation"
	CriterionRequirementsFit          = "requirements_fit"
	CriterionTimeToMarket             = "time_to_market"
	CriterionInternalCapability       = "internal_capability"
	CriterionCostSensitivity          = "cost_sensitivity"
	CriterionVendorLockInRisk         = "vendor_lockin_risk"
	CriterionCustomizationDepth       = "customization_depth"
	CriterionCommunityMaturity        = "community_maturity"
)

// SourcingCriterion describes one shared sourcing dimension for display.
type SourcingCriterion struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SourcingModelData holds the evaluator's eight judgments, keyed by the
// fixed criterion ids above. A missing entry counts as not yet scored.
type SourcingModelData map[string]ScoredCriterion

// SourcingModelScores are the three raw candidate totals. All three are
// always returned so the caller can chart the comparison, not just the
// winner.
type SourcingModelScores struct {
	Build      float64 `json:"build"`
	Buy        float64 `json:"buy"`
	OpenSource float64 `json:"open_source"`
}

// SourcingModelResult is the comparison outcome: raw totals plus the
// recommended candidate.
type SourcingModelResult struct {
	Scores         SourcingModelScores `json:"scores"`
	Recommendation string              `json:"recommendation"`
}

// sourcingCoefficient is one row of the static weighting matrix: how much a
// high score on a criterion pulls toward (positive) or away from (negative)
// each candidate. E.g. a high vendor lock-in concern favors Build and Open
// Source and penalizes Buy.
type sourcingCoefficient struct {
	Build      float64
	Buy        float64
	OpenSource float64
}

var sourcingCoefficients = map[string]sourcingCoefficient{
	CriterionStrategicDifferentiation: {Build: 3, Buy: -2, OpenSource: 1},
	CriterionRequirementsFit:          {Build: -1, Buy: 3, OpenSource: 2},
	CriterionTimeToMarket:             {Build: -2, Buy: 3, OpenSource: 1},
	CriterionInternalCapability:       {Build: 3, Buy: 0, OpenSource: 2},
	CriterionCostSensitivity:          {Build: -1, Buy: -2, OpenSource: 3},
	CriterionVendorLockInRisk:         {Build: 2, Buy: -3, OpenSource: 2},
	CriterionCustomizationDepth:       {Build: 3, Buy: -1, OpenSource: 1},
	CriterionCommunityMaturity:        {Build: 0, Buy: 1, OpenSource: 3},
}

// sourcingPrecedence fixes the tie-break order.
var sourcingPrecedence = []string{SourcingBuild, SourcingBuy, SourcingOpenSource}

// CompareSourcingModels totals the eight criteria under each candidate's
// coefficient row and recommends the candidate with the strictly greatest
// total. Exact ties fall to the earlier candidate in precedence order.
func CompareSourcingModels(scores SourcingModelData) (*SourcingModelResult, error) {
	for id, sc := range scores {
		if _, ok := sourcingCoefficients[id]; !ok {
			return nil, invalidInputf("unknown sourcing criterion id %q", id)
		}
		if sc.Score < 0 || sc.Score > MaxScorePerCriterion {
			return nil, invalidInputf("sourcing criterion %q scored %d, expected 0..%d", id, sc.Score, MaxScorePerCriterion)
		}
	}

	var totals SourcingModelScores
	for id, coeff := range sourcingCoefficients {
		score := float64(scores[id].Score)
		totals.Build += score * coeff.Build
		totals.Buy += score * coeff.Buy
		totals.OpenSource += score * coeff.OpenSource
	}

	byCandidate := map[string]float64{
		SourcingBuild:      totals.Build,
		SourcingBuy:        totals.Buy,
		SourcingOpenSource: totals.OpenSource,
	}

	recommendation := sourcingPrecedence[0]
	for _, candidate := range sourcingPrecedence[1:] {
		if byCandidate[candidate] > byCandidate[recommendation] {
			recommendation = candidate
		}
	}

	return &SourcingModelResult{
		Scores:         totals,
		Recommendation: recommendation,
	}, nil
}
