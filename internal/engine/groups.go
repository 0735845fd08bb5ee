package engine

// Criteria group names served to the client.
const (
	GroupBusinessCase      = "business-case"
	GroupInitialAssessment = "initial-assessment"
)

// Static criteria catalogs, loaded once per process and never mutated.
// Weights within each group sum to 100 by construction; EvaluateCriteria
// re-validates that anyway rather than trusting the authoring.

var businessCaseCriteria = []CriteriaDefinition{
	{
		ID:          "strategic_alignment",
		Title:       "Strategic alignment",
		Weight:      25,
		Description: "How strongly the initiative supports stated business strategy and roadmap priorities.",
	},
	{
		ID:          "financial_return",
		Title:       "Financial return",
		Weight:      25,
		Description: "Expected cost savings or revenue contribution relative to the investment.",
	},
	{
		ID:          "customer_impact",
		Title:       "Customer impact",
		Weight:      20,
		Description: "Improvement in customer-facing quality, speed or experience.",
	},
	{
		ID:          "risk_reduction",
		Title:       "Risk reduction",
		Weight:      15,
		Description: "Reduction of operational, compliance or key-person risk.",
	},
	{
		ID:          "implementation_effort",
		Title:       "Implementation effort",
		Weight:      15,
		Description: "Feasibility of delivery with available skills, systems access and change capacity. Score high when effort is low.",
	},
}

var initialAssessmentCriteria = []CriteriaDefinition{
	{
		ID:          "process_stability",
		Title:       "Process stability",
		Weight:      20,
		Description: "How stable and standardized the target process is; frequent change erodes automation value.",
	},
	{
		ID:          "data_structure",
		Title:       "Data structure",
		Weight:      20,
		Description: "Share of structured, machine-readable input versus free text and scans.",
	},
	{
		ID:          "transaction_volume",
		Title:       "Transaction volume",
		Weight:      20,
		Description: "Throughput of the process; volume drives the payback of the automation.",
	},
	{
		ID:          "exception_rate",
		Title:       "Exception rate",
		Weight:      15,
		Description: "Share of cases handled by the happy path. Score high when exceptions are rare.",
	},
	{
		ID:          "system_accessibility",
		Title:       "System accessibility",
		Weight:      25,
		Description: "Availability of stable interfaces (APIs, exports) into the systems the process touches.",
	},
}

var criteriaGroups = map[string][]CriteriaDefinition{
	GroupBusinessCase:      businessCaseCriteria,
	GroupInitialAssessment: initialAssessmentCriteria,
}

// CriteriaGroup returns the definitions for a named group.
func CriteriaGroup(name string) ([]CriteriaDefinition, error) {
	defs, ok := criteriaGroups[name]
	if !ok {
		return nil, invalidInputf("unknown criteria group %q", name)
	}
	return defs, nil
}

// SourcingCriteria is the display table for the eight shared sourcing
// dimensions. The per-candidate weighting lives in sourcingCoefficients,
// not here.
var SourcingCriteria = []SourcingCriterion{
	{ID: CriterionStrategicDifferentiation, Title: "Strategic differentiation", Description: "The capability differentiates us in the market rather than keeping the lights on."},
	{ID: CriterionRequirementsFit, Title: "Requirements fit", Description: "Commercial or community offerings already cover the requirements well."},
	{ID: CriterionTimeToMarket, Title: "Time to market", Description: "Delivery speed matters more than long-term ownership."},
	{ID: CriterionInternalCapability, Title: "Internal capability", Description: "We have the engineering capacity and skills to build and run this ourselves."},
	{ID: CriterionCostSensitivity, Title: "Cost sensitivity", Description: "Up-front and recurring spend are tightly constrained."},
	{ID: CriterionVendorLockInRisk, Title: "Vendor lock-in risk", Description: "Dependence on a single vendor would be hard to unwind."},
	{ID: CriterionCustomizationDepth, Title: "Customization depth", Description: "The solution must bend deeply to our processes rather than the reverse."},
	{ID: CriterionCommunityMaturity, Title: "Community maturity", Description: "A healthy open source ecosystem exists in this problem space."},
}
