package engine

// rulePredicate is a conjunction over the answer set. An empty field
// matches any value, including a question skipped by branching.
type rulePredicate struct {
	intent      string
	integration string
	footprint   string
	complexity  string
	capability  string
	commitment  string
}

func matchAnswer(want, got string) bool {
	return want == "" || want == got
}

type orchestrationRule struct {
	name    string
	when    rulePredicate
	outcome Recommendation
}

func (r orchestrationRule) matches(answers OrchestrationAnswers) bool {
	return matchAnswer(r.when.intent, answers[QuestionStrategicIntent]) &&
		matchAnswer(r.when.integration, answers[QuestionIntegrationType]) &&
		matchAnswer(r.when.footprint, answers[QuestionIntegrationFootprint]) &&
		matchAnswer(r.when.complexity, answers[QuestionLogicComplexity]) &&
		matchAnswer(r.when.capability, answers[QuestionCapabilityLevel]) &&
		matchAnswer(r.when.commitment, answers[QuestionTeamCommitment])
}

// orchestrationRules is evaluated top-to-bottom; the first matching rule
// wins. Order is load-bearing: blockers first, then redirects, then the
// cognitive-complexity ladder, then footprint and over-engineering
// warnings, then the capability catch-alls. Coverage of the full reachable
// answer space is asserted by test, not trusted.
var orchestrationRules = []orchestrationRule{
	{
		name: "no-committed-capacity",
		when: rulePredicate{commitment: CommitmentNone},
		outcome: Recommendation{
			Kind:        RecommendationBlocked,
			Explanation: "No delivery capacity is committed. Secure a delivery team before the initiative can proceed.",
		},
	},
	{
		name: "custom-build-needs-dedicated-team",
		when: rulePredicate{capability: CapabilityL3, commitment: CommitmentSharedCapacity},
		outcome: Recommendation{
			Kind:            RecommendationBlocked,
			CapabilityLevel: CapabilityL3,
			Explanation:     "A fully custom (L3) build cannot be delivered on shared capacity. Commit a dedicated team or target a lower capability level.",
		},
	},
	{
		name: "pipeline-extension-belongs-to-data-platform",
		when: rulePredicate{intent: IntentProcessExtension, integration: IntegrationDataPipeline},
		outcome: Recommendation{
			Kind:        RecommendationRedirect,
			OwningTeam:  "Data Platform",
			Explanation: "Extending an existing data pipeline is owned by the Data Platform team; hand the requirement over rather than rebuilding it as an automation.",
		},
	},
	{
		name: "cognitive-pipeline-belongs-to-coe",
		when: rulePredicate{integration: IntegrationDataPipeline, complexity: ComplexityCognitive},
		outcome: Recommendation{
			Kind:        RecommendationRedirect,
			OwningTeam:  "Intelligent Automation CoE",
			Explanation: "Cognitive logic over a data pipeline is the Intelligent Automation CoE's domain; engage them before committing a delivery approach.",
		},
	},
	{
		name: "cognitive-on-custom-build",
		when: rulePredicate{complexity: ComplexityCognitive, capability: CapabilityL3},
		outcome: Recommendation{
			Kind:            RecommendationMatched,
			CapabilityLevel: CapabilityL3,
			Explanation:     "Cognitive decision logic on a fully custom build is a sound fit.",
		},
	},
	{
		name: "cognitive-below-custom",
		when: rulePredicate{complexity: ComplexityCognitive},
		outcome: Recommendation{
			Kind:            RecommendationWarning,
			CapabilityLevel: CapabilityL3,
			Explanation:     "Cognitive decision logic will strain the chosen capability level. Proceed only with a plan to graduate to a fully custom (L3) build.",
		},
	},
	{
		name: "enterprise-footprint-on-platform-common",
		when: rulePredicate{footprint: FootprintEnterpriseWide, capability: CapabilityL1},
		outcome: Recommendation{
			Kind:            RecommendationWarning,
			CapabilityLevel: CapabilityL2,
			Explanation:     "An enterprise-wide footprint on a platform-common (L1) component is fragile. A configured scenario (L2) is the safer target.",
		},
	},
	{
		name: "custom-build-for-rule-based-logic",
		when: rulePredicate{complexity: ComplexityRuleBased, capability: CapabilityL3},
		outcome: Recommendation{
			Kind:            RecommendationWarning,
			CapabilityLevel: CapabilityL3,
			Explanation:     "Rule-based logic rarely justifies a fully custom build. Confirm the differentiation case before committing L3 effort.",
		},
	},
	{
		name: "platform-common-fit",
		when: rulePredicate{capability: CapabilityL1},
		outcome: Recommendation{
			Kind:            RecommendationMatched,
			CapabilityLevel: CapabilityL1,
			Explanation:     "The initiative fits a platform-common (L1) component.",
		},
	},
	{
		name: "configured-scenario-fit",
		when: rulePredicate{capability: CapabilityL2},
		outcome: Recommendation{
			Kind:            RecommendationMatched,
			CapabilityLevel: CapabilityL2,
			Explanation:     "The initiative fits a configured scenario (L2).",
		},
	},
	{
		name: "custom-build-fit",
		when: rulePredicate{capability: CapabilityL3},
		outcome: Recommendation{
			Kind:            RecommendationMatched,
			CapabilityLevel: CapabilityL3,
			Explanation:     "The initiative justifies a fully custom (L3) build.",
		},
	},
}
