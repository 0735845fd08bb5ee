package engine

// Question ids in path order. Branching can skip or short-circuit, but it
// never revisits an earlier question.
const (
	QuestionStrategicIntent      = "strategic_intent"
	QuestionIntegrationType      = "integration_type"
	QuestionIntegrationFootprint = "integration_footprint"
	QuestionLogicComplexity      = "logic_complexity"
	QuestionCapabilityLevel      = "capability_level"
	QuestionTeamCommitment       = "team_commitment"
)

// Option values, grouped by question.
const (
	IntentNewAutomation        = "new_automation"
	IntentProcessExtension     = "process_extension"
	IntentWorkbenchEnhancement = "workbench_enhancement"

	IntegrationAPIBased     = "api_based"
	IntegrationUIDriven     = "ui_driven"
	IntegrationDataPipeline = "data_pipeline"

	FootprintSingleSystem   = "single_system"
	FootprintCrossSystem    = "cross_system"
	FootprintEnterpriseWide = "enterprise_wide"

	ComplexityRuleBased     = "rule_based"
	ComplexityDecisionHeavy = "decision_heavy"
	ComplexityCognitive     = "cognitive"

	CapabilityL1 = "l1"
	CapabilityL2 = "l2"
	CapabilityL3 = "l3"

	CommitmentDedicatedTeam  = "dedicated_team"
	CommitmentSharedCapacity = "shared_capacity"
	CommitmentNone           = "none"
)

// RecommendationKind classifies the outcome of rule evaluation.
type RecommendationKind string

const (
	RecommendationMatched  RecommendationKind = "matched"
	RecommendationWarning  RecommendationKind = "warning"
	RecommendationBlocked  RecommendationKind = "blocked"
	RecommendationRedirect RecommendationKind = "redirect"
)

// QuestionOption is one selectable answer.
type QuestionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Question is one step of the orchestration questionnaire.
type Question struct {
	ID      string           `json:"id"`
	Prompt  string           `json:"prompt"`
	Options []QuestionOption `json:"options"`
}

// OrchestrationAnswers maps question id to the selected option value.
// A partial map is a valid intermediate state.
type OrchestrationAnswers map[string]string

// Recommendation is the terminal outcome of a complete answer path.
// OwningTeam is set only for redirects; CapabilityLevel names the level the
// recommendation refers to where one applies.
type Recommendation struct {
	Kind            RecommendationKind `json:"kind"`
	CapabilityLevel string             `json:"capability_level,omitempty"`
	OwningTeam      string             `json:"owning_team,omitempty"`
	Explanation     string             `json:"explanation"`
}

// OrchestrationStep is the result of recording one answer: the updated
// answer set plus either the next question to ask or, on a terminal path,
// the recommendation.
type OrchestrationStep struct {
	Answers        OrchestrationAnswers `json:"answers"`
	NextQuestionID string               `json:"next_question_id,omitempty"`
	Recommendation *Recommendation      `json:"recommendation,omitempty"`
}

var orchestrationQuestions = []Question{
	{
		ID:     QuestionStrategicIntent,
		Prompt: "What is the strategic intent of this initiative?",
		Options: []QuestionOption{
			{Value: IntentNewAutomation, Label: "New automation capability"},
			{Value: IntentProcessExtension, Label: "Extension of an existing process"},
			{Value: IntentWorkbenchEnhancement, Label: "Workbench enhancement"},
		},
	},
	{
		ID:     QuestionIntegrationType,
		Prompt: "How will the automation integrate with the target systems?",
		Options: []QuestionOption{
			{Value: IntegrationAPIBased, Label: "API based"},
			{Value: IntegrationUIDriven, Label: "UI driven (attended surface)"},
			{Value: IntegrationDataPipeline, Label: "Data pipeline"},
		},
	},
	{
		ID:     QuestionIntegrationFootprint,
		Prompt: "What is the integration footprint?",
		Options: []QuestionOption{
			{Value: FootprintSingleSystem, Label: "Single system"},
			{Value: FootprintCrossSystem, Label: "Two to three systems"},
			{Value: FootprintEnterpriseWide, Label: "Enterprise wide"},
		},
	},
	{
		ID:     QuestionLogicComplexity,
		Prompt: "How complex is the decision logic?",
		Options: []QuestionOption{
			{Value: ComplexityRuleBased, Label: "Rule based"},
			{Value: ComplexityDecisionHeavy, Label: "Decision heavy"},
			{Value: ComplexityCognitive, Label: "Cognitive / judgment based"},
		},
	},
	{
		ID:     QuestionCapabilityLevel,
		Prompt: "Which capability level is the initiative targeting?",
		Options: []QuestionOption{
			{Value: CapabilityL1, Label: "L1 — platform common"},
			{Value: CapabilityL2, Label: "L2 — configured scenario"},
			{Value: CapabilityL3, Label: "L3 — fully custom"},
		},
	},
	{
		ID:     QuestionTeamCommitment,
		Prompt: "What delivery capacity is committed?",
		Options: []QuestionOption{
			{Value: CommitmentDedicatedTeam, Label: "Dedicated team"},
			{Value: CommitmentSharedCapacity, Label: "Shared capacity"},
			{Value: CommitmentNone, Label: "No committed capacity"},
		},
	},
}

// questionPathOrder mirrors orchestrationQuestions; kept separate so
// downstream-clearing can index by position without re-deriving it.
var questionPathOrder = []string{
	QuestionStrategicIntent,
	QuestionIntegrationType,
	QuestionIntegrationFootprint,
	QuestionLogicComplexity,
	QuestionCapabilityLevel,
	QuestionTeamCommitment,
}

// OrchestrationQuestions returns the full question table for the client.
func OrchestrationQuestions() []Question {
	return orchestrationQuestions
}

func questionByID(id string) (Question, bool) {
	for _, q := range orchestrationQuestions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

func optionValid(q Question, value string) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// onActivePath reports whether a question is asked given the answers so
// far. The footprint question is skipped for UI-driven integrations: an
// attended surface automation is bounded to the screens it drives.
func onActivePath(id string, answers OrchestrationAnswers) bool {
	if id == QuestionIntegrationFootprint && answers[QuestionIntegrationType] == IntegrationUIDriven {
		return false
	}
	return true
}

// nextQuestionID returns the first unanswered question on the active path,
// or "" when the path is terminal. A workbench enhancement intent is
// terminal immediately: the remaining questions are bypassed.
func nextQuestionID(answers OrchestrationAnswers) string {
	if answers[QuestionStrategicIntent] == IntentWorkbenchEnhancement {
		return ""
	}
	for _, id := range questionPathOrder {
		if !onActivePath(id, answers) {
			continue
		}
		if _, ok := answers[id]; !ok {
			return id
		}
	}
	return ""
}

// AdvanceOrchestration records one answer and moves the wizard forward.
// Re-answering a question earlier in the path clears every downstream
// answer so the path stays consistent. On a terminal path the accumulated
// answers are evaluated against the rule table.
func AdvanceOrchestration(answers OrchestrationAnswers, questionID, option string) (*OrchestrationStep, error) {
	question, ok := questionByID(questionID)
	if !ok {
		return nil, invalidInputf("unknown question id %q", questionID)
	}
	if !optionValid(question, option) {
		return nil, invalidInputf("question %q has no option %q", questionID, option)
	}

	updated := make(OrchestrationAnswers, len(answers)+1)
	for id, value := range answers {
		q, known := questionByID(id)
		if !known {
			return nil, invalidInputf("unknown question id %q in answers", id)
		}
		if !optionValid(q, value) {
			return nil, invalidInputf("question %q has no option %q", id, value)
		}
		updated[id] = value
	}

	// The answered question must be reachable: either already answered or
	// the next one the wizard would ask.
	if _, answered := updated[questionID]; !answered {
		if next := nextQuestionID(updated); next != questionID {
			return nil, invalidInputf("question %q is not answerable yet (expected %q)", questionID, next)
		}
	}

	updated[questionID] = option
	clearDownstream(updated, questionID)

	step := &OrchestrationStep{Answers: updated}

	if next := nextQuestionID(updated); next != "" {
		step.NextQuestionID = next
		return step, nil
	}

	rec, err := EvaluateOrchestration(updated)
	if err != nil {
		return nil, err
	}
	step.Recommendation = rec
	return step, nil
}

func clearDownstream(answers OrchestrationAnswers, questionID string) {
	clearing := false
	for _, id := range questionPathOrder {
		if clearing {
			delete(answers, id)
		}
		if id == questionID {
			clearing = true
		}
	}
}

// EvaluateOrchestration classifies a complete answer path. The workbench
// redirect branch resolves here without consulting the rule table; every
// other terminal path is matched top-to-bottom against the ordered rules,
// first match wins.
func EvaluateOrchestration(answers OrchestrationAnswers) (*Recommendation, error) {
	if next := nextQuestionID(answers); next != "" {
		return nil, &IncompletePathError{NextQuestionID: next}
	}

	if answers[QuestionStrategicIntent] == IntentWorkbenchEnhancement {
		return &Recommendation{
			Kind:        RecommendationRedirect,
			OwningTeam:  "Workbench Platform",
			Explanation: "Workbench enhancements are owned by the Workbench Platform team; raise the request through their intake instead of the automation pipeline.",
		}, nil
	}

	for _, rule := range orchestrationRules {
		if rule.matches(answers) {
			rec := rule.outcome
			return &rec, nil
		}
	}

	return nil, &NoRuleMatchedError{Answers: answers}
}
