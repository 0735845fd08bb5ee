package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"goldenindex/internal/engine"
	"goldenindex/internal/models"
)

func newDecisionApp() *fiber.App {
	app := fiber.New()
	h := NewDecisionHandler()

	decision := app.Group("/decision")
	decision.Get("/criteria/:group", h.HandleGetCriteria)
	decision.Post("/criteria/:group/evaluate", h.HandleEvaluateCriteria)
	decision.Get("/sourcing/criteria", h.HandleGetSourcingCriteria)
	decision.Post("/sourcing/compare", h.HandleCompareSourcing)
	decision.Get("/orchestration/questions", h.HandleGetQuestions)
	decision.Post("/orchestration/advance", h.HandleAdvanceOrchestration)
	decision.Get("/tco/cost-items", h.HandleGetCostItems)
	decision.Post("/tco/summary", h.HandleTCOSummary)
	decision.Post("/tco/chart", h.HandleTCOChart)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestHandleGetCriteria(t *testing.T) {
	app := newDecisionApp()

	req := httptest.NewRequest(http.MethodGet, "/decision/criteria/business-case", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Group    string                      `json:"group"`
		Criteria []engine.CriteriaDefinition `json:"criteria"`
	}
	decodeBody(t, resp, &body)

	require.Equal(t, "business-case", body.Group)
	require.Len(t, body.Criteria, 5)
}

func TestHandleGetCriteriaUnknownGroup(t *testing.T) {
	app := newDecisionApp()

	req := httptest.NewRequest(http.MethodGet, "/decision/criteria/nope", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleEvaluateCriteria(t *testing.T) {
	app := newDecisionApp()

	scores := map[string]engine.ScoredCriterion{
		"strategic_alignment":   {Score: 5},
		"financial_return":      {Score: 5},
		"customer_impact":       {Score: 5},
		"risk_reduction":        {Score: 5},
		"implementation_effort": {Score: 5},
	}

	resp := postJSON(t, app, "/decision/criteria/business-case/evaluate", models.EvaluateCriteriaRequest{Scores: scores})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result engine.EvaluationResult
	decodeBody(t, resp, &result)

	require.InDelta(t, 100.0, result.TotalScore, 0.001)
	require.InDelta(t, 100.0, result.Percentage, 0.001)
	require.Len(t, result.Details, 5)
}

func TestHandleEvaluateCriteriaRejectsBadScore(t *testing.T) {
	app := newDecisionApp()

	scores := map[string]engine.ScoredCriterion{
		"strategic_alignment": {Score: 9},
	}

	resp := postJSON(t, app, "/decision/criteria/business-case/evaluate", models.EvaluateCriteriaRequest{Scores: scores})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	require.Contains(t, body, "error")
}

func TestHandleCompareSourcing(t *testing.T) {
	app := newDecisionApp()

	scores := engine.SourcingModelData{
		engine.CriterionStrategicDifferentiation: {Score: 5},
		engine.CriterionRequirementsFit:          {Score: 5},
		engine.CriterionTimeToMarket:             {Score: 5},
		engine.CriterionInternalCapability:       {Score: 5},
		engine.CriterionCostSensitivity:          {Score: 5},
		engine.CriterionVendorLockInRisk:         {Score: 5},
		engine.CriterionCustomizationDepth:       {Score: 5},
		engine.CriterionCommunityMaturity:        {Score: 5},
	}

	resp := postJSON(t, app, "/decision/sourcing/compare", models.CompareSourcingRequest{Scores: scores})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result engine.SourcingModelResult
	decodeBody(t, resp, &result)
	require.Equal(t, engine.SourcingOpenSource, result.Recommendation)
}

func TestHandleAdvanceOrchestration(t *testing.T) {
	app := newDecisionApp()

	// First answer: workbench enhancement short-circuits to a redirect.
	resp := postJSON(t, app, "/decision/orchestration/advance", models.AdvanceOrchestrationRequest{
		Answers:    engine.OrchestrationAnswers{},
		QuestionID: engine.QuestionStrategicIntent,
		Option:     engine.IntentWorkbenchEnhancement,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var step engine.OrchestrationStep
	decodeBody(t, resp, &step)

	require.Empty(t, step.NextQuestionID)
	require.NotNil(t, step.Recommendation)
	require.Equal(t, engine.RecommendationRedirect, step.Recommendation.Kind)
	require.Equal(t, "Workbench Platform", step.Recommendation.OwningTeam)
}

func TestHandleAdvanceOrchestrationReturnsNextQuestion(t *testing.T) {
	app := newDecisionApp()

	resp := postJSON(t, app, "/decision/orchestration/advance", models.AdvanceOrchestrationRequest{
		Answers:    engine.OrchestrationAnswers{},
		QuestionID: engine.QuestionStrategicIntent,
		Option:     engine.IntentNewAutomation,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var step engine.OrchestrationStep
	decodeBody(t, resp, &step)

	require.Equal(t, engine.QuestionIntegrationType, step.NextQuestionID)
	require.Nil(t, step.Recommendation)
}

func TestHandleAdvanceOrchestrationValidation(t *testing.T) {
	app := newDecisionApp()

	tests := []struct {
		name string
		req  models.AdvanceOrchestrationRequest
	}{
		{
			name: "missing question id",
			req: models.AdvanceOrchestrationRequest{
				Option: engine.IntentNewAutomation,
			},
		},
		{
			name: "missing option",
			req: models.AdvanceOrchestrationRequest{
				QuestionID: engine.QuestionStrategicIntent,
			},
		},
		{
			name: "unknown option",
			req: models.AdvanceOrchestrationRequest{
				QuestionID: engine.QuestionStrategicIntent,
				Option:     "telepathy",
			},
		},
		{
			name: "out of order",
			req: models.AdvanceOrchestrationRequest{
				Answers:    engine.OrchestrationAnswers{},
				QuestionID: engine.QuestionTeamCommitment,
				Option:     engine.CommitmentNone,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/decision/orchestration/advance", tt.req)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHandleTCOSummary(t *testing.T) {
	app := newDecisionApp()

	solution := engine.Solution{
		ID:   "rpa-vendor",
		Name: "RPA Vendor",
		Costs: map[string]engine.YearCosts{
			"licensing":   {Year1: 100, Year2: 100, Year3: 100, Year4: 100, Year5: 100},
			"maintenance": {Year1: 20, Year2: 20, Year3: 20, Year4: 20, Year5: 20},
		},
	}

	resp := postJSON(t, app, "/decision/tco/summary", models.TCOSummaryRequest{Solution: solution})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary engine.TCOSummary
	decodeBody(t, resp, &summary)

	require.Equal(t, "rpa-vendor", summary.SolutionID)
	require.InDelta(t, 500.0, summary.DirectTotal, 0.001)
	require.InDelta(t, 100.0, summary.IndirectTotal, 0.001)
	require.InDelta(t, 600.0, summary.FiveYearTotal, 0.001)
}

func TestHandleTCOSummaryRejectsUnknownItem(t *testing.T) {
	app := newDecisionApp()

	solution := engine.Solution{
		ID: "s1",
		Costs: map[string]engine.YearCosts{
			"coffee": {Year1: 10},
		},
	}

	resp := postJSON(t, app, "/decision/tco/summary", models.TCOSummaryRequest{Solution: solution})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleTCOChart(t *testing.T) {
	app := newDecisionApp()

	req := models.TCOChartRequest{
		Solutions: []engine.Solution{
			{ID: "a", Costs: map[string]engine.YearCosts{"licensing": {Year1: 10}}},
			{ID: "b", Costs: map[string]engine.YearCosts{"development": {Year2: 30}}},
		},
		VisibleIDs: []string{"a"},
	}

	resp := postJSON(t, app, "/decision/tco/chart", req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Series []engine.ChartDataPoint `json:"series"`
	}
	decodeBody(t, resp, &body)

	require.Len(t, body.Series, engine.TCOYears)
	require.Contains(t, body.Series[0].Values, "a")
	require.NotContains(t, body.Series[0].Values, "b")
}

func TestHandleGetQuestions(t *testing.T) {
	app := newDecisionApp()

	req := httptest.NewRequest(http.MethodGet, "/decision/orchestration/questions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Questions []engine.Question `json:"questions"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Questions, 6)
}

func TestHandleGetCostItems(t *testing.T) {
	app := newDecisionApp()

	req := httptest.NewRequest(http.MethodGet, "/decision/tco/cost-items", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		CostItems []engine.CostItem `json:"cost_items"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.CostItems, 8)
}
