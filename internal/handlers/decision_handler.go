package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"goldenindex/internal/engine"
	"goldenindex/internal/models"
)

// DecisionHandler exposes the decision-support engine. All endpoints are
// stateless: the client posts its accumulated input and receives a fresh
// result, so abandoning a wizard simply drops client-side state.
type DecisionHandler struct{}

func NewDecisionHandler() *DecisionHandler {
	return &DecisionHandler{}
}

// decisionError maps the engine's error taxonomy onto HTTP statuses. All
// of them mean "cannot compute yet" to the client; a NoRuleMatchedError is
// a defect in the rule table and surfaces as a server error.
func decisionError(c *fiber.Ctx, err error) error {
	var invalid *engine.InvalidInputError
	if errors.As(err, &invalid) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": invalid.Error(),
		})
	}

	var incomplete *engine.IncompletePathError
	if errors.As(err, &incomplete) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":            incomplete.Error(),
			"next_question_id": incomplete.NextQuestionID,
		})
	}

	var noRule *engine.NoRuleMatchedError
	if errors.As(err, &noRule) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": noRule.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// HandleGetCriteria handles GET /decision/criteria/:group
func (h *DecisionHandler) HandleGetCriteria(c *fiber.Ctx) error {
	defs, err := engine.CriteriaGroup(c.Params("group"))
	if err != nil {
		return decisionError(c, err)
	}

	return c.JSON(fiber.Map{
		"group":    c.Params("group"),
		"criteria": defs,
	})
}

// HandleEvaluateCriteria handles POST /decision/criteria/:group/evaluate
func (h *DecisionHandler) HandleEvaluateCriteria(c *fiber.Ctx) error {
	defs, err := engine.CriteriaGroup(c.Params("group"))
	if err != nil {
		return decisionError(c, err)
	}

	var req models.EvaluateCriteriaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	result, err := engine.EvaluateCriteria(defs, req.Scores)
	if err != nil {
		return decisionError(c, err)
	}

	return c.JSON(result)
}

// HandleGetSourcingCriteria handles GET /decision/sourcing/criteria
func (h *DecisionHandler) HandleGetSourcingCriteria(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"criteria": engine.SourcingCriteria,
	})
}

// HandleCompareSourcing handles POST /decision/sourcing/compare
func (h *DecisionHandler) HandleCompareSourcing(c *fiber.Ctx) error {
	var req models.CompareSourcingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	result, err := engine.CompareSourcingModels(req.Scores)
	if err != nil {
		return decisionError(c, err)
	}

	return c.JSON(result)
}

// HandleGetQuestions handles GET /decision/orchestration/questions
func (h *DecisionHandler) HandleGetQuestions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"questions": engine.OrchestrationQuestions(),
	})
}

// HandleAdvanceOrchestration handles POST /decision/orchestration/advance
func (h *DecisionHandler) HandleAdvanceOrchestration(c *fiber.Ctx) error {
	var req models.AdvanceOrchestrationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.QuestionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "question_id is required",
		})
	}
	if req.Option == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "option is required",
		})
	}

	step, err := engine.AdvanceOrchestration(req.Answers, req.QuestionID, req.Option)
	if err != nil {
		return decisionError(c, err)
	}

	return c.JSON(step)
}

// HandleGetCostItems handles GET /decision/tco/cost-items
func (h *DecisionHandler) HandleGetCostItems(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"cost_items": engine.CostItems(),
	})
}

// HandleTCOSummary handles POST /decision/tco/summary
func (h *DecisionHandler) HandleTCOSummary(c *fiber.Ctx) error {
	var req models.TCOSummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	summary, err := engine.SummarizeTCO(req.Solution)
	if err != nil {
		return decisionError(c, err)
	}

	return c.JSON(summary)
}

// HandleTCOChart handles POST /decision/tco/chart
func (h *DecisionHandler) HandleTCOChart(c *fiber.Ctx) error {
	var req models.TCOChartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	points, err := engine.BuildChartSeries(req.Solutions, req.VisibleIDs)
	if err != nil {
		return decisionError(c, err)
	}

	return c.JSON(fiber.Map{
		"series": points,
	})
}
