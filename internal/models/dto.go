package models

import "goldenindex/internal/engine"

type CreateAssetRequest struct {
	Name       string   `json:"name" validate:"required"`
	Slug       string   `json:"slug" validate:"required"`
	Summary    string   `json:"summary"`
	Body       string   `json:"body"`
	Status     string   `json:"status"`
	CategoryID string   `json:"category_id"`
	Tags       []string `json:"tags"`
}

type UpdateAssetRequest struct {
	Name       *string  `json:"name"`
	Summary    *string  `json:"summary"`
	Body       *string  `json:"body"`
	Status     *string  `json:"status"`
	CategoryID *string  `json:"category_id"`
	Tags       []string `json:"tags"`
}

type ListAssetsResponse struct {
	Assets []Asset `json:"assets"`
	Total  int64   `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

// AssetContentResponse carries the rendered markdown body plus a content
// hash the client can use for cache validation.
type AssetContentResponse struct {
	ID          string `json:"id"`
	HTML        string `json:"html"`
	ContentHash string `json:"content_hash"`
}

type SearchHitResponse struct {
	Asset *Asset  `json:"asset,omitempty"`
	ID    string  `json:"id"`
	Score float32 `json:"score"`
}

type SearchResponse struct {
	Query string              `json:"query"`
	Hits  []SearchHitResponse `json:"hits"`
}

type DocumentUploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	PageCount    int    `json:"page_count"`
}

// Decision-support request shapes. The engine is stateless: the client
// posts its accumulated input and gets a fresh result back.

type EvaluateCriteriaRequest struct {
	Scores map[string]engine.ScoredCriterion `json:"scores"`
}

type CompareSourcingRequest struct {
	Scores engine.SourcingModelData `json:"scores"`
}

type AdvanceOrchestrationRequest struct {
	Answers    engine.OrchestrationAnswers `json:"answers"`
	QuestionID string                      `json:"question_id" validate:"required"`
	Option     string                      `json:"option" validate:"required"`
}

type TCOSummaryRequest struct {
	Solution engine.Solution `json:"solution"`
}

type TCOChartRequest struct {
	Solutions  []engine.Solution `json:"solutions"`
	VisibleIDs []string          `json:"visible_ids"`
}
