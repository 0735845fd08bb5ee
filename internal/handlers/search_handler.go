package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"goldenindex/internal/models"
	"goldenindex/internal/repositories"
	"goldenindex/internal/services"
)

type SearchHandler struct {
	assetRepo        repositories.AssetRepository
	embeddingService services.EmbeddingService
	searchService    services.SearchService
	maxRetries       int
}

func NewSearchHandler(
	assetRepo repositories.AssetRepository,
	embeddingService services.EmbeddingService,
	searchService services.SearchService,
	maxRetries int,
) *SearchHandler {
	return &SearchHandler{
		assetRepo:        assetRepo,
		embeddingService: embeddingService,
		searchService:    searchService,
		maxRetries:       maxRetries,
	}
}

// HandleSearch handles GET /search?q=...&limit=...
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "q is required",
		})
	}

	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	ctx := context.Background()

	embedding, err := h.embeddingService.EmbedTextWithRetry(ctx, query, h.maxRetries)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to embed search query",
		})
	}

	hits, err := h.searchService.Search(ctx, embedding, limit)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Search failed",
		})
	}

	response := models.SearchResponse{
		Query: query,
		Hits:  make([]models.SearchHitResponse, 0, len(hits)),
	}

	for _, hit := range hits {
		item := models.SearchHitResponse{
			ID:    hit.AssetID,
			Score: hit.Score,
		}

		// Hydrate from the catalog; vectors can outlive their asset
		// briefly, so a miss just means a bare hit.
		if assetID, err := uuid.Parse(hit.AssetID); err == nil {
			if asset, err := h.assetRepo.FindByID(assetID); err == nil {
				item.Asset = asset
			} else {
				log.Printf("⚠️  Search hit %s has no catalog row\n", hit.AssetID)
			}
		}

		response.Hits = append(response.Hits, item)
	}

	return c.JSON(response)
}
