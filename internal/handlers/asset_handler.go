package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"goldenindex/internal/models"
	"goldenindex/internal/repositories"
	"goldenindex/internal/services"
)

type AssetHandler struct {
	assetRepo      repositories.AssetRepository
	taxonomyRepo   repositories.TaxonomyRepository
	contentService services.ContentService
	searchService  services.SearchService
	worker         services.Worker
}

func NewAssetHandler(
	assetRepo repositories.AssetRepository,
	taxonomyRepo repositories.TaxonomyRepository,
	contentService services.ContentService,
	searchService services.SearchService,
	worker services.Worker,
) *AssetHandler {
	return &AssetHandler{
		assetRepo:      assetRepo,
		taxonomyRepo:   taxonomyRepo,
		contentService: contentService,
		searchService:  searchService,
		worker:         worker,
	}
}

// HandleCreateAsset handles POST /assets
func (h *AssetHandler) HandleCreateAsset(c *fiber.Ctx) error {
	var req models.CreateAssetRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}
	if req.Slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "slug is required",
		})
	}

	asset := &models.Asset{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        req.Slug,
		Summary:     req.Summary,
		Body:        req.Body,
		Status:      models.AssetIncubating,
		IndexStatus: models.IndexPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if req.Status != "" {
		asset.Status = models.AssetStatus(req.Status)
	}

	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid category_id format",
			})
		}
		if _, err := h.taxonomyRepo.FindCategoryByID(categoryID); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
		asset.CategoryID = &categoryID
	}

	if len(req.Tags) > 0 {
		tags, err := h.taxonomyRepo.FindOrCreateTags(req.Tags)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to resolve tags",
			})
		}
		asset.Tags = tags
	}

	if err := h.assetRepo.Create(asset); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create asset",
		})
	}

	// Queue for search indexing
	h.worker.EnqueueAsset(asset.ID)

	return c.Status(fiber.StatusCreated).JSON(asset)
}

// HandleListAssets handles GET /assets
func (h *AssetHandler) HandleListAssets(c *fiber.Ctx) error {
	filter := repositories.ListAssetsFilter{
		Tag:    c.Query("tag"),
		Status: c.Query("status"),
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}

	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	if categoryParam := c.Query("category_id"); categoryParam != "" {
		categoryID, err := uuid.Parse(categoryParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid category_id format",
			})
		}
		filter.CategoryID = &categoryID
	}

	assets, total, err := h.assetRepo.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list assets",
		})
	}

	return c.JSON(models.ListAssetsResponse{
		Assets: assets,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// HandleGetAsset handles GET /assets/:id
func (h *AssetHandler) HandleGetAsset(c *fiber.Ctx) error {
	assetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid asset ID format",
		})
	}

	asset, err := h.assetRepo.FindByID(assetID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Asset not found",
		})
	}

	return c.JSON(asset)
}

// HandleGetAssetContent handles GET /assets/:id/content
func (h *AssetHandler) HandleGetAssetContent(c *fiber.Ctx) error {
	assetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid asset ID format",
		})
	}

	asset, err := h.assetRepo.FindByID(assetID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Asset not found",
		})
	}

	rendered, err := h.contentService.Render(asset.Body)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to render asset content",
		})
	}

	return c.JSON(models.AssetContentResponse{
		ID:          asset.ID.String(),
		HTML:        rendered.HTML,
		ContentHash: rendered.ContentHash,
	})
}

// HandleUpdateAsset handles PUT /assets/:id
func (h *AssetHandler) HandleUpdateAsset(c *fiber.Ctx) error {
	assetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid asset ID format",
		})
	}

	asset, err := h.assetRepo.FindByID(assetID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Asset not found",
		})
	}

	var req models.UpdateAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.Summary != nil {
		asset.Summary = *req.Summary
	}
	if req.Body != nil {
		asset.Body = *req.Body
	}
	if req.Status != nil {
		asset.Status = models.AssetStatus(*req.Status)
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			asset.CategoryID = nil
		} else {
			categoryID, err := uuid.Parse(*req.CategoryID)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Invalid category_id format",
				})
			}
			asset.CategoryID = &categoryID
		}
	}

	if req.Tags != nil {
		tags, err := h.taxonomyRepo.FindOrCreateTags(req.Tags)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to resolve tags",
			})
		}
		if err := h.assetRepo.ReplaceTags(asset, tags); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update asset tags",
			})
		}
		asset.Tags = tags
	}

	// Content changed; the search vector is stale until re-indexed
	asset.IndexStatus = models.IndexPending
	asset.IndexError = nil

	if err := h.assetRepo.Update(asset); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update asset",
		})
	}

	h.worker.EnqueueAsset(asset.ID)

	return c.JSON(asset)
}

// HandleDeleteAsset handles DELETE /assets/:id
func (h *AssetHandler) HandleDeleteAsset(c *fiber.Ctx) error {
	assetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid asset ID format",
		})
	}

	if err := h.assetRepo.Delete(assetID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Asset not found",
		})
	}

	// Drop the search vector as well; a failure only leaves a stale hit
	// behind, so log and move on.
	if err := h.searchService.RemoveAsset(context.Background(), assetID); err != nil {
		log.Printf("⚠️  Failed to remove asset %s from search index: %v\n", assetID, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
