package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"goldenindex/internal/models"
	"goldenindex/internal/repositories"
)

type TaxonomyHandler struct {
	taxonomyRepo repositories.TaxonomyRepository
}

func NewTaxonomyHandler(taxonomyRepo repositories.TaxonomyRepository) *TaxonomyHandler {
	return &TaxonomyHandler{
		taxonomyRepo: taxonomyRepo,
	}
}

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description"`
}

// HandleCreateCategory handles POST /categories
func (h *TaxonomyHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req createCategoryRequest

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

	category := &models.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.taxonomyRepo.CreateCategory(category); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleListCategories handles GET /categories
func (h *TaxonomyHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.taxonomyRepo.ListCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list categories",
		})
	}

	return c.JSON(fiber.Map{
		"categories": categories,
	})
}

// HandleDeleteCategory handles DELETE /categories/:id
func (h *TaxonomyHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category ID format",
		})
	}

	if err := h.taxonomyRepo.DeleteCategory(categoryID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListTags handles GET /tags
func (h *TaxonomyHandler) HandleListTags(c *fiber.Ctx) error {
	tags, err := h.taxonomyRepo.ListTags()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list tags",
		})
	}

	return c.JSON(fiber.Map{
		"tags": tags,
	})
}
