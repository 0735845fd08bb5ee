package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"goldenindex/internal/models"
)

type TaxonomyRepository interface {
	CreateCategory(category *models.Category) error
	FindCategoryByID(id uuid.UUID) (*models.Category, error)
	ListCategories() ([]models.Category, error)
	DeleteCategory(id uuid.UUID) error
	ListTags() ([]models.Tag, error)
	FindOrCreateTags(names []string) ([]models.Tag, error)
}

type taxonomyRepository struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

// CreateCategory implements TaxonomyRepository.
func (r *taxonomyRepository) CreateCategory(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// FindCategoryByID implements TaxonomyRepository.
func (r *taxonomyRepository) FindCategoryByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &category, nil
}

// ListCategories implements TaxonomyRepository.
func (r *taxonomyRepository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// DeleteCategory implements TaxonomyRepository.
func (r *taxonomyRepository) DeleteCategory(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Category{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("category not found")
	}
	return nil
}

// ListTags implements TaxonomyRepository.
func (r *taxonomyRepository) ListTags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// FindOrCreateTags implements TaxonomyRepository.
func (r *taxonomyRepository) FindOrCreateTags(names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		var tag models.Tag
		err := r.db.Where("name = ?", name).
			FirstOrCreate(&tag, models.Tag{ID: uuid.New(), Name: name}).Error
		if err != nil {
			return nil, fmt.Errorf("failed to find or create tag %q: %w", name, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
