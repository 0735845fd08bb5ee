package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"goldenindex/internal/models"
)

type DocumentRepository interface {
	Create(document *models.AssetDocument) error
	FindByID(id uuid.UUID) (*models.AssetDocument, error)
	FindByAsset(assetID uuid.UUID) ([]models.AssetDocument, error)
	Delete(id uuid.UUID) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// Create implements DocumentRepository.
func (d *documentRepository) Create(document *models.AssetDocument) error {
	if err := d.db.Create(document).Error; err != nil {
		return fmt.Errorf("failed to create asset document: %w", err)
	}
	return nil
}

// FindByID implements DocumentRepository.
func (d *documentRepository) FindByID(id uuid.UUID) (*models.AssetDocument, error) {
	var doc models.AssetDocument
	if err := d.db.Where("id = ?", id).First(&doc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("asset document not found")
		}
		return nil, fmt.Errorf("failed to find asset document: %w", err)
	}
	return &doc, nil
}

// FindByAsset implements DocumentRepository.
func (d *documentRepository) FindByAsset(assetID uuid.UUID) ([]models.AssetDocument, error) {
	var docs []models.AssetDocument
	err := d.db.
		Where("asset_id = ?", assetID).
		Order("created_at ASC").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find asset documents: %w", err)
	}
	return docs, nil
}

// Delete implements DocumentRepository.
func (d *documentRepository) Delete(id uuid.UUID) error {
	result := d.db.Where("id = ?", id).Delete(&models.AssetDocument{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete asset document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("asset document not found")
	}
	return nil
}
