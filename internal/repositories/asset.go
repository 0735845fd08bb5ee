package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"goldenindex/internal/models"
)

type ListAssetsFilter struct {
	CategoryID *uuid.UUID
	Tag        string
	Status     string
	Limit      int
	Offset     int
}

type AssetRepository interface {
	Create(asset *models.Asset) error
	FindByID(id uuid.UUID) (*models.Asset, error)
	FindBySlug(slug string) (*models.Asset, error)
	List(filter ListAssetsFilter) ([]models.Asset, int64, error)
	Update(asset *models.Asset) error
	Delete(id uuid.UUID) error
	ReplaceTags(asset *models.Asset, tags []models.Tag) error
	UpdateIndexStatus(id uuid.UUID, status models.IndexStatus, indexErr *string) error
	FindPendingIndex(limit int) ([]models.Asset, error)
}

type assetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(asset *models.Asset) error {
	if err := r.db.Create(asset).Error; err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

func (r *assetRepository) FindByID(id uuid.UUID) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.
		Preload("Category").
		Preload("Tags").
		Where("id = ?", id).
		First(&asset).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("asset not found")
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}
	return &asset, nil
}

func (r *assetRepository) FindBySlug(slug string) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.
		Preload("Category").
		Preload("Tags").
		Where("slug = ?", slug).
		First(&asset).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("asset not found")
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}
	return &asset, nil
}

func (r *assetRepository) List(filter ListAssetsFilter) ([]models.Asset, int64, error) {
	query := r.db.Model(&models.Asset{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Tag != "" {
		query = query.
			Joins("JOIN asset_tags ON asset_tags.asset_id = assets.id").
			Joins("JOIN tags ON tags.id = asset_tags.tag_id").
			Where("tags.name = ?", filter.Tag)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}

	var assets []models.Asset
	err := query.
		Preload("Category").
		Preload("Tags").
		Order("name ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&assets).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assets: %w", err)
	}

	return assets, total, nil
}

func (r *assetRepository) Update(asset *models.Asset) error {
	asset.UpdatedAt = time.Now()
	if err := r.db.Save(asset).Error; err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	return nil
}

func (r *assetRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Asset{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("asset not found")
	}
	return nil
}

func (r *assetRepository) ReplaceTags(asset *models.Asset, tags []models.Tag) error {
	if err := r.db.Model(asset).Association("Tags").Replace(tags); err != nil {
		return fmt.Errorf("failed to replace asset tags: %w", err)
	}
	return nil
}

func (r *assetRepository) UpdateIndexStatus(id uuid.UUID, status models.IndexStatus, indexErr *string) error {
	result := r.db.Model(&models.Asset{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"index_status": status,
			"index_error":  indexErr,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update index status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("asset not found")
	}
	return nil
}

func (r *assetRepository) FindPendingIndex(limit int) ([]models.Asset, error) {
	var assets []models.Asset
	err := r.db.
		Where("index_status = ?", models.IndexPending).
		Order("updated_at ASC").
		Limit(limit).
		Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find assets pending indexing: %w", err)
	}
	return assets, nil
}
