package repositories

import (
	"fmt"

	"finpulse/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// assetRepository implements AssetRepositoryInterface
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *gorm.DB) AssetRepositoryInterface {
	return &assetRepository{
		db: db,
	}
}

// Create creates a new asset snapshot
func (r *assetRepository) Create(asset *models.Asset) error {
	if err := r.db.Create(asset).Error; err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

// GetByUserID retrieves all assets for a user
func (r *assetRepository) GetByUserID(userID uuid.UUID) ([]models.Asset, error) {
	var assets []models.Asset
	if err := r.db.Where("user_id = ?", userID).
		Order("name ASC").
		Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("failed to get assets: %w", err)
	}
	return assets, nil
}
