package repositories

import (
	"fmt"

	"finpulse/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// targetRepository implements TargetRepositoryInterface
type targetRepository struct {
	db *gorm.DB
}

// NewTargetRepository creates a new target repository
func NewTargetRepository(db *gorm.DB) TargetRepositoryInterface {
	return &targetRepository{
		db: db,
	}
}

// Create creates a new savings goal or budget
func (r *targetRepository) Create(target *models.Target) error {
	if err := r.db.Create(target).Error; err != nil {
		return fmt.Errorf("failed to create target: %w", err)
	}
	return nil
}

// GetByUserID retrieves all targets for a user, both savings goals and budgets
func (r *targetRepository) GetByUserID(userID uuid.UUID) ([]models.Target, error) {
	var targets []models.Target
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&targets).Error; err != nil {
		return nil, fmt.Errorf("failed to get targets: %w", err)
	}
	return targets, nil
}
