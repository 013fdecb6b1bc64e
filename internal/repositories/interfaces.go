package repositories

import (
	"finpulse/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines read access to the transaction ledger.
// The analytics engine only ever reads; Create/CreateBatch exist for seeding
// and the demo data generator.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByUserID(userID uuid.UUID) ([]models.Transaction, error)
	GetByUserIDAndMonth(userID uuid.UUID, month models.MonthRef) ([]models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
}

// AssetRepositoryInterface defines read access to asset snapshots
type AssetRepositoryInterface interface {
	Create(asset *models.Asset) error
	GetByUserID(userID uuid.UUID) ([]models.Asset, error)
}

// TargetRepositoryInterface defines read access to savings goals and budgets
type TargetRepositoryInterface interface {
	Create(target *models.Target) error
	GetByUserID(userID uuid.UUID) ([]models.Target, error)
}
