package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AssetTypeCash       = "cash"
	AssetTypeSavings    = "savings"
	AssetTypeInvestment = "investment"
	AssetTypeProperty   = "property"
	AssetTypeOther      = "other"
)

var ErrNegativeAssetValue = errors.New("asset value must not be negative")

// Asset is a point-in-time valuation of something the user owns. The engine
// only ever reads the current value; no valuation history is kept.
type Asset struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	AssetType    string          `gorm:"type:varchar(50);not null" json:"asset_type"`
	CurrentValue decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"current_value"`
	Currency     string          `gorm:"type:varchar(3);default:'EUR'" json:"currency"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Asset
func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Currency == "" {
		a.Currency = "EUR"
	}

	if a.CurrentValue.IsNegative() {
		return ErrNegativeAssetValue
	}

	return nil
}
