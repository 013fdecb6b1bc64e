package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TargetTypeSavings = "savings"
	TargetTypeBudget  = "budget"
)

var ErrInvalidTargetType = errors.New("invalid target type")

var oneHundred = decimal.NewFromInt(100)

// Target is either a savings goal or a spending-limit budget. CurrentAmount
// tracks how much has been put toward (or spent against) TargetAmount.
type Target struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string          `gorm:"type:varchar(255);not null" json:"title"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_amount"`
	Category      string          `gorm:"type:varchar(100)" json:"category,omitempty"`
	TargetType    string          `gorm:"type:varchar(20);not null;default:'savings'" json:"target_type"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Target
func (t *Target) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.TargetType == "" {
		t.TargetType = TargetTypeSavings
	}

	if !IsValidTargetType(t.TargetType) {
		return ErrInvalidTargetType
	}

	return nil
}

// ProgressPercentage returns how far along the target is, clamped to [0, 100].
// A target amount of zero or less always reports zero progress.
func (t *Target) ProgressPercentage() decimal.Decimal {
	if t.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	progress := t.CurrentAmount.Div(t.TargetAmount).Mul(oneHundred)
	if progress.IsNegative() {
		return decimal.Zero
	}
	if progress.GreaterThan(oneHundred) {
		return oneHundred
	}
	return progress
}

// IsValidTargetType checks if a target type is valid
func IsValidTargetType(targetType string) bool {
	return targetType == TargetTypeSavings || targetType == TargetTypeBudget
}
