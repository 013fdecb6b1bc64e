package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrNegativeAmount         = errors.New("transaction amount must not be negative")
)

// Transaction is a single dated ledger entry. The sign of the movement is
// carried by TransactionType, never by the sign of Amount.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	TransactionType string          `gorm:"type:varchar(20);not null" json:"transaction_type"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category        string          `gorm:"type:varchar(100)" json:"category,omitempty"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	TransactionDate *time.Time      `gorm:"index" json:"transaction_date,omitempty"`
	CreatedAt       time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate checks transaction invariants
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	return nil
}

// EffectiveDate returns the date that decides which month the transaction
// belongs to: the explicit transaction date when present, otherwise the
// record creation timestamp.
func (t *Transaction) EffectiveDate() time.Time {
	if t.TransactionDate != nil {
		return *t.TransactionDate
	}
	return t.CreatedAt
}

// InMonth reports whether the transaction's effective date falls inside the
// given calendar month.
func (t *Transaction) InMonth(month MonthRef) bool {
	effective := t.EffectiveDate()
	return effective.Year() == month.Year && int(effective.Month()) == month.Month
}

// IsIncome reports whether the transaction is an income entry
func (t *Transaction) IsIncome() bool {
	return t.TransactionType == TransactionTypeIncome
}

// IsExpense reports whether the transaction is an expense entry
func (t *Transaction) IsExpense() bool {
	return t.TransactionType == TransactionTypeExpense
}

// IsValidTransactionType checks if a transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	return transactionType == TransactionTypeIncome || transactionType == TransactionTypeExpense
}
