package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionFilters contains filtering options for ledger queries
type TransactionFilters struct {
	UserID    uuid.UUID
	Type      string
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Offset    int
	Limit     int
}
