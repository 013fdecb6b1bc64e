package database

import (
	"fmt"
	"testing"
	"time"

	"finpulse/internal/config"
	"finpulse/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestTransaction(t *testing.T, db *DB, userID uuid.UUID, txType string, amount int64, category string, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:          userID,
		TransactionType: txType,
		Amount:          decimal.NewFromInt(amount),
		Category:        category,
		TransactionDate: &date,
	}

	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return tx
}

func CreateTestAsset(t *testing.T, db *DB, userID uuid.UUID, name string, value int64) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		UserID:       userID,
		Name:         name,
		AssetType:    models.AssetTypeSavings,
		CurrentValue: decimal.NewFromInt(value),
		Currency:     "EUR",
	}

	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}

	return asset
}

func CreateTestTarget(t *testing.T, db *DB, userID uuid.UUID, title string, target, current int64) *models.Target {
	t.Helper()

	tgt := &models.Target{
		UserID:        userID,
		Title:         title,
		TargetType:    models.TargetTypeSavings,
		TargetAmount:  decimal.NewFromInt(target),
		CurrentAmount: decimal.NewFromInt(current),
	}

	if err := db.Create(tgt).Error; err != nil {
		t.Fatalf("failed to create test target: %v", err)
	}

	return tgt
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"assets",
		"targets",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
