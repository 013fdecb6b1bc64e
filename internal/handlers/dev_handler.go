package handlers

import (
	"net/http"
	"time"

	"finpulse/internal/errors"
	"finpulse/internal/models"
	"finpulse/internal/repositories"
	"finpulse/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	maxSeedMonths = 36
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	assetRepo       repositories.AssetRepositoryInterface
	targetRepo      repositories.TargetRepositoryInterface
	generator       services.LedgerGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	assetRepo repositories.AssetRepositoryInterface,
	targetRepo repositories.TargetRepositoryInterface,
) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		assetRepo:       assetRepo,
		targetRepo:      targetRepo,
		generator:       services.NewLedgerGenerator(),
	}
}

// SeedDemoData generates a realistic demo ledger plus asset and target
// snapshots for a user
// @Summary Seed demo data
// @Description Generate demo transactions, assets, and targets for a user. Development environments only.
// @Tags Development
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param months query int false "Months of ledger history to generate" default(12)
// @Success 200 {object} SuccessResponse "Counts of created records"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid user ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dev/users/{userId}/seed [post]
func (h *DevHandler) SeedDemoData(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
	}

	months := getIntParam(c, "months", 12)
	if months < 1 {
		months = 1
	}
	if months > maxSeedMonths {
		months = maxSeedMonths
	}

	anchor := models.MonthOf(time.Now().UTC())

	ledger := h.generator.GenerateLedger(userID, anchor, months)
	if err := h.transactionRepo.CreateBatch(ledger); err != nil {
		return SendSystemError(c, err)
	}

	assets := h.generator.GenerateAssets(userID, 0)
	assetsCreated := 0
	for i := range assets {
		if err := h.assetRepo.Create(&assets[i]); err != nil {
			continue
		}
		assetsCreated++
	}

	targets := h.generator.GenerateTargets(userID, 0)
	targetsCreated := 0
	for i := range targets {
		if err := h.targetRepo.Create(&targets[i]); err != nil {
			continue
		}
		targetsCreated++
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "demo data generated successfully",
		Data: map[string]int{
			"transactions_created": len(ledger),
			"assets_created":       assetsCreated,
			"targets_created":      targetsCreated,
		},
	})
}
