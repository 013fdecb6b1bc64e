package services

import (
	"context"
	"fmt"
	"log/slog"

	"finpulse/internal/models"
	"finpulse/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Net worth is projected by overlaying the current asset and target snapshot
// on the historical cash series: the same snapshot value is applied to every
// point. This is a documented simplification, not a historical asset
// reconstruction; only the cash component varies across the series.

type netWorthService struct {
	assetRepo  repositories.AssetRepositoryInterface
	targetRepo repositories.TargetRepositoryInterface
	history    HistoryServiceInterface
}

// NewNetWorthService creates a new net worth projector
func NewNetWorthService(
	assetRepo repositories.AssetRepositoryInterface,
	targetRepo repositories.TargetRepositoryInterface,
	history HistoryServiceInterface,
) NetWorthServiceInterface {
	return &netWorthService{
		assetRepo:  assetRepo,
		targetRepo: targetRepo,
		history:    history,
	}
}

func (s *netWorthService) GetNetWorthSeries(ctx context.Context, userID uuid.UUID, anchor models.MonthRef, window int) (models.NetWorthSeries, error) {
	series, err := s.history.GetMonthlySeries(ctx, userID, anchor, window)
	if err != nil {
		return nil, err
	}

	totalAssets, err := s.currentTotalAssets(userID)
	if err != nil {
		return nil, err
	}

	points := make(models.NetWorthSeries, 0, len(series))
	cumulativeCash := decimal.Zero

	for _, point := range series {
		cumulativeCash = cumulativeCash.Add(point.Balance)
		points = append(points, models.NetWorthPoint{
			Month:         point.Month,
			NetWorth:      totalAssets.Add(cumulativeCash),
			Assets:        totalAssets,
			CashAvailable: cumulativeCash,
		})
	}

	slog.Info("net worth series generated",
		"user_id", userID,
		"anchor", anchor.String(),
		"point_count", len(points),
		"total_assets", totalAssets)

	return points, nil
}

// currentTotalAssets values assets at their snapshot value and counts target
// balances (savings already set aside) as near-cash
func (s *netWorthService) currentTotalAssets(userID uuid.UUID) (decimal.Decimal, error) {
	assets, err := s.assetRepo.GetByUserID(userID)
	if err != nil {
		slog.Error("failed to fetch assets for net worth",
			"user_id", userID,
			"error", err)
		return decimal.Zero, fmt.Errorf("failed to fetch assets: %w", err)
	}

	targets, err := s.targetRepo.GetByUserID(userID)
	if err != nil {
		slog.Error("failed to fetch targets for net worth",
			"user_id", userID,
			"error", err)
		return decimal.Zero, fmt.Errorf("failed to fetch targets: %w", err)
	}

	total := decimal.Zero
	for i := range assets {
		total = total.Add(assets[i].CurrentValue)
	}
	for i := range targets {
		total = total.Add(targets[i].CurrentAmount)
	}

	return total, nil
}
