package services

import (
	"context"
	"errors"
	"testing"

	"finpulse/internal/models"
	"finpulse/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type NetWorthServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
	mockAssetRepo       *repository_mocks.MockAssetRepositoryInterface
	mockTargetRepo      *repository_mocks.MockTargetRepositoryInterface
	service             NetWorthServiceInterface
}

func (s *NetWorthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.mockAssetRepo = repository_mocks.NewMockAssetRepositoryInterface(s.ctrl)
	s.mockTargetRepo = repository_mocks.NewMockTargetRepositoryInterface(s.ctrl)

	analytics := NewAnalyticsService(s.mockTransactionRepo)
	history := NewHistoryService(s.mockTransactionRepo, analytics, NewNoopMetrics())
	s.service = NewNetWorthService(s.mockAssetRepo, s.mockTargetRepo, history)
}

func (s *NetWorthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestNetWorthServiceSuite(t *testing.T) {
	suite.Run(t, new(NetWorthServiceTestSuite))
}

func (s *NetWorthServiceTestSuite) TestGetNetWorthSeries_CumulatesCashOverFlatAssets() {
	userID := uuid.New()
	anchor := models.MonthRef{Year: 2024, Month: 3}

	ledger := monthlyLedger(userID, map[models.MonthRef][2]int64{
		{Year: 2024, Month: 1}: {3000, 2000}, // +1000
		{Year: 2024, Month: 2}: {3000, 3500}, // -500
		{Year: 2024, Month: 3}: {3000, 1000}, // +2000
	})

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(ledger, nil)
	s.mockAssetRepo.EXPECT().GetByUserID(userID).Return([]models.Asset{
		{UserID: userID, CurrentValue: decimal.NewFromInt(10000)},
		{UserID: userID, CurrentValue: decimal.NewFromInt(5000)},
	}, nil)
	s.mockTargetRepo.EXPECT().GetByUserID(userID).Return([]models.Target{
		{UserID: userID, CurrentAmount: decimal.NewFromInt(2000)},
	}, nil)

	series, err := s.service.GetNetWorthSeries(context.Background(), userID, anchor, 3)

	s.NoError(err)
	s.Require().Len(series, 3)

	assets := decimal.NewFromInt(17000)

	s.True(series[0].Assets.Equal(assets), "asset component stays flat")
	s.True(series[1].Assets.Equal(assets))
	s.True(series[2].Assets.Equal(assets))

	s.True(series[0].CashAvailable.Equal(decimal.NewFromInt(1000)))
	s.True(series[1].CashAvailable.Equal(decimal.NewFromInt(500)))
	s.True(series[2].CashAvailable.Equal(decimal.NewFromInt(2500)))

	s.True(series[0].NetWorth.Equal(decimal.NewFromInt(18000)))
	s.True(series[1].NetWorth.Equal(decimal.NewFromInt(17500)))
	s.True(series[2].NetWorth.Equal(decimal.NewFromInt(19500)))

	// consecutive net worth points differ by exactly that month's balance
	for i := 1; i < len(series); i++ {
		step := series[i].NetWorth.Sub(series[i-1].NetWorth)
		s.True(step.Equal(series[i].CashAvailable.Sub(series[i-1].CashAvailable)))
	}
}

func (s *NetWorthServiceTestSuite) TestGetNetWorthSeries_NoAssetsIsPureCash() {
	userID := uuid.New()
	anchor := models.MonthRef{Year: 2024, Month: 2}

	ledger := monthlyLedger(userID, map[models.MonthRef][2]int64{
		{Year: 2024, Month: 1}: {1000, 400},
		{Year: 2024, Month: 2}: {1000, 600},
	})

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(ledger, nil)
	s.mockAssetRepo.EXPECT().GetByUserID(userID).Return([]models.Asset{}, nil)
	s.mockTargetRepo.EXPECT().GetByUserID(userID).Return([]models.Target{}, nil)

	series, err := s.service.GetNetWorthSeries(context.Background(), userID, anchor, 2)

	s.NoError(err)
	s.Require().Len(series, 2)
	s.True(series[0].Assets.IsZero())
	s.True(series[0].NetWorth.Equal(decimal.NewFromInt(600)))
	s.True(series[1].NetWorth.Equal(decimal.NewFromInt(1000)))
}

func (s *NetWorthServiceTestSuite) TestGetNetWorthSeries_AssetFetchError() {
	userID := uuid.New()

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return([]models.Transaction{}, nil)
	s.mockAssetRepo.EXPECT().GetByUserID(userID).Return(nil, errors.New("connection reset"))

	series, err := s.service.GetNetWorthSeries(context.Background(), userID, models.MonthRef{Year: 2024, Month: 2}, 2)

	s.Error(err)
	s.Nil(series)
}

func (s *NetWorthServiceTestSuite) TestGetNetWorthSeries_HistoryError() {
	userID := uuid.New()

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(nil, errors.New("timeout"))

	series, err := s.service.GetNetWorthSeries(context.Background(), userID, models.MonthRef{Year: 2024, Month: 2}, 2)

	s.Error(err)
	s.Nil(series)
}
