package repositories

import (
	"testing"
	"time"

	"finpulse/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TransactionRepositoryTestSuite is the test suite for the ledger repository
type TransactionRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo TransactionRepositoryInterface
}

// SetupTest runs before each test
func (s *TransactionRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&models.Transaction{})
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewTransactionRepository(db)
}

// TearDownTest runs after each test
func (s *TransactionRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// TestTransactionRepositoryTestSuite runs the test suite
func TestTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}

// Helper function to create a test ledger entry
func (s *TransactionRepositoryTestSuite) createTestTransaction(userID uuid.UUID, date time.Time) *models.Transaction {
	return &models.Transaction{
		UserID:          userID,
		TransactionType: models.TransactionTypeExpense,
		Amount:          decimal.NewFromFloat(gofakeit.Float64Range(5, 500)).Round(2),
		Category:        "groceries",
		Description:     gofakeit.Sentence(4),
		TransactionDate: &date,
	}
}

// TestCreate_ValidTransaction tests creating a valid ledger entry
func (s *TransactionRepositoryTestSuite) TestCreate_ValidTransaction() {
	tx := s.createTestTransaction(uuid.New(), time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC))

	err := s.repo.Create(tx)
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, tx.ID)
	assert.False(s.T(), tx.CreatedAt.IsZero())
}

// TestCreate_InvalidType tests that the type invariant is enforced on create
func (s *TransactionRepositoryTestSuite) TestCreate_InvalidType() {
	tx := s.createTestTransaction(uuid.New(), time.Now())
	tx.TransactionType = "transfer"

	err := s.repo.Create(tx)
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, models.ErrInvalidTransactionType)
}

// TestCreateBatch_InsertsAll tests batch creation of ledger entries
func (s *TransactionRepositoryTestSuite) TestCreateBatch_InsertsAll() {
	userID := uuid.New()
	batch := make([]models.Transaction, 0, 5)
	for i := 0; i < 5; i++ {
		date := time.Date(2024, 6, i+1, 10, 0, 0, 0, time.UTC)
		batch = append(batch, *s.createTestTransaction(userID, date))
	}

	err := s.repo.CreateBatch(batch)
	require.NoError(s.T(), err)

	stored, err := s.repo.GetByUserID(userID)
	require.NoError(s.T(), err)
	assert.Len(s.T(), stored, 5)
}

// TestCreateBatch_EmptySliceIsNoop tests batch creation with no entries
func (s *TransactionRepositoryTestSuite) TestCreateBatch_EmptySliceIsNoop() {
	err := s.repo.CreateBatch(nil)
	assert.NoError(s.T(), err)
}

// TestGetByID_Found tests retrieving a ledger entry by ID
func (s *TransactionRepositoryTestSuite) TestGetByID_Found() {
	tx := s.createTestTransaction(uuid.New(), time.Now().UTC())
	require.NoError(s.T(), s.repo.Create(tx))

	retrieved, err := s.repo.GetByID(tx.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), tx.ID, retrieved.ID)
	assert.True(s.T(), tx.Amount.Equal(retrieved.Amount))
}

// TestGetByID_NotFound tests retrieving a missing ledger entry
func (s *TransactionRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	assert.ErrorIs(s.T(), err, ErrTransactionNotFound)
}

// TestGetByUserID_ScopedToUser tests that ledgers are isolated per user
func (s *TransactionRepositoryTestSuite) TestGetByUserID_ScopedToUser() {
	userID := uuid.New()
	otherID := uuid.New()

	require.NoError(s.T(), s.repo.Create(s.createTestTransaction(userID, time.Now().UTC())))
	require.NoError(s.T(), s.repo.Create(s.createTestTransaction(userID, time.Now().UTC())))
	require.NoError(s.T(), s.repo.Create(s.createTestTransaction(otherID, time.Now().UTC())))

	transactions, err := s.repo.GetByUserID(userID)
	require.NoError(s.T(), err)
	assert.Len(s.T(), transactions, 2)
	for _, tx := range transactions {
		assert.Equal(s.T(), userID, tx.UserID)
	}
}

// TestGetByUserIDAndMonth_MatchesOnTransactionDate tests month filtering on
// the explicit transaction date
func (s *TransactionRepositoryTestSuite) TestGetByUserIDAndMonth_MatchesOnTransactionDate() {
	userID := uuid.New()

	inMonth := s.createTestTransaction(userID, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	outOfMonth := s.createTestTransaction(userID, time.Date(2024, 5, 31, 23, 0, 0, 0, time.UTC))

	require.NoError(s.T(), s.repo.Create(inMonth))
	require.NoError(s.T(), s.repo.Create(outOfMonth))

	transactions, err := s.repo.GetByUserIDAndMonth(userID, models.MonthRef{Year: 2024, Month: 6})
	require.NoError(s.T(), err)
	require.Len(s.T(), transactions, 1)
	assert.Equal(s.T(), inMonth.ID, transactions[0].ID)
}

// TestGetByUserIDAndMonth_FallsBackToCreatedAt tests that entries without an
// explicit date are matched on their creation timestamp
func (s *TransactionRepositoryTestSuite) TestGetByUserIDAndMonth_FallsBackToCreatedAt() {
	userID := uuid.New()

	undated := &models.Transaction{
		UserID:          userID,
		TransactionType: models.TransactionTypeIncome,
		Amount:          decimal.NewFromInt(1200),
		CreatedAt:       time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(s.T(), s.repo.Create(undated))

	transactions, err := s.repo.GetByUserIDAndMonth(userID, models.MonthRef{Year: 2024, Month: 6})
	require.NoError(s.T(), err)
	require.Len(s.T(), transactions, 1)
	assert.Equal(s.T(), undated.ID, transactions[0].ID)

	previous, err := s.repo.GetByUserIDAndMonth(userID, models.MonthRef{Year: 2024, Month: 5})
	require.NoError(s.T(), err)
	assert.Empty(s.T(), previous)
}

// TestGetWithFilters_Type tests filtering by transaction type
func (s *TransactionRepositoryTestSuite) TestGetWithFilters_Type() {
	userID := uuid.New()

	expense := s.createTestTransaction(userID, time.Now().UTC())
	income := s.createTestTransaction(userID, time.Now().UTC())
	income.TransactionType = models.TransactionTypeIncome

	require.NoError(s.T(), s.repo.Create(expense))
	require.NoError(s.T(), s.repo.Create(income))

	transactions, total, err := s.repo.GetWithFilters(models.TransactionFilters{
		UserID: userID,
		Type:   models.TransactionTypeIncome,
		Limit:  10,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), total)
	require.Len(s.T(), transactions, 1)
	assert.Equal(s.T(), models.TransactionTypeIncome, transactions[0].TransactionType)
}

// TestGetWithFilters_Pagination tests offset and limit behaviour
func (s *TransactionRepositoryTestSuite) TestGetWithFilters_Pagination() {
	userID := uuid.New()
	for i := 0; i < 7; i++ {
		require.NoError(s.T(), s.repo.Create(s.createTestTransaction(userID, time.Now().UTC())))
	}

	page, total, err := s.repo.GetWithFilters(models.TransactionFilters{
		UserID: userID,
		Offset: 5,
		Limit:  5,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(7), total)
	assert.Len(s.T(), page, 2)
}
