package services

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"finpulse/internal/models"
	"finpulse/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type categoryService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	aliases         map[string]string
	titleCaser      cases.Caser
}

// NewCategoryService creates a new category analytics service
func NewCategoryService(transactionRepo repositories.TransactionRepositoryInterface) CategoryAnalyticsServiceInterface {
	return &categoryService{
		transactionRepo: transactionRepo,
		aliases:         initCategoryAliases(),
		titleCaser:      cases.Title(language.English),
	}
}

// CanonicalCategory normalizes a raw category label: known aliases map to
// their canonical display name (case-insensitive), everything else passes
// through title-cased. Empty labels land in Other.
func (s *categoryService) CanonicalCategory(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return models.CategoryOther
	}

	if canonical, ok := s.aliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}

	return s.titleCaser.String(strings.ToLower(trimmed))
}

func (s *categoryService) BuildBreakdown(expenses []models.Transaction) *models.CategoryAnalyticsResult {
	sums := make(map[string]decimal.Decimal)
	total := decimal.Zero

	for i := range expenses {
		txn := &expenses[i]
		if !txn.IsExpense() {
			continue
		}

		canonical := s.CanonicalCategory(txn.Category)
		sums[canonical] = sums[canonical].Add(txn.Amount)
		total = total.Add(txn.Amount)
	}

	buckets := make([]models.CategoryBucket, 0, len(sums))
	for category, amount := range sums {
		bucket := models.CategoryBucket{
			Category: category,
			Amount:   amount,
		}
		if total.IsPositive() {
			bucket.Percentage = amount.Div(total).Mul(oneHundred)
		} else {
			bucket.Percentage = decimal.Zero
		}
		buckets = append(buckets, bucket)
	}

	// Descending by amount; equal amounts ordered by canonical name so the
	// ranking is stable across runs.
	sort.Slice(buckets, func(i, j int) bool {
		if !buckets[i].Amount.Equal(buckets[j].Amount) {
			return buckets[i].Amount.GreaterThan(buckets[j].Amount)
		}
		return buckets[i].Category < buckets[j].Category
	})

	for i := range buckets {
		buckets[i].Rank = i
		buckets[i].Color = models.ColorForRank(i)
	}

	return &models.CategoryAnalyticsResult{
		Buckets: buckets,
		Total:   total,
		Count:   len(buckets),
	}
}

func (s *categoryService) BreakdownForMonth(userID uuid.UUID, month models.MonthRef) (*models.CategoryAnalyticsResult, error) {
	if !month.IsValid() {
		return nil, ErrInvalidMonth
	}

	transactions, err := s.transactionRepo.GetByUserIDAndMonth(userID, month)
	if err != nil {
		slog.Error("failed to fetch expenses for category breakdown",
			"user_id", userID,
			"month", month.String(),
			"error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	result := s.BuildBreakdown(transactions)

	slog.Info("category breakdown generated",
		"user_id", userID,
		"month", month.String(),
		"bucket_count", result.Count)

	return result, nil
}

func (s *categoryService) CompareBreakdowns(current, previous *models.CategoryAnalyticsResult) models.CategoryTrendMap {
	currentAmounts := bucketAmounts(current)
	previousAmounts := bucketAmounts(previous)

	trends := make(models.CategoryTrendMap, len(currentAmounts)+len(previousAmounts))

	for category := range currentAmounts {
		trends[category] = buildTrend(category, currentAmounts[category], previousAmounts[category])
	}
	for category := range previousAmounts {
		if _, seen := trends[category]; !seen {
			trends[category] = buildTrend(category, decimal.Zero, previousAmounts[category])
		}
	}

	return trends
}

func (s *categoryService) TrendsForMonth(userID uuid.UUID, month models.MonthRef) (models.CategoryTrendMap, error) {
	current, err := s.BreakdownForMonth(userID, month)
	if err != nil {
		return nil, err
	}

	previous, err := s.BreakdownForMonth(userID, month.AddMonths(-1))
	if err != nil {
		return nil, err
	}

	return s.CompareBreakdowns(current, previous), nil
}

func bucketAmounts(result *models.CategoryAnalyticsResult) map[string]decimal.Decimal {
	if result == nil {
		return nil
	}

	amounts := make(map[string]decimal.Decimal, len(result.Buckets))
	for _, bucket := range result.Buckets {
		amounts[bucket.Category] = bucket.Amount
	}
	return amounts
}

func buildTrend(category string, currentAmt, prevAmt decimal.Decimal) models.CategoryTrend {
	delta := currentAmt.Sub(prevAmt)

	var percentChange decimal.Decimal
	switch {
	case prevAmt.IsPositive():
		percentChange = delta.Div(prevAmt).Mul(oneHundred)
	case currentAmt.IsPositive():
		percentChange = oneHundred
	default:
		percentChange = decimal.Zero
	}

	return models.CategoryTrend{
		Category:       category,
		CurrentAmount:  currentAmt,
		PreviousAmount: prevAmt,
		Delta:          delta,
		PercentChange:  percentChange,
		// Numeric sign only. A rising expense still reads as positive here;
		// presentation decides what rising spending means.
		IsPositive: !delta.IsNegative(),
	}
}

// initCategoryAliases builds the canonicalization table mapping known raw
// labels (lowercase) to canonical display names
func initCategoryAliases() map[string]string {
	return map[string]string{
		"food":           models.CategoryFood,
		"foods":          models.CategoryFood,
		"groceries":      models.CategoryFood,
		"grocery":        models.CategoryFood,
		"dining":         models.CategoryFood,
		"restaurant":     models.CategoryFood,
		"restaurants":    models.CategoryFood,
		"eating out":     models.CategoryFood,
		"supermarket":    models.CategoryFood,
		"transport":      models.CategoryTransport,
		"transportation": models.CategoryTransport,
		"car":            models.CategoryTransport,
		"gas":            models.CategoryTransport,
		"fuel":           models.CategoryTransport,
		"petrol":         models.CategoryTransport,
		"bus":            models.CategoryTransport,
		"train":          models.CategoryTransport,
		"taxi":           models.CategoryTransport,
		"uber":           models.CategoryTransport,
		"parking":        models.CategoryTransport,
		"housing":        models.CategoryHousing,
		"rent":           models.CategoryHousing,
		"mortgage":       models.CategoryHousing,
		"home":           models.CategoryHousing,
		"utilities":      models.CategoryUtilities,
		"utility":        models.CategoryUtilities,
		"electricity":    models.CategoryUtilities,
		"power":          models.CategoryUtilities,
		"water":          models.CategoryUtilities,
		"internet":       models.CategoryUtilities,
		"phone":          models.CategoryUtilities,
		"entertainment":  models.CategoryEntertainment,
		"fun":            models.CategoryEntertainment,
		"movies":         models.CategoryEntertainment,
		"cinema":         models.CategoryEntertainment,
		"games":          models.CategoryEntertainment,
		"shopping":       models.CategoryShopping,
		"clothes":        models.CategoryShopping,
		"clothing":       models.CategoryShopping,
		"health":         models.CategoryHealth,
		"healthcare":     models.CategoryHealth,
		"medical":        models.CategoryHealth,
		"pharmacy":       models.CategoryHealth,
		"doctor":         models.CategoryHealth,
		"fitness":        models.CategoryHealth,
		"gym":            models.CategoryHealth,
		"education":      models.CategoryEducation,
		"school":         models.CategoryEducation,
		"tuition":        models.CategoryEducation,
		"books":          models.CategoryEducation,
		"courses":        models.CategoryEducation,
		"travel":         models.CategoryTravel,
		"vacation":       models.CategoryTravel,
		"holiday":        models.CategoryTravel,
		"flights":        models.CategoryTravel,
		"hotel":          models.CategoryTravel,
		"subscription":   models.CategorySubscriptions,
		"subscriptions":  models.CategorySubscriptions,
		"streaming":      models.CategorySubscriptions,
		"netflix":        models.CategorySubscriptions,
		"spotify":        models.CategorySubscriptions,
		"salary":         models.CategorySalary,
		"wages":          models.CategorySalary,
		"paycheck":       models.CategorySalary,
		"income":         models.CategorySalary,
		"other":          models.CategoryOther,
		"misc":           models.CategoryOther,
		"miscellaneous":  models.CategoryOther,
	}
}
