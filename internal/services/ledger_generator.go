package services

import (
	"fmt"
	"math/rand"
	"time"

	"finpulse/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledgerGenerator produces plausible demo data: a monthly salary, a spread of
// category expenses per month, plus asset and target snapshots. Dev seeding
// only; nothing here is used by the calculators.

type expenseProfile struct {
	category string
	min      float64
	max      float64
	perMonth int
}

type ledgerGenerator struct {
	rng      *rand.Rand
	profiles []expenseProfile
}

const (
	salaryDay    = 28
	minSalary    = 2200
	maxSalary    = 3400
	demoCurrency = "EUR"
)

// NewLedgerGenerator creates a new demo ledger generator
func NewLedgerGenerator() LedgerGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &ledgerGenerator{
		rng: rand.New(source),
		profiles: []expenseProfile{
			{category: "rent", min: 700, max: 700, perMonth: 1},
			{category: "groceries", min: 30, max: 120, perMonth: 6},
			{category: "restaurants", min: 15, max: 80, perMonth: 3},
			{category: "transport", min: 2, max: 60, perMonth: 5},
			{category: "utilities", min: 40, max: 180, perMonth: 2},
			{category: "entertainment", min: 10, max: 90, perMonth: 2},
			{category: "shopping", min: 20, max: 250, perMonth: 2},
			{category: "subscriptions", min: 8, max: 25, perMonth: 2},
		},
	}
}

// GenerateLedger produces months of history ending at the anchor month
func (g *ledgerGenerator) GenerateLedger(userID uuid.UUID, anchor models.MonthRef, months int) []models.Transaction {
	if months <= 0 {
		months = DefaultHistoryWindow
	}

	var transactions []models.Transaction

	for i := months - 1; i >= 0; i-- {
		month := anchor.AddMonths(-i)

		salary := g.randomAmount(minSalary, maxSalary)
		salaryDate := time.Date(month.Year, time.Month(month.Month), salaryDay, 9, 0, 0, 0, time.UTC)
		transactions = append(transactions, models.Transaction{
			UserID:          userID,
			TransactionType: models.TransactionTypeIncome,
			Amount:          salary,
			Category:        "salary",
			Description:     fmt.Sprintf("Salary %s", month),
			TransactionDate: &salaryDate,
		})

		for _, profile := range g.profiles {
			count := g.rng.Intn(profile.perMonth) + 1
			for n := 0; n < count; n++ {
				date := g.randomDayInMonth(month)
				transactions = append(transactions, models.Transaction{
					UserID:          userID,
					TransactionType: models.TransactionTypeExpense,
					Amount:          g.randomAmount(profile.min, profile.max),
					Category:        profile.category,
					Description:     fmt.Sprintf("%s %s", profile.category, month),
					TransactionDate: &date,
				})
			}
		}
	}

	return transactions
}

// GenerateAssets produces asset snapshots with plausible valuations
func (g *ledgerGenerator) GenerateAssets(userID uuid.UUID, count int) []models.Asset {
	names := []struct {
		name      string
		assetType string
		min       float64
		max       float64
	}{
		{"Checking account", models.AssetTypeCash, 500, 4000},
		{"Savings account", models.AssetTypeSavings, 1000, 20000},
		{"Index fund", models.AssetTypeInvestment, 2000, 30000},
		{"Car", models.AssetTypeProperty, 3000, 15000},
	}

	if count <= 0 || count > len(names) {
		count = len(names)
	}

	assets := make([]models.Asset, 0, count)
	for i := 0; i < count; i++ {
		assets = append(assets, models.Asset{
			UserID:       userID,
			Name:         names[i].name,
			AssetType:    names[i].assetType,
			CurrentValue: g.randomAmount(names[i].min, names[i].max),
			Currency:     demoCurrency,
		})
	}
	return assets
}

// GenerateTargets produces a mix of savings goals and budgets
func (g *ledgerGenerator) GenerateTargets(userID uuid.UUID, count int) []models.Target {
	seeds := []struct {
		title      string
		targetType string
		category   string
		target     float64
	}{
		{"Emergency fund", models.TargetTypeSavings, "", 10000},
		{"Summer holiday", models.TargetTypeSavings, "travel", 1500},
		{"Grocery budget", models.TargetTypeBudget, "groceries", 450},
		{"Eating out budget", models.TargetTypeBudget, "restaurants", 150},
	}

	if count <= 0 || count > len(seeds) {
		count = len(seeds)
	}

	targets := make([]models.Target, 0, count)
	for i := 0; i < count; i++ {
		targetAmount := decimal.NewFromFloat(seeds[i].target)
		targets = append(targets, models.Target{
			UserID:        userID,
			Title:         seeds[i].title,
			TargetAmount:  targetAmount,
			CurrentAmount: g.randomAmount(0, seeds[i].target),
			Category:      seeds[i].category,
			TargetType:    seeds[i].targetType,
		})
	}
	return targets
}

func (g *ledgerGenerator) randomAmount(min, max float64) decimal.Decimal {
	if max <= min {
		return decimal.NewFromFloat(min).Round(2)
	}
	value := min + g.rng.Float64()*(max-min)
	return decimal.NewFromFloat(value).Round(2)
}

func (g *ledgerGenerator) randomDayInMonth(month models.MonthRef) time.Time {
	start, end := month.Bounds()
	days := int(end.Sub(start).Hours() / 24)
	day := g.rng.Intn(days) + 1
	hour := g.rng.Intn(14) + 8
	return time.Date(month.Year, time.Month(month.Month), day, hour, 0, 0, 0, time.UTC)
}
