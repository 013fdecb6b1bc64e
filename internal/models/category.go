package models

// Canonical display names for expense categories. Raw transaction labels are
// normalized to one of these (or title-cased passthrough) before any grouping
// or comparison.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryHousing       = "Housing"
	CategoryUtilities     = "Utilities"
	CategoryEntertainment = "Entertainment"
	CategoryShopping      = "Shopping"
	CategoryHealth        = "Health"
	CategoryEducation     = "Education"
	CategoryTravel        = "Travel"
	CategorySubscriptions = "Subscriptions"
	CategorySalary        = "Salary"
	CategoryOther         = "Other"
)

// CategoryPalette is the fixed cyclic palette for breakdown charts. Bucket
// rank r maps to CategoryPalette[r % len(CategoryPalette)].
var CategoryPalette = []string{
	"#4E79A7",
	"#F28E2B",
	"#E15759",
	"#76B7B2",
	"#59A14F",
	"#EDC948",
	"#B07AA1",
	"#9C755F",
}

// ColorForRank returns the palette color for a bucket rank
func ColorForRank(rank int) string {
	if rank < 0 {
		rank = 0
	}
	return CategoryPalette[rank%len(CategoryPalette)]
}

// KnownCategories returns all canonical category display names
func KnownCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryHousing,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryShopping,
		CategoryHealth,
		CategoryEducation,
		CategoryTravel,
		CategorySubscriptions,
		CategorySalary,
		CategoryOther,
	}
}
