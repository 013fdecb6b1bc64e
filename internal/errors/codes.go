package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidMonth  ErrorCode = "VALIDATION_006"
	ValidationInvalidID     ErrorCode = "VALIDATION_007"
)

// Ledger error codes (LEDGER_*)
const (
	LedgerTransactionNotFound ErrorCode = "LEDGER_001"
	LedgerInvalidAmount       ErrorCode = "LEDGER_002"
	LedgerInvalidType         ErrorCode = "LEDGER_003"
	LedgerDuplicate           ErrorCode = "LEDGER_004"
)

// Asset and target error codes (PORTFOLIO_*)
const (
	PortfolioAssetNotFound     ErrorCode = "PORTFOLIO_001"
	PortfolioTargetNotFound    ErrorCode = "PORTFOLIO_002"
	PortfolioInvalidValue      ErrorCode = "PORTFOLIO_003"
	PortfolioInvalidTargetType ErrorCode = "PORTFOLIO_004"
)

// Analytics error codes (ANALYTICS_*)
const (
	AnalyticsInvalidMonth    ErrorCode = "ANALYTICS_001"
	AnalyticsInvalidWindow   ErrorCode = "ANALYTICS_002"
	AnalyticsSeriesFailed    ErrorCode = "ANALYTICS_003"
	AnalyticsScoreFailed     ErrorCode = "ANALYTICS_004"
	AnalyticsBreakdownFailed ErrorCode = "ANALYTICS_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidMonth:  "Invalid month reference; expected a year and a month in 1..12",
	ValidationInvalidID:     "Invalid identifier format",

	// Ledger errors
	LedgerTransactionNotFound: "Transaction not found",
	LedgerInvalidAmount:       "Invalid transaction amount",
	LedgerInvalidType:         "Invalid transaction type",
	LedgerDuplicate:           "Transaction with this idempotency key already exists",

	// Portfolio errors
	PortfolioAssetNotFound:     "Asset not found",
	PortfolioTargetNotFound:    "Target not found",
	PortfolioInvalidValue:      "Invalid asset or target value",
	PortfolioInvalidTargetType: "Invalid target type",

	// Analytics errors
	AnalyticsInvalidMonth:    "Requested month is not a valid calendar month",
	AnalyticsInvalidWindow:   "Requested window size is out of the supported range",
	AnalyticsSeriesFailed:    "Historical series could not be generated",
	AnalyticsScoreFailed:     "Health score could not be evaluated",
	AnalyticsBreakdownFailed: "Category breakdown could not be generated",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
