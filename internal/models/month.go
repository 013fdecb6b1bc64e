package models

import (
	"fmt"
	"time"
)

// MonthRef identifies one calendar month.
type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// MonthOf returns the calendar month a timestamp falls in.
func MonthOf(t time.Time) MonthRef {
	return MonthRef{Year: t.Year(), Month: int(t.Month())}
}

// AddMonths returns the month n months after m (n may be negative).
func (m MonthRef) AddMonths(n int) MonthRef {
	t := time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return MonthOf(t)
}

// Before reports whether m is chronologically before other.
func (m MonthRef) Before(other MonthRef) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// Bounds returns the inclusive start and exclusive end of the month in UTC.
func (m MonthRef) Bounds() (time.Time, time.Time) {
	start := time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// IsValid reports whether the month number is in range
func (m MonthRef) IsValid() bool {
	return m.Month >= 1 && m.Month <= 12 && m.Year > 0
}

func (m MonthRef) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}
