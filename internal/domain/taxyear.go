package domain

import (
	"fmt"
	"time"
)

// TaxYear identifies a UK tax year by its starting calendar year.
// TaxYear(2025) runs 6 April 2025 through 5 April 2026.
type TaxYear int

// ResolveTaxYear returns the tax year containing d. Dates before 6 April
// belong to the tax year that started the previous calendar year.
func ResolveTaxYear(d time.Time) TaxYear {
	if d.Month() < time.April || (d.Month() == time.April && d.Day() < 6) {
		return TaxYear(d.Year() - 1)
	}
	return TaxYear(d.Year())
}

// Start returns 6 April 00:00:00 UTC of the starting year.
func (ty TaxYear) Start() time.Time {
	return time.Date(int(ty), time.April, 6, 0, 0, 0, 0, time.UTC)
}

// End returns 5 April 23:59:59 UTC of the following calendar year.
func (ty TaxYear) End() time.Time {
	return time.Date(int(ty)+1, time.April, 5, 23, 59, 59, 0, time.UTC)
}

// Contains reports whether d falls inside the tax year, boundaries inclusive.
func (ty TaxYear) Contains(d time.Time) bool {
	return ResolveTaxYear(d) == ty
}

// String renders the conventional split form, e.g. "2025/26".
func (ty TaxYear) String() string {
	return fmt.Sprintf("%d/%02d", int(ty), (int(ty)+1)%100)
}
