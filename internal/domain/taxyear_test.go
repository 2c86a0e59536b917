package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveTaxYear(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected TaxYear
	}{
		{"5 April belongs to the previous tax year", time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC), 2024},
		{"6 April starts the new tax year", time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC), 2025},
		{"1 January belongs to the previous calendar year's tax year", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 2024},
		{"31 December stays in the current tax year", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), 2025},
		{"leap day belongs to the previous tax year", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), 2023},
		{"mid-summer date", time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC), 2025},
		{"last second of 5 April", time.Date(2026, 4, 5, 23, 59, 59, 0, time.UTC), 2025},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolveTaxYear(tc.date))
		})
	}
}

func TestTaxYearBounds(t *testing.T) {
	ty := TaxYear(2025)

	assert.Equal(t, time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC), ty.Start(), "Should start 6 April")
	assert.Equal(t, time.Date(2026, 4, 5, 23, 59, 59, 0, time.UTC), ty.End(), "Should end 5 April next year")

	// Both boundaries resolve back to the same year.
	assert.Equal(t, ty, ResolveTaxYear(ty.Start()))
	assert.Equal(t, ty, ResolveTaxYear(ty.End()))
}

func TestTaxYearContains(t *testing.T) {
	ty := TaxYear(2025)

	assert.True(t, ty.Contains(time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC)), "First day is inside")
	assert.True(t, ty.Contains(time.Date(2026, 4, 5, 12, 0, 0, 0, time.UTC)), "Last day is inside")
	assert.True(t, ty.Contains(time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)))
	assert.False(t, ty.Contains(time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)), "Day before start is outside")
	assert.False(t, ty.Contains(time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)), "Day after end is outside")
}

func TestTaxYearString(t *testing.T) {
	assert.Equal(t, "2025/26", TaxYear(2025).String())
	assert.Equal(t, "2023/24", TaxYear(2023).String())
	assert.Equal(t, "2009/10", TaxYear(2009).String())
	assert.Equal(t, "2099/00", TaxYear(2099).String(), "Century rollover keeps two digits")
}
