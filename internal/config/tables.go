package config

import (
	"fmt"
	"os"

	"github.com/receiptmate/taxcore/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// TablesFile is the versioned regulatory data file: band and mileage-rate
// tables keyed by tax year. Historical years stay in the file untouched so
// past estimates reproduce after new years are appended.
type TablesFile struct {
	Bands []domain.BandTable `yaml:"bands"`
	Rates []domain.RateTable `yaml:"rates"`
}

// LoadTables reads a regulatory tables file and indexes it by tax year,
// merged over the built-in tables (file entries win).
func LoadTables(filename string) (*Tables, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file %s: %w", filename, err)
	}

	var tf TablesFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse tables YAML: %w", err)
	}

	t := NewTables()
	for _, b := range tf.Bands {
		if err := validateBandTable(b); err != nil {
			return nil, fmt.Errorf("band table for %d invalid: %w", b.TaxYear, err)
		}
		t.bands[domain.TaxYear(b.TaxYear)] = b
	}
	for _, r := range tf.Rates {
		if err := validateRateTable(r); err != nil {
			return nil, fmt.Errorf("rate table for %d invalid: %w", r.TaxYear, err)
		}
		t.rates[domain.TaxYear(r.TaxYear)] = r
	}
	return t, nil
}

// Tables resolves band and rate tables per tax year, preferring loaded
// overrides and falling back to the built-ins.
type Tables struct {
	bands map[domain.TaxYear]domain.BandTable
	rates map[domain.TaxYear]domain.RateTable
}

// NewTables returns a resolver backed only by the built-in tables.
func NewTables() *Tables {
	return &Tables{
		bands: make(map[domain.TaxYear]domain.BandTable),
		rates: make(map[domain.TaxYear]domain.RateTable),
	}
}

// BandsFor returns the band table for a tax year.
func (t *Tables) BandsFor(ty domain.TaxYear) domain.BandTable {
	if b, ok := t.bands[ty]; ok {
		return b
	}
	return domain.BandTableForYear(ty)
}

// RatesFor returns the mileage rate table for a tax year.
func (t *Tables) RatesFor(ty domain.TaxYear) domain.RateTable {
	if r, ok := t.rates[ty]; ok {
		return r
	}
	return domain.RateTableForYear(ty)
}

func validateBandTable(b domain.BandTable) error {
	if b.TaxYear < 2000 || b.TaxYear > 2100 {
		return fmt.Errorf("tax year must be between 2000 and 2100")
	}
	if b.PersonalAllowance.LessThan(decimal.Zero) {
		return fmt.Errorf("personal allowance cannot be negative")
	}
	if b.BasicRateLimit.LessThanOrEqual(b.PersonalAllowance) {
		return fmt.Errorf("basic rate limit must exceed the personal allowance")
	}
	if b.HigherRateLimit.LessThanOrEqual(b.BasicRateLimit) {
		return fmt.Errorf("higher rate limit must exceed the basic rate limit")
	}
	for _, rate := range []decimal.Decimal{b.BasicRate, b.HigherRate, b.AdditionalRate, b.Class4MainRate, b.Class4UpperRate} {
		if rate.LessThan(decimal.Zero) || rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("rates must be between 0 and 1")
		}
	}
	if b.Class4UpperLimit.LessThan(b.Class4LowerLimit) {
		return fmt.Errorf("class 4 upper limit cannot be below the lower limit")
	}
	return nil
}

func validateRateTable(r domain.RateTable) error {
	if r.TaxYear < 2000 || r.TaxYear > 2100 {
		return fmt.Errorf("tax year must be between 2000 and 2100")
	}
	for _, rate := range []decimal.Decimal{r.CarTier1, r.CarTier2, r.Motorcycle, r.Bicycle} {
		if rate.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("per-mile rates must be positive")
		}
	}
	if r.CarThresholdMiles.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("car threshold miles must be positive")
	}
	if r.CarTier2.GreaterThan(r.CarTier1) {
		return fmt.Errorf("tier 2 car rate cannot exceed tier 1")
	}
	return nil
}
