package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/receiptmate/taxcore/internal/currency"
	"github.com/receiptmate/taxcore/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Input is the file a user feeds the CLI: their income profile plus the
// receipts and trips to price and report on.
type Input struct {
	Profile  Profile          `yaml:"profile"`
	Receipts []domain.Receipt `yaml:"receipts"`
	Trips    []domain.Trip    `yaml:"trips"`
	Report   *ReportRange     `yaml:"report"`
}

// Profile carries the user's income and the evaluation date. AsOf is the
// injected "now": every date-sensitive calculation reads it, never the
// system clock.
type Profile struct {
	GrossIncome decimal.Decimal `yaml:"gross_income"`
	AsOf        time.Time       `yaml:"as_of"`
	TaxYear     int             `yaml:"tax_year"`
}

// ReportRange is the inclusive date window for aggregation. When absent the
// CLI defaults to the profile's tax year.
type ReportRange struct {
	From time.Time `yaml:"from"`
	To   time.Time `yaml:"to"`
}

// TaxYear resolves the tax year the input evaluates in: explicit when set,
// otherwise derived from the as-of date.
func (in *Input) TaxYear() domain.TaxYear {
	if in.Profile.TaxYear != 0 {
		return domain.TaxYear(in.Profile.TaxYear)
	}
	return domain.ResolveTaxYear(in.Profile.AsOf)
}

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an input file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*Input, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input Input
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.applyDefaults(&input)

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// applyDefaults fills in the conventional defaults: GBP receipts with a
// pinned 1.0 rate, and an as-of date only if the file set one of its own
// dependents.
func (ip *InputParser) applyDefaults(input *Input) {
	for i := range input.Receipts {
		r := &input.Receipts[i]
		if strings.TrimSpace(r.Currency) == "" {
			r.Currency = currency.GBP
		}
		r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
		if r.Currency == currency.GBP {
			r.ExchangeRate = decimal.NewFromInt(1)
		}
	}
}

// ValidateInput validates the loaded input.
func (ip *InputParser) ValidateInput(input *Input) error {
	if err := ip.validateProfile(&input.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	for i := range input.Receipts {
		if err := ip.validateReceipt(&input.Receipts[i]); err != nil {
			return fmt.Errorf("receipt %d validation failed: %w", i, err)
		}
	}
	for i := range input.Trips {
		if err := ip.validateTrip(&input.Trips[i]); err != nil {
			return fmt.Errorf("trip %d validation failed: %w", i, err)
		}
	}
	if input.Report != nil {
		if input.Report.From.IsZero() || input.Report.To.IsZero() {
			return fmt.Errorf("report range requires both from and to dates")
		}
		if input.Report.To.Before(input.Report.From) {
			return fmt.Errorf("report range to date cannot be before from date")
		}
	}
	return nil
}

func (ip *InputParser) validateProfile(p *Profile) error {
	if p.GrossIncome.LessThan(decimal.Zero) {
		return fmt.Errorf("gross income cannot be negative")
	}
	if p.AsOf.IsZero() {
		return fmt.Errorf("as_of date is required")
	}
	return nil
}

func (ip *InputParser) validateReceipt(r *domain.Receipt) error {
	if r.OriginalAmount.LessThan(decimal.Zero) {
		return fmt.Errorf("original amount cannot be negative")
	}
	if len(r.Currency) != 3 {
		return fmt.Errorf("currency must be a 3-letter ISO 4217 code, got %q", r.Currency)
	}
	if r.Currency != currency.GBP && r.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("exchange rate must be positive for %s receipts", r.Currency)
	}
	if r.VATAmount.LessThan(decimal.Zero) {
		return fmt.Errorf("VAT amount cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateTrip(t *domain.Trip) error {
	if t.Date.IsZero() {
		return fmt.Errorf("trip date is required")
	}
	if strings.TrimSpace(t.StartLocation) == "" {
		return fmt.Errorf("start location is required")
	}
	if strings.TrimSpace(t.EndLocation) == "" {
		return fmt.Errorf("end location is required")
	}
	if strings.TrimSpace(t.BusinessPurpose) == "" {
		return fmt.Errorf("business purpose is required")
	}
	if !t.VehicleType.Valid() {
		return fmt.Errorf("vehicle type must be car, motorcycle or bicycle, got %q", t.VehicleType)
	}
	if t.OneWayMiles.LessThan(decimal.Zero) {
		return fmt.Errorf("one-way miles cannot be negative")
	}
	return nil
}
