package domain

import "github.com/shopspring/decimal"

// BandTable holds the Income Tax and National Insurance parameters for one
// tax year. Band figures change every year; new years are added as data so
// historical estimates remain reproducible after bands move.
type BandTable struct {
	TaxYear int `yaml:"tax_year" json:"tax_year"`

	// Income Tax
	PersonalAllowance decimal.Decimal `yaml:"personal_allowance" json:"personal_allowance"`
	BasicRateLimit    decimal.Decimal `yaml:"basic_rate_limit" json:"basic_rate_limit"`
	HigherRateLimit   decimal.Decimal `yaml:"higher_rate_limit" json:"higher_rate_limit"`
	BasicRate         decimal.Decimal `yaml:"basic_rate" json:"basic_rate"`
	HigherRate        decimal.Decimal `yaml:"higher_rate" json:"higher_rate"`
	AdditionalRate    decimal.Decimal `yaml:"additional_rate" json:"additional_rate"`

	// Personal allowance taper: one pound of allowance withdrawn per
	// TaperDivisor pounds of income above TaperThreshold.
	TaperThreshold decimal.Decimal `yaml:"taper_threshold" json:"taper_threshold"`
	TaperDivisor   decimal.Decimal `yaml:"taper_divisor" json:"taper_divisor"`

	// National Insurance
	Class2WeeklyRate     decimal.Decimal `yaml:"class2_weekly_rate" json:"class2_weekly_rate"`
	Class2SmallProfits   decimal.Decimal `yaml:"class2_small_profits_threshold" json:"class2_small_profits_threshold"`
	Class4LowerLimit     decimal.Decimal `yaml:"class4_lower_limit" json:"class4_lower_limit"`
	Class4UpperLimit     decimal.Decimal `yaml:"class4_upper_limit" json:"class4_upper_limit"`
	Class4MainRate       decimal.Decimal `yaml:"class4_main_rate" json:"class4_main_rate"`
	Class4UpperRate      decimal.Decimal `yaml:"class4_upper_rate" json:"class4_upper_rate"`
}

// NewBandTable2025 returns the 2025/26 self-employed tax parameters.
// Class 2 is automatically credited from 2024/25 onward, so the weekly rate
// is zero; the small-profits threshold is kept for the credit boundary.
func NewBandTable2025() BandTable {
	return BandTable{
		TaxYear:            2025,
		PersonalAllowance:  decimal.NewFromInt(12570),
		BasicRateLimit:     decimal.NewFromInt(50270),
		HigherRateLimit:    decimal.NewFromInt(125140),
		BasicRate:          decimal.NewFromFloat(0.20),
		HigherRate:         decimal.NewFromFloat(0.40),
		AdditionalRate:     decimal.NewFromFloat(0.45),
		TaperThreshold:     decimal.NewFromInt(100000),
		TaperDivisor:       decimal.NewFromInt(2),
		Class2WeeklyRate:   decimal.Zero,
		Class2SmallProfits: decimal.NewFromInt(6845),
		Class4LowerLimit:   decimal.NewFromInt(12570),
		Class4UpperLimit:   decimal.NewFromInt(50270),
		Class4MainRate:     decimal.NewFromFloat(0.06),
		Class4UpperRate:    decimal.NewFromFloat(0.02),
	}
}

// NewBandTable2024 returns the 2024/25 self-employed tax parameters.
func NewBandTable2024() BandTable {
	t := NewBandTable2025()
	t.TaxYear = 2024
	t.Class2SmallProfits = decimal.NewFromInt(6725)
	return t
}

// NewBandTable2023 returns the 2023/24 self-employed tax parameters.
// Class 2 was still a paid charge (3.45 per week) and the Class 4 main rate
// was 9%.
func NewBandTable2023() BandTable {
	t := NewBandTable2025()
	t.TaxYear = 2023
	t.Class2WeeklyRate = decimal.NewFromFloat(3.45)
	t.Class2SmallProfits = decimal.NewFromInt(6725)
	t.Class4MainRate = decimal.NewFromFloat(0.09)
	return t
}

var builtinBandTables = map[TaxYear]BandTable{
	2023: NewBandTable2023(),
	2024: NewBandTable2024(),
	2025: NewBandTable2025(),
}

// BandTableForYear returns the built-in band table for a tax year, falling
// back to the most recent published table for later years.
func BandTableForYear(ty TaxYear) BandTable {
	if t, ok := builtinBandTables[ty]; ok {
		return t
	}
	latest := NewBandTable2025()
	latest.TaxYear = int(ty)
	return latest
}

// Class2Annual returns the annual Class 2 charge for the year's weekly rate.
func (bt BandTable) Class2Annual() decimal.Decimal {
	return bt.Class2WeeklyRate.Mul(decimal.NewFromInt(52))
}
