package domain

import "github.com/shopspring/decimal"

// TaxEstimate is the projected self-assessment position for a tax year.
// It is a pure computed value: recomputed on every input change, never
// persisted.
type TaxEstimate struct {
	TaxYear         TaxYear         `json:"tax_year"`
	GrossIncome     decimal.Decimal `json:"gross_income"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TaxableProfit   decimal.Decimal `json:"taxable_profit"`

	IncomeTax decimal.Decimal `json:"income_tax"`
	Class2NI  decimal.Decimal `json:"class2_ni"`
	Class4NI  decimal.Decimal `json:"class4_ni"`
	TotalNI   decimal.Decimal `json:"total_ni"`
	TotalTax  decimal.Decimal `json:"total_tax"`

	// EffectiveRate is total tax over gross income as a percentage, zero
	// when gross income is zero.
	EffectiveRate decimal.Decimal `json:"effective_rate"`

	// MonthlySavingsTarget spreads the bill over the months left until the
	// next 31 January filing deadline.
	MonthlySavingsTarget decimal.Decimal `json:"monthly_savings_target"`

	// DeductionsSavedTax is a rough basic-rate estimate of tax avoided by
	// the recorded deductions.
	DeductionsSavedTax decimal.Decimal `json:"deductions_saved_tax"`
}
