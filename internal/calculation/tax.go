package calculation

import (
	"time"

	"github.com/receiptmate/taxcore/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX ESTIMATE ASSUMPTIONS:
//
// 1. Bands are tax-year-scoped constants (domain.BandTable); no indexing is
//    applied inside a year.
// 2. The personal allowance taper is applied before band computation. Band
//    widths stay anchored to the untapered allowance, matching the published
//    thresholds: with a full allowance the basic band covers taxable income
//    up to BasicRateLimit - PersonalAllowance.
// 3. Class 2 is a flat annual charge above the small-profits threshold.
//    Years where it is credited rather than charged carry a zero weekly rate
//    in the table.
// 4. Intermediate band arithmetic runs at full decimal precision; only the
//    published outputs are rounded (half-up, 2dp).

// Estimator computes a self-assessment projection for one tax year's bands.
type Estimator struct {
	Table  domain.BandTable
	Logger Logger
}

// NewEstimator creates an estimator for the given band table.
func NewEstimator(table domain.BandTable) *Estimator {
	return &Estimator{Table: table, Logger: NopLogger{}}
}

// NewEstimatorForYear creates an estimator using the built-in band table for
// a tax year.
func NewEstimatorForYear(ty domain.TaxYear) *Estimator {
	return NewEstimator(domain.BandTableForYear(ty))
}

// SetLogger sets the logger, falling back to a no-op logger for nil.
func (e *Estimator) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

// Estimate projects Income Tax and National Insurance for the given gross
// income and total deductions. asOf is the injected "now" used only for the
// monthly savings countdown; the bands come from the estimator's table.
func (e *Estimator) Estimate(grossIncome, totalDeductions decimal.Decimal, asOf time.Time) domain.TaxEstimate {
	t := e.Table

	profit := grossIncome.Sub(totalDeductions)
	if profit.LessThan(decimal.Zero) {
		profit = decimal.Zero
	}

	allowance := e.taperedAllowance(profit)
	incomeTax := e.incomeTax(profit, allowance)
	class2 := e.class2(profit)
	class4 := e.class4(profit)
	totalTax := incomeTax.Add(class2).Add(class4)

	// Guard: effective rate is zero for zero income, never a division error.
	effectiveRate := decimal.Zero
	if grossIncome.GreaterThan(decimal.Zero) {
		effectiveRate = totalTax.Div(grossIncome).Mul(decimal.NewFromInt(100)).Round(2)
	}

	months := MonthsUntilFilingDeadline(asOf)
	monthly := totalTax.Div(decimal.NewFromInt(int64(months))).Round(2)

	e.Logger.Debugf("estimate %s: profit %s allowance %s IT %s NI %s",
		domain.TaxYear(t.TaxYear).String(), profit.String(), allowance.String(),
		incomeTax.String(), class2.Add(class4).String())

	return domain.TaxEstimate{
		TaxYear:              domain.TaxYear(t.TaxYear),
		GrossIncome:          grossIncome.Round(2),
		TotalDeductions:      totalDeductions.Round(2),
		TaxableProfit:        profit.Round(2),
		IncomeTax:            incomeTax.Round(2),
		Class2NI:             class2.Round(2),
		Class4NI:             class4.Round(2),
		TotalNI:              class2.Add(class4).Round(2),
		TotalTax:             totalTax.Round(2),
		EffectiveRate:        effectiveRate,
		MonthlySavingsTarget: monthly,
		DeductionsSavedTax:   totalDeductions.Mul(t.BasicRate).Round(2),
	}
}

// taperedAllowance withdraws the personal allowance above the taper
// threshold at one pound per TaperDivisor pounds of excess income, floored
// at zero.
func (e *Estimator) taperedAllowance(income decimal.Decimal) decimal.Decimal {
	t := e.Table
	allowance := t.PersonalAllowance
	if t.TaperDivisor.GreaterThan(decimal.Zero) && income.GreaterThan(t.TaperThreshold) {
		reduction := income.Sub(t.TaperThreshold).Div(t.TaperDivisor)
		allowance = allowance.Sub(reduction)
		if allowance.LessThan(decimal.Zero) {
			allowance = decimal.Zero
		}
	}
	return allowance
}

// incomeTax applies the marginal bands to the profit above the (possibly
// tapered) allowance.
func (e *Estimator) incomeTax(profit, allowance decimal.Decimal) decimal.Decimal {
	t := e.Table
	taxable := profit.Sub(allowance)
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	basicBand := t.BasicRateLimit.Sub(t.PersonalAllowance)
	higherBand := t.HigherRateLimit.Sub(t.BasicRateLimit)

	tax := decimal.Min(taxable, basicBand).Mul(t.BasicRate)
	if taxable.GreaterThan(basicBand) {
		inHigher := decimal.Min(taxable.Sub(basicBand), higherBand)
		tax = tax.Add(inHigher.Mul(t.HigherRate))
	}
	if taxable.GreaterThan(basicBand.Add(higherBand)) {
		inAdditional := taxable.Sub(basicBand).Sub(higherBand)
		tax = tax.Add(inAdditional.Mul(t.AdditionalRate))
	}
	return tax
}

// class2 is the flat annual charge, due only above the small-profits
// threshold.
func (e *Estimator) class2(profit decimal.Decimal) decimal.Decimal {
	if profit.GreaterThan(e.Table.Class2SmallProfits) {
		return e.Table.Class2Annual()
	}
	return decimal.Zero
}

// class4 applies the main rate between the lower and upper profit limits and
// the upper rate above.
func (e *Estimator) class4(profit decimal.Decimal) decimal.Decimal {
	t := e.Table
	if profit.LessThanOrEqual(t.Class4LowerLimit) {
		return decimal.Zero
	}
	if profit.LessThanOrEqual(t.Class4UpperLimit) {
		return profit.Sub(t.Class4LowerLimit).Mul(t.Class4MainRate)
	}
	main := t.Class4UpperLimit.Sub(t.Class4LowerLimit).Mul(t.Class4MainRate)
	upper := profit.Sub(t.Class4UpperLimit).Mul(t.Class4UpperRate)
	return main.Add(upper)
}

// MonthsUntilFilingDeadline counts the whole calendar months from asOf to
// the next 31 January self-assessment deadline, with a floor of one so a
// January evaluation never divides by zero.
func MonthsUntilFilingDeadline(asOf time.Time) int {
	deadline := time.Date(asOf.Year(), time.January, 31, 23, 59, 59, 0, time.UTC)
	if asOf.After(deadline) {
		deadline = deadline.AddDate(1, 0, 0)
	}
	months := (deadline.Year()-asOf.Year())*12 + int(deadline.Month()) - int(asOf.Month())
	if months < 1 {
		months = 1
	}
	return months
}
