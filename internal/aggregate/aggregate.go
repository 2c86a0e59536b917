// Package aggregate combines normalized receipts and mileage claims into the
// category and monthly summaries the report surfaces render. Everything here
// is pure: filtering, bucketing and percentage arithmetic over caller data.
package aggregate

import (
	"sort"
	"time"

	"github.com/receiptmate/taxcore/internal/currency"
	"github.com/receiptmate/taxcore/internal/domain"
	"github.com/shopspring/decimal"
)

// CategorySummary is one row of the category breakdown.
type CategorySummary struct {
	Category   domain.ExpenseCategory `json:"category"`
	Count      int                    `json:"count"`
	Total      decimal.Decimal        `json:"total"`
	Percentage decimal.Decimal        `json:"percentage"`
}

// MonthSummary is one calendar-month bucket of the trend view. Months are
// calendar months, not tax months.
type MonthSummary struct {
	Month string          `json:"month"` // "2006-01" form
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
	VAT   decimal.Decimal `json:"vat"`
}

// Totals carries the grand totals of a report.
type Totals struct {
	GrandTotal   decimal.Decimal `json:"grand_total"`
	ReceiptTotal decimal.Decimal `json:"receipt_total"`
	MileageTotal decimal.Decimal `json:"mileage_total"`
	TotalMiles   decimal.Decimal `json:"total_miles"`
	ReceiptCount int             `json:"receipt_count"`
	ClaimCount   int             `json:"claim_count"`
}

// Report is the aggregated view for a date range. It is the direct input to
// the CSV/PDF exports, so ordering and rounding here are what the user sees.
type Report struct {
	From       time.Time         `json:"from"`
	To         time.Time         `json:"to"`
	ByCategory []CategorySummary `json:"by_category"`
	ByMonth    []MonthSummary    `json:"by_month"`
	Totals     Totals            `json:"totals"`

	// MonthOverMonthChange is the percentage change between the two most
	// recent month buckets in range, zero when there is no prior month to
	// compare against.
	MonthOverMonthChange decimal.Decimal `json:"month_over_month_change"`
}

// Aggregate filters receipts and claims to the inclusive date range, buckets
// them by category and calendar month, and computes totals.
//
// Policies: a receipt with no extracted date falls back to its logging date
// (Receipt.EffectiveDate); only business receipts count; receipt amounts are
// normalized to GBP from the original amount and stored rate before
// summation; mileage claims aggregate under the synthetic Mileage category.
func Aggregate(receipts []domain.Receipt, claims []domain.MileageClaim, from, to time.Time) Report {
	r := Report{From: from, To: to}

	catTotals := make(map[domain.ExpenseCategory]*CategorySummary)
	monthTotals := make(map[string]*MonthSummary)

	addMonth := func(d time.Time, amount, vat decimal.Decimal) {
		key := d.Format("2006-01")
		m, ok := monthTotals[key]
		if !ok {
			m = &MonthSummary{Month: key}
			monthTotals[key] = m
		}
		m.Count++
		m.Total = m.Total.Add(amount)
		m.VAT = m.VAT.Add(vat)
	}
	addCategory := func(cat domain.ExpenseCategory, amount decimal.Decimal) {
		c, ok := catTotals[cat]
		if !ok {
			c = &CategorySummary{Category: cat}
			catTotals[cat] = c
		}
		c.Count++
		c.Total = c.Total.Add(amount)
	}

	for _, rec := range receipts {
		if !rec.Business {
			continue
		}
		d := rec.EffectiveDate()
		if !inRange(d, from, to) {
			continue
		}
		amount := currency.ToGBP(rec.OriginalAmount, rec.Currency, rec.ExchangeRate)
		cat := rec.Category
		if cat == "" {
			cat = domain.CategoryOther
		}
		addCategory(cat, amount)
		addMonth(d, amount, rec.VATAmount)
		r.Totals.ReceiptTotal = r.Totals.ReceiptTotal.Add(amount)
		r.Totals.ReceiptCount++
	}

	for _, c := range claims {
		if !inRange(c.Date, from, to) {
			continue
		}
		addCategory(domain.CategoryMileage, c.Amount)
		addMonth(c.Date, c.Amount, decimal.Zero)
		r.Totals.MileageTotal = r.Totals.MileageTotal.Add(c.Amount)
		r.Totals.TotalMiles = r.Totals.TotalMiles.Add(c.TotalMiles)
		r.Totals.ClaimCount++
	}

	r.Totals.GrandTotal = r.Totals.ReceiptTotal.Add(r.Totals.MileageTotal)

	// Percentages: guard the zero grand total so every category reads 0%,
	// never a division error.
	for _, c := range catTotals {
		if r.Totals.GrandTotal.GreaterThan(decimal.Zero) {
			c.Percentage = c.Total.Div(r.Totals.GrandTotal).Mul(decimal.NewFromInt(100)).Round(2)
		}
		c.Total = c.Total.Round(2)
		r.ByCategory = append(r.ByCategory, *c)
	}
	sort.Slice(r.ByCategory, func(i, j int) bool {
		if !r.ByCategory[i].Total.Equal(r.ByCategory[j].Total) {
			return r.ByCategory[i].Total.GreaterThan(r.ByCategory[j].Total)
		}
		return r.ByCategory[i].Category < r.ByCategory[j].Category
	})

	for _, m := range monthTotals {
		m.Total = m.Total.Round(2)
		m.VAT = m.VAT.Round(2)
		r.ByMonth = append(r.ByMonth, *m)
	}
	sort.Slice(r.ByMonth, func(i, j int) bool { return r.ByMonth[i].Month < r.ByMonth[j].Month })

	if n := len(r.ByMonth); n >= 2 {
		prev := r.ByMonth[n-2].Total
		last := r.ByMonth[n-1].Total
		if prev.GreaterThan(decimal.Zero) {
			r.MonthOverMonthChange = last.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(1)
		}
	}

	r.Totals.GrandTotal = r.Totals.GrandTotal.Round(2)
	r.Totals.ReceiptTotal = r.Totals.ReceiptTotal.Round(2)
	r.Totals.MileageTotal = r.Totals.MileageTotal.Round(2)
	r.Totals.TotalMiles = r.Totals.TotalMiles.Round(2)
	return r
}

func inRange(d, from, to time.Time) bool {
	return !d.Before(from) && !d.After(to)
}
