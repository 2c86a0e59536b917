package output

import (
	"time"

	"github.com/receiptmate/taxcore/internal/aggregate"
	"github.com/receiptmate/taxcore/internal/calculation"
	"github.com/receiptmate/taxcore/internal/currency"
	"github.com/receiptmate/taxcore/internal/domain"
	"github.com/shopspring/decimal"
)

// ReportData is the bundle every formatter renders: the aggregated expense
// report, the priced claims behind it, and the tax estimate when one was
// requested. Column order and rounding must match across formats so the
// exported file reconciles with what is shown on screen.
type ReportData struct {
	GeneratedAt time.Time              `json:"generated_at"`
	TaxYear     domain.TaxYear         `json:"tax_year"`
	Report      aggregate.Report       `json:"report"`
	Claims      []domain.MileageClaim  `json:"claims,omitempty"`
	Estimate    *domain.TaxEstimate    `json:"estimate,omitempty"`
	Stats       *calculation.MileageStats `json:"stats,omitempty"`
}

// FormatCurrency formats a GBP amount for display.
func FormatCurrency(amount decimal.Decimal) string {
	return currency.Format(amount, currency.GBP)
}

var hundred = decimal.NewFromInt(100)
