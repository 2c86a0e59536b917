package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory is an HMRC-aligned allowable-expense category.
type ExpenseCategory string

const (
	CategoryOfficeCosts          ExpenseCategory = "Office Costs"
	CategoryTravelCosts          ExpenseCategory = "Travel Costs"
	CategoryClothing             ExpenseCategory = "Clothing"
	CategoryStaffCosts           ExpenseCategory = "Staff Costs"
	CategoryStockMaterials       ExpenseCategory = "Stock and Materials"
	CategoryFinancialCosts       ExpenseCategory = "Financial Costs"
	CategoryBusinessPremises     ExpenseCategory = "Business Premises"
	CategoryAdvertisingMarketing ExpenseCategory = "Advertising and Marketing"
	CategoryTraining             ExpenseCategory = "Training and Development"
	CategoryOther                ExpenseCategory = "Other"

	// CategoryMileage is the synthetic category mileage claims aggregate
	// under. It is never set on a receipt.
	CategoryMileage ExpenseCategory = "Mileage"
)

// Receipt carries the fields the calculation engine touches. Image storage,
// OCR state and duplicate detection live outside the engine.
type Receipt struct {
	ID     uuid.UUID `yaml:"id" json:"id"`
	Vendor string    `yaml:"vendor" json:"vendor"`

	// Date is the purchase date extracted from the receipt; it may be absent
	// when extraction failed. CreatedAt is when the receipt was logged.
	Date      *time.Time `yaml:"date" json:"date"`
	CreatedAt time.Time  `yaml:"created_at" json:"created_at"`

	// Currency handling. GBPAmount must always be derivable as
	// OriginalAmount x ExchangeRate; a currency change invalidates the
	// stored rate until it is refetched.
	Currency         string          `yaml:"currency" json:"currency"`
	OriginalAmount   decimal.Decimal `yaml:"original_amount" json:"original_amount"`
	ExchangeRate     decimal.Decimal `yaml:"exchange_rate" json:"exchange_rate"`
	ExchangeRateDate time.Time       `yaml:"exchange_rate_date" json:"exchange_rate_date"`
	GBPAmount        decimal.Decimal `yaml:"gbp_amount" json:"gbp_amount"`

	VATAmount decimal.Decimal `yaml:"vat_amount" json:"vat_amount"`
	Category  ExpenseCategory `yaml:"category" json:"category"`
	Business  bool            `yaml:"business" json:"business"`
	Notes     string          `yaml:"notes" json:"notes"`
}

// EffectiveDate is the date used for filtering and bucketing: the extracted
// purchase date when present, otherwise the logging date.
func (r Receipt) EffectiveDate() time.Time {
	if r.Date != nil {
		return *r.Date
	}
	return r.CreatedAt
}
