// Package currency normalizes receipt amounts to GBP and formats monetary
// values for display. It only does the conversion arithmetic: rates are
// supplied by the caller as point-in-time values, never fetched here.
package currency

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// GBP is the home currency every amount normalizes to.
const GBP = "GBP"

// Conversion records a normalization to GBP with the rate that priced it,
// kept immutably with the receipt for the audit trail.
type Conversion struct {
	GBPAmount        decimal.Decimal `json:"gbp_amount"`
	ExchangeRate     decimal.Decimal `json:"exchange_rate"`
	RateDate         time.Time       `json:"rate_date"`
	OriginalAmount   decimal.Decimal `json:"original_amount"`
	OriginalCurrency string          `json:"original_currency"`
}

// ToGBP converts an amount in the stated currency to GBP at the supplied
// rate, rounded to 2dp. GBP amounts pass through untouched regardless of the
// rate: a stale foreign rate must never rescale a GBP-denominated entry.
func ToGBP(amount decimal.Decimal, code string, rate decimal.Decimal) decimal.Decimal {
	if normalize(code) == GBP {
		return amount
	}
	return amount.Mul(rate).Round(2)
}

// Convert performs a ToGBP conversion and captures the rate, its timestamp
// and the original amount for the receipt record. For GBP the stored rate is
// pinned to 1.0.
func Convert(amount decimal.Decimal, code string, rate decimal.Decimal, asOf time.Time) Conversion {
	code = normalize(code)
	if code == GBP {
		return Conversion{
			GBPAmount:        amount.Round(2),
			ExchangeRate:     decimal.NewFromInt(1),
			RateDate:         asOf,
			OriginalAmount:   amount,
			OriginalCurrency: GBP,
		}
	}
	return Conversion{
		GBPAmount:        amount.Mul(rate).Round(2),
		ExchangeRate:     rate,
		RateDate:         asOf,
		OriginalAmount:   amount,
		OriginalCurrency: code,
	}
}

// Format renders an amount with its currency symbol, placing the symbol
// after the amount for the currencies written that way. Unknown codes fall
// back to "amount CODE".
func Format(amount decimal.Decimal, code string) string {
	code = normalize(code)
	c, ok := lookup(code)
	if !ok {
		return fmt.Sprintf("%s %s", amount.StringFixed(2), code)
	}
	if symbolAfter[c.Symbol] {
		return fmt.Sprintf("%s %s", amount.StringFixed(2), c.Symbol)
	}
	return fmt.Sprintf("%s%s", c.Symbol, amount.StringFixed(2))
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
