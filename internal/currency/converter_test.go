package currency

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToGBP(t *testing.T) {
	amount := decimal.NewFromInt(100)

	got := ToGBP(amount, "EUR", decimal.NewFromFloat(0.85))
	assert.Equal(t, "85.00", got.StringFixed(2))

	got = ToGBP(decimal.NewFromFloat(1234.56), "usd", decimal.NewFromFloat(0.79))
	assert.Equal(t, "975.30", got.StringFixed(2), "Lowercase codes normalize, result rounds half-up")
}

func TestToGBP_HomeCurrencyPassthrough(t *testing.T) {
	amount := decimal.NewFromFloat(42.50)

	// A stale or wrong rate must never rescale a GBP amount.
	for _, rate := range []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(0.5), decimal.NewFromInt(2)} {
		got := ToGBP(amount, "GBP", rate)
		assert.True(t, got.Equal(amount), "GBP at rate %s should pass through, got %s", rate.String(), got.String())
	}
	assert.True(t, ToGBP(amount, " gbp ", decimal.NewFromInt(3)).Equal(amount))
}

func TestConvert(t *testing.T) {
	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	c := Convert(decimal.NewFromInt(100), "EUR", decimal.NewFromFloat(0.85), asOf)
	assert.Equal(t, "EUR", c.OriginalCurrency)
	assert.Equal(t, "85.00", c.GBPAmount.StringFixed(2))
	assert.True(t, c.ExchangeRate.Equal(decimal.NewFromFloat(0.85)))
	assert.Equal(t, asOf, c.RateDate)

	// GBP pins the stored rate to exactly 1.
	c = Convert(decimal.NewFromFloat(19.99), "GBP", decimal.NewFromFloat(0.85), asOf)
	assert.True(t, c.ExchangeRate.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "19.99", c.GBPAmount.StringFixed(2))
	assert.Equal(t, GBP, c.OriginalCurrency)
}

func TestConvert_RoundTripWithinACent(t *testing.T) {
	rate := decimal.NewFromFloat(0.8531)
	inverse := decimal.NewFromInt(1).Div(rate)

	for _, amount := range []float64{0.01, 9.99, 100, 1234.56, 99999.99} {
		orig := decimal.NewFromFloat(amount)
		gbp := ToGBP(orig, "EUR", rate)
		back := gbp.Mul(inverse).Round(2)
		diff := back.Sub(orig).Abs()
		assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.01)),
			"Round-trip of %s drifted by %s", orig.String(), diff.String())
	}
}

func TestFormat(t *testing.T) {
	amount := decimal.NewFromInt(50)

	tests := []struct {
		code     string
		expected string
	}{
		{"GBP", "£50.00"},
		{"EUR", "€50.00"},
		{"USD", "$50.00"},
		{"JPY", "¥50.00"},
		{"NOK", "50.00 kr"},
		{"SEK", "50.00 kr"},
		{"DKK", "50.00 kr"},
		{"PLN", "50.00 zł"},
		{"CZK", "50.00 Kč"},
		{"TRY", "₺50.00"},
		{"XYZ", "50.00 XYZ"},
		{"eur", "€50.00"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Format(amount, tc.code), "Format(%s)", tc.code)
	}
}

func TestSupportedSet(t *testing.T) {
	assert.Equal(t, "GBP", Supported[0].Code, "Home currency leads the list")
	assert.Len(t, Supported, 21)

	for _, c := range Supported {
		assert.Len(t, c.Code, 3, "Code %q must be ISO 4217", c.Code)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Symbol)
		assert.True(t, IsSupported(c.Code))
	}

	assert.False(t, IsSupported("XYZ"))
	assert.True(t, IsSupported("gbp"), "IsSupported normalizes case")
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "£", Symbol("GBP"))
	assert.Equal(t, "₹", Symbol("INR"))
	assert.Equal(t, "XYZ", Symbol("XYZ"), "Unknown codes fall back to the code")
}
