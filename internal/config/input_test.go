package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/receiptmate/taxcore/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInputFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validInputYAML = `
profile:
  gross_income: 60000
  as_of: 2025-08-31T00:00:00Z
  tax_year: 2025
receipts:
  - vendor: "Station Cafe"
    created_at: 2025-06-10T00:00:00Z
    original_amount: 12.50
    vat_amount: 2.08
    category: "Travel Costs"
    business: true
  - vendor: "Hotel Berlin"
    created_at: 2025-07-02T00:00:00Z
    currency: eur
    original_amount: 240
    exchange_rate: 0.85
    category: "Travel Costs"
    business: true
trips:
  - date: 2025-06-10T00:00:00Z
    start_location: "Manchester"
    end_location: "Leeds"
    vehicle_type: car
    one_way_miles: 44
    round_trip: true
    business_purpose: "Client meeting"
`

func TestInputParser_LoadFromFile(t *testing.T) {
	parser := NewInputParser()

	input, err := parser.LoadFromFile(writeInputFile(t, validInputYAML))
	require.NoError(t, err)

	assert.True(t, input.Profile.GrossIncome.Equal(decimal.NewFromInt(60000)))
	assert.Equal(t, domain.TaxYear(2025), input.TaxYear())
	require.Len(t, input.Receipts, 2)
	require.Len(t, input.Trips, 1)
	assert.True(t, input.Trips[0].RoundTrip)
	assert.Equal(t, domain.VehicleCar, input.Trips[0].VehicleType)
}

func TestInputParser_AppliesDefaults(t *testing.T) {
	parser := NewInputParser()

	input, err := parser.LoadFromFile(writeInputFile(t, validInputYAML))
	require.NoError(t, err)

	// Blank currency defaults to GBP with a pinned rate.
	assert.Equal(t, "GBP", input.Receipts[0].Currency)
	assert.True(t, input.Receipts[0].ExchangeRate.Equal(decimal.NewFromInt(1)))

	// Foreign currencies are uppercased and keep their own rate.
	assert.Equal(t, "EUR", input.Receipts[1].Currency)
	assert.True(t, input.Receipts[1].ExchangeRate.Equal(decimal.NewFromFloat(0.85)))
}

func TestInputParser_TaxYearDerivedFromAsOf(t *testing.T) {
	parser := NewInputParser()

	input, err := parser.LoadFromFile(writeInputFile(t, `
profile:
  gross_income: 1000
  as_of: 2025-03-01T00:00:00Z
`))
	require.NoError(t, err)
	assert.Equal(t, domain.TaxYear(2024), input.TaxYear(), "March falls in the prior tax year")
}

func TestInputParser_MissingFile(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestInputParser_InvalidYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeInputFile(t, "profile: [not: a: mapping"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestInputParser_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			"negative income",
			"profile:\n  gross_income: -1\n  as_of: 2025-08-31T00:00:00Z\n",
			"gross income cannot be negative",
		},
		{
			"missing as_of",
			"profile:\n  gross_income: 1000\n",
			"as_of date is required",
		},
		{
			"bad currency code",
			`
profile:
  gross_income: 1000
  as_of: 2025-08-31T00:00:00Z
receipts:
  - vendor: X
    created_at: 2025-06-01T00:00:00Z
    currency: EURO
    original_amount: 5
    exchange_rate: 0.9
    business: true
`,
			"ISO 4217",
		},
		{
			"foreign receipt without rate",
			`
profile:
  gross_income: 1000
  as_of: 2025-08-31T00:00:00Z
receipts:
  - vendor: X
    created_at: 2025-06-01T00:00:00Z
    currency: USD
    original_amount: 5
    business: true
`,
			"exchange rate must be positive",
		},
		{
			"trip missing purpose",
			`
profile:
  gross_income: 1000
  as_of: 2025-08-31T00:00:00Z
trips:
  - date: 2025-06-11T00:00:00Z
    start_location: A
    end_location: B
    vehicle_type: car
    one_way_miles: 5
`,
			"business purpose is required",
		},
		{
			"inverted report range",
			`
profile:
  gross_income: 1000
  as_of: 2025-08-31T00:00:00Z
report:
  from: 2025-06-01T00:00:00Z
  to: 2025-05-01T00:00:00Z
`,
			"cannot be before",
		},
	}

	parser := NewInputParser()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.LoadFromFile(writeInputFile(t, tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
