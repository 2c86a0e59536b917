package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DistanceResult is a resolved one-way road distance between two locations.
type DistanceResult struct {
	Miles    decimal.Decimal
	Duration string
}

// DistanceFunc resolves a one-way distance between two free-text locations
// for a vehicle class. Implementations sit outside the engine (mapping
// providers); failures should be returned as *ExternalLookupError and are
// never retried here.
type DistanceFunc func(start, end string, vehicle VehicleType) (DistanceResult, error)

// RateQuote is an exchange rate to GBP captured at a point in time. The
// quote is stored immutably with the receipt it priced; it is never
// refetched without an explicit user action.
type RateQuote struct {
	Rate decimal.Decimal
	AsOf time.Time
}

// ExchangeRateFunc resolves the current rate from a source currency to GBP.
type ExchangeRateFunc func(currency string) (RateQuote, error)
