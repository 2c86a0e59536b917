package calculation

import (
	"github.com/receiptmate/taxcore/internal/domain"
	"github.com/shopspring/decimal"
)

// RATE CALCULATION ASSUMPTIONS:
//
// 1. Approved mileage rates are versioned per tax year (domain.RateTable);
//    the published figures have been unchanged since 2011/12.
// 2. Only car miles count toward the 10,000-mile threshold. Motorcycle and
//    bicycle rates are flat, so their miles never move a rate decision.
// 3. Round-trip doubling happens before any threshold logic: the tier split
//    is a property of the total distance claimed, not the one-way leg.

// RateSplit is the outcome of pricing one trip's mileage against the annual
// threshold: how many miles fall in each tier and the blended amount.
type RateSplit struct {
	Tier1Miles    decimal.Decimal
	Tier2Miles    decimal.Decimal
	Amount        decimal.Decimal // total claim in GBP, rounded to 2dp
	EffectiveRate decimal.Decimal // blended pounds per mile for display, 2dp
}

// RateEngine prices trip mileage against one tax year's approved rates.
type RateEngine struct {
	Table domain.RateTable
}

// NewRateEngine creates a rate engine for the given rate table.
func NewRateEngine(table domain.RateTable) *RateEngine {
	return &RateEngine{Table: table}
}

// NewRateEngineForYear creates a rate engine using the built-in rate table
// for a tax year.
func NewRateEngineForYear(ty domain.TaxYear) *RateEngine {
	return &RateEngine{Table: domain.RateTableForYear(ty)}
}

// ComputeRate splits tripMiles across the rate tiers given the car miles
// already claimed this tax year and returns the blended claim amount.
// alreadyClaimed is the cumulative car mileage of all other claims in the
// same tax year; it must come from a consistent caller-supplied snapshot.
func (re *RateEngine) ComputeRate(vehicle domain.VehicleType, alreadyClaimed, tripMiles decimal.Decimal) RateSplit {
	t := re.Table

	// Motorcycles and bicycles have a single flat rate.
	if vehicle == domain.VehicleMotorcycle || vehicle == domain.VehicleBicycle {
		rate := t.RateFor(vehicle)
		return RateSplit{
			Tier1Miles:    tripMiles,
			Tier2Miles:    decimal.Zero,
			Amount:        tripMiles.Mul(rate).Round(2),
			EffectiveRate: rate,
		}
	}

	threshold := t.CarThresholdMiles
	var tier1, tier2 decimal.Decimal
	switch {
	case alreadyClaimed.GreaterThanOrEqual(threshold):
		tier2 = tripMiles
	case alreadyClaimed.Add(tripMiles).LessThanOrEqual(threshold):
		tier1 = tripMiles
	default:
		// The trip straddles the threshold mid-journey.
		tier1 = threshold.Sub(alreadyClaimed)
		tier2 = tripMiles.Sub(tier1)
	}

	amount := tier1.Mul(t.CarTier1).Add(tier2.Mul(t.CarTier2))
	split := RateSplit{
		Tier1Miles: tier1,
		Tier2Miles: tier2,
		Amount:     amount.Round(2),
	}
	if tripMiles.GreaterThan(decimal.Zero) {
		split.EffectiveRate = amount.Div(tripMiles).Round(2)
	} else if alreadyClaimed.GreaterThanOrEqual(threshold) {
		split.EffectiveRate = t.CarTier2
	} else {
		split.EffectiveRate = t.CarTier1
	}
	return split
}
