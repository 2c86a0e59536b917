package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVehicleTypeValid(t *testing.T) {
	assert.True(t, VehicleCar.Valid())
	assert.True(t, VehicleMotorcycle.Valid())
	assert.True(t, VehicleBicycle.Valid())
	assert.False(t, VehicleType("van").Valid())
	assert.False(t, VehicleType("").Valid())
	assert.False(t, VehicleType("Car").Valid(), "Vehicle types are lowercase")
}

func TestTripTotalMiles(t *testing.T) {
	trip := Trip{OneWayMiles: decimal.NewFromFloat(12.5)}

	assert.True(t, trip.TotalMiles().Equal(decimal.NewFromFloat(12.5)), "One-way trip keeps the distance")

	trip.RoundTrip = true
	assert.True(t, trip.TotalMiles().Equal(decimal.NewFromInt(25)), "Round trip doubles the distance")
}

func TestMileageClaimTaxYear(t *testing.T) {
	claim := MileageClaim{Date: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, TaxYear(2024), claim.TaxYear(), "March trip falls in the prior tax year")

	claim.Date = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, TaxYear(2025), claim.TaxYear())
}

func TestReceiptEffectiveDate(t *testing.T) {
	created := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	extracted := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	r := Receipt{CreatedAt: created}
	assert.Equal(t, created, r.EffectiveDate(), "Should fall back to the logging date")

	r.Date = &extracted
	assert.Equal(t, extracted, r.EffectiveDate(), "Should prefer the extracted purchase date")
}

func TestRateTableForYear(t *testing.T) {
	rt := RateTableForYear(2024)
	assert.Equal(t, 2024, rt.TaxYear)
	assert.True(t, rt.CarTier1.Equal(decimal.NewFromFloat(0.45)))
	assert.True(t, rt.CarThresholdMiles.Equal(decimal.NewFromInt(10000)))

	// Future years fall back to the latest published table.
	future := RateTableForYear(2030)
	assert.Equal(t, 2030, future.TaxYear)
	assert.True(t, future.CarTier2.Equal(decimal.NewFromFloat(0.25)))
}

func TestRateTableRateFor(t *testing.T) {
	rt := NewRateTable2025()
	assert.True(t, rt.RateFor(VehicleMotorcycle).Equal(decimal.NewFromFloat(0.24)))
	assert.True(t, rt.RateFor(VehicleBicycle).Equal(decimal.NewFromFloat(0.20)))
	assert.True(t, rt.RateFor(VehicleCar).Equal(decimal.NewFromFloat(0.45)))
}

func TestBandTableForYear(t *testing.T) {
	bt := BandTableForYear(2025)
	assert.True(t, bt.PersonalAllowance.Equal(decimal.NewFromInt(12570)))
	assert.True(t, bt.Class2WeeklyRate.IsZero(), "Class 2 is credited from 2024/25 onward")

	bt2023 := BandTableForYear(2023)
	assert.True(t, bt2023.Class2WeeklyRate.Equal(decimal.NewFromFloat(3.45)))
	assert.True(t, bt2023.Class4MainRate.Equal(decimal.NewFromFloat(0.09)))

	future := BandTableForYear(2031)
	assert.Equal(t, 2031, future.TaxYear, "Fallback table carries the requested year")
	assert.True(t, future.BasicRateLimit.Equal(decimal.NewFromInt(50270)))
}

func TestBandTableClass2Annual(t *testing.T) {
	bt := NewBandTable2023()
	assert.True(t, bt.Class2Annual().Equal(decimal.NewFromFloat(179.40)),
		"52 weeks at 3.45 should be 179.40, got %s", bt.Class2Annual().String())

	assert.True(t, NewBandTable2025().Class2Annual().IsZero())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("start_location", "is required")
	assert.Equal(t, "validation failed: start_location is required", err.Error())
	assert.Equal(t, "start_location", err.Field)
}
