package calculation

import (
	"testing"

	"github.com/receiptmate/taxcore/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRateEngine_FlatRates(t *testing.T) {
	engine := NewRateEngineForYear(2025)

	moto := engine.ComputeRate(domain.VehicleMotorcycle, decimal.Zero, decimal.NewFromInt(100))
	assert.True(t, moto.Amount.Equal(decimal.NewFromInt(24)), "100 motorcycle miles at 24p should be 24.00, got %s", moto.Amount.String())
	assert.True(t, moto.EffectiveRate.Equal(decimal.NewFromFloat(0.24)))
	assert.True(t, moto.Tier2Miles.IsZero(), "Flat rates never split tiers")

	bike := engine.ComputeRate(domain.VehicleBicycle, decimal.Zero, decimal.NewFromInt(50))
	assert.True(t, bike.Amount.Equal(decimal.NewFromInt(10)), "50 bicycle miles at 20p should be 10.00")

	// Flat rates ignore any accumulated car mileage.
	motoHigh := engine.ComputeRate(domain.VehicleMotorcycle, decimal.NewFromInt(15000), decimal.NewFromInt(100))
	assert.True(t, motoHigh.Amount.Equal(moto.Amount), "Threshold position must not move a flat-rate claim")
}

func TestRateEngine_CarBelowThreshold(t *testing.T) {
	engine := NewRateEngineForYear(2025)

	split := engine.ComputeRate(domain.VehicleCar, decimal.Zero, decimal.NewFromInt(100))
	assert.True(t, split.Tier1Miles.Equal(decimal.NewFromInt(100)))
	assert.True(t, split.Tier2Miles.IsZero())
	assert.True(t, split.Amount.Equal(decimal.NewFromInt(45)), "Should be 45.00, got %s", split.Amount.String())
	assert.True(t, split.EffectiveRate.Equal(decimal.NewFromFloat(0.45)))

	// Landing exactly on the threshold still prices entirely at tier 1.
	exact := engine.ComputeRate(domain.VehicleCar, decimal.NewFromInt(9900), decimal.NewFromInt(100))
	assert.True(t, exact.Tier1Miles.Equal(decimal.NewFromInt(100)), "Sum equal to threshold stays in tier 1")
	assert.True(t, exact.Amount.Equal(decimal.NewFromInt(45)))
}

func TestRateEngine_CarAboveThreshold(t *testing.T) {
	engine := NewRateEngineForYear(2025)

	split := engine.ComputeRate(domain.VehicleCar, decimal.NewFromInt(10000), decimal.NewFromInt(100))
	assert.True(t, split.Tier1Miles.IsZero())
	assert.True(t, split.Tier2Miles.Equal(decimal.NewFromInt(100)))
	assert.True(t, split.Amount.Equal(decimal.NewFromInt(25)), "Should be 25.00, got %s", split.Amount.String())
	assert.True(t, split.EffectiveRate.Equal(decimal.NewFromFloat(0.25)))
}

func TestRateEngine_CarStraddlesThreshold(t *testing.T) {
	engine := NewRateEngineForYear(2025)

	// 9800 miles already claimed, a 400-mile trip crosses the boundary:
	// 200 miles at 45p plus 200 miles at 25p.
	split := engine.ComputeRate(domain.VehicleCar, decimal.NewFromInt(9800), decimal.NewFromInt(400))
	assert.True(t, split.Tier1Miles.Equal(decimal.NewFromInt(200)), "Tier 1 should be 200, got %s", split.Tier1Miles.String())
	assert.True(t, split.Tier2Miles.Equal(decimal.NewFromInt(200)), "Tier 2 should be 200, got %s", split.Tier2Miles.String())
	assert.True(t, split.Amount.Equal(decimal.NewFromInt(140)), "Should be 140.00, got %s", split.Amount.String())
	assert.True(t, split.EffectiveRate.Equal(decimal.NewFromFloat(0.35)), "Blended rate should be 0.35, got %s", split.EffectiveRate.String())
}

func TestRateEngine_ZeroMiles(t *testing.T) {
	engine := NewRateEngineForYear(2025)

	fresh := engine.ComputeRate(domain.VehicleCar, decimal.Zero, decimal.Zero)
	assert.True(t, fresh.Amount.IsZero())
	assert.True(t, fresh.EffectiveRate.Equal(decimal.NewFromFloat(0.45)), "Zero-mile claim below threshold shows tier-1 rate")

	over := engine.ComputeRate(domain.VehicleCar, decimal.NewFromInt(12000), decimal.Zero)
	assert.True(t, over.EffectiveRate.Equal(decimal.NewFromFloat(0.25)), "Zero-mile claim above threshold shows tier-2 rate")
}

func TestRateEngine_TierSplitAccountsForEveryMile(t *testing.T) {
	engine := NewRateEngineForYear(2025)

	for already := int64(0); already <= 12000; already += 1500 {
		for miles := int64(0); miles <= 3000; miles += 700 {
			split := engine.ComputeRate(domain.VehicleCar, decimal.NewFromInt(already), decimal.NewFromInt(miles))
			sum := split.Tier1Miles.Add(split.Tier2Miles)
			assert.True(t, sum.Equal(decimal.NewFromInt(miles)),
				"already=%d miles=%d: tiers %s + %s should sum to trip miles",
				already, miles, split.Tier1Miles.String(), split.Tier2Miles.String())
			assert.False(t, split.Tier1Miles.IsNegative())
			assert.False(t, split.Tier2Miles.IsNegative())

			expected := split.Tier1Miles.Mul(decimal.NewFromFloat(0.45)).
				Add(split.Tier2Miles.Mul(decimal.NewFromFloat(0.25))).Round(2)
			assert.True(t, split.Amount.Equal(expected),
				"already=%d miles=%d: amount %s should match tier arithmetic %s",
				already, miles, split.Amount.String(), expected.String())
		}
	}
}
