package domain

import "github.com/shopspring/decimal"

// RateTable holds the approved mileage rates for one tax year. The rates are
// set by the tax authority and change by Finance Act, so tables are versioned
// by tax year rather than inlined in the calculation code.
type RateTable struct {
	TaxYear           int             `yaml:"tax_year" json:"tax_year"`
	CarTier1          decimal.Decimal `yaml:"car_tier1" json:"car_tier1"`
	CarTier2          decimal.Decimal `yaml:"car_tier2" json:"car_tier2"`
	Motorcycle        decimal.Decimal `yaml:"motorcycle" json:"motorcycle"`
	Bicycle           decimal.Decimal `yaml:"bicycle" json:"bicycle"`
	CarThresholdMiles decimal.Decimal `yaml:"car_threshold_miles" json:"car_threshold_miles"`
}

// NewRateTable2025 returns the published approved mileage rates for 2025/26.
// Cars: 45p per mile for the first 10,000 miles, then 25p. Motorcycles 24p
// and bicycles 20p with no threshold reduction.
func NewRateTable2025() RateTable {
	return RateTable{
		TaxYear:           2025,
		CarTier1:          decimal.NewFromFloat(0.45),
		CarTier2:          decimal.NewFromFloat(0.25),
		Motorcycle:        decimal.NewFromFloat(0.24),
		Bicycle:           decimal.NewFromFloat(0.20),
		CarThresholdMiles: decimal.NewFromInt(10000),
	}
}

// NewRateTable2024 returns the approved mileage rates for 2024/25.
func NewRateTable2024() RateTable {
	t := NewRateTable2025()
	t.TaxYear = 2024
	return t
}

// NewRateTable2023 returns the approved mileage rates for 2023/24.
// The figures have been unchanged since 2011/12.
func NewRateTable2023() RateTable {
	t := NewRateTable2025()
	t.TaxYear = 2023
	return t
}

var builtinRateTables = map[TaxYear]RateTable{
	2023: NewRateTable2023(),
	2024: NewRateTable2024(),
	2025: NewRateTable2025(),
}

// RateTableForYear returns the built-in rate table for a tax year, falling
// back to the most recent published table for years outside the built-in
// range. Historical years keep their own table so past claims reproduce.
func RateTableForYear(ty TaxYear) RateTable {
	if t, ok := builtinRateTables[ty]; ok {
		return t
	}
	latest := NewRateTable2025()
	latest.TaxYear = int(ty)
	return latest
}

// RateFor returns the flat per-mile rate for a vehicle type outside any
// threshold logic. For cars this is the tier-1 rate.
func (rt RateTable) RateFor(vehicle VehicleType) decimal.Decimal {
	switch vehicle {
	case VehicleMotorcycle:
		return rt.Motorcycle
	case VehicleBicycle:
		return rt.Bicycle
	default:
		return rt.CarTier1
	}
}
