package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleType is the class of vehicle used for a business journey.
type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleBicycle    VehicleType = "bicycle"
)

// Valid reports whether the vehicle type is one of the approved classes.
func (v VehicleType) Valid() bool {
	switch v {
	case VehicleCar, VehicleMotorcycle, VehicleBicycle:
		return true
	}
	return false
}

// Trip is a single business journey as submitted by the user. The one-way
// distance is resolved by an external lookup before the trip reaches the
// engine; the engine never geocodes.
type Trip struct {
	Date            time.Time       `yaml:"date" json:"date"`
	StartLocation   string          `yaml:"start_location" json:"start_location"`
	EndLocation     string          `yaml:"end_location" json:"end_location"`
	VehicleType     VehicleType     `yaml:"vehicle_type" json:"vehicle_type"`
	OneWayMiles     decimal.Decimal `yaml:"one_way_miles" json:"one_way_miles"`
	RoundTrip       bool            `yaml:"round_trip" json:"round_trip"`
	BusinessPurpose string          `yaml:"business_purpose" json:"business_purpose"`
}

// TotalMiles returns the distance the claim is made on: one-way miles,
// doubled for round trips. Threshold and rate logic always operate on this
// figure, never the one-way distance.
func (t Trip) TotalMiles() decimal.Decimal {
	if t.RoundTrip {
		return t.OneWayMiles.Mul(decimal.NewFromInt(2))
	}
	return t.OneWayMiles
}

// MileageClaim is a computed approved-mileage claim for one journey.
// Rate and Amount are derived values: they are recomputed whenever the
// cumulative mileage picture for the tax year changes, not stored as fixed.
type MileageClaim struct {
	ID              uuid.UUID       `yaml:"id" json:"id"`
	Date            time.Time       `yaml:"date" json:"date"`
	StartLocation   string          `yaml:"start_location" json:"start_location"`
	EndLocation     string          `yaml:"end_location" json:"end_location"`
	VehicleType     VehicleType     `yaml:"vehicle_type" json:"vehicle_type"`
	TotalMiles      decimal.Decimal `yaml:"total_miles" json:"total_miles"`
	RoundTrip       bool            `yaml:"round_trip" json:"round_trip"`
	BusinessPurpose string          `yaml:"business_purpose" json:"business_purpose"`

	// MilesBefore is the cumulative car mileage already claimed in the same
	// tax year at the point this claim was evaluated. Kept on the claim so
	// historical claims stay explainable after later recomputes.
	MilesBefore decimal.Decimal `yaml:"miles_before" json:"miles_before"`

	Rate      decimal.Decimal `yaml:"rate" json:"rate"`     // effective pounds per mile
	Amount    decimal.Decimal `yaml:"amount" json:"amount"` // total claim in GBP
	CreatedAt time.Time       `yaml:"created_at" json:"created_at"`
}

// TaxYear returns the tax year the claim's trip date falls in.
func (c MileageClaim) TaxYear() TaxYear {
	return ResolveTaxYear(c.Date)
}
