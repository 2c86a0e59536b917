package calculation

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/receiptmate/taxcore/internal/domain"
	"github.com/shopspring/decimal"
)

// ClaimCalculator validates trips and turns them into priced mileage claims.
//
// Cumulative-mileage contract: the miles already claimed in a tax year are
// the sum of all other car claims whose trip date falls in that year,
// ordered by trip date ascending (claim ID as tiebreak), regardless of
// submission order. Adding, editing or deleting any claim in a year
// invalidates the rates of the others; RecalculateYear reprices the whole
// year rather than freezing rates at creation time. Deleted claims must be
// filtered out of the snapshot by the caller.
type ClaimCalculator struct {
	// TableFor resolves the rate table for a tax year. Defaults to the
	// built-in published tables.
	TableFor func(domain.TaxYear) domain.RateTable
	Logger   Logger
}

// NewClaimCalculator creates a claim calculator using the built-in rate
// tables.
func NewClaimCalculator() *ClaimCalculator {
	return &ClaimCalculator{
		TableFor: domain.RateTableForYear,
		Logger:   NopLogger{},
	}
}

// SetLogger sets the logger, falling back to a no-op logger for nil.
func (cc *ClaimCalculator) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	cc.Logger = l
}

// CreateClaim validates a trip and prices it against the prior claims in the
// same tax year. priorClaims is the caller's consistent snapshot of every
// other live claim; now is the logging timestamp (injected, never read from
// the system clock here).
func (cc *ClaimCalculator) CreateClaim(trip domain.Trip, priorClaims []domain.MileageClaim, now time.Time) (domain.MileageClaim, error) {
	if err := validateTrip(trip); err != nil {
		return domain.MileageClaim{}, err
	}

	ty := domain.ResolveTaxYear(trip.Date)
	totalMiles := trip.TotalMiles()
	milesBefore := CarMilesInYear(priorClaims, ty)

	engine := NewRateEngine(cc.TableFor(ty))
	split := engine.ComputeRate(trip.VehicleType, milesBefore, totalMiles)
	cc.Logger.Debugf("priced trip %s -> %s: %s miles at %s = %s",
		trip.StartLocation, trip.EndLocation,
		totalMiles.String(), split.EffectiveRate.String(), split.Amount.String())

	return domain.MileageClaim{
		ID:              uuid.New(),
		Date:            trip.Date,
		StartLocation:   trip.StartLocation,
		EndLocation:     trip.EndLocation,
		VehicleType:     trip.VehicleType,
		TotalMiles:      totalMiles,
		RoundTrip:       trip.RoundTrip,
		BusinessPurpose: trip.BusinessPurpose,
		MilesBefore:     milesBefore,
		Rate:            split.EffectiveRate,
		Amount:          split.Amount,
		CreatedAt:       now,
	}, nil
}

// BuildClaims validates and prices a batch of trips in one pass: each trip
// becomes a claim and the whole set is repriced in trip-date order so the
// threshold split is independent of submission order.
func (cc *ClaimCalculator) BuildClaims(trips []domain.Trip, now time.Time) ([]domain.MileageClaim, error) {
	claims := make([]domain.MileageClaim, 0, len(trips))
	for i, trip := range trips {
		if err := validateTrip(trip); err != nil {
			return nil, fmt.Errorf("trip %d: %w", i, err)
		}
		claims = append(claims, domain.MileageClaim{
			ID:              uuid.New(),
			Date:            trip.Date,
			StartLocation:   trip.StartLocation,
			EndLocation:     trip.EndLocation,
			VehicleType:     trip.VehicleType,
			TotalMiles:      trip.TotalMiles(),
			RoundTrip:       trip.RoundTrip,
			BusinessPurpose: trip.BusinessPurpose,
			CreatedAt:       now,
		})
	}
	return cc.RecalculateYear(claims), nil
}

// RecalculateYear reprices every claim in the slice by folding over them in
// trip-date order with a per-tax-year running car mileage total. Call it
// after any claim in a year is added, edited or deleted. The input slice is
// not modified.
func (cc *ClaimCalculator) RecalculateYear(claims []domain.MileageClaim) []domain.MileageClaim {
	out := make([]domain.MileageClaim, len(claims))
	copy(out, claims)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID.String() < out[j].ID.String()
	})

	running := make(map[domain.TaxYear]decimal.Decimal)
	for i := range out {
		ty := out[i].TaxYear()
		milesBefore := running[ty]
		engine := NewRateEngine(cc.TableFor(ty))
		split := engine.ComputeRate(out[i].VehicleType, milesBefore, out[i].TotalMiles)
		out[i].MilesBefore = milesBefore
		out[i].Rate = split.EffectiveRate
		out[i].Amount = split.Amount

		if out[i].VehicleType == domain.VehicleCar {
			running[ty] = milesBefore.Add(out[i].TotalMiles)
		}
	}
	return out
}

// CarMilesInYear sums the total car miles of claims whose trip date falls in
// the tax year. Claims for other vehicles never count toward the threshold.
func CarMilesInYear(claims []domain.MileageClaim, ty domain.TaxYear) decimal.Decimal {
	total := decimal.Zero
	for _, c := range claims {
		if c.VehicleType == domain.VehicleCar && c.TaxYear() == ty {
			total = total.Add(c.TotalMiles)
		}
	}
	return total
}

// MilesFromLookup converts a distance supplied by an external lookup into a
// decimal mileage, rejecting NaN and infinite values before they can reach
// the rate logic.
func MilesFromLookup(miles float64) (decimal.Decimal, error) {
	if math.IsNaN(miles) || math.IsInf(miles, 0) {
		return decimal.Zero, domain.NewValidationError("distance_miles", "must be a finite number")
	}
	if miles < 0 {
		return decimal.Zero, domain.NewValidationError("distance_miles", "cannot be negative")
	}
	return decimal.NewFromFloat(miles), nil
}

func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.StartLocation) == "" {
		return domain.NewValidationError("start_location", "is required")
	}
	if strings.TrimSpace(trip.EndLocation) == "" {
		return domain.NewValidationError("end_location", "is required")
	}
	if strings.TrimSpace(trip.BusinessPurpose) == "" {
		return domain.NewValidationError("business_purpose", "is required")
	}
	if !trip.VehicleType.Valid() {
		return domain.NewValidationError("vehicle_type", "must be car, motorcycle or bicycle")
	}
	if trip.OneWayMiles.LessThan(decimal.Zero) {
		return domain.NewValidationError("distance_miles", "cannot be negative")
	}
	if trip.Date.IsZero() {
		return domain.NewValidationError("date", "is required")
	}
	return nil
}
