package calculation

import (
	"time"

	"github.com/receiptmate/taxcore/internal/domain"
	"github.com/shopspring/decimal"
)

// MileageStats summarises a claim history for the dashboard header.
type MileageStats struct {
	TotalClaims            int
	TotalMiles             decimal.Decimal
	TotalAmount            decimal.Decimal
	CurrentTaxYearMiles    decimal.Decimal
	CurrentRateForNewClaim decimal.Decimal
}

// Stats computes totals over all live claims and the car miles accumulated
// in the tax year containing asOf, along with the tier-1 or tier-2 rate a
// new car claim would start at.
func (cc *ClaimCalculator) Stats(claims []domain.MileageClaim, asOf time.Time) MileageStats {
	ty := domain.ResolveTaxYear(asOf)
	table := cc.TableFor(ty)

	s := MileageStats{TotalClaims: len(claims)}
	for _, c := range claims {
		s.TotalMiles = s.TotalMiles.Add(c.TotalMiles)
		s.TotalAmount = s.TotalAmount.Add(c.Amount)
	}
	s.TotalMiles = s.TotalMiles.Round(2)
	s.TotalAmount = s.TotalAmount.Round(2)

	s.CurrentTaxYearMiles = CarMilesInYear(claims, ty).Round(2)
	if s.CurrentTaxYearMiles.GreaterThanOrEqual(table.CarThresholdMiles) {
		s.CurrentRateForNewClaim = table.CarTier2
	} else {
		s.CurrentRateForNewClaim = table.CarTier1
	}
	return s
}
