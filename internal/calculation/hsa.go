package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/beastwood12/nuskin-insurance-calc/internal/catalog"
	"github.com/beastwood12/nuskin-insurance-calc/internal/domain"
)

// TotalContributionIncludingMatch computes the combined employee plus
// employer HSA deposit for the summary display. The employer matches dollar
// for dollar up to matchCap: below the cap the match equals the
// contribution, at or above it the employer adds the full cap.
func TotalContributionIncludingMatch(matchCap, employeeContribution decimal.Decimal) decimal.Decimal {
	if matchCap.LessThanOrEqual(decimal.Zero) {
		return employeeContribution
	}
	if employeeContribution.GreaterThanOrEqual(matchCap) {
		return employeeContribution.Add(matchCap)
	}
	return employeeContribution.Mul(decimal.NewFromInt(2))
}

// ClampContribution bounds an employee HSA contribution to the valid range
// for a coverage tier, [0, tier cap]. Entry surfaces apply this before
// handing the contribution to the engine.
func ClampContribution(tier domain.CoverageTier, amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return decimal.Min(amount, catalog.ContributionCap(tier))
}

// NormalizeAmount converts raw numeric user input to a decimal amount,
// treating NaN, infinities and negative values as 0. Entry surfaces apply
// this before handing amounts to the engine.
func NormalizeAmount(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
