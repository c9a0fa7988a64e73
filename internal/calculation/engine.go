package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/beastwood12/nuskin-insurance-calc/internal/catalog"
	"github.com/beastwood12/nuskin-insurance-calc/internal/domain"
)

// CostEngine computes annual plan costs for a spending assumption. It is
// stateless apart from its configured coinsurance rate; every call is pure
// and deterministic in its inputs.
type CostEngine struct {
	CoinsuranceRate decimal.Decimal
	Logger          Logger
}

// NewCostEngine creates a cost engine with the plan-year coinsurance rate.
func NewCostEngine() *CostEngine {
	return &CostEngine{
		CoinsuranceRate: decimal.NewFromFloat(0.20),
		Logger:          NopLogger{},
	}
}

// ComputeAnnualCost derives the five cost figures for one plan under a
// coverage tier, an expected annual medical spend, and an employee HSA
// contribution. Inputs are assumed finite and non-negative, with the
// contribution already clamped to the tier cap; both are the caller's
// responsibility (see NormalizeAmount and ClampContribution).
//
// Premium and out-of-pocket figures come back negative (cash out of the
// employee's pocket); the HSA benefit comes back positive (employer cash in).
func (ce *CostEngine) ComputeAnnualCost(plan *domain.Plan, tier domain.CoverageTier, expectedAnnualSpend, employeeHSAContribution decimal.Decimal) domain.CostBreakdown {
	annualPremium := plan.Costs[tier].Monthly.Mul(decimal.NewFromInt(12)).Neg()

	deductible := catalog.EffectiveDeductible(plan, tier)
	oopMax := catalog.EffectiveOutOfPocketMax(plan, tier)

	match := plan.HSAMatchByTier[tier]
	hsaBenefit := decimal.Min(employeeHSAContribution, match)

	preDeductible := decimal.Min(expectedAnnualSpend, deductible).Neg()

	// Coinsurance applies above the deductible, capped so deductible plus
	// coinsurance never exceeds the out-of-pocket maximum.
	postDeductible := decimal.Zero
	if expectedAnnualSpend.GreaterThan(deductible) {
		coinsurance := expectedAnnualSpend.Sub(deductible).Mul(ce.CoinsuranceRate)
		capPortion := decimal.Max(oopMax.Sub(deductible), decimal.Zero)
		postDeductible = decimal.Min(coinsurance, capPortion).Neg()
	}

	total := annualPremium.Add(hsaBenefit).Add(preDeductible).Add(postDeductible)

	ce.Logger.Debugf("computed %s/%s: premium=%s hsa=%s pre=%s post=%s total=%s",
		plan.Name, tier, annualPremium, hsaBenefit, preDeductible, postDeductible, total)

	return domain.CostBreakdown{
		AnnualPremiumCost:  annualPremium,
		HSABenefit:         hsaBenefit,
		PreDeductibleCost:  preDeductible,
		PostDeductibleCost: postDeductible,
		TotalAnnualCost:    total,
	}
}

// ComparePlans runs ComputeAnnualCost for every plan in the catalog and
// assembles the side-by-side comparison for one tier and spending
// assumption. Plan order follows catalog order.
func (ce *CostEngine) ComparePlans(cat *catalog.Catalog, tier domain.CoverageTier, mode domain.DisplayMode, expectedAnnualSpend, employeeHSAContribution decimal.Decimal) *domain.PlanComparison {
	comparison := &domain.PlanComparison{
		Tier:                tier,
		DisplayMode:         mode,
		ExpectedAnnualSpend: expectedAnnualSpend,
		HSAContribution:     employeeHSAContribution,
		Plans:               make([]domain.PlanResult, 0, len(cat.Plans)),
	}

	for i := range cat.Plans {
		plan := &cat.Plans[i]
		match := plan.HSAMatchByTier[tier]
		comparison.Plans = append(comparison.Plans, domain.PlanResult{
			PlanName:          plan.Name,
			Premium:           plan.Costs[tier],
			Deductible:        catalog.EffectiveDeductible(plan, tier),
			OutOfPocketMax:    catalog.EffectiveOutOfPocketMax(plan, tier),
			HSAMatch:          match,
			TotalHSAWithMatch: TotalContributionIncludingMatch(match, employeeHSAContribution),
			PharmacyBenefit:   plan.PharmacyBenefit,
			Breakdown:         ce.ComputeAnnualCost(plan, tier, expectedAnnualSpend, employeeHSAContribution),
		})
	}

	return comparison
}
