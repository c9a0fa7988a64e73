package domain

import "github.com/shopspring/decimal"

// CostBreakdown holds the five derived cost figures for one plan under a
// spending assumption. All fields are signed: premium, deductible and
// coinsurance costs are negative (cash out), the HSA benefit is positive
// (employer cash in).
type CostBreakdown struct {
	AnnualPremiumCost  decimal.Decimal `yaml:"annual_premium_cost" json:"annual_premium_cost"`
	HSABenefit         decimal.Decimal `yaml:"hsa_benefit" json:"hsa_benefit"`
	PreDeductibleCost  decimal.Decimal `yaml:"pre_deductible_cost" json:"pre_deductible_cost"`
	PostDeductibleCost decimal.Decimal `yaml:"post_deductible_cost" json:"post_deductible_cost"`
	TotalAnnualCost    decimal.Decimal `yaml:"total_annual_cost" json:"total_annual_cost"`
}

// OutOfPocketTotal returns the combined magnitude of the deductible and
// coinsurance costs, i.e. what the employee pays providers over the year.
func (cb CostBreakdown) OutOfPocketTotal() decimal.Decimal {
	return cb.PreDeductibleCost.Abs().Add(cb.PostDeductibleCost.Abs())
}

// PlanResult is one column of the side-by-side comparison: the plan's
// reference figures for the chosen tier plus its computed cost breakdown.
type PlanResult struct {
	PlanName            string          `yaml:"plan_name" json:"plan_name"`
	Premium             PremiumCost     `yaml:"premium" json:"premium"`
	Deductible          decimal.Decimal `yaml:"deductible" json:"deductible"`
	OutOfPocketMax      decimal.Decimal `yaml:"out_of_pocket_max" json:"out_of_pocket_max"`
	HSAMatch            decimal.Decimal `yaml:"hsa_match" json:"hsa_match"`
	TotalHSAWithMatch   decimal.Decimal `yaml:"total_hsa_with_match" json:"total_hsa_with_match"`
	PharmacyBenefit   string          `yaml:"pharmacy_benefit" json:"pharmacy_benefit"`
	Breakdown         CostBreakdown   `yaml:"breakdown" json:"breakdown"`
}

// PlanComparison is the full result of comparing every catalog plan under
// one coverage tier and spending assumption.
type PlanComparison struct {
	Tier                CoverageTier    `yaml:"coverage_tier" json:"coverage_tier"`
	DisplayMode         DisplayMode     `yaml:"display_mode" json:"display_mode"`
	ExpectedAnnualSpend decimal.Decimal `yaml:"expected_annual_spend" json:"expected_annual_spend"`
	HSAContribution     decimal.Decimal `yaml:"hsa_contribution" json:"hsa_contribution"`
	Plans               []PlanResult    `yaml:"plans" json:"plans"`
}

// BestPlan returns the result with the highest (least negative) total annual
// cost, the plan the comparison would highlight. Returns nil when empty.
func (pc *PlanComparison) BestPlan() *PlanResult {
	var best *PlanResult
	for i := range pc.Plans {
		if best == nil || pc.Plans[i].Breakdown.TotalAnnualCost.GreaterThan(best.Breakdown.TotalAnnualCost) {
			best = &pc.Plans[i]
		}
	}
	return best
}
