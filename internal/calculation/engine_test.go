package calculation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/beastwood12/nuskin-insurance-calc/internal/catalog"
	"github.com/beastwood12/nuskin-insurance-calc/internal/domain"
)

func planByName(t *testing.T, cat *catalog.Catalog, name string) *domain.Plan {
	t.Helper()
	for i := range cat.Plans {
		if cat.Plans[i].Name == name {
			return &cat.Plans[i]
		}
	}
	t.Fatalf("plan %q not in catalog", name)
	return nil
}

func TestCostEngine_ComputeAnnualCost(t *testing.T) {
	engine := NewCostEngine()
	cat := catalog.Default()

	tests := []struct {
		name         string
		plan         string
		tier         domain.CoverageTier
		spend        decimal.Decimal
		contribution decimal.Decimal
		expected     domain.CostBreakdown
	}{
		{
			name:         "traditional family, no spend, no contribution",
			plan:         "Traditional PPO Plan",
			tier:         domain.TierEmployeeFamily,
			spend:        decimal.Zero,
			contribution: decimal.Zero,
			expected: domain.CostBreakdown{
				AnnualPremiumCost:  decimal.NewFromInt(-7188), // 599 * 12
				HSABenefit:         decimal.Zero,
				PreDeductibleCost:  decimal.Zero,
				PostDeductibleCost: decimal.Zero,
				TotalAnnualCost:    decimal.NewFromInt(-7188),
			},
		},
		{
			name:         "HDHP A employee only, spend above deductible",
			plan:         "HDHP Plan A",
			tier:         domain.TierEmployeeOnly,
			spend:        decimal.NewFromInt(5000),
			contribution: decimal.NewFromInt(600),
			expected: domain.CostBreakdown{
				AnnualPremiumCost:  decimal.NewFromInt(-1056), // 88 * 12
				HSABenefit:         decimal.NewFromInt(600),
				PreDeductibleCost:  decimal.NewFromInt(-1700),
				PostDeductibleCost: decimal.NewFromInt(-660), // 20% of 3300
				TotalAnnualCost:    decimal.NewFromInt(-2816),
			},
		},
		{
			name:         "HDHP B family, coinsurance capped at out-of-pocket max",
			plan:         "HDHP Plan B",
			tier:         domain.TierEmployeeFamily,
			spend:        decimal.NewFromInt(20000),
			contribution: decimal.NewFromInt(1200),
			expected: domain.CostBreakdown{
				AnnualPremiumCost:  decimal.NewFromInt(-1584), // 132 * 12
				HSABenefit:         decimal.NewFromInt(1200),
				PreDeductibleCost:  decimal.NewFromInt(-10000),
				PostDeductibleCost: decimal.NewFromInt(-2000), // capped: 12000 - 10000
				TotalAnnualCost:    decimal.NewFromInt(-12384),
			},
		},
		{
			name:         "spend below deductible, no coinsurance",
			plan:         "HDHP Plan A",
			tier:         domain.TierEmployeeOnly,
			spend:        decimal.NewFromInt(900),
			contribution: decimal.Zero,
			expected: domain.CostBreakdown{
				AnnualPremiumCost:  decimal.NewFromInt(-1056),
				HSABenefit:         decimal.Zero,
				PreDeductibleCost:  decimal.NewFromInt(-900),
				PostDeductibleCost: decimal.Zero,
				TotalAnnualCost:    decimal.NewFromInt(-1956),
			},
		},
		{
			name:         "contribution above match is capped at the match",
			plan:         "HDHP Plan A",
			tier:         domain.TierEmployeeFamily,
			spend:        decimal.Zero,
			contribution: decimal.NewFromInt(4000),
			expected: domain.CostBreakdown{
				AnnualPremiumCost:  decimal.NewFromInt(-3168), // 264 * 12
				HSABenefit:         decimal.NewFromInt(1200),
				PreDeductibleCost:  decimal.Zero,
				PostDeductibleCost: decimal.Zero,
				TotalAnnualCost:    decimal.NewFromInt(-1968),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := planByName(t, cat, tt.plan)
			got := engine.ComputeAnnualCost(plan, tt.tier, tt.spend, tt.contribution)

			if !got.AnnualPremiumCost.Equal(tt.expected.AnnualPremiumCost) {
				t.Errorf("AnnualPremiumCost = %v, want %v", got.AnnualPremiumCost, tt.expected.AnnualPremiumCost)
			}
			if !got.HSABenefit.Equal(tt.expected.HSABenefit) {
				t.Errorf("HSABenefit = %v, want %v", got.HSABenefit, tt.expected.HSABenefit)
			}
			if !got.PreDeductibleCost.Equal(tt.expected.PreDeductibleCost) {
				t.Errorf("PreDeductibleCost = %v, want %v", got.PreDeductibleCost, tt.expected.PreDeductibleCost)
			}
			if !got.PostDeductibleCost.Equal(tt.expected.PostDeductibleCost) {
				t.Errorf("PostDeductibleCost = %v, want %v", got.PostDeductibleCost, tt.expected.PostDeductibleCost)
			}
			if !got.TotalAnnualCost.Equal(tt.expected.TotalAnnualCost) {
				t.Errorf("TotalAnnualCost = %v, want %v", got.TotalAnnualCost, tt.expected.TotalAnnualCost)
			}
		})
	}
}

func TestCostEngine_OutOfPocketCapInvariant(t *testing.T) {
	engine := NewCostEngine()
	cat := catalog.Default()

	for i := range cat.Plans {
		plan := &cat.Plans[i]
		for _, tier := range domain.AllTiers() {
			oopMax := catalog.EffectiveOutOfPocketMax(plan, tier)
			deductible := catalog.EffectiveDeductible(plan, tier)

			prev := decimal.Zero
			for spend := decimal.Zero; spend.LessThanOrEqual(decimal.NewFromInt(50000)); spend = spend.Add(decimal.NewFromInt(250)) {
				got := engine.ComputeAnnualCost(plan, tier, spend, decimal.Zero)

				if got.PreDeductibleCost.IsPositive() || got.PostDeductibleCost.IsPositive() {
					t.Fatalf("%s/%s spend=%v: out-of-pocket costs must be <= 0", plan.Name, tier, spend)
				}
				if got.PreDeductibleCost.Abs().GreaterThan(deductible) {
					t.Fatalf("%s/%s spend=%v: pre-deductible cost %v exceeds deductible %v", plan.Name, tier, spend, got.PreDeductibleCost, deductible)
				}
				oop := got.OutOfPocketTotal()
				if oop.GreaterThan(oopMax) {
					t.Fatalf("%s/%s spend=%v: out-of-pocket %v exceeds max %v", plan.Name, tier, spend, oop, oopMax)
				}
				// More spend can never shrink out-of-pocket.
				if oop.LessThan(prev) {
					t.Fatalf("%s/%s spend=%v: out-of-pocket %v decreased from %v", plan.Name, tier, spend, oop, prev)
				}
				prev = oop
			}
		}
	}
}

func TestCostEngine_HSABenefitBounds(t *testing.T) {
	engine := NewCostEngine()
	cat := catalog.Default()

	for i := range cat.Plans {
		plan := &cat.Plans[i]
		for _, tier := range domain.AllTiers() {
			match := plan.HSAMatchByTier[tier]
			tierCap := catalog.ContributionCap(tier)

			for contribution := decimal.Zero; contribution.LessThanOrEqual(tierCap); contribution = contribution.Add(decimal.NewFromInt(100)) {
				got := engine.ComputeAnnualCost(plan, tier, decimal.Zero, contribution)
				if got.HSABenefit.GreaterThan(match) {
					t.Fatalf("%s/%s: benefit %v exceeds match %v", plan.Name, tier, got.HSABenefit, match)
				}
				if got.HSABenefit.GreaterThan(contribution) {
					t.Fatalf("%s/%s: benefit %v exceeds contribution %v", plan.Name, tier, got.HSABenefit, contribution)
				}
			}
		}
	}
}

func TestCostEngine_ComparePlans(t *testing.T) {
	engine := NewCostEngine()
	cat := catalog.Default()

	comparison := engine.ComparePlans(cat, domain.TierEmployeeOnly, domain.DisplayMonthly,
		decimal.NewFromInt(5000), decimal.NewFromInt(600))

	if len(comparison.Plans) != 3 {
		t.Fatalf("expected 3 plan results, got %d", len(comparison.Plans))
	}
	// Catalog order is preserved: traditional first.
	wantOrder := []string{"Traditional PPO Plan", "HDHP Plan A", "HDHP Plan B"}
	for i, name := range wantOrder {
		if comparison.Plans[i].PlanName != name {
			t.Errorf("plan %d = %q, want %q", i, comparison.Plans[i].PlanName, name)
		}
	}

	planA := comparison.Plans[1]
	if !planA.Breakdown.TotalAnnualCost.Equal(decimal.NewFromInt(-2816)) {
		t.Errorf("HDHP Plan A total = %v, want -2816", planA.Breakdown.TotalAnnualCost)
	}
	if !planA.Deductible.Equal(decimal.NewFromInt(1700)) {
		t.Errorf("HDHP Plan A deductible = %v, want 1700", planA.Deductible)
	}
	if !planA.TotalHSAWithMatch.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("HDHP Plan A HSA total = %v, want 1200 (600 matched in full)", planA.TotalHSAWithMatch)
	}

	if best := comparison.BestPlan(); best == nil || best.PlanName != "HDHP Plan A" {
		t.Errorf("best plan = %v, want HDHP Plan A", best)
	}
}
