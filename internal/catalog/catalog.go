package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/beastwood12/nuskin-insurance-calc/internal/domain"
)

// Catalog is the ordered set of plan options offered for the plan year.
// It is built once and only ever read.
type Catalog struct {
	Plans []domain.Plan `yaml:"plans" json:"plans"`
}

// planCount is fixed by the benefits sheet: one traditional plan and two
// high-deductible plans.
const planCount = 3

// Default returns the built-in plan-year catalog in display order:
// traditional plan first, then the two HDHPs.
func Default() *Catalog {
	return &Catalog{
		Plans: []domain.Plan{
			{
				Name: "Traditional PPO Plan",
				Costs: map[domain.CoverageTier]domain.PremiumCost{
					domain.TierEmployeeOnly:     {Monthly: decimal.NewFromInt(176), PerPayPeriod: decimal.NewFromFloat(81.23)},
					domain.TierEmployeeSpouse:   {Monthly: decimal.NewFromInt(395), PerPayPeriod: decimal.NewFromFloat(182.31)},
					domain.TierEmployeeChildren: {Monthly: decimal.NewFromInt(352), PerPayPeriod: decimal.NewFromFloat(162.46)},
					domain.TierEmployeeFamily:   {Monthly: decimal.NewFromInt(599), PerPayPeriod: decimal.NewFromFloat(276.46)},
				},
				HSAMatchByTier: map[domain.CoverageTier]decimal.Decimal{
					domain.TierEmployeeOnly:     decimal.Zero,
					domain.TierEmployeeSpouse:   decimal.Zero,
					domain.TierEmployeeChildren: decimal.Zero,
					domain.TierEmployeeFamily:   decimal.Zero,
				},
				DeductiblePerPerson: &domain.PersonFamilyLimit{
					Person: decimal.NewFromInt(750),
					Family: decimal.NewFromInt(2250),
				},
				OutOfPocketMax: domain.PersonFamilyLimit{
					Person: decimal.NewFromInt(4000),
					Family: decimal.NewFromInt(8000),
				},
				PharmacyBenefit: "$10 / $35 / $60 copay by drug tier; deductible does not apply",
			},
			{
				Name: "HDHP Plan A",
				Costs: map[domain.CoverageTier]domain.PremiumCost{
					domain.TierEmployeeOnly:     {Monthly: decimal.NewFromInt(88), PerPayPeriod: decimal.NewFromFloat(40.62)},
					domain.TierEmployeeSpouse:   {Monthly: decimal.NewFromInt(198), PerPayPeriod: decimal.NewFromFloat(91.38)},
					domain.TierEmployeeChildren: {Monthly: decimal.NewFromInt(176), PerPayPeriod: decimal.NewFromFloat(81.23)},
					domain.TierEmployeeFamily:   {Monthly: decimal.NewFromInt(264), PerPayPeriod: decimal.NewFromFloat(121.85)},
				},
				HSAMatchByTier: map[domain.CoverageTier]decimal.Decimal{
					domain.TierEmployeeOnly:     decimal.NewFromInt(600),
					domain.TierEmployeeSpouse:   decimal.NewFromInt(1200),
					domain.TierEmployeeChildren: decimal.NewFromInt(1200),
					domain.TierEmployeeFamily:   decimal.NewFromInt(1200),
				},
				DeductibleByEnrollment: &domain.EnrollmentDeductible{
					EmployeeOnly:     decimal.NewFromInt(1700),
					TwoPlusEnrollees: decimal.NewFromInt(3400),
				},
				OutOfPocketMax: domain.PersonFamilyLimit{
					Person: decimal.NewFromInt(3500),
					Family: decimal.NewFromInt(7000),
				},
				PharmacyBenefit: "20% coinsurance AD (after deductible); preventive list covered before deductible",
			},
			{
				Name: "HDHP Plan B",
				Costs: map[domain.CoverageTier]domain.PremiumCost{
					domain.TierEmployeeOnly:     {Monthly: decimal.NewFromInt(44), PerPayPeriod: decimal.NewFromFloat(20.31)},
					domain.TierEmployeeSpouse:   {Monthly: decimal.NewFromInt(99), PerPayPeriod: decimal.NewFromFloat(45.69)},
					domain.TierEmployeeChildren: {Monthly: decimal.NewFromInt(88), PerPayPeriod: decimal.NewFromFloat(40.62)},
					domain.TierEmployeeFamily:   {Monthly: decimal.NewFromInt(132), PerPayPeriod: decimal.NewFromFloat(60.92)},
				},
				HSAMatchByTier: map[domain.CoverageTier]decimal.Decimal{
					domain.TierEmployeeOnly:     decimal.NewFromInt(600),
					domain.TierEmployeeSpouse:   decimal.NewFromInt(1200),
					domain.TierEmployeeChildren: decimal.NewFromInt(1200),
					domain.TierEmployeeFamily:   decimal.NewFromInt(1200),
				},
				DeductiblePerPerson: &domain.PersonFamilyLimit{
					Person: decimal.NewFromInt(5000),
					Family: decimal.NewFromInt(10000),
				},
				OutOfPocketMax: domain.PersonFamilyLimit{
					Person: decimal.NewFromInt(6000),
					Family: decimal.NewFromInt(12000),
				},
				PharmacyBenefit: "Full cost until deductible, then 20% coinsurance (AD)",
			},
		},
	}
}

// List returns the plans in display order.
func (c *Catalog) List() []domain.Plan {
	return c.Plans
}

// Validate checks the catalog invariants: the fixed plan count, each plan's
// own invariants, and a zero HSA match on every tier of the first
// (traditional) plan.
func (c *Catalog) Validate() error {
	if len(c.Plans) != planCount {
		return fmt.Errorf("catalog must contain exactly %d plans, got %d", planCount, len(c.Plans))
	}
	for i := range c.Plans {
		if err := c.Plans[i].Validate(); err != nil {
			return fmt.Errorf("plan %q validation failed: %w", c.Plans[i].Name, err)
		}
	}
	if c.Plans[0].HasHSA() {
		return fmt.Errorf("traditional plan %q cannot carry an HSA match", c.Plans[0].Name)
	}
	return nil
}

// EffectiveDeductible selects the deductible that applies to a coverage tier
// given the plan's deductible shape. With the enrollment shape the
// employee-only figure applies only to the employee_only tier; with the
// per-person shape the person figure applies to employee_only and the family
// figure to everything else.
func EffectiveDeductible(p *domain.Plan, tier domain.CoverageTier) decimal.Decimal {
	if p.DeductibleByEnrollment != nil {
		if tier == domain.TierEmployeeOnly {
			return p.DeductibleByEnrollment.EmployeeOnly
		}
		return p.DeductibleByEnrollment.TwoPlusEnrollees
	}
	if tier == domain.TierEmployeeOnly {
		return p.DeductiblePerPerson.Person
	}
	return p.DeductiblePerPerson.Family
}

// EffectiveOutOfPocketMax selects the out-of-pocket maximum for a coverage
// tier. All plans share the person/family shape here.
func EffectiveOutOfPocketMax(p *domain.Plan, tier domain.CoverageTier) decimal.Decimal {
	if tier == domain.TierEmployeeOnly {
		return p.OutOfPocketMax.Person
	}
	return p.OutOfPocketMax.Family
}

// ContributionCap returns the annual HSA contribution limit for a coverage
// tier: the self-only IRS limit for employee_only, the family limit for
// every other tier.
func ContributionCap(tier domain.CoverageTier) decimal.Decimal {
	if tier == domain.TierEmployeeOnly {
		return decimal.NewFromInt(4400)
	}
	return decimal.NewFromInt(8750)
}
